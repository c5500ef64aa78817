// Package model holds shared state tracking for fitted estimators.
package model

// EstimatorState represents whether an estimator has been fitted.
type EstimatorState int

const (
	// NotFitted is the initial state of an estimator.
	NotFitted EstimatorState = iota
	// Fitted means the estimator has learned its parameters.
	Fitted
)

// BaseEstimator is embedded by every stateful estimator in allom.
type BaseEstimator struct {
	state EstimatorState
}

// IsFitted reports whether the estimator has been fitted.
func (e *BaseEstimator) IsFitted() bool {
	return e.state == Fitted
}

// SetFitted marks the estimator as fitted.
func (e *BaseEstimator) SetFitted() {
	e.state = Fitted
}

// Reset returns the estimator to its initial state.
func (e *BaseEstimator) Reset() {
	e.state = NotFitted
}
