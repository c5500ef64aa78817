// Package allometry turns a fitted log-linear regression into an allometric
// equation: a power law predicting biomass from diameter.
package allometry

import (
	"fmt"
	"math"

	"github.com/arbolab/allom/pkg/errors"
	"github.com/arbolab/allom/regression"
)

// Equation is the allometric power law recovered from a log10-log10 linear
// fit. In log space it is
//
//	log10(biomass) = Slope*log10(diameter) + Intercept
//
// which back-transforms to biomass = 10^Intercept * diameter^Slope in
// original units. It is a pure value object.
type Equation struct {
	Slope     float64
	Intercept float64
}

// FromFit packages the slope and intercept of a fit into an Equation.
func FromFit(fit *regression.FitResult) Equation {
	return Equation{Slope: fit.Slope, Intercept: fit.Intercept}
}

// PredictLog evaluates the fitted line at a log10 diameter.
func (e Equation) PredictLog(logDiameter float64) float64 {
	return e.Slope*logDiameter + e.Intercept
}

// Predict evaluates the power law at a diameter in original units. The
// diameter must be strictly positive.
func (e Equation) Predict(diameter float64) (float64, error) {
	if diameter <= 0 {
		return 0, errors.NewDomainInputError("Equation.Predict", diameter)
	}
	return math.Pow(10, e.PredictLog(math.Log10(diameter))), nil
}

// Formula returns a human-readable power law in original units.
func (e Equation) Formula() string {
	return fmt.Sprintf("biomass = %.4g * diameter^%.4g", math.Pow(10, e.Intercept), e.Slope)
}

// String returns the log-space form of the equation.
func (e Equation) String() string {
	return fmt.Sprintf("log10(biomass) = %.4f*log10(diameter) + %.4f", e.Slope, e.Intercept)
}
