// Package errors provides the error types used across the allom pipeline.
//
// Every stage of the pipeline validates its own preconditions and fails fast
// with one of the typed errors below. All constructors attach a stack trace
// via cockroachdb/errors, and every type implements zerolog's ObjectMarshaler
// so errors can be logged with structured fields.
package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// DataQualityError reports a non-positive value encountered where a log
// transform is required. The offending row index and field name are kept so
// the bad source row can be located.
type DataQualityError struct {
	Op    string
	Field string
	Row   int
	Value float64
}

func (e *DataQualityError) Error() string {
	return fmt.Sprintf("allom: %s: non-positive %s value %g at row %d (log transform undefined)",
		e.Op, e.Field, e.Value, e.Row)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *DataQualityError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("field", e.Field).
		Int("row", e.Row).
		Float64("value", e.Value).
		Str("type", "DataQualityError")
}

// NewDataQualityError creates a DataQualityError with a stack trace attached.
func NewDataQualityError(op, field string, row int, value float64) error {
	err := &DataQualityError{Op: op, Field: field, Row: row, Value: value}
	return errors.WithStack(err)
}

// InsufficientDataError reports that a regression cannot be fitted: fewer
// than two points, or all explanatory values identical (zero variance).
type InsufficientDataError struct {
	Op     string
	N      int
	Reason string
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("allom: %s: insufficient or degenerate data for regression (n=%d): %s",
		e.Op, e.N, e.Reason)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *InsufficientDataError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("n", e.N).
		Str("reason", e.Reason).
		Str("type", "InsufficientDataError")
}

// NewInsufficientDataError creates an InsufficientDataError with a stack trace attached.
func NewInsufficientDataError(op string, n int, reason string) error {
	err := &InsufficientDataError{Op: op, N: n, Reason: reason}
	return errors.WithStack(err)
}

// EmptyInputError reports that a stage received zero observations, e.g. when
// filtering left no rows or error quantification was given an empty set.
type EmptyInputError struct {
	Op string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("allom: %s: empty observation set", e.Op)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *EmptyInputError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("type", "EmptyInputError")
}

// NewEmptyInputError creates an EmptyInputError with a stack trace attached.
func NewEmptyInputError(op string) error {
	err := &EmptyInputError{Op: op}
	return errors.WithStack(err)
}

// DomainInputError reports a value outside an operation's valid domain, such
// as a non-positive diameter passed to Equation.Predict.
type DomainInputError struct {
	Op    string
	Value float64
}

func (e *DomainInputError) Error() string {
	return fmt.Sprintf("allom: %s: value %g outside valid domain (must be > 0)", e.Op, e.Value)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *DomainInputError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Float64("value", e.Value).
		Str("type", "DomainInputError")
}

// NewDomainInputError creates a DomainInputError with a stack trace attached.
func NewDomainInputError(op string, value float64) error {
	err := &DomainInputError{Op: op, Value: value}
	return errors.WithStack(err)
}

// NotFittedError reports a call to Transform or Predict on an estimator
// whose Fit method has not been called.
type NotFittedError struct {
	EstimatorName string
	Method        string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("allom: %s: estimator is not fitted yet, call Fit() before %s()",
		e.EstimatorName, e.Method)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("estimator", e.EstimatorName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError creates a NotFittedError with a stack trace attached.
func NewNotFittedError(estimator, method string) error {
	err := &NotFittedError{EstimatorName: estimator, Method: method}
	return errors.WithStack(err)
}

// Is reports whether err matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an error with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps an error with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error with a stack trace.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error with a stack trace.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack annotates err with a stack trace.
func WithStack(err error) error {
	return errors.WithStack(err)
}
