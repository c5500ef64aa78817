// Package preprocessing transforms a filtered dataset into log10 space for
// log-linear model fitting.
package preprocessing

import (
	"math"

	"github.com/arbolab/allom/core/model"
	"github.com/arbolab/allom/core/parallel"
	"github.com/arbolab/allom/dataset"
	"github.com/arbolab/allom/pkg/errors"
)

// LogObservation extends an observation with the base-10 logarithms of its
// diameter and biomass. Defined only for strictly positive source values.
type LogObservation struct {
	dataset.Observation
	LogDiameter float64
	LogBiomass  float64
}

// Log10Transformer maps observations into log10 space. Fit validates that
// every value is strictly positive; Transform then computes the logarithms.
// The transform is fixed base-10: the fitted slope and intercept are read as
// power-law coefficients, so the base is load-bearing and never natural log.
type Log10Transformer struct {
	model.BaseEstimator
}

// NewLog10Transformer creates an unfitted Log10Transformer.
func NewLog10Transformer() *Log10Transformer {
	return &Log10Transformer{}
}

// Fit validates that every diameter and biomass in ds is strictly positive.
// A non-positive value is a data-quality fault and fails the whole fit; rows
// are never silently dropped here, that is exclusively the Filter stage's job.
func (t *Log10Transformer) Fit(ds dataset.Dataset) error {
	for i := 0; i < ds.Len(); i++ {
		o := ds.At(i)
		if o.Diameter <= 0 {
			return errors.NewDataQualityError("Log10Transformer.Fit", "diameter", i, o.Diameter)
		}
		if o.Biomass <= 0 {
			return errors.NewDataQualityError("Log10Transformer.Fit", "biomass", i, o.Biomass)
		}
	}
	t.SetFitted()
	return nil
}

// Transform computes log10 of both variables for every row, preserving order
// and one-to-one correspondence with the input.
func (t *Log10Transformer) Transform(ds dataset.Dataset) ([]LogObservation, error) {
	if !t.IsFitted() {
		return nil, errors.NewNotFittedError("Log10Transformer", "Transform")
	}

	out := make([]LogObservation, ds.Len())

	const parallelThreshold = 1000
	parallel.ForRangeThreshold(ds.Len(), parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			o := ds.At(i)
			out[i] = LogObservation{
				Observation: o,
				LogDiameter: math.Log10(o.Diameter),
				LogBiomass:  math.Log10(o.Biomass),
			}
		}
	})

	return out, nil
}

// FitTransform validates and transforms in one call. On a validation error no
// partial output is produced.
func (t *Log10Transformer) FitTransform(ds dataset.Dataset) ([]LogObservation, error) {
	if err := t.Fit(ds); err != nil {
		return nil, err
	}
	return t.Transform(ds)
}

// InverseTransform maps a log10-space value back to original units.
func (t *Log10Transformer) InverseTransform(logValue float64) float64 {
	return math.Pow(10, logValue)
}

// Columns splits the transformed observations into the x (log diameter) and
// y (log biomass) vectors consumed by the regression stage.
func Columns(obs []LogObservation) (x, y []float64) {
	x = make([]float64, len(obs))
	y = make([]float64, len(obs))
	for i, o := range obs {
		x[i] = o.LogDiameter
		y[i] = o.LogBiomass
	}
	return x, y
}
