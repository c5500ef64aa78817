package metrics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/arbolab/allom/allometry"
	"github.com/arbolab/allom/pkg/errors"
	"github.com/arbolab/allom/preprocessing"
)

// ErrorReport is the terminal artifact of a pipeline run: the per-observation
// prediction differences and the aggregate RMSE in log and original units.
type ErrorReport struct {
	// Differences are predicted_log_biomass - observed_log_biomass, aligned
	// by index with the evaluated observations.
	Differences []float64

	// RMSELog is sqrt(mean(difference²)) in log10 units. Differences are
	// squared before averaging; signed differences would cancel and
	// understate the error.
	RMSELog float64

	// RMSEOriginal is 10^RMSELog, the error factor in original units.
	RMSEOriginal float64
}

// Evaluate runs the equation over the observed data and aggregates the
// prediction error. The equation must be the one fitted against this run's
// data; coefficients are always read from the live value, never re-entered.
func Evaluate(eq allometry.Equation, observed []preprocessing.LogObservation) (*ErrorReport, error) {
	n := len(observed)
	if n == 0 {
		return nil, errors.NewEmptyInputError("Evaluate")
	}

	diffs := make([]float64, n)
	predicted := mat.NewVecDense(n, nil)
	actual := mat.NewVecDense(n, nil)
	for i, o := range observed {
		p := eq.PredictLog(o.LogDiameter)
		diffs[i] = p - o.LogBiomass
		predicted.SetVec(i, p)
		actual.SetVec(i, o.LogBiomass)
	}

	rmseLog, err := RMSE(actual, predicted)
	if err != nil {
		return nil, err
	}

	return &ErrorReport{
		Differences:  diffs,
		RMSELog:      rmseLog,
		RMSEOriginal: math.Pow(10, rmseLog),
	}, nil
}

// String returns a short description of the report.
func (r *ErrorReport) String() string {
	return fmt.Sprintf("ErrorReport{n=%d, rmse_log=%.4f, rmse_original=%.4f}",
		len(r.Differences), r.RMSELog, r.RMSEOriginal)
}
