// Package pipeline composes the allom stages into a single deterministic run:
// filter, log transform, OLS fit, equation construction and error
// quantification. Data flows strictly forward; the first failing stage aborts
// the run and no partial result is returned.
package pipeline

import (
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/arbolab/allom/allometry"
	"github.com/arbolab/allom/dataset"
	"github.com/arbolab/allom/metrics"
	"github.com/arbolab/allom/pkg/errors"
	"github.com/arbolab/allom/pkg/log"
	"github.com/arbolab/allom/preprocessing"
	"github.com/arbolab/allom/regression"
)

// Result bundles the artifacts of one pipeline run. The error report is
// always computed against the equation fitted in the same run.
type Result struct {
	Species     string
	Dataset     dataset.Dataset
	Transformed []preprocessing.LogObservation
	Fit         *regression.FitResult
	Equation    allometry.Equation
	Report      *metrics.ErrorReport
}

// Run executes the full pipeline for one species over the raw observations.
func Run(raw []dataset.Observation, species string) (*Result, error) {
	ds := dataset.Filter(raw, species)
	if ds.Len() == 0 {
		err := errors.NewEmptyInputError("pipeline.Run")
		slog.Debug("no observations after filtering",
			slog.String("species", species),
			log.ErrAttr(err),
		)
		return nil, err
	}
	slog.Debug("dataset filtered",
		slog.String("species", species),
		slog.Int("raw_rows", len(raw)),
		slog.Int("kept_rows", ds.Len()),
	)

	transformed, err := preprocessing.NewLog10Transformer().FitTransform(ds)
	if err != nil {
		return nil, err
	}

	x, y := preprocessing.Columns(transformed)
	fit, err := regression.FitOLS(x, y)
	if err != nil {
		return nil, err
	}

	eq := allometry.FromFit(fit)
	slog.Info("allometric equation fitted",
		slog.String("species", species),
		slog.Int("n", fit.N),
		slog.Float64("slope", fit.Slope),
		slog.Float64("intercept", fit.Intercept),
		slog.Float64("r_squared", fit.RSquared),
	)

	report, err := metrics.Evaluate(eq, transformed)
	if err != nil {
		return nil, err
	}
	slog.Debug("prediction error quantified",
		slog.String("species", species),
		slog.Float64("rmse_log", report.RMSELog),
		slog.Float64("rmse_original", report.RMSEOriginal),
	)

	return &Result{
		Species:     species,
		Dataset:     ds,
		Transformed: transformed,
		Fit:         fit,
		Equation:    eq,
		Report:      report,
	}, nil
}

// RunAll runs an independent pipeline per species concurrently. Each run
// shares nothing with the others; the first error cancels the batch.
func RunAll(raw []dataset.Observation, species ...string) (map[string]*Result, error) {
	results := make([]*Result, len(species))

	var g errgroup.Group
	for i, sp := range species {
		g.Go(func() error {
			res, err := Run(raw, sp)
			if err != nil {
				return errors.Wrapf(err, "species %q", sp)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byName := make(map[string]*Result, len(species))
	for _, res := range results {
		byName[res.Species] = res
	}
	return byName, nil
}
