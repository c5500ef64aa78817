package allometry

import (
	"math"
	"strings"
	"testing"

	"github.com/arbolab/allom/pkg/errors"
	"github.com/arbolab/allom/regression"
)

func TestFromFit(t *testing.T) {
	fit := &regression.FitResult{Slope: 2.37, Intercept: -0.87}
	eq := FromFit(fit)

	if eq.Slope != fit.Slope || eq.Intercept != fit.Intercept {
		t.Errorf("FromFit() = %+v, want slope=%g intercept=%g", eq, fit.Slope, fit.Intercept)
	}
}

func TestPredictLogConsistency(t *testing.T) {
	// PredictLog must agree exactly with slope*x + intercept.
	eq := Equation{Slope: 2.37, Intercept: -0.87}
	for _, x := range []float64{-2, -0.5, 0, 0.31, 1, 1.7, 2} {
		want := eq.Slope*x + eq.Intercept
		if got := eq.PredictLog(x); got != want {
			t.Errorf("PredictLog(%g) = %g, want %g", x, got, want)
		}
	}
}

func TestPredict(t *testing.T) {
	tests := []struct {
		name      string
		eq        Equation
		diameter  float64
		want      float64
		tolerance float64
	}{
		{"square law", Equation{Slope: 2, Intercept: 0}, 50, 2500, 1e-9},
		{"square law unit", Equation{Slope: 2, Intercept: 0}, 1, 1, 1e-12},
		{"with intercept", Equation{Slope: 1, Intercept: 1}, 3, 30, 1e-9},
		{"identity", Equation{Slope: 1, Intercept: 0}, 7.3, 7.3, 1e-9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.eq.Predict(tt.diameter)
			if err != nil {
				t.Fatalf("Predict() error = %v", err)
			}
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("Predict(%g) = %g, want %g", tt.diameter, got, tt.want)
			}
		})
	}
}

func TestPredictRejectsNonPositive(t *testing.T) {
	eq := Equation{Slope: 2, Intercept: 0}
	for _, d := range []float64{0, -1, -50} {
		_, err := eq.Predict(d)
		var die *errors.DomainInputError
		if !errors.As(err, &die) {
			t.Errorf("Predict(%g): expected DomainInputError, got %v", d, err)
		}
	}
}

func TestFormula(t *testing.T) {
	eq := Equation{Slope: 2, Intercept: 1}
	got := eq.Formula()
	if !strings.Contains(got, "diameter^2") || !strings.Contains(got, "10 *") {
		t.Errorf("Formula() = %q", got)
	}
}
