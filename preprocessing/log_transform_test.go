package preprocessing

import (
	"math"
	"testing"

	"github.com/arbolab/allom/dataset"
	"github.com/arbolab/allom/pkg/errors"
)

func makeDataset(t *testing.T, pairs [][2]float64) dataset.Dataset {
	t.Helper()
	raw := make([]dataset.Observation, len(pairs))
	for i, p := range pairs {
		raw[i] = dataset.Observation{Species: "s", Diameter: p[0], Biomass: p[1]}
	}
	return dataset.Filter(raw, "s")
}

func TestFitTransform(t *testing.T) {
	ds := makeDataset(t, [][2]float64{{1, 1}, {10, 100}, {100, 10000}})

	obs, err := NewLog10Transformer().FitTransform(ds)
	if err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}
	if len(obs) != 3 {
		t.Fatalf("len = %d, want 3", len(obs))
	}

	wantLogD := []float64{0, 1, 2}
	wantLogB := []float64{0, 2, 4}
	for i := range obs {
		if math.Abs(obs[i].LogDiameter-wantLogD[i]) > 1e-12 {
			t.Errorf("LogDiameter[%d] = %g, want %g", i, obs[i].LogDiameter, wantLogD[i])
		}
		if math.Abs(obs[i].LogBiomass-wantLogB[i]) > 1e-12 {
			t.Errorf("LogBiomass[%d] = %g, want %g", i, obs[i].LogBiomass, wantLogB[i])
		}
	}
}

func TestTransformInvertibility(t *testing.T) {
	ds := makeDataset(t, [][2]float64{{12.5, 48.2}, {21.0, 130.4}, {35.7, 520.9}})

	tr := NewLog10Transformer()
	obs, err := tr.FitTransform(ds)
	if err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}

	const relTol = 1e-9
	for i, o := range obs {
		backD := tr.InverseTransform(o.LogDiameter)
		backB := tr.InverseTransform(o.LogBiomass)
		if math.Abs(backD-o.Diameter)/o.Diameter > relTol {
			t.Errorf("row %d: 10^log(diameter) = %g, want %g", i, backD, o.Diameter)
		}
		if math.Abs(backB-o.Biomass)/o.Biomass > relTol {
			t.Errorf("row %d: 10^log(biomass) = %g, want %g", i, backB, o.Biomass)
		}
	}
}

func TestFitRejectsNonPositive(t *testing.T) {
	tests := []struct {
		name  string
		pairs [][2]float64
		field string
	}{
		{"zero diameter", [][2]float64{{10, 100}, {0, 50}}, "diameter"},
		{"negative diameter", [][2]float64{{-3, 100}}, "diameter"},
		{"zero biomass", [][2]float64{{10, 0}}, "biomass"},
		{"negative biomass", [][2]float64{{10, -4}}, "biomass"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := makeDataset(t, tt.pairs)

			obs, err := NewLog10Transformer().FitTransform(ds)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if obs != nil {
				t.Error("expected no partial output on failure")
			}

			var dqe *errors.DataQualityError
			if !errors.As(err, &dqe) {
				t.Fatalf("expected DataQualityError, got %T: %v", err, err)
			}
			if dqe.Field != tt.field {
				t.Errorf("Field = %q, want %q", dqe.Field, tt.field)
			}
		})
	}
}

func TestTransformRequiresFit(t *testing.T) {
	ds := makeDataset(t, [][2]float64{{10, 100}})

	_, err := NewLog10Transformer().Transform(ds)
	var nfe *errors.NotFittedError
	if !errors.As(err, &nfe) {
		t.Fatalf("expected NotFittedError, got %v", err)
	}
}

func TestColumns(t *testing.T) {
	obs := []LogObservation{
		{LogDiameter: 1, LogBiomass: 2},
		{LogDiameter: 3, LogBiomass: 4},
	}
	x, y := Columns(obs)
	if x[0] != 1 || x[1] != 3 || y[0] != 2 || y[1] != 4 {
		t.Errorf("Columns() = %v, %v", x, y)
	}
}
