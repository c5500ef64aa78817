// Package visualize renders pipeline results for inspection. It only
// consumes the pipeline's value types and never feeds back into the model.
package visualize

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/arbolab/allom/allometry"
	"github.com/arbolab/allom/pkg/errors"
	"github.com/arbolab/allom/preprocessing"
)

// SaveScatterWithFit writes a log-log scatter of the observations with the
// fitted regression line to an image file. The format follows the file
// extension (png, pdf, svg).
func SaveScatterWithFit(observed []preprocessing.LogObservation, eq allometry.Equation, title, path string) error {
	if len(observed) == 0 {
		return errors.NewEmptyInputError("SaveScatterWithFit")
	}

	pts := make(plotter.XYs, len(observed))
	for i, o := range observed {
		pts[i].X = o.LogDiameter
		pts[i].Y = o.LogBiomass
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "log10(diameter)"
	p.Y.Label.Text = "log10(biomass)"

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return errors.Wrap(err, "visualize: scatter")
	}

	line := plotter.NewFunction(eq.PredictLog)
	line.Samples = 100

	p.Add(scatter, line)
	p.Legend.Add("observed", scatter)
	p.Legend.Add(eq.String(), line)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "visualize: save %s", path)
	}
	return nil
}
