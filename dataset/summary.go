package dataset

import (
	"github.com/montanaflynn/stats"

	"github.com/arbolab/allom/pkg/errors"
)

// Summary holds descriptive statistics for one numeric column.
type Summary struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	Median float64
	Q25    float64
	Q75    float64
}

// Summarize computes descriptive statistics for the diameter and biomass
// columns. It is a read-only convenience for inspecting a dataset before
// fitting and plays no part in the model itself.
func (d Dataset) Summarize() (diameter, biomass Summary, err error) {
	if d.Len() == 0 {
		return Summary{}, Summary{}, errors.NewEmptyInputError("Dataset.Summarize")
	}

	diameter, err = summarize(d.Diameters())
	if err != nil {
		return Summary{}, Summary{}, errors.Wrap(err, "diameter column")
	}
	biomass, err = summarize(d.Biomasses())
	if err != nil {
		return Summary{}, Summary{}, errors.Wrap(err, "biomass column")
	}
	return diameter, biomass, nil
}

func summarize(data []float64) (Summary, error) {
	mean, err := stats.Mean(data)
	if err != nil {
		return Summary{}, errors.WithStack(err)
	}
	stdDev, err := stats.StandardDeviation(data)
	if err != nil {
		return Summary{}, errors.WithStack(err)
	}
	min, err := stats.Min(data)
	if err != nil {
		return Summary{}, errors.WithStack(err)
	}
	max, err := stats.Max(data)
	if err != nil {
		return Summary{}, errors.WithStack(err)
	}
	median, err := stats.Median(data)
	if err != nil {
		return Summary{}, errors.WithStack(err)
	}
	q25, err := stats.Percentile(data, 25)
	if err != nil {
		return Summary{}, errors.WithStack(err)
	}
	q75, err := stats.Percentile(data, 75)
	if err != nil {
		return Summary{}, errors.WithStack(err)
	}

	return Summary{
		Mean:   mean,
		StdDev: stdDev,
		Min:    min,
		Max:    max,
		Median: median,
		Q25:    q25,
		Q75:    q75,
	}, nil
}
