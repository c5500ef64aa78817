// Package dataset defines the tabular observation model for allometric
// modeling and the species/completeness filter that produces the working
// dataset for a pipeline run.
package dataset

import (
	"fmt"
	"math"
)

// Observation is a single measured tree: its species label, diameter at
// breast height (the explanatory variable) and total live biomass (the
// response variable). A missing measurement is represented by NaN; it is
// never coerced to zero.
type Observation struct {
	Species  string
	Diameter float64
	Biomass  float64
}

// Complete reports whether both numeric fields are present.
func (o Observation) Complete() bool {
	return !math.IsNaN(o.Diameter) && !math.IsNaN(o.Biomass)
}

// Missing is the marker for an absent measurement.
func Missing() float64 {
	return math.NaN()
}

// Dataset is an ordered collection of complete observations of a single
// species. It is produced by Filter and treated as immutable afterwards:
// accessors hand out copies, never the backing slice.
type Dataset struct {
	species string
	obs     []Observation
}

// Filter retains the observations whose species label exactly equals species
// (case-sensitive) and whose diameter and biomass are both present. Row order
// is preserved. An empty result is valid; downstream stages are responsible
// for rejecting an empty dataset.
func Filter(raw []Observation, species string) Dataset {
	kept := make([]Observation, 0, len(raw))
	for _, o := range raw {
		if o.Species == species && o.Complete() {
			kept = append(kept, o)
		}
	}
	return Dataset{species: species, obs: kept}
}

// Species returns the species label the dataset was filtered on.
func (d Dataset) Species() string {
	return d.species
}

// Len returns the number of observations.
func (d Dataset) Len() int {
	return len(d.obs)
}

// At returns the observation at index i.
func (d Dataset) At(i int) Observation {
	return d.obs[i]
}

// All returns a copy of the observations.
func (d Dataset) All() []Observation {
	out := make([]Observation, len(d.obs))
	copy(out, d.obs)
	return out
}

// Diameters returns a copy of the diameter column.
func (d Dataset) Diameters() []float64 {
	out := make([]float64, len(d.obs))
	for i, o := range d.obs {
		out[i] = o.Diameter
	}
	return out
}

// Biomasses returns a copy of the biomass column.
func (d Dataset) Biomasses() []float64 {
	out := make([]float64, len(d.obs))
	for i, o := range d.obs {
		out[i] = o.Biomass
	}
	return out
}

// String returns a short description of the dataset.
func (d Dataset) String() string {
	return fmt.Sprintf("Dataset{species=%q, n=%d}", d.species, len(d.obs))
}
