// Package allom fits allometric equations to tree biomass data.
//
// An allometric equation is a power law predicting a hard-to-measure
// biological quantity, such as total live biomass, from an easily measured
// one, such as diameter at breast height. The relationship is linear on
// log-log axes, so the model is recovered with a simple ordinary-least-squares
// fit on log10-transformed data.
//
// The library is organized as a strict pipeline of pure stages:
//
//	dataset.Filter        select one species, drop incomplete rows
//	preprocessing         log10 transform both variables
//	regression.FitOLS     closed-form slope, intercept, residuals
//	allometry.FromFit     package the fit as a power-law predictor
//	metrics.Evaluate      RMSE in log and original units
//
// The pipeline package composes the stages; each stage owns and returns a new
// immutable value, and a failure in any stage aborts the whole run.
//
// # Quick start
//
//	raw, err := dataset.NewLoader("biomass.csv").Load(dataset.Columns{
//		Species:  "species",
//		Diameter: "dbh_cm",
//		Biomass:  "ptot_kg",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := pipeline.Run(raw, "Picea abies")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Println(result.Equation.Formula())
//	predicted, _ := result.Equation.Predict(50)
//	fmt.Printf("predicted biomass at DBH 50: %.1f\n", predicted)
package allom
