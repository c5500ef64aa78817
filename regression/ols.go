// Package regression fits a simple ordinary-least-squares line through
// log-transformed observation pairs.
package regression

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/arbolab/allom/pkg/errors"
)

// FitResult holds the outcome of a simple linear regression. It is created
// once by FitOLS and never mutated afterwards.
type FitResult struct {
	// Slope and Intercept define the best-fit line y = Slope*x + Intercept.
	Slope     float64
	Intercept float64

	// Residuals are y_i - (Slope*x_i + Intercept), aligned by index with the
	// input points.
	Residuals []float64

	// StdErr is the residual standard error sqrt(SSR / (n-2)). For n <= 2 the
	// denominator vanishes; the adopted policy is to report 0 rather than
	// fail the fit.
	StdErr float64

	// RSquared is the coefficient of determination, 0 when y has no variance.
	RSquared float64

	// N is the number of points fitted.
	N int
}

// FitOLS computes the closed-form least-squares slope and intercept of y
// against x:
//
//	slope     = cov(x, y) / var(x)
//	intercept = mean(y) - slope*mean(x)
//
// It requires at least two points and non-zero variance in x.
func FitOLS(x, y []float64) (*FitResult, error) {
	if len(x) != len(y) {
		return nil, errors.Newf("regression: mismatched lengths: %d x values, %d y values", len(x), len(y))
	}
	n := len(x)
	if n < 2 {
		return nil, errors.NewInsufficientDataError("FitOLS", n, "need at least 2 points to define a line")
	}
	if stat.Variance(x, nil) == 0 {
		return nil, errors.NewInsufficientDataError("FitOLS", n, "all explanatory values identical (zero variance)")
	}

	intercept, slope := stat.LinearRegression(x, y, nil, false)

	residuals := make([]float64, n)
	var ssr float64
	for i := range x {
		residuals[i] = y[i] - (slope*x[i] + intercept)
		ssr += residuals[i] * residuals[i]
	}

	stdErr := 0.0
	if n > 2 {
		stdErr = math.Sqrt(ssr / float64(n-2))
	}

	yMean := stat.Mean(y, nil)
	var tss float64
	for i := range y {
		tss += (y[i] - yMean) * (y[i] - yMean)
	}
	rSquared := 0.0
	if tss > 0 {
		rSquared = 1 - ssr/tss
	}

	return &FitResult{
		Slope:     slope,
		Intercept: intercept,
		Residuals: residuals,
		StdErr:    stdErr,
		RSquared:  rSquared,
		N:         n,
	}, nil
}

// String returns a short description of the fitted line.
func (r *FitResult) String() string {
	return fmt.Sprintf("FitResult{y = %.4f*x + %.4f, n=%d, se=%.4f, R²=%.4f}",
		r.Slope, r.Intercept, r.N, r.StdErr, r.RSquared)
}
