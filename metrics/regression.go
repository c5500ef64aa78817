// Package metrics quantifies the prediction error of an allometric equation
// against observed data.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/arbolab/allom/pkg/errors"
)

// MSE computes the mean squared error between two vectors.
func MSE(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewEmptyInputError("MSE")
	}
	if yPred.Len() != n {
		return 0, errors.Newf("metrics: MSE: mismatched lengths %d and %d", n, yPred.Len())
	}

	var sum float64
	for i := 0; i < n; i++ {
		diff := yTrue.AtVec(i) - yPred.AtVec(i)
		sum += diff * diff
	}
	return sum / float64(n), nil
}

// RMSE computes the root mean squared error between two vectors.
func RMSE(yTrue, yPred *mat.VecDense) (float64, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// MAE computes the mean absolute error between two vectors.
func MAE(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewEmptyInputError("MAE")
	}
	if yPred.Len() != n {
		return 0, errors.Newf("metrics: MAE: mismatched lengths %d and %d", n, yPred.Len())
	}

	var sum float64
	for i := 0; i < n; i++ {
		sum += math.Abs(yTrue.AtVec(i) - yPred.AtVec(i))
	}
	return sum / float64(n), nil
}
