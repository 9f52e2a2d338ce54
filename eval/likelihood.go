package eval

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/yuehhua/gmr/model"
)

// Likelihood evaluates the model density at each row of x.
// A failed model yields an all-zero vector without touching the density.
func Likelihood(m model.Model, x mat.Matrix) []float64 {
	n, _ := x.Dims()
	out := make([]float64, n)
	if _, ok := m.(model.Failed); ok {
		return out
	}
	for i := 0; i < n; i++ {
		out[i] = m.Density(mat.Row(nil, i, x))
	}
	return out
}

// LogLikelihood evaluates the model log-density at each row of x.
// A failed model yields an all -Inf vector without touching the density.
func LogLikelihood(m model.Model, x mat.Matrix) []float64 {
	n, _ := x.Dims()
	out := make([]float64, n)
	if _, ok := m.(model.Failed); ok {
		for i := range out {
			out[i] = math.Inf(-1)
		}
		return out
	}
	for i := 0; i < n; i++ {
		out[i] = m.LogDensity(mat.Row(nil, i, x))
	}
	return out
}

// RegressionLogLikelihood is the total log-likelihood of the targets under
// the fitted noise distribution of the regression model.
func RegressionLogLikelihood(m *model.Regression, x mat.Matrix, y []float64) float64 {
	var sum float64
	for i := range y {
		sum += m.ResidualLogDensity(m.Residual(mat.Row(nil, i, x), y[i]))
	}
	return sum
}

// NLL is the negative log-likelihood of the regression model over the batch.
func NLL(m *model.Regression, x mat.Matrix, y []float64) float64 {
	return -RegressionLogLikelihood(m, x, y)
}
