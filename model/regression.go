package model

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Regression is a fitted linear regression model with gaussian noise.
type Regression struct {
	weights   []float64
	intercept float64
	noise     distuv.Normal
	score     float64
	samples   int
}

// NewRegression creates a regression model from the fitted coefficients
// and the standard deviation of the residual noise.
func NewRegression(weights []float64, intercept, sigma float64) *Regression {
	return &Regression{
		weights:   weights,
		intercept: intercept,
		noise:     distuv.Normal{Mu: 0, Sigma: sigma},
		score:     math.Inf(-1),
	}
}

// WithFit records the log-likelihood and sample size reported by the fitting step.
func (r *Regression) WithFit(score float64, samples int) *Regression {
	r.score = score
	r.samples = samples
	return r
}

// Predict evaluates the regression line at the given input.
func (r *Regression) Predict(x []float64) float64 {
	return floats.Dot(r.weights, x) + r.intercept
}

// Residual is the prediction error for the given input and target.
func (r *Regression) Residual(x []float64, y float64) float64 {
	return y - r.Predict(x)
}

// ResidualDensity evaluates the noise density at the given residual.
func (r *Regression) ResidualDensity(res float64) float64 {
	return r.noise.Prob(res)
}

// ResidualLogDensity evaluates the noise log-density at the given residual.
func (r *Regression) ResidualLogDensity(res float64) float64 {
	return r.noise.LogProb(res)
}

// Density treats the observation as the input vector with the target appended
// as its last element, and evaluates the noise density at the residual.
func (r *Regression) Density(x []float64) float64 {
	last := len(x) - 1
	return r.ResidualDensity(r.Residual(x[:last], x[last]))
}

// LogDensity treats the observation as the input vector with the target
// appended as its last element, and evaluates the noise log-density at the residual.
func (r *Regression) LogDensity(x []float64) float64 {
	last := len(x) - 1
	return r.ResidualLogDensity(r.Residual(x[:last], x[last]))
}

// NumCoefficients counts the regression weights and the intercept.
func (r *Regression) NumCoefficients() int {
	return len(r.weights) + 1
}

func (r *Regression) Score() float64 {
	return r.score
}

func (r *Regression) SampleSize() int {
	return r.samples
}
