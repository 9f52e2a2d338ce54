package model

// Model is a fitted probabilistic model that can score observations.
// The closed set of variants is GMR, Regression and Failed.
type Model interface {
	// Density evaluates the model density at the given observation.
	Density(x []float64) float64
	// LogDensity evaluates the model log-density at the given observation.
	LogDensity(x []float64) float64
	// NumCoefficients returns the number of free coefficients of the model.
	NumCoefficients() int
	// Score returns the log-likelihood recorded by the upstream fitting step.
	Score() float64
	// SampleSize returns the number of observations the model was fitted on.
	SampleSize() int
}
