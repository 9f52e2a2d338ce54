package model

import "math"

// Failed is the sentinel variant for models whose upstream fit did not converge.
// It propagates fixed poison values instead of raising errors, so that metric
// computations over a batch of candidate models stay total.
type Failed struct{}

func (Failed) Density(x []float64) float64 {
	return 0
}

func (Failed) LogDensity(x []float64) float64 {
	return math.Inf(-1)
}

func (Failed) NumCoefficients() int {
	return 0
}

func (Failed) Score() float64 {
	return math.Inf(-1)
}

func (Failed) SampleSize() int {
	return 0
}
