package model

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// Distribution evaluates a probability density over points of a fixed dimension.
// distmv.Normal satisfies it directly for multivariate components.
type Distribution interface {
	Dim() int
	Prob(x []float64) float64
	LogProb(x []float64) float64
}

// Normal adapts the scalar gonum normal to the Distribution interface
// for one-dimensional observation batches.
type Normal struct {
	dist distuv.Normal
}

// NewNormal creates a scalar normal distribution with the given mean and standard deviation.
func NewNormal(mu, sigma float64) Normal {
	return Normal{dist: distuv.Normal{Mu: mu, Sigma: sigma}}
}

func (n Normal) Dim() int {
	return 1
}

func (n Normal) Prob(x []float64) float64 {
	return n.dist.Prob(x[0])
}

func (n Normal) LogProb(x []float64) float64 {
	return n.dist.LogProb(x[0])
}
