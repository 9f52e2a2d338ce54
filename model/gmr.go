package model

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// RangeViolationErr marks a component index outside of the valid range [1,K].
var RangeViolationErr = errors.New("component index out of range")

// GMR is a fitted gaussian mixture regression model with K components.
// Component indices are 1-based throughout, matching the cluster labels
// produced by hard assignment.
type GMR struct {
	components []Distribution
	weights    []float64
	score      float64
	samples    int
}

// NewGMR creates a mixture model from the fitted components and their mixing weights.
func NewGMR(components []Distribution, weights []float64) (*GMR, error) {
	if len(components) == 0 {
		return nil, fmt.Errorf("no components given")
	}
	if len(weights) != len(components) {
		return nil, fmt.Errorf("inconsistent weights %d vs components %d", len(weights), len(components))
	}
	dim := components[0].Dim()
	for k, c := range components {
		if c.Dim() != dim {
			return nil, fmt.Errorf("inconsistent dimension %d for component %d vs %d", c.Dim(), k+1, dim)
		}
	}
	return &GMR{
		components: components,
		weights:    weights,
		score:      math.Inf(-1),
	}, nil
}

// WithFit records the log-likelihood and sample size reported by the fitting step.
func (g *GMR) WithFit(score float64, samples int) *GMR {
	g.score = score
	g.samples = samples
	return g
}

// NumComponents returns K.
func (g *GMR) NumComponents() int {
	return len(g.components)
}

// Dim returns the dimension of the observations the model was fitted on.
func (g *GMR) Dim() int {
	return g.components[0].Dim()
}

// Component returns the k-th component distribution for k in [1,K].
func (g *GMR) Component(k int) (Distribution, error) {
	if k < 1 || k > len(g.components) {
		return nil, fmt.Errorf("component %d of %d: %w", k, len(g.components), RangeViolationErr)
	}
	return g.components[k-1], nil
}

// Weight returns the mixing weight of the k-th component for k in [1,K].
func (g *GMR) Weight(k int) (float64, error) {
	if k < 1 || k > len(g.weights) {
		return 0, fmt.Errorf("component %d of %d: %w", k, len(g.weights), RangeViolationErr)
	}
	return g.weights[k-1], nil
}

// Density evaluates the mixture density at the given observation.
func (g *GMR) Density(x []float64) float64 {
	var p float64
	for k, c := range g.components {
		p += g.weights[k] * c.Prob(x)
	}
	return p
}

// LogDensity evaluates the mixture log-density at the given observation.
func (g *GMR) LogDensity(x []float64) float64 {
	terms := make([]float64, len(g.components))
	for k, c := range g.components {
		terms[k] = math.Log(g.weights[k]) + c.LogProb(x)
	}
	return floats.LogSumExp(terms)
}

// NumCoefficients counts one free coefficient per mixture component.
func (g *GMR) NumCoefficients() int {
	return len(g.components)
}

func (g *GMR) Score() float64 {
	return g.score
}

func (g *GMR) SampleSize() int {
	return g.samples
}
