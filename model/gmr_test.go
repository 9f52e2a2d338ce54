package model

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
)

func TestNewGMR(t *testing.T) {

	type test struct {
		components []Distribution
		weights    []float64
		err        bool
	}

	tests := map[string]test{
		"valid": {
			components: []Distribution{NewNormal(0, 1), NewNormal(5, 2)},
			weights:    []float64{0.3, 0.7},
		},
		"no-components": {
			components: []Distribution{},
			weights:    []float64{},
			err:        true,
		},
		"weight-mismatch": {
			components: []Distribution{NewNormal(0, 1), NewNormal(5, 2)},
			weights:    []float64{1},
			err:        true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m, err := NewGMR(tt.components, tt.weights)
			if tt.err {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, len(tt.components), m.NumComponents())
			assert.Equal(t, len(tt.components), m.NumCoefficients())
		})
	}
}

func TestNewGMR_DimensionMismatch(t *testing.T) {
	normal, ok := distmv.NewNormal([]float64{0, 0}, symDiag(1, 1), nil)
	assert.True(t, ok)

	_, err := NewGMR([]Distribution{NewNormal(0, 1), normal}, []float64{0.5, 0.5})
	assert.Error(t, err)
}

func TestGMR_Component(t *testing.T) {
	m, err := NewGMR([]Distribution{NewNormal(0, 1), NewNormal(5, 2)}, []float64{0.3, 0.7})
	assert.NoError(t, err)

	for k := 1; k <= 2; k++ {
		c, err := m.Component(k)
		assert.NoError(t, err)
		assert.NotNil(t, c)
		w, err := m.Weight(k)
		assert.NoError(t, err)
		assert.True(t, w > 0)
	}

	for _, k := range []int{0, -1, 3} {
		_, err := m.Component(k)
		assert.True(t, errors.Is(err, RangeViolationErr))
		_, err = m.Weight(k)
		assert.True(t, errors.Is(err, RangeViolationErr))
	}
}

func TestGMR_Density(t *testing.T) {
	c1 := NewNormal(0, 1)
	c2 := NewNormal(5, 2)
	m, err := NewGMR([]Distribution{c1, c2}, []float64{0.3, 0.7})
	assert.NoError(t, err)

	for _, v := range []float64{-1, 0, 2.5, 5, 10} {
		x := []float64{v}
		expected := 0.3*c1.Prob(x) + 0.7*c2.Prob(x)
		assert.InDelta(t, expected, m.Density(x), 1e-12)
		assert.InDelta(t, math.Log(expected), m.LogDensity(x), 1e-10)
	}
}

func TestGMR_Multivariate(t *testing.T) {
	n1, ok := distmv.NewNormal([]float64{0, 0}, symDiag(1, 1), nil)
	assert.True(t, ok)
	n2, ok := distmv.NewNormal([]float64{3, -3}, symDiag(2, 0.5), nil)
	assert.True(t, ok)

	m, err := NewGMR([]Distribution{n1, n2}, []float64{0.5, 0.5})
	assert.NoError(t, err)
	assert.Equal(t, 2, m.Dim())

	x := []float64{1, -1}
	expected := 0.5*n1.Prob(x) + 0.5*n2.Prob(x)
	assert.InDelta(t, expected, m.Density(x), 1e-12)
}

func TestGMR_WithFit(t *testing.T) {
	m, err := NewGMR([]Distribution{NewNormal(0, 1)}, []float64{1})
	assert.NoError(t, err)
	assert.True(t, math.IsInf(m.Score(), -1))
	assert.Equal(t, 0, m.SampleSize())

	m.WithFit(-12.3, 42)
	assert.Equal(t, -12.3, m.Score())
	assert.Equal(t, 42, m.SampleSize())
}

func symDiag(values ...float64) *mat.SymDense {
	s := mat.NewSymDense(len(values), nil)
	for i, v := range values {
		s.SetSym(i, i, v)
	}
	return s
}
