package eval

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"

	"github.com/yuehhua/gmr/model"
)

func testGMR(t *testing.T) *model.GMR {
	t.Helper()
	m, err := model.NewGMR([]model.Distribution{
		model.NewNormal(-2, 1),
		model.NewNormal(3, 0.5),
	}, []float64{0.4, 0.6})
	assert.NoError(t, err)
	return m
}

func testBatch() *mat.Dense {
	return mat.NewDense(5, 1, []float64{-2.5, -1.8, 0.2, 2.9, 3.3})
}

func logNormal(x, mu, sigma float64) float64 {
	z := (x - mu) / sigma
	return -0.5*z*z - math.Log(sigma) - 0.5*math.Log(2*math.Pi)
}

func TestLikelihood(t *testing.T) {
	m := testGMR(t)
	x := testBatch()

	got := Likelihood(m, x)
	assert.Len(t, got, 5)
	for i := 0; i < 5; i++ {
		v := x.At(i, 0)
		expected := 0.4*math.Exp(logNormal(v, -2, 1)) + 0.6*math.Exp(logNormal(v, 3, 0.5))
		assert.InDelta(t, expected, got[i], 1e-10)
	}
}

func TestLogLikelihood(t *testing.T) {
	m := testGMR(t)
	x := testBatch()

	got := LogLikelihood(m, x)
	likelihood := Likelihood(m, x)
	assert.Len(t, got, 5)
	for i := range got {
		assert.InDelta(t, math.Log(likelihood[i]), got[i], 1e-10)
	}
}

func TestLikelihood_FailedModel(t *testing.T) {
	x := testBatch()

	likelihood := Likelihood(model.Failed{}, x)
	assert.Len(t, likelihood, 5)
	for _, v := range likelihood {
		assert.Equal(t, 0.0, v)
	}

	loglikelihood := LogLikelihood(model.Failed{}, x)
	assert.Len(t, loglikelihood, 5)
	for _, v := range loglikelihood {
		assert.True(t, math.IsInf(v, -1))
	}
}

func TestRegressionLogLikelihood(t *testing.T) {
	m := model.NewRegression([]float64{2}, 1, 0.5)
	x := mat.NewDense(4, 1, []float64{0, 1, 2, 3})
	y := []float64{1.1, 2.9, 5.2, 6.8}

	var expected float64
	for i := range y {
		expected += logNormal(y[i]-(2*x.At(i, 0)+1), 0, 0.5)
	}

	got := RegressionLogLikelihood(m, x, y)
	assert.InDelta(t, expected, got, 1e-10)
	assert.InDelta(t, -expected, NLL(m, x, y), 1e-10)
}
