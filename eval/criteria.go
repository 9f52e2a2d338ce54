package eval

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/yuehhua/gmr/model"
)

// AIC is the Akaike information criterion of the regression model over the batch.
// The default kind penalizes the weighted log-likelihood; KindMSE penalizes
// the log of the mean squared prediction error instead.
func AIC(m *model.Regression, x mat.Matrix, y []float64, opts ...Option) (float64, error) {
	o := newOptions(opts...)
	ncoef := float64(m.NumCoefficients())
	switch o.Kind {
	case KindLikelihood:
		return 2 * (ncoef - o.Lambda*RegressionLogLikelihood(m, x, y)), nil
	case KindMSE:
		return 2*ncoef + float64(len(y))*math.Log(MSE(m, x, y)), nil
	default:
		return 0, fmt.Errorf("unknown kind '%v': %w", o.Kind, InvalidArgumentErr)
	}
}

// BIC is the bayesian information criterion of the regression model over the
// batch. It differs from AIC only in the coefficient penalty, which scales
// with log(n) instead of 2.
func BIC(m *model.Regression, x mat.Matrix, y []float64, opts ...Option) (float64, error) {
	o := newOptions(opts...)
	penalty := float64(m.NumCoefficients()) * math.Log(float64(len(y)))
	switch o.Kind {
	case KindLikelihood:
		return penalty - 2*o.Lambda*RegressionLogLikelihood(m, x, y), nil
	case KindMSE:
		return penalty + float64(len(y))*math.Log(MSE(m, x, y)), nil
	default:
		return 0, fmt.Errorf("unknown kind '%v': %w", o.Kind, InvalidArgumentErr)
	}
}

// MixtureAIC is the Akaike information criterion of the mixture model over the
// batch, with one free coefficient counted per component.
func MixtureAIC(m *model.GMR, x mat.Matrix, opts ...Option) float64 {
	o := newOptions(opts...)
	ll := floats.Sum(LogLikelihood(m, x))
	return 2 * (float64(m.NumComponents()) - o.Lambda*ll)
}

// MixtureBIC is the bayesian information criterion of the mixture model over the batch.
func MixtureBIC(m *model.GMR, x mat.Matrix, opts ...Option) float64 {
	o := newOptions(opts...)
	n, _ := x.Dims()
	ll := floats.Sum(LogLikelihood(m, x))
	return float64(m.NumComponents())*math.Log(float64(n)) - 2*o.Lambda*ll
}

// ModelAIC is the data-free Akaike information criterion, computed from the
// log-likelihood recorded on the model by the fitting step.
func ModelAIC(m model.Model, opts ...Option) float64 {
	o := newOptions(opts...)
	return 2 * (float64(m.NumCoefficients()) - o.Lambda*m.Score())
}

// ModelBIC is the data-free bayesian information criterion, computed from the
// log-likelihood and sample size recorded on the model by the fitting step.
func ModelBIC(m model.Model, opts ...Option) float64 {
	o := newOptions(opts...)
	return float64(m.NumCoefficients())*math.Log(float64(m.SampleSize())) - 2*o.Lambda*m.Score()
}
