package eval

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/mat"

	"github.com/yuehhua/gmr/internal/buffer"
	"github.com/yuehhua/gmr/internal/metrics"
	"github.com/yuehhua/gmr/model"
)

// Report is a snapshot of the evaluation metrics of a fitted model over one batch.
type Report struct {
	ID            string             `json:"id"`
	Model         string             `json:"model"`
	Samples       int                `json:"samples"`
	LogLikelihood float64            `json:"log_likelihood"`
	AIC           float64            `json:"aic"`
	BIC           float64            `json:"bic"`
	MSE           float64            `json:"mse,omitempty"`
	Components    []ComponentSummary `json:"components,omitempty"`
}

// ComponentSummary describes the contribution of a single mixture component
// to the evaluated batch.
type ComponentSummary struct {
	Component     int     `json:"component"`
	Size          int     `json:"size"`
	AvgLikelihood float64 `json:"avg_likelihood"`
	MaxLikelihood float64 `json:"max_likelihood"`
}

// EvaluateGMR computes the full metric report for a mixture model over the batch.
func EvaluateGMR(label string, m *model.GMR, x mat.Matrix, opts ...Option) Report {
	n, _ := x.Dims()
	k := m.NumComponents()

	ls := ComponentLikelihoods(m, x)
	clusters := Assign(m, x)

	sizes := make(map[int]int, k)
	for _, c := range clusters {
		sizes[c]++
	}

	components := make([]ComponentSummary, k)
	for c := 1; c <= k; c++ {
		stats := buffer.NewStats()
		for _, l := range ls[c] {
			stats.Push(l)
		}
		components[c-1] = ComponentSummary{
			Component:     c,
			Size:          sizes[c],
			AvgLikelihood: stats.Avg(),
			MaxLikelihood: stats.Max(),
		}
	}

	report := Report{
		ID:            uuid.New().String(),
		Model:         label,
		Samples:       n,
		LogLikelihood: MixtureLogLikelihood(ls, clusters, k),
		AIC:           MixtureAIC(m, x, opts...),
		BIC:           MixtureBIC(m, x, opts...),
		Components:    components,
	}

	metrics.Observer.Increment(label, "gmr")
	log.Debug().
		Str("id", report.ID).
		Str("model", label).
		Int("samples", n).
		Float64("loglikelihood", report.LogLikelihood).
		Msg("evaluated mixture model")

	return report
}

// EvaluateRegression computes the full metric report for a regression model
// over the batch with the given targets.
func EvaluateRegression(label string, m *model.Regression, x mat.Matrix, y []float64, opts ...Option) (Report, error) {
	aic, err := AIC(m, x, y, opts...)
	if err != nil {
		return Report{}, err
	}
	bic, err := BIC(m, x, y, opts...)
	if err != nil {
		return Report{}, err
	}

	report := Report{
		ID:            uuid.New().String(),
		Model:         label,
		Samples:       len(y),
		LogLikelihood: RegressionLogLikelihood(m, x, y),
		AIC:           aic,
		BIC:           bic,
		MSE:           MSE(m, x, y),
	}

	metrics.Observer.Increment(label, "regression")
	log.Debug().
		Str("id", report.ID).
		Str("model", label).
		Int("samples", len(y)).
		Float64("loglikelihood", report.LogLikelihood).
		Float64("mse", report.MSE).
		Msg("evaluated regression model")

	return report, nil
}
