package metrics

import "github.com/prometheus/client_golang/prometheus"

type Prometheus struct {
	Evaluations *prometheus.CounterVec
}

func NewPrometheusMetrics() Prometheus {
	return Prometheus{Evaluations: prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gmr",
			Name:      "evaluations",
		}, []string{"model", "metric"}),
	}
}
