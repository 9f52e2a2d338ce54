package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var Observer = &Metrics{
	mutex:      new(sync.RWMutex),
	prometheus: NewPrometheusMetrics(),
}

func init() {
	prometheus.MustRegister(Observer.prometheus.Evaluations)
}

type Metrics struct {
	mutex      *sync.RWMutex
	prometheus Prometheus
}

// Increment counts one evaluation for the given model and metric labels.
func (m *Metrics) Increment(labels ...string) {
	m.prometheus.Evaluations.WithLabelValues(labels...).Inc()
}
