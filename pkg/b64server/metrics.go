package b64server

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/epithet-ssh/b64/pkg/b64"
)

type metrics struct {
	requests        *prometheus.CounterVec
	classifications *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "b64_requests_total",
			Help: "Requests handled, by operation and outcome",
		}, []string{"op", "outcome"}),
		classifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "b64_classifications_total",
			Help: "Classification results, by string type",
		}, []string{"type"}),
	}
	reg.MustRegister(m.requests, m.classifications)
	return m
}

func (m *metrics) request(op, outcome string) {
	m.requests.WithLabelValues(op, outcome).Inc()
}

func (m *metrics) classification(t b64.StringType) {
	m.classifications.WithLabelValues(t.String()).Inc()
}
