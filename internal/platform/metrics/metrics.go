// Package metrics holds the HTTP-facing Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics owned by the transport layer.
type Metrics struct {
	ValidationFailures *prometheus.CounterVec
	HistoryRequests    prometheus.Counter
}

// New creates and registers all transport metrics.
func New() *Metrics {
	return &Metrics{
		ValidationFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "trastienda_validation_failures_total",
			Help: "Field validation failures, by field family",
		}, []string{"field"}),
		HistoryRequests: promauto.NewCounter(prometheus.CounterOpts{
			Name: "trastienda_history_requests_total",
			Help: "Audit history lookups served",
		}),
	}
}
