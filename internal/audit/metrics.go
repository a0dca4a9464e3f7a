package audit

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	recordsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "trastienda_audit_records_total",
		Help: "Audit records written, by action",
	}, []string{"action"})

	appendDurationMs = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "trastienda_audit_append_duration_ms",
		Help:    "Latency of audit store appends in milliseconds",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25, 50, 100},
	})

	appendFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "trastienda_audit_append_failures_total",
		Help: "Audit store appends that failed and were surfaced to callers",
	})

	mirrorDroppedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "trastienda_audit_mirror_dropped_total",
		Help: "Records not mirrored because the mirror buffer was full",
	})
)
