package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OperationsTotal counts registry operations by operation and result
	OperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "claim_registry_operations_total",
			Help: "Total number of claim registry operations",
		},
		[]string{"operation", "result"},
	)

	// OperationDuration tracks registry operation processing time
	OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "claim_registry_operation_duration_seconds",
			Help:    "Claim registry operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// EventsEmitted counts notifications delivered to the metrics sink
	EventsEmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "claim_registry_events_emitted_total",
			Help: "Total number of claim events emitted",
		},
		[]string{"kind"},
	)

	// ActiveClaims tracks the number of fingerprints currently claimed
	ActiveClaims = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "claim_registry_active_claims",
			Help: "Number of fingerprints currently claimed",
		},
	)

	// LastHeight tracks the last height handed out by the height source
	LastHeight = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "claim_registry_last_height",
			Help: "Last height reported by the height source",
		},
		[]string{"source"},
	)

	// ErrorsTotal counts errors by type
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "claim_registry_errors_total",
			Help: "Total number of errors",
		},
		[]string{"component", "error_type"},
	)
)
