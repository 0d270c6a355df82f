// Package metrics provides Prometheus metrics for catalog queries.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// queryDuration tracks catalog query duration in seconds.
	// Labels: operation, outcome
	queryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_query_duration_seconds",
			Help:    "Catalog query duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "outcome"},
	)

	// queriesTotal tracks total number of catalog queries.
	// Labels: operation, outcome
	queriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_queries_total",
			Help: "Total number of catalog queries",
		},
		[]string{"operation", "outcome"},
	)
)

// RecordQuery records duration and outcome for a single catalog operation.
func RecordQuery(operation string, duration time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	queryDuration.WithLabelValues(operation, outcome).Observe(duration.Seconds())
	queriesTotal.WithLabelValues(operation, outcome).Inc()
}
