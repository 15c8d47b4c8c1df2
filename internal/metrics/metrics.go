package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticketmaster_requests_total",
			Help: "Total number of Ticketmaster Discovery requests by resource and status",
		},
		[]string{"resource", "status"},
	)

	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ticketmaster_request_duration_seconds",
			Help:    "Duration of Ticketmaster Discovery requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"resource"},
	)

	UpstreamCircuitState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ticketmaster_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
	)

	RateBudgetRemaining = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "rate_budget_remaining",
			Help: "Upstream calls left in the current rate window",
		},
	)

	RateBudgetWaits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rate_budget_waits_total",
			Help: "Number of times a caller suspended for the rate window to reset",
		},
	)

	AggregationPages = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "aggregation_pages_fetched",
			Help:    "Pages fetched per aggregation",
			Buckets: []float64{1, 2, 3, 4, 5, 10},
		},
		[]string{"resource"},
	)

	AggregationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aggregation_errors_total",
			Help: "Aggregations aborted by an upstream or context error",
		},
		[]string{"resource"},
	)

	RelationshipWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relationship_writes_total",
			Help: "Favorite and review writes by outcome",
		},
		[]string{"kind", "outcome"},
	)
)

func RecordUpstreamRequest(resource string, status int, duration time.Duration) {
	label := "error"
	if status != 0 {
		label = strconv.Itoa(status)
	}
	UpstreamRequestsTotal.WithLabelValues(resource, label).Inc()
	UpstreamRequestDuration.WithLabelValues(resource).Observe(duration.Seconds())
}
