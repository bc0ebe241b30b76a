// Package metrics exposes the Prometheus collectors served on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"method", "path", "status"},
	)

	CheckToggleCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "check_toggle_count",
			Help: "Total number of completion toggles",
		},
		[]string{"direction"}, // direction: on, off
	)

	StatsQueryCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stats_query_count",
			Help: "Total number of stats queries served",
		},
		[]string{"kind"}, // kind: habit, summary, tasks
	)
)

func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

func IncrementCheckToggle(direction string) {
	CheckToggleCount.WithLabelValues(direction).Inc()
}

func IncrementStatsQuery(kind string) {
	StatsQueryCount.WithLabelValues(kind).Inc()
}
