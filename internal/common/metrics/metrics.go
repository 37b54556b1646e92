// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RelayRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_requests_total",
			Help: "Total number of API requests by endpoint and status code",
		},
		[]string{"endpoint", "status"},
	)

	RelayRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "relay_request_duration_seconds",
			Help: "Duration of API request handling in seconds",
		},
		[]string{"endpoint"},
	)

	RelayUpstreamFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_upstream_failures_total",
			Help: "Total number of failed generative API calls",
		},
		[]string{"endpoint"},
	)

	RelayCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_cache_lookups_total",
			Help: "Total number of search cache lookups by result",
		},
		[]string{"result"},
	)

	RelaySessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "relay_sessions_active",
			Help: "Number of chat sessions currently registered",
		},
	)
)
