// Package metrics holds the Prometheus collectors exported on /metrics.
//
//   - pokeapi_upstream_requests_total{method, status} (Counter)
//   - pokeapi_upstream_request_duration_seconds{method} (Histogram)
//   - pokeapi_fanout_size (Histogram): detail fetches issued per list request
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UpstreamRequests counts outbound calls by method and status code.
	// Transport failures are recorded with status "error".
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pokeapi_upstream_requests_total",
			Help: "Total number of requests sent to the upstream Pokémon API",
		},
		[]string{"method", "status"},
	)

	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pokeapi_upstream_request_duration_seconds",
			Help:    "Duration of requests sent to the upstream Pokémon API",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	FanoutSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pokeapi_fanout_size",
			Help:    "Number of concurrent detail fetches issued for one list request",
			Buckets: []float64{0, 1, 5, 10, 20, 50},
		},
	)
)

// StatusLabel renders an HTTP status for the status label; 0 means the
// request never got a response.
func StatusLabel(code int) string {
	if code == 0 {
		return "error"
	}
	return strconv.Itoa(code)
}
