package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "payroll"

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)
)

// Business metrics
var (
	CalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calculations_total",
			Help:      "Total number of payroll calculations run",
		},
		[]string{"mode"}, // "simple" or "detailed"
	)

	EntriesStored = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "entries_stored",
			Help:      "Current number of work entries in the session store",
		},
	)

	ScenariosLoaded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scenarios_loaded_total",
			Help:      "Total number of demo scenario loads",
		},
		[]string{"scenario"},
	)
)
