package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Fetch outcome label values.
const (
	OutcomeSuccess        = "success"
	OutcomeEmpty          = "empty"
	OutcomeHTTPError      = "http_error"
	OutcomeTransportError = "transport_error"
	OutcomeDecodeError    = "decode_error"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the viewer.
type Metrics struct {
	// Upstream NWS API metrics.
	FetchRequests  *prometheus.CounterVec // labels: outcome={success,empty,http_error,transport_error,decode_error}
	FetchDuration  prometheus.Histogram
	AlertsReturned prometheus.Histogram

	// Kafka sink metrics.
	RowsPublished prometheus.Counter
	PublishErrors prometheus.Counter

	// Viewer HTTP metrics.
	HTTPRequests         *prometheus.CounterVec   // labels: method, route, status
	HTTPRequestDuration  *prometheus.HistogramVec // labels: method, route
	HTTPRequestsInFlight prometheus.Gauge
}

// NewMetrics creates and registers all viewer metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := NewMetricsForTesting()

	prometheus.MustRegister(
		m.FetchRequests,
		m.FetchDuration,
		m.AlertsReturned,
		m.RowsPublished,
		m.PublishErrors,
		m.HTTPRequests,
		m.HTTPRequestDuration,
		m.HTTPRequestsInFlight,
	)

	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		FetchRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nws_viewer",
			Name:      "fetch_requests_total",
			Help:      "Active alert fetches against the NWS API by outcome.",
		}, []string{"outcome"}),
		FetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "nws_viewer",
			Name:      "fetch_duration_seconds",
			Help:      "NWS API request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		AlertsReturned: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "nws_viewer",
			Name:      "alerts_returned",
			Help:      "Number of active alerts returned per fetch.",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000},
		}),
		RowsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "nws_viewer",
			Name:      "rows_published_total",
			Help:      "Total alert rows written to the Kafka sink topic.",
		}),
		PublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "nws_viewer",
			Name:      "publish_errors_total",
			Help:      "Total failed Kafka publish attempts.",
		}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nws_viewer",
			Name:      "http_requests_total",
			Help:      "Viewer HTTP requests by method, route, and status.",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "nws_viewer",
			Name:      "http_request_duration_seconds",
			Help:      "Viewer HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		HTTPRequestsInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "nws_viewer",
			Name:      "http_requests_in_flight",
			Help:      "Viewer HTTP requests currently being served.",
		}),
	}
}
