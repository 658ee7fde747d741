package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	// HTTP
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Business
	StkPushesTotal *prometheus.CounterVec
	CallbacksTotal *prometheus.CounterVec

	// Validation
	ValidationErrors *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stkgateway_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stkgateway_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "stkgateway_http_requests_in_flight",
				Help: "Number of HTTP requests currently being served",
			},
		),
		StkPushesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stkgateway_stk_pushes_total",
				Help: "STK push initiations by outcome",
			},
			[]string{"result"},
		),
		CallbacksTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stkgateway_callbacks_total",
				Help: "Gateway callbacks by outcome",
			},
			[]string{"result"},
		),
		ValidationErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stkgateway_validation_errors_total",
				Help: "Request validation failures by field and rule",
			},
			[]string{"field", "tag"},
		),
	}
}

func (m *Metrics) RecordHTTPRequest(method, path, statusCode string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration.Seconds())
}

func (m *Metrics) RecordStkPush(result string) {
	m.StkPushesTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) RecordCallback(result string) {
	m.CallbacksTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) RecordValidationError(field, tag string) {
	m.ValidationErrors.WithLabelValues(field, tag).Inc()
}
