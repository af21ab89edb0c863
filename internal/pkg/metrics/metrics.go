package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all application metrics
type Metrics struct {
	// FHIR client metrics
	FhirRequests        *prometheus.CounterVec
	FhirRequestLatency  *prometheus.HistogramVec
	FhirPatientsFetched prometheus.Counter

	// HTTP metrics
	HTTPRequests       *prometheus.CounterVec
	HTTPRequestLatency *prometheus.HistogramVec

	// Viewer session metrics
	ActiveSessions prometheus.Gauge
}

// NewMetrics creates all application metrics and registers them on reg.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		FhirRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "fhir_client",
			Name:      "requests_total",
			Help:      "Total number of requests sent to the FHIR server",
		}, []string{"operation", "outcome"}),
		FhirRequestLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "fhir_client",
			Name:      "request_duration_seconds",
			Help:      "Duration of requests sent to the FHIR server",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"operation"}),
		FhirPatientsFetched: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "fhir_client",
			Name:      "patients_fetched_total",
			Help:      "Total number of Patient resources received from the FHIR server",
		}),

		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests served",
		}, []string{"method", "route", "status"}),
		HTTPRequestLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests served",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		}, []string{"method", "route"}),

		ActiveSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "viewer",
			Name:      "active_sessions",
			Help:      "Current number of viewer sessions held in memory",
		}),
	}
}

// NewNopMetrics returns metrics registered on a private registry, for tests
// and tools that do not expose /metrics.
func NewNopMetrics() *Metrics {
	return NewMetrics("", prometheus.NewRegistry())
}

func (m *Metrics) ObserveFhirRequest(operation, outcome string, started time.Time) {
	if m == nil {
		return
	}
	m.FhirRequests.WithLabelValues(operation, outcome).Inc()
	m.FhirRequestLatency.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}

func (m *Metrics) AddPatientsFetched(count int) {
	if m == nil {
		return
	}
	m.FhirPatientsFetched.Add(float64(count))
}
