package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveFhirRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics("test", reg)

	m.ObserveFhirRequest("list_patients", "success", time.Now())
	m.ObserveFhirRequest("list_patients", "success", time.Now())
	m.ObserveFhirRequest("get_patient", "http_status", time.Now())
	m.AddPatientsFetched(7)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.FhirRequests.WithLabelValues("list_patients", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FhirRequests.WithLabelValues("get_patient", "http_status")))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.FhirPatientsFetched))

	count, err := testutil.GatherAndCount(reg, "test_fhir_client_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveFhirRequest("list_patients", "success", time.Now())
		m.AddPatientsFetched(1)
	})
}
