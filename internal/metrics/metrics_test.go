package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsExportsCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveRequest("GET", "/api/v1/employees", 200, 20*time.Millisecond)
	m.ObserveRequest("GET", "", 404, time.Millisecond)
	m.IncAuthFailure("TOKEN_EXPIRED")
	m.IncAuthFailure("TOKEN_EXPIRED")
	m.IncOutboxSent()
	m.IncOutboxFailed()

	mfs, err := reg.Gather()
	require.NoError(t, err)

	got, err := counterValue(mfs, "facepay_auth_failures_total", "reason", "TOKEN_EXPIRED")
	require.NoError(t, err)
	assert.Equal(t, float64(2), got)

	got, err = counterValue(mfs, "facepay_http_requests_total", "route", "/api/v1/employees")
	require.NoError(t, err)
	assert.Equal(t, float64(1), got)

	got, err = counterValue(mfs, "facepay_http_requests_total", "route", "unknown")
	require.NoError(t, err)
	assert.Equal(t, float64(1), got)

	got, err = counterValue(mfs, "facepay_outbox_events_total", "result", "failed")
	require.NoError(t, err)
	assert.Equal(t, float64(1), got)
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveRequest("GET", "/", 200, time.Second)
		m.IncAuthFailure("x")
		m.IncOutboxSent()
		m.IncOutboxFailed()
	})
	assert.NotPanics(t, func() {
		New(nil).IncAuthFailure("x")
	})
}

func counterValue(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		for _, metric := range mf.GetMetric() {
			for _, l := range metric.GetLabel() {
				if l.GetName() == label && l.GetValue() == value {
					return metric.GetCounter().GetValue(), nil
				}
			}
		}
	}
	return 0, fmt.Errorf("metric %q with %s=%s not found", name, label, value)
}
