package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Observe(t *testing.T) {
	m := NewWithRegistry("test", prometheus.NewRegistry())

	m.ObserveBooking(BookingCreated)
	m.ObserveBooking(BookingConflict)
	m.ObserveBooking(BookingConflict)
	m.ObserveSlotCache(true)
	m.ObserveSlotCache(false)
	m.ObserveDBQuery("select", 0.01, errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingOutcomes.WithLabelValues("test", BookingCreated)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingOutcomes.WithLabelValues("test", BookingConflict)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SlotCacheRequests.WithLabelValues("test", "hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBQueryErrors.WithLabelValues("test", "select")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveBooking(BookingCreated)
		m.ObserveSlotCache(true)
		m.ObserveHTTP("GET", "/api/health", "200", 0.1)
		m.ObserveDBQuery("select", 0.1, nil)
		m.SetDBPoolStats(1, 1, 0)
	})
	assert.Equal(t, "", m.ServiceName())
}
