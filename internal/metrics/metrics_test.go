package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstbook/internal/metrics"
)

func TestMetrics_Record(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.ObserveHTTP("GET", "/api/v1/hsn/suggest", 200, 15*time.Millisecond)
	m.ObserveHTTP("GET", "/api/v1/hsn/suggest", 200, 5*time.Millisecond)
	m.ObserveSuggest(3)
	m.ObserveSuggest(0)
	m.ObserveSearch(2)
	m.SetCatalogSize(512)
	m.ObserveTotals(true)
	m.ObserveTotals(false)
	m.ObserveTotals(false)
	m.ObservePayment("UPI")

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "gstbook_http_requests_total")
	assert.Contains(t, names, "gstbook_hsn_suggest_results")

	count, err := testutil.GatherAndCount(reg, "gstbook_hsn_searches_total")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	count, err = testutil.GatherAndCount(reg, "gstbook_invoice_totals_computed_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *metrics.Metrics

	assert.NotPanics(t, func() {
		m.ObserveHTTP("GET", "/", 200, time.Millisecond)
		m.ObserveSuggest(1)
		m.ObserveSearch(1)
		m.SetCatalogSize(1)
		m.ObserveTotals(true)
		m.ObservePayment("CASH")
	})
}

func TestNew_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.New(reg)

	assert.Panics(t, func() { metrics.New(reg) })
}
