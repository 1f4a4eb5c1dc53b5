// Package metrics exposes the Prometheus instruments used by the HTTP layer
// and the invoicing services.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the service's collectors. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	hsnSearches     *prometheus.CounterVec
	hsnResults      prometheus.Histogram
	hsnCatalogSize  prometheus.Gauge
	invoicesTotaled *prometheus.CounterVec
	payments        *prometheus.CounterVec
}

// New creates the collectors and registers them with reg. A nil reg uses
// the default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gstbook_http_requests_total",
			Help: "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gstbook_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		hsnSearches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gstbook_hsn_searches_total",
			Help: "HSN/SAC code searches by kind (suggest, search) and outcome.",
		}, []string{"kind", "outcome"}),
		hsnResults: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "gstbook_hsn_suggest_results",
			Help:    "Number of matches returned per suggest query.",
			Buckets: []float64{0, 1, 2, 3, 5, 8, 10},
		}),
		hsnCatalogSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gstbook_hsn_catalog_entries",
			Help: "Entries in the in-memory code catalog.",
		}),
		invoicesTotaled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gstbook_invoice_totals_computed_total",
			Help: "Invoice totals computations by supply type.",
		}, []string{"supply"}),
		payments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gstbook_payments_recorded_total",
			Help: "Payments recorded by method.",
		}, []string{"method"}),
	}

	reg.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.hsnSearches,
		m.hsnResults,
		m.hsnCatalogSize,
		m.invoicesTotaled,
		m.payments,
	)
	return m
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveSuggest records a matcher query and the number of matches returned.
func (m *Metrics) ObserveSuggest(results int) {
	if m == nil {
		return
	}
	m.hsnSearches.WithLabelValues("suggest", outcome(results)).Inc()
	m.hsnResults.Observe(float64(results))
}

// ObserveSearch records a catalog filter query.
func (m *Metrics) ObserveSearch(results int) {
	if m == nil {
		return
	}
	m.hsnSearches.WithLabelValues("search", outcome(results)).Inc()
}

// SetCatalogSize records the number of loaded catalog entries.
func (m *Metrics) SetCatalogSize(n int) {
	if m == nil {
		return
	}
	m.hsnCatalogSize.Set(float64(n))
}

// ObserveTotals records one invoice totals computation.
func (m *Metrics) ObserveTotals(intrastate bool) {
	if m == nil {
		return
	}
	supply := "interstate"
	if intrastate {
		supply = "intrastate"
	}
	m.invoicesTotaled.WithLabelValues(supply).Inc()
}

// ObservePayment records one payment.
func (m *Metrics) ObservePayment(method string) {
	if m == nil {
		return
	}
	m.payments.WithLabelValues(method).Inc()
}

func outcome(results int) string {
	if results == 0 {
		return "empty"
	}
	return "hit"
}
