package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	reportsTotal    prometheus.Counter
	unmatchedTotal  *prometheus.CounterVec
	exportsTotal    *prometheus.CounterVec
	importsTotal    *prometheus.CounterVec
	importedEntries prometheus.Counter
}

func newMetrics(reg *prometheus.Registry) *metrics {
	f := promauto.With(reg)
	return &metrics{
		registry: reg,
		requestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "carbon_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "carbon_http_request_duration_seconds",
				Help:    "Duration of HTTP requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		reportsTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "carbon_reports_total",
			Help: "Total number of reports computed",
		}),
		unmatchedTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "carbon_unmatched_factors_total",
				Help: "Entries whose emission factor was not found in the catalog",
			},
			[]string{"category"},
		),
		exportsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "carbon_exports_total",
				Help: "Total number of report tables exported",
			},
			[]string{"format"},
		),
		importsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "carbon_imports_total",
				Help: "Total number of report tables imported",
			},
			[]string{"format", "status"},
		),
		importedEntries: f.NewCounter(prometheus.CounterOpts{
			Name: "carbon_imported_entries_total",
			Help: "Total number of entries rebuilt from imported tables",
		}),
	}
}

func (m *metrics) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		m.requestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(statusOf(ww))).Inc()
		m.requestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// statusOf treats a handler that never wrote a header as 200.
func statusOf(ww middleware.WrapResponseWriter) int {
	if ww.Status() == 0 {
		return http.StatusOK
	}
	return ww.Status()
}
