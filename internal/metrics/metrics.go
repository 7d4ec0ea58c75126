// Package metrics provides Prometheus metrics for report building and
// document rendering.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry is the custom prometheus registry for the service
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

// BuildDuration tracks how long a report bundle takes to assemble,
// including record and unit fetches.
var BuildDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "report",
	Name:      "build_duration_seconds",
	Help:      "Time spent fetching records and building a report bundle",
	Buckets:   prometheus.DefBuckets,
}, []string{"period"})

// DocumentsTotal counts rendered documents by format
var DocumentsTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "report",
	Name:      "documents_total",
	Help:      "Number of report documents rendered",
}, []string{"format"})

// DocumentPages tracks the page count of rendered documents
var DocumentPages = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "report",
	Name:      "document_pages",
	Help:      "Pages per rendered report document",
	Buckets:   []float64{1, 2, 3, 5, 8, 13, 21},
})

// RecordsInWindow is the record count of the most recent report
var RecordsInWindow = factory.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "report",
	Name:      "records_in_window",
	Help:      "Records inside the window of the most recent report, by period",
}, []string{"period"})

// RenderOverflowTotal counts documents aborted because a section did not fit a page
var RenderOverflowTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "report",
	Name:      "render_overflow_total",
	Help:      "Documents aborted because a single section exceeded the page height",
})

// RateLimitedTotal counts document requests rejected by the throttle
var RateLimitedTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "report",
	Name:      "rate_limited_total",
	Help:      "Document requests rejected by the rate limiter",
})

// Handler exposes the registry for scraping
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
