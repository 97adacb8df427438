// Package metrics defines Prometheus metrics for the flyer deal service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "flyerdeals"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "Whether the last liveness probe succeeded (1) or failed (0).",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "Whether the last readiness probe succeeded (1) or failed (0).",
	})
)

// Catalog metrics.
var (
	CatalogFetchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_fetches_total",
		Help:      "Total number of calls to the flyer OCR/catalog service.",
	})

	CatalogFetchErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_fetch_errors_total",
		Help:      "Total number of failed catalog service calls.",
	})

	CatalogDeals = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "catalog_deals",
		Help:      "Number of deals currently held in the in-memory catalog.",
	})

	CatalogRefreshDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "catalog_refresh_duration_seconds",
		Help:      "Duration of full catalog refresh cycles in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	CatalogEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_events_total",
		Help:      "Total number of incremental catalog events applied.",
	}, []string{"kind"})
)

// Comparison metrics.
var (
	CompareRunsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "compare_runs_total",
		Help:      "Total number of comparison runs.",
	})

	CompareDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "compare_duration_seconds",
		Help:      "Duration of comparison runs in seconds.",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
	})

	CompareGroupSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "compare_group_size",
		Help:      "Distribution of matched deals per comparison group.",
		Buckets:   prometheus.LinearBuckets(0, 5, 8),
	})
)

// Saved-list metrics.
var (
	SavedListsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "saved_lists_total",
		Help:      "Total number of basket snapshots saved.",
	})
)
