// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "showcase_http_requests_total",
		Help: "HTTP requests by route pattern, method and status code",
	}, []string{"route", "method", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "showcase_http_request_duration_seconds",
		Help:    "HTTP request latency by route pattern",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	// Explore view metrics
	ExploreSearches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "showcase_explore_searches_total",
		Help: "Catalog searches by surface (page or api) and outcome (all, hit or empty)",
	}, []string{"surface", "outcome"})

	ExploreResults = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "showcase_explore_results",
		Help:    "Number of products returned per non-empty search",
		Buckets: prometheus.LinearBuckets(0, 1, 10),
	})

	// Catalog metrics
	CatalogProducts = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "showcase_catalog_products",
		Help: "Number of products in the loaded catalog",
	})
)

// SearchOutcome labels a search for ExploreSearches.
func SearchOutcome(query string, results int) string {
	switch {
	case query == "":
		return "all"
	case results == 0:
		return "empty"
	default:
		return "hit"
	}
}

// ObserveSearch records one catalog search.
func ObserveSearch(surface, query string, results int) {
	ExploreSearches.WithLabelValues(surface, SearchOutcome(query, results)).Inc()
	if query != "" {
		ExploreResults.Observe(float64(results))
	}
}
