package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Исходы операций для label outcome.
const (
	OutcomeOK       = "ok"
	OutcomeError    = "error"
	OutcomeRejected = "rejected"
)

var (
	StorefrontRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_requests_total",
			Help: "Requests sent to the Shopify Storefront API",
		},
		[]string{"operation", "outcome"},
	)
	StorefrontDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_request_duration_seconds",
			Help:    "Storefront API round-trip duration",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

var (
	CartActions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_actions_total",
			Help: "Cart actions handled by the dispatcher",
		},
		[]string{"action", "outcome"}, // ok|error|rejected
	)
	CartEventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_events_published_total",
			Help: "Cart events written to Kafka",
		},
		[]string{"outcome"},
	)
)

var (
	CatalogPagesFetched = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_pages_fetched_total",
			Help: "Catalog pages fetched from the Storefront API",
		},
	)
	CatalogProducts = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_products",
			Help: "Number of products in the last loaded catalog",
		},
	)
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Cache operations",
		},
		[]string{"cache", "op"}, // op: hit|miss|evicted|expired
	)
	CacheSize = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Number of items currently in cache",
		},
		[]string{"cache"},
	)
)

var registerOnce sync.Once

// MustRegister — регистрирует коллекторы в глобальном реестре; повторные вызовы безопасны.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			StorefrontRequests, StorefrontDuration,
			CartActions, CartEventsPublished,
			CatalogPagesFetched, CatalogProducts,
			CacheOps, CacheSize,
		)
	})
}
