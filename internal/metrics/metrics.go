package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HttpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"path", "method", "status"})

	LinksBuilt = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pagination_links_built_total",
		Help: "Total number of pagination bars built",
	}, []string{"source", "truncated"})

	PageCount = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pagination_page_count",
		Help:    "Number of pages in requested pagination bars",
		Buckets: prometheus.ExponentialBuckets(1, 4, 8),
	}, []string{"source"})

	LinkCacheResults = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pagination_link_cache_total",
		Help: "Link cache lookups by result",
	}, []string{"result"})

	RateLimited = promauto.NewCounter(prometheus.CounterOpts{
		Name: "http_rate_limited_total",
		Help: "Total number of requests rejected by the rate limiter",
	})
)
