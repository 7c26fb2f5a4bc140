package store

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheHitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mealrush_client",
		Subsystem: "store",
		Name:      "cache_hits_total",
		Help:      "Bucket loads answered from the TTL cache without a network call.",
	}, []string{"bucket"})

	cacheMissesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mealrush_client",
		Subsystem: "store",
		Name:      "cache_misses_total",
		Help:      "Bucket loads that went to the network (stale or forced).",
	}, []string{"bucket"})

	resetsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "mealrush_client",
		Subsystem: "store",
		Name:      "resets_total",
		Help:      "Full state resets (logout or dead-session eviction).",
	})
)
