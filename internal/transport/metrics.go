package transport

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mealrush_client",
			Name:      "requests_total",
			Help:      "Gateway requests by method and response status.",
		},
		[]string{"method", "status"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "mealrush_client",
			Name:      "request_duration_seconds",
			Help:      "Wall time per gateway request.",
		},
		[]string{"method"},
	)

	tokenEvictionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "mealrush_client",
			Name:      "token_evictions_total",
			Help:      "Stored tokens discarded after a 401 response.",
		},
	)
)
