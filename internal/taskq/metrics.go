package taskq

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	submissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mealrush_client",
			Subsystem: "taskq",
			Name:      "submissions_total",
			Help:      "Tasks accepted into the runner.",
		},
		[]string{"task"},
	)

	failuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mealrush_client",
			Subsystem: "taskq",
			Name:      "failures_total",
			Help:      "Tasks abandoned after an irrecoverable error, exhausted retries, or a panic.",
		},
		[]string{"task"},
	)

	queueFullTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mealrush_client",
			Subsystem: "taskq",
			Name:      "queue_full_total",
			Help:      "Submissions rejected because a shard queue stayed full.",
		},
		[]string{"task"},
	)

	runDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "mealrush_client",
			Subsystem: "taskq",
			Name:      "run_duration_seconds",
			Help:      "Wall time per task attempt.",
		},
		[]string{"task"},
	)
)
