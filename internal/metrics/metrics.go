package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	ScheduleMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "schedule_mutations_total",
			Help: "Create/update/delete operations on maintenance tasks and calendar events",
		},
		[]string{"operation", "event_type", "result"},
	)

	EquipmentCascades = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "equipment_status_cascades_total",
			Help: "Equipment status changes caused by maintenance task mutations",
		},
		[]string{"to_status"},
	)

	StatsCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stats_cache_lookups_total",
			Help: "Dashboard statistics cache lookups",
		},
		[]string{"result"}, // hit, miss, error
	)
)

func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

func RecordMutation(operation, eventType string, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	ScheduleMutations.WithLabelValues(operation, eventType, result).Inc()
}

func RecordCascade(toStatus string) {
	EquipmentCascades.WithLabelValues(toStatus).Inc()
}

func RecordStatsCache(result string) {
	StatsCacheLookups.WithLabelValues(result).Inc()
}
