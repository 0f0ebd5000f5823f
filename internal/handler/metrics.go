package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "order_tracking"

var (
	eventsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "kafka_consumer",
			Name:      "status_events_processed_total",
			Help:      "Total number of successfully applied status events",
		},
	)

	eventsFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "kafka_consumer",
			Name:      "status_events_failed_total",
			Help:      "Total number of status events that could not be applied",
		},
		[]string{"reason"},
	)

	eventsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "kafka_consumer",
			Name:      "status_events_dlq_total",
			Help:      "Total number of status events written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	eventProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "kafka_consumer",
			Name:      "status_event_processing_duration_seconds",
			Help:      "Histogram of status event processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	eventsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "kafka_consumer",
			Name:      "status_events_in_progress",
			Help:      "Number of status events currently being processed",
		},
	)
)

var (
	trackingRequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "tracking_requests_total",
			Help:      "Total number of tracking lookups by outcome",
		},
		[]string{"status"},
	)

	trackingRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "tracking_request_duration_seconds",
			Help:      "Histogram of tracking lookup durations",
			Buckets:   prometheus.DefBuckets,
		},
	)

	trackingRequestsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "tracking_requests_in_progress",
			Help:      "Number of in-progress tracking lookups",
		},
	)

	etaEstimatesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "eta",
			Name:      "estimates_total",
			Help:      "Total number of returned ETAs by the tier that produced them",
		},
		[]string{"source"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		eventsProcessed,
		eventsFailed,
		eventsDLQ,
		commitErrors,
		eventProcessingDuration,
		eventsInProgress,

		trackingRequestTotal,
		trackingRequestDuration,
		trackingRequestsInProgress,
		etaEstimatesTotal,
	)
}
