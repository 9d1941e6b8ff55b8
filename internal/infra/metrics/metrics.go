package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	APIRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsapi_requests_total",
			Help: "The total number of requests dispatched to the news backend",
		},
		[]string{"operation", "method"},
	)

	APIResponses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsapi_responses_total",
			Help: "The total number of responses received from the news backend, by status code",
		},
		[]string{"operation", "status"},
	)

	APIErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsapi_request_errors_total",
			Help: "The total number of failed backend calls, by failure kind",
		},
		[]string{"operation", "kind"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "newsapi_request_duration_seconds",
			Help:    "Duration of backend calls, successful or not",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	EventsPublished = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "newsapi_events_published_total",
			Help: "Total number of call events published to Kafka",
		},
	)

	EventsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsapi_events_dropped_total",
			Help: "Total number of call events that were not published",
		},
		[]string{"reason"},
	)
)
