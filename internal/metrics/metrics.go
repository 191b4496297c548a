package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "shorts_resolver"

var (
	Resolutions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resolutions_total",
		Help:      "Total number of resolve attempts by platform and outcome",
	}, []string{"platform", "outcome"})

	ResolveDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "resolve_duration_seconds",
		Help:      "Duration of a single resolve call",
		Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
	}, []string{"platform"})

	Deliveries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "deliveries_total",
		Help:      "Resolved media handed to the download collaborator",
	}, []string{"enqueuer", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP API request duration",
		Buckets:   prometheus.DefBuckets,
	}, []string{"path", "status"})
)
