package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HotspotsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "greenkudi_hotspots_created_total",
		Help: "Total number of hotspots appended to the store.",
	})

	HotspotsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "greenkudi_hotspots_rejected_total",
		Help: "Total number of rejected hotspot reports, labelled by reason.",
	}, []string{"reason"})

	EventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "greenkudi_events_published_total",
		Help: "Total number of hotspot events handed to the event sink, labelled by status.",
	}, []string{"status"})

	WebhooksDelivered = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "greenkudi_webhooks_delivered_total",
		Help: "Total number of webhook deliveries, labelled by status.",
	}, []string{"status"})

	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "greenkudi_snapshot_cache_lookups_total",
		Help: "Hotspot snapshot cache lookups, labelled by result (hit, miss, error).",
	}, []string{"result"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "greenkudi_http_request_duration_ms",
		Help:    "HTTP request latency in milliseconds, labelled by route and status.",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500},
	}, []string{"method", "route", "status"})
)
