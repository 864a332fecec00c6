package metrics

import "github.com/prometheus/client_golang/prometheus"

// Pipeline and ingestion metrics. Registered explicitly from main so
// unit tests can exercise usecases without touching the default registry.
var (
	NotificationsReceivedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "notifications_received_total",
			Help: "Total number of inbound chat messages handled",
		},
	)

	NotificationsParsedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "notifications_parsed_total",
			Help: "Total number of messages parsed as payment notifications",
		},
	)

	NotificationsDiscardedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_discarded_total",
			Help: "Total number of notifications dropped, by reason",
		},
		[]string{"reason"},
	)

	BindingsRegisteredTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "sender_bindings_registered_total",
			Help: "Total number of /start sender bindings saved",
		},
	)

	AttributionMatchedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "attribution_matched_total",
			Help: "Total number of notifications matched to a click record",
		},
	)

	AttributionUnmatchedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "attribution_unmatched_total",
			Help: "Total number of notifications forwarded without attribution",
		},
	)

	OrdersForwardedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_forwarded_total",
			Help: "Total number of orders accepted by the attribution API",
		},
	)

	OrdersDuplicateTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_duplicate_total",
			Help: "Total number of duplicate notifications suppressed",
		},
	)

	ForwardFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forward_failures_total",
			Help: "Total number of failed forwarding calls, by kind",
		},
		[]string{"kind"},
	)

	ForwardDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "forward_duration_seconds",
			Help:    "Duration of forwarding calls to the attribution API",
			Buckets: prometheus.DefBuckets,
		},
	)

	ClicksIngestedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "clicks_ingested_total",
			Help: "Total number of frontend click submissions accepted",
		},
	)

	ClicksRejectedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "clicks_rejected_total",
			Help: "Total number of frontend click submissions rejected",
		},
	)

	ClicksSweptTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "clicks_swept_total",
			Help: "Total number of click records removed by retention sweeps",
		},
	)

	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"handler", "method", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"handler", "method"},
	)
)

// Register registers every metric with the default registry.
func Register() {
	prometheus.MustRegister(
		NotificationsReceivedTotal,
		NotificationsParsedTotal,
		NotificationsDiscardedTotal,
		BindingsRegisteredTotal,
		AttributionMatchedTotal,
		AttributionUnmatchedTotal,
		OrdersForwardedTotal,
		OrdersDuplicateTotal,
		ForwardFailuresTotal,
		ForwardDuration,
		ClicksIngestedTotal,
		ClicksRejectedTotal,
		ClicksSweptTotal,
		HTTPRequestsTotal,
		HTTPRequestDuration,
	)
}
