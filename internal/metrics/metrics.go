package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sportnest_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sportnest_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	SessionsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sportnest_sessions_created_total",
			Help: "Total number of training sessions booked",
		},
		[]string{"venue"},
	)

	SessionsUpdatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sportnest_sessions_updated_total",
			Help: "Total number of training session edits",
		},
	)

	SessionsDeletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sportnest_sessions_deleted_total",
			Help: "Total number of training session deletions",
		},
	)

	SessionRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sportnest_session_rejections_total",
			Help: "Bookings rejected during validation",
		},
		[]string{"reason"},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sportnest_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sportnest_email_queue_length",
			Help: "Current length of email queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordSessionCreated(venue string) {
	SessionsCreatedTotal.WithLabelValues(venue).Inc()
}

func RecordSessionUpdated() {
	SessionsUpdatedTotal.Inc()
}

func RecordSessionDeleted() {
	SessionsDeletedTotal.Inc()
}

func RecordSessionRejection(reason string) {
	SessionRejectionsTotal.WithLabelValues(reason).Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}
