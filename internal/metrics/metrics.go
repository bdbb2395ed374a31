package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "contact_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "route", "status"})

	ContactSubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "contact_submissions_total",
		Help: "Contact submission outcomes",
	}, []string{"outcome"})

	MailSendDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "contact_mail_send_duration_seconds",
		Help:    "Time spent relaying a message to the SMTP provider",
		Buckets: prometheus.DefBuckets,
	})
)

// Submission outcomes.
const (
	OutcomeInvalid = "invalid"
	OutcomeSent    = "sent"
	OutcomeFailed  = "failed"
)
