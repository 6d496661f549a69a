package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RegistrationOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "registrar_registration_outcomes_total",
			Help: "Registration attempts by outcome",
		},
		[]string{"outcome"},
	)

	WaitlistPromotions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "registrar_waitlist_promotions_total",
			Help: "Students promoted from a waitlist into a seat",
		},
	)

	SISSyncFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "registrar_sis_sync_failures_total",
			Help: "Failed enrollment pushes to the student information system",
		},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "registrar_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method", "status"},
	)
)
