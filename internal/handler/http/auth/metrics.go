package auth

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	authRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_requests_total",
			Help: "Login attempts by result",
		},
		[]string{"result"}, // success | failure
	)

	authDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "auth_duration_seconds",
			Help:    "Login duration, dominated by password hashing",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
		},
	)

	tokenRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_token_rejections_total",
			Help: "Requests rejected by bearer authentication by reason",
		},
		[]string{"reason"},
	)

	forbiddenAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forbidden_attempts_total",
			Help: "Forbidden access attempts by resource and method",
		},
		[]string{"resource", "method"},
	)
)

// RecordAuthRequest counts a login attempt.
func RecordAuthRequest(result string) {
	authRequestsTotal.WithLabelValues(result).Inc()
}

// RecordAuthDuration observes a login's duration.
func RecordAuthDuration(durationSeconds float64) {
	authDuration.Observe(durationSeconds)
}

// RecordTokenRejection counts a request rejected with 401.
func RecordTokenRejection(reason string) {
	tokenRejections.WithLabelValues(reason).Inc()
}

// RecordForbiddenAttempt counts a request rejected with 403.
func RecordForbiddenAttempt(resource, method string) {
	forbiddenAttempts.WithLabelValues(resource, method).Inc()
}
