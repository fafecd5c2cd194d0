package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	signupAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hobbyhub_signup_attempts_total",
		Help: "Number of signup attempts grouped by status.",
	}, []string{"status"})

	loginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hobbyhub_login_attempts_total",
		Help: "Number of login attempts grouped by status.",
	}, []string{"status"})

	bookmarkToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hobbyhub_bookmark_toggles_total",
		Help: "Number of bookmark toggles grouped by resulting state.",
	}, []string{"state"})

	rateLimitHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hobbyhub_rate_limit_hits_total",
		Help: "Rate limiter activations grouped by limiter name.",
	}, []string{"limiter"})
)

// IncSignup increments the signup counter.
func IncSignup(status string) {
	signupAttempts.WithLabelValues(status).Inc()
}

// IncLogin increments the login counter.
func IncLogin(status string) {
	loginAttempts.WithLabelValues(status).Inc()
}

// IncToggle increments the bookmark toggle counter.
func IncToggle(state string) {
	bookmarkToggles.WithLabelValues(state).Inc()
}

// IncRateLimit increments the rate-limit hit counter.
func IncRateLimit(name string) {
	rateLimitHits.WithLabelValues(name).Inc()
}
