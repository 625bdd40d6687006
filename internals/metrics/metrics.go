// file: internals/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Submissions by outcome: created, conflict, invalid, not_found, error
	DemandeSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "demande_acces_submissions_total",
			Help: "Access request submissions by outcome",
		},
		[]string{"outcome"},
	)

	// Transitions by target status and outcome: ok, not_pending, not_found, error
	DemandeTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "demande_acces_transitions_total",
			Help: "Approve/reject attempts by target status and outcome",
		},
		[]string{"statut", "outcome"},
	)

	SubmitDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "demande_acces_submit_duration_seconds",
			Help:    "Time spent admitting an access request",
			Buckets: prometheus.DefBuckets,
		},
	)

	LoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_login_attempts_total",
			Help: "Total number of login attempts",
		},
		[]string{"status"},
	)

	BlacklistPurged = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "auth_token_blacklist_purged_total",
			Help: "Expired blacklist entries removed by the cleanup job",
		},
	)
)
