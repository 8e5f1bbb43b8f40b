// Package metrics defines and registers all custom Prometheus metrics for the
// DataLab API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation via promauto; request-level HTTP metrics come from the
// echoprometheus middleware wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "datalab"

// ── Access guard ──────────────────────────────────────────────────────────────

// GuardDecisionsTotal counts guard evaluations on protected routes.
// Labels:
//   - required: the tier declared by the route ("handler", "worker", "member")
//   - state: "authorized", "unauthorized" or "unauthenticated"
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of access guard evaluations, by required tier and outcome.",
	},
	[]string{"required", "state"},
)

// SessionWatchersActive tracks open session watch streams.
var SessionWatchersActive = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "session_watchers_active",
		Help:      "Current number of open session watch streams.",
	},
)

// ── Identity ──────────────────────────────────────────────────────────────────

// LoginAttemptsTotal counts sign-in attempts.
// Label:
//   - result: "success", "invalid" (validation failed) or "rejected" (unknown identity)
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of sign-in attempts, by result.",
	},
	[]string{"result"},
)

// PasswordResetRequestsTotal counts password reset acknowledgements.
// Label:
//   - accepted: "true" or "false"
var PasswordResetRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "password_reset_requests_total",
		Help:      "Total number of password reset requests, by acceptance.",
	},
	[]string{"accepted"},
)
