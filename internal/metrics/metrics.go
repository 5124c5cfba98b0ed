// Package metrics defines all custom Prometheus metrics for the RBAC core.
// It is the single source of truth for metric names, labels, and help
// strings. Metrics register with the default registry at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "rbac"

// LoginsTotal counts authentication attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "success" or "duplicate"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, labelled by result.",
	},
	[]string{"result"},
)

// UserMutationsTotal counts identity registry mutations.
// Labels:
//   - op: "create", "update", or "delete"
//   - result: "ok", "refused" (protected entity), or "noop" (unknown id)
var UserMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "user_mutations_total",
		Help:      "Total number of user collection mutations, by operation and result.",
	},
	[]string{"op", "result"},
)

// RoleMutationsTotal counts role registry mutations.
// Labels:
//   - op: "create", "update", or "delete"
//   - result: "ok", "refused" (protected entity), or "noop" (unknown id)
var RoleMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_mutations_total",
		Help:      "Total number of role collection mutations, by operation and result.",
	},
	[]string{"op", "result"},
)

// ActiveSessions tracks whether a user is currently logged in (0 or 1; the
// session manager holds at most one session).
var ActiveSessions = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "active_sessions",
		Help:      "Number of currently authenticated sessions.",
	},
)
