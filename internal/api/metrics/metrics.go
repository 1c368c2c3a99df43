// Package metrics defines and registers all custom Prometheus metrics for
// the company registry API. It is the single source of truth for metric
// names, labels, and help strings; per-route HTTP metrics come from the
// echoprometheus middleware and are not duplicated here.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "company_registry"

// AuthFailuresTotal counts requests rejected at the authorization gate.
// Label:
//   - reason: "no_token", "invalid_token", "revoked", "user_gone", or "error"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected by the authorization gate.",
	},
	[]string{"reason"},
)

// ValidationFailuresTotal counts payloads rejected by the validation
// pipeline before reaching a handler.
// Label:
//   - path: the registered route path (e.g. "/auth/register")
var ValidationFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_failures_total",
		Help:      "Total number of request payloads rejected by validation.",
	},
	[]string{"path"},
)

// RegistrationsTotal counts successfully created accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts created.",
	},
)

// LoginsTotal counts successful logins (session tokens issued).
var LoginsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of session tokens issued at login.",
	},
)

// TokensRevokedTotal counts sessions revoked before expiry via logout.
var TokensRevokedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_revoked_total",
		Help:      "Total number of session tokens revoked before expiry.",
	},
)
