// Package metrics defines and registers all custom Prometheus metrics for
// the marketplace API. It is the single source of truth for metric names,
// labels, and help strings. Metrics are registered with the default registry
// at package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "marketplace"

// ── Account metrics ───────────────────────────────────────────────────────────

// RegistrationsTotal counts completed registrations.
// Labels:
//   - kind: "customer" or "company"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered, by kind.",
	},
	[]string{"kind"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok", "invalid_credentials", or "disabled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SessionTokensIssued counts token issuance decisions.
// Label:
//   - state: "new" (minted) or "reused" (existing live token returned)
var SessionTokensIssued = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_tokens_issued_total",
		Help:      "Total number of session token issuances, by state (new/reused).",
	},
	[]string{"state"},
)

// ── Listing metrics ───────────────────────────────────────────────────────────

// ListingsCreatedTotal counts newly created service listings.
// Label:
//   - category: trade catalog value (e.g. "Plumbing")
var ListingsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listings_created_total",
		Help:      "Total number of service listings created, by category.",
	},
	[]string{"category"},
)

// ── Audit pipeline metrics ────────────────────────────────────────────────────

// AuditEventsTotal counts audit events by final disposition.
// Labels:
//   - action: the audited action (e.g. "logged_in")
//   - result: "ok", "error", or "dropped" (queue full)
var AuditEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_total",
		Help:      "Total number of audit events, by action and result.",
	},
	[]string{"action", "result"},
)

// AuditQueueDepth tracks the current number of events waiting in each
// dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
