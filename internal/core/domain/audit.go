package domain

import "time"

// Audit actions recorded for account and listing activity.
const (
	AuditRegistered     = "registered"
	AuditLoggedIn       = "logged_in"
	AuditLoggedOut      = "logged_out"
	AuditListingCreated = "listing_created"
)

// AuditEvent records one security-relevant action for the audit trail.
// Actor is the account email; Outcome is "ok" or a short failure reason.
type AuditEvent struct {
	Actor     string    `json:"actor"`
	AccountID string    `json:"account_id,omitempty"`
	Action    string    `json:"action"`
	Outcome   string    `json:"outcome"`
	Timestamp time.Time `json:"timestamp"`
}
