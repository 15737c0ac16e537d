package ports

import (
	"context"
	"time"

	"github.com/handylink/marketplace-api/internal/core/domain"
)

// AuditEventInput is the DTO handed from services to the audit pipeline.
type AuditEventInput struct {
	Actor     string
	AccountID string
	Action    string
	Outcome   string
	Timestamp time.Time
}

// AuditRecorder accepts events for asynchronous recording. Record must not
// block the request path and failures are best-effort: a lost audit event
// never fails the operation that produced it.
type AuditRecorder interface {
	Record(event AuditEventInput)
}

// AuditService persists a single audit event.
type AuditService interface {
	Process(ctx context.Context, event AuditEventInput) error
}

// AuditRepository defines the persistence contract for the audit trail.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}
