package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/handylink/marketplace-api/internal/core/domain"
	"github.com/handylink/marketplace-api/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService that persists events to the
// audit trail store.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Process persists a single audit event.
func (s *auditService) Process(ctx context.Context, in ports.AuditEventInput) error {
	event := &domain.AuditEvent{
		Actor:     in.Actor,
		AccountID: in.AccountID,
		Action:    in.Action,
		Outcome:   in.Outcome,
		Timestamp: in.Timestamp,
	}

	if err := s.repo.Insert(ctx, event); err != nil {
		return fmt.Errorf("process audit event: %w", err)
	}

	s.log.Debug().
		Str("action", in.Action).
		Str("outcome", in.Outcome).
		Str("account_id", in.AccountID).
		Msg("audit event recorded")

	return nil
}
