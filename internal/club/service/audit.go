package service

import (
	"context"
	"encoding/json"
	"log/slog"

	"clubledger/internal/club/authz"
	"clubledger/internal/club/models"
	"clubledger/internal/club/ports"
	dErrors "clubledger/pkg/domain-errors"
	"clubledger/pkg/platform/audit"
	"clubledger/pkg/requestcontext"
)

// auditEmitter logs each domain event and publishes it to the audit outbox
// within the caller's transaction.
type auditEmitter struct {
	logger    *slog.Logger
	publisher ports.AuditPublisher
	clock     ports.Clock
}

func newAuditEmitter(logger *slog.Logger, publisher ports.AuditPublisher, clock ports.Clock) *auditEmitter {
	return &auditEmitter{logger: logger, publisher: publisher, clock: clock}
}

func (e *auditEmitter) emit(ctx context.Context, caller authz.Caller, event models.Event) error {
	block := e.clock.Now(ctx)
	attributes := []any{
		"club_id", uint32(event.Club()),
		"actor", caller.String(),
		"block", uint64(block),
	}
	if subject := event.Subject(); !subject.IsNil() {
		attributes = append(attributes, "subject", subject.String())
	}
	audit.LogAudit(ctx, e.logger, string(event.Kind()), attributes...)

	if e.publisher == nil {
		return nil
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to encode event")
	}
	err = e.publisher.Emit(ctx, audit.Event{
		Action:    string(event.Kind()),
		ClubID:    event.Club(),
		Subject:   event.Subject(),
		ActorID:   caller.String(),
		Block:     block,
		Payload:   payload,
		RequestID: requestcontext.RequestID(ctx),
	})
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to record event")
	}
	return nil
}
