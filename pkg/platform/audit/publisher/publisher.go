package publisher

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	id "clubledger/pkg/domain"
	audit "clubledger/pkg/platform/audit"
)

// Publisher captures structured audit events. It is append-only and uses the
// storage layer for persistence so tests can swap sinks easily.
type Publisher struct {
	store  audit.Store
	logger *slog.Logger
	now    func() time.Time
}

type Option func(*Publisher)

func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

// WithClock overrides the wall clock used to stamp events.
func WithClock(now func() time.Time) Option {
	return func(p *Publisher) {
		if now != nil {
			p.now = now
		}
	}
}

func NewPublisher(store audit.Store, opts ...Option) *Publisher {
	p := &Publisher{store: store, now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Emit fills in id, timestamp and category, then appends the event. Errors are
// returned so the surrounding transaction aborts with the mutation.
func (p *Publisher) Emit(ctx context.Context, event audit.Event) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = p.now()
	}
	if event.Category == "" {
		event.Category = audit.AuditEvent(event.Action).Category()
	}
	if err := p.store.Append(ctx, event); err != nil {
		if p.logger != nil {
			p.logger.ErrorContext(ctx, "failed to append audit event",
				"action", event.Action,
				"club_id", event.ClubID,
				"error", err,
			)
		}
		return err
	}
	return nil
}

func (p *Publisher) List(ctx context.Context, clubID id.ClubID) ([]audit.Event, error) {
	return p.store.ListByClub(ctx, clubID)
}
