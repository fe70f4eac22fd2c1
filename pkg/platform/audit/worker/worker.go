package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	audit "clubledger/pkg/platform/audit"
)

// Sink receives batches of relayed events.
type Sink interface {
	Publish(ctx context.Context, events []audit.Event) error
}

// Relay moves unpublished outbox entries to a sink. Delivery is at-least-once:
// a batch is marked published only after the sink accepted it.
type Relay struct {
	outbox    audit.Outbox
	sink      Sink
	logger    *slog.Logger
	interval  time.Duration
	batchSize int
	onRelay   func(n int)
}

type Option func(*Relay)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Relay) { r.logger = logger }
}

func WithInterval(d time.Duration) Option {
	return func(r *Relay) {
		if d > 0 {
			r.interval = d
		}
	}
}

func WithBatchSize(n int) Option {
	return func(r *Relay) {
		if n > 0 {
			r.batchSize = n
		}
	}
}

// WithRelayHook is called with the size of every relayed batch.
func WithRelayHook(fn func(n int)) Option {
	return func(r *Relay) { r.onRelay = fn }
}

func NewRelay(outbox audit.Outbox, sink Sink, opts ...Option) *Relay {
	r := &Relay{
		outbox:    outbox,
		sink:      sink,
		interval:  time.Second,
		batchSize: 100,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RelayOnce publishes one batch and returns how many events were relayed.
func (r *Relay) RelayOnce(ctx context.Context) (int, error) {
	events, err := r.outbox.FetchPending(ctx, r.batchSize)
	if err != nil {
		return 0, err
	}
	if len(events) == 0 {
		return 0, nil
	}
	if err := r.sink.Publish(ctx, events); err != nil {
		return 0, err
	}
	ids := make([]uuid.UUID, len(events))
	for i, e := range events {
		ids[i] = e.ID
	}
	if err := r.outbox.MarkPublished(ctx, ids); err != nil {
		return 0, err
	}
	if r.onRelay != nil {
		r.onRelay(len(events))
	}
	return len(events), nil
}

// Run relays on every tick until ctx is cancelled. Sink failures are logged
// and retried on the next tick.
func (r *Relay) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			for {
				n, err := r.RelayOnce(ctx)
				if err != nil {
					if r.logger != nil && ctx.Err() == nil {
						r.logger.WarnContext(ctx, "outbox relay failed", "error", err)
					}
					break
				}
				if n < r.batchSize {
					break
				}
			}
		}
	}
}
