package tx

import (
	"context"
	"sync"
	"time"

	dErrors "clubledger/pkg/domain-errors"
)

// Snapshotter is implemented by in-memory state that takes part in InMemory
// transactions. Snapshot captures the current state and returns a function that
// restores it.
type Snapshotter interface {
	Snapshot() (restore func())
}

// InMemory serializes transactions behind one lock and rolls every registered
// participant back when the callback fails.
type InMemory struct {
	mu           sync.Mutex
	participants []Snapshotter
	timeout      time.Duration
}

// NewInMemory builds an InMemory runner over the given participants.
func NewInMemory(participants ...Snapshotter) *InMemory {
	return &InMemory{participants: participants}
}

// Register adds a participant. It must be called before the first RunInTx.
func (t *InMemory) Register(p Snapshotter) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.participants = append(t.participants, p)
}

func (t *InMemory) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}

	ctx, cancel := withDefaultTimeout(ctx, t.timeout)
	defer cancel()

	t.mu.Lock()
	defer t.mu.Unlock()

	// Check again after acquiring lock
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}

	restores := make([]func(), 0, len(t.participants))
	for _, p := range t.participants {
		restores = append(restores, p.Snapshot())
	}

	if err := fn(ctx); err != nil {
		for i := len(restores) - 1; i >= 0; i-- {
			restores[i]()
		}
		return err
	}
	return nil
}
