// Package sink delivers relayed audit events to downstream consumers.
package sink

import (
	"context"
	"errors"

	audit "clubledger/pkg/platform/audit"
)

// Publisher is implemented by every sink.
type Publisher interface {
	Publish(ctx context.Context, events []audit.Event) error
}

// Fanout publishes each batch to every sink and joins their errors.
// A batch is only marked relayed when all sinks accepted it.
type Fanout []Publisher

func (f Fanout) Publish(ctx context.Context, events []audit.Event) error {
	var errs []error
	for _, p := range f {
		if err := p.Publish(ctx, events); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
