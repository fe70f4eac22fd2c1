package sink

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	audit "clubledger/pkg/platform/audit"
)

// RedisStream appends events to a capped redis stream.
type RedisStream struct {
	client redis.Cmdable
	stream string
	maxLen int64
}

func NewRedisStream(client redis.Cmdable, stream string, maxLen int64) *RedisStream {
	return &RedisStream{client: client, stream: stream, maxLen: maxLen}
}

func (r *RedisStream) Publish(ctx context.Context, events []audit.Event) error {
	if len(events) == 0 {
		return nil
	}
	pipe := r.client.TxPipeline()
	for _, e := range events {
		value, err := audit.Encode(e)
		if err != nil {
			return fmt.Errorf("encode event %s: %w", e.ID, err)
		}
		pipe.XAdd(ctx, &redis.XAddArgs{
			Stream: r.stream,
			MaxLen: r.maxLen,
			Approx: true,
			Values: map[string]any{
				"id":     e.ID.String(),
				"action": e.Action,
				"club":   uint32(e.ClubID),
				"event":  value,
			},
		})
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("xadd audit events: %w", err)
	}
	return nil
}
