package sink

import (
	"context"
	"fmt"
	"strconv"

	"github.com/twmb/franz-go/pkg/kgo"

	audit "clubledger/pkg/platform/audit"
)

// producer is the subset of *kgo.Client the sink uses.
type producer interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
}

// Kafka publishes events as records keyed by club id, so one club's events
// stay ordered within a partition.
type Kafka struct {
	client producer
	topic  string
}

// NewKafka wraps a franz-go client. An empty topic uses the client's default.
func NewKafka(client producer, topic string) *Kafka {
	return &Kafka{client: client, topic: topic}
}

func (k *Kafka) Publish(ctx context.Context, events []audit.Event) error {
	if len(events) == 0 {
		return nil
	}
	records := make([]*kgo.Record, 0, len(events))
	for _, e := range events {
		value, err := audit.Encode(e)
		if err != nil {
			return fmt.Errorf("encode event %s: %w", e.ID, err)
		}
		records = append(records, &kgo.Record{
			Topic: k.topic,
			Key:   []byte(strconv.FormatUint(uint64(e.ClubID), 10)),
			Value: value,
			Headers: []kgo.RecordHeader{
				{Key: "action", Value: []byte(e.Action)},
				{Key: "category", Value: []byte(e.Category)},
			},
		})
	}
	if err := k.client.ProduceSync(ctx, records...).FirstErr(); err != nil {
		return fmt.Errorf("produce audit events: %w", err)
	}
	return nil
}
