package chain

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	id "clubledger/pkg/domain"
	"clubledger/pkg/requestcontext"
)

func TestManualClock(t *testing.T) {
	c := NewManualClock(1)
	assert.Equal(t, id.BlockNumber(1), c.Now(context.Background()))

	assert.Equal(t, id.BlockNumber(101), c.Advance(100))
	c.Set(7)
	assert.Equal(t, id.BlockNumber(7), c.Now(context.Background()))
}

func TestBlockTimeClock(t *testing.T) {
	genesis := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := genesis
	c := NewBlockTimeClock(genesis, 6*time.Second, WithNow(func() time.Time { return now }))

	tests := []struct {
		name   string
		offset time.Duration
		want   id.BlockNumber
	}{
		{"at genesis", 0, 1},
		{"before genesis", -time.Hour, 1},
		{"mid block", 5 * time.Second, 1},
		{"next block", 6 * time.Second, 2},
		{"one hour", time.Hour, 601},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now = genesis.Add(tt.offset)
			assert.Equal(t, tt.want, c.Now(context.Background()))
		})
	}
}

func TestBlockTimeClockReadsRequestTime(t *testing.T) {
	genesis := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewBlockTimeClock(genesis, 6*time.Second)

	ctx := requestcontext.WithTime(context.Background(), genesis.Add(time.Minute))
	assert.Equal(t, id.BlockNumber(11), c.Now(ctx))
	assert.Equal(t, id.BlockNumber(11), c.Now(ctx))
}
