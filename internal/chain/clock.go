// Package chain supplies the current block number to the club service.
package chain

import (
	"context"
	"sync/atomic"
	"time"

	id "clubledger/pkg/domain"
	"clubledger/pkg/requestcontext"
)

// ManualClock is a settable block source for tests and local tooling.
// Block numbers start at 1 like a freshly started chain.
type ManualClock struct {
	block atomic.Uint64
}

func NewManualClock(start id.BlockNumber) *ManualClock {
	c := &ManualClock{}
	c.block.Store(uint64(start))
	return c
}

func (c *ManualClock) Now(context.Context) id.BlockNumber {
	return id.BlockNumber(c.block.Load())
}

func (c *ManualClock) Set(block id.BlockNumber) {
	c.block.Store(uint64(block))
}

// Advance moves the clock forward by n blocks and returns the new block.
func (c *ManualClock) Advance(n id.BlockNumber) id.BlockNumber {
	return id.BlockNumber(c.block.Add(uint64(n)))
}

// BlockTimeClock derives the block number from wall time: genesis is block 1
// and each BlockTime elapsed adds one block. Wall time is read from the
// request context so one request observes a single block.
type BlockTimeClock struct {
	genesis   time.Time
	blockTime time.Duration
	now       func(ctx context.Context) time.Time
}

type Option func(*BlockTimeClock)

// WithNow overrides the wall clock.
func WithNow(now func() time.Time) Option {
	return func(c *BlockTimeClock) {
		c.now = func(context.Context) time.Time { return now() }
	}
}

func NewBlockTimeClock(genesis time.Time, blockTime time.Duration, opts ...Option) *BlockTimeClock {
	c := &BlockTimeClock{genesis: genesis, blockTime: blockTime, now: requestcontext.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *BlockTimeClock) Now(ctx context.Context) id.BlockNumber {
	elapsed := c.now(ctx).Sub(c.genesis)
	if elapsed < 0 || c.blockTime <= 0 {
		return 1
	}
	return id.BlockNumber(elapsed/c.blockTime) + 1
}
