package balances

import (
	"context"
	"maps"
	"sync"

	id "clubledger/pkg/domain"
	"clubledger/pkg/safemath"
)

// Ledger is an in-memory FeeGateway. It takes part in tx.InMemory
// transactions via Snapshot.
type Ledger struct {
	mu       sync.RWMutex
	accounts map[id.AccountID]id.Balance
	ed       id.Balance
	metrics  *Metrics
}

type Option func(*Ledger)

func WithExistentialDeposit(ed id.Balance) Option {
	return func(l *Ledger) { l.ed = ed }
}

func WithMetrics(m *Metrics) Option {
	return func(l *Ledger) { l.metrics = m }
}

func NewLedger(opts ...Option) *Ledger {
	l := &Ledger{
		accounts: make(map[id.AccountID]id.Balance),
		ed:       DefaultExistentialDeposit,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Ledger) ExistentialDeposit() id.Balance {
	return l.ed
}

// Endow credits amount to account at genesis, saturating at the maximum.
func (l *Ledger) Endow(account id.AccountID, amount id.Balance) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.accounts[account] = safemath.SaturatingAdd(l.accounts[account], amount)
}

// SetBalance overwrites the free balance. A zero balance removes the account.
func (l *Ledger) SetBalance(account id.AccountID, amount id.Balance) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if amount == 0 {
		delete(l.accounts, account)
		return
	}
	l.accounts[account] = amount
}

func (l *Ledger) Balance(_ context.Context, account id.AccountID) (id.Balance, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.accounts[account], nil
}

func (l *Ledger) Transfer(ctx context.Context, from, to id.AccountID, amount id.Balance) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if amount == 0 || from == to {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	nextFrom, nextTo, err := settle(l.accounts[from], l.accounts[to], amount, l.ed)
	l.metrics.observe(err)
	if err != nil {
		return err
	}
	l.accounts[from] = nextFrom
	l.accounts[to] = nextTo
	return nil
}

// Snapshot captures every balance and returns a function restoring them.
func (l *Ledger) Snapshot() func() {
	l.mu.RLock()
	saved := maps.Clone(l.accounts)
	l.mu.RUnlock()
	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.accounts = saved
	}
}
