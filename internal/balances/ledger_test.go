package balances

import (
	"context"
	"math"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	id "clubledger/pkg/domain"
)

// LedgerSuite covers keep-alive transfer semantics of the in-memory gateway.
//
// Justification: club fees and withdrawals rely on the payer keeping the
// existential deposit and on failed transfers leaving both balances untouched.
type LedgerSuite struct {
	suite.Suite
	ledger  *Ledger
	metrics *Metrics
	alice   id.AccountID
	bob     id.AccountID
}

func TestLedgerSuite(t *testing.T) {
	suite.Run(t, new(LedgerSuite))
}

func (s *LedgerSuite) SetupTest() {
	s.metrics = NewMetrics(prometheus.NewRegistry())
	s.ledger = NewLedger(WithExistentialDeposit(10), WithMetrics(s.metrics))
	s.alice = id.DeriveAccountID("alice")
	s.bob = id.DeriveAccountID("bob")
	s.ledger.Endow(s.alice, 100)
}

func (s *LedgerSuite) balance(a id.AccountID) id.Balance {
	b, err := s.ledger.Balance(context.Background(), a)
	s.Require().NoError(err)
	return b
}

func (s *LedgerSuite) TestTransfer() {
	ctx := context.Background()

	s.Run("moves amount and keeps payer alive", func() {
		s.SetupTest()
		s.Require().NoError(s.ledger.Transfer(ctx, s.alice, s.bob, 90))
		s.Equal(id.Balance(10), s.balance(s.alice))
		s.Equal(id.Balance(90), s.balance(s.bob))
		s.Equal(1.0, testutil.ToFloat64(s.metrics.Transfers))
	})

	s.Run("rejects spending into the existential deposit", func() {
		s.SetupTest()
		err := s.ledger.Transfer(ctx, s.alice, s.bob, 91)
		s.ErrorIs(err, ErrInsufficientFunds)
		s.Equal(id.Balance(100), s.balance(s.alice))
		s.Equal(id.Balance(0), s.balance(s.bob))
		s.Equal(1.0, testutil.ToFloat64(s.metrics.TransferFailures.WithLabelValues("insufficient_funds")))
	})

	s.Run("rejects creating an account below the minimum", func() {
		s.SetupTest()
		s.ErrorIs(s.ledger.Transfer(ctx, s.alice, s.bob, 9), ErrBelowMinimum)
	})

	s.Run("small top-up of a live account is allowed", func() {
		s.SetupTest()
		s.ledger.Endow(s.bob, 10)
		s.Require().NoError(s.ledger.Transfer(ctx, s.alice, s.bob, 1))
		s.Equal(id.Balance(11), s.balance(s.bob))
	})

	s.Run("destination overflow", func() {
		s.SetupTest()
		s.ledger.SetBalance(s.bob, math.MaxUint64)
		s.ErrorIs(s.ledger.Transfer(ctx, s.alice, s.bob, 1), ErrOverflow)
	})

	s.Run("zero amount and self transfer are no-ops", func() {
		s.SetupTest()
		s.Require().NoError(s.ledger.Transfer(ctx, s.bob, s.alice, 0))
		s.Require().NoError(s.ledger.Transfer(ctx, s.alice, s.alice, 1000))
		s.Equal(id.Balance(100), s.balance(s.alice))
	})

	s.Run("unfunded payer", func() {
		s.SetupTest()
		s.ErrorIs(s.ledger.Transfer(ctx, s.bob, s.alice, 1), ErrInsufficientFunds)
	})
}

func (s *LedgerSuite) TestSnapshotRestore() {
	restore := s.ledger.Snapshot()
	s.Require().NoError(s.ledger.Transfer(context.Background(), s.alice, s.bob, 50))
	restore()
	s.Equal(id.Balance(100), s.balance(s.alice))
	s.Equal(id.Balance(0), s.balance(s.bob))
}

func TestSpendable(t *testing.T) {
	assert.Equal(t, id.Balance(0), Spendable(5, 10))
	assert.Equal(t, id.Balance(90), Spendable(100, 10))
}
