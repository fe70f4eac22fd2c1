package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"

	"clubledger/internal/balances"
	"clubledger/internal/chain"
	"clubledger/internal/club/authz"
	"clubledger/internal/club/metrics"
	"clubledger/internal/club/models"
	"clubledger/internal/club/store/memory"
	id "clubledger/pkg/domain"
	dErrors "clubledger/pkg/domain-errors"
	"clubledger/pkg/platform/audit"
	"clubledger/pkg/platform/audit/publisher"
	auditmemory "clubledger/pkg/platform/audit/store/memory"
	"clubledger/pkg/platform/tx"
)

const (
	testYear      = id.BlockNumber(100)
	testEndowment = id.Balance(5000)
)

// =============================================================================
// Club Service Test Suite
// =============================================================================
// Justification for unit tests: the service owns every state transition of the
// club engine. Tests run against the in-memory stores, ledger and outbox inside
// a snapshotting transaction, so rollback, fee movement and event emission are
// observed end to end without a database.

type ServiceSuite struct {
	suite.Suite
	ctx        context.Context
	params     models.Params
	store      *memory.Store
	ledger     *balances.Ledger
	auditStore *auditmemory.InMemoryStore
	clock      *chain.ManualClock
	metrics    *metrics.Metrics
	service    *Service

	alice id.AccountID
	bob   id.AccountID
	carol id.AccountID
	poor  id.AccountID
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.params = models.Params{
		MaxNameLength:       16,
		MaxMembershipYears:  100,
		ClubCreationDeposit: 10,
		YearLength:          testYear,
		Treasury:            id.DeriveAccountID("membersp"),
	}
	s.store = memory.New()
	s.ledger = balances.NewLedger(balances.WithExistentialDeposit(1))
	s.auditStore = auditmemory.NewInMemoryStore()
	s.clock = chain.NewManualClock(1)
	s.metrics = metrics.New(prometheus.NewRegistry())

	var err error
	s.service, err = New(s.store, s.store, s.ledger, s.clock, s.params,
		WithTx(tx.NewInMemory(s.store, s.ledger, s.auditStore)),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithAuditPublisher(publisher.NewPublisher(s.auditStore)),
		WithMetrics(s.metrics),
	)
	s.Require().NoError(err)

	s.alice = id.DeriveAccountID("alice")
	s.bob = id.DeriveAccountID("bob")
	s.carol = id.DeriveAccountID("carol")
	s.poor = id.DeriveAccountID("poor")
	for _, a := range []id.AccountID{s.alice, s.bob, s.carol} {
		s.ledger.Endow(a, testEndowment)
	}
}

func (s *ServiceSuite) balance(a id.AccountID) id.Balance {
	b, err := s.ledger.Balance(s.ctx, a)
	s.Require().NoError(err)
	return b
}

func (s *ServiceSuite) createClub(owner id.AccountID, fee id.Balance) id.ClubID {
	event, err := s.service.CreateClub(s.ctx, authz.Root(), owner, "club", fee)
	s.Require().NoError(err)
	return event.ClubID
}

func (s *ServiceSuite) membership(clubID id.ClubID, account id.AccountID) *models.Membership {
	m, err := s.service.GetMembership(s.ctx, clubID, account)
	s.Require().NoError(err)
	return m
}

func (s *ServiceSuite) requireCode(err error, code dErrors.Code) {
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, code), "expected %s, got %v", code, err)
}

func (s *ServiceSuite) actions() []string {
	events, err := s.auditStore.ListAll(s.ctx)
	s.Require().NoError(err)
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.Action)
	}
	return out
}

// =============================================================================
// Constructor Tests
// =============================================================================
// Justification: invalid parameters must be rejected before any operation runs.

func (s *ServiceSuite) TestNew() {
	s.Run("rejects zero max years", func() {
		params := s.params
		params.MaxMembershipYears = 0
		_, err := New(s.store, s.store, s.ledger, s.clock, params)
		s.requireCode(err, dErrors.CodeInvariantViolation)
	})

	s.Run("rejects missing collaborators", func() {
		_, err := New(s.store, s.store, nil, s.clock, s.params)
		s.requireCode(err, dErrors.CodeInvariantViolation)
	})

	s.Run("default transaction rolls back the stores and ledger", func() {
		s.SetupTest()
		svc, err := New(s.store, s.store, s.ledger, s.clock, s.params)
		s.Require().NoError(err)

		_, err = svc.CreateClub(s.ctx, authz.Root(), s.poor, "chess", 5)
		s.requireCode(err, dErrors.CodeTransferFailed)

		_, err = s.store.FindClub(s.ctx, 0)
		s.Require().Error(err)
		next, err := s.store.NextClubID(s.ctx)
		s.Require().NoError(err)
		s.Equal(id.ClubID(0), next)
	})
}

// =============================================================================
// ClubRegistry
// =============================================================================

func (s *ServiceSuite) TestCreateClub() {
	s.Run("allocates sequential ids and charges the deposit", func() {
		s.SetupTest()
		for want := id.ClubID(0); want < 3; want++ {
			event, err := s.service.CreateClub(s.ctx, authz.Root(), s.alice, "chess", 7)
			s.Require().NoError(err)
			s.Equal(want, event.ClubID)
			s.Equal(s.alice, event.Owner)
			s.Equal("chess", event.Name)
			s.Equal(id.Balance(7), event.Fee)
		}
		next, err := s.service.NextClubID(s.ctx)
		s.Require().NoError(err)
		s.Equal(id.ClubID(3), next)
		s.Equal(testEndowment-30, s.balance(s.alice))
		s.Equal(id.Balance(30), s.balance(s.params.Treasury))
		s.Equal([]string{"club_created", "club_created", "club_created"}, s.actions())
		s.Equal(3.0, testutil.ToFloat64(s.metrics.ClubsCreated))
	})

	s.Run("requires the privileged caller", func() {
		s.SetupTest()
		_, err := s.service.CreateClub(s.ctx, authz.Signed(s.alice), s.alice, "chess", 7)
		s.requireCode(err, dErrors.CodeForbidden)
		next, _ := s.service.NextClubID(s.ctx)
		s.Equal(id.ClubID(0), next)
	})

	s.Run("name length is validated before authorization", func() {
		s.SetupTest()
		_, err := s.service.CreateClub(s.ctx, authz.Signed(s.alice), s.alice, "a name that is far too long", 7)
		s.requireCode(err, dErrors.CodeValidation)
	})

	s.Run("name at the limit is accepted", func() {
		s.SetupTest()
		_, err := s.service.CreateClub(s.ctx, authz.Root(), s.alice, "sixteen-bytes-ok", 7)
		s.Require().NoError(err)
	})

	s.Run("deposit failure aborts creation and keeps the id", func() {
		s.SetupTest()
		_, err := s.service.CreateClub(s.ctx, authz.Root(), s.poor, "chess", 7)
		s.requireCode(err, dErrors.CodeTransferFailed)

		_, err = s.service.GetClub(s.ctx, 0)
		s.requireCode(err, dErrors.CodeNotFound)
		next, _ := s.service.NextClubID(s.ctx)
		s.Equal(id.ClubID(0), next)
		s.Empty(s.actions())

		event, err := s.service.CreateClub(s.ctx, authz.Root(), s.alice, "chess", 7)
		s.Require().NoError(err)
		s.Equal(id.ClubID(0), event.ClubID)
	})

	s.Run("counter overflow is an arithmetic error", func() {
		s.SetupTest()
		s.Require().NoError(s.store.SetNextClubID(s.ctx, math.MaxUint32))
		_, err := s.service.CreateClub(s.ctx, authz.Root(), s.alice, "chess", 7)
		s.requireCode(err, dErrors.CodeArithmetic)
		_, err = s.service.GetClub(s.ctx, math.MaxUint32)
		s.requireCode(err, dErrors.CodeNotFound)
		s.Equal(testEndowment, s.balance(s.alice))
	})
}

func (s *ServiceSuite) TestTransferClub() {
	s.Run("owner hands the club over", func() {
		s.SetupTest()
		clubID := s.createClub(s.alice, 5)

		event, err := s.service.TransferClub(s.ctx, authz.Signed(s.alice), clubID, s.bob)
		s.Require().NoError(err)
		s.Equal(models.ClubTransferred{ClubID: clubID, OldOwner: s.alice, NewOwner: s.bob}, event)

		club, err := s.service.GetClub(s.ctx, clubID)
		s.Require().NoError(err)
		s.Equal(s.bob, club.Owner)

		_, err = s.service.TransferClub(s.ctx, authz.Signed(s.alice), clubID, s.carol)
		s.requireCode(err, dErrors.CodeForbidden)
	})

	s.Run("non-owner and root are rejected", func() {
		s.SetupTest()
		clubID := s.createClub(s.alice, 5)
		for _, caller := range []authz.Caller{authz.Signed(s.bob), authz.Root(), {}} {
			_, err := s.service.TransferClub(s.ctx, caller, clubID, s.bob)
			s.requireCode(err, dErrors.CodeForbidden)
		}
	})

	s.Run("missing club", func() {
		s.SetupTest()
		_, err := s.service.TransferClub(s.ctx, authz.Signed(s.alice), 42, s.bob)
		s.requireCode(err, dErrors.CodeNotFound)
	})

	s.Run("nil new owner is rejected and still timed", func() {
		s.SetupTest()
		clubID := s.createClub(s.alice, 5)

		_, err := s.service.TransferClub(s.ctx, authz.Signed(s.alice), clubID, id.AccountID{})
		s.requireCode(err, dErrors.CodeValidation)

		club, err := s.service.GetClub(s.ctx, clubID)
		s.Require().NoError(err)
		s.Equal(s.alice, club.Owner)
		// create_club and transfer_club each own one series.
		s.Equal(2, testutil.CollectAndCount(s.metrics.OperationDuration))
	})
}

func (s *ServiceSuite) TestSetAnnualFee() {
	s.Run("owner changes the fee", func() {
		s.SetupTest()
		clubID := s.createClub(s.alice, 5)

		event, err := s.service.SetAnnualFee(s.ctx, authz.Signed(s.alice), clubID, 9)
		s.Require().NoError(err)
		s.Equal(models.ClubAnnualFeeSet{ClubID: clubID, OldFee: 5, NewFee: 9}, event)

		club, _ := s.service.GetClub(s.ctx, clubID)
		s.Equal(id.Balance(9), club.Fee)
		s.Equal([]string{"club_created", "club_annual_fee_set"}, s.actions())
	})

	s.Run("non-owner is rejected and nothing changes", func() {
		s.SetupTest()
		clubID := s.createClub(s.alice, 5)
		_, err := s.service.SetAnnualFee(s.ctx, authz.Signed(s.bob), clubID, 9)
		s.requireCode(err, dErrors.CodeForbidden)
		club, _ := s.service.GetClub(s.ctx, clubID)
		s.Equal(id.Balance(5), club.Fee)
	})

	s.Run("missing club", func() {
		s.SetupTest()
		_, err := s.service.SetAnnualFee(s.ctx, authz.Signed(s.alice), 3, 9)
		s.requireCode(err, dErrors.CodeNotFound)
	})
}

// =============================================================================
// MembershipLedger: admission
// =============================================================================

func (s *ServiceSuite) TestAddMember() {
	s.Run("fee 5 for 5 years charges 25", func() {
		s.SetupTest()
		clubID := s.createClub(s.alice, 5)
		s.ledger.SetBalance(s.bob, 100)
		treasury := s.balance(s.params.Treasury)

		event, err := s.service.AddMember(s.ctx, authz.Signed(s.alice), clubID, s.bob, "bob", 5)
		s.Require().NoError(err)
		s.Equal(models.Paid(1+5*testYear), event.Status)
		s.Equal(id.Balance(75), s.balance(s.bob))
		s.Equal(treasury+25, s.balance(s.params.Treasury))

		m := s.membership(clubID, s.bob)
		s.Equal("bob", m.Name)
		s.Equal(models.Paid(1+5*testYear), m.Status)
	})

	s.Run("charged fee is fee times years", func() {
		s.SetupTest()
		clubID := s.createClub(s.alice, 3)
		for _, years := range []uint8{1, 2, 37, 100} {
			member := id.DeriveAccountID(fmt.Sprintf("member-%d", years))
			s.ledger.Endow(member, testEndowment)

			_, err := s.service.AddMember(s.ctx, authz.Signed(s.alice), clubID, member, "m", years)
			s.Require().NoError(err)
			s.Equal(testEndowment-3*id.Balance(years), s.balance(member), "years=%d", years)
		}
	})

	s.Run("insufficient funds admits as inactive and charges nothing", func() {
		s.SetupTest()
		clubID := s.createClub(s.alice, 5)
		s.ledger.SetBalance(s.bob, 20)
		treasury := s.balance(s.params.Treasury)

		event, err := s.service.AddMember(s.ctx, authz.Signed(s.alice), clubID, s.bob, "bob", 5)
		s.Require().NoError(err)
		s.Equal(models.Inactive(), event.Status)
		s.Equal(id.Balance(20), s.balance(s.bob))
		s.Equal(treasury, s.balance(s.params.Treasury))
		s.False(s.membership(clubID, s.bob).Status.IsPaid())
		s.Equal(1.0, testutil.ToFloat64(s.metrics.MembersAdded.WithLabelValues("inactive")))
	})

	s.Run("free club admits as paid without moving funds", func() {
		s.SetupTest()
		clubID := s.createClub(s.alice, 0)
		event, err := s.service.AddMember(s.ctx, authz.Signed(s.alice), clubID, s.poor, "p", 1)
		s.Require().NoError(err)
		s.True(event.Status.IsPaid())
	})

	s.Run("years out of range fail before any lookup", func() {
		s.SetupTest()
		for _, years := range []uint8{0, 101, 255} {
			_, err := s.service.AddMember(s.ctx, authz.Signed(s.alice), 99, s.bob, "bob", years)
			s.requireCode(err, dErrors.CodeValidation)
		}
	})

	s.Run("maximum years are accepted", func() {
		s.SetupTest()
		clubID := s.createClub(s.alice, 1)
		event, err := s.service.AddMember(s.ctx, authz.Signed(s.alice), clubID, s.bob, "bob", 100)
		s.Require().NoError(err)
		s.Equal(models.Paid(1+100*testYear), event.Status)
	})

	s.Run("name too long", func() {
		s.SetupTest()
		clubID := s.createClub(s.alice, 1)
		_, err := s.service.AddMember(s.ctx, authz.Signed(s.alice), clubID, s.bob, "a name that is far too long", 1)
		s.requireCode(err, dErrors.CodeValidation)
	})

	s.Run("missing club and non-owner", func() {
		s.SetupTest()
		clubID := s.createClub(s.alice, 1)
		_, err := s.service.AddMember(s.ctx, authz.Signed(s.alice), clubID+1, s.bob, "bob", 1)
		s.requireCode(err, dErrors.CodeNotFound)
		_, err = s.service.AddMember(s.ctx, authz.Signed(s.bob), clubID, s.bob, "bob", 1)
		s.requireCode(err, dErrors.CodeForbidden)
		_, err = s.service.AddMember(s.ctx, authz.Root(), clubID, s.bob, "bob", 1)
		s.requireCode(err, dErrors.CodeForbidden)
	})

	s.Run("fee overflow is an arithmetic error", func() {
		s.SetupTest()
		clubID := s.createClub(s.alice, math.MaxUint64)
		_, err := s.service.AddMember(s.ctx, authz.Signed(s.alice), clubID, s.bob, "bob", 2)
		s.requireCode(err, dErrors.CodeArithmetic)
		_, err = s.service.GetMembership(s.ctx, clubID, s.bob)
		s.requireCode(err, dErrors.CodeNotFound)
	})

	s.Run("expiry saturates instead of overflowing", func() {
		s.SetupTest()
		clubID := s.createClub(s.alice, 0)
		s.clock.Set(math.MaxUint64 - 10)
		event, err := s.service.AddMember(s.ctx, authz.Signed(s.alice), clubID, s.bob, "bob", 1)
		s.Require().NoError(err)
		s.Equal(models.Paid(math.MaxUint64), event.Status)
	})

	s.Run("re-admission replaces the record", func() {
		s.SetupTest()
		clubID := s.createClub(s.alice, 5)
		_, err := s.service.AddMember(s.ctx, authz.Signed(s.alice), clubID, s.bob, "bob", 3)
		s.Require().NoError(err)
		s.ledger.SetBalance(s.bob, 1)

		event, err := s.service.AddMember(s.ctx, authz.Signed(s.alice), clubID, s.bob, "robert", 1)
		s.Require().NoError(err)
		s.Equal(models.Inactive(), event.Status)
		m := s.membership(clubID, s.bob)
		s.Equal("robert", m.Name)
		s.False(m.Status.IsPaid())
	})
}

// =============================================================================
// MembershipLedger: renewal
// =============================================================================

func (s *ServiceSuite) TestExtendMembership() {
	s.Run("paid through now+2Y extended by 3 ends at now+5Y", func() {
		s.SetupTest()
		clubID := s.createClub(s.alice, 5)
		_, err := s.service.AddMember(s.ctx, authz.Signed(s.alice), clubID, s.bob, "bob", 2)
		s.Require().NoError(err)
		now := s.clock.Now(s.ctx)

		event, err := s.service.ExtendMembership(s.ctx, authz.Signed(s.alice), clubID, s.bob, 3)
		s.Require().NoError(err)
		s.Equal(models.Paid(now+5*testYear), event.NewStatus)
		s.Equal(testEndowment-25, s.balance(s.bob))
		s.Equal("bob", s.membership(clubID, s.bob).Name)
	})

	s.Run("expired membership restarts from now", func() {
		s.SetupTest()
		clubID := s.createClub(s.alice, 1)
		_, err := s.service.AddMember(s.ctx, authz.Signed(s.alice), clubID, s.bob, "bob", 1)
		s.Require().NoError(err)
		s.clock.Set(1000)

		access, err := s.service.CheckAccess(s.ctx, clubID, s.bob)
		s.Require().NoError(err)
		s.False(access.Active)

		event, err := s.service.ExtendMembership(s.ctx, authz.Signed(s.bob), clubID, s.bob, 2)
		s.Require().NoError(err)
		s.Equal(models.Paid(1000+2*testYear), event.NewStatus)
	})

	s.Run("inactive member starts a fresh window", func() {
		s.SetupTest()
		clubID := s.createClub(s.alice, 5)
		s.ledger.SetBalance(s.bob, 2)
		_, err := s.service.AddMember(s.ctx, authz.Signed(s.alice), clubID, s.bob, "bob", 1)
		s.Require().NoError(err)
		s.ledger.SetBalance(s.bob, 100)
		s.clock.Set(700)

		event, err := s.service.ExtendMembership(s.ctx, authz.Signed(s.bob), clubID, s.bob, 1)
		s.Require().NoError(err)
		s.Equal(models.Paid(700+testYear), event.NewStatus)
		s.Equal(id.Balance(95), s.balance(s.bob))
	})

	s.Run("renewal never shortens the paid window", func() {
		s.SetupTest()
		clubID := s.createClub(s.alice, 0)
		_, err := s.service.AddMember(s.ctx, authz.Signed(s.alice), clubID, s.bob, "bob", 10)
		s.Require().NoError(err)
		for _, at := range []id.BlockNumber{1, 50, 350, 2000, 5000} {
			s.clock.Set(at)
			before, _ := s.membership(clubID, s.bob).Status.Until()
			_, err := s.service.ExtendMembership(s.ctx, authz.Signed(s.bob), clubID, s.bob, 1)
			s.Require().NoError(err)
			after, _ := s.membership(clubID, s.bob).Status.Until()
			s.GreaterOrEqual(after, before, "at block %d", at)
		}
	})

	s.Run("owner renews but the member pays", func() {
		s.SetupTest()
		clubID := s.createClub(s.alice, 4)
		_, err := s.service.AddMember(s.ctx, authz.Signed(s.alice), clubID, s.bob, "bob", 1)
		s.Require().NoError(err)
		aliceBefore := s.balance(s.alice)

		_, err = s.service.ExtendMembership(s.ctx, authz.Signed(s.alice), clubID, s.bob, 2)
		s.Require().NoError(err)
		s.Equal(aliceBefore, s.balance(s.alice))
		s.Equal(testEndowment-4-8, s.balance(s.bob))
	})

	s.Run("third parties and root are rejected", func() {
		s.SetupTest()
		clubID := s.createClub(s.alice, 1)
		_, err := s.service.AddMember(s.ctx, authz.Signed(s.alice), clubID, s.bob, "bob", 1)
		s.Require().NoError(err)
		for _, caller := range []authz.Caller{authz.Signed(s.carol), authz.Root()} {
			_, err := s.service.ExtendMembership(s.ctx, caller, clubID, s.bob, 1)
			s.requireCode(err, dErrors.CodeForbidden)
		}
	})

	s.Run("refused payment aborts the renewal", func() {
		s.SetupTest()
		clubID := s.createClub(s.alice, 5)
		_, err := s.service.AddMember(s.ctx, authz.Signed(s.alice), clubID, s.bob, "bob", 1)
		s.Require().NoError(err)
		s.ledger.SetBalance(s.bob, 3)

		_, err = s.service.ExtendMembership(s.ctx, authz.Signed(s.bob), clubID, s.bob, 1)
		s.requireCode(err, dErrors.CodeTransferFailed)
		s.Equal(models.Paid(1+testYear), s.membership(clubID, s.bob).Status)
	})

	s.Run("missing membership rolls back the charged fee", func() {
		s.SetupTest()
		clubID := s.createClub(s.alice, 5)
		treasury := s.balance(s.params.Treasury)

		_, err := s.service.ExtendMembership(s.ctx, authz.Signed(s.alice), clubID, s.bob, 2)
		s.requireCode(err, dErrors.CodeNotFound)
		s.Equal(testEndowment, s.balance(s.bob))
		s.Equal(treasury, s.balance(s.params.Treasury))
	})

	s.Run("remaining plus new years must stay below the maximum", func() {
		s.SetupTest()
		clubID := s.createClub(s.alice, 0)
		_, err := s.service.AddMember(s.ctx, authz.Signed(s.alice), clubID, s.bob, "bob", 99)
		s.Require().NoError(err)

		_, err = s.service.ExtendMembership(s.ctx, authz.Signed(s.bob), clubID, s.bob, 1)
		s.requireCode(err, dErrors.CodeValidation)

		s.clock.Set(1 + testYear)
		event, err := s.service.ExtendMembership(s.ctx, authz.Signed(s.bob), clubID, s.bob, 1)
		s.Require().NoError(err)
		s.Equal(models.Paid(1+100*testYear), event.NewStatus)
	})

	s.Run("years and club are validated", func() {
		s.SetupTest()
		_, err := s.service.ExtendMembership(s.ctx, authz.Signed(s.bob), 0, s.bob, 0)
		s.requireCode(err, dErrors.CodeValidation)
		_, err = s.service.ExtendMembership(s.ctx, authz.Signed(s.bob), 0, s.bob, 1)
		s.requireCode(err, dErrors.CodeNotFound)
	})
}

// =============================================================================
// TreasuryAccounting
// =============================================================================

func (s *ServiceSuite) TestWithdrawFees() {
	s.Run("withdraws exactly the amount", func() {
		s.SetupTest()
		s.createClub(s.alice, 0)
		s.createClub(s.alice, 0)
		s.Equal(id.Balance(20), s.balance(s.params.Treasury))

		s.Require().NoError(s.service.WithdrawFees(s.ctx, authz.Root(), s.carol, 12))
		treasury, err := s.service.TreasuryBalance(s.ctx)
		s.Require().NoError(err)
		s.Equal(id.Balance(8), treasury)
		s.Equal(testEndowment+12, s.balance(s.carol))
		s.Equal(12.0, testutil.ToFloat64(s.metrics.FeesWithdrawn))
	})

	s.Run("cannot draw into the existential deposit", func() {
		s.SetupTest()
		s.createClub(s.alice, 0)

		err := s.service.WithdrawFees(s.ctx, authz.Root(), s.carol, 10)
		s.requireCode(err, dErrors.CodeTransferFailed)
		s.Equal(id.Balance(10), s.balance(s.params.Treasury))

		s.Require().NoError(s.service.WithdrawFees(s.ctx, authz.Root(), s.carol, 9))
		s.Equal(id.Balance(1), s.balance(s.params.Treasury))
	})

	s.Run("requires the privileged caller", func() {
		s.SetupTest()
		s.createClub(s.alice, 0)
		err := s.service.WithdrawFees(s.ctx, authz.Signed(s.alice), s.alice, 1)
		s.requireCode(err, dErrors.CodeForbidden)
	})
}

// =============================================================================
// Queries and audit trail
// =============================================================================

func (s *ServiceSuite) TestQueries() {
	clubID := s.createClub(s.alice, 2)
	_, err := s.service.AddMember(s.ctx, authz.Signed(s.alice), clubID, s.bob, "bob", 1)
	s.Require().NoError(err)
	_, err = s.service.AddMember(s.ctx, authz.Signed(s.alice), clubID, s.carol, "carol", 1)
	s.Require().NoError(err)

	s.Run("check access is inclusive of the expiry block", func() {
		s.clock.Set(1 + testYear)
		access, err := s.service.CheckAccess(s.ctx, clubID, s.bob)
		s.Require().NoError(err)
		s.True(access.Active)

		s.clock.Advance(1)
		access, err = s.service.CheckAccess(s.ctx, clubID, s.bob)
		s.Require().NoError(err)
		s.False(access.Active)
		s.True(access.Status.IsPaid())
	})

	s.Run("list members", func() {
		members, err := s.service.ListMembers(s.ctx, clubID)
		s.Require().NoError(err)
		s.Len(members, 2)

		_, err = s.service.ListMembers(s.ctx, clubID+1)
		s.requireCode(err, dErrors.CodeNotFound)
	})

	s.Run("unknown membership", func() {
		_, err := s.service.CheckAccess(s.ctx, clubID, s.poor)
		s.requireCode(err, dErrors.CodeNotFound)
	})

	s.Run("events are recorded per club with actor and payload", func() {
		events, err := s.auditStore.ListByClub(s.ctx, clubID)
		s.Require().NoError(err)
		s.Require().Len(events, 3)
		s.Equal(string(audit.EventClubCreated), events[0].Action)
		s.Equal("root", events[0].ActorID)
		s.Equal(string(audit.EventMemberAdded), events[1].Action)
		s.Equal(audit.CategoryMembership, events[1].Category)
		s.Equal(s.bob, events[1].Subject)
		s.Equal(s.alice.String(), events[1].ActorID)
		s.JSONEq(`{"club_id":0,"member":"`+s.bob.String()+`","status":{"kind":"paid","until":101}}`, string(events[1].Payload))
	})
}
