package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"clubledger/internal/club/authz"
	"clubledger/internal/club/handler/mocks"
	"clubledger/internal/club/models"
	"clubledger/internal/club/service"
	id "clubledger/pkg/domain"
	dErrors "clubledger/pkg/domain-errors"
	"clubledger/pkg/testutil"
)

// =============================================================================
// Club Handler Test Suite
// =============================================================================
// Justification for handler unit tests: the handler owns request decoding,
// path parsing, caller resolution and the mapping of domain codes to HTTP
// statuses. The service is mocked so each mapping is pinned in isolation.

type HandlerSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	service *mocks.MockService
	router  http.Handler

	alice id.AccountID
	bob   id.AccountID
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.service = mocks.NewMockService(s.ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := chi.NewRouter()
	New(s.service, logger).Register(r)
	s.router = r

	s.alice = id.DeriveAccountID("alice")
	s.bob = id.DeriveAccountID("bob")
}

func (s *HandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerSuite) do(req *http.Request, caller authz.Caller) (int, map[string]any) {
	rr := testutil.DoRequest(s.router, testutil.WithCaller(req, caller))
	if rr.Body.Len() == 0 {
		return rr.Code, nil
	}
	return rr.Code, *testutil.UnmarshalResponse[map[string]any](s.T(), rr)
}

func (s *HandlerSuite) TestCreateClub() {
	s.Run("root creates a club", func() {
		s.SetupTest()
		s.service.EXPECT().CreateClub(gomock.Any(), authz.Root(), s.alice, "chess", id.Balance(7)).
			Return(models.ClubCreated{ClubID: 0, Owner: s.alice, Name: "chess", Fee: 7}, nil)

		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/clubs", map[string]any{
			"owner": s.alice.String(), "name": "chess", "fee": 7,
		})
		code, body := s.do(req, authz.Root())
		s.Equal(http.StatusCreated, code)
		s.Equal(float64(0), body["club_id"])
		s.Equal(s.alice.String(), body["owner"])
		s.Equal("chess", body["name"])
	})

	s.Run("malformed owner is rejected before the service", func() {
		s.SetupTest()
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/clubs", map[string]any{
			"owner": "not-a-uuid", "name": "chess", "fee": 7,
		})
		code, body := s.do(req, authz.Root())
		s.Equal(http.StatusBadRequest, code)
		s.Equal("validation_error", body["error"])
		s.Equal("owner must be an account id", body["error_description"])
	})

	s.Run("forbidden caller maps to 403", func() {
		s.SetupTest()
		s.service.EXPECT().CreateClub(gomock.Any(), authz.Signed(s.bob), s.alice, "chess", id.Balance(7)).
			Return(models.ClubCreated{}, dErrors.New(dErrors.CodeForbidden, "privileged caller required"))

		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/clubs", map[string]any{
			"owner": s.alice.String(), "name": "chess", "fee": 7,
		})
		code, body := s.do(req, authz.Signed(s.bob))
		s.Equal(http.StatusForbidden, code)
		s.Equal("forbidden", body["error"])
	})

	s.Run("refused deposit maps to 402", func() {
		s.SetupTest()
		s.service.EXPECT().CreateClub(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(models.ClubCreated{}, dErrors.New(dErrors.CodeTransferFailed, "fee transfer failed"))

		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/clubs", map[string]any{
			"owner": s.alice.String(), "name": "chess", "fee": 7,
		})
		code, body := s.do(req, authz.Root())
		s.Equal(http.StatusPaymentRequired, code)
		s.Equal("transfer_failed", body["error"])
	})

	s.Run("internal errors hide their cause", func() {
		s.SetupTest()
		s.service.EXPECT().CreateClub(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(models.ClubCreated{}, dErrors.Wrap(errors.New("pq: connection refused"), dErrors.CodeInternal, "failed to save club"))

		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/clubs", map[string]any{
			"owner": s.alice.String(), "name": "chess", "fee": 7,
		})
		code, body := s.do(req, authz.Root())
		s.Equal(http.StatusInternalServerError, code)
		s.Equal("internal_error", body["error"])
		s.NotContains(body, "error_description")
	})

	s.Run("unauthenticated request is 401", func() {
		s.SetupTest()
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/clubs", map[string]any{
			"owner": s.alice.String(), "name": "chess", "fee": 7,
		})
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusUnauthorized, "unauthorized")
	})
}

func (s *HandlerSuite) TestClubMutations() {
	s.Run("transfer", func() {
		s.SetupTest()
		s.service.EXPECT().TransferClub(gomock.Any(), authz.Signed(s.alice), id.ClubID(3), s.bob).
			Return(models.ClubTransferred{ClubID: 3, OldOwner: s.alice, NewOwner: s.bob}, nil)

		req := testutil.NewJSONRequest(s.T(), http.MethodPut, "/clubs/3/owner", map[string]any{"new_owner": s.bob.String()})
		code, body := s.do(req, authz.Signed(s.alice))
		s.Equal(http.StatusOK, code)
		s.Equal(s.bob.String(), body["new_owner"])
	})

	s.Run("set fee", func() {
		s.SetupTest()
		s.service.EXPECT().SetAnnualFee(gomock.Any(), authz.Signed(s.alice), id.ClubID(3), id.Balance(0)).
			Return(models.ClubAnnualFeeSet{ClubID: 3, OldFee: 7, NewFee: 0}, nil)

		req := testutil.NewJSONRequest(s.T(), http.MethodPut, "/clubs/3/fee", map[string]any{"fee": 0})
		code, body := s.do(req, authz.Signed(s.alice))
		s.Equal(http.StatusOK, code)
		s.Equal(float64(7), body["old_fee"])
	})

	s.Run("missing fee is a validation error", func() {
		s.SetupTest()
		req := testutil.NewJSONRequest(s.T(), http.MethodPut, "/clubs/3/fee", map[string]any{})
		code, body := s.do(req, authz.Signed(s.alice))
		s.Equal(http.StatusBadRequest, code)
		s.Equal("fee is required", body["error_description"])
	})

	s.Run("club id must be a u32", func() {
		s.SetupTest()
		req := testutil.NewJSONRequest(s.T(), http.MethodPut, "/clubs/4294967296/fee", map[string]any{"fee": 1})
		code, body := s.do(req, authz.Signed(s.alice))
		s.Equal(http.StatusBadRequest, code)
		s.Equal("invalid_input", body["error"])
	})

	s.Run("unknown club maps to 404", func() {
		s.SetupTest()
		s.service.EXPECT().SetAnnualFee(gomock.Any(), gomock.Any(), id.ClubID(9), id.Balance(1)).
			Return(models.ClubAnnualFeeSet{}, dErrors.New(dErrors.CodeNotFound, "club not found"))

		req := testutil.NewJSONRequest(s.T(), http.MethodPut, "/clubs/9/fee", map[string]any{"fee": 1})
		code, _ := s.do(req, authz.Signed(s.alice))
		s.Equal(http.StatusNotFound, code)
	})
}

func (s *HandlerSuite) TestMemberships() {
	s.Run("add member", func() {
		s.SetupTest()
		s.service.EXPECT().AddMember(gomock.Any(), authz.Signed(s.alice), id.ClubID(1), s.bob, "bob", uint8(2)).
			Return(models.MemberAdded{ClubID: 1, Member: s.bob, Status: models.Paid(201)}, nil)

		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/clubs/1/members", map[string]any{
			"member": s.bob.String(), "name": "bob", "years": 2,
		})
		code, body := s.do(req, authz.Signed(s.alice))
		s.Equal(http.StatusCreated, code)
		s.Equal(map[string]any{"kind": "paid", "until": float64(201)}, body["status"])
	})

	s.Run("years beyond a byte is a bad request", func() {
		s.SetupTest()
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/clubs/1/members", map[string]any{
			"member": s.bob.String(), "name": "bob", "years": 300,
		})
		code, body := s.do(req, authz.Signed(s.alice))
		s.Equal(http.StatusBadRequest, code)
		s.Equal("bad_request", body["error"])
	})

	s.Run("extend", func() {
		s.SetupTest()
		s.service.EXPECT().ExtendMembership(gomock.Any(), authz.Signed(s.bob), id.ClubID(1), s.bob, uint8(1)).
			Return(models.MembershipExtended{ClubID: 1, Member: s.bob, NewStatus: models.Paid(301)}, nil)

		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/clubs/1/members/"+s.bob.String()+"/extend", map[string]any{"years": 1})
		code, body := s.do(req, authz.Signed(s.bob))
		s.Equal(http.StatusOK, code)
		s.Equal(map[string]any{"kind": "paid", "until": float64(301)}, body["new_status"])
	})

	s.Run("arithmetic refusal maps to 422", func() {
		s.SetupTest()
		s.service.EXPECT().ExtendMembership(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(models.MembershipExtended{}, dErrors.New(dErrors.CodeArithmetic, "fee overflow"))

		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/clubs/1/members/"+s.bob.String()+"/extend", map[string]any{"years": 1})
		code, _ := s.do(req, authz.Signed(s.bob))
		s.Equal(http.StatusUnprocessableEntity, code)
	})

	s.Run("get membership", func() {
		s.SetupTest()
		s.service.EXPECT().GetMembership(gomock.Any(), id.ClubID(1), s.bob).
			Return(&models.Membership{ClubID: 1, Account: s.bob, Name: "bob", Status: models.Inactive()}, nil)

		code, body := s.do(testutil.NewRequest(s.T(), http.MethodGet, "/clubs/1/members/"+s.bob.String()), authz.Signed(s.alice))
		s.Equal(http.StatusOK, code)
		s.Equal("bob", body["name"])
		s.Equal(map[string]any{"kind": "inactive"}, body["status"])
	})

	s.Run("list members", func() {
		s.SetupTest()
		s.service.EXPECT().ListMembers(gomock.Any(), id.ClubID(1)).Return([]models.Membership{
			{ClubID: 1, Account: s.alice, Name: "alice", Status: models.Paid(10)},
			{ClubID: 1, Account: s.bob, Name: "bob", Status: models.Inactive()},
		}, nil)

		code, body := s.do(testutil.NewRequest(s.T(), http.MethodGet, "/clubs/1/members"), authz.Signed(s.alice))
		s.Equal(http.StatusOK, code)
		s.Len(body["members"], 2)
	})

	s.Run("check access", func() {
		s.SetupTest()
		s.service.EXPECT().CheckAccess(gomock.Any(), id.ClubID(1), s.bob).
			Return(service.Access{ClubID: 1, Account: s.bob, Now: 50, Active: true, Status: models.Paid(60)}, nil)

		code, body := s.do(testutil.NewRequest(s.T(), http.MethodGet, "/clubs/1/members/"+s.bob.String()+"/access"), authz.Signed(s.bob))
		s.Equal(http.StatusOK, code)
		s.Equal(true, body["active"])
		s.Equal(float64(50), body["now"])
	})

	s.Run("malformed account path is a bad request", func() {
		s.SetupTest()
		code, _ := s.do(testutil.NewRequest(s.T(), http.MethodGet, "/clubs/1/members/nobody"), authz.Signed(s.alice))
		s.Equal(http.StatusBadRequest, code)
	})
}

func (s *HandlerSuite) TestTreasury() {
	s.Run("withdraw", func() {
		s.SetupTest()
		s.service.EXPECT().WithdrawFees(gomock.Any(), authz.Root(), s.alice, id.Balance(12)).Return(nil)

		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/treasury/withdraw", map[string]any{
			"destination": s.alice.String(), "amount": 12,
		})
		code, body := s.do(req, authz.Root())
		s.Equal(http.StatusNoContent, code)
		s.Nil(body)
	})

	s.Run("balance", func() {
		s.SetupTest()
		params := models.DefaultParams()
		s.service.EXPECT().TreasuryBalance(gomock.Any()).Return(id.Balance(30), nil)
		s.service.EXPECT().Params().Return(params)

		code, body := s.do(testutil.NewRequest(s.T(), http.MethodGet, "/treasury"), authz.Signed(s.alice))
		s.Equal(http.StatusOK, code)
		s.Equal(float64(30), body["balance"])
		s.Equal(params.Treasury.String(), body["account"])
	})

	s.Run("next club id", func() {
		s.SetupTest()
		s.service.EXPECT().NextClubID(gomock.Any()).Return(id.ClubID(5), nil)

		code, body := s.do(testutil.NewRequest(s.T(), http.MethodGet, "/clubs/next-id"), authz.Signed(s.alice))
		s.Equal(http.StatusOK, code)
		s.Equal(float64(5), body["next_club_id"])
	})

	s.Run("get club", func() {
		s.SetupTest()
		s.service.EXPECT().GetClub(gomock.Any(), id.ClubID(2)).
			Return(&models.Club{ID: 2, Name: "chess", Fee: 3, Owner: s.alice}, nil)

		code, body := s.do(testutil.NewRequest(s.T(), http.MethodGet, "/clubs/2"), authz.Signed(s.bob))
		s.Equal(http.StatusOK, code)
		s.Equal("chess", body["name"])
	})
}
