// Package handler exposes the club engine over HTTP.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"clubledger/internal/club/authz"
	"clubledger/internal/club/models"
	"clubledger/internal/club/service"
	id "clubledger/pkg/domain"
	dErrors "clubledger/pkg/domain-errors"
	"clubledger/pkg/platform/httputil"
	"clubledger/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

// Service defines the club operations the handler calls.
type Service interface {
	CreateClub(ctx context.Context, caller authz.Caller, owner id.AccountID, name string, fee id.Balance) (models.ClubCreated, error)
	TransferClub(ctx context.Context, caller authz.Caller, clubID id.ClubID, newOwner id.AccountID) (models.ClubTransferred, error)
	SetAnnualFee(ctx context.Context, caller authz.Caller, clubID id.ClubID, fee id.Balance) (models.ClubAnnualFeeSet, error)
	AddMember(ctx context.Context, caller authz.Caller, clubID id.ClubID, member id.AccountID, name string, years uint8) (models.MemberAdded, error)
	ExtendMembership(ctx context.Context, caller authz.Caller, clubID id.ClubID, member id.AccountID, years uint8) (models.MembershipExtended, error)
	WithdrawFees(ctx context.Context, caller authz.Caller, destination id.AccountID, amount id.Balance) error

	GetClub(ctx context.Context, clubID id.ClubID) (*models.Club, error)
	GetMembership(ctx context.Context, clubID id.ClubID, account id.AccountID) (*models.Membership, error)
	ListMembers(ctx context.Context, clubID id.ClubID) ([]models.Membership, error)
	CheckAccess(ctx context.Context, clubID id.ClubID, account id.AccountID) (service.Access, error)
	NextClubID(ctx context.Context) (id.ClubID, error)
	TreasuryBalance(ctx context.Context) (id.Balance, error)
	Params() models.Params
}

// Handler wires club endpoints to the club service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts club endpoints on the router. Callers must already be
// resolved by the auth middleware.
func (h *Handler) Register(r chi.Router) {
	r.Route("/clubs", func(r chi.Router) {
		r.Post("/", h.HandleCreateClub)
		r.Get("/next-id", h.HandleNextClubID)
		r.Route("/{clubID}", func(r chi.Router) {
			r.Get("/", h.HandleGetClub)
			r.Put("/owner", h.HandleTransferClub)
			r.Put("/fee", h.HandleSetAnnualFee)
			r.Get("/members", h.HandleListMembers)
			r.Post("/members", h.HandleAddMember)
			r.Get("/members/{account}", h.HandleGetMembership)
			r.Post("/members/{account}/extend", h.HandleExtendMembership)
			r.Get("/members/{account}/access", h.HandleCheckAccess)
		})
	})
	r.Get("/treasury", h.HandleTreasury)
	r.Post("/treasury/withdraw", h.HandleWithdraw)
}

// HandleCreateClub handles POST /clubs.
func (h *Handler) HandleCreateClub(w http.ResponseWriter, r *http.Request) {
	ctx, requestID, caller, ok := h.begin(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[CreateClubRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	event, err := h.service.CreateClub(ctx, caller, req.parsedOwner, req.Name, req.Fee)
	if err != nil {
		h.fail(ctx, w, "create club failed", requestID, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, event)
}

// HandleTransferClub handles PUT /clubs/{clubID}/owner.
func (h *Handler) HandleTransferClub(w http.ResponseWriter, r *http.Request) {
	ctx, requestID, caller, ok := h.begin(w, r)
	if !ok {
		return
	}
	clubID, ok := h.clubID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[TransferClubRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	event, err := h.service.TransferClub(ctx, caller, clubID, req.parsedNewOwner)
	if err != nil {
		h.fail(ctx, w, "transfer club failed", requestID, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, event)
}

// HandleSetAnnualFee handles PUT /clubs/{clubID}/fee.
func (h *Handler) HandleSetAnnualFee(w http.ResponseWriter, r *http.Request) {
	ctx, requestID, caller, ok := h.begin(w, r)
	if !ok {
		return
	}
	clubID, ok := h.clubID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[SetAnnualFeeRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	event, err := h.service.SetAnnualFee(ctx, caller, clubID, *req.Fee)
	if err != nil {
		h.fail(ctx, w, "set annual fee failed", requestID, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, event)
}

// HandleAddMember handles POST /clubs/{clubID}/members.
func (h *Handler) HandleAddMember(w http.ResponseWriter, r *http.Request) {
	ctx, requestID, caller, ok := h.begin(w, r)
	if !ok {
		return
	}
	clubID, ok := h.clubID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[AddMemberRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	event, err := h.service.AddMember(ctx, caller, clubID, req.parsedMember, req.Name, req.Years)
	if err != nil {
		h.fail(ctx, w, "add member failed", requestID, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, event)
}

// HandleExtendMembership handles POST /clubs/{clubID}/members/{account}/extend.
func (h *Handler) HandleExtendMembership(w http.ResponseWriter, r *http.Request) {
	ctx, requestID, caller, ok := h.begin(w, r)
	if !ok {
		return
	}
	clubID, ok := h.clubID(w, r)
	if !ok {
		return
	}
	member, ok := h.account(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[ExtendMembershipRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	event, err := h.service.ExtendMembership(ctx, caller, clubID, member, req.Years)
	if err != nil {
		h.fail(ctx, w, "extend membership failed", requestID, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, event)
}

// HandleWithdraw handles POST /treasury/withdraw.
func (h *Handler) HandleWithdraw(w http.ResponseWriter, r *http.Request) {
	ctx, requestID, caller, ok := h.begin(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[WithdrawRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	if err := h.service.WithdrawFees(ctx, caller, req.parsedDestination, req.Amount); err != nil {
		h.fail(ctx, w, "withdraw fees failed", requestID, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleGetClub handles GET /clubs/{clubID}.
func (h *Handler) HandleGetClub(w http.ResponseWriter, r *http.Request) {
	ctx, requestID, _, ok := h.begin(w, r)
	if !ok {
		return
	}
	clubID, ok := h.clubID(w, r)
	if !ok {
		return
	}
	club, err := h.service.GetClub(ctx, clubID)
	if err != nil {
		h.fail(ctx, w, "get club failed", requestID, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toClubResponse(club))
}

// HandleGetMembership handles GET /clubs/{clubID}/members/{account}.
func (h *Handler) HandleGetMembership(w http.ResponseWriter, r *http.Request) {
	ctx, requestID, _, ok := h.begin(w, r)
	if !ok {
		return
	}
	clubID, ok := h.clubID(w, r)
	if !ok {
		return
	}
	account, ok := h.account(w, r)
	if !ok {
		return
	}
	membership, err := h.service.GetMembership(ctx, clubID, account)
	if err != nil {
		h.fail(ctx, w, "get membership failed", requestID, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toMembershipResponse(membership))
}

// HandleListMembers handles GET /clubs/{clubID}/members.
func (h *Handler) HandleListMembers(w http.ResponseWriter, r *http.Request) {
	ctx, requestID, _, ok := h.begin(w, r)
	if !ok {
		return
	}
	clubID, ok := h.clubID(w, r)
	if !ok {
		return
	}
	memberships, err := h.service.ListMembers(ctx, clubID)
	if err != nil {
		h.fail(ctx, w, "list members failed", requestID, err)
		return
	}
	resp := MembersResponse{ClubID: clubID, Members: make([]MembershipResponse, 0, len(memberships))}
	for i := range memberships {
		resp.Members = append(resp.Members, toMembershipResponse(&memberships[i]))
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

// HandleCheckAccess handles GET /clubs/{clubID}/members/{account}/access.
func (h *Handler) HandleCheckAccess(w http.ResponseWriter, r *http.Request) {
	ctx, requestID, _, ok := h.begin(w, r)
	if !ok {
		return
	}
	clubID, ok := h.clubID(w, r)
	if !ok {
		return
	}
	account, ok := h.account(w, r)
	if !ok {
		return
	}
	access, err := h.service.CheckAccess(ctx, clubID, account)
	if err != nil {
		h.fail(ctx, w, "check access failed", requestID, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, access)
}

// HandleNextClubID handles GET /clubs/next-id.
func (h *Handler) HandleNextClubID(w http.ResponseWriter, r *http.Request) {
	ctx, requestID, _, ok := h.begin(w, r)
	if !ok {
		return
	}
	next, err := h.service.NextClubID(ctx)
	if err != nil {
		h.fail(ctx, w, "read club counter failed", requestID, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, NextClubIDResponse{NextClubID: next})
}

// HandleTreasury handles GET /treasury.
func (h *Handler) HandleTreasury(w http.ResponseWriter, r *http.Request) {
	ctx, requestID, _, ok := h.begin(w, r)
	if !ok {
		return
	}
	balance, err := h.service.TreasuryBalance(ctx)
	if err != nil {
		h.fail(ctx, w, "read treasury failed", requestID, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, TreasuryResponse{Account: h.service.Params().Treasury, Balance: balance})
}

// begin resolves the request id and the authenticated caller.
func (h *Handler) begin(w http.ResponseWriter, r *http.Request) (context.Context, string, authz.Caller, bool) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	caller, ok := authz.FromContext(ctx)
	if !ok {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return ctx, requestID, authz.Caller{}, false
	}
	return ctx, requestID, caller, true
}

func (h *Handler) clubID(w http.ResponseWriter, r *http.Request) (id.ClubID, bool) {
	clubID, err := id.ParseClubID(chi.URLParam(r, "clubID"))
	if err != nil {
		httputil.WriteError(w, err)
		return 0, false
	}
	return clubID, true
}

func (h *Handler) account(w http.ResponseWriter, r *http.Request) (id.AccountID, bool) {
	account, err := id.ParseAccountID(chi.URLParam(r, "account"))
	if err != nil {
		httputil.WriteError(w, err)
		return id.AccountID{}, false
	}
	return account, true
}

// fail logs the failure and writes the mapped error. Domain refusals log at
// warn; internal errors at error.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg, requestID string, err error) {
	level := slog.LevelWarn
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		level = slog.LevelError
	}
	h.logger.Log(ctx, level, msg,
		"request_id", requestID,
		"error", err,
	)
	httputil.WriteError(w, err)
}
