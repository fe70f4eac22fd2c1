package service

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"

	"clubledger/internal/club/authz"
	"clubledger/internal/club/models"
	id "clubledger/pkg/domain"
	dErrors "clubledger/pkg/domain-errors"
	"clubledger/pkg/platform/sentinel"
)

// CreateClub registers a club under the next id and charges the creation
// deposit from owner to the treasury. Only the privileged caller may create.
func (s *Service) CreateClub(ctx context.Context, caller authz.Caller, owner id.AccountID, name string, fee id.Balance) (event models.ClubCreated, err error) {
	ctx, finish := s.startOp(ctx, "create_club", attribute.String("owner", owner.String()))
	defer func() { finish(err) }()

	if err := s.params.ValidateName(name); err != nil {
		return models.ClubCreated{}, err
	}
	if err := authz.RequirePrivileged(caller); err != nil {
		return models.ClubCreated{}, err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		clubID, err := s.clubs.NextClubID(txCtx)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to read club counter")
		}
		club, err := models.NewClub(clubID, name, fee, owner, s.params)
		if err != nil {
			if dErrors.HasCode(err, dErrors.CodeInvariantViolation) {
				return dErrors.New(dErrors.CodeValidation, err.Error())
			}
			return err
		}
		if err := s.clubs.SaveClub(txCtx, club); err != nil {
			if errors.Is(err, sentinel.ErrConflict) {
				return dErrors.Wrap(err, dErrors.CodeConflict, "club id already taken")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save club")
		}
		next, ok := clubID.Next()
		if !ok {
			return dErrors.New(dErrors.CodeArithmetic, "club id counter overflow")
		}
		if err := s.clubs.SetNextClubID(txCtx, next); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to store club counter")
		}
		if err := s.fees.Transfer(txCtx, owner, s.params.Treasury, s.params.ClubCreationDeposit); err != nil {
			return wrapTransferErr(err)
		}

		event = models.ClubCreated{ClubID: club.ID, Owner: club.Owner, Name: club.Name, Fee: club.Fee}
		return s.auditEmitter.emit(txCtx, caller, event)
	})
	if err != nil {
		return models.ClubCreated{}, err
	}

	if s.metrics != nil {
		s.metrics.IncrementClubsCreated()
		s.metrics.AddFeesCollected(uint64(s.params.ClubCreationDeposit))
	}
	return event, nil
}

// TransferClub hands the club to newOwner. Only the current owner may transfer.
func (s *Service) TransferClub(ctx context.Context, caller authz.Caller, clubID id.ClubID, newOwner id.AccountID) (models.ClubTransferred, error) {
	event, err := s.modifyClub(ctx, caller, clubID, "transfer_club", models.TransferOwnership{NewOwner: newOwner})
	if err != nil {
		return models.ClubTransferred{}, err
	}
	return event.(models.ClubTransferred), nil
}

// SetAnnualFee replaces the club's annual fee. Only the current owner may set it.
func (s *Service) SetAnnualFee(ctx context.Context, caller authz.Caller, clubID id.ClubID, fee id.Balance) (models.ClubAnnualFeeSet, error) {
	event, err := s.modifyClub(ctx, caller, clubID, "set_annual_fee", models.SetAnnualFee{Fee: fee})
	if err != nil {
		return models.ClubAnnualFeeSet{}, err
	}
	return event.(models.ClubAnnualFeeSet), nil
}

// modifyClub loads the club, checks the caller owns it, applies action and
// persists the result.
func (s *Service) modifyClub(ctx context.Context, caller authz.Caller, clubID id.ClubID, op string, action models.ClubAction) (event models.Event, err error) {
	ctx, finish := s.startOp(ctx, op, attribute.Int64("club_id", int64(clubID)))
	defer func() { finish(err) }()

	if v, ok := action.(interface{ Validate() error }); ok {
		if err = v.Validate(); err != nil {
			return nil, err
		}
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		club, err := s.clubs.FindClub(txCtx, clubID)
		if err != nil {
			return wrapClubErr(err, "load club")
		}
		if err := authz.RequireAccount(caller, club.Owner); err != nil {
			return err
		}
		event = club.Apply(action)
		if err := s.clubs.SaveClub(txCtx, club); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save club")
		}
		return s.auditEmitter.emit(txCtx, caller, event)
	})
	if err != nil {
		return nil, err
	}
	return event, nil
}
