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

// AddMember admits member to the club for years, charging club.Fee*years from
// the member to the treasury. A refused payment does not fail the admission:
// the member is recorded as Inactive instead. Only the club owner may admit.
//
// An existing record for the pair is replaced.
func (s *Service) AddMember(ctx context.Context, caller authz.Caller, clubID id.ClubID, member id.AccountID, name string, years uint8) (event models.MemberAdded, err error) {
	ctx, finish := s.startOp(ctx, "add_member",
		attribute.Int64("club_id", int64(clubID)),
		attribute.Int("years", int(years)),
	)
	defer func() { finish(err) }()

	if err := s.params.ValidateYears(years); err != nil {
		return models.MemberAdded{}, err
	}
	if err := s.params.ValidateName(name); err != nil {
		return models.MemberAdded{}, err
	}

	var charged id.Balance
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		club, err := s.clubs.FindClub(txCtx, clubID)
		if err != nil {
			return wrapClubErr(err, "load club")
		}
		if err := authz.RequireAccount(caller, club.Owner); err != nil {
			return err
		}
		fee, err := club.MembershipFee(years)
		if err != nil {
			return err
		}

		now := s.clock.Now(txCtx)
		status := models.Paid(s.params.PaidThrough(now, years))
		if err := s.fees.Transfer(txCtx, member, s.params.Treasury, fee); err != nil {
			if !isTransferRefusal(err) {
				return wrapTransferErr(err)
			}
			status = models.Inactive()
			if s.logger != nil {
				s.logger.InfoContext(txCtx, "membership fee not paid, admitting as inactive",
					"club_id", uint32(clubID),
					"member", member.String(),
					"fee", uint64(fee),
					"error", err,
				)
			}
		} else {
			charged = fee
		}

		if err := s.warnOnReadmission(txCtx, clubID, member); err != nil {
			return err
		}
		membership, err := models.NewMembership(clubID, member, name, status, s.params)
		if err != nil {
			return err
		}
		if err := s.memberships.SaveMembership(txCtx, membership); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save membership")
		}

		event = models.MemberAdded{ClubID: clubID, Member: member, Status: status}
		return s.auditEmitter.emit(txCtx, caller, event)
	})
	if err != nil {
		return models.MemberAdded{}, err
	}

	if s.metrics != nil {
		s.metrics.IncrementMembersAdded(event.Status.Kind().String())
		s.metrics.AddFeesCollected(uint64(charged))
	}
	return event, nil
}

// warnOnReadmission logs when admission is about to replace an existing record.
func (s *Service) warnOnReadmission(ctx context.Context, clubID id.ClubID, member id.AccountID) error {
	existing, err := s.memberships.FindMembership(ctx, clubID, member)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil
	}
	if err != nil {
		return wrapMembershipErr(err, "load membership")
	}
	if s.logger != nil {
		s.logger.WarnContext(ctx, "re-admission replaces existing membership",
			"club_id", uint32(clubID),
			"member", member.String(),
			"previous_status", existing.Status.String(),
		)
	}
	return nil
}

// ExtendMembership renews member's membership by years. The fee is always
// charged to the member, whoever calls; a refused payment aborts the renewal.
// The club owner or the member may renew.
func (s *Service) ExtendMembership(ctx context.Context, caller authz.Caller, clubID id.ClubID, member id.AccountID, years uint8) (event models.MembershipExtended, err error) {
	ctx, finish := s.startOp(ctx, "extend_membership",
		attribute.Int64("club_id", int64(clubID)),
		attribute.Int("years", int(years)),
	)
	defer func() { finish(err) }()

	if err := s.params.ValidateYears(years); err != nil {
		return models.MembershipExtended{}, err
	}

	var charged id.Balance
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		club, err := s.clubs.FindClub(txCtx, clubID)
		if err != nil {
			return wrapClubErr(err, "load club")
		}
		if authz.RequireAccount(caller, club.Owner) != nil {
			if err := authz.RequireAccount(caller, member); err != nil {
				return err
			}
		}
		fee, err := club.MembershipFee(years)
		if err != nil {
			return err
		}
		if err := s.fees.Transfer(txCtx, member, s.params.Treasury, fee); err != nil {
			return wrapTransferErr(err)
		}
		charged = fee

		membership, err := s.memberships.FindMembership(txCtx, clubID, member)
		if err != nil {
			return wrapMembershipErr(err, "load membership")
		}
		status, err := s.params.Extended(membership.Status, s.clock.Now(txCtx), years)
		if err != nil {
			return err
		}
		membership.ApplyStatus(status)
		if err := s.memberships.SaveMembership(txCtx, membership); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save membership")
		}

		event = models.MembershipExtended{ClubID: clubID, Member: member, NewStatus: status}
		return s.auditEmitter.emit(txCtx, caller, event)
	})
	if err != nil {
		return models.MembershipExtended{}, err
	}

	if s.metrics != nil {
		s.metrics.IncrementMembershipsExtended()
		s.metrics.AddFeesCollected(uint64(charged))
	}
	return event, nil
}
