package service

import (
	"context"

	"clubledger/internal/club/models"
	id "clubledger/pkg/domain"
	dErrors "clubledger/pkg/domain-errors"
)

// Access answers whether a member may use the club at block Now.
type Access struct {
	ClubID  id.ClubID               `json:"club_id"`
	Account id.AccountID            `json:"account"`
	Now     id.BlockNumber          `json:"now"`
	Active  bool                    `json:"active"`
	Status  models.MembershipStatus `json:"status"`
}

func (s *Service) GetClub(ctx context.Context, clubID id.ClubID) (*models.Club, error) {
	club, err := s.clubs.FindClub(ctx, clubID)
	if err != nil {
		return nil, wrapClubErr(err, "load club")
	}
	return club, nil
}

func (s *Service) GetMembership(ctx context.Context, clubID id.ClubID, account id.AccountID) (*models.Membership, error) {
	membership, err := s.memberships.FindMembership(ctx, clubID, account)
	if err != nil {
		return nil, wrapMembershipErr(err, "load membership")
	}
	return membership, nil
}

// ListMembers returns the club's memberships ordered by account.
func (s *Service) ListMembers(ctx context.Context, clubID id.ClubID) ([]models.Membership, error) {
	if _, err := s.GetClub(ctx, clubID); err != nil {
		return nil, err
	}
	members, err := s.memberships.ListMemberships(ctx, clubID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list memberships")
	}
	return members, nil
}

// CheckAccess reports whether account holds a paid membership valid now.
// Expired members stay Paid with an until in the past and are not active.
func (s *Service) CheckAccess(ctx context.Context, clubID id.ClubID, account id.AccountID) (Access, error) {
	membership, err := s.GetMembership(ctx, clubID, account)
	if err != nil {
		return Access{}, err
	}
	now := s.clock.Now(ctx)
	return Access{
		ClubID:  clubID,
		Account: account,
		Now:     now,
		Active:  membership.Status.IsActiveAt(now),
		Status:  membership.Status,
	}, nil
}

// NextClubID returns the id the next created club will receive.
func (s *Service) NextClubID(ctx context.Context) (id.ClubID, error) {
	next, err := s.clubs.NextClubID(ctx)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read club counter")
	}
	return next, nil
}
