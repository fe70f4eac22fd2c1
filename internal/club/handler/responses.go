package handler

import (
	"clubledger/internal/club/models"
	id "clubledger/pkg/domain"
)

// ClubResponse is a club as returned by the read endpoints.
type ClubResponse struct {
	ID    id.ClubID    `json:"id"`
	Name  string       `json:"name"`
	Fee   id.Balance   `json:"fee"`
	Owner id.AccountID `json:"owner"`
}

func toClubResponse(c *models.Club) ClubResponse {
	return ClubResponse{ID: c.ID, Name: c.Name, Fee: c.Fee, Owner: c.Owner}
}

// MembershipResponse is one membership record.
type MembershipResponse struct {
	ClubID  id.ClubID               `json:"club_id"`
	Account id.AccountID            `json:"account"`
	Name    string                  `json:"name"`
	Status  models.MembershipStatus `json:"status"`
}

func toMembershipResponse(m *models.Membership) MembershipResponse {
	return MembershipResponse{ClubID: m.ClubID, Account: m.Account, Name: m.Name, Status: m.Status}
}

// MembersResponse lists a club's memberships ordered by account.
type MembersResponse struct {
	ClubID  id.ClubID            `json:"club_id"`
	Members []MembershipResponse `json:"members"`
}

// NextClubIDResponse is the id the next created club receives.
type NextClubIDResponse struct {
	NextClubID id.ClubID `json:"next_club_id"`
}

// TreasuryResponse reports the treasury account and its balance.
type TreasuryResponse struct {
	Account id.AccountID `json:"account"`
	Balance id.Balance   `json:"balance"`
}
