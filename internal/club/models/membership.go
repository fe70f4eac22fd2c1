package models

import (
	id "clubledger/pkg/domain"
	dErrors "clubledger/pkg/domain-errors"
	"clubledger/pkg/safemath"
)

// Membership records one account's paid-access window for one club.
// Identity is (ClubID, Account); there is at most one record per pair.
type Membership struct {
	ClubID  id.ClubID        `json:"club_id"`
	Account id.AccountID     `json:"account"`
	Name    string           `json:"name"`
	Status  MembershipStatus `json:"status"`
}

// NewMembership validates the bounded member name and builds a record.
func NewMembership(clubID id.ClubID, account id.AccountID, name string, status MembershipStatus, params Params) (*Membership, error) {
	if err := params.ValidateName(name); err != nil {
		return nil, err
	}
	return &Membership{
		ClubID:  clubID,
		Account: account,
		Name:    name,
		Status:  status,
	}, nil
}

// PaidThrough is the expiry of a window of years starting at now. It saturates
// at the largest block number instead of failing.
func (p Params) PaidThrough(now id.BlockNumber, years uint8) id.BlockNumber {
	return safemath.SaturatingAdd(now, safemath.SaturatingMul(p.YearLength, id.BlockNumber(years)))
}

// Extended computes the status after renewing current by years at block now.
//
// A paid membership extends from max(until, now), so unexpired time is kept,
// and the remaining whole years plus the new ones must stay strictly below
// MaxMembershipYears. An inactive membership starts a fresh window at now.
func (p Params) Extended(current MembershipStatus, now id.BlockNumber, years uint8) (MembershipStatus, error) {
	until, paid := current.Until()
	if !paid {
		return Paid(p.PaidThrough(now, years)), nil
	}

	baseline := max(until, now)
	yearsLeft, ok := safemath.CheckedDiv(baseline-now, p.YearLength)
	if !ok {
		return MembershipStatus{}, dErrors.New(dErrors.CodeArithmetic, "year length is zero")
	}
	if safemath.SaturatingAdd(yearsLeft, id.BlockNumber(years)) >= id.BlockNumber(p.MaxMembershipYears) {
		return MembershipStatus{}, dErrors.New(dErrors.CodeValidation, "membership cannot extend beyond the maximum number of years")
	}
	return Paid(p.PaidThrough(baseline, years)), nil
}

// ApplyStatus replaces the status, keeping the member's name.
func (m *Membership) ApplyStatus(status MembershipStatus) {
	m.Status = status
}
