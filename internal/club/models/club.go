package models

import (
	id "clubledger/pkg/domain"
	dErrors "clubledger/pkg/domain-errors"
	"clubledger/pkg/safemath"
)

// Club is the aggregate root for a fee-charging group.
//
// Invariants:
//   - ID is allocated from the club counter and never reused
//   - Name is at most Params.MaxNameLength bytes and immutable after creation
//   - Owner is always set; ownership moves only through Apply(TransferOwnership)
//   - Fee is the annual membership fee; it may be zero
type Club struct {
	ID    id.ClubID    `json:"id"`
	Name  string       `json:"name"`
	Fee   id.Balance   `json:"fee"`
	Owner id.AccountID `json:"owner"`
}

// NewClub validates the bounded name and builds a club.
func NewClub(clubID id.ClubID, name string, fee id.Balance, owner id.AccountID, params Params) (*Club, error) {
	if err := params.ValidateName(name); err != nil {
		return nil, err
	}
	if owner.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "club owner is required")
	}
	return &Club{
		ID:    clubID,
		Name:  name,
		Fee:   fee,
		Owner: owner,
	}, nil
}

func (c *Club) IsOwner(account id.AccountID) bool {
	return c.Owner == account
}

// MembershipFee is the fee owed for the given number of years. Multiplication
// is checked; overflow is an arithmetic error rather than a clamped amount.
func (c *Club) MembershipFee(years uint8) (id.Balance, error) {
	total, ok := safemath.CheckedMul(c.Fee, id.Balance(years))
	if !ok {
		return 0, dErrors.New(dErrors.CodeArithmetic, "membership fee overflows")
	}
	return total, nil
}

// ClubAction is a mutation applied by the club owner.
type ClubAction interface {
	apply(c *Club) Event
}

// TransferOwnership hands the club to a new owner.
type TransferOwnership struct {
	NewOwner id.AccountID
}

// Validate rejects a transfer to the nil account.
func (a TransferOwnership) Validate() error {
	if a.NewOwner.IsNil() {
		return dErrors.New(dErrors.CodeValidation, "new owner is required")
	}
	return nil
}

func (a TransferOwnership) apply(c *Club) Event {
	old := c.Owner
	c.Owner = a.NewOwner
	return ClubTransferred{ClubID: c.ID, OldOwner: old, NewOwner: a.NewOwner}
}

// SetAnnualFee replaces the annual membership fee.
type SetAnnualFee struct {
	Fee id.Balance
}

func (a SetAnnualFee) apply(c *Club) Event {
	old := c.Fee
	c.Fee = a.Fee
	return ClubAnnualFeeSet{ClubID: c.ID, OldFee: old, NewFee: a.Fee}
}

// Apply mutates the club and returns the event describing the change.
// Authorization is the caller's job.
func (c *Club) Apply(action ClubAction) Event {
	return action.apply(c)
}
