package handler

import (
	"strings"

	id "clubledger/pkg/domain"
	dErrors "clubledger/pkg/domain-errors"
)

// CreateClubRequest is the body of POST /clubs.
type CreateClubRequest struct {
	Owner string     `json:"owner"`
	Name  string     `json:"name"`
	Fee   id.Balance `json:"fee"`

	parsedOwner id.AccountID
}

// Validate implements httputil.Validatable. Name bounds are enforced by the
// service so the error ordering matches direct calls.
func (r *CreateClubRequest) Validate() error {
	owner, err := parseAccount("owner", r.Owner)
	if err != nil {
		return err
	}
	r.parsedOwner = owner
	return nil
}

// TransferClubRequest is the body of PUT /clubs/{clubID}/owner.
type TransferClubRequest struct {
	NewOwner string `json:"new_owner"`

	parsedNewOwner id.AccountID
}

func (r *TransferClubRequest) Validate() error {
	owner, err := parseAccount("new_owner", r.NewOwner)
	if err != nil {
		return err
	}
	r.parsedNewOwner = owner
	return nil
}

// SetAnnualFeeRequest is the body of PUT /clubs/{clubID}/fee.
type SetAnnualFeeRequest struct {
	Fee *id.Balance `json:"fee"`
}

func (r *SetAnnualFeeRequest) Validate() error {
	if r.Fee == nil {
		return dErrors.New(dErrors.CodeValidation, "fee is required")
	}
	return nil
}

// AddMemberRequest is the body of POST /clubs/{clubID}/members.
type AddMemberRequest struct {
	Member string `json:"member"`
	Name   string `json:"name"`
	Years  uint8  `json:"years"`

	parsedMember id.AccountID
}

func (r *AddMemberRequest) Validate() error {
	member, err := parseAccount("member", r.Member)
	if err != nil {
		return err
	}
	r.parsedMember = member
	return nil
}

// ExtendMembershipRequest is the body of POST /clubs/{clubID}/members/{account}/extend.
type ExtendMembershipRequest struct {
	Years uint8 `json:"years"`
}

func (r *ExtendMembershipRequest) Validate() error {
	return nil
}

// WithdrawRequest is the body of POST /treasury/withdraw.
type WithdrawRequest struct {
	Destination string     `json:"destination"`
	Amount      id.Balance `json:"amount"`

	parsedDestination id.AccountID
}

func (r *WithdrawRequest) Validate() error {
	destination, err := parseAccount("destination", r.Destination)
	if err != nil {
		return err
	}
	r.parsedDestination = destination
	return nil
}

func parseAccount(field, value string) (id.AccountID, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return id.AccountID{}, dErrors.New(dErrors.CodeValidation, field+" is required")
	}
	account, err := id.ParseAccountID(value)
	if err != nil {
		return id.AccountID{}, dErrors.New(dErrors.CodeValidation, field+" must be an account id")
	}
	return account, nil
}
