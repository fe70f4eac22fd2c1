// Package domain holds the typed primitives shared by every club module:
// identifiers, balances and block numbers.
//
// Typed IDs keep a ClubID from being passed where an AccountID is expected.
// Construct them via the Parse functions at trust boundaries; direct casting
// bypasses validation.
package domain

import (
	"math"
	"strconv"

	"github.com/google/uuid"

	dErrors "clubledger/pkg/domain-errors"
)

// AccountID identifies an account on the host ledger.
type AccountID uuid.UUID

// ParseAccountID constructs an AccountID from external input.
//
// Errors: returns CodeInvalidInput when the value is empty, malformed or the
// nil UUID.
func ParseAccountID(s string) (AccountID, error) {
	if s == "" {
		return AccountID{}, dErrors.New(dErrors.CodeInvalidInput, "account id cannot be empty")
	}
	parsed, err := uuid.Parse(s)
	if err != nil {
		return AccountID{}, dErrors.New(dErrors.CodeInvalidInput, "invalid account id")
	}
	if parsed == uuid.Nil {
		return AccountID{}, dErrors.New(dErrors.CodeInvalidInput, "account id cannot be nil")
	}
	return AccountID(parsed), nil
}

func (a AccountID) String() string {
	return uuid.UUID(a).String()
}

func (a AccountID) IsNil() bool {
	return uuid.UUID(a) == uuid.Nil
}

func (a AccountID) MarshalText() ([]byte, error) {
	return uuid.UUID(a).MarshalText()
}

func (a *AccountID) UnmarshalText(data []byte) error {
	parsed, err := ParseAccountID(string(data))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// accountNamespace scopes derived module accounts so they cannot collide with
// randomly generated ones.
var accountNamespace = uuid.MustParse("6f1c2a0e-8d0b-4c55-9d43-6b1f0c3a7e21")

// DeriveAccountID deterministically derives a module-owned account from a
// short identifier (for example the treasury id "membersp"). Every node derives
// the same account for the same seed.
func DeriveAccountID(seed string) AccountID {
	return AccountID(uuid.NewSHA1(accountNamespace, []byte(seed)))
}

// ClubID identifies a club. IDs are allocated from a counter starting at 0.
type ClubID uint32

// ParseClubID constructs a ClubID from a decimal string.
func ParseClubID(s string) (ClubID, error) {
	if s == "" {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "club id cannot be empty")
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "invalid club id")
	}
	return ClubID(v), nil
}

func (c ClubID) String() string {
	return strconv.FormatUint(uint64(c), 10)
}

// Next returns the id after c. ok is false when c is the last representable id.
func (c ClubID) Next() (next ClubID, ok bool) {
	if c == math.MaxUint32 {
		return 0, false
	}
	return c + 1, true
}

// Balance is an amount of the host currency in its smallest unit.
type Balance uint64

// ParseBalance constructs a Balance from a decimal string.
func ParseBalance(s string) (Balance, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "invalid amount")
	}
	return Balance(v), nil
}

func (b Balance) String() string {
	return strconv.FormatUint(uint64(b), 10)
}

// BlockNumber is the host's time unit. Membership windows are expressed in blocks.
type BlockNumber uint64

func (n BlockNumber) String() string {
	return strconv.FormatUint(uint64(n), 10)
}
