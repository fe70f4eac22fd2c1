// Package balances implements the fee gateway over a simple free-balance
// ledger with keep-alive transfers: a payer may never drop below the
// existential deposit, and a new account must be created with at least it.
package balances

import (
	"errors"

	id "clubledger/pkg/domain"
	dErrors "clubledger/pkg/domain-errors"
	"clubledger/pkg/safemath"
)

// Transfer refusals carry CodeTransferFailed so callers can tell them apart
// from infrastructure failures without importing this package.
var (
	// ErrInsufficientFunds means the payer's spendable balance is below the amount.
	ErrInsufficientFunds = dErrors.New(dErrors.CodeTransferFailed, "insufficient funds")
	// ErrBelowMinimum means a new destination account would end below the existential deposit.
	ErrBelowMinimum = dErrors.New(dErrors.CodeTransferFailed, "destination below existential deposit")
	// ErrOverflow means the destination balance would overflow.
	ErrOverflow = dErrors.New(dErrors.CodeTransferFailed, "balance overflow")
)

// DefaultExistentialDeposit matches the smallest unit a live account may hold.
const DefaultExistentialDeposit id.Balance = 1

// Spendable is the part of free that can leave the account while keeping it alive.
func Spendable(free, ed id.Balance) id.Balance {
	return safemath.SaturatingSub(free, ed)
}

// settle applies one keep-alive transfer to the two balances.
func settle(from, to, amount, ed id.Balance) (id.Balance, id.Balance, error) {
	if amount > Spendable(from, ed) {
		return from, to, ErrInsufficientFunds
	}
	next, ok := safemath.CheckedAdd(to, amount)
	if !ok {
		return from, to, ErrOverflow
	}
	if to == 0 && next < ed {
		return from, to, ErrBelowMinimum
	}
	return from - amount, next, nil
}

// reason maps a transfer error to a metric label.
func reason(err error) string {
	switch {
	case errors.Is(err, ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, ErrBelowMinimum):
		return "below_minimum"
	case errors.Is(err, ErrOverflow):
		return "overflow"
	default:
		return "other"
	}
}
