// Package authz holds the two authorization predicates of the club engine.
//
// A Caller is either the privileged identity (root) or a signed account.
// The predicates are pure; they never touch stores.
package authz

import (
	"context"

	id "clubledger/pkg/domain"
	dErrors "clubledger/pkg/domain-errors"
)

// Caller identifies who submitted an operation. Build one with Root or Signed;
// the zero value is an anonymous caller that every predicate rejects.
type Caller struct {
	privileged bool
	account    id.AccountID
}

// Root returns the privileged caller.
func Root() Caller {
	return Caller{privileged: true}
}

// Signed returns a caller acting as account.
func Signed(account id.AccountID) Caller {
	return Caller{account: account}
}

func (c Caller) IsPrivileged() bool {
	return c.privileged
}

// Account returns the signing account; ok is false for root and anonymous callers.
func (c Caller) Account() (account id.AccountID, ok bool) {
	if c.privileged || c.account.IsNil() {
		return id.AccountID{}, false
	}
	return c.account, true
}

func (c Caller) String() string {
	if c.privileged {
		return "root"
	}
	if account, ok := c.Account(); ok {
		return account.String()
	}
	return "anonymous"
}

// RequirePrivileged fails unless caller is the privileged identity.
func RequirePrivileged(caller Caller) error {
	if !caller.privileged {
		return dErrors.New(dErrors.CodeForbidden, "privileged caller required")
	}
	return nil
}

// RequireAccount fails unless caller signed as expected. The privileged caller
// does not satisfy it.
func RequireAccount(caller Caller, expected id.AccountID) error {
	account, ok := caller.Account()
	if !ok || account != expected {
		return dErrors.New(dErrors.CodeForbidden, "caller is not authorized for this account")
	}
	return nil
}

type callerKey struct{}

// WithCaller stores the authenticated caller on ctx.
func WithCaller(ctx context.Context, caller Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, caller)
}

// FromContext returns the caller stored by WithCaller; ok is false when none is set.
func FromContext(ctx context.Context) (caller Caller, ok bool) {
	caller, ok = ctx.Value(callerKey{}).(Caller)
	return caller, ok
}
