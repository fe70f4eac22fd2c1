// Package ports defines the interfaces the club service depends on.
// Adapters live in internal/club/store, internal/balances and pkg/platform/audit.
package ports

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"clubledger/internal/club/models"
	id "clubledger/pkg/domain"
	"clubledger/pkg/platform/audit"
)

// ClubStore persists the club counter and the club table.
// Lookups of missing clubs return sentinel.ErrNotFound.
type ClubStore interface {
	// NextClubID returns the id the next created club receives.
	NextClubID(ctx context.Context) (id.ClubID, error)
	SetNextClubID(ctx context.Context, next id.ClubID) error
	FindClub(ctx context.Context, clubID id.ClubID) (*models.Club, error)
	// SaveClub inserts or replaces the club keyed by its ID.
	SaveClub(ctx context.Context, club *models.Club) error
}

// MembershipStore persists memberships keyed by (club, account).
// Lookups of missing memberships return sentinel.ErrNotFound.
type MembershipStore interface {
	FindMembership(ctx context.Context, clubID id.ClubID, account id.AccountID) (*models.Membership, error)
	// SaveMembership inserts or replaces the record for its (club, account) pair.
	SaveMembership(ctx context.Context, membership *models.Membership) error
	// ListMemberships returns a club's memberships ordered by account.
	ListMemberships(ctx context.Context, clubID id.ClubID) ([]models.Membership, error)
}

// StoreTx provides the all-or-nothing boundary of one operation.
type StoreTx interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// FeeGateway moves value between accounts on the host currency.
type FeeGateway interface {
	Transfer(ctx context.Context, from, to id.AccountID, amount id.Balance) error
	Balance(ctx context.Context, account id.AccountID) (id.Balance, error)
}

// Clock yields the host's current block.
type Clock interface {
	Now(ctx context.Context) id.BlockNumber
}

// AuditPublisher emits audit events for club mutations.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}
