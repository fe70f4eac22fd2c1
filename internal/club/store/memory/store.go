package memory

import (
	"bytes"
	"context"
	"maps"
	"slices"
	"sync"

	"clubledger/internal/club/models"
	id "clubledger/pkg/domain"
	"clubledger/pkg/platform/sentinel"
)

type membershipKey struct {
	club    id.ClubID
	account id.AccountID
}

// Store is the in-memory club registry and membership ledger. Records are
// copied on the way in and out so callers cannot alias stored state.
type Store struct {
	mu          sync.RWMutex
	nextID      id.ClubID
	clubs       map[id.ClubID]models.Club
	memberships map[membershipKey]models.Membership
}

func New() *Store {
	return &Store{
		clubs:       make(map[id.ClubID]models.Club),
		memberships: make(map[membershipKey]models.Membership),
	}
}

func (s *Store) NextClubID(_ context.Context) (id.ClubID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nextID, nil
}

func (s *Store) SetNextClubID(_ context.Context, next id.ClubID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID = next
	return nil
}

func (s *Store) FindClub(_ context.Context, clubID id.ClubID) (*models.Club, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	club, ok := s.clubs[clubID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &club, nil
}

func (s *Store) SaveClub(_ context.Context, club *models.Club) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clubs[club.ID] = *club
	return nil
}

func (s *Store) FindMembership(_ context.Context, clubID id.ClubID, account id.AccountID) (*models.Membership, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.memberships[membershipKey{club: clubID, account: account}]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &m, nil
}

func (s *Store) SaveMembership(_ context.Context, membership *models.Membership) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.memberships[membershipKey{club: membership.ClubID, account: membership.Account}] = *membership
	return nil
}

// ListMemberships returns every membership of a club ordered by account.
func (s *Store) ListMemberships(_ context.Context, clubID id.ClubID) ([]models.Membership, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Membership
	for key, m := range s.memberships {
		if key.club == clubID {
			out = append(out, m)
		}
	}
	slices.SortFunc(out, func(a, b models.Membership) int {
		return bytes.Compare(a.Account[:], b.Account[:])
	})
	return out, nil
}

// Snapshot captures the counter and both tables.
func (s *Store) Snapshot() func() {
	s.mu.RLock()
	nextID := s.nextID
	clubs := maps.Clone(s.clubs)
	memberships := maps.Clone(s.memberships)
	s.mu.RUnlock()
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.nextID = nextID
		s.clubs = clubs
		s.memberships = memberships
	}
}
