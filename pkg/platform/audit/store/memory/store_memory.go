package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	id "clubledger/pkg/domain"
	audit "clubledger/pkg/platform/audit"
)

// InMemoryStore keeps events in append order and tracks which have been
// relayed. It takes part in tx.InMemory transactions via Snapshot.
type InMemoryStore struct {
	mu        sync.RWMutex
	events    []audit.Event
	published map[uuid.UUID]bool
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{published: make(map[uuid.UUID]bool)}
}

func (s *InMemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = nil
	s.published = make(map[uuid.UUID]bool)
}

func (s *InMemoryStore) Append(_ context.Context, event audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *InMemoryStore) ListByClub(_ context.Context, clubID id.ClubID) ([]audit.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []audit.Event
	for _, e := range s.events {
		if e.ClubID == clubID {
			out = append(out, e)
		}
	}
	return out, nil
}

// ListAll returns every event in append order.
func (s *InMemoryStore) ListAll(_ context.Context) ([]audit.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]audit.Event{}, s.events...), nil
}

func (s *InMemoryStore) FetchPending(_ context.Context, limit int) ([]audit.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []audit.Event
	for _, e := range s.events {
		if limit > 0 && len(out) >= limit {
			break
		}
		if !s.published[e.ID] {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *InMemoryStore) MarkPublished(_ context.Context, ids []uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, eventID := range ids {
		s.published[eventID] = true
	}
	return nil
}

// Snapshot captures the appended events so a failed transaction drops them.
func (s *InMemoryStore) Snapshot() func() {
	s.mu.RLock()
	n := len(s.events)
	s.mu.RUnlock()
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if n <= len(s.events) {
			s.events = s.events[:n:n]
		}
	}
}
