package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores and adapters return these
// (optionally wrapped) so services can translate them into domain errors.
//
// These represent factual states about resources, not validation failures:
//   - ErrNotFound: club, membership or outbox entry does not exist in the store
//   - ErrConflict: a write raced with another writer on the same key
//   - ErrUnavailable: backing service temporarily unavailable
//
// For validation errors (bad input, out-of-range years), use pkg/domain-errors directly.
var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("unavailable")
)
