package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	id "clubledger/pkg/domain"
)

// EventCategory classifies audit events by their primary purpose.
// This enables different retention policies and routing downstream.
type EventCategory string

const (
	// CategoryGovernance covers changes to a club itself: creation, ownership, fee.
	CategoryGovernance EventCategory = "governance"

	// CategoryMembership covers admissions and renewals.
	CategoryMembership EventCategory = "membership"
)

// AuditEvent is the action name of an event.
type AuditEvent string

const (
	EventClubCreated        AuditEvent = "club_created"
	EventClubTransferred    AuditEvent = "club_transferred"
	EventClubAnnualFeeSet   AuditEvent = "club_annual_fee_set"
	EventMemberAdded        AuditEvent = "member_added"
	EventMembershipExtended AuditEvent = "membership_extended"
)

// eventCategories maps each audit event to its category.
var eventCategories = map[AuditEvent]EventCategory{
	EventClubCreated:        CategoryGovernance,
	EventClubTransferred:    CategoryGovernance,
	EventClubAnnualFeeSet:   CategoryGovernance,
	EventMemberAdded:        CategoryMembership,
	EventMembershipExtended: CategoryMembership,
}

// Category returns the EventCategory for this audit event.
// Unknown events default to CategoryGovernance.
func (e AuditEvent) Category() EventCategory {
	if cat, ok := eventCategories[e]; ok {
		return cat
	}
	return CategoryGovernance
}

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	ID        uuid.UUID
	Category  EventCategory
	Action    string
	ClubID    id.ClubID
	Subject   id.AccountID
	ActorID   string // "root" or the signing account
	Block     id.BlockNumber
	Payload   json.RawMessage
	RequestID string
	Timestamp time.Time
}

// Store persists audit events. Append runs inside the operation's transaction.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByClub(ctx context.Context, clubID id.ClubID) ([]Event, error)
}

// Outbox exposes events not yet relayed to a downstream sink.
type Outbox interface {
	FetchPending(ctx context.Context, limit int) ([]Event, error)
	MarkPublished(ctx context.Context, ids []uuid.UUID) error
}

// wireEvent is the JSON shape relayed to sinks.
type wireEvent struct {
	ID        string          `json:"id"`
	Category  string          `json:"category"`
	Action    string          `json:"action"`
	ClubID    uint32          `json:"club_id"`
	Subject   string          `json:"subject,omitempty"`
	ActorID   string          `json:"actor_id,omitempty"`
	Block     uint64          `json:"block"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	RequestID string          `json:"request_id,omitempty"`
	Timestamp string          `json:"timestamp"`
}

// Encode renders an event in the wire format used by the outbox sinks.
func Encode(e Event) ([]byte, error) {
	w := wireEvent{
		ID:        e.ID.String(),
		Category:  string(e.Category),
		Action:    e.Action,
		ClubID:    uint32(e.ClubID),
		ActorID:   e.ActorID,
		Block:     uint64(e.Block),
		Payload:   e.Payload,
		RequestID: e.RequestID,
		Timestamp: e.Timestamp.UTC().Format(time.RFC3339Nano),
	}
	if !e.Subject.IsNil() {
		w.Subject = e.Subject.String()
	}
	return json.Marshal(w)
}
