package models

import id "clubledger/pkg/domain"

// EventKind names an event in logs, the audit trail and the outbox.
type EventKind string

const (
	EventClubCreated        EventKind = "club_created"
	EventClubTransferred    EventKind = "club_transferred"
	EventClubAnnualFeeSet   EventKind = "club_annual_fee_set"
	EventMemberAdded        EventKind = "member_added"
	EventMembershipExtended EventKind = "membership_extended"
)

// Event is produced by every successful mutation and carries the post-mutation
// values needed to rebuild state from a log.
type Event interface {
	Kind() EventKind
	Club() id.ClubID
	// Subject is the account the event is about.
	Subject() id.AccountID
}

type ClubCreated struct {
	ClubID id.ClubID    `json:"club_id"`
	Owner  id.AccountID `json:"owner"`
	Name   string       `json:"name"`
	Fee    id.Balance   `json:"fee"`
}

func (e ClubCreated) Kind() EventKind       { return EventClubCreated }
func (e ClubCreated) Club() id.ClubID       { return e.ClubID }
func (e ClubCreated) Subject() id.AccountID { return e.Owner }

type ClubTransferred struct {
	ClubID   id.ClubID    `json:"club_id"`
	OldOwner id.AccountID `json:"old_owner"`
	NewOwner id.AccountID `json:"new_owner"`
}

func (e ClubTransferred) Kind() EventKind       { return EventClubTransferred }
func (e ClubTransferred) Club() id.ClubID       { return e.ClubID }
func (e ClubTransferred) Subject() id.AccountID { return e.NewOwner }

type ClubAnnualFeeSet struct {
	ClubID id.ClubID  `json:"club_id"`
	OldFee id.Balance `json:"old_fee"`
	NewFee id.Balance `json:"new_fee"`
}

func (e ClubAnnualFeeSet) Kind() EventKind       { return EventClubAnnualFeeSet }
func (e ClubAnnualFeeSet) Club() id.ClubID       { return e.ClubID }
func (e ClubAnnualFeeSet) Subject() id.AccountID { return id.AccountID{} }

// MemberAdded carries the resulting status; Inactive when the fee could not be paid.
type MemberAdded struct {
	ClubID id.ClubID        `json:"club_id"`
	Member id.AccountID     `json:"member"`
	Status MembershipStatus `json:"status"`
}

func (e MemberAdded) Kind() EventKind       { return EventMemberAdded }
func (e MemberAdded) Club() id.ClubID       { return e.ClubID }
func (e MemberAdded) Subject() id.AccountID { return e.Member }

type MembershipExtended struct {
	ClubID    id.ClubID        `json:"club_id"`
	Member    id.AccountID     `json:"member"`
	NewStatus MembershipStatus `json:"new_status"`
}

func (e MembershipExtended) Kind() EventKind       { return EventMembershipExtended }
func (e MembershipExtended) Club() id.ClubID       { return e.ClubID }
func (e MembershipExtended) Subject() id.AccountID { return e.Member }
