package models

import (
	"encoding/json"
	"fmt"

	id "clubledger/pkg/domain"
)

// StatusKind tags a MembershipStatus variant.
type StatusKind uint8

const (
	// StatusInactive is the zero value: the fee is not currently paid.
	StatusInactive StatusKind = iota
	// StatusPaid means access is valid through the status' until block.
	StatusPaid
)

func (k StatusKind) String() string {
	switch k {
	case StatusPaid:
		return "paid"
	case StatusInactive:
		return "inactive"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// MembershipStatus is a tagged variant: Paid{until} or Inactive. The until
// block is only reachable through Until, which reports whether it exists.
type MembershipStatus struct {
	kind  StatusKind
	until id.BlockNumber
}

// Paid builds a status whose access is valid through until (inclusive).
func Paid(until id.BlockNumber) MembershipStatus {
	return MembershipStatus{kind: StatusPaid, until: until}
}

// Inactive builds the unpaid status.
func Inactive() MembershipStatus {
	return MembershipStatus{kind: StatusInactive}
}

func (s MembershipStatus) Kind() StatusKind {
	return s.kind
}

func (s MembershipStatus) IsPaid() bool {
	return s.kind == StatusPaid
}

// Until returns the expiry block of a paid status; ok is false for Inactive.
func (s MembershipStatus) Until() (until id.BlockNumber, ok bool) {
	if s.kind != StatusPaid {
		return 0, false
	}
	return s.until, true
}

// IsActiveAt reports whether access is valid at block now. Expired members keep
// their Paid status; only the comparison with now changes.
func (s MembershipStatus) IsActiveAt(now id.BlockNumber) bool {
	return s.kind == StatusPaid && now <= s.until
}

func (s MembershipStatus) String() string {
	if s.kind == StatusPaid {
		return fmt.Sprintf("paid(until=%d)", s.until)
	}
	return s.kind.String()
}

type statusJSON struct {
	Kind  string          `json:"kind"`
	Until *id.BlockNumber `json:"until,omitempty"`
}

func (s MembershipStatus) MarshalJSON() ([]byte, error) {
	out := statusJSON{Kind: s.kind.String()}
	if until, ok := s.Until(); ok {
		out.Until = &until
	}
	return json.Marshal(out)
}

func (s *MembershipStatus) UnmarshalJSON(data []byte) error {
	var in statusJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	switch in.Kind {
	case "paid":
		if in.Until == nil {
			return fmt.Errorf("paid status requires until")
		}
		*s = Paid(*in.Until)
	case "inactive":
		*s = Inactive()
	default:
		return fmt.Errorf("unknown membership status %q", in.Kind)
	}
	return nil
}
