package events

import "fmt"

// EventType is the closed set of platform events this service aggregates.
// Each type maps to a fixed set of counter keys in the recording routing
// table; an unknown type is rejected at parse time, never turned into a key.
type EventType string

const (
	EventUserRegistered      EventType = "user_registered"
	EventMessageSent         EventType = "message_sent"
	EventComplaintSubmitted  EventType = "complaint_submitted"
	EventComplaintResolved   EventType = "complaint_resolved"
	EventCandidateRegistered EventType = "candidate_registered"
	EventMemberRegistered    EventType = "member_registered"
	EventRatingSubmitted     EventType = "rating_submitted"
)

// NewEventTypeFromString parses an event type string.
func NewEventTypeFromString(s string) (EventType, error) {
	switch EventType(s) {
	case EventUserRegistered, EventMessageSent, EventComplaintSubmitted,
		EventComplaintResolved, EventCandidateRegistered, EventMemberRegistered,
		EventRatingSubmitted:
		return EventType(s), nil
	default:
		return "", fmt.Errorf("unknown event type: %q", s)
	}
}

// Dimension names carried by StatEvent.Dimensions.
const (
	DimRole        = "role"
	DimGovernorate = "governorate"
	DimParty       = "party"
	DimScore       = "score"
)

// StatEvent is one countable platform occurrence reported by an upstream
// service. Delivery is at-least-once and fire-and-forget from the caller's
// point of view.
//
// Example JSON:
//
//	{
//	  "type": "complaint_submitted",
//	  "dimensions": {"governorate": "CAI"},
//	  "amount": 1
//	}
type StatEvent struct {
	Type       EventType         `json:"type"`
	Dimensions map[string]string `json:"dimensions,omitempty"`
	// Amount is the increment size; 0 means the default of 1. Negative
	// amounts are correction events.
	Amount int64 `json:"amount,omitempty"`
}

// EffectiveAmount resolves the default increment of 1.
func (e StatEvent) EffectiveAmount() int64 {
	if e.Amount == 0 {
		return 1
	}
	return e.Amount
}

// PartitionKey routes the event onto a queue lane. Events touching the same
// primary entity share a lane; counters are commutative so this is purely a
// locality choice, not a correctness requirement.
func (e StatEvent) PartitionKey() string {
	if governorate, ok := e.Dimensions[DimGovernorate]; ok && governorate != "" {
		return governorate
	}
	if party, ok := e.Dimensions[DimParty]; ok && party != "" {
		return party
	}
	return "global"
}
