package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventApplicationApproved EventType = "application_approved"
	EventStaffActivated      EventType = "staff_activated"
	EventClientServed        EventType = "client_served"
	EventBusinessDeleted     EventType = "business_deleted"
)

// Event represents a domain event emitted by services after a successful write.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SubjectID string      `json:"subject_id"`
	ActorID   string      `json:"actor_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// New stamps an event with a fresh id and the current time.
func New(eventType EventType, subjectID, actorID string, payload interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		SubjectID: subjectID,
		ActorID:   actorID,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// ApplicationApprovedPayload payload.
type ApplicationApprovedPayload struct {
	StaffUserID string `json:"staff_user_id"`
	Email       string `json:"email"`
	EmailSent   bool   `json:"email_sent"`
}

// StaffActivatedPayload payload.
type StaffActivatedPayload struct {
	Email string `json:"email"`
}

// ClientServedPayload payload.
type ClientServedPayload struct {
	Kind       string `json:"kind"`
	PhotoCount int    `json:"photo_count"`
}

// BusinessDeletedPayload payload.
type BusinessDeletedPayload struct {
	ActivitiesDeleted int64 `json:"activities_deleted"`
}
