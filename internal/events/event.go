// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"aiconsult_backend/platform/events"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// =============================================================================
// Contact Domain Events
// =============================================================================

// ContactSubmitted is published synchronously when a visitor submits the
// contact form. The submission is only accepted if every handler succeeds.
type ContactSubmitted struct {
	BaseEvent
	SubmissionID    uuid.UUID `json:"submissionId"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Email           string    `json:"email"`
	Company         string    `json:"company,omitempty"`
	ServiceInterest string    `json:"serviceInterest,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	Message         string    `json:"message"`
	Source          string    `json:"source,omitempty"`
}

func (e ContactSubmitted) EventName() string { return "contact.submitted" }

// FullName joins first and last name.
func (e ContactSubmitted) FullName() string {
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}

// ContactFollowUpDue is published by the scheduler worker when a submission's
// follow-up reminder fires.
type ContactFollowUpDue struct {
	BaseEvent
	SubmissionID uuid.UUID `json:"submissionId"`
}

func (e ContactFollowUpDue) EventName() string { return "contact.followup_due" }
