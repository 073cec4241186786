package transport

import (
	"time"

	"github.com/google/uuid"
)

// ContactRequest is the contact form body.
type ContactRequest struct {
	FirstName       string `json:"firstName" validate:"required,notblank,max=100"`
	LastName        string `json:"lastName" validate:"required,notblank,max=100"`
	Email           string `json:"email" validate:"required,email,max=254"`
	Company         string `json:"company,omitempty" validate:"omitempty,max=200"`
	ServiceInterest string `json:"serviceInterest,omitempty" validate:"omitempty,max=100"`
	Phone           string `json:"phone,omitempty" validate:"omitempty,max=40"`
	Message         string `json:"message" validate:"required,notblank,max=5000"`
	Source          string `json:"source,omitempty" validate:"omitempty,max=100"`
}

// ContactResponse is returned when a submission was accepted.
type ContactResponse struct {
	Success bool `json:"success"`
}

// ListSubmissionsRequest pages through the admin inbox.
type ListSubmissionsRequest struct {
	Limit int `form:"limit" validate:"omitempty,min=1,max=200"`
}

// SubmissionResponse is an inbox entry as shown to admins.
type SubmissionResponse struct {
	ID              uuid.UUID  `json:"id"`
	FirstName       string     `json:"firstName"`
	LastName        string     `json:"lastName"`
	Email           string     `json:"email"`
	Company         string     `json:"company,omitempty"`
	ServiceInterest string     `json:"serviceInterest,omitempty"`
	Phone           string     `json:"phone,omitempty"`
	Message         string     `json:"message"`
	Source          string     `json:"source,omitempty"`
	SubmittedAt     time.Time  `json:"submittedAt"`
	Handled         bool       `json:"handled"`
	HandledAt       *time.Time `json:"handledAt,omitempty"`
	HandledBy       string     `json:"handledBy,omitempty"`
}

// SubmissionListResponse wraps a page of inbox entries.
type SubmissionListResponse struct {
	Items []SubmissionResponse `json:"items"`
	Total int                  `json:"total"`
}
