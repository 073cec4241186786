package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a submission does not exist or has expired.
var ErrNotFound = errors.New("contact submission not found")

// Submission is a stored contact form entry.
type Submission struct {
	ID              uuid.UUID  `json:"id"`
	FirstName       string     `json:"firstName"`
	LastName        string     `json:"lastName"`
	Email           string     `json:"email"`
	Company         string     `json:"company,omitempty"`
	ServiceInterest string     `json:"serviceInterest,omitempty"`
	Phone           string     `json:"phone,omitempty"`
	Message         string     `json:"message"`
	Source          string     `json:"source,omitempty"`
	ClientIP        string     `json:"clientIp,omitempty"`
	UserAgent       string     `json:"userAgent,omitempty"`
	SubmittedAt     time.Time  `json:"submittedAt"`
	HandledAt       *time.Time `json:"handledAt,omitempty"`
	HandledBy       string     `json:"handledBy,omitempty"`
}

// Handled reports whether an admin has marked the submission as handled.
func (s Submission) Handled() bool {
	return s.HandledAt != nil
}

// InboxReader provides read operations on the inbox.
type InboxReader interface {
	Get(ctx context.Context, id uuid.UUID) (Submission, error)
	// List returns up to limit submissions, newest first.
	List(ctx context.Context, limit int) ([]Submission, error)
}

// InboxWriter provides write operations on the inbox.
type InboxWriter interface {
	Save(ctx context.Context, s Submission) error
	MarkHandled(ctx context.Context, id uuid.UUID, by string, at time.Time) (Submission, error)
}

// Inbox stores contact submissions for admin review and follow-up reminders.
type Inbox interface {
	InboxReader
	InboxWriter
	// Enabled is false for the no-op inbox used without Redis.
	Enabled() bool
}

// NoopInbox discards submissions. It is used when Redis is not configured.
type NoopInbox struct{}

func (NoopInbox) Save(context.Context, Submission) error { return nil }

func (NoopInbox) Get(context.Context, uuid.UUID) (Submission, error) {
	return Submission{}, ErrNotFound
}

func (NoopInbox) List(context.Context, int) ([]Submission, error) { return []Submission{}, nil }

func (NoopInbox) MarkHandled(context.Context, uuid.UUID, string, time.Time) (Submission, error) {
	return Submission{}, ErrNotFound
}

func (NoopInbox) Enabled() bool { return false }

var _ Inbox = NoopInbox{}
