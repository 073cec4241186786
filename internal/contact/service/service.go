// Package service implements contact form submission and the admin inbox.
package service

import (
	"context"
	"errors"
	"time"

	"aiconsult_backend/internal/contact/repository"
	"aiconsult_backend/internal/contact/transport"
	"aiconsult_backend/internal/events"
	"aiconsult_backend/platform/apperr"
	"aiconsult_backend/platform/config"
	"aiconsult_backend/platform/logger"
	"aiconsult_backend/platform/metrics"
	"aiconsult_backend/platform/phone"
	"aiconsult_backend/platform/sanitize"

	"github.com/google/uuid"
)

const (
	defaultListLimit = 50
	msgSendFailed    = "failed to send message"
	msgNotFound      = "contact submission not found"
)

// FollowUpScheduler enqueues a reminder for a submission nobody has handled.
type FollowUpScheduler interface {
	ScheduleContactFollowUp(ctx context.Context, submissionID uuid.UUID, runAt time.Time) error
}

// Meta carries request details stored alongside a submission.
type Meta struct {
	ClientIP  string
	UserAgent string
}

// Service provides business logic for the contact form.
type Service struct {
	inbox     repository.Inbox
	bus       events.Bus
	scheduler FollowUpScheduler
	cfg       config.ContactConfig
	log       *logger.Logger
	now       func() time.Time
}

// New creates a contact service. scheduler may be nil.
func New(inbox repository.Inbox, bus events.Bus, scheduler FollowUpScheduler, cfg config.ContactConfig, log *logger.Logger) *Service {
	if inbox == nil {
		inbox = repository.NoopInbox{}
	}
	return &Service{
		inbox:     inbox,
		bus:       bus,
		scheduler: scheduler,
		cfg:       cfg,
		log:       log,
		now:       time.Now,
	}
}

// Submit accepts a contact form submission. The notification emails are sent
// synchronously through the event bus and any failure rejects the submission.
// Storing it in the inbox and scheduling the follow-up are best effort.
func (s *Service) Submit(ctx context.Context, req transport.ContactRequest, meta Meta) (transport.ContactResponse, error) {
	sub, err := s.buildSubmission(req, meta)
	if err != nil {
		metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeInvalid).Inc()
		return transport.ContactResponse{}, err
	}

	err = s.bus.PublishSync(ctx, events.ContactSubmitted{
		BaseEvent:       events.BaseEvent{Timestamp: sub.SubmittedAt},
		SubmissionID:    sub.ID,
		FirstName:       sub.FirstName,
		LastName:        sub.LastName,
		Email:           sub.Email,
		Company:         sub.Company,
		ServiceInterest: sub.ServiceInterest,
		Phone:           sub.Phone,
		Message:         sub.Message,
		Source:          sub.Source,
	})
	if err != nil {
		metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeFailure).Inc()
		return transport.ContactResponse{}, apperr.Wrap(apperr.KindInternal, msgSendFailed, err).WithOp("contact.Submit")
	}
	metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeSuccess).Inc()

	log := s.log.WithContext(ctx)
	if err := s.inbox.Save(ctx, sub); err != nil {
		log.Warn("failed to store contact submission", "submissionId", sub.ID, "error", err)
		return transport.ContactResponse{Success: true}, nil
	}
	s.scheduleFollowUp(ctx, log, sub)

	log.Info("contact submission accepted", "submissionId", sub.ID, "source", sub.Source)
	return transport.ContactResponse{Success: true}, nil
}

func (s *Service) scheduleFollowUp(ctx context.Context, log *logger.Logger, sub repository.Submission) {
	delay := s.cfg.GetContactFollowUpDelay()
	if s.scheduler == nil || delay <= 0 || !s.inbox.Enabled() {
		return
	}
	runAt := sub.SubmittedAt.Add(delay)
	if err := s.scheduler.ScheduleContactFollowUp(ctx, sub.ID, runAt); err != nil {
		log.Warn("failed to schedule contact follow-up", "submissionId", sub.ID, "error", err)
	}
}

func (s *Service) buildSubmission(req transport.ContactRequest, meta Meta) (repository.Submission, error) {
	sub := repository.Submission{
		ID:              uuid.New(),
		FirstName:       sanitize.Line(req.FirstName),
		LastName:        sanitize.Line(req.LastName),
		Email:           sanitize.Email(req.Email),
		Company:         sanitize.Line(req.Company),
		ServiceInterest: sanitize.Line(req.ServiceInterest),
		Message:         sanitize.Text(req.Message),
		Source:          sanitize.Line(req.Source),
		ClientIP:        meta.ClientIP,
		UserAgent:       meta.UserAgent,
		SubmittedAt:     s.now().UTC(),
	}

	// Markup-only values pass validation but are empty once stripped.
	required := []struct{ field, value string }{
		{"firstName", sub.FirstName},
		{"lastName", sub.LastName},
		{"message", sub.Message},
	}
	for _, r := range required {
		if r.value == "" {
			return repository.Submission{}, apperr.Validation(r.field + " is required").WithOp("contact.Submit")
		}
	}

	if raw := sanitize.Line(req.Phone); raw != "" {
		region := s.cfg.GetPhoneDefaultRegion()
		if !phone.IsPlausible(raw, region) {
			return repository.Submission{}, apperr.Validation("phone must be a valid phone number").WithOp("contact.Submit")
		}
		sub.Phone = phone.NormalizeE164(raw, region)
	}

	return sub, nil
}

// List returns the newest submissions.
func (s *Service) List(ctx context.Context, req transport.ListSubmissionsRequest) (transport.SubmissionListResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	items, err := s.inbox.List(ctx, limit)
	if err != nil {
		return transport.SubmissionListResponse{}, apperr.Wrap(apperr.KindUnavailable, "inbox unavailable", err).WithOp("contact.List")
	}

	out := make([]transport.SubmissionResponse, len(items))
	for i, item := range items {
		out[i] = toResponse(item)
	}
	return transport.SubmissionListResponse{Items: out, Total: len(out)}, nil
}

// Get returns a single submission.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (transport.SubmissionResponse, error) {
	sub, err := s.inbox.Get(ctx, id)
	if err != nil {
		return transport.SubmissionResponse{}, mapInboxError(err, "contact.Get")
	}
	return toResponse(sub), nil
}

// MarkHandled records that an admin has responded. Marking twice keeps the
// first timestamp.
func (s *Service) MarkHandled(ctx context.Context, id uuid.UUID, by string) (transport.SubmissionResponse, error) {
	sub, err := s.inbox.MarkHandled(ctx, id, by, s.now())
	if err != nil {
		return transport.SubmissionResponse{}, mapInboxError(err, "contact.MarkHandled")
	}
	s.log.WithContext(ctx).Info("contact submission handled", "submissionId", id, "by", by)
	return toResponse(sub), nil
}

func mapInboxError(err error, op string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound(msgNotFound).WithOp(op)
	}
	return apperr.Wrap(apperr.KindUnavailable, "inbox unavailable", err).WithOp(op)
}

func toResponse(s repository.Submission) transport.SubmissionResponse {
	return transport.SubmissionResponse{
		ID:              s.ID,
		FirstName:       s.FirstName,
		LastName:        s.LastName,
		Email:           s.Email,
		Company:         s.Company,
		ServiceInterest: s.ServiceInterest,
		Phone:           s.Phone,
		Message:         s.Message,
		Source:          s.Source,
		SubmittedAt:     s.SubmittedAt,
		Handled:         s.Handled(),
		HandledAt:       s.HandledAt,
		HandledBy:       s.HandledBy,
	}
}
