// Package notification sends emails in response to domain events.
// Domain modules publish events and never talk to the email provider directly.
package notification

import (
	"context"
	"errors"

	"aiconsult_backend/internal/contact/repository"
	"aiconsult_backend/internal/email"
	"aiconsult_backend/internal/events"
	"aiconsult_backend/platform/config"
	"aiconsult_backend/platform/logger"
	"aiconsult_backend/platform/metrics"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Module handles all notification-related event subscriptions.
type Module struct {
	sender email.Sender
	cfg    config.ContactConfig
	inbox  repository.InboxReader
	log    *logger.Logger
}

// New creates a new notification module. inbox is consulted for follow-ups
// and may be nil when no persistent inbox exists.
func New(sender email.Sender, cfg config.ContactConfig, inbox repository.InboxReader, log *logger.Logger) *Module {
	return &Module{
		sender: sender,
		cfg:    cfg,
		inbox:  inbox,
		log:    log,
	}
}

// RegisterHandlers subscribes to all relevant domain events on the event bus.
func (m *Module) RegisterHandlers(bus events.Bus) {
	bus.Subscribe(events.ContactSubmitted{}.EventName(), m)
	bus.Subscribe(events.ContactFollowUpDue{}.EventName(), m)

	m.log.Info("notification module registered event handlers")
}

// Handle routes events to the appropriate handler method.
func (m *Module) Handle(ctx context.Context, event events.Event) error {
	switch e := event.(type) {
	case events.ContactSubmitted:
		return m.handleContactSubmitted(ctx, e)
	case events.ContactFollowUpDue:
		return m.handleContactFollowUpDue(ctx, e)
	default:
		m.log.Warn("notification module received unknown event", "event", event.EventName())
		return nil
	}
}

// handleContactSubmitted sends the team notification and the visitor
// confirmation in parallel. Either failure fails the submission.
func (m *Module) handleContactSubmitted(ctx context.Context, e events.ContactSubmitted) error {
	contact := email.Contact{
		SubmissionID:    e.SubmissionID.String(),
		FirstName:       e.FirstName,
		LastName:        e.LastName,
		Email:           e.Email,
		Company:         e.Company,
		ServiceInterest: e.ServiceInterest,
		Phone:           e.Phone,
		Message:         e.Message,
		Source:          e.Source,
		SubmittedAt:     e.OccurredAt(),
	}
	teamAddress := m.cfg.GetContactNotifyAddress()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return m.deliver(gctx, email.KindContactNotification, teamAddress, func(ctx context.Context) error {
			return m.sender.SendContactNotification(ctx, teamAddress, contact)
		})
	})
	g.Go(func() error {
		return m.deliver(gctx, email.KindContactConfirmation, contact.Email, func(ctx context.Context) error {
			return m.sender.SendContactConfirmation(ctx, contact.Email, contact)
		})
	})
	return g.Wait()
}

// handleContactFollowUpDue reminds the team about a submission nobody has
// marked as handled. Expired or handled submissions are skipped.
func (m *Module) handleContactFollowUpDue(ctx context.Context, e events.ContactFollowUpDue) error {
	if m.inbox == nil {
		return nil
	}
	log := m.log.WithContext(ctx)

	sub, err := m.inbox.Get(ctx, e.SubmissionID)
	if errors.Is(err, repository.ErrNotFound) {
		log.Info("follow-up skipped, submission expired", "submissionId", e.SubmissionID)
		return nil
	}
	if err != nil {
		return err
	}
	if sub.Handled() {
		log.Info("follow-up skipped, submission handled", "submissionId", e.SubmissionID, "by", sub.HandledBy)
		return nil
	}

	teamAddress := m.cfg.GetContactNotifyAddress()
	contact := contactFromSubmission(sub)
	return m.deliver(ctx, email.KindContactFollowUp, teamAddress, func(ctx context.Context) error {
		return m.sender.SendContactFollowUp(ctx, teamAddress, contact)
	})
}

func (m *Module) deliver(ctx context.Context, kind, to string, send func(context.Context) error) error {
	err := send(ctx)
	metrics.EmailsSent.WithLabelValues(kind, metrics.Outcome(err)).Inc()
	m.log.WithContext(ctx).EmailEvent(kind, to, err == nil, err)
	return err
}

func contactFromSubmission(s repository.Submission) email.Contact {
	id := ""
	if s.ID != uuid.Nil {
		id = s.ID.String()
	}
	return email.Contact{
		SubmissionID:    id,
		FirstName:       s.FirstName,
		LastName:        s.LastName,
		Email:           s.Email,
		Company:         s.Company,
		ServiceInterest: s.ServiceInterest,
		Phone:           s.Phone,
		Message:         s.Message,
		Source:          s.Source,
		SubmittedAt:     s.SubmittedAt,
	}
}

var _ events.Handler = (*Module)(nil)
