package email

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"aiconsult_backend/platform/config"
	"aiconsult_backend/platform/logger"
)

// Email kinds, used for logging and metrics labels.
const (
	KindContactNotification = "contact_notification"
	KindContactConfirmation = "contact_confirmation"
	KindContactFollowUp     = "contact_followup"
)

// Contact carries the submission fields rendered into contact emails.
type Contact struct {
	SubmissionID    string
	FirstName       string
	LastName        string
	Email           string
	Company         string
	ServiceInterest string
	Phone           string
	Message         string
	Source          string
	SubmittedAt     time.Time
}

// FullName joins first and last name.
func (c Contact) FullName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

type Sender interface {
	// SendContactNotification tells the team about a new submission.
	SendContactNotification(ctx context.Context, toEmail string, contact Contact) error
	// SendContactConfirmation thanks the submitter.
	SendContactConfirmation(ctx context.Context, toEmail string, contact Contact) error
	// SendContactFollowUp reminds the team about a submission nobody has handled.
	SendContactFollowUp(ctx context.Context, toEmail string, contact Contact) error
}

// NewSender builds the sender selected by EMAIL_PROVIDER.
func NewSender(cfg config.MailerConfig, log *logger.Logger) (Sender, error) {
	switch cfg.GetEmailProvider() {
	case config.EmailProviderLog, "":
		return NewLogSender(log), nil
	case config.EmailProviderBrevo:
		return NewBrevoSender(
			cfg.GetBrevoAPIKey(),
			cfg.GetEmailFromAddress(),
			cfg.GetEmailFromName(),
			"",
			&http.Client{Timeout: brevoTimeout},
		), nil
	case config.EmailProviderSMTP:
		return NewSMTPSender(
			cfg.GetSMTPHost(),
			cfg.GetSMTPPort(),
			cfg.GetSMTPUsername(),
			cfg.GetSMTPPassword(),
			cfg.GetEmailFromAddress(),
			cfg.GetEmailFromName(),
		), nil
	default:
		return nil, fmt.Errorf("unsupported email provider %q", cfg.GetEmailProvider())
	}
}

// LogSender renders every email and writes it to the log instead of delivering it.
// It is the default in development and when no provider is configured.
type LogSender struct {
	log *logger.Logger
}

func NewLogSender(log *logger.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) SendContactNotification(ctx context.Context, toEmail string, contact Contact) error {
	subject, content, err := contactNotificationMessage(contact)
	if err != nil {
		return err
	}
	return s.send(ctx, KindContactNotification, toEmail, subject, content)
}

func (s *LogSender) SendContactConfirmation(ctx context.Context, toEmail string, contact Contact) error {
	subject, content, err := contactConfirmationMessage(contact)
	if err != nil {
		return err
	}
	return s.send(ctx, KindContactConfirmation, toEmail, subject, content)
}

func (s *LogSender) SendContactFollowUp(ctx context.Context, toEmail string, contact Contact) error {
	subject, content, err := contactFollowUpMessage(contact)
	if err != nil {
		return err
	}
	return s.send(ctx, KindContactFollowUp, toEmail, subject, content)
}

func (s *LogSender) send(ctx context.Context, kind, toEmail, subject, htmlContent string) error {
	s.log.WithContext(ctx).Info("email not delivered (log provider)",
		"kind", kind,
		"to", toEmail,
		"subject", subject,
		"bytes", len(htmlContent),
	)
	return nil
}
