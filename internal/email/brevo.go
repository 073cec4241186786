package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	brevoEndpoint = "https://api.brevo.com/v3/smtp/email"
	brevoTimeout  = 10 * time.Second
)

// BrevoSender delivers email through the Brevo transactional API.
type BrevoSender struct {
	apiKey    string
	fromName  string
	fromEmail string
	endpoint  string
	client    *http.Client
}

type brevoContact struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

type brevoEmailRequest struct {
	Sender      brevoContact   `json:"sender"`
	To          []brevoContact `json:"to"`
	ReplyTo     *brevoContact  `json:"replyTo,omitempty"`
	Subject     string         `json:"subject"`
	HTMLContent string         `json:"htmlContent"`
	Tags        []string       `json:"tags,omitempty"`
}

// NewBrevoSender creates a sender posting to endpoint; an empty endpoint means
// the production Brevo API.
func NewBrevoSender(apiKey, fromEmail, fromName, endpoint string, client *http.Client) *BrevoSender {
	if endpoint == "" {
		endpoint = brevoEndpoint
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &BrevoSender{
		apiKey:    apiKey,
		fromName:  fromName,
		fromEmail: fromEmail,
		endpoint:  endpoint,
		client:    client,
	}
}

func (b *BrevoSender) SendContactNotification(ctx context.Context, toEmail string, contact Contact) error {
	subject, content, err := contactNotificationMessage(contact)
	if err != nil {
		return err
	}
	// Replies from the team go straight to the visitor.
	replyTo := &brevoContact{Name: contact.FullName(), Email: contact.Email}
	return b.send(ctx, KindContactNotification, toEmail, subject, content, replyTo)
}

func (b *BrevoSender) SendContactConfirmation(ctx context.Context, toEmail string, contact Contact) error {
	subject, content, err := contactConfirmationMessage(contact)
	if err != nil {
		return err
	}
	return b.send(ctx, KindContactConfirmation, toEmail, subject, content, nil)
}

func (b *BrevoSender) SendContactFollowUp(ctx context.Context, toEmail string, contact Contact) error {
	subject, content, err := contactFollowUpMessage(contact)
	if err != nil {
		return err
	}
	return b.send(ctx, KindContactFollowUp, toEmail, subject, content, nil)
}

func (b *BrevoSender) send(ctx context.Context, kind, toEmail, subject, htmlContent string, replyTo *brevoContact) error {
	payload := brevoEmailRequest{
		Sender:      brevoContact{Name: b.fromName, Email: b.fromEmail},
		To:          []brevoContact{{Email: toEmail}},
		ReplyTo:     replyTo,
		Subject:     subject,
		HTMLContent: htmlContent,
		Tags:        []string{kind},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("api-key", b.apiKey)
	req.Header.Set("content-type", "application/json")
	req.Header.Set("accept", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("brevo send failed: status %d: %s", resp.StatusCode, string(data))
	}

	return nil
}
