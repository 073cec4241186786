package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

type baseEmailData struct {
	Title      string
	Heading    string
	Subheading string
	CTALabel   string
	CTAURL     string
}

type contactNotificationEmailData struct {
	baseEmailData
	Contact
	MessageLines []string
	ReceivedAt   string
}

type contactConfirmationEmailData struct {
	baseEmailData
	FirstName       string
	ServiceInterest string
}

type contactFollowUpEmailData struct {
	baseEmailData
	Contact
	ReceivedAt string
	Waiting    string
}

func renderEmailTemplate(name string, data any) (string, error) {
	templates := []string{"templates/base.html", "templates/" + name}
	tmpl, err := template.New("base.html").ParseFS(templateFS, templates...)
	if err != nil {
		return "", fmt.Errorf("parse email template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "email", data); err != nil {
		return "", fmt.Errorf("execute email template %s: %w", name, err)
	}
	return buf.String(), nil
}

func contactNotificationMessage(c Contact) (subject, content string, err error) {
	subject = fmt.Sprintf(subjectContactNotificationFmt, c.FullName())
	content, err = renderEmailTemplate("contact_notification.html", contactNotificationEmailData{
		baseEmailData: baseEmailData{
			Title:   "New contact form submission",
			Heading: "New contact form submission",
		},
		Contact:      c,
		MessageLines: strings.Split(c.Message, "\n"),
		ReceivedAt:   formatTimestamp(c.SubmittedAt),
	})
	return subject, content, err
}

func contactConfirmationMessage(c Contact) (subject, content string, err error) {
	content, err = renderEmailTemplate("contact_confirmation.html", contactConfirmationEmailData{
		baseEmailData: baseEmailData{
			Title:   subjectContactConfirmation,
			Heading: "Thanks for reaching out, " + c.FirstName,
		},
		FirstName:       c.FirstName,
		ServiceInterest: c.ServiceInterest,
	})
	return subjectContactConfirmation, content, err
}

func contactFollowUpMessage(c Contact) (subject, content string, err error) {
	subject = fmt.Sprintf(subjectContactFollowUpFmt, c.FullName())
	waiting := ""
	if !c.SubmittedAt.IsZero() {
		waiting = time.Since(c.SubmittedAt).Truncate(time.Minute).String()
	}
	content, err = renderEmailTemplate("contact_followup.html", contactFollowUpEmailData{
		baseEmailData: baseEmailData{
			Title:   "Unanswered contact request",
			Heading: "Unanswered contact request",
		},
		Contact:    c,
		ReceivedAt: formatTimestamp(c.SubmittedAt),
		Waiting:    waiting,
	})
	return subject, content, err
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("Jan 2, 2006 15:04 MST")
}
