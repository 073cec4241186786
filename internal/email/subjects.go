package email

const (
	subjectContactNotificationFmt = "New contact form submission from %s"
	subjectContactConfirmation    = "Thank you for contacting us"
	subjectContactFollowUpFmt     = "Reminder: %s is still waiting for a reply"
)
