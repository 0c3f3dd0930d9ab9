// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ResendID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// ReminderCheck describes one check inside a due-check reminder email.
type ReminderCheck struct {
	Number  string
	Bank    string
	Amount  string // display-formatted, company currency
	DueDate string
	Overdue bool
}

// QueueCheckReminderInput represents the input for queueing a due-check
// reminder email.
type QueueCheckReminderInput struct {
	CompanyName    string
	RecipientEmail string
	OverdueCount   int
	UpcomingCount  int
	Checks         []ReminderCheck
}

// EmailService defines the interface for queueing emails.
type EmailService interface {
	// QueueCheckReminderEmail queues a due-check reminder email.
	QueueCheckReminderEmail(ctx context.Context, input QueueCheckReminderInput) error
}
