package adapter

import "context"

// SendEmailInput carries the rendered email content.
type SendEmailInput struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult reports the provider-side ID of a sent email.
type SendEmailResult struct {
	ProviderID string
}

// EmailSender delivers emails through an external provider.
type EmailSender interface {
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}
