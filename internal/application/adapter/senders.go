// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// SendEmailInput holds the data for sending a single email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult holds the result of a successful email send.
type SendEmailResult struct {
	ProviderID string
}

// EmailSender sends transactional email.
type EmailSender interface {
	// Send sends an email. Implementations classify failures as permanent or
	// temporary via domain notification errors.
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// SendTelegramInput holds the data for sending a single Telegram message.
type SendTelegramInput struct {
	ChatID string
	Text   string
}

// SendTelegramResult holds the result of a successful Telegram send.
type SendTelegramResult struct {
	MessageID string
}

// TelegramSender sends messages through the Telegram Bot API.
type TelegramSender interface {
	// Send sends a Markdown-formatted message to a chat. Implementations
	// classify failures as permanent or temporary via domain notification
	// errors.
	Send(ctx context.Context, input SendTelegramInput) (*SendTelegramResult, error)
}
