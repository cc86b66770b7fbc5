// Package telegram provides Telegram Bot API messaging and webhook handling.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/goalflow/backend/internal/application/adapter"
	domainerror "github.com/goalflow/backend/internal/domain/error"
)

// Client implements the adapter.TelegramSender interface using the Bot API.
type Client struct {
	bot *tgbotapi.BotAPI
}

// NewClient creates a new Telegram client.
func NewClient(botToken string) (*Client, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	return &Client{bot: bot}, nil
}

// Send sends a Markdown-formatted message to a chat.
func (c *Client) Send(ctx context.Context, input adapter.SendTelegramInput) (*adapter.SendTelegramResult, error) {
	chatID, err := strconv.ParseInt(input.ChatID, 10, 64)
	if err != nil {
		return nil, domainerror.NewNotificationError(
			domainerror.ErrCodePermanentSendFailure,
			"invalid telegram chat id",
			err,
		)
	}

	msg := tgbotapi.NewMessage(chatID, input.Text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	sent, err := c.bot.Send(msg)
	if err != nil {
		if isPermanentTelegramError(err) {
			return nil, domainerror.NewNotificationError(
				domainerror.ErrCodePermanentSendFailure,
				"permanent telegram send failure",
				err,
			)
		}
		return nil, domainerror.NewNotificationError(
			domainerror.ErrCodeTemporarySendFailure,
			"temporary telegram send failure",
			err,
		)
	}

	return &adapter.SendTelegramResult{
		MessageID: strconv.Itoa(sent.MessageID),
	}, nil
}

// isPermanentTelegramError checks if the error should not be retried.
// Permanent: 400 (bad request, malformed chat id), 403 (bot blocked by user).
// Temporary: 429 (rate limit), 5xx.
func isPermanentTelegramError(err error) bool {
	var apiErr *tgbotapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == 400 || apiErr.Code == 403
	}
	return false
}

// MockTelegramSender is a mock implementation for testing.
type MockTelegramSender struct {
	SentMessages []adapter.SendTelegramInput
	ShouldFail   bool
	FailError    error
	IsPermanent  bool
}

// NewMockTelegramSender creates a new mock telegram sender.
func NewMockTelegramSender() *MockTelegramSender {
	return &MockTelegramSender{
		SentMessages: make([]adapter.SendTelegramInput, 0),
	}
}

// Send implements the adapter.TelegramSender interface for testing.
func (m *MockTelegramSender) Send(ctx context.Context, input adapter.SendTelegramInput) (*adapter.SendTelegramResult, error) {
	if m.ShouldFail {
		if m.IsPermanent {
			return nil, domainerror.NewNotificationError(
				domainerror.ErrCodePermanentSendFailure,
				"mock permanent failure",
				m.FailError,
			)
		}
		return nil, domainerror.NewNotificationError(
			domainerror.ErrCodeTemporarySendFailure,
			"mock temporary failure",
			m.FailError,
		)
	}

	m.SentMessages = append(m.SentMessages, input)

	return &adapter.SendTelegramResult{
		MessageID: fmt.Sprintf("mock-%d", len(m.SentMessages)),
	}, nil
}

// SetFailure configures the mock to fail with the given error.
func (m *MockTelegramSender) SetFailure(err error, permanent bool) {
	m.ShouldFail = true
	m.FailError = err
	m.IsPermanent = permanent
}

// Reset clears all sent messages and failure configuration.
func (m *MockTelegramSender) Reset() {
	m.SentMessages = make([]adapter.SendTelegramInput, 0)
	m.ShouldFail = false
	m.FailError = nil
	m.IsPermanent = false
}

// Ensure implementations satisfy interfaces.
var (
	_ adapter.TelegramSender = (*Client)(nil)
	_ adapter.TelegramSender = (*MockTelegramSender)(nil)
)
