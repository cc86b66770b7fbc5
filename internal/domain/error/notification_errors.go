// Package error defines domain-specific errors for the GoalFlow application.
package error

import "errors"

// Notification domain errors.
var (
	// ErrNotificationQueueFailed is returned when a job cannot be enqueued.
	ErrNotificationQueueFailed = errors.New("failed to enqueue notification")

	// ErrTelegramNotLinked is returned when a telegram send is attempted for an unlinked user.
	ErrTelegramNotLinked = errors.New("telegram account not linked")

	// ErrTelegramLinkTaken is returned when a chat is already linked to another user.
	ErrTelegramLinkTaken = errors.New("telegram account already linked to another user")

	// ErrInvalidLinkCode is returned when a telegram link code is unknown or expired.
	ErrInvalidLinkCode = errors.New("invalid or expired link code")
)

// NotificationErrorCode defines error codes for notification errors.
// Format: NTF-XXYYYY where XX is category and YYYY is specific error.
type NotificationErrorCode string

const (
	ErrCodeNotificationQueueFailed NotificationErrorCode = "NTF-010001"
	ErrCodeTelegramNotLinked       NotificationErrorCode = "NTF-020001"
	ErrCodeTelegramLinkTaken       NotificationErrorCode = "NTF-030001"
	ErrCodeInvalidLinkCode         NotificationErrorCode = "NTF-020002"

	// Delivery failure classification used by the outbox worker.
	ErrCodePermanentSendFailure NotificationErrorCode = "NTF-040001"
	ErrCodeTemporarySendFailure NotificationErrorCode = "NTF-040002"
)

// NotificationError represents a notification error with code and message.
type NotificationError struct {
	Code    NotificationErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *NotificationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *NotificationError) Unwrap() error {
	return e.Err
}

// NewNotificationError creates a new NotificationError with the given code and message.
func NewNotificationError(code NotificationErrorCode, message string, err error) *NotificationError {
	return &NotificationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
