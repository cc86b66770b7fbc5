// Package error defines domain-specific errors for the GoalFlow application.
package error

import "errors"

// Goal template domain errors.
var (
	// ErrTemplateNotFound is returned when a goal template is not found.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrTemplateAccessDenied is returned when a user may not view or use a template.
	ErrTemplateAccessDenied = errors.New("template access denied")
)

// TemplateErrorCode defines error codes for goal template errors.
// Format: TPL-XXYYYY where XX is category and YYYY is specific error.
type TemplateErrorCode string

const (
	ErrCodeTemplateNotFound      TemplateErrorCode = "TPL-010001"
	ErrCodeTemplateAccessDenied  TemplateErrorCode = "TPL-040001"
	ErrCodeMissingTemplateFields TemplateErrorCode = "TPL-020001"
)

// TemplateError represents a goal template error with code and message.
type TemplateError struct {
	Code    TemplateErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TemplateError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TemplateError) Unwrap() error {
	return e.Err
}

// NewTemplateError creates a new TemplateError with the given code and message.
func NewTemplateError(code TemplateErrorCode, message string, err error) *TemplateError {
	return &TemplateError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
