// Package error defines domain-specific errors for the GoalFlow application.
package error

import "errors"

// Metric domain errors.
var (
	// ErrMetricNotFound is returned when a metric is not found in the system.
	ErrMetricNotFound = errors.New("metric not found")

	// ErrInvalidMetricValue is returned when a metric value is negative.
	ErrInvalidMetricValue = errors.New("metric values must not be negative")
)

// MetricErrorCode defines error codes for metric errors.
// Format: MTR-XXYYYY where XX is category and YYYY is specific error.
type MetricErrorCode string

const (
	ErrCodeMetricNotFound      MetricErrorCode = "MTR-010001"
	ErrCodeInvalidMetricValue  MetricErrorCode = "MTR-020001"
	ErrCodeMissingMetricFields MetricErrorCode = "MTR-020002"
)

// MetricError represents a metric error with code and message.
type MetricError struct {
	Code    MetricErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *MetricError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *MetricError) Unwrap() error {
	return e.Err
}

// NewMetricError creates a new MetricError with the given code and message.
func NewMetricError(code MetricErrorCode, message string, err error) *MetricError {
	return &MetricError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
