// Package error defines domain-specific errors for the GoalFlow application.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found or not owned by the caller.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrParentGoalNotFound is returned when the referenced parent goal is absent or not owned by the caller.
	ErrParentGoalNotFound = errors.New("parent goal not found")

	// ErrWeeklyGoalCannotParent is returned when a weekly goal is assigned children.
	ErrWeeklyGoalCannotParent = errors.New("weekly goals cannot have child goals")

	// ErrGoalSelfParent is returned when a goal is set as its own parent.
	ErrGoalSelfParent = errors.New("goal cannot be its own parent")

	// ErrGoalHierarchyCycle is returned when a parent assignment would create a cycle.
	ErrGoalHierarchyCycle = errors.New("goal hierarchy cannot contain cycles")

	// ErrInvalidGoalDates is returned when the end date is not after the start date.
	ErrInvalidGoalDates = errors.New("end date must be after start date")

	// ErrInvalidGoalProgress is returned when progress is outside [0,100].
	ErrInvalidGoalProgress = errors.New("progress must be between 0 and 100")

	// ErrInvalidGoalStatus is returned when an unknown status value is provided.
	ErrInvalidGoalStatus = errors.New("invalid goal status")

	// ErrInvalidGoalType is returned when an unknown type value is provided.
	ErrInvalidGoalType = errors.New("invalid goal type")

	// ErrInvalidStatusTransition is returned when the status state machine forbids the move.
	ErrInvalidStatusTransition = errors.New("invalid status transition")

	// ErrUnauthorizedGoalAccess is returned when user is not authorized to access a goal.
	ErrUnauthorizedGoalAccess = errors.New("unauthorized access to goal")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Resource not found errors (01XXXX)
	ErrCodeGoalNotFound       GoalErrorCode = "GOL-010001"
	ErrCodeParentGoalNotFound GoalErrorCode = "GOL-010002"

	// Validation errors (02XXXX)
	ErrCodeInvalidGoalDates    GoalErrorCode = "GOL-020001"
	ErrCodeInvalidGoalProgress GoalErrorCode = "GOL-020002"
	ErrCodeInvalidGoalStatus   GoalErrorCode = "GOL-020003"
	ErrCodeInvalidGoalType     GoalErrorCode = "GOL-020004"
	ErrCodeMissingGoalFields   GoalErrorCode = "GOL-020005"

	// Hierarchy errors (03XXXX)
	ErrCodeWeeklyGoalCannotParent GoalErrorCode = "GOL-030001"
	ErrCodeGoalSelfParent         GoalErrorCode = "GOL-030002"
	ErrCodeGoalHierarchyCycle     GoalErrorCode = "GOL-030003"

	// State machine errors (04XXXX)
	ErrCodeInvalidStatusTransition GoalErrorCode = "GOL-040001"

	// Authorization errors (05XXXX)
	ErrCodeUnauthorizedGoalAccess GoalErrorCode = "GOL-050001"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
