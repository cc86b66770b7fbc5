// Package error defines domain-specific errors for the GoalFlow application.
package error

import "errors"

// Workspace domain errors.
var (
	// ErrWorkspaceNotFound is returned when a workspace is not found in the system.
	ErrWorkspaceNotFound = errors.New("workspace not found")

	// ErrWorkspaceAccessDenied is returned when a user lacks access to a workspace.
	ErrWorkspaceAccessDenied = errors.New("workspace access denied")

	// ErrInsufficientRole is returned when a member's role does not meet the required level.
	ErrInsufficientRole = errors.New("insufficient workspace role")

	// ErrMemberNotFound is returned when a member is not found in the workspace.
	ErrMemberNotFound = errors.New("member not found")

	// ErrUserAlreadyMember is returned when a user is already a member of the workspace.
	ErrUserAlreadyMember = errors.New("user is already a member of this workspace")

	// ErrCannotRemoveOwner is returned when attempting to remove or demote the workspace owner.
	ErrCannotRemoveOwner = errors.New("workspace owner cannot be removed")

	// ErrInvalidWorkspaceRole is returned when an invalid role is provided.
	ErrInvalidWorkspaceRole = errors.New("invalid workspace role")

	// ErrInviteNotFound is returned when an invitation is not found.
	ErrInviteNotFound = errors.New("invite not found")

	// ErrInviteExpired is returned when an invitation has expired.
	ErrInviteExpired = errors.New("invite has expired")

	// ErrInviteAlreadySent is returned when an open invite already exists for the email.
	ErrInviteAlreadySent = errors.New("invite already sent")

	// ErrInviteAlreadyAccepted is returned when an invitation was already accepted.
	ErrInviteAlreadyAccepted = errors.New("invite already accepted")

	// ErrInviteEmailMismatch is returned when the accepting user's email does not match the invite.
	ErrInviteEmailMismatch = errors.New("invite was issued for a different email")

	// ErrInvalidInviteEmail is returned when an invalid email is provided.
	ErrInvalidInviteEmail = errors.New("invalid email address")

	// ErrCannotInviteSelf is returned when a user tries to invite themselves.
	ErrCannotInviteSelf = errors.New("cannot invite yourself")
)

// WorkspaceErrorCode defines error codes for workspace errors.
// Format: WSP-XXYYYY where XX is category and YYYY is specific error.
type WorkspaceErrorCode string

const (
	// Resource not found errors (01XXXX)
	ErrCodeWorkspaceNotFound WorkspaceErrorCode = "WSP-010001"
	ErrCodeMemberNotFound    WorkspaceErrorCode = "WSP-010002"
	ErrCodeInviteNotFound    WorkspaceErrorCode = "WSP-010003"

	// Validation errors (02XXXX)
	ErrCodeInvalidWorkspaceRole   WorkspaceErrorCode = "WSP-020001"
	ErrCodeInvalidInviteEmail     WorkspaceErrorCode = "WSP-020002"
	ErrCodeMissingWorkspaceFields WorkspaceErrorCode = "WSP-020003"

	// Conflict errors (03XXXX)
	ErrCodeUserAlreadyMember     WorkspaceErrorCode = "WSP-030001"
	ErrCodeInviteAlreadySent     WorkspaceErrorCode = "WSP-030002"
	ErrCodeInviteAlreadyAccepted WorkspaceErrorCode = "WSP-030003"

	// Authorization errors (04XXXX)
	ErrCodeWorkspaceAccessDenied WorkspaceErrorCode = "WSP-040001"
	ErrCodeInsufficientRole      WorkspaceErrorCode = "WSP-040002"
	ErrCodeCannotRemoveOwner     WorkspaceErrorCode = "WSP-040003"
	ErrCodeInviteEmailMismatch   WorkspaceErrorCode = "WSP-040004"

	// Invite errors (05XXXX)
	ErrCodeInviteExpired    WorkspaceErrorCode = "WSP-050001"
	ErrCodeCannotInviteSelf WorkspaceErrorCode = "WSP-050002"
)

// WorkspaceError represents a workspace error with code and message.
type WorkspaceError struct {
	Code    WorkspaceErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *WorkspaceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *WorkspaceError) Unwrap() error {
	return e.Err
}

// NewWorkspaceError creates a new WorkspaceError with the given code and message.
func NewWorkspaceError(code WorkspaceErrorCode, message string, err error) *WorkspaceError {
	return &WorkspaceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
