// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// WorkspaceRole represents the role of a member in a workspace.
type WorkspaceRole string

const (
	WorkspaceRoleViewer WorkspaceRole = "VIEWER"
	WorkspaceRoleMember WorkspaceRole = "MEMBER"
	WorkspaceRoleAdmin  WorkspaceRole = "ADMIN"
	WorkspaceRoleOwner  WorkspaceRole = "OWNER"
)

// roleLevel orders workspace roles from least to most privileged.
var roleLevel = map[WorkspaceRole]int{
	WorkspaceRoleViewer: 1,
	WorkspaceRoleMember: 2,
	WorkspaceRoleAdmin:  3,
	WorkspaceRoleOwner:  4,
}

// Level returns the numeric privilege level of the role, 0 if unknown.
func (r WorkspaceRole) Level() int {
	return roleLevel[r]
}

// AtLeast reports whether the role grants at least the required role's level.
func (r WorkspaceRole) AtLeast(required WorkspaceRole) bool {
	return r.Level() >= required.Level()
}

// IsValidWorkspaceRole reports whether the given role is a known value.
func IsValidWorkspaceRole(r WorkspaceRole) bool {
	_, ok := roleLevel[r]
	return ok
}

// Workspace represents a tenant boundary owning goals and memberships.
type Workspace struct {
	ID          uuid.UUID
	Name        string
	Description string
	OwnerID     uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewWorkspace creates a new Workspace entity.
func NewWorkspace(name, description string, ownerID uuid.UUID) *Workspace {
	now := time.Now().UTC()
	return &Workspace{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// WorkspaceMember represents a membership row in a workspace.
type WorkspaceMember struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	WorkspaceID uuid.UUID
	Role        WorkspaceRole
	JoinedAt    time.Time
	// User information (populated when needed)
	UserName  string
	UserEmail string
}

// NewWorkspaceMember creates a new WorkspaceMember entity.
func NewWorkspaceMember(userID, workspaceID uuid.UUID, role WorkspaceRole) *WorkspaceMember {
	return &WorkspaceMember{
		ID:          uuid.New(),
		UserID:      userID,
		WorkspaceID: workspaceID,
		Role:        role,
		JoinedAt:    time.Now().UTC(),
	}
}

// WorkspaceInvite represents an invitation to join a workspace.
type WorkspaceInvite struct {
	ID          uuid.UUID
	Email       string
	WorkspaceID uuid.UUID
	Role        WorkspaceRole
	Token       string
	InvitedBy   uuid.UUID
	ExpiresAt   time.Time
	AcceptedAt  *time.Time
	CreatedAt   time.Time
}

// NewWorkspaceInvite creates a new WorkspaceInvite entity.
func NewWorkspaceInvite(email string, workspaceID uuid.UUID, role WorkspaceRole, token string, invitedBy uuid.UUID, expiresAt time.Time) *WorkspaceInvite {
	return &WorkspaceInvite{
		ID:          uuid.New(),
		Email:       email,
		WorkspaceID: workspaceID,
		Role:        role,
		Token:       token,
		InvitedBy:   invitedBy,
		ExpiresAt:   expiresAt,
		CreatedAt:   time.Now().UTC(),
	}
}

// IsExpired checks if the invitation has expired.
func (i *WorkspaceInvite) IsExpired() bool {
	return time.Now().UTC().After(i.ExpiresAt)
}

// IsAccepted checks if the invitation has been accepted.
func (i *WorkspaceInvite) IsAccepted() bool {
	return i.AcceptedAt != nil
}
