// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/goalflow/backend/internal/domain/entity"
)

// WorkspaceRepository defines the interface for workspace persistence operations.
type WorkspaceRepository interface {
	// CreateWithOwner creates a workspace and its owner membership row in one
	// transaction.
	CreateWithOwner(ctx context.Context, workspace *entity.Workspace, ownerMember *entity.WorkspaceMember) error

	// FindByID retrieves a workspace by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Workspace, error)

	// FindByUser retrieves all workspaces the user owns or is a member of.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Workspace, error)

	// Update updates an existing workspace in the database.
	Update(ctx context.Context, workspace *entity.Workspace) error

	// Delete removes a workspace and its memberships.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindMember retrieves the membership row for a user in a workspace,
	// nil if the user is not a member.
	FindMember(ctx context.Context, workspaceID, userID uuid.UUID) (*entity.WorkspaceMember, error)

	// FindMemberByID retrieves a membership row by its ID.
	FindMemberByID(ctx context.Context, memberID uuid.UUID) (*entity.WorkspaceMember, error)

	// FindMembers retrieves all membership rows of a workspace with user info.
	FindMembers(ctx context.Context, workspaceID uuid.UUID) ([]*entity.WorkspaceMember, error)

	// AddMember inserts a membership row.
	AddMember(ctx context.Context, member *entity.WorkspaceMember) error

	// UpdateMember updates a membership row.
	UpdateMember(ctx context.Context, member *entity.WorkspaceMember) error

	// RemoveMember deletes a membership row.
	RemoveMember(ctx context.Context, memberID uuid.UUID) error

	// CreateInvite inserts an invite row.
	CreateInvite(ctx context.Context, invite *entity.WorkspaceInvite) error

	// FindInviteByID retrieves an invite by its ID.
	FindInviteByID(ctx context.Context, id uuid.UUID) (*entity.WorkspaceInvite, error)

	// FindInviteByToken retrieves an invite by its token.
	FindInviteByToken(ctx context.Context, token string) (*entity.WorkspaceInvite, error)

	// FindOpenInvite retrieves the unaccepted invite for an email in a
	// workspace, nil if none exists.
	FindOpenInvite(ctx context.Context, workspaceID uuid.UUID, email string) (*entity.WorkspaceInvite, error)

	// FindInvitesByWorkspace retrieves all invites of a workspace, newest first.
	FindInvitesByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]*entity.WorkspaceInvite, error)

	// AcceptInvite stamps the invite accepted and adds the membership row in
	// one transaction.
	AcceptInvite(ctx context.Context, invite *entity.WorkspaceInvite, member *entity.WorkspaceMember) error

	// DeleteInvite removes an invite.
	DeleteInvite(ctx context.Context, id uuid.UUID) error
}
