// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/goalflow/backend/internal/domain/entity"
)

// WorkspaceModel represents the workspaces table in the database.
type WorkspaceModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the WorkspaceModel.
func (WorkspaceModel) TableName() string {
	return "workspaces"
}

// ToEntity converts a WorkspaceModel to a domain Workspace entity.
func (m *WorkspaceModel) ToEntity() *entity.Workspace {
	return &entity.Workspace{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		OwnerID:     m.OwnerID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// WorkspaceFromEntity creates a WorkspaceModel from a domain Workspace entity.
func WorkspaceFromEntity(workspace *entity.Workspace) *WorkspaceModel {
	return &WorkspaceModel{
		ID:          workspace.ID,
		Name:        workspace.Name,
		Description: workspace.Description,
		OwnerID:     workspace.OwnerID,
		CreatedAt:   workspace.CreatedAt,
		UpdatedAt:   workspace.UpdatedAt,
	}
}

// WorkspaceMemberModel represents the workspace_members table in the database.
type WorkspaceMemberModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_member_workspace_user,unique"`
	WorkspaceID uuid.UUID `gorm:"type:uuid;not null;index:idx_member_workspace_user,unique"`
	Role        string    `gorm:"type:varchar(20);not null;default:'MEMBER'"`
	JoinedAt    time.Time `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the WorkspaceMemberModel.
func (WorkspaceMemberModel) TableName() string {
	return "workspace_members"
}

// ToEntity converts a WorkspaceMemberModel to a domain WorkspaceMember entity.
func (m *WorkspaceMemberModel) ToEntity() *entity.WorkspaceMember {
	member := &entity.WorkspaceMember{
		ID:          m.ID,
		UserID:      m.UserID,
		WorkspaceID: m.WorkspaceID,
		Role:        entity.WorkspaceRole(m.Role),
		JoinedAt:    m.JoinedAt,
	}
	if m.User != nil {
		member.UserName = m.User.Name
		member.UserEmail = m.User.Email
	}
	return member
}

// MemberFromEntity creates a WorkspaceMemberModel from a domain WorkspaceMember entity.
func MemberFromEntity(member *entity.WorkspaceMember) *WorkspaceMemberModel {
	return &WorkspaceMemberModel{
		ID:          member.ID,
		UserID:      member.UserID,
		WorkspaceID: member.WorkspaceID,
		Role:        string(member.Role),
		JoinedAt:    member.JoinedAt,
	}
}

// WorkspaceInviteModel represents the workspace_invites table in the database.
type WorkspaceInviteModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Email       string     `gorm:"type:varchar(255);not null;index"`
	WorkspaceID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Role        string     `gorm:"type:varchar(20);not null;default:'MEMBER'"`
	Token       string     `gorm:"type:varchar(64);uniqueIndex;not null"`
	InvitedBy   uuid.UUID  `gorm:"type:uuid;not null"`
	ExpiresAt   time.Time  `gorm:"not null"`
	AcceptedAt  *time.Time
	CreatedAt   time.Time  `gorm:"not null"`
}

// TableName returns the table name for the WorkspaceInviteModel.
func (WorkspaceInviteModel) TableName() string {
	return "workspace_invites"
}

// ToEntity converts a WorkspaceInviteModel to a domain WorkspaceInvite entity.
func (m *WorkspaceInviteModel) ToEntity() *entity.WorkspaceInvite {
	return &entity.WorkspaceInvite{
		ID:          m.ID,
		Email:       m.Email,
		WorkspaceID: m.WorkspaceID,
		Role:        entity.WorkspaceRole(m.Role),
		Token:       m.Token,
		InvitedBy:   m.InvitedBy,
		ExpiresAt:   m.ExpiresAt,
		AcceptedAt:  m.AcceptedAt,
		CreatedAt:   m.CreatedAt,
	}
}

// InviteFromEntity creates a WorkspaceInviteModel from a domain WorkspaceInvite entity.
func InviteFromEntity(invite *entity.WorkspaceInvite) *WorkspaceInviteModel {
	return &WorkspaceInviteModel{
		ID:          invite.ID,
		Email:       invite.Email,
		WorkspaceID: invite.WorkspaceID,
		Role:        string(invite.Role),
		Token:       invite.Token,
		InvitedBy:   invite.InvitedBy,
		ExpiresAt:   invite.ExpiresAt,
		AcceptedAt:  invite.AcceptedAt,
		CreatedAt:   invite.CreatedAt,
	}
}
