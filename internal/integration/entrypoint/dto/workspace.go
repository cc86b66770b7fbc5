package dto

import (
	"time"

	"github.com/goalflow/backend/internal/domain/entity"
)

// CreateWorkspaceRequest represents the request body for workspace creation.
type CreateWorkspaceRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpdateWorkspaceRequest represents the request body for workspace update.
type UpdateWorkspaceRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// InviteMemberRequest represents the request body for inviting a member.
type InviteMemberRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required,oneof=VIEWER MEMBER ADMIN"`
}

// ChangeMemberRoleRequest represents the request body for a role change.
type ChangeMemberRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=VIEWER MEMBER ADMIN"`
}

// AcceptInviteRequest represents the request body for accepting an invite.
type AcceptInviteRequest struct {
	Token string `json:"token" binding:"required"`
}

// WorkspaceResponse represents a single workspace in API responses.
type WorkspaceResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	OwnerID     string    `json:"owner_id"`
	Role        string    `json:"role,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// WorkspaceListResponse represents the response for listing workspaces.
type WorkspaceListResponse struct {
	Workspaces []WorkspaceResponse `json:"workspaces"`
}

// MemberResponse represents a workspace member in API responses.
type MemberResponse struct {
	ID       string    `json:"id"`
	UserID   string    `json:"user_id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

// MemberListResponse represents the response for listing members.
type MemberListResponse struct {
	Members []MemberResponse `json:"members"`
}

// InviteResponse represents a workspace invite in API responses.
type InviteResponse struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	WorkspaceID   string    `json:"workspace_id"`
	WorkspaceName string    `json:"workspace_name,omitempty"`
	Role          string    `json:"role"`
	ExpiresAt     time.Time `json:"expires_at"`
	Accepted      bool      `json:"accepted"`
	CreatedAt     time.Time `json:"created_at"`
}

// InviteListResponse represents the response for listing invites.
type InviteListResponse struct {
	Invites []InviteResponse `json:"invites"`
}

// AcceptInviteResponse represents the result of accepting an invite.
type AcceptInviteResponse struct {
	WorkspaceID   string `json:"workspace_id"`
	WorkspaceName string `json:"workspace_name"`
	Role          string `json:"role"`
}

// ToWorkspaceResponse converts a domain Workspace entity to its DTO.
func ToWorkspaceResponse(w *entity.Workspace) WorkspaceResponse {
	return WorkspaceResponse{
		ID:          w.ID.String(),
		Name:        w.Name,
		Description: w.Description,
		OwnerID:     w.OwnerID.String(),
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}

// ToWorkspaceListResponse converts a slice of workspaces to its DTO.
func ToWorkspaceListResponse(workspaces []*entity.Workspace) WorkspaceListResponse {
	response := WorkspaceListResponse{Workspaces: make([]WorkspaceResponse, len(workspaces))}
	for i, w := range workspaces {
		response.Workspaces[i] = ToWorkspaceResponse(w)
	}
	return response
}

// ToMemberResponse converts a domain WorkspaceMember entity to its DTO.
func ToMemberResponse(m *entity.WorkspaceMember) MemberResponse {
	return MemberResponse{
		ID:       m.ID.String(),
		UserID:   m.UserID.String(),
		Name:     m.UserName,
		Email:    m.UserEmail,
		Role:     string(m.Role),
		JoinedAt: m.JoinedAt,
	}
}

// ToMemberListResponse converts a slice of members to its DTO.
func ToMemberListResponse(members []*entity.WorkspaceMember) MemberListResponse {
	response := MemberListResponse{Members: make([]MemberResponse, len(members))}
	for i, m := range members {
		response.Members[i] = ToMemberResponse(m)
	}
	return response
}

// ToInviteResponse converts a domain WorkspaceInvite entity to its DTO.
func ToInviteResponse(i *entity.WorkspaceInvite) InviteResponse {
	return InviteResponse{
		ID:          i.ID.String(),
		Email:       i.Email,
		WorkspaceID: i.WorkspaceID.String(),
		Role:        string(i.Role),
		ExpiresAt:   i.ExpiresAt,
		Accepted:    i.IsAccepted(),
		CreatedAt:   i.CreatedAt,
	}
}

// ToInviteListResponse converts a slice of invites to its DTO.
func ToInviteListResponse(invites []*entity.WorkspaceInvite) InviteListResponse {
	response := InviteListResponse{Invites: make([]InviteResponse, len(invites))}
	for i, invite := range invites {
		response.Invites[i] = ToInviteResponse(invite)
	}
	return response
}
