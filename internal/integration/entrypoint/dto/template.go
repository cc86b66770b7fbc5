package dto

import (
	"time"

	"github.com/goalflow/backend/internal/domain/entity"
)

// CreateTemplateRequest represents the request body for template creation.
type CreateTemplateRequest struct {
	Name               string  `json:"name" binding:"required"`
	Description        string  `json:"description"`
	Type               string  `json:"type" binding:"required,oneof=QUARTERLY MONTHLY WEEKLY"`
	Title              string  `json:"title" binding:"required"`
	DefaultDescription string  `json:"default_description"`
	WorkspaceID        *string `json:"workspace_id,omitempty" binding:"omitempty,uuid"`
	IsPublic           bool    `json:"is_public"`
}

// UpdateTemplateRequest represents the request body for template update.
type UpdateTemplateRequest struct {
	Name               *string `json:"name,omitempty"`
	Description        *string `json:"description,omitempty"`
	Title              *string `json:"title,omitempty"`
	DefaultDescription *string `json:"default_description,omitempty"`
	IsPublic           *bool   `json:"is_public,omitempty"`
}

// CreateGoalFromTemplateRequest represents the request body for
// instantiating a template.
type CreateGoalFromTemplateRequest struct {
	WorkspaceID string  `json:"workspace_id" binding:"required,uuid"`
	ParentID    *string `json:"parent_id,omitempty" binding:"omitempty,uuid"`
	Title       *string `json:"title,omitempty"`
}

// TemplateResponse represents a goal template in API responses.
type TemplateResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	Type               string    `json:"type"`
	Title              string    `json:"title"`
	DefaultDescription string    `json:"default_description"`
	OwnerID            string    `json:"owner_id"`
	WorkspaceID        *string   `json:"workspace_id,omitempty"`
	IsPublic           bool      `json:"is_public"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// TemplateListResponse represents the response for listing templates.
type TemplateListResponse struct {
	Templates []TemplateResponse `json:"templates"`
}

// ToTemplateResponse converts a domain GoalTemplate entity to its DTO.
func ToTemplateResponse(t *entity.GoalTemplate) TemplateResponse {
	response := TemplateResponse{
		ID:                 t.ID.String(),
		Name:               t.Name,
		Description:        t.Description,
		Type:               string(t.Type),
		Title:              t.Title,
		DefaultDescription: t.DefaultDescription,
		OwnerID:            t.OwnerID.String(),
		IsPublic:           t.IsPublic,
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
	}
	if t.WorkspaceID != nil {
		workspaceID := t.WorkspaceID.String()
		response.WorkspaceID = &workspaceID
	}
	return response
}

// ToTemplateListResponse converts a slice of templates to its DTO.
func ToTemplateListResponse(templates []*entity.GoalTemplate) TemplateListResponse {
	response := TemplateListResponse{Templates: make([]TemplateResponse, len(templates))}
	for i, t := range templates {
		response.Templates[i] = ToTemplateResponse(t)
	}
	return response
}
