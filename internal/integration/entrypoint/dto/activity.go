package dto

import (
	"time"

	"github.com/goalflow/backend/internal/domain/entity"
)

// ActivityResponse represents one activity log entry in API responses.
type ActivityResponse struct {
	ID          string                 `json:"id"`
	Type        string                 `json:"type"`
	Description string                 `json:"description"`
	UserID      string                 `json:"user_id"`
	UserName    string                 `json:"user_name,omitempty"`
	WorkspaceID string                 `json:"workspace_id"`
	GoalID      *string                `json:"goal_id,omitempty"`
	GoalTitle   string                 `json:"goal_title,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
}

// ActivityListResponse represents the workspace activity feed.
type ActivityListResponse struct {
	Activities []ActivityResponse `json:"activities"`
}

// ToActivityResponse converts a domain Activity entity to its DTO.
func ToActivityResponse(a *entity.Activity) ActivityResponse {
	response := ActivityResponse{
		ID:          a.ID.String(),
		Type:        string(a.Type),
		Description: a.Description,
		UserID:      a.UserID.String(),
		UserName:    a.UserName,
		WorkspaceID: a.WorkspaceID.String(),
		GoalTitle:   a.GoalTitle,
		Metadata:    a.Metadata,
		CreatedAt:   a.CreatedAt,
	}
	if a.GoalID != nil {
		goalID := a.GoalID.String()
		response.GoalID = &goalID
	}
	return response
}

// ToActivityListResponse converts a slice of activities to its DTO.
func ToActivityListResponse(activities []*entity.Activity) ActivityListResponse {
	response := ActivityListResponse{Activities: make([]ActivityResponse, len(activities))}
	for i, a := range activities {
		response.Activities[i] = ToActivityResponse(a)
	}
	return response
}
