// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/goalflow/backend/internal/application/usecase/goal"
	"github.com/goalflow/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	WorkspaceID string  `json:"workspace_id" binding:"required,uuid"`
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Type        string  `json:"type" binding:"required,oneof=QUARTERLY MONTHLY WEEKLY"`
	StartDate   string  `json:"start_date" binding:"required"`
	EndDate     string  `json:"end_date" binding:"required"`
	ParentID    *string `json:"parent_id,omitempty" binding:"omitempty,uuid"`
}

// UpdateGoalRequest represents the request body for goal update. An omitted
// parent_id keeps the current parent; detach_parent removes it.
type UpdateGoalRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty" binding:"omitempty,oneof=DRAFT ACTIVE REVIEW COMPLETED CANCELLED"`
	Progress    *int    `json:"progress,omitempty" binding:"omitempty,min=0,max=100"`
	StartDate   *string `json:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
	// DetachParent wins over ParentID when both are set.
	ParentID     *string `json:"parent_id,omitempty" binding:"omitempty,uuid"`
	DetachParent bool    `json:"detach_parent,omitempty"`
}

// BulkUpdateStatusRequest represents the request body for bulk status change.
type BulkUpdateStatusRequest struct {
	GoalIDs []string `json:"goal_ids" binding:"required,min=1,dive,uuid"`
	Status  string   `json:"status" binding:"required,oneof=DRAFT ACTIVE REVIEW COMPLETED CANCELLED"`
}

// BulkDeleteRequest represents the request body for bulk deletion.
type BulkDeleteRequest struct {
	GoalIDs []string `json:"goal_ids" binding:"required,min=1,dive,uuid"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Type        string    `json:"type"`
	Progress    int       `json:"progress"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	OwnerID     string    `json:"owner_id"`
	WorkspaceID string    `json:"workspace_id"`
	ParentID    *string   `json:"parent_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GoalDetailResponse represents a goal with its relations loaded.
type GoalDetailResponse struct {
	GoalResponse
	Parent   *GoalResponse    `json:"parent,omitempty"`
	Children []GoalResponse   `json:"children"`
	Metrics  []MetricResponse `json:"metrics"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// HierarchyResponse represents the goal tree: roots with direct children.
type HierarchyResponse struct {
	Roots []GoalDetailResponse `json:"roots"`
}

// BulkResultResponse reports the outcome of one goal in a bulk operation.
type BulkResultResponse struct {
	GoalID string `json:"goal_id"`
	Error  string `json:"error,omitempty"`
}

// BulkResponse represents the per-goal outcomes of a bulk operation.
type BulkResponse struct {
	Results []BulkResultResponse `json:"results"`
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.Goal) GoalResponse {
	response := GoalResponse{
		ID:          g.ID.String(),
		Title:       g.Title,
		Description: g.Description,
		Status:      string(g.Status),
		Type:        string(g.Type),
		Progress:    g.Progress,
		StartDate:   g.StartDate.Format("2006-01-02"),
		EndDate:     g.EndDate.Format("2006-01-02"),
		OwnerID:     g.OwnerID.String(),
		WorkspaceID: g.WorkspaceID.String(),
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
	if g.ParentID != nil {
		parentID := g.ParentID.String()
		response.ParentID = &parentID
	}
	return response
}

// ToGoalListResponse converts a slice of goals to a GoalListResponse DTO.
func ToGoalListResponse(goals []*entity.Goal) GoalListResponse {
	response := GoalListResponse{Goals: make([]GoalResponse, len(goals))}
	for i, g := range goals {
		response.Goals[i] = ToGoalResponse(g)
	}
	return response
}

// ToGoalDetailResponse converts a goal with relations to its DTO.
func ToGoalDetailResponse(g *entity.GoalWithRelations) GoalDetailResponse {
	response := GoalDetailResponse{
		GoalResponse: ToGoalResponse(g.Goal),
		Children:     make([]GoalResponse, len(g.Children)),
		Metrics:      make([]MetricResponse, len(g.Metrics)),
	}
	if g.Parent != nil {
		parent := ToGoalResponse(g.Parent)
		response.Parent = &parent
	}
	for i, child := range g.Children {
		response.Children[i] = ToGoalResponse(child)
	}
	for i, metric := range g.Metrics {
		response.Metrics[i] = ToMetricResponse(metric)
	}
	return response
}

// ToBulkResponse converts bulk operation results to a BulkResponse DTO.
func ToBulkResponse(results []goal.BulkResult) BulkResponse {
	response := BulkResponse{Results: make([]BulkResultResponse, len(results))}
	for i, r := range results {
		response.Results[i] = BulkResultResponse{GoalID: r.GoalID.String()}
		if r.Error != nil {
			response.Results[i].Error = r.Error.Error()
		}
	}
	return response
}
