// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ActivityType classifies an entry in the workspace activity log.
type ActivityType string

const (
	ActivityGoalCreated      ActivityType = "GOAL_CREATED"
	ActivityGoalUpdated      ActivityType = "GOAL_UPDATED"
	ActivityGoalCompleted    ActivityType = "GOAL_COMPLETED"
	ActivityGoalCancelled    ActivityType = "GOAL_CANCELLED"
	ActivityGoalDeleted      ActivityType = "GOAL_DELETED"
	ActivityMetricUpdated    ActivityType = "METRIC_UPDATED"
	ActivityMemberAdded      ActivityType = "MEMBER_ADDED"
	ActivityMemberRemoved    ActivityType = "MEMBER_REMOVED"
	ActivityWorkspaceCreated ActivityType = "WORKSPACE_CREATED"
	ActivityWorkspaceUpdated ActivityType = "WORKSPACE_UPDATED"
)

// Activity is an immutable append-only log entry. Application logic never
// mutates or deletes activities once written.
type Activity struct {
	ID          uuid.UUID
	Type        ActivityType
	Description string
	UserID      uuid.UUID
	WorkspaceID uuid.UUID
	GoalID      *uuid.UUID
	Metadata    map[string]interface{}
	CreatedAt   time.Time
	// User information (populated when listing)
	UserName  string
	UserEmail string
	GoalTitle string
}

// NewActivity creates a new Activity entity.
func NewActivity(activityType ActivityType, description string, userID, workspaceID uuid.UUID, goalID *uuid.UUID, metadata map[string]interface{}) *Activity {
	if metadata == nil {
		metadata = map[string]interface{}{}
	}
	return &Activity{
		ID:          uuid.New(),
		Type:        activityType,
		Description: description,
		UserID:      userID,
		WorkspaceID: workspaceID,
		GoalID:      goalID,
		Metadata:    metadata,
		CreatedAt:   time.Now().UTC(),
	}
}
