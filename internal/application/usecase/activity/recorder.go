// Package activity contains the workspace activity log use cases.
package activity

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/goalflow/backend/internal/application/adapter"
	"github.com/goalflow/backend/internal/domain/entity"
)

// Recorder appends entries to the workspace activity log. Recording is
// best effort: failures are logged and never fail the triggering operation.
type Recorder struct {
	activityRepo adapter.ActivityRepository
}

// NewRecorder creates a new Recorder instance.
func NewRecorder(activityRepo adapter.ActivityRepository) *Recorder {
	return &Recorder{
		activityRepo: activityRepo,
	}
}

// Record appends an activity entry.
func (r *Recorder) Record(ctx context.Context, activityType entity.ActivityType, description string, userID, workspaceID uuid.UUID, goalID *uuid.UUID, metadata map[string]interface{}) {
	activity := entity.NewActivity(activityType, description, userID, workspaceID, goalID, metadata)
	if err := r.activityRepo.Create(ctx, activity); err != nil {
		slog.Error("Failed to record activity",
			"error", err,
			"type", activityType,
			"workspace_id", workspaceID,
		)
	}
}
