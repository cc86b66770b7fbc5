// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/goalflow/backend/internal/application/adapter"
	"github.com/goalflow/backend/internal/domain/entity"
	"github.com/goalflow/backend/internal/integration/persistence/model"
)

// activityRepository implements the adapter.ActivityRepository interface.
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new activity repository instance.
func NewActivityRepository(db *gorm.DB) adapter.ActivityRepository {
	return &activityRepository{
		db: db,
	}
}

// Create appends a new activity entry.
func (r *activityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	result := r.db.WithContext(ctx).Create(model.ActivityFromEntity(activity))
	return result.Error
}

// FindByWorkspace retrieves the newest activity entries of a workspace
// with user and goal info populated.
func (r *activityRepository) FindByWorkspace(ctx context.Context, workspaceID uuid.UUID, limit int) ([]*entity.Activity, error) {
	var activityModels []model.ActivityModel
	result := r.db.WithContext(ctx).
		Preload("User").
		Preload("Goal").
		Where("workspace_id = ?", workspaceID).
		Order("created_at DESC").
		Limit(limit).
		Find(&activityModels)
	if result.Error != nil {
		return nil, result.Error
	}

	activities := make([]*entity.Activity, len(activityModels))
	for i := range activityModels {
		activities[i] = activityModels[i].ToEntity()
	}
	return activities, nil
}
