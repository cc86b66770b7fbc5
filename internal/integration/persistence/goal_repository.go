// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/goalflow/backend/internal/application/adapter"
	"github.com/goalflow/backend/internal/domain/entity"
	domainerror "github.com/goalflow/backend/internal/domain/error"
	"github.com/goalflow/backend/internal/integration/persistence/model"
)

// goalRepository implements the adapter.GoalRepository interface.
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository instance.
func NewGoalRepository(db *gorm.DB) adapter.GoalRepository {
	return &goalRepository{
		db: db,
	}
}

// Create creates a new goal in the database.
func (r *goalRepository) Create(ctx context.Context, goal *entity.Goal) error {
	goalModel := model.GoalFromEntity(goal)
	result := r.db.WithContext(ctx).Create(goalModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a goal by its ID.
func (r *goalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	var goalModel model.GoalModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGoalNotFound
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// FindByIDAndOwner retrieves a goal owned by the given user.
func (r *goalRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.Goal, error) {
	var goalModel model.GoalModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGoalNotFound
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// FindByIDWithRelations retrieves a goal with parent, children and metrics loaded.
func (r *goalRepository) FindByIDWithRelations(ctx context.Context, id, ownerID uuid.UUID) (*entity.GoalWithRelations, error) {
	var goalModel model.GoalModel
	result := r.db.WithContext(ctx).
		Preload("Parent").
		Preload("Children").
		Preload("Metrics").
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGoalNotFound
		}
		return nil, result.Error
	}
	return goalModel.ToEntityWithRelations(), nil
}

// FindByOwnerAndWorkspace retrieves all goals owned by a user in a workspace.
func (r *goalRepository) FindByOwnerAndWorkspace(ctx context.Context, ownerID, workspaceID uuid.UUID) ([]*entity.Goal, error) {
	var goalModels []model.GoalModel
	result := r.db.WithContext(ctx).
		Where("owner_id = ? AND workspace_id = ?", ownerID, workspaceID).
		Order("created_at DESC").
		Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toGoalEntities(goalModels), nil
}

// FindByFilter retrieves goals matching a filter, most recently created first.
func (r *goalRepository) FindByFilter(ctx context.Context, filter adapter.GoalFilter) ([]*entity.Goal, error) {
	query := r.db.WithContext(ctx).
		Where("workspace_id = ?", filter.WorkspaceID)

	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}
	if filter.StartDate != nil {
		query = query.Where("created_at >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("created_at <= ?", *filter.EndDate)
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		query = query.Where("status IN ?", statuses)
	}
	if len(filter.Types) > 0 {
		types := make([]string, len(filter.Types))
		for i, t := range filter.Types {
			types[i] = string(t)
		}
		query = query.Where("type IN ?", types)
	}

	var goalModels []model.GoalModel
	result := query.Order("created_at DESC").Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toGoalEntities(goalModels), nil
}

// FindRoots retrieves goals without a parent in a workspace for an owner,
// with direct children preloaded.
func (r *goalRepository) FindRoots(ctx context.Context, ownerID, workspaceID uuid.UUID) ([]*entity.GoalWithRelations, error) {
	var goalModels []model.GoalModel
	result := r.db.WithContext(ctx).
		Preload("Children").
		Where("owner_id = ? AND workspace_id = ? AND parent_id IS NULL", ownerID, workspaceID).
		Order("created_at DESC").
		Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}

	roots := make([]*entity.GoalWithRelations, len(goalModels))
	for i := range goalModels {
		roots[i] = goalModels[i].ToEntityWithRelations()
	}
	return roots, nil
}

// FindChildren retrieves the direct children of a goal.
func (r *goalRepository) FindChildren(ctx context.Context, parentID uuid.UUID) ([]*entity.Goal, error) {
	var goalModels []model.GoalModel
	result := r.db.WithContext(ctx).
		Where("parent_id = ?", parentID).
		Order("created_at ASC").
		Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toGoalEntities(goalModels), nil
}

// Search retrieves goals whose title or description contains the query,
// scoped to an owner and workspace.
func (r *goalRepository) Search(ctx context.Context, ownerID, workspaceID uuid.UUID, query string) ([]*entity.Goal, error) {
	pattern := "%" + query + "%"
	var goalModels []model.GoalModel
	result := r.db.WithContext(ctx).
		Where("owner_id = ? AND workspace_id = ?", ownerID, workspaceID).
		Where("title LIKE ? OR description LIKE ?", pattern, pattern).
		Order("created_at DESC").
		Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toGoalEntities(goalModels), nil
}

// FindExpiring retrieves ACTIVE and REVIEW goals with an end date inside the
// given window, across all workspaces.
func (r *goalRepository) FindExpiring(ctx context.Context, from, to time.Time) ([]*entity.Goal, error) {
	var goalModels []model.GoalModel
	result := r.db.WithContext(ctx).
		Where("status IN ?", []string{string(entity.GoalStatusActive), string(entity.GoalStatusReview)}).
		Where("end_date >= ? AND end_date <= ?", from, to).
		Order("end_date ASC").
		Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toGoalEntities(goalModels), nil
}

// Update updates an existing goal in the database.
func (r *goalRepository) Update(ctx context.Context, goal *entity.Goal) error {
	goalModel := model.GoalFromEntity(goal)
	result := r.db.WithContext(ctx).Save(goalModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// UpdateProgress atomically sets a goal's progress in a single write.
func (r *goalRepository) UpdateProgress(ctx context.Context, id uuid.UUID, progress int) error {
	result := r.db.WithContext(ctx).
		Model(&model.GoalModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"progress":   progress,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrGoalNotFound
	}
	return nil
}

// Delete removes a goal from the database.
func (r *goalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.GoalModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrGoalNotFound
	}
	return nil
}

func toGoalEntities(goalModels []model.GoalModel) []*entity.Goal {
	goals := make([]*entity.Goal, len(goalModels))
	for i := range goalModels {
		goals[i] = goalModels[i].ToEntity()
	}
	return goals
}
