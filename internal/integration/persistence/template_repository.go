// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/goalflow/backend/internal/application/adapter"
	"github.com/goalflow/backend/internal/domain/entity"
	domainerror "github.com/goalflow/backend/internal/domain/error"
	"github.com/goalflow/backend/internal/integration/persistence/model"
)

// templateRepository implements the adapter.GoalTemplateRepository interface.
type templateRepository struct {
	db *gorm.DB
}

// NewGoalTemplateRepository creates a new goal template repository instance.
func NewGoalTemplateRepository(db *gorm.DB) adapter.GoalTemplateRepository {
	return &templateRepository{
		db: db,
	}
}

// Create creates a new template in the database.
func (r *templateRepository) Create(ctx context.Context, template *entity.GoalTemplate) error {
	result := r.db.WithContext(ctx).Create(model.TemplateFromEntity(template))
	return result.Error
}

// FindByID retrieves a template by its ID.
func (r *templateRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.GoalTemplate, error) {
	var templateModel model.GoalTemplateModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&templateModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTemplateNotFound
		}
		return nil, result.Error
	}
	return templateModel.ToEntity(), nil
}

// FindVisible retrieves templates visible to a user: owned, public, or
// scoped to the given workspace. Newest first.
func (r *templateRepository) FindVisible(ctx context.Context, userID uuid.UUID, workspaceID *uuid.UUID) ([]*entity.GoalTemplate, error) {
	query := r.db.WithContext(ctx)
	if workspaceID != nil {
		query = query.Where("owner_id = ? OR is_public = ? OR workspace_id = ?", userID, true, *workspaceID)
	} else {
		query = query.Where("owner_id = ? OR is_public = ?", userID, true)
	}

	var templateModels []model.GoalTemplateModel
	result := query.Order("created_at DESC").Find(&templateModels)
	if result.Error != nil {
		return nil, result.Error
	}

	templates := make([]*entity.GoalTemplate, len(templateModels))
	for i := range templateModels {
		templates[i] = templateModels[i].ToEntity()
	}
	return templates, nil
}

// Update updates an existing template in the database.
func (r *templateRepository) Update(ctx context.Context, template *entity.GoalTemplate) error {
	result := r.db.WithContext(ctx).Save(model.TemplateFromEntity(template))
	return result.Error
}

// Delete removes a template from the database.
func (r *templateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.GoalTemplateModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTemplateNotFound
	}
	return nil
}
