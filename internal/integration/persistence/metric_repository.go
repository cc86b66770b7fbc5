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

// metricRepository implements the adapter.MetricRepository interface.
type metricRepository struct {
	db *gorm.DB
}

// NewMetricRepository creates a new metric repository instance.
func NewMetricRepository(db *gorm.DB) adapter.MetricRepository {
	return &metricRepository{
		db: db,
	}
}

// Create creates a new metric in the database.
func (r *metricRepository) Create(ctx context.Context, metric *entity.Metric) error {
	result := r.db.WithContext(ctx).Create(model.MetricFromEntity(metric))
	return result.Error
}

// FindByID retrieves a metric by its ID.
func (r *metricRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Metric, error) {
	var metricModel model.MetricModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&metricModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrMetricNotFound
		}
		return nil, result.Error
	}
	return metricModel.ToEntity(), nil
}

// FindByGoalID retrieves all metrics of a goal, most recently created first.
func (r *metricRepository) FindByGoalID(ctx context.Context, goalID uuid.UUID) ([]*entity.Metric, error) {
	var metricModels []model.MetricModel
	result := r.db.WithContext(ctx).
		Where("goal_id = ?", goalID).
		Order("created_at DESC").
		Find(&metricModels)
	if result.Error != nil {
		return nil, result.Error
	}

	metrics := make([]*entity.Metric, len(metricModels))
	for i := range metricModels {
		metrics[i] = metricModels[i].ToEntity()
	}
	return metrics, nil
}

// Update updates an existing metric in the database.
func (r *metricRepository) Update(ctx context.Context, metric *entity.Metric) error {
	result := r.db.WithContext(ctx).Save(model.MetricFromEntity(metric))
	return result.Error
}

// Delete removes a metric from the database.
func (r *metricRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.MetricModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrMetricNotFound
	}
	return nil
}
