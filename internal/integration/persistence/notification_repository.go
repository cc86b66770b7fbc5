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

// notificationPreferencesRepository implements adapter.NotificationPreferencesRepository.
type notificationPreferencesRepository struct {
	db *gorm.DB
}

// NewNotificationPreferencesRepository creates a new preferences repository instance.
func NewNotificationPreferencesRepository(db *gorm.DB) adapter.NotificationPreferencesRepository {
	return &notificationPreferencesRepository{
		db: db,
	}
}

// FindByUserID retrieves the preferences of a user, nil if none exist yet.
func (r *notificationPreferencesRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.NotificationPreferences, error) {
	var prefsModel model.NotificationPreferencesModel
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&prefsModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return prefsModel.ToEntity(), nil
}

// Create inserts a preferences record.
func (r *notificationPreferencesRepository) Create(ctx context.Context, prefs *entity.NotificationPreferences) error {
	result := r.db.WithContext(ctx).Create(model.PreferencesFromEntity(prefs))
	return result.Error
}

// Update updates a preferences record.
func (r *notificationPreferencesRepository) Update(ctx context.Context, prefs *entity.NotificationPreferences) error {
	result := r.db.WithContext(ctx).Save(model.PreferencesFromEntity(prefs))
	return result.Error
}

// notificationQueueRepository implements adapter.NotificationQueueRepository.
type notificationQueueRepository struct {
	db *gorm.DB
}

// NewNotificationQueueRepository creates a new notification queue repository instance.
func NewNotificationQueueRepository(db *gorm.DB) adapter.NotificationQueueRepository {
	return &notificationQueueRepository{
		db: db,
	}
}

// Create enqueues a notification job.
func (r *notificationQueueRepository) Create(ctx context.Context, job *entity.NotificationJob) error {
	result := r.db.WithContext(ctx).Create(model.NotificationJobFromEntity(job))
	if result.Error != nil {
		return domainerror.NewNotificationError(
			domainerror.ErrCodeNotificationQueueFailed,
			"failed to enqueue notification job",
			result.Error,
		)
	}
	return nil
}

// GetPendingJobs retrieves up to limit pending jobs whose scheduled time has
// passed, oldest first.
func (r *notificationQueueRepository) GetPendingJobs(ctx context.Context, limit int) ([]*entity.NotificationJob, error) {
	var models []model.NotificationQueueModel

	result := r.db.WithContext(ctx).
		Where("status = ?", entity.NotificationStatusPending).
		Where("scheduled_at <= ?", time.Now().UTC()).
		Order("scheduled_at ASC").
		Limit(limit).
		Find(&models)

	if result.Error != nil {
		return nil, result.Error
	}

	jobs := make([]*entity.NotificationJob, len(models))
	for i := range models {
		jobs[i] = models[i].ToEntity()
	}
	return jobs, nil
}

// Update saves changes to a notification job.
func (r *notificationQueueRepository) Update(ctx context.Context, job *entity.NotificationJob) error {
	result := r.db.WithContext(ctx).Save(model.NotificationJobFromEntity(job))
	return result.Error
}
