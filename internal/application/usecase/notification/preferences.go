package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/goalflow/backend/internal/application/adapter"
	"github.com/goalflow/backend/internal/domain/entity"
)

// GetPreferencesInput represents the input for reading preferences.
type GetPreferencesInput struct {
	UserID uuid.UUID
}

// GetPreferencesOutput represents the output of reading preferences.
type GetPreferencesOutput struct {
	Preferences *entity.NotificationPreferences
}

// GetPreferencesUseCase returns a user's notification preferences, creating
// the record with defaults on first access.
type GetPreferencesUseCase struct {
	prefsRepo adapter.NotificationPreferencesRepository
}

// NewGetPreferencesUseCase creates a new GetPreferencesUseCase instance.
func NewGetPreferencesUseCase(prefsRepo adapter.NotificationPreferencesRepository) *GetPreferencesUseCase {
	return &GetPreferencesUseCase{
		prefsRepo: prefsRepo,
	}
}

// Execute returns the preferences.
func (uc *GetPreferencesUseCase) Execute(ctx context.Context, input GetPreferencesInput) (*GetPreferencesOutput, error) {
	prefs, err := uc.prefsRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}
	if prefs == nil {
		prefs = entity.NewNotificationPreferences(input.UserID)
		if err := uc.prefsRepo.Create(ctx, prefs); err != nil {
			return nil, fmt.Errorf("failed to create default preferences: %w", err)
		}
	}
	return &GetPreferencesOutput{Preferences: prefs}, nil
}

// UpdatePreferencesInput represents the input for updating preferences. Nil
// fields are left unchanged.
type UpdatePreferencesInput struct {
	UserID                   uuid.UUID
	EmailEnabled             *bool
	TelegramEnabled          *bool
	StatusChangeEmail        *bool
	StatusChangeTelegram     *bool
	ProgressUpdateEmail      *bool
	ProgressUpdateTelegram   *bool
	DeadlineReminderEmail    *bool
	DeadlineReminderTelegram *bool
	DeadlineReminderDays     []int
}

// UpdatePreferencesOutput represents the output of updating preferences.
type UpdatePreferencesOutput struct {
	Preferences *entity.NotificationPreferences
}

// UpdatePreferencesUseCase updates a user's notification preferences.
type UpdatePreferencesUseCase struct {
	prefsRepo adapter.NotificationPreferencesRepository
}

// NewUpdatePreferencesUseCase creates a new UpdatePreferencesUseCase instance.
func NewUpdatePreferencesUseCase(prefsRepo adapter.NotificationPreferencesRepository) *UpdatePreferencesUseCase {
	return &UpdatePreferencesUseCase{
		prefsRepo: prefsRepo,
	}
}

// Execute updates the preferences.
func (uc *UpdatePreferencesUseCase) Execute(ctx context.Context, input UpdatePreferencesInput) (*UpdatePreferencesOutput, error) {
	prefs, err := uc.prefsRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}
	if prefs == nil {
		prefs = entity.NewNotificationPreferences(input.UserID)
		if err := uc.prefsRepo.Create(ctx, prefs); err != nil {
			return nil, fmt.Errorf("failed to create default preferences: %w", err)
		}
	}

	applyBool(&prefs.EmailEnabled, input.EmailEnabled)
	applyBool(&prefs.TelegramEnabled, input.TelegramEnabled)
	applyBool(&prefs.StatusChangeEmail, input.StatusChangeEmail)
	applyBool(&prefs.StatusChangeTelegram, input.StatusChangeTelegram)
	applyBool(&prefs.ProgressUpdateEmail, input.ProgressUpdateEmail)
	applyBool(&prefs.ProgressUpdateTelegram, input.ProgressUpdateTelegram)
	applyBool(&prefs.DeadlineReminderEmail, input.DeadlineReminderEmail)
	applyBool(&prefs.DeadlineReminderTelegram, input.DeadlineReminderTelegram)
	if input.DeadlineReminderDays != nil {
		prefs.DeadlineReminderDays = input.DeadlineReminderDays
	}
	prefs.UpdatedAt = time.Now().UTC()

	if err := uc.prefsRepo.Update(ctx, prefs); err != nil {
		return nil, fmt.Errorf("failed to update preferences: %w", err)
	}
	return &UpdatePreferencesOutput{Preferences: prefs}, nil
}

func applyBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
