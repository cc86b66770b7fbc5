package dto

import (
	"github.com/goalflow/backend/internal/domain/entity"
)

// UpdatePreferencesRequest represents the request body for updating
// notification preferences.
type UpdatePreferencesRequest struct {
	EmailEnabled             *bool `json:"email_enabled,omitempty"`
	TelegramEnabled          *bool `json:"telegram_enabled,omitempty"`
	StatusChangeEmail        *bool `json:"status_change_email,omitempty"`
	StatusChangeTelegram     *bool `json:"status_change_telegram,omitempty"`
	ProgressUpdateEmail      *bool `json:"progress_update_email,omitempty"`
	ProgressUpdateTelegram   *bool `json:"progress_update_telegram,omitempty"`
	DeadlineReminderEmail    *bool `json:"deadline_reminder_email,omitempty"`
	DeadlineReminderTelegram *bool `json:"deadline_reminder_telegram,omitempty"`
	DeadlineReminderDays     []int `json:"deadline_reminder_days,omitempty" binding:"omitempty,dive,min=1,max=30"`
}

// PreferencesResponse represents notification preferences in API responses.
type PreferencesResponse struct {
	EmailEnabled             bool  `json:"email_enabled"`
	TelegramEnabled          bool  `json:"telegram_enabled"`
	StatusChangeEmail        bool  `json:"status_change_email"`
	StatusChangeTelegram     bool  `json:"status_change_telegram"`
	ProgressUpdateEmail      bool  `json:"progress_update_email"`
	ProgressUpdateTelegram   bool  `json:"progress_update_telegram"`
	DeadlineReminderEmail    bool  `json:"deadline_reminder_email"`
	DeadlineReminderTelegram bool  `json:"deadline_reminder_telegram"`
	DeadlineReminderDays     []int `json:"deadline_reminder_days"`
}

// TelegramLinkResponse represents an issued telegram link code.
type TelegramLinkResponse struct {
	Code             string `json:"code"`
	ExpiresInSeconds int    `json:"expires_in_seconds"`
	Instructions     string `json:"instructions"`
}

// CronSweepResponse represents the outcome of a deadline reminder sweep.
type CronSweepResponse struct {
	GoalsChecked  int `json:"goals_checked"`
	RemindersSent int `json:"reminders_sent"`
}

// ToPreferencesResponse converts preferences to their DTO.
func ToPreferencesResponse(p *entity.NotificationPreferences) PreferencesResponse {
	return PreferencesResponse{
		EmailEnabled:             p.EmailEnabled,
		TelegramEnabled:          p.TelegramEnabled,
		StatusChangeEmail:        p.StatusChangeEmail,
		StatusChangeTelegram:     p.StatusChangeTelegram,
		ProgressUpdateEmail:      p.ProgressUpdateEmail,
		ProgressUpdateTelegram:   p.ProgressUpdateTelegram,
		DeadlineReminderEmail:    p.DeadlineReminderEmail,
		DeadlineReminderTelegram: p.DeadlineReminderTelegram,
		DeadlineReminderDays:     p.DeadlineReminderDays,
	}
}
