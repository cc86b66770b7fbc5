// Package model defines database models for persistence layer.
package model

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/goalflow/backend/internal/domain/entity"
)

// NotificationPreferencesModel represents the notification_preferences table.
type NotificationPreferencesModel struct {
	ID                       uuid.UUID     `gorm:"type:uuid;primaryKey"`
	UserID                   uuid.UUID     `gorm:"type:uuid;uniqueIndex;not null"`
	EmailEnabled             bool          `gorm:"not null;default:true"`
	TelegramEnabled          bool          `gorm:"not null;default:false"`
	StatusChangeEmail        bool          `gorm:"not null;default:true"`
	StatusChangeTelegram     bool          `gorm:"not null;default:true"`
	ProgressUpdateEmail      bool          `gorm:"not null;default:true"`
	ProgressUpdateTelegram   bool          `gorm:"not null;default:true"`
	DeadlineReminderEmail    bool          `gorm:"not null;default:true"`
	DeadlineReminderTelegram bool          `gorm:"not null;default:true"`
	DeadlineReminderDays     pq.Int32Array `gorm:"type:integer[]"`
	CreatedAt                time.Time     `gorm:"not null"`
	UpdatedAt                time.Time     `gorm:"not null"`
}

// TableName returns the table name for the NotificationPreferencesModel.
func (NotificationPreferencesModel) TableName() string {
	return "notification_preferences"
}

// ToEntity converts a NotificationPreferencesModel to a domain entity.
func (m *NotificationPreferencesModel) ToEntity() *entity.NotificationPreferences {
	days := make([]int, 0, len(m.DeadlineReminderDays))
	for _, d := range m.DeadlineReminderDays {
		days = append(days, int(d))
	}

	return &entity.NotificationPreferences{
		ID:                       m.ID,
		UserID:                   m.UserID,
		EmailEnabled:             m.EmailEnabled,
		TelegramEnabled:          m.TelegramEnabled,
		StatusChangeEmail:        m.StatusChangeEmail,
		StatusChangeTelegram:     m.StatusChangeTelegram,
		ProgressUpdateEmail:      m.ProgressUpdateEmail,
		ProgressUpdateTelegram:   m.ProgressUpdateTelegram,
		DeadlineReminderEmail:    m.DeadlineReminderEmail,
		DeadlineReminderTelegram: m.DeadlineReminderTelegram,
		DeadlineReminderDays:     days,
		CreatedAt:                m.CreatedAt,
		UpdatedAt:                m.UpdatedAt,
	}
}

// PreferencesFromEntity creates a NotificationPreferencesModel from a domain entity.
func PreferencesFromEntity(prefs *entity.NotificationPreferences) *NotificationPreferencesModel {
	days := make(pq.Int32Array, 0, len(prefs.DeadlineReminderDays))
	for _, d := range prefs.DeadlineReminderDays {
		days = append(days, int32(d))
	}

	return &NotificationPreferencesModel{
		ID:                       prefs.ID,
		UserID:                   prefs.UserID,
		EmailEnabled:             prefs.EmailEnabled,
		TelegramEnabled:          prefs.TelegramEnabled,
		StatusChangeEmail:        prefs.StatusChangeEmail,
		StatusChangeTelegram:     prefs.StatusChangeTelegram,
		ProgressUpdateEmail:      prefs.ProgressUpdateEmail,
		ProgressUpdateTelegram:   prefs.ProgressUpdateTelegram,
		DeadlineReminderEmail:    prefs.DeadlineReminderEmail,
		DeadlineReminderTelegram: prefs.DeadlineReminderTelegram,
		DeadlineReminderDays:     days,
		CreatedAt:                prefs.CreatedAt,
		UpdatedAt:                prefs.UpdatedAt,
	}
}

// NotificationQueueModel represents the notification_queue table in the database.
type NotificationQueueModel struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey"`
	Event       string       `gorm:"type:varchar(30);not null"`
	Channel     string       `gorm:"type:varchar(20);not null"`
	UserID      uuid.UUID    `gorm:"type:uuid;not null;index"`
	Payload     string       `gorm:"type:jsonb;not null;default:'{}'"`
	Status      string       `gorm:"type:varchar(20);not null;default:'pending';index"`
	Attempts    int          `gorm:"not null;default:0"`
	MaxAttempts int          `gorm:"not null;default:3"`
	LastError   string       `gorm:"type:text"`
	ProviderID  string       `gorm:"type:varchar(100)"`
	CreatedAt   time.Time    `gorm:"not null"`
	ScheduledAt time.Time    `gorm:"not null;index"`
	ProcessedAt sql.NullTime
}

// TableName returns the table name for the NotificationQueueModel.
func (NotificationQueueModel) TableName() string {
	return "notification_queue"
}

// ToEntity converts a NotificationQueueModel to a domain NotificationJob entity.
func (m *NotificationQueueModel) ToEntity() *entity.NotificationJob {
	var payload map[string]interface{}
	if m.Payload != "" {
		if err := json.Unmarshal([]byte(m.Payload), &payload); err != nil {
			slog.Warn("Failed to unmarshal notification payload", "error", err, "id", m.ID)
		}
	}
	if payload == nil {
		payload = make(map[string]interface{})
	}

	var processedAt *time.Time
	if m.ProcessedAt.Valid {
		processedAt = &m.ProcessedAt.Time
	}

	return &entity.NotificationJob{
		ID:          m.ID,
		Event:       entity.NotificationEvent(m.Event),
		Channel:     entity.NotificationChannel(m.Channel),
		UserID:      m.UserID,
		Payload:     payload,
		Status:      entity.NotificationStatus(m.Status),
		Attempts:    m.Attempts,
		MaxAttempts: m.MaxAttempts,
		LastError:   m.LastError,
		ProviderID:  m.ProviderID,
		CreatedAt:   m.CreatedAt,
		ScheduledAt: m.ScheduledAt,
		ProcessedAt: processedAt,
	}
}

// NotificationJobFromEntity creates a NotificationQueueModel from a domain entity.
func NotificationJobFromEntity(job *entity.NotificationJob) *NotificationQueueModel {
	payloadJSON, err := json.Marshal(job.Payload)
	if err != nil {
		slog.Error("Failed to marshal notification payload", "error", err, "job_id", job.ID)
		payloadJSON = []byte("{}")
	}

	var processedAt sql.NullTime
	if job.ProcessedAt != nil {
		processedAt = sql.NullTime{Time: *job.ProcessedAt, Valid: true}
	}

	return &NotificationQueueModel{
		ID:          job.ID,
		Event:       string(job.Event),
		Channel:     string(job.Channel),
		UserID:      job.UserID,
		Payload:     string(payloadJSON),
		Status:      string(job.Status),
		Attempts:    job.Attempts,
		MaxAttempts: job.MaxAttempts,
		LastError:   job.LastError,
		ProviderID:  job.ProviderID,
		CreatedAt:   job.CreatedAt,
		ScheduledAt: job.ScheduledAt,
		ProcessedAt: processedAt,
	}
}
