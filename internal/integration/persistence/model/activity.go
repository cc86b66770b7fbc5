// Package model defines database models for persistence layer.
package model

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/goalflow/backend/internal/domain/entity"
)

// ActivityModel represents the activities table in the database.
// Rows are append-only; nothing updates or deletes them.
type ActivityModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Type        string     `gorm:"type:varchar(30);not null;index"`
	Description string     `gorm:"type:varchar(500);not null"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	WorkspaceID uuid.UUID  `gorm:"type:uuid;not null;index"`
	GoalID      *uuid.UUID `gorm:"type:uuid;index"`
	Metadata    string     `gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt   time.Time  `gorm:"not null;index"`

	// Relationships (not loaded by default, use Preload)
	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
	Goal *GoalModel `gorm:"foreignKey:GoalID;references:ID"`
}

// TableName returns the table name for the ActivityModel.
func (ActivityModel) TableName() string {
	return "activities"
}

// ToEntity converts an ActivityModel to a domain Activity entity.
func (m *ActivityModel) ToEntity() *entity.Activity {
	var metadata map[string]interface{}
	if m.Metadata != "" {
		if err := json.Unmarshal([]byte(m.Metadata), &metadata); err != nil {
			slog.Warn("Failed to unmarshal activity metadata", "error", err, "id", m.ID)
		}
	}
	if metadata == nil {
		metadata = make(map[string]interface{})
	}

	activity := &entity.Activity{
		ID:          m.ID,
		Type:        entity.ActivityType(m.Type),
		Description: m.Description,
		UserID:      m.UserID,
		WorkspaceID: m.WorkspaceID,
		GoalID:      m.GoalID,
		Metadata:    metadata,
		CreatedAt:   m.CreatedAt,
	}
	if m.User != nil {
		activity.UserName = m.User.Name
		activity.UserEmail = m.User.Email
	}
	if m.Goal != nil {
		activity.GoalTitle = m.Goal.Title
	}
	return activity
}

// ActivityFromEntity creates an ActivityModel from a domain Activity entity.
func ActivityFromEntity(activity *entity.Activity) *ActivityModel {
	metadataJSON, err := json.Marshal(activity.Metadata)
	if err != nil {
		slog.Error("Failed to marshal activity metadata", "error", err, "activity_id", activity.ID)
		metadataJSON = []byte("{}")
	}

	return &ActivityModel{
		ID:          activity.ID,
		Type:        string(activity.Type),
		Description: activity.Description,
		UserID:      activity.UserID,
		WorkspaceID: activity.WorkspaceID,
		GoalID:      activity.GoalID,
		Metadata:    string(metadataJSON),
		CreatedAt:   activity.CreatedAt,
	}
}
