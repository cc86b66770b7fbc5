// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/goalflow/backend/internal/domain/entity"
)

// GoalModel represents the goals table in the database.
type GoalModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Title       string     `gorm:"type:varchar(200);not null"`
	Description string     `gorm:"type:text"`
	Status      string     `gorm:"type:varchar(20);not null;default:'DRAFT';index"`
	Type        string     `gorm:"type:varchar(20);not null;index"`
	Progress    int        `gorm:"not null;default:0"`
	StartDate   time.Time  `gorm:"type:date;not null"`
	EndDate     time.Time  `gorm:"type:date;not null;index"`
	OwnerID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	WorkspaceID uuid.UUID  `gorm:"type:uuid;not null;index"`
	ParentID    *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt   time.Time  `gorm:"not null"`
	UpdatedAt   time.Time  `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Parent   *GoalModel    `gorm:"foreignKey:ParentID;references:ID"`
	Children []*GoalModel  `gorm:"foreignKey:ParentID;references:ID"`
	Metrics  []MetricModel `gorm:"foreignKey:GoalID;references:ID"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	return &entity.Goal{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Status:      entity.GoalStatus(m.Status),
		Type:        entity.GoalType(m.Type),
		Progress:    m.Progress,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		OwnerID:     m.OwnerID,
		WorkspaceID: m.WorkspaceID,
		ParentID:    m.ParentID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ToEntityWithRelations converts a GoalModel and its preloaded associations
// to a GoalWithRelations entity.
func (m *GoalModel) ToEntityWithRelations() *entity.GoalWithRelations {
	out := &entity.GoalWithRelations{
		Goal: m.ToEntity(),
	}
	if m.Parent != nil {
		out.Parent = m.Parent.ToEntity()
	}
	for _, child := range m.Children {
		out.Children = append(out.Children, child.ToEntity())
	}
	for i := range m.Metrics {
		out.Metrics = append(out.Metrics, m.Metrics[i].ToEntity())
	}
	return out
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal) *GoalModel {
	return &GoalModel{
		ID:          goal.ID,
		Title:       goal.Title,
		Description: goal.Description,
		Status:      string(goal.Status),
		Type:        string(goal.Type),
		Progress:    goal.Progress,
		StartDate:   goal.StartDate,
		EndDate:     goal.EndDate,
		OwnerID:     goal.OwnerID,
		WorkspaceID: goal.WorkspaceID,
		ParentID:    goal.ParentID,
		CreatedAt:   goal.CreatedAt,
		UpdatedAt:   goal.UpdatedAt,
	}
}
