// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/goalflow/backend/internal/domain/entity"
)

// GoalTemplateModel represents the goal_templates table in the database.
type GoalTemplateModel struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name               string     `gorm:"type:varchar(100);not null"`
	Description        string     `gorm:"type:text"`
	Type               string     `gorm:"type:varchar(20);not null"`
	Title              string     `gorm:"type:varchar(200);not null"`
	DefaultDescription string     `gorm:"type:text"`
	OwnerID            uuid.UUID  `gorm:"type:uuid;not null;index"`
	WorkspaceID        *uuid.UUID `gorm:"type:uuid;index"`
	IsPublic           bool       `gorm:"not null;default:false"`
	CreatedAt          time.Time  `gorm:"not null"`
	UpdatedAt          time.Time  `gorm:"not null"`
}

// TableName returns the table name for the GoalTemplateModel.
func (GoalTemplateModel) TableName() string {
	return "goal_templates"
}

// ToEntity converts a GoalTemplateModel to a domain GoalTemplate entity.
func (m *GoalTemplateModel) ToEntity() *entity.GoalTemplate {
	return &entity.GoalTemplate{
		ID:                 m.ID,
		Name:               m.Name,
		Description:        m.Description,
		Type:               entity.GoalType(m.Type),
		Title:              m.Title,
		DefaultDescription: m.DefaultDescription,
		OwnerID:            m.OwnerID,
		WorkspaceID:        m.WorkspaceID,
		IsPublic:           m.IsPublic,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// TemplateFromEntity creates a GoalTemplateModel from a domain GoalTemplate entity.
func TemplateFromEntity(template *entity.GoalTemplate) *GoalTemplateModel {
	return &GoalTemplateModel{
		ID:                 template.ID,
		Name:               template.Name,
		Description:        template.Description,
		Type:               string(template.Type),
		Title:              template.Title,
		DefaultDescription: template.DefaultDescription,
		OwnerID:            template.OwnerID,
		WorkspaceID:        template.WorkspaceID,
		IsPublic:           template.IsPublic,
		CreatedAt:          template.CreatedAt,
		UpdatedAt:          template.UpdatedAt,
	}
}
