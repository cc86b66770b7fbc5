// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goalflow/backend/internal/domain/entity"
)

// MetricModel represents the metrics table in the database.
type MetricModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name         string          `gorm:"type:varchar(100);not null"`
	CurrentValue decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TargetValue  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Unit         string          `gorm:"type:varchar(20)"`
	GoalID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the MetricModel.
func (MetricModel) TableName() string {
	return "metrics"
}

// ToEntity converts a MetricModel to a domain Metric entity.
func (m *MetricModel) ToEntity() *entity.Metric {
	return &entity.Metric{
		ID:           m.ID,
		Name:         m.Name,
		CurrentValue: m.CurrentValue,
		TargetValue:  m.TargetValue,
		Unit:         m.Unit,
		GoalID:       m.GoalID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// MetricFromEntity creates a MetricModel from a domain Metric entity.
func MetricFromEntity(metric *entity.Metric) *MetricModel {
	return &MetricModel{
		ID:           metric.ID,
		Name:         metric.Name,
		CurrentValue: metric.CurrentValue,
		TargetValue:  metric.TargetValue,
		Unit:         metric.Unit,
		GoalID:       metric.GoalID,
		CreatedAt:    metric.CreatedAt,
		UpdatedAt:    metric.UpdatedAt,
	}
}
