// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Metric represents a measurable indicator attached to a goal.
type Metric struct {
	ID           uuid.UUID
	Name         string
	CurrentValue decimal.Decimal
	TargetValue  decimal.Decimal
	Unit         string
	GoalID       uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewMetric creates a new Metric entity.
func NewMetric(name string, currentValue, targetValue decimal.Decimal, unit string, goalID uuid.UUID) *Metric {
	now := time.Now().UTC()
	return &Metric{
		ID:           uuid.New(),
		Name:         name,
		CurrentValue: currentValue,
		TargetValue:  targetValue,
		Unit:         unit,
		GoalID:       goalID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
