// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// GoalTemplate is a reusable blueprint for creating goals. Templates are
// owner-scoped, optionally shared within a workspace or made public.
type GoalTemplate struct {
	ID                 uuid.UUID
	Name               string
	Description        string
	Type               GoalType
	Title              string
	DefaultDescription string
	OwnerID            uuid.UUID
	WorkspaceID        *uuid.UUID
	IsPublic           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewGoalTemplate creates a new GoalTemplate entity.
func NewGoalTemplate(name, description string, goalType GoalType, title, defaultDescription string, ownerID uuid.UUID, workspaceID *uuid.UUID, isPublic bool) *GoalTemplate {
	now := time.Now().UTC()
	return &GoalTemplate{
		ID:                 uuid.New(),
		Name:               name,
		Description:        description,
		Type:               goalType,
		Title:              title,
		DefaultDescription: defaultDescription,
		OwnerID:            ownerID,
		WorkspaceID:        workspaceID,
		IsPublic:           isPublic,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// GoalDates derives start and end dates for a goal created from the
// template: today plus one week, month or quarter depending on type.
func (t *GoalTemplate) GoalDates(now time.Time) (start, end time.Time) {
	start = now
	switch t.Type {
	case GoalTypeWeekly:
		end = now.AddDate(0, 0, 7)
	case GoalTypeMonthly:
		end = now.AddDate(0, 1, 0)
	case GoalTypeQuarterly:
		end = now.AddDate(0, 3, 0)
	default:
		end = now.AddDate(0, 1, 0)
	}
	return start, end
}
