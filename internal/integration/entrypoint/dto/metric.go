package dto

import (
	"time"

	"github.com/goalflow/backend/internal/domain/entity"
)

// CreateMetricRequest represents the request body for metric creation.
type CreateMetricRequest struct {
	Name         string  `json:"name" binding:"required"`
	CurrentValue float64 `json:"current_value" binding:"min=0"`
	TargetValue  float64 `json:"target_value" binding:"min=0"`
	Unit         string  `json:"unit"`
}

// UpdateMetricRequest represents the request body for metric update.
type UpdateMetricRequest struct {
	Name         *string  `json:"name,omitempty"`
	CurrentValue *float64 `json:"current_value,omitempty" binding:"omitempty,min=0"`
	TargetValue  *float64 `json:"target_value,omitempty" binding:"omitempty,min=0"`
	Unit         *string  `json:"unit,omitempty"`
}

// MetricResponse represents a single metric in API responses.
type MetricResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	CurrentValue string    `json:"current_value"`
	TargetValue  string    `json:"target_value"`
	Unit         string    `json:"unit"`
	GoalID       string    `json:"goal_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// MetricListResponse represents the response for listing metrics.
type MetricListResponse struct {
	Metrics []MetricResponse `json:"metrics"`
}

// ToMetricResponse converts a domain Metric entity to a MetricResponse DTO.
func ToMetricResponse(m *entity.Metric) MetricResponse {
	return MetricResponse{
		ID:           m.ID.String(),
		Name:         m.Name,
		CurrentValue: m.CurrentValue.String(),
		TargetValue:  m.TargetValue.String(),
		Unit:         m.Unit,
		GoalID:       m.GoalID.String(),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// ToMetricListResponse converts a slice of metrics to a MetricListResponse DTO.
func ToMetricListResponse(metrics []*entity.Metric) MetricListResponse {
	response := MetricListResponse{Metrics: make([]MetricResponse, len(metrics))}
	for i, m := range metrics {
		response.Metrics[i] = ToMetricResponse(m)
	}
	return response
}
