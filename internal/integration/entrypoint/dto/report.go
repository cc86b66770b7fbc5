package dto

import (
	"github.com/goalflow/backend/internal/application/usecase/report"
)

// GenerateReportRequest represents the request body for report generation.
type GenerateReportRequest struct {
	WorkspaceID    string   `json:"workspace_id" binding:"required,uuid"`
	StartDate      *string  `json:"start_date,omitempty"`
	EndDate        *string  `json:"end_date,omitempty"`
	Statuses       []string `json:"statuses,omitempty"`
	Types          []string `json:"types,omitempty"`
	GroupBy        string   `json:"group_by,omitempty" binding:"omitempty,oneof=OWNER TYPE STATUS MONTH"`
	IncludeMetrics bool     `json:"include_metrics,omitempty"`
}

// ReportSummaryResponse represents the report's workspace-wide aggregates.
type ReportSummaryResponse struct {
	Total           int `json:"total"`
	Active          int `json:"active"`
	Completed       int `json:"completed"`
	AverageProgress int `json:"average_progress"`
	CompletionRate  int `json:"completion_rate"`
}

// ReportGroupResponse represents one group-by bucket.
type ReportGroupResponse struct {
	Key             string `json:"key"`
	Count           int    `json:"count"`
	AverageProgress int    `json:"average_progress"`
	CompletionRate  int    `json:"completion_rate"`
}

// ReportGoalResponse represents a goal row in a report, optionally with
// metrics attached.
type ReportGoalResponse struct {
	GoalResponse
	Metrics []MetricResponse `json:"metrics,omitempty"`
}

// ReportResponse represents the generated report.
type ReportResponse struct {
	Summary ReportSummaryResponse `json:"summary"`
	Groups  []ReportGroupResponse `json:"groups,omitempty"`
	Goals   []ReportGoalResponse  `json:"goals"`
}

// ToReportResponse converts the report output to its DTO.
func ToReportResponse(out *report.GenerateReportOutput) ReportResponse {
	response := ReportResponse{
		Summary: ReportSummaryResponse{
			Total:           out.Summary.Total,
			Active:          out.Summary.Active,
			Completed:       out.Summary.Completed,
			AverageProgress: out.Summary.AverageProgress,
			CompletionRate:  out.Summary.CompletionRate,
		},
		Goals: make([]ReportGoalResponse, len(out.Goals)),
	}
	for _, g := range out.Groups {
		response.Groups = append(response.Groups, ReportGroupResponse{
			Key:             g.Key,
			Count:           g.Count,
			AverageProgress: g.AverageProgress,
			CompletionRate:  g.CompletionRate,
		})
	}
	for i, g := range out.Goals {
		response.Goals[i] = ReportGoalResponse{GoalResponse: ToGoalResponse(g)}
		if metrics, ok := out.Metrics[g.ID]; ok {
			response.Goals[i].Metrics = make([]MetricResponse, len(metrics))
			for j, m := range metrics {
				response.Goals[i].Metrics[j] = ToMetricResponse(m)
			}
		}
	}
	return response
}
