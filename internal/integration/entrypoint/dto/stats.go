package dto

import (
	"github.com/goalflow/backend/internal/application/usecase/stats"
)

// DashboardResponse represents the dashboard summary.
type DashboardResponse struct {
	Total       int            `json:"total"`
	Active      int            `json:"active"`
	Completed   int            `json:"completed"`
	Review      int            `json:"review"`
	RecentGoals []GoalResponse `json:"recent_goals"`
}

// MonthlyRateResponse represents one month's completion rate.
type MonthlyRateResponse struct {
	Month     string `json:"month"`
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
	Rate      int    `json:"rate"`
}

// TypeCountResponse represents one type's distribution entry.
type TypeCountResponse struct {
	Type       string `json:"type"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// WeeklyProgressResponse represents one week's mean progress.
type WeeklyProgressResponse struct {
	Week            string `json:"week"`
	Count           int    `json:"count"`
	AverageProgress int    `json:"average_progress"`
}

// AnalyticsResponse represents the analytics summary.
type AnalyticsResponse struct {
	CompletionByMonth     []MonthlyRateResponse    `json:"completion_by_month"`
	TypeDistribution      []TypeCountResponse      `json:"type_distribution"`
	ProgressTrend         []WeeklyProgressResponse `json:"progress_trend"`
	AverageCompletionDays int                      `json:"average_completion_days"`
	OnTimeRate            int                      `json:"on_time_rate"`
}

// MemberStatsResponse represents one member's performance numbers.
type MemberStatsResponse struct {
	UserID                string `json:"user_id"`
	Name                  string `json:"name"`
	Email                 string `json:"email"`
	Role                  string `json:"role"`
	Total                 int    `json:"total"`
	Active                int    `json:"active"`
	Completed             int    `json:"completed"`
	AverageProgress       int    `json:"average_progress"`
	AverageCompletionDays int    `json:"average_completion_days"`
	OnTimeRate            int    `json:"on_time_rate"`
}

// TeamStatsResponse represents the team performance summary.
type TeamStatsResponse struct {
	Members        []MemberStatsResponse `json:"members"`
	TeamOnTimeRate int                   `json:"team_on_time_rate"`
	TotalGoals     int                   `json:"total_goals"`
	TotalCompleted int                   `json:"total_completed"`
}

// ToDashboardResponse converts the dashboard output to its DTO.
func ToDashboardResponse(out *stats.GetDashboardOutput) DashboardResponse {
	response := DashboardResponse{
		Total:       out.Counts.Total,
		Active:      out.Counts.Active,
		Completed:   out.Counts.Completed,
		Review:      out.Counts.Review,
		RecentGoals: make([]GoalResponse, len(out.RecentGoals)),
	}
	for i, g := range out.RecentGoals {
		response.RecentGoals[i] = ToGoalResponse(g)
	}
	return response
}

// ToAnalyticsResponse converts the analytics output to its DTO.
func ToAnalyticsResponse(out *stats.GetAnalyticsOutput) AnalyticsResponse {
	response := AnalyticsResponse{
		CompletionByMonth:     make([]MonthlyRateResponse, len(out.CompletionByMonth)),
		TypeDistribution:      make([]TypeCountResponse, len(out.TypeDistribution)),
		ProgressTrend:         make([]WeeklyProgressResponse, len(out.ProgressTrend)),
		AverageCompletionDays: out.AverageCompletionDays,
		OnTimeRate:            out.OnTimeRate,
	}
	for i, m := range out.CompletionByMonth {
		response.CompletionByMonth[i] = MonthlyRateResponse{
			Month:     m.Month,
			Total:     m.Total,
			Completed: m.Completed,
			Rate:      m.Rate,
		}
	}
	for i, t := range out.TypeDistribution {
		response.TypeDistribution[i] = TypeCountResponse{
			Type:       string(t.Type),
			Count:      t.Count,
			Percentage: t.Percentage,
		}
	}
	for i, w := range out.ProgressTrend {
		response.ProgressTrend[i] = WeeklyProgressResponse{
			Week:            w.Week,
			Count:           w.Count,
			AverageProgress: w.AverageProgress,
		}
	}
	return response
}

// ToTeamStatsResponse converts the team stats output to its DTO.
func ToTeamStatsResponse(out *stats.GetTeamStatsOutput) TeamStatsResponse {
	response := TeamStatsResponse{
		Members:        make([]MemberStatsResponse, len(out.Members)),
		TeamOnTimeRate: out.TeamOnTimeRate,
		TotalGoals:     out.TotalGoals,
		TotalCompleted: out.TotalCompleted,
	}
	for i, m := range out.Members {
		response.Members[i] = MemberStatsResponse{
			UserID:                m.UserID.String(),
			Name:                  m.UserName,
			Email:                 m.UserEmail,
			Role:                  string(m.Role),
			Total:                 m.Counts.Total,
			Active:                m.Counts.Active,
			Completed:             m.Counts.Completed,
			AverageProgress:       m.AverageProgress,
			AverageCompletionDays: m.AverageCompletionDays,
			OnTimeRate:            m.OnTimeRate,
		}
	}
	return response
}
