// Package stats contains the analytics use cases. Aggregations are pure
// functions over goal sets fetched into memory.
package stats

import (
	"fmt"
	"math"
	"sort"

	"github.com/goalflow/backend/internal/domain/entity"
)

// StatusCounts holds the dashboard counters.
type StatusCounts struct {
	Total     int
	Active    int
	Completed int
	Review    int
}

// MonthlyRate is the completion rate for one creation month.
type MonthlyRate struct {
	Month     string // "YYYY-MM"
	Total     int
	Completed int
	Rate      int // percent, 0-100
}

// TypeCount is the distribution entry for one goal type.
type TypeCount struct {
	Type       entity.GoalType
	Count      int
	Percentage int
}

// WeeklyProgress is the mean progress for one ISO week.
type WeeklyProgress struct {
	Week            string // "YYYY-Www"
	Count           int
	AverageProgress int
}

func countByStatus(goals []*entity.Goal) StatusCounts {
	counts := StatusCounts{Total: len(goals)}
	for _, g := range goals {
		switch g.Status {
		case entity.GoalStatusActive:
			counts.Active++
		case entity.GoalStatusCompleted:
			counts.Completed++
		case entity.GoalStatusReview:
			counts.Review++
		}
	}
	return counts
}

// recentGoals returns the n most recently updated goals.
func recentGoals(goals []*entity.Goal, n int) []*entity.Goal {
	sorted := make([]*entity.Goal, len(goals))
	copy(sorted, goals)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].UpdatedAt.After(sorted[j].UpdatedAt)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// completionRateByMonth keys goals by creation month and computes the
// completed share per month, sorted ascending by key.
func completionRateByMonth(goals []*entity.Goal) []MonthlyRate {
	byMonth := make(map[string]*MonthlyRate)
	for _, g := range goals {
		key := g.CreatedAt.Format("2006-01")
		entry, ok := byMonth[key]
		if !ok {
			entry = &MonthlyRate{Month: key}
			byMonth[key] = entry
		}
		entry.Total++
		if g.Status == entity.GoalStatusCompleted {
			entry.Completed++
		}
	}

	rates := make([]MonthlyRate, 0, len(byMonth))
	for _, entry := range byMonth {
		entry.Rate = roundPercent(entry.Completed, entry.Total)
		rates = append(rates, *entry)
	}
	sort.Slice(rates, func(i, j int) bool { return rates[i].Month < rates[j].Month })
	return rates
}

// typeDistribution counts goals per type. Percentages are rounded
// independently and need not sum to exactly 100.
func typeDistribution(goals []*entity.Goal) []TypeCount {
	byType := make(map[entity.GoalType]int)
	for _, g := range goals {
		byType[g.Type]++
	}

	order := []entity.GoalType{entity.GoalTypeQuarterly, entity.GoalTypeMonthly, entity.GoalTypeWeekly}
	dist := make([]TypeCount, 0, len(order))
	for _, t := range order {
		count, ok := byType[t]
		if !ok {
			continue
		}
		dist = append(dist, TypeCount{
			Type:       t,
			Count:      count,
			Percentage: roundPercent(count, len(goals)),
		})
	}
	return dist
}

// progressTrendByWeek keys goals by the ISO week of their last update and
// computes the mean progress per week, sorted ascending by key.
func progressTrendByWeek(goals []*entity.Goal) []WeeklyProgress {
	type bucket struct {
		sum   int
		count int
	}
	byWeek := make(map[string]*bucket)
	for _, g := range goals {
		year, week := g.UpdatedAt.ISOWeek()
		key := fmt.Sprintf("%d-W%02d", year, week)
		b, ok := byWeek[key]
		if !ok {
			b = &bucket{}
			byWeek[key] = b
		}
		b.sum += g.Progress
		b.count++
	}

	trend := make([]WeeklyProgress, 0, len(byWeek))
	for key, b := range byWeek {
		trend = append(trend, WeeklyProgress{
			Week:            key,
			Count:           b.count,
			AverageProgress: int(math.Round(float64(b.sum) / float64(b.count))),
		})
	}
	sort.Slice(trend, func(i, j int) bool { return trend[i].Week < trend[j].Week })
	return trend
}

// averageCompletionDays is the mean of (last update - start date) in whole
// days over completed goals. Returns 0 when nothing is completed.
func averageCompletionDays(goals []*entity.Goal) int {
	var totalDays float64
	var completed int
	for _, g := range goals {
		if g.Status != entity.GoalStatusCompleted {
			continue
		}
		totalDays += g.UpdatedAt.Sub(g.StartDate).Hours() / 24
		completed++
	}
	if completed == 0 {
		return 0
	}
	return int(math.Round(totalDays / float64(completed)))
}

// onTimeRate is the percentage of completed goals whose last update was on
// or before their end date. Returns 0 when nothing is completed.
func onTimeRate(goals []*entity.Goal) int {
	var completed, onTime int
	for _, g := range goals {
		if g.Status != entity.GoalStatusCompleted {
			continue
		}
		completed++
		if !g.UpdatedAt.After(g.EndDate) {
			onTime++
		}
	}
	return roundPercent(onTime, completed)
}

func averageProgress(goals []*entity.Goal) int {
	if len(goals) == 0 {
		return 0
	}
	var sum int
	for _, g := range goals {
		sum += g.Progress
	}
	return int(math.Round(float64(sum) / float64(len(goals))))
}

func roundPercent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
