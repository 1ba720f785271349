// Package report computes derived summaries over the project document.
// Everything here is pure: functions take the records and a clock, return
// values, and never touch disk or mutate their input.
package report

import (
	"time"

	"github.com/kwesthuizen/trackdeck/internal/model"
)

// IsOverdue reports whether a task is past its deadline. Completed tasks are
// never overdue, regardless of deadline. A deadline of "today" is not overdue.
// A zero deadline fails safe (not overdue); validation rejects malformed dates
// before they get here.
func IsOverdue(t model.Task, now time.Time) bool {
	if t.Status == model.TaskCompleted {
		return false
	}
	if t.Deadline.IsZero() {
		return false
	}
	return t.Deadline.Before(model.DateOf(now).Time)
}

// DueWithin reports whether a non-completed task's deadline falls within the
// next days calendar days (today counts as 0).
func DueWithin(t model.Task, now time.Time, days int) bool {
	if t.Status == model.TaskCompleted || t.Deadline.IsZero() {
		return false
	}
	until := t.Deadline.DaysUntil(now)
	return until >= 0 && until <= days
}

// TaskStats computes the aggregate counts over tasks. Stable for empty input.
func TaskStats(tasks []model.Task, now time.Time) model.TaskStats {
	var stats model.TaskStats
	stats.Total = len(tasks)
	for _, t := range tasks {
		if t.Status == model.TaskCompleted {
			stats.Completed++
		}
		if t.Priority == model.PriorityCritical {
			stats.Critical++
		}
		if IsOverdue(t, now) {
			stats.Overdue++
		}
	}
	stats.Pending = stats.Total - stats.Completed
	return stats
}

// Filter selects tasks. Key is one of all, pending, completed, overdue,
// critical; Week and Priority narrow further. All conditions are ANDed.
type Filter struct {
	Key      string
	Week     int            // 0 matches any week
	Priority model.Priority // "" matches any priority
}

// FilterKeys lists the supported filter keys in display order.
var FilterKeys = []string{"all", "pending", "completed", "overdue", "critical"}

// Matches reports whether the task passes the filter.
func (f Filter) Matches(t model.Task, now time.Time) bool {
	switch f.Key {
	case "", "all":
	case "pending":
		if t.Status != model.TaskPending {
			return false
		}
	case "completed":
		if t.Status != model.TaskCompleted {
			return false
		}
	case "overdue":
		if !IsOverdue(t, now) {
			return false
		}
	case "critical":
		if t.Priority != model.PriorityCritical {
			return false
		}
	default:
		return false
	}

	if f.Week != 0 && t.Week != f.Week {
		return false
	}
	if f.Priority != "" && t.Priority != f.Priority {
		return false
	}
	return true
}

// FilterTasks returns the tasks passing the filter, in original order.
func FilterTasks(tasks []model.Task, f Filter, now time.Time) []model.Task {
	var result []model.Task
	for _, t := range tasks {
		if f.Matches(t, now) {
			result = append(result, t)
		}
	}
	return result
}

// PriorityOrder partitions tasks into three stable buckets: critical first,
// then overdue tasks not already counted as critical, then the rest in their
// original order. Not a full sort.
func PriorityOrder(tasks []model.Task, now time.Time) []model.Task {
	var critical, overdue, rest []model.Task
	for _, t := range tasks {
		switch {
		case t.Priority == model.PriorityCritical:
			critical = append(critical, t)
		case IsOverdue(t, now):
			overdue = append(overdue, t)
		default:
			rest = append(rest, t)
		}
	}

	ordered := make([]model.Task, 0, len(tasks))
	ordered = append(ordered, critical...)
	ordered = append(ordered, overdue...)
	return append(ordered, rest...)
}

// WeekTasks returns the tasks scheduled for the given week, in original order.
func WeekTasks(tasks []model.Task, week int) []model.Task {
	return FilterTasks(tasks, Filter{Week: week}, time.Time{})
}

// Timeline computes per-week completion across the fixed engagement weeks.
func Timeline(doc *model.Document) []model.WeekProgress {
	weeks := make([]model.WeekProgress, model.TotalWeeks)
	for i := range weeks {
		weeks[i].Week = i + 1
		weeks[i].Current = i+1 == doc.Project.CurrentWeek
	}
	for _, t := range doc.Tasks {
		if t.Week < 1 || t.Week > model.TotalWeeks {
			continue
		}
		w := &weeks[t.Week-1]
		w.Total++
		if t.Status == model.TaskCompleted {
			w.Completed++
		}
	}
	return weeks
}

// LaunchCountdown computes whole days until the launch date, clamped at zero.
// A launch date in the past sets Launched instead of going negative. A zero
// launch date reads as launched with no days remaining.
func LaunchCountdown(p model.Project, now time.Time) model.LaunchCountdown {
	if p.LaunchDate.IsZero() {
		return model.LaunchCountdown{Launched: true}
	}
	days := p.LaunchDate.DaysUntil(now)
	if days <= 0 {
		return model.LaunchCountdown{DaysRemaining: 0, Launched: days < 0}
	}
	return model.LaunchCountdown{DaysRemaining: days}
}
