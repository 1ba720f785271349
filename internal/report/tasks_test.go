package report

import (
	"testing"
	"time"

	"github.com/kwesthuizen/trackdeck/internal/model"
)

func date(s string) model.Date {
	d, err := model.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// now is mid-morning so date truncation actually matters.
var now = time.Date(2024, 12, 10, 9, 30, 0, 0, time.UTC)

func sampleTasks() []model.Task {
	return []model.Task{
		{ID: 1, Description: "Overdue pending", Week: 1, Deadline: date("2024-12-05"), Status: model.TaskPending, Priority: model.PriorityMedium},
		{ID: 2, Description: "Overdue but done", Week: 1, Deadline: date("2024-12-05"), Status: model.TaskCompleted, Priority: model.PriorityHigh},
		{ID: 3, Description: "Due today", Week: 2, Deadline: date("2024-12-10"), Status: model.TaskPending, Priority: model.PriorityLow},
		{ID: 4, Description: "Due in two days", Week: 2, Deadline: date("2024-12-12"), Status: model.TaskPending, Priority: model.PriorityCritical},
		{ID: 5, Description: "Far future", Week: 3, Deadline: date("2024-12-30"), Status: model.TaskPending, Priority: model.PriorityMedium},
	}
}

func TestIsOverdue(t *testing.T) {
	tasks := sampleTasks()

	if !IsOverdue(tasks[0], now) {
		t.Error("pending task past deadline should be overdue")
	}
	if IsOverdue(tasks[1], now) {
		t.Error("completed task must never be overdue")
	}
	if IsOverdue(tasks[2], now) {
		t.Error("a deadline of today is not overdue")
	}
	if IsOverdue(model.Task{Status: model.TaskPending}, now) {
		t.Error("zero deadline must fail safe")
	}
}

func TestDueWithin(t *testing.T) {
	tasks := sampleTasks()

	if !DueWithin(tasks[2], now, 3) {
		t.Error("due today is within 3 days")
	}
	if !DueWithin(tasks[3], now, 3) {
		t.Error("due in two days is within 3 days")
	}
	if DueWithin(tasks[4], now, 3) {
		t.Error("far future task reported as due soon")
	}
	if DueWithin(tasks[0], now, 3) {
		t.Error("overdue task counted as due soon")
	}
	if DueWithin(tasks[1], now, 30) {
		t.Error("completed task counted as due soon")
	}
}

func TestTaskStats(t *testing.T) {
	stats := TaskStats(sampleTasks(), now)

	if stats.Total != 5 {
		t.Errorf("Total = %d, want 5", stats.Total)
	}
	if stats.Completed != 1 {
		t.Errorf("Completed = %d, want 1", stats.Completed)
	}
	if stats.Pending != 4 {
		t.Errorf("Pending = %d, want 4", stats.Pending)
	}
	if stats.Completed+stats.Pending != stats.Total {
		t.Error("completed + pending != total")
	}
	if stats.Overdue != 1 {
		t.Errorf("Overdue = %d, want 1", stats.Overdue)
	}
	if stats.Critical != 1 {
		t.Errorf("Critical = %d, want 1", stats.Critical)
	}

	empty := TaskStats(nil, now)
	if empty != (model.TaskStats{}) {
		t.Errorf("empty stats = %+v, want all zero", empty)
	}
}

func TestFilterTasks(t *testing.T) {
	tasks := sampleTasks()

	cases := []struct {
		name   string
		filter Filter
		want   []int
	}{
		{"all", Filter{Key: "all"}, []int{1, 2, 3, 4, 5}},
		{"empty key means all", Filter{}, []int{1, 2, 3, 4, 5}},
		{"pending", Filter{Key: "pending"}, []int{1, 3, 4, 5}},
		{"completed", Filter{Key: "completed"}, []int{2}},
		{"overdue", Filter{Key: "overdue"}, []int{1}},
		{"critical", Filter{Key: "critical"}, []int{4}},
		{"week", Filter{Week: 2}, []int{3, 4}},
		{"priority", Filter{Priority: model.PriorityMedium}, []int{1, 5}},
		{"anded", Filter{Key: "pending", Week: 1}, []int{1}},
		{"unknown key", Filter{Key: "bogus"}, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterTasks(tasks, tc.filter, now)
			if len(got) != len(tc.want) {
				t.Fatalf("got %d tasks, want %d", len(got), len(tc.want))
			}
			for i, task := range got {
				if task.ID != tc.want[i] {
					t.Errorf("got[%d].ID = %d, want %d", i, task.ID, tc.want[i])
				}
			}
		})
	}
}

func TestPriorityOrder(t *testing.T) {
	got := PriorityOrder(sampleTasks(), now)

	// Critical first, then overdue, then the rest in original order.
	want := []int{4, 1, 2, 3, 5}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, task := range got {
		if task.ID != want[i] {
			t.Errorf("order[%d] = %d, want %d", i, task.ID, want[i])
		}
	}
}

func TestTimeline(t *testing.T) {
	doc := &model.Document{
		Project: model.Project{Name: "T", CurrentWeek: 2, Status: model.ProjectInProgress},
		Tasks:   sampleTasks(),
	}

	weeks := Timeline(doc)
	if len(weeks) != model.TotalWeeks {
		t.Fatalf("len = %d, want %d", len(weeks), model.TotalWeeks)
	}
	if weeks[0].Total != 2 || weeks[0].Completed != 1 {
		t.Errorf("week 1 = %d/%d, want 1/2", weeks[0].Completed, weeks[0].Total)
	}
	if weeks[1].Total != 2 || weeks[1].Completed != 0 {
		t.Errorf("week 2 = %d/%d, want 0/2", weeks[1].Completed, weeks[1].Total)
	}
	if !weeks[1].Current || weeks[0].Current {
		t.Error("current week marker misplaced")
	}
	if weeks[5].Total != 0 {
		t.Errorf("week 6 total = %d, want 0", weeks[5].Total)
	}
}

func TestLaunchCountdown(t *testing.T) {
	cases := []struct {
		name     string
		launch   model.Date
		wantDays int
		launched bool
	}{
		{"future", date("2024-12-15"), 5, false},
		{"today", date("2024-12-10"), 0, false},
		{"past", date("2024-12-01"), 0, true},
		{"unset", model.Date{}, 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := LaunchCountdown(model.Project{LaunchDate: tc.launch}, now)
			if got.DaysRemaining != tc.wantDays {
				t.Errorf("DaysRemaining = %d, want %d", got.DaysRemaining, tc.wantDays)
			}
			if got.Launched != tc.launched {
				t.Errorf("Launched = %v, want %v", got.Launched, tc.launched)
			}
			if got.DaysRemaining < 0 {
				t.Error("countdown went negative")
			}
		})
	}
}
