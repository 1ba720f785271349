package report

import (
	"strings"
	"testing"

	"github.com/kwesthuizen/trackdeck/internal/model"
)

func TestWeeklyUpdate(t *testing.T) {
	doc := &model.Document{
		Project: model.Project{Name: "Site Build", CurrentWeek: 1, LaunchDate: date("2024-12-15"), Status: model.ProjectInProgress},
		Tasks: []model.Task{
			{ID: 1, Description: "Kickoff call", Week: 1, Deadline: date("2024-12-03"), Status: model.TaskCompleted, Priority: model.PriorityHigh},
			{ID: 2, Description: "Approve wireframes", Week: 1, Deadline: date("2024-12-12"), Status: model.TaskPending, Priority: model.PriorityCritical},
			{ID: 3, Description: "Other week task", Week: 2, Deadline: date("2024-12-12"), Status: model.TaskCompleted, Priority: model.PriorityLow},
		},
	}

	msg := WeeklyUpdate(doc, now)

	for _, want := range []string{"Week 1 update for Site Build", "Kickoff call", "Approve wireframes", "5 days to launch"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
	if strings.Contains(msg, "Other week task") {
		t.Error("message includes a task from another week")
	}
}

func TestWeeklyUpdateEmptyWeek(t *testing.T) {
	doc := &model.Document{
		Project: model.Project{Name: "Quiet", CurrentWeek: 4, Status: model.ProjectInProgress},
	}

	msg := WeeklyUpdate(doc, now)
	if !strings.Contains(msg, "Building momentum") {
		t.Errorf("no filler for empty done list:\n%s", msg)
	}
	if !strings.Contains(msg, "All on track!") {
		t.Errorf("no filler for empty next-up list:\n%s", msg)
	}
	if !strings.Contains(msg, "We are live!") {
		t.Errorf("zero launch date should read as live:\n%s", msg)
	}
}

func TestCheckinMessage(t *testing.T) {
	doc := &model.Document{
		Project: model.Project{Name: "T", CurrentWeek: 1, Status: model.ProjectInProgress},
		Tasks: []model.Task{
			{ID: 1, Description: "Late item", Week: 1, Deadline: date("2024-12-05"), Status: model.TaskPending, Priority: model.PriorityMedium},
			{ID: 2, Description: "Critical item", Week: 1, Deadline: date("2024-12-12"), Status: model.TaskPending, Priority: model.PriorityCritical},
			{ID: 3, Description: "Done item", Week: 1, Deadline: date("2024-12-05"), Status: model.TaskCompleted, Priority: model.PriorityHigh},
		},
	}

	msg := CheckinMessage(doc, now)

	if !strings.Contains(msg, "(overdue)") {
		t.Errorf("overdue marker missing:\n%s", msg)
	}
	if strings.Contains(msg, "Done item") {
		t.Error("completed task listed in the check-in")
	}
	// Critical outranks merely overdue.
	if strings.Index(msg, "Critical item") > strings.Index(msg, "Late item") {
		t.Errorf("priority order wrong:\n%s", msg)
	}
}
