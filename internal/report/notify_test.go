package report

import (
	"testing"

	"github.com/kwesthuizen/trackdeck/internal/model"
)

func notifyDoc() *model.Document {
	return &model.Document{
		Project: model.Project{
			Name:        "T",
			LaunchDate:  date("2024-12-15"),
			CurrentWeek: 2,
			Status:      model.ProjectInProgress,
		},
		Tasks:    sampleTasks(),
		Finances: sampleFinances(),
	}
}

func findNote(notes []model.Notification, target string) *model.Notification {
	for i := range notes {
		if notes[i].Target == target {
			return &notes[i]
		}
	}
	return nil
}

func TestNotifications(t *testing.T) {
	notes := Notifications(notifyDoc(), now, DefaultThresholds())

	overdue := findNote(notes, "tasks")
	if overdue == nil {
		t.Fatal("no task notification")
	}
	if overdue.Severity != model.SeverityUrgent {
		t.Errorf("overdue severity = %q, want urgent", overdue.Severity)
	}

	// sampleTasks has two due within three days (today and two days out),
	// so a due-soon warning follows the overdue alert.
	dueSoon := 0
	for _, n := range notes {
		if n.Target == "tasks" && n.Severity == model.SeverityWarning {
			dueSoon++
		}
	}
	if dueSoon != 1 {
		t.Errorf("due-soon warnings = %d, want 1", dueSoon)
	}

	// Launch is five days out, within the default seven-day window.
	launch := findNote(notes, "timeline")
	if launch == nil {
		t.Fatal("no launch notification")
	}
	if launch.Severity != model.SeverityInfo {
		t.Errorf("launch severity = %q, want info", launch.Severity)
	}

	// Budget is at 32.8%, well under the 85% warning level.
	if findNote(notes, "finances") != nil {
		t.Error("budget alert fired below the warning level")
	}
}

func TestNotificationsBudgetAlert(t *testing.T) {
	doc := notifyDoc()
	doc.Finances.BudgetTotal = 18000 // 16400 used of 18000 is past 85%

	notes := Notifications(doc, now, DefaultThresholds())
	budget := findNote(notes, "finances")
	if budget == nil {
		t.Fatal("no budget notification")
	}
	if budget.Severity != model.SeverityWarning {
		t.Errorf("budget severity = %q, want warning", budget.Severity)
	}
}

func TestNotificationsAllClear(t *testing.T) {
	doc := notifyDoc()
	doc.Tasks = []model.Task{
		{ID: 1, Description: "Far out", Week: 3, Deadline: date("2024-12-30"), Status: model.TaskPending, Priority: model.PriorityLow},
	}
	doc.Project.LaunchDate = date("2025-02-01")

	notes := Notifications(doc, now, DefaultThresholds())
	if len(notes) != 0 {
		t.Fatalf("quiet document produced %d notifications: %+v", len(notes), notes)
	}
}

func TestNotificationsCustomThresholds(t *testing.T) {
	doc := notifyDoc()
	th := Thresholds{DueSoonDays: 0, BudgetWarnPct: 0.99, LaunchWarnDays: 3}

	notes := Notifications(doc, now, th)

	// Only the task due today fits a zero-day window.
	for _, n := range notes {
		if n.Severity == model.SeverityWarning && n.Target == "tasks" {
			if want := "1 Task Due Soon"; n.Title != want {
				t.Errorf("title = %q, want %q", n.Title, want)
			}
		}
	}

	// Launch is five days out, outside the narrowed three-day window.
	if findNote(notes, "timeline") != nil {
		t.Error("launch alert fired outside the window")
	}
}
