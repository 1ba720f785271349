package model

import (
	"strings"
	"testing"
)

func validDoc() *Document {
	return &Document{
		Project: Project{
			Name:        "Valid",
			CurrentWeek: 1,
			Status:      ProjectInProgress,
		},
		Tasks: []Task{
			{ID: 1, Description: "One", Week: 1, Deadline: mustDate("2025-01-06"), Status: TaskPending, Priority: PriorityLow},
			{ID: 2, Description: "Two", Week: 2, Deadline: mustDate("2025-01-13"), Status: TaskCompleted, Priority: PriorityHigh},
		},
		Finances: Finances{
			BudgetTotal: 1000,
			Received: []Payment{
				{Amount: 500, Date: mustDate("2025-01-02"), From: "Client", Status: PaymentReceived},
			},
		},
	}
}

func TestValidateAcceptsGoodDocument(t *testing.T) {
	if err := validDoc().Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Document)
		want   string // substring of the error message
	}{
		{"missing project name", func(d *Document) { d.Project.Name = "" }, "project: name"},
		{"bad project status", func(d *Document) { d.Project.Status = "paused" }, "project: status"},
		{"duplicate task id", func(d *Document) { d.Tasks[1].ID = 1 }, "not unique"},
		{"nonpositive task id", func(d *Document) { d.Tasks[0].ID = 0 }, "positive integer"},
		{"empty description", func(d *Document) { d.Tasks[0].Description = "" }, "task is required"},
		{"week too low", func(d *Document) { d.Tasks[0].Week = 0 }, "week"},
		{"week too high", func(d *Document) { d.Tasks[0].Week = TotalWeeks + 1 }, "week"},
		{"zero deadline", func(d *Document) { d.Tasks[0].Deadline = Date{} }, "deadline"},
		{"bad task status", func(d *Document) { d.Tasks[0].Status = "maybe" }, "status"},
		{"bad priority", func(d *Document) { d.Tasks[0].Priority = "extreme" }, "priority"},
		{"negative budget", func(d *Document) { d.Finances.BudgetTotal = -1 }, "budget_total"},
		{"payment without date", func(d *Document) { d.Finances.Received[0].Date = Date{} }, "date"},
		{"negative payment", func(d *Document) { d.Finances.Received[0].Amount = -10 }, "amount"},
		{"bad payment status", func(d *Document) { d.Finances.Received[0].Status = "lost" }, "status"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := validDoc()
			tc.mutate(doc)
			err := doc.Validate()
			if err == nil {
				t.Fatal("document accepted")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}
