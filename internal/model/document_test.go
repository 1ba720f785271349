package model

import (
	"errors"
	"testing"
)

func testDoc() *Document {
	return &Document{
		Project: Project{
			Name:        "Test Build",
			CurrentWeek: 2,
			Status:      ProjectInProgress,
		},
		Tasks: []Task{
			{ID: 1, Description: "First", Week: 1, Deadline: mustDate("2025-01-06"), Status: TaskCompleted, Assignee: "You", Priority: PriorityHigh},
			{ID: 2, Description: "Second", Week: 1, Deadline: mustDate("2025-01-07"), Status: TaskPending, Assignee: "You", Priority: PriorityMedium},
			{ID: 5, Description: "Third", Week: 2, Deadline: mustDate("2025-01-14"), Status: TaskPending, Assignee: "Dev", Priority: PriorityCritical},
		},
	}
}

func mustDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestNextTaskID(t *testing.T) {
	doc := testDoc()
	if got := doc.NextTaskID(); got != 6 {
		t.Fatalf("NextTaskID = %d, want 6 (max existing + 1)", got)
	}

	empty := &Document{}
	if got := empty.NextTaskID(); got != 1 {
		t.Fatalf("NextTaskID on empty list = %d, want 1", got)
	}
}

func TestAddTask(t *testing.T) {
	doc := testDoc()

	task, err := doc.AddTask("  Ship the thing  ", 3, mustDate("2025-01-20"), "You", PriorityHigh)
	if err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if task.ID != 6 {
		t.Errorf("new task ID = %d, want 6", task.ID)
	}
	if task.Description != "Ship the thing" {
		t.Errorf("description not trimmed: %q", task.Description)
	}
	if task.Status != TaskPending {
		t.Errorf("new task status = %q, want pending", task.Status)
	}
	if len(doc.Tasks) != 4 {
		t.Errorf("task count = %d, want 4", len(doc.Tasks))
	}
}

func TestAddTaskRejectsBadInput(t *testing.T) {
	doc := testDoc()
	before := len(doc.Tasks)

	if _, err := doc.AddTask("   ", 1, mustDate("2025-01-06"), "You", PriorityLow); !errors.Is(err, ErrEmptyDescription) {
		t.Errorf("blank description: err = %v, want ErrEmptyDescription", err)
	}
	if _, err := doc.AddTask("ok", 0, mustDate("2025-01-06"), "You", PriorityLow); !errors.Is(err, ErrBadWeek) {
		t.Errorf("week 0: err = %v, want ErrBadWeek", err)
	}
	if _, err := doc.AddTask("ok", TotalWeeks+1, mustDate("2025-01-06"), "You", PriorityLow); !errors.Is(err, ErrBadWeek) {
		t.Errorf("week %d: err = %v, want ErrBadWeek", TotalWeeks+1, err)
	}
	if _, err := doc.AddTask("ok", 1, mustDate("2025-01-06"), "You", Priority("extreme")); err == nil {
		t.Error("unknown priority accepted")
	}

	if len(doc.Tasks) != before {
		t.Fatalf("rejected input mutated the document: %d tasks, want %d", len(doc.Tasks), before)
	}
}

func TestCompleteReopenIdempotent(t *testing.T) {
	doc := testDoc()

	if err := doc.CompleteTask(2); err != nil {
		t.Fatalf("CompleteTask: %v", err)
	}
	if doc.FindTask(2).Status != TaskCompleted {
		t.Fatal("task 2 not completed")
	}

	// Completing again changes nothing
	if err := doc.CompleteTask(2); err != nil {
		t.Fatalf("second CompleteTask: %v", err)
	}
	if doc.FindTask(2).Status != TaskCompleted {
		t.Fatal("second complete flipped the status")
	}

	if err := doc.ReopenTask(2); err != nil {
		t.Fatalf("ReopenTask: %v", err)
	}
	if doc.FindTask(2).Status != TaskPending {
		t.Fatal("task 2 not reopened")
	}
	if err := doc.ReopenTask(2); err != nil {
		t.Fatalf("second ReopenTask: %v", err)
	}
	if doc.FindTask(2).Status != TaskPending {
		t.Fatal("second reopen flipped the status")
	}
}

func TestCompleteTaskNotFound(t *testing.T) {
	doc := testDoc()
	err := doc.CompleteTask(99)
	if !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("err = %v, want ErrTaskNotFound", err)
	}
}

func TestMoveTask(t *testing.T) {
	doc := testDoc()

	if err := doc.MoveTask(2, -1); err != nil {
		t.Fatalf("MoveTask up: %v", err)
	}
	if doc.Tasks[0].ID != 2 || doc.Tasks[1].ID != 1 {
		t.Fatalf("order after move = [%d %d %d]", doc.Tasks[0].ID, doc.Tasks[1].ID, doc.Tasks[2].ID)
	}

	// Moving past the top is a no-op
	if err := doc.MoveTask(2, -1); err != nil {
		t.Fatalf("MoveTask past top: %v", err)
	}
	if doc.Tasks[0].ID != 2 {
		t.Fatal("move past top changed the order")
	}

	if err := doc.MoveTask(99, 1); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("missing id: err = %v, want ErrTaskNotFound", err)
	}
}

func TestAddPaymentRouting(t *testing.T) {
	doc := &Document{}

	cases := []struct {
		name string
		p    Payment
		list func() int
	}{
		{"settled income", Payment{Amount: 100, From: "Client", Status: PaymentReceived}, func() int { return len(doc.Finances.Received) }},
		{"pending income", Payment{Amount: 100, From: "Client", Status: PaymentPending}, func() int { return len(doc.Finances.PendingIn) }},
		{"settled expense", Payment{Amount: 100, To: "Designer", Status: PaymentPaid}, func() int { return len(doc.Finances.PaidOut) }},
		{"pending expense", Payment{Amount: 100, To: "Designer", Status: PaymentPending}, func() int { return len(doc.Finances.PendingOut) }},
	}

	for _, tc := range cases {
		before := tc.list()
		if err := doc.AddPayment(tc.p); err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if tc.list() != before+1 {
			t.Errorf("%s: payment not routed to the expected list", tc.name)
		}
	}

	if err := doc.AddPayment(Payment{Amount: -5, From: "X", Status: PaymentPending}); !errors.Is(err, ErrNegativeAmount) {
		t.Fatalf("negative amount: err = %v, want ErrNegativeAmount", err)
	}
	if err := doc.AddPayment(Payment{Amount: 5, From: "X", Status: "maybe"}); err == nil {
		t.Fatal("unknown status accepted")
	}
}

func TestSettlePayment(t *testing.T) {
	doc := &Document{}
	_ = doc.AddPayment(Payment{ID: "in-1", Amount: 500, From: "Client", Status: PaymentPending})
	_ = doc.AddPayment(Payment{ID: "out-1", Amount: 200, To: "Designer", Status: PaymentPending})

	settledOn := mustDate("2025-01-10")

	p, err := doc.SettlePayment("in-1", settledOn)
	if err != nil {
		t.Fatalf("SettlePayment in: %v", err)
	}
	if p.Status != PaymentReceived {
		t.Errorf("status = %q, want received", p.Status)
	}
	if len(doc.Finances.PendingIn) != 0 || len(doc.Finances.Received) != 1 {
		t.Error("income payment not moved between lists")
	}

	p, err = doc.SettlePayment("out-1", settledOn)
	if err != nil {
		t.Fatalf("SettlePayment out: %v", err)
	}
	if p.Status != PaymentPaid {
		t.Errorf("status = %q, want paid", p.Status)
	}
	if len(doc.Finances.PendingOut) != 0 || len(doc.Finances.PaidOut) != 1 {
		t.Error("expense payment not moved between lists")
	}

	// Settling an already-settled ID returns it unchanged
	again, err := doc.SettlePayment("in-1", settledOn)
	if err != nil {
		t.Fatalf("re-settle: %v", err)
	}
	if again.Status != PaymentReceived {
		t.Error("re-settle changed the status")
	}

	if _, err := doc.SettlePayment("nope", settledOn); !errors.Is(err, ErrPaymentNotFound) {
		t.Fatalf("missing id: err = %v, want ErrPaymentNotFound", err)
	}
}
