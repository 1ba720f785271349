// Package model defines the project document and its record types.
package model

// TaskStatus is the stored state of a task. Overdue is derived, never stored.
type TaskStatus string

// Task statuses.
const (
	TaskPending   TaskStatus = "pending"
	TaskCompleted TaskStatus = "completed"
)

// Valid reports whether the status is a known value.
func (s TaskStatus) Valid() bool {
	return s == TaskPending || s == TaskCompleted
}

// Priority is a task's urgency level.
type Priority string

// Task priorities, lowest to highest.
const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Valid reports whether the priority is a known value.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// Task is a single tracked work item. IDs are unique positive integers
// assigned by the document (max existing + 1).
type Task struct {
	ID          int        `json:"id"`
	Description string     `json:"task"`
	Week        int        `json:"week"`
	Deadline    Date       `json:"deadline"`
	Status      TaskStatus `json:"status"`
	Assignee    string     `json:"assignee"`
	Priority    Priority   `json:"priority"`

	// LinkedPayment optionally ties this task to a ledger entry by payment ID,
	// so reconciliation can complete it once the payment posts.
	LinkedPayment string `json:"linked_payment,omitempty"`
}

// Complete marks the task completed. Idempotent.
func (t *Task) Complete() {
	t.Status = TaskCompleted
}

// Reopen marks the task pending again. Idempotent.
func (t *Task) Reopen() {
	t.Status = TaskPending
}
