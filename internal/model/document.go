package model

import (
	"errors"
	"fmt"
	"strings"
)

// TotalWeeks is the fixed length of the engagement timeline.
const TotalWeeks = 6

// ProjectStatus is the overall engagement state.
type ProjectStatus string

// Project statuses.
const (
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectOnHold     ProjectStatus = "on_hold"
	ProjectCompleted  ProjectStatus = "completed"
)

// Valid reports whether the status is a known value.
func (s ProjectStatus) Valid() bool {
	return s == ProjectInProgress || s == ProjectOnHold || s == ProjectCompleted
}

// Project holds the single engagement being tracked.
type Project struct {
	Name        string        `json:"name"`
	Client      string        `json:"client"`
	StartDate   Date          `json:"start_date"`
	LaunchDate  Date          `json:"launch_date"`
	CurrentWeek int           `json:"current_week"`
	Status      ProjectStatus `json:"status"`
}

// Contact is static reference data for a person on the project.
type Contact struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Notes string `json:"notes,omitempty"`
}

// Communication is a reusable message template.
type Communication struct {
	Name     string `json:"name"`
	Audience string `json:"audience"`
	Body     string `json:"body"`
}

// Document is the whole persisted state. It is loaded at the start of every
// interaction and written back wholesale after any mutation.
type Document struct {
	Project        Project         `json:"project"`
	Tasks          []Task          `json:"tasks"`
	Finances       Finances        `json:"finances"`
	Contacts       []Contact       `json:"contacts"`
	Communications []Communication `json:"communications"`
}

// Input errors, rejected before any mutation happens.
var (
	ErrEmptyDescription = errors.New("task description is empty")
	ErrTaskNotFound     = errors.New("task not found")
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrBadWeek          = fmt.Errorf("week must be between 1 and %d", TotalWeeks)
	ErrNegativeAmount   = errors.New("amount must not be negative")
)

// NextTaskID returns max existing ID + 1 (1 for an empty list).
func (d *Document) NextTaskID() int {
	maxID := 0
	for _, t := range d.Tasks {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	return maxID + 1
}

// AddTask validates the fields, assigns an ID, and appends the task.
// The document is unchanged when an error is returned.
func (d *Document) AddTask(description string, week int, deadline Date, assignee string, priority Priority) (*Task, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyDescription
	}
	if week < 1 || week > TotalWeeks {
		return nil, ErrBadWeek
	}
	if !priority.Valid() {
		return nil, fmt.Errorf("unknown priority %q", priority)
	}

	task := Task{
		ID:          d.NextTaskID(),
		Description: description,
		Week:        week,
		Deadline:    deadline,
		Status:      TaskPending,
		Assignee:    assignee,
		Priority:    priority,
	}
	d.Tasks = append(d.Tasks, task)
	return &d.Tasks[len(d.Tasks)-1], nil
}

// FindTask returns the task with the given ID, or nil.
func (d *Document) FindTask(id int) *Task {
	for i := range d.Tasks {
		if d.Tasks[i].ID == id {
			return &d.Tasks[i]
		}
	}
	return nil
}

// CompleteTask marks a task completed. Idempotent.
func (d *Document) CompleteTask(id int) error {
	t := d.FindTask(id)
	if t == nil {
		return fmt.Errorf("%w: id %d", ErrTaskNotFound, id)
	}
	t.Complete()
	return nil
}

// ReopenTask marks a task pending again. Idempotent.
func (d *Document) ReopenTask(id int) error {
	t := d.FindTask(id)
	if t == nil {
		return fmt.Errorf("%w: id %d", ErrTaskNotFound, id)
	}
	t.Reopen()
	return nil
}

// MoveTask shifts a task one position up (delta -1) or down (delta +1) in the
// list order. Moves past either end are no-ops.
func (d *Document) MoveTask(id, delta int) error {
	idx := -1
	for i := range d.Tasks {
		if d.Tasks[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: id %d", ErrTaskNotFound, id)
	}

	target := idx + delta
	if target < 0 || target >= len(d.Tasks) {
		return nil
	}
	d.Tasks[idx], d.Tasks[target] = d.Tasks[target], d.Tasks[idx]
	return nil
}

// AddPayment validates and appends a payment to the list selected by its
// direction and status: settled income to received, unsettled to pending_in,
// and likewise for expenses.
func (d *Document) AddPayment(p Payment) error {
	if p.Amount < 0 {
		return ErrNegativeAmount
	}
	if !p.Status.Valid() {
		return fmt.Errorf("unknown payment status %q", p.Status)
	}

	fin := &d.Finances
	switch {
	case p.From != "" && p.Status == PaymentReceived:
		fin.Received = append(fin.Received, p)
	case p.From != "":
		fin.PendingIn = append(fin.PendingIn, p)
	case p.Status == PaymentPaid:
		fin.PaidOut = append(fin.PaidOut, p)
	default:
		fin.PendingOut = append(fin.PendingOut, p)
	}
	return nil
}

// SettlePayment marks the pending payment with the given ID as settled and
// moves it to the matching settled list. Idempotent for already-settled IDs.
func (d *Document) SettlePayment(id string, settledOn Date) (*Payment, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty id", ErrPaymentNotFound)
	}

	fin := &d.Finances

	for i := range fin.PendingIn {
		if fin.PendingIn[i].ID == id {
			p := fin.PendingIn[i]
			p.Status = PaymentReceived
			p.Date = settledOn
			fin.PendingIn = append(fin.PendingIn[:i], fin.PendingIn[i+1:]...)
			fin.Received = append(fin.Received, p)
			return &fin.Received[len(fin.Received)-1], nil
		}
	}
	for i := range fin.PendingOut {
		if fin.PendingOut[i].ID == id {
			p := fin.PendingOut[i]
			p.Status = PaymentPaid
			p.Date = settledOn
			fin.PendingOut = append(fin.PendingOut[:i], fin.PendingOut[i+1:]...)
			fin.PaidOut = append(fin.PaidOut, p)
			return &fin.PaidOut[len(fin.PaidOut)-1], nil
		}
	}

	for _, list := range [][]Payment{fin.Received, fin.PaidOut} {
		for i := range list {
			if list[i].ID == id {
				return &list[i], nil
			}
		}
	}

	return nil, fmt.Errorf("%w: id %q", ErrPaymentNotFound, id)
}
