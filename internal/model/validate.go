package model

import "fmt"

// ValidationError describes a record rejected at the persistence boundary.
// Aggregation only ever runs over documents that passed validation.
type ValidationError struct {
	Record string // e.g. "task 3", "payment received[0]"
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s %s", e.Record, e.Field, e.Reason)
}

// Validate checks every record in the document and returns the first problem
// found. Enum values, required fields, and ID uniqueness are all enforced here
// so nothing downstream hits an unrecognized value or missing field.
func (d *Document) Validate() error {
	if err := d.Project.validate(); err != nil {
		return err
	}

	seen := make(map[int]bool, len(d.Tasks))
	for i, t := range d.Tasks {
		rec := fmt.Sprintf("task %d", t.ID)
		if t.ID <= 0 {
			return &ValidationError{Record: fmt.Sprintf("tasks[%d]", i), Field: "id", Reason: "must be a positive integer"}
		}
		if seen[t.ID] {
			return &ValidationError{Record: rec, Field: "id", Reason: "is not unique"}
		}
		seen[t.ID] = true
		if t.Description == "" {
			return &ValidationError{Record: rec, Field: "task", Reason: "is required"}
		}
		if t.Week < 1 || t.Week > TotalWeeks {
			return &ValidationError{Record: rec, Field: "week", Reason: fmt.Sprintf("must be 1..%d", TotalWeeks)}
		}
		if t.Deadline.IsZero() {
			return &ValidationError{Record: rec, Field: "deadline", Reason: "is required"}
		}
		if !t.Status.Valid() {
			return &ValidationError{Record: rec, Field: "status", Reason: fmt.Sprintf("has unknown value %q", t.Status)}
		}
		if !t.Priority.Valid() {
			return &ValidationError{Record: rec, Field: "priority", Reason: fmt.Sprintf("has unknown value %q", t.Priority)}
		}
	}

	fin := d.Finances
	if fin.BudgetTotal < 0 {
		return &ValidationError{Record: "finances", Field: "budget_total", Reason: "must not be negative"}
	}
	lists := []struct {
		name     string
		payments []Payment
	}{
		{"received", fin.Received},
		{"pending_in", fin.PendingIn},
		{"paid_out", fin.PaidOut},
		{"pending_out", fin.PendingOut},
	}
	for _, l := range lists {
		for i, p := range l.payments {
			rec := fmt.Sprintf("payment %s[%d]", l.name, i)
			if p.Date.IsZero() {
				return &ValidationError{Record: rec, Field: "date", Reason: "is required"}
			}
			if p.Amount < 0 {
				return &ValidationError{Record: rec, Field: "amount", Reason: "must not be negative"}
			}
			if !p.Status.Valid() {
				return &ValidationError{Record: rec, Field: "status", Reason: fmt.Sprintf("has unknown value %q", p.Status)}
			}
		}
	}

	return nil
}

func (p Project) validate() error {
	if p.Name == "" {
		return &ValidationError{Record: "project", Field: "name", Reason: "is required"}
	}
	if !p.Status.Valid() {
		return &ValidationError{Record: "project", Field: "status", Reason: fmt.Sprintf("has unknown value %q", p.Status)}
	}
	return nil
}
