package model

// TaskStats holds the aggregate counts over a task list.
type TaskStats struct {
	Total     int
	Completed int
	Pending   int
	Critical  int
	Overdue   int
}

// Progress returns the completion ratio in [0,1].
func (s TaskStats) Progress() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Completed) / float64(s.Total)
}

// FinancialSummary holds derived totals over the ledger.
// Profit is cash-based: total expected inflows minus total committed outflows.
// Allocated is the planning figure (budget minus allocations) and is a
// separate number on purpose; the two disagree in general.
type FinancialSummary struct {
	Received   int // settled income
	PendingIn  int // expected income not yet received
	PaidOut    int // settled expenses
	PendingOut int // committed expenses not yet paid
	Profit     int
	Balance    int // settled income minus settled expenses
	Allocated  int
}

// LaunchCountdown is the derived launch timing state.
// DaysRemaining never goes negative; a passed launch date sets Launched.
type LaunchCountdown struct {
	DaysRemaining int
	Launched      bool
}

// WeekProgress holds per-week task completion for the timeline view.
type WeekProgress struct {
	Week      int
	Total     int
	Completed int
	Current   bool
}

// Severity ranks a notification.
type Severity string

// Notification severities.
const (
	SeverityUrgent  Severity = "urgent"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Notification is a derived, informational alert. Generating one never
// mutates the document.
type Notification struct {
	Severity Severity
	Title    string
	Message  string
	Target   string // suggested navigation target: tasks, finances, timeline
}
