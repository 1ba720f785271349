package report

import "github.com/kwesthuizen/trackdeck/internal/model"

// sumSettled adds amounts for entries whose status says the money moved.
// An entry sitting in a settled list but still marked pending does not count,
// so a payment can't be double-counted against its pending list.
func sumSettled(payments []model.Payment) int {
	total := 0
	for _, p := range payments {
		if p.Status.Settled() {
			total += p.Amount
		}
	}
	return total
}

// sumPending adds amounts for entries still marked pending.
func sumPending(payments []model.Payment) int {
	total := 0
	for _, p := range payments {
		if p.Status == model.PaymentPending {
			total += p.Amount
		}
	}
	return total
}

// FinancialSummary computes the derived ledger totals.
//
// Profit is cash-based: total expected inflows minus total committed outflows,
// the same formula on every view. Balance only counts money that actually
// moved. Allocated is the planning figure (budget minus allocations) and is
// reported separately because the two disagree in general.
func FinancialSummary(fin model.Finances) model.FinancialSummary {
	received := sumSettled(fin.Received)
	pendingIn := sumPending(fin.PendingIn)
	paidOut := sumSettled(fin.PaidOut)
	pendingOut := sumPending(fin.PendingOut)

	return model.FinancialSummary{
		Received:   received,
		PendingIn:  pendingIn,
		PaidOut:    paidOut,
		PendingOut: pendingOut,
		Profit:     (received + pendingIn) - (paidOut + pendingOut),
		Balance:    received - paidOut,
		Allocated:  fin.BudgetTotal - fin.DesignerTotal - fin.ExpensesMisc,
	}
}

// BudgetUtilization returns the fraction of the budget consumed by actual
// inflows plus actual outflows, in [0,∞). Zero budget reads as zero.
func BudgetUtilization(fin model.Finances) float64 {
	if fin.BudgetTotal <= 0 {
		return 0
	}
	s := FinancialSummary(fin)
	return float64(s.Received+s.PaidOut) / float64(fin.BudgetTotal)
}

// BreakdownSlice is one segment of the budget breakdown chart.
type BreakdownSlice struct {
	Label string
	Value int
}

// BreakdownSlices returns the designer/misc/profit chart segments. A negative
// profit is clamped to zero for display only; the summary keeps the real
// number.
func BreakdownSlices(fin model.Finances) []BreakdownSlice {
	profit := FinancialSummary(fin).Profit
	if profit < 0 {
		profit = 0
	}
	return []BreakdownSlice{
		{Label: "Designer", Value: fin.DesignerTotal},
		{Label: "Misc expenses", Value: fin.ExpensesMisc},
		{Label: "Your profit", Value: profit},
	}
}

// ReconcilePayments completes pending tasks whose linked payment has settled,
// and returns the completed task IDs. Only explicit links count; the document
// is mutated in place and still needs a save to persist.
func ReconcilePayments(doc *model.Document) []int {
	settled := make(map[string]bool)
	for _, list := range [][]model.Payment{doc.Finances.Received, doc.Finances.PaidOut} {
		for _, p := range list {
			if p.ID != "" && p.Status.Settled() {
				settled[p.ID] = true
			}
		}
	}

	var completed []int
	for i := range doc.Tasks {
		t := &doc.Tasks[i]
		if t.Status == model.TaskPending && t.LinkedPayment != "" && settled[t.LinkedPayment] {
			t.Complete()
			completed = append(completed, t.ID)
		}
	}
	return completed
}
