package model

// PaymentStatus is the settled/unsettled state of a ledger entry.
type PaymentStatus string

// Payment statuses. Income settles as "received", expenses as "paid".
const (
	PaymentPending  PaymentStatus = "pending"
	PaymentReceived PaymentStatus = "received"
	PaymentPaid     PaymentStatus = "paid"
)

// Valid reports whether the status is a known value.
func (s PaymentStatus) Valid() bool {
	return s == PaymentPending || s == PaymentReceived || s == PaymentPaid
}

// Settled reports whether money actually moved.
func (s PaymentStatus) Settled() bool {
	return s == PaymentReceived || s == PaymentPaid
}

// Payment is one ledger entry. Amounts are whole currency units (Rand).
// From is set on income entries, To on expense entries.
type Payment struct {
	ID     string        `json:"id,omitempty"`
	Date   Date          `json:"date"`
	Amount int           `json:"amount"`
	From   string        `json:"from,omitempty"`
	To     string        `json:"to,omitempty"`
	Status PaymentStatus `json:"status"`
}

// Counterpart returns whoever is on the other side of the payment.
func (p Payment) Counterpart() string {
	if p.From != "" {
		return p.From
	}
	return p.To
}

// Finances holds the budget allocation figures and the four payment lists.
type Finances struct {
	BudgetTotal   int       `json:"budget_total"`
	Received      []Payment `json:"received"`
	PendingIn     []Payment `json:"pending_in"`
	PaidOut       []Payment `json:"paid_out"`
	PendingOut    []Payment `json:"pending_out"`
	DesignerTotal int       `json:"designer_total"`
	ExpensesMisc  int       `json:"expenses_misc"`
}
