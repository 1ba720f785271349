package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/kwesthuizen/trackdeck/internal/cli"
	"github.com/kwesthuizen/trackdeck/internal/model"
	"github.com/kwesthuizen/trackdeck/internal/report"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	flagBudgetDesigner int
	flagBudgetMisc     int

	flagPayFrom   string
	flagPayTo     string
	flagPayDate   string
	flagPaySettle bool
	flagPayID     string
)

var financesCmd = &cobra.Command{
	Use:     "finances",
	Aliases: []string{"money"},
	Short:   "Budget, payments, and profit",
	RunE:    runFinances,
}

var financesBudgetCmd = &cobra.Command{
	Use:   "budget <total>",
	Short: "Set the budget allocation",
	Args:  cobra.ExactArgs(1),
	RunE:  runFinancesBudget,
}

var financesAddCmd = &cobra.Command{
	Use:     "add <amount>",
	Aliases: []string{"pay"},
	Short:   "Record a payment (use --from for income, --to for an expense)",
	Args:    cobra.ExactArgs(1),
	RunE:    runFinancesAdd,
}

var financesSettleCmd = &cobra.Command{
	Use:   "settle <payment-id>",
	Short: "Mark a pending payment as received or paid",
	Args:  cobra.ExactArgs(1),
	RunE:  runFinancesSettle,
}

func init() {
	financesBudgetCmd.Flags().IntVar(&flagBudgetDesigner, "designer", -1, "Designer allocation")
	financesBudgetCmd.Flags().IntVar(&flagBudgetMisc, "misc", -1, "Misc expense allocation")

	financesAddCmd.Flags().StringVar(&flagPayFrom, "from", "", "Payer (income)")
	financesAddCmd.Flags().StringVar(&flagPayTo, "to", "", "Payee (expense)")
	financesAddCmd.Flags().StringVar(&flagPayDate, "date", "", "Payment date YYYY-MM-DD (default today)")
	financesAddCmd.Flags().BoolVar(&flagPaySettle, "settled", false, "Money already moved")
	financesAddCmd.Flags().StringVar(&flagPayID, "id", "", "Payment ID for task links and settling")

	financesCmd.AddCommand(financesBudgetCmd)
	financesCmd.AddCommand(financesAddCmd)
	financesCmd.AddCommand(financesSettleCmd)
	rootCmd.AddCommand(financesCmd)
}

func runFinances(_ *cobra.Command, _ []string) error {
	doc, err := loadDocument()
	if err != nil {
		return err
	}

	fin := doc.Finances
	sum := report.FinancialSummary(fin)

	fmt.Println()
	fmt.Println(cli.RenderTitle("FINANCES"))
	fmt.Println()

	rows := [][]string{
		{"Budget", cli.FormatCurrency(fin.BudgetTotal)},
		{"Allocated for you", cli.FormatCurrency(sum.Allocated)},
		{"---"},
		{"Received", cli.FormatCurrency(sum.Received)},
		{"Awaiting", cli.FormatCurrency(sum.PendingIn)},
		{"Paid out", cli.FormatCurrency(sum.PaidOut)},
		{"Owed", cli.FormatCurrency(sum.PendingOut)},
		{"---"},
		{"Profit", cli.FormatCurrency(sum.Profit)},
		{"Balance", cli.FormatCurrency(sum.Balance)},
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	// Budget breakdown bars
	fmt.Println()
	slices := report.BreakdownSlices(fin)
	maxVal := 0
	for _, s := range slices {
		if s.Value > maxVal {
			maxVal = s.Value
		}
	}
	barColors := []lipgloss.Color{cli.ColorOrange, cli.ColorBlue, cli.ColorGreen}
	for i, s := range slices {
		fmt.Println(cli.RenderHBar(s.Label, s.Value, maxVal, 14, 30, barColors[i%len(barColors)]))
	}

	// Ledger detail
	printLedger("Received", fin.Received)
	printLedger("Awaiting payment", fin.PendingIn)
	printLedger("Paid out", fin.PaidOut)
	printLedger("To be paid", fin.PendingOut)
	fmt.Println()

	return nil
}

func printLedger(title string, payments []model.Payment) {
	if len(payments) == 0 {
		return
	}
	rows := make([][]string, 0, len(payments))
	for _, p := range payments {
		rows = append(rows, []string{
			cli.FormatDate(p.Date),
			p.Counterpart(),
			string(p.Status),
			cli.FormatCurrency(p.Amount),
		})
	}
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   title,
		Headers: []string{"Date", "Who", "Status", "Amount"},
		Rows:    rows,
	}))
}

func runFinancesBudget(_ *cobra.Command, args []string) error {
	total, err := strconv.Atoi(args[0])
	if err != nil || total < 0 {
		return fmt.Errorf("budget must be a non-negative number, got %q", args[0])
	}

	doc, err := loadDocument()
	if err != nil {
		return err
	}

	doc.Finances.BudgetTotal = total
	if flagBudgetDesigner >= 0 {
		doc.Finances.DesignerTotal = flagBudgetDesigner
	}
	if flagBudgetMisc >= 0 {
		doc.Finances.ExpensesMisc = flagBudgetMisc
	}

	if err := saveDocument(doc); err != nil {
		return err
	}

	sum := report.FinancialSummary(doc.Finances)
	fmt.Printf("  Budget set to %s (allocated for you: %s)\n",
		cli.FormatCurrency(total), cli.FormatCurrency(sum.Allocated))
	return nil
}

func runFinancesAdd(_ *cobra.Command, args []string) error {
	amount, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("amount must be a number, got %q", args[0])
	}

	if (flagPayFrom == "") == (flagPayTo == "") {
		return fmt.Errorf("give exactly one of --from (income) or --to (expense)")
	}

	date := model.DateOf(time.Now())
	if flagPayDate != "" {
		date, err = model.ParseDate(flagPayDate)
		if err != nil {
			return fmt.Errorf("bad --date: %w", err)
		}
	}

	status := model.PaymentPending
	if flagPaySettle {
		if flagPayFrom != "" {
			status = model.PaymentReceived
		} else {
			status = model.PaymentPaid
		}
	}

	doc, err := loadDocument()
	if err != nil {
		return err
	}

	p := model.Payment{
		ID:     flagPayID,
		Date:   date,
		Amount: amount,
		From:   flagPayFrom,
		To:     flagPayTo,
		Status: status,
	}
	if err := doc.AddPayment(p); err != nil {
		return err
	}

	if err := saveDocument(doc); err != nil {
		return err
	}

	fmt.Printf("  Recorded %s %s %s (%s)\n",
		cli.FormatCurrency(amount), directionWord(p), p.Counterpart(), p.Status)
	return nil
}

func directionWord(p model.Payment) string {
	if p.From != "" {
		return "from"
	}
	return "to"
}

func runFinancesSettle(_ *cobra.Command, args []string) error {
	doc, err := loadDocument()
	if err != nil {
		return err
	}

	p, err := doc.SettlePayment(args[0], model.DateOf(time.Now()))
	if err != nil {
		return err
	}

	// A settled payment may unblock linked tasks.
	completed := report.ReconcilePayments(doc)

	if err := saveDocument(doc); err != nil {
		return err
	}

	fmt.Printf("  Settled %s %s %s\n", cli.FormatCurrency(p.Amount), directionWord(*p), p.Counterpart())
	for _, id := range completed {
		if t := doc.FindTask(id); t != nil {
			fmt.Printf("  Auto-completed task %d: %s\n", id, t.Description)
		}
	}
	return nil
}
