package tui

import (
	"fmt"
	"strings"

	"github.com/kwesthuizen/trackdeck/internal/cli"
	"github.com/kwesthuizen/trackdeck/internal/model"
	"github.com/kwesthuizen/trackdeck/internal/report"
	"github.com/kwesthuizen/trackdeck/internal/tui/components"
	"github.com/kwesthuizen/trackdeck/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderFinancesTab(cw int) string {
	t := theme.Active
	fin := a.doc.Finances
	sum := a.finances

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString("\n")

	cards := []struct{ Label, Value, Hint string }{
		{"Budget", cli.FormatCurrency(fin.BudgetTotal),
			"allocated " + cli.FormatCurrency(sum.Allocated)},
		{"Received", cli.FormatCurrency(sum.Received),
			"awaiting " + cli.FormatCurrency(sum.PendingIn)},
		{"Paid out", cli.FormatCurrency(sum.PaidOut),
			"owed " + cli.FormatCurrency(sum.PendingOut)},
		{"Profit", cli.FormatCurrency(sum.Profit),
			"balance " + cli.FormatCurrency(sum.Balance)},
	}
	b.WriteString(components.MetricCardRow(cards, cw-2))
	b.WriteString("\n\n ")
	b.WriteString(components.BudgetBar("Budget used", report.BudgetUtilization(fin), 12, cw-28))
	b.WriteString("\n\n")

	// Breakdown chart
	slices := report.BreakdownSlices(fin)
	rows := make([]components.HBarRow, 0, len(slices))
	colors := []lipgloss.Color{t.Orange, t.Blue, t.Green}
	for i, s := range slices {
		rows = append(rows, components.HBarRow{
			Label: s.Label,
			Value: s.Value,
			Text:  cli.FormatCurrency(s.Value),
			Color: colors[i%len(colors)],
		})
	}
	b.WriteString(components.ContentCard("Where the budget goes",
		components.HBarChart(rows, 14, components.CardInnerWidth(cw-2)-26), cw-2))
	b.WriteString("\n")

	// Ledger columns: money in, money out
	in := ledgerLines(fin.Received, fin.PendingIn)
	out := ledgerLines(fin.PaidOut, fin.PendingOut)

	half := (cw - 2) / 2
	left := components.ContentCard("Money in", in, half)
	right := components.ContentCard("Money out", out, cw-2-half)
	b.WriteString(components.CardRow([]string{left, right}))

	if len(fin.Received) == 0 && len(fin.PaidOut) == 0 {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("  No payments recorded yet."))
	}

	return b.String()
}

func ledgerLines(settled, pending []model.Payment) string {
	t := theme.Active
	okStyle := lipgloss.NewStyle().Foreground(t.Green)
	waitStyle := lipgloss.NewStyle().Foreground(t.Yellow)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var lines []string
	for _, p := range settled {
		lines = append(lines, fmt.Sprintf("%s %s  %s",
			okStyle.Render("●"),
			mutedStyle.Render(fmt.Sprintf("%-14s", truncStr(p.Counterpart(), 14))),
			cli.FormatCurrency(p.Amount)))
	}
	for _, p := range pending {
		lines = append(lines, fmt.Sprintf("%s %s  %s",
			waitStyle.Render("○"),
			mutedStyle.Render(fmt.Sprintf("%-14s", truncStr(p.Counterpart(), 14))),
			cli.FormatCurrency(p.Amount)))
	}
	if len(lines) == 0 {
		return mutedStyle.Render("nothing yet")
	}
	return strings.Join(lines, "\n")
}
