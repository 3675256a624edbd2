package tui

import (
	"fmt"
	"strings"

	"github.com/Veraticus/pocketwatch/internal/cli"
	"github.com/Veraticus/pocketwatch/internal/model"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

const expenseBarWidth = 24

// View renders the current phase.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.phase {
	case phaseLoading:
		return fmt.Sprintf("\n  %s Loading dashboard...\n", m.spinner.View())
	case phaseFailed:
		return m.failedView()
	case phaseGuest:
		return m.guestBanner() + "\n" + m.snapshotView()
	default:
		return m.snapshotView()
	}
}

func (m Model) failedView() string {
	var b strings.Builder
	b.WriteString("\n  " + cli.ErrorStyle.Render("Could not load the dashboard."))
	if m.lastError != nil {
		b.WriteString("\n  " + cli.SubtleStyle.Render(m.lastError.Error()))
	}
	b.WriteString("\n\n  " + cli.SubtleStyle.Render("r: retry  •  q: quit") + "\n")
	return b.String()
}

func (m Model) guestBanner() string {
	return cli.WarningStyle.Render(
		"  Guest mode: showing sample data. Run 'pocketwatch login' to see your finances.")
}

func (m Model) snapshotView() string {
	snap := m.snapshot
	if snap == nil {
		return ""
	}

	header := cli.TitleStyle.Render("pocketwatch") + cli.SubtleStyle.Render(
		fmt.Sprintf("  %s to %s",
			snap.WindowStart.Format("Jan 2"),
			snap.WindowEnd.Format("Jan 2, 2006")))

	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		statBox("Total Balance", snap.Summary.TotalBalance),
		statBox("Month Income", snap.Summary.MonthIncome),
		statBox("Month Expenses", snap.Summary.MonthExpenses),
		statBox("Month Net", snap.Summary.MonthNet),
	)

	counts := cli.SubtleStyle.Render(fmt.Sprintf("  %d active budgets  •  %d active goals",
		snap.Summary.ActiveBudgets, snap.Summary.ActiveGoals))

	sections := []string{
		header,
		stats,
		counts,
		m.accountsView(snap.Accounts),
		m.expensesView(snap.ExpensesByCategory),
		m.recentView(snap.Summary.RecentTransactions),
		cli.SubtleStyle.Render("  r: reload  •  q: quit"),
	}

	return "\n" + strings.Join(sections, "\n\n") + "\n"
}

func statBox(label string, amount decimal.Decimal) string {
	content := cli.SubtleStyle.Render(label) + "\n" + cli.FormatMoney(amount, "USD")
	return cli.BoxStyle.Render(content)
}

func (m Model) accountsView(accounts []model.Account) string {
	var b strings.Builder
	b.WriteString("  " + cli.BoldStyle.Render("Accounts") + "\n")
	if len(accounts) == 0 {
		b.WriteString("  " + cli.SubtleStyle.Render("(none)"))
		return b.String()
	}
	for _, account := range accounts {
		b.WriteString(fmt.Sprintf("  %-28s %-12s %s\n",
			account.Name,
			cli.SubtleStyle.Render(string(account.AccountType)),
			cli.FormatMoney(account.Balance, account.Currency)))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) expensesView(rows []model.CategoryExpense) string {
	var b strings.Builder
	b.WriteString("  " + cli.BoldStyle.Render("Expenses by Category (30 days)") + "\n")
	if len(rows) == 0 {
		b.WriteString("  " + cli.SubtleStyle.Render("(no expenses)"))
		return b.String()
	}

	max := decimal.Zero
	for _, row := range rows {
		if row.Total.GreaterThan(max) {
			max = row.Total
		}
	}

	for _, row := range rows {
		label := "uncategorized"
		if row.CategoryID != nil {
			label = fmt.Sprintf("category %d", *row.CategoryID)
		}
		b.WriteString(fmt.Sprintf("  %-16s %s %s\n",
			label,
			expenseBar(row.Total, max),
			row.Total.StringFixed(2)))
	}
	return strings.TrimRight(b.String(), "\n")
}

// expenseBar renders a proportional bar; the largest category fills the
// full width.
func expenseBar(total, max decimal.Decimal) string {
	if max.Sign() <= 0 {
		return strings.Repeat(" ", expenseBarWidth)
	}
	ratio := total.InexactFloat64() / max.InexactFloat64()
	filled := int(ratio * expenseBarWidth)
	if filled < 1 {
		filled = 1
	}
	if filled > expenseBarWidth {
		filled = expenseBarWidth
	}
	bar := strings.Repeat("█", filled) + strings.Repeat(" ", expenseBarWidth-filled)
	return lipgloss.NewStyle().Foreground(cli.PrimaryColor).Render(bar)
}

func (m Model) recentView(txs []model.RecentTransaction) string {
	var b strings.Builder
	b.WriteString("  " + cli.BoldStyle.Render("Recent Transactions") + "\n")
	if len(txs) == 0 {
		b.WriteString("  " + cli.SubtleStyle.Render("(none)"))
		return b.String()
	}
	for _, tx := range txs {
		sign := "-"
		style := cli.ErrorStyle
		if tx.Type == model.TransactionIncome {
			sign = "+"
			style = cli.SuccessStyle
		}
		desc := tx.Description
		if desc == "" {
			desc = string(tx.Type)
		}
		b.WriteString(fmt.Sprintf("  %s  %-32s %s\n",
			cli.SubtleStyle.Render(tx.Date.Format("Jan 02")),
			desc,
			style.Render(sign+tx.Amount.StringFixed(2))))
	}
	return strings.TrimRight(b.String(), "\n")
}
