package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecentTransaction is the trimmed transaction shape embedded in the
// dashboard summary. Unlike the full Transaction resource it carries the
// direction under the "type" key.
type RecentTransaction struct {
	ID          int64           `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Type        TransactionType `json:"type"`
	Description string          `json:"description,omitempty"`
	Date        time.Time       `json:"date"`
}

// DashboardSummary aggregates the headline numbers for the dashboard.
// MonthNet is backend-authoritative; the client never recomputes it from
// MonthIncome and MonthExpenses.
type DashboardSummary struct {
	TotalBalance       decimal.Decimal     `json:"total_balance"`
	MonthIncome        decimal.Decimal     `json:"month_income"`
	MonthExpenses      decimal.Decimal     `json:"month_expenses"`
	MonthNet           decimal.Decimal     `json:"month_net"`
	ActiveBudgets      int                 `json:"active_budgets"`
	ActiveGoals        int                 `json:"active_goals"`
	RecentTransactions []RecentTransaction `json:"recent_transactions"`
}
