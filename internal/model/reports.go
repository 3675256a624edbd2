package model

import "github.com/shopspring/decimal"

// CategoryExpense is one row of the expenses-by-category report.
// A nil CategoryID means the spending was uncategorized.
type CategoryExpense struct {
	CategoryID *int64          `json:"category_id"`
	Total      decimal.Decimal `json:"total"`
}

// IncomeVsExpenses is the income versus expenses report over a date range.
// Net is backend-authoritative and never recomputed client-side.
type IncomeVsExpenses struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Net      decimal.Decimal `json:"net"`
}
