package schema

import (
	"testing"

	"github.com/Veraticus/pocketwatch/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validSummary = `{
	"total_balance": 12500.00,
	"month_income": 4200.00,
	"month_expenses": 2850.00,
	"month_net": 1350.00,
	"active_budgets": 3,
	"active_goals": 2,
	"recent_transactions": [
		{"id": 3, "amount": 82.50, "type": "expense", "description": "Groceries", "date": "2024-01-15"},
		{"id": 2, "amount": 2100.00, "type": "income", "description": "Paycheck", "date": "2024-01-12"}
	]
}`

func TestDashboardSummaryValid(t *testing.T) {
	summary, err := DashboardSummary([]byte(validSummary))
	require.NoError(t, err)

	assert.Equal(t, "12500", summary.TotalBalance.String())
	assert.Equal(t, 3, summary.ActiveBudgets)
	assert.Equal(t, 2, summary.ActiveGoals)
	require.Len(t, summary.RecentTransactions, 2)
	assert.Equal(t, model.TransactionExpense, summary.RecentTransactions[0].Type)
	assert.Equal(t, "Paycheck", summary.RecentTransactions[1].Description)
}

func TestDashboardSummaryNetIsNotRecomputed(t *testing.T) {
	// month_net that disagrees with income minus expenses still validates;
	// the backend owns that arithmetic.
	raw := []byte(`{
		"total_balance": 0, "month_income": 100, "month_expenses": 40,
		"month_net": 999, "active_budgets": 0, "active_goals": 0,
		"recent_transactions": []
	}`)

	summary, err := DashboardSummary(raw)
	require.NoError(t, err)
	assert.Equal(t, "999", summary.MonthNet.String())
}

func TestDashboardSummaryNestedIssuePaths(t *testing.T) {
	raw := []byte(`{
		"total_balance": 0, "month_income": 0, "month_expenses": 0,
		"month_net": 0, "active_budgets": 0, "active_goals": 0,
		"recent_transactions": [
			{"id": 1, "amount": 5, "type": "expense", "date": "2024-01-15"},
			{"id": 2, "amount": 5, "type": "debit", "date": "2024-01-15"}
		]
	}`)

	_, err := DashboardSummary(raw)
	var schemaErr *Error
	require.ErrorAs(t, err, &schemaErr)
	require.Len(t, schemaErr.Issues, 1)
	assert.Equal(t, ".recent_transactions[1].type", schemaErr.Issues[0].Path)
}

func TestDashboardSummaryMissingRecentTransactions(t *testing.T) {
	raw := []byte(`{
		"total_balance": 0, "month_income": 0, "month_expenses": 0,
		"month_net": 0, "active_budgets": 0, "active_goals": 0
	}`)

	_, err := DashboardSummary(raw)
	var schemaErr *Error
	require.ErrorAs(t, err, &schemaErr)
	assert.Contains(t, issuePaths(schemaErr), ".recent_transactions")
}

func TestExpensesByCategory(t *testing.T) {
	raw := []byte(`[
		{"category_id": 1, "total": 640.00},
		{"category_id": null, "total": 120.00}
	]`)

	rows, err := ExpensesByCategory(raw)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.NotNil(t, rows[0].CategoryID)
	assert.Equal(t, int64(1), *rows[0].CategoryID)
	assert.Nil(t, rows[1].CategoryID)
	assert.Equal(t, "120", rows[1].Total.String())
}

func TestIncomeVsExpenses(t *testing.T) {
	report, err := IncomeVsExpenses([]byte(`{"income": 4200, "expenses": 2850, "net": 1350}`))
	require.NoError(t, err)
	assert.Equal(t, "1350", report.Net.String())

	_, err = IncomeVsExpenses([]byte(`{"income": 4200, "expenses": 2850}`))
	var schemaErr *Error
	require.ErrorAs(t, err, &schemaErr)
	assert.Contains(t, issuePaths(schemaErr), ".net")
}
