package api

import (
	"context"
	"time"

	"github.com/Veraticus/pocketwatch/internal/model"
	"github.com/Veraticus/pocketwatch/internal/schema"
)

// GetDashboardSummary fetches the headline dashboard numbers.
func (c *Client) GetDashboardSummary(ctx context.Context) (model.DashboardSummary, error) {
	raw, err := c.get(ctx, "/dashboard/summary", nil)
	if err != nil {
		return model.DashboardSummary{}, err
	}
	return schema.DashboardSummary(raw)
}

// GetExpensesByCategory fetches the expense breakdown by category. Zero
// bounds are omitted; the client does no date-range validation of its own,
// so start > end is passed through uninterpreted.
func (c *Client) GetExpensesByCategory(ctx context.Context, start, end time.Time) ([]model.CategoryExpense, error) {
	raw, err := c.get(ctx, "/reports/expenses-by-category", dateRangeQuery(start, end))
	if err != nil {
		return nil, err
	}
	return schema.ExpensesByCategory(raw)
}

// GetIncomeVsExpenses fetches income versus expenses over an optional date
// range, with the same pass-through bound semantics as GetExpensesByCategory.
func (c *Client) GetIncomeVsExpenses(ctx context.Context, start, end time.Time) (model.IncomeVsExpenses, error) {
	raw, err := c.get(ctx, "/reports/income-vs-expenses", dateRangeQuery(start, end))
	if err != nil {
		return model.IncomeVsExpenses{}, err
	}
	return schema.IncomeVsExpenses(raw)
}
