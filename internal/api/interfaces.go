package api

import (
	"context"
	"time"

	"github.com/Veraticus/pocketwatch/internal/model"
)

// DashboardFetcher is the read surface the dashboard aggregator needs.
// This interface allows for easy mocking in tests and keeps the aggregator
// decoupled from the full gateway.
type DashboardFetcher interface {
	GetDashboardSummary(ctx context.Context) (model.DashboardSummary, error)
	ListAccounts(ctx context.Context) ([]model.Account, error)
	GetExpensesByCategory(ctx context.Context, start, end time.Time) ([]model.CategoryExpense, error)
	GetIncomeVsExpenses(ctx context.Context, start, end time.Time) (model.IncomeVsExpenses, error)
}

// Ensure Client implements DashboardFetcher.
var _ DashboardFetcher = (*Client)(nil)
