package api

import (
	"context"
	"time"

	"github.com/Veraticus/pocketwatch/internal/model"
)

// MockFetcher is a mock implementation of DashboardFetcher for testing.
type MockFetcher struct {
	// Functions that can be set by tests to control behavior
	GetDashboardSummaryFn   func(ctx context.Context) (model.DashboardSummary, error)
	ListAccountsFn          func(ctx context.Context) ([]model.Account, error)
	GetExpensesByCategoryFn func(ctx context.Context, start, end time.Time) ([]model.CategoryExpense, error)
	GetIncomeVsExpensesFn   func(ctx context.Context, start, end time.Time) (model.IncomeVsExpenses, error)

	// Call tracking
	SummaryCalls  int
	AccountsCalls int
	ExpensesCalls []ReportCall
	IncomeCalls   []ReportCall
}

// ReportCall records the bounds a report method was called with.
type ReportCall struct {
	Start time.Time
	End   time.Time
}

// NewMockFetcher creates a new mock dashboard fetcher.
func NewMockFetcher() *MockFetcher {
	return &MockFetcher{}
}

// GetDashboardSummary implements DashboardFetcher.GetDashboardSummary.
func (m *MockFetcher) GetDashboardSummary(ctx context.Context) (model.DashboardSummary, error) {
	m.SummaryCalls++
	if m.GetDashboardSummaryFn != nil {
		return m.GetDashboardSummaryFn(ctx)
	}
	return model.DashboardSummary{}, nil
}

// ListAccounts implements DashboardFetcher.ListAccounts.
func (m *MockFetcher) ListAccounts(ctx context.Context) ([]model.Account, error) {
	m.AccountsCalls++
	if m.ListAccountsFn != nil {
		return m.ListAccountsFn(ctx)
	}
	return []model.Account{}, nil
}

// GetExpensesByCategory implements DashboardFetcher.GetExpensesByCategory.
func (m *MockFetcher) GetExpensesByCategory(ctx context.Context, start, end time.Time) ([]model.CategoryExpense, error) {
	m.ExpensesCalls = append(m.ExpensesCalls, ReportCall{Start: start, End: end})
	if m.GetExpensesByCategoryFn != nil {
		return m.GetExpensesByCategoryFn(ctx, start, end)
	}
	return []model.CategoryExpense{}, nil
}

// GetIncomeVsExpenses implements DashboardFetcher.GetIncomeVsExpenses.
func (m *MockFetcher) GetIncomeVsExpenses(ctx context.Context, start, end time.Time) (model.IncomeVsExpenses, error) {
	m.IncomeCalls = append(m.IncomeCalls, ReportCall{Start: start, End: end})
	if m.GetIncomeVsExpensesFn != nil {
		return m.GetIncomeVsExpensesFn(ctx, start, end)
	}
	return model.IncomeVsExpenses{}, nil
}

// Ensure MockFetcher implements DashboardFetcher.
var _ DashboardFetcher = (*MockFetcher)(nil)
