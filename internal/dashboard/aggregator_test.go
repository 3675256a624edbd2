package dashboard

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/Veraticus/pocketwatch/internal/api"
	"github.com/Veraticus/pocketwatch/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unauthorized() error {
	return &api.Error{Method: "GET", Path: "/x", StatusCode: http.StatusUnauthorized}
}

func fixedNow() time.Time {
	return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
}

func newTestAggregator(fetcher api.DashboardFetcher) *Aggregator {
	agg := New(fetcher)
	agg.now = fixedNow
	return agg
}

func TestLoadReady(t *testing.T) {
	mock := api.NewMockFetcher()
	mock.GetDashboardSummaryFn = func(context.Context) (model.DashboardSummary, error) {
		return model.DashboardSummary{
			TotalBalance:       decimal.RequireFromString("100.00"),
			RecentTransactions: []model.RecentTransaction{},
		}, nil
	}
	mock.ListAccountsFn = func(context.Context) ([]model.Account, error) {
		return []model.Account{{ID: 1, Name: "Checking"}}, nil
	}

	result := newTestAggregator(mock).Load(context.Background())

	assert.Equal(t, StateReady, result.State)
	require.NotNil(t, result.Snapshot)
	assert.NoError(t, result.Err)
	assert.Equal(t, "100", result.Snapshot.Summary.TotalBalance.String())
	require.Len(t, result.Snapshot.Accounts, 1)

	// All four endpoints were hit exactly once.
	assert.Equal(t, 1, mock.SummaryCalls)
	assert.Equal(t, 1, mock.AccountsCalls)
	assert.Len(t, mock.ExpensesCalls, 1)
	assert.Len(t, mock.IncomeCalls, 1)
}

func TestLoadWindowBounds(t *testing.T) {
	mock := api.NewMockFetcher()
	result := newTestAggregator(mock).Load(context.Background())

	require.Equal(t, StateReady, result.State)
	wantEnd := fixedNow()
	wantStart := wantEnd.Add(-Window)
	assert.Equal(t, wantStart, result.Snapshot.WindowStart)
	assert.Equal(t, wantEnd, result.Snapshot.WindowEnd)

	// Both report calls got identical bounds.
	require.Len(t, mock.ExpensesCalls, 1)
	require.Len(t, mock.IncomeCalls, 1)
	assert.Equal(t, mock.ExpensesCalls[0], mock.IncomeCalls[0])
	assert.Equal(t, wantStart, mock.ExpensesCalls[0].Start)
	assert.Equal(t, wantEnd, mock.ExpensesCalls[0].End)
}

func TestLoadGuestOnUnauthorized(t *testing.T) {
	mock := api.NewMockFetcher()
	mock.GetDashboardSummaryFn = func(context.Context) (model.DashboardSummary, error) {
		return model.DashboardSummary{}, unauthorized()
	}

	result := newTestAggregator(mock).Load(context.Background())

	assert.Equal(t, StateGuest, result.State)
	assert.Nil(t, result.Snapshot)
	assert.True(t, api.IsUnauthorized(result.Err))

	// The siblings still ran; a 401 does not cancel them.
	assert.Equal(t, 1, mock.AccountsCalls)
	assert.Len(t, mock.ExpensesCalls, 1)
	assert.Len(t, mock.IncomeCalls, 1)
}

func TestLoadGuestWinsOverFailed(t *testing.T) {
	mock := api.NewMockFetcher()
	mock.ListAccountsFn = func(context.Context) ([]model.Account, error) {
		return nil, errors.New("connection refused")
	}
	mock.GetIncomeVsExpensesFn = func(context.Context, time.Time, time.Time) (model.IncomeVsExpenses, error) {
		return model.IncomeVsExpenses{}, unauthorized()
	}

	result := newTestAggregator(mock).Load(context.Background())

	assert.Equal(t, StateGuest, result.State)
	assert.True(t, api.IsUnauthorized(result.Err))
}

func TestLoadFailedOnOtherError(t *testing.T) {
	boom := errors.New("connection refused")
	mock := api.NewMockFetcher()
	mock.GetExpensesByCategoryFn = func(context.Context, time.Time, time.Time) ([]model.CategoryExpense, error) {
		return nil, boom
	}

	result := newTestAggregator(mock).Load(context.Background())

	assert.Equal(t, StateFailed, result.State)
	assert.Nil(t, result.Snapshot)
	assert.ErrorIs(t, result.Err, boom)
}

func TestLoadNeverReturnsPartialSnapshot(t *testing.T) {
	mock := api.NewMockFetcher()
	mock.ListAccountsFn = func(context.Context) ([]model.Account, error) {
		return []model.Account{{ID: 1}}, nil
	}
	mock.GetDashboardSummaryFn = func(context.Context) (model.DashboardSummary, error) {
		return model.DashboardSummary{}, errors.New("boom")
	}

	result := newTestAggregator(mock).Load(context.Background())

	assert.Equal(t, StateFailed, result.State)
	assert.Nil(t, result.Snapshot)
}

func TestClassify(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name string
		errs []error
		want State
	}{
		{"all nil", []error{nil, nil, nil, nil}, StateReady},
		{"one 401", []error{nil, unauthorized(), nil, nil}, StateGuest},
		{"one failure", []error{nil, nil, boom, nil}, StateFailed},
		{"401 beats failure", []error{boom, nil, nil, unauthorized()}, StateGuest},
		{"failure then 401", []error{unauthorized(), boom, nil, nil}, StateGuest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, err := classify(tt.errs)
			assert.Equal(t, tt.want, state)
			if tt.want == StateReady {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "ready", StateReady.String())
	assert.Equal(t, "guest", StateGuest.String())
	assert.Equal(t, "failed", StateFailed.String())
	assert.Equal(t, "unknown", State(99).String())
}

func TestSampleSnapshotIsComplete(t *testing.T) {
	snap := SampleSnapshot()

	require.NotNil(t, snap)
	assert.NotEmpty(t, snap.Accounts)
	assert.NotEmpty(t, snap.Summary.RecentTransactions)
	assert.NotEmpty(t, snap.ExpensesByCategory)
	assert.True(t, snap.WindowStart.Before(snap.WindowEnd))

	// One category row is uncategorized, one account balance is negative.
	var sawNilCategory, sawNegativeBalance bool
	for _, row := range snap.ExpensesByCategory {
		if row.CategoryID == nil {
			sawNilCategory = true
		}
	}
	for _, acct := range snap.Accounts {
		if acct.Balance.Sign() < 0 {
			sawNegativeBalance = true
		}
	}
	assert.True(t, sawNilCategory)
	assert.True(t, sawNegativeBalance)
}
