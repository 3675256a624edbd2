// Package dashboard assembles the multi-endpoint dashboard view-model from
// several independent backend calls issued concurrently.
package dashboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/Veraticus/pocketwatch/internal/api"
	"github.com/Veraticus/pocketwatch/internal/model"
	"golang.org/x/sync/errgroup"
)

// Window is the trailing period both report calls cover. The same bounds go
// to both calls so the two results are comparable.
const Window = 30 * 24 * time.Hour

// State classifies the outcome of a dashboard load.
type State int

// Dashboard load outcomes. Each is terminal until the next explicit reload.
const (
	// StateReady means all four calls succeeded and Snapshot is populated.
	StateReady State = iota
	// StateGuest means the backend reported no valid credential; callers
	// render a sample experience instead of real data.
	StateGuest
	// StateFailed means something other than authorization went wrong.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateGuest:
		return "guest"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Snapshot is the merged dashboard view-model. It is only ever complete:
// a failed load never yields a partial snapshot.
type Snapshot struct {
	WindowStart        time.Time
	WindowEnd          time.Time
	Accounts           []model.Account
	ExpensesByCategory []model.CategoryExpense
	Summary            model.DashboardSummary
	IncomeVsExpenses   model.IncomeVsExpenses
}

// Result is the first-class outcome of a load: the state machine's terminal
// value plus either a snapshot (Ready) or the error that decided the
// classification (Guest, Failed).
type Result struct {
	Snapshot *Snapshot
	Err      error
	State    State
}

// Aggregator issues the four dashboard reads concurrently and joins them.
type Aggregator struct {
	fetcher api.DashboardFetcher
	logger  *slog.Logger
	now     func() time.Time
	window  time.Duration
}

// New creates an aggregator over the given fetcher.
func New(fetcher api.DashboardFetcher) *Aggregator {
	return &Aggregator{
		fetcher: fetcher,
		logger:  slog.Default().With("component", "dashboard"),
		now:     time.Now,
		window:  Window,
	}
}

// Load runs the four reads concurrently and waits for all of them. Any 401
// among the four classifies the whole load as Guest; any other failure as
// Failed. All calls run to completion: a failing sibling does not cancel
// the others, which keeps the guest classification deterministic and is
// acceptable for read-only idempotent GETs.
func (a *Aggregator) Load(ctx context.Context) Result {
	end := a.now().UTC()
	start := end.Add(-a.window)

	snap := &Snapshot{WindowStart: start, WindowEnd: end}
	var errs [4]error

	var g errgroup.Group
	g.Go(func() error {
		snap.Summary, errs[0] = a.fetcher.GetDashboardSummary(ctx)
		return nil
	})
	g.Go(func() error {
		snap.Accounts, errs[1] = a.fetcher.ListAccounts(ctx)
		return nil
	})
	g.Go(func() error {
		snap.ExpensesByCategory, errs[2] = a.fetcher.GetExpensesByCategory(ctx, start, end)
		return nil
	})
	g.Go(func() error {
		snap.IncomeVsExpenses, errs[3] = a.fetcher.GetIncomeVsExpenses(ctx, start, end)
		return nil
	})
	_ = g.Wait()

	state, err := classify(errs[:])
	if state != StateReady {
		a.logger.Debug("Dashboard load did not complete", "state", state.String(), "error", err)
		return Result{State: state, Err: err}
	}

	return Result{State: StateReady, Snapshot: snap}
}

// classify folds the per-call errors into one terminal state. Guest wins
// over Failed: if any call came back 401 the user has no valid session,
// whatever else went wrong.
func classify(errs []error) (State, error) {
	var firstErr error
	for _, err := range errs {
		if err == nil {
			continue
		}
		if api.IsUnauthorized(err) {
			return StateGuest, err
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return StateFailed, firstErr
	}
	return StateReady, nil
}
