package main

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/Veraticus/pocketwatch/internal/api"
	"github.com/Veraticus/pocketwatch/internal/common"
	"github.com/Veraticus/pocketwatch/internal/config"
	"github.com/Veraticus/pocketwatch/internal/model"
	"github.com/Veraticus/pocketwatch/internal/schema"
	"github.com/Veraticus/pocketwatch/internal/session"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// newSessionStore opens the on-disk token store. When the database cannot be
// opened the CLI degrades to an in-memory store rather than refusing to run.
func newSessionStore() (session.Store, func()) {
	path := viper.GetString("session.path")
	if path == "" {
		path = config.DefaultSessionPath()
	} else {
		path = config.ExpandPath(path)
	}

	store, err := session.NewSQLiteStore(path)
	if err != nil {
		slog.Warn("Falling back to in-memory session store", "path", path, "error", err)
		return session.NewMemoryStore(), func() {}
	}
	return store, func() { _ = store.Close() }
}

func newClient() (*api.Client, func(), error) {
	store, cleanup := newSessionStore()

	client, err := api.New(api.Config{
		BaseURL: viper.GetString("api.base_url"),
	}, store)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return client, cleanup, nil
}

// withReadRetry retries idempotent reads on transport failures and 5xx
// responses. Auth failures, client errors, and malformed responses are
// returned immediately.
func withReadRetry(ctx context.Context, op func() error) error {
	opts := common.RetryOptions{
		MaxAttempts:  viper.GetInt("api.retries"),
		InitialDelay: 250 * time.Millisecond,
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 1
	}
	return common.WithRetry(ctx, op, opts, retryableRead)
}

func retryableRead(err error) bool {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500
	}
	var schemaErr *schema.Error
	if errors.As(err, &schemaErr) {
		return false
	}
	return true
}

var hundred = decimal.NewFromInt(100)

// signedAmount applies direction to a stored magnitude for display.
func signedAmount(amount decimal.Decimal, t model.TransactionType) decimal.Decimal {
	if t == model.TransactionExpense {
		return amount.Neg()
	}
	return amount
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, common.NewUserError(
			"IDs are positive integers (got "+arg+")",
			errors.New("invalid id"),
		)
	}
	return id, nil
}

func parseAmount(arg string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(arg))
	if err != nil {
		return decimal.Zero, common.NewUserError(
			"Amounts must be decimal numbers like 42.50 (got "+arg+")",
			err,
		)
	}
	return amount, nil
}

// parseDate accepts the date formats people actually type.
func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, common.NewUserError(
		"Dates must look like 2006-01-02 (got "+value+")",
		errors.New("unrecognized date"),
	)
}
