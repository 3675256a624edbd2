package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/Veraticus/pocketwatch/internal/model"
	"github.com/Veraticus/pocketwatch/internal/schema"
)

// ListTransactions fetches transactions for the current user, newest first,
// optionally narrowed by filter.
func (c *Client) ListTransactions(ctx context.Context, filter model.TransactionFilter) ([]model.Transaction, error) {
	query := url.Values{}
	if filter.Skip > 0 {
		query.Set("skip", strconv.Itoa(filter.Skip))
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}
	if filter.AccountID > 0 {
		query.Set("account_id", strconv.FormatInt(filter.AccountID, 10))
	}
	if filter.CategoryID > 0 {
		query.Set("category_id", strconv.FormatInt(filter.CategoryID, 10))
	}
	if !filter.StartDate.IsZero() {
		query.Set("start_date", filter.StartDate.Format(time.RFC3339))
	}
	if !filter.EndDate.IsZero() {
		query.Set("end_date", filter.EndDate.Format(time.RFC3339))
	}

	raw, err := c.get(ctx, "/transactions", query)
	if err != nil {
		return nil, err
	}
	return schema.Transactions(raw)
}

// GetTransaction fetches one transaction by id.
func (c *Client) GetTransaction(ctx context.Context, id int64) (model.Transaction, error) {
	if err := validateID("transaction", id); err != nil {
		return model.Transaction{}, err
	}
	raw, err := c.get(ctx, fmt.Sprintf("/transactions/%d", id), nil)
	if err != nil {
		return model.Transaction{}, err
	}
	return schema.Transaction(raw)
}

// CreateTransaction records a transaction and returns the backend's
// validated view of it.
func (c *Client) CreateTransaction(ctx context.Context, create model.TransactionCreate) (model.Transaction, error) {
	raw, err := c.postJSON(ctx, "/transactions", create)
	if err != nil {
		return model.Transaction{}, err
	}
	return schema.Transaction(raw)
}

// UpdateTransaction applies a partial update to a transaction.
func (c *Client) UpdateTransaction(ctx context.Context, id int64, update model.TransactionUpdate) (model.Transaction, error) {
	if err := validateID("transaction", id); err != nil {
		return model.Transaction{}, err
	}
	raw, err := c.putJSON(ctx, fmt.Sprintf("/transactions/%d", id), update)
	if err != nil {
		return model.Transaction{}, err
	}
	return schema.Transaction(raw)
}

// DeleteTransaction removes a transaction.
func (c *Client) DeleteTransaction(ctx context.Context, id int64) error {
	if err := validateID("transaction", id); err != nil {
		return err
	}
	return c.delete(ctx, fmt.Sprintf("/transactions/%d", id))
}
