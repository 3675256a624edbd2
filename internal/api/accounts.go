package api

import (
	"context"
	"fmt"

	"github.com/Veraticus/pocketwatch/internal/model"
	"github.com/Veraticus/pocketwatch/internal/schema"
)

// ListAccounts fetches every account for the current user.
func (c *Client) ListAccounts(ctx context.Context) ([]model.Account, error) {
	raw, err := c.get(ctx, "/accounts", nil)
	if err != nil {
		return nil, err
	}
	return schema.Accounts(raw)
}

// GetAccount fetches one account by id.
func (c *Client) GetAccount(ctx context.Context, id int64) (model.Account, error) {
	if err := validateID("account", id); err != nil {
		return model.Account{}, err
	}
	raw, err := c.get(ctx, fmt.Sprintf("/accounts/%d", id), nil)
	if err != nil {
		return model.Account{}, err
	}
	return schema.Account(raw)
}

// CreateAccount creates an account and returns the backend's validated view
// of it.
func (c *Client) CreateAccount(ctx context.Context, create model.AccountCreate) (model.Account, error) {
	raw, err := c.postJSON(ctx, "/accounts", create)
	if err != nil {
		return model.Account{}, err
	}
	return schema.Account(raw)
}

// UpdateAccount applies a partial update to an account.
func (c *Client) UpdateAccount(ctx context.Context, id int64, update model.AccountUpdate) (model.Account, error) {
	if err := validateID("account", id); err != nil {
		return model.Account{}, err
	}
	raw, err := c.putJSON(ctx, fmt.Sprintf("/accounts/%d", id), update)
	if err != nil {
		return model.Account{}, err
	}
	return schema.Account(raw)
}

// DeleteAccount removes an account.
func (c *Client) DeleteAccount(ctx context.Context, id int64) error {
	if err := validateID("account", id); err != nil {
		return err
	}
	return c.delete(ctx, fmt.Sprintf("/accounts/%d", id))
}
