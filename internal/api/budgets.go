package api

import (
	"context"
	"fmt"

	"github.com/Veraticus/pocketwatch/internal/model"
	"github.com/Veraticus/pocketwatch/internal/schema"
)

// ListBudgets fetches every budget for the current user.
func (c *Client) ListBudgets(ctx context.Context) ([]model.Budget, error) {
	raw, err := c.get(ctx, "/budgets", nil)
	if err != nil {
		return nil, err
	}
	return schema.Budgets(raw)
}

// GetBudget fetches one budget by id.
func (c *Client) GetBudget(ctx context.Context, id int64) (model.Budget, error) {
	if err := validateID("budget", id); err != nil {
		return model.Budget{}, err
	}
	raw, err := c.get(ctx, fmt.Sprintf("/budgets/%d", id), nil)
	if err != nil {
		return model.Budget{}, err
	}
	return schema.Budget(raw)
}

// CreateBudget creates a budget and returns the backend's validated view of
// it.
func (c *Client) CreateBudget(ctx context.Context, create model.BudgetCreate) (model.Budget, error) {
	raw, err := c.postJSON(ctx, "/budgets", create)
	if err != nil {
		return model.Budget{}, err
	}
	return schema.Budget(raw)
}

// UpdateBudget applies a partial update to a budget.
func (c *Client) UpdateBudget(ctx context.Context, id int64, update model.BudgetUpdate) (model.Budget, error) {
	if err := validateID("budget", id); err != nil {
		return model.Budget{}, err
	}
	raw, err := c.putJSON(ctx, fmt.Sprintf("/budgets/%d", id), update)
	if err != nil {
		return model.Budget{}, err
	}
	return schema.Budget(raw)
}

// DeleteBudget removes a budget.
func (c *Client) DeleteBudget(ctx context.Context, id int64) error {
	if err := validateID("budget", id); err != nil {
		return err
	}
	return c.delete(ctx, fmt.Sprintf("/budgets/%d", id))
}
