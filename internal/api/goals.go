package api

import (
	"context"
	"fmt"

	"github.com/Veraticus/pocketwatch/internal/model"
	"github.com/Veraticus/pocketwatch/internal/schema"
)

// ListGoals fetches every goal for the current user.
func (c *Client) ListGoals(ctx context.Context) ([]model.Goal, error) {
	raw, err := c.get(ctx, "/goals", nil)
	if err != nil {
		return nil, err
	}
	return schema.Goals(raw)
}

// GetGoal fetches one goal by id.
func (c *Client) GetGoal(ctx context.Context, id int64) (model.Goal, error) {
	if err := validateID("goal", id); err != nil {
		return model.Goal{}, err
	}
	raw, err := c.get(ctx, fmt.Sprintf("/goals/%d", id), nil)
	if err != nil {
		return model.Goal{}, err
	}
	return schema.Goal(raw)
}

// CreateGoal creates a goal and returns the backend's validated view of it.
func (c *Client) CreateGoal(ctx context.Context, create model.GoalCreate) (model.Goal, error) {
	raw, err := c.postJSON(ctx, "/goals", create)
	if err != nil {
		return model.Goal{}, err
	}
	return schema.Goal(raw)
}

// UpdateGoal applies a partial update to a goal.
func (c *Client) UpdateGoal(ctx context.Context, id int64, update model.GoalUpdate) (model.Goal, error) {
	if err := validateID("goal", id); err != nil {
		return model.Goal{}, err
	}
	raw, err := c.putJSON(ctx, fmt.Sprintf("/goals/%d", id), update)
	if err != nil {
		return model.Goal{}, err
	}
	return schema.Goal(raw)
}

// DeleteGoal removes a goal.
func (c *Client) DeleteGoal(ctx context.Context, id int64) error {
	if err := validateID("goal", id); err != nil {
		return err
	}
	return c.delete(ctx, fmt.Sprintf("/goals/%d", id))
}
