package schema

import (
	"testing"

	"github.com/Veraticus/pocketwatch/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudgetValid(t *testing.T) {
	raw := []byte(`{
		"id": 1,
		"name": "Groceries",
		"amount": 600,
		"period": "monthly",
		"start_date": "2024-01-01",
		"end_date": null,
		"is_active": true
	}`)

	budget, err := Budget(raw)
	require.NoError(t, err)
	assert.Equal(t, model.BudgetMonthly, budget.Period)
	assert.Nil(t, budget.EndDate)
	assert.True(t, budget.IsActive)
}

func TestBudgetInvalidPeriod(t *testing.T) {
	raw := []byte(`{"id": 1, "name": "x", "amount": 10, "period": "fortnightly", "start_date": "2024-01-01"}`)

	_, err := Budget(raw)
	var schemaErr *Error
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, []string{".period"}, issuePaths(schemaErr))
}

func TestGoalValid(t *testing.T) {
	raw := []byte(`{
		"id": 1,
		"name": "House deposit",
		"goal_type": "savings",
		"target_amount": 50000,
		"current_amount": 12000.50,
		"target_date": "2026-06-01",
		"status": "active"
	}`)

	goal, err := Goal(raw)
	require.NoError(t, err)
	assert.Equal(t, model.GoalSavings, goal.GoalType)
	assert.Equal(t, model.GoalActive, goal.Status)
	assert.Equal(t, "12000.5", goal.CurrentAmount.String())
	require.NotNil(t, goal.TargetDate)
}

func TestGoalInvalidStatus(t *testing.T) {
	raw := []byte(`{
		"id": 1, "name": "x", "goal_type": "savings",
		"target_amount": 1, "current_amount": 0, "status": "done"
	}`)

	_, err := Goal(raw)
	var schemaErr *Error
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, []string{".status"}, issuePaths(schemaErr))
	assert.Contains(t, schemaErr.Issues[0].Message, "active|completed|paused|cancelled")
}

func TestGoalsEmptyList(t *testing.T) {
	goals, err := Goals([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, goals)
}
