package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoalType identifies what a savings goal is for.
type GoalType string

// Goal types recognized by the backend.
const (
	GoalSavings       GoalType = "savings"
	GoalDebtPayoff    GoalType = "debt_payoff"
	GoalPurchase      GoalType = "purchase"
	GoalEmergencyFund GoalType = "emergency_fund"
	GoalOther         GoalType = "other"
)

// GoalTypes lists every valid goal type.
var GoalTypes = []GoalType{
	GoalSavings,
	GoalDebtPayoff,
	GoalPurchase,
	GoalEmergencyFund,
	GoalOther,
}

// Valid reports whether t is a recognized goal type.
func (t GoalType) Valid() bool {
	for _, v := range GoalTypes {
		if t == v {
			return true
		}
	}
	return false
}

// GoalStatus is the lifecycle state of a goal.
type GoalStatus string

// Goal statuses recognized by the backend.
const (
	GoalActive    GoalStatus = "active"
	GoalCompleted GoalStatus = "completed"
	GoalPaused    GoalStatus = "paused"
	GoalCancelled GoalStatus = "cancelled"
)

// GoalStatuses lists every valid goal status.
var GoalStatuses = []GoalStatus{GoalActive, GoalCompleted, GoalPaused, GoalCancelled}

// Valid reports whether s is a recognized goal status.
func (s GoalStatus) Valid() bool {
	for _, v := range GoalStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Goal is a savings target being tracked against a current amount.
type Goal struct {
	ID            int64           `json:"id"`
	UserID        int64           `json:"user_id,omitempty"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	GoalType      GoalType        `json:"goal_type"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	TargetDate    *time.Time      `json:"target_date,omitempty"`
	Status        GoalStatus      `json:"status"`
	CreatedAt     time.Time       `json:"created_at,omitempty"`
	UpdatedAt     *time.Time      `json:"updated_at,omitempty"`
}

// GoalCreate is the payload for creating a goal.
type GoalCreate struct {
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	GoalType      GoalType        `json:"goal_type"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	TargetDate    string          `json:"target_date,omitempty"`
}

// GoalUpdate is the payload for a partial goal update.
type GoalUpdate struct {
	Name          *string          `json:"name,omitempty"`
	Description   *string          `json:"description,omitempty"`
	GoalType      *GoalType        `json:"goal_type,omitempty"`
	TargetAmount  *decimal.Decimal `json:"target_amount,omitempty"`
	CurrentAmount *decimal.Decimal `json:"current_amount,omitempty"`
	TargetDate    *string          `json:"target_date,omitempty"`
	Status        *GoalStatus      `json:"status,omitempty"`
}
