package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetPeriod is the recurrence window a budget covers.
type BudgetPeriod string

// Budget periods recognized by the backend.
const (
	BudgetWeekly  BudgetPeriod = "weekly"
	BudgetMonthly BudgetPeriod = "monthly"
	BudgetYearly  BudgetPeriod = "yearly"
)

// BudgetPeriods lists every valid budget period.
var BudgetPeriods = []BudgetPeriod{BudgetWeekly, BudgetMonthly, BudgetYearly}

// Valid reports whether p is a recognized budget period.
func (p BudgetPeriod) Valid() bool {
	for _, v := range BudgetPeriods {
		if p == v {
			return true
		}
	}
	return false
}

// Budget is a spending limit over a recurring period.
type Budget struct {
	ID         int64           `json:"id"`
	UserID     int64           `json:"user_id,omitempty"`
	CategoryID *int64          `json:"category_id,omitempty"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Period     BudgetPeriod    `json:"period"`
	StartDate  time.Time       `json:"start_date"`
	EndDate    *time.Time      `json:"end_date,omitempty"`
	IsActive   bool            `json:"is_active"`
	CreatedAt  time.Time       `json:"created_at,omitempty"`
	UpdatedAt  *time.Time      `json:"updated_at,omitempty"`
}

// BudgetCreate is the payload for creating a budget.
type BudgetCreate struct {
	CategoryID *int64          `json:"category_id,omitempty"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Period     BudgetPeriod    `json:"period,omitempty"`
	StartDate  string          `json:"start_date"`
	EndDate    string          `json:"end_date,omitempty"`
}

// BudgetUpdate is the payload for a partial budget update.
type BudgetUpdate struct {
	CategoryID *int64           `json:"category_id,omitempty"`
	Name       *string          `json:"name,omitempty"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`
	Period     *BudgetPeriod    `json:"period,omitempty"`
	StartDate  *string          `json:"start_date,omitempty"`
	EndDate    *string          `json:"end_date,omitempty"`
	IsActive   *bool            `json:"is_active,omitempty"`
}
