package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies the direction of money movement.
type TransactionType string

// Transaction types recognized by the backend.
const (
	TransactionIncome   TransactionType = "income"
	TransactionExpense  TransactionType = "expense"
	TransactionTransfer TransactionType = "transfer"
)

// TransactionTypes lists every valid transaction type.
var TransactionTypes = []TransactionType{
	TransactionIncome,
	TransactionExpense,
	TransactionTransfer,
}

// Valid reports whether t is a recognized transaction type.
func (t TransactionType) Valid() bool {
	for _, v := range TransactionTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Transaction is a single financial transaction as returned by the backend.
// Amount is a non-negative magnitude; Type carries the direction.
type Transaction struct {
	ID          int64           `json:"id"`
	UserID      int64           `json:"user_id,omitempty"`
	AccountID   int64           `json:"account_id"`
	CategoryID  *int64          `json:"category_id,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Type        TransactionType `json:"transaction_type"`
	Description string          `json:"description,omitempty"`
	Date        time.Time       `json:"date"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"created_at,omitempty"`
	UpdatedAt   *time.Time      `json:"updated_at,omitempty"`
}

// TransactionCreate is the payload for recording a transaction.
type TransactionCreate struct {
	AccountID   int64           `json:"account_id"`
	CategoryID  *int64          `json:"category_id,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Type        TransactionType `json:"transaction_type"`
	Description string          `json:"description,omitempty"`
	Date        time.Time       `json:"date"`
	Notes       string          `json:"notes,omitempty"`
}

// TransactionUpdate is the payload for a partial transaction update.
// Nil fields are omitted from the request and left unchanged by the backend.
type TransactionUpdate struct {
	AccountID   *int64           `json:"account_id,omitempty"`
	CategoryID  *int64           `json:"category_id,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Type        *TransactionType `json:"transaction_type,omitempty"`
	Description *string          `json:"description,omitempty"`
	Date        *time.Time       `json:"date,omitempty"`
	Notes       *string          `json:"notes,omitempty"`
}

// TransactionFilter narrows a transaction listing. Zero values are omitted
// from the query string.
type TransactionFilter struct {
	StartDate  time.Time
	EndDate    time.Time
	AccountID  int64
	CategoryID int64
	Skip       int
	Limit      int
}
