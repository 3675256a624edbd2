package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType labels what kind of account this is. The backend has grown new
// types over time, so AccountType is an open string rather than a closed enum;
// the constants below are the types it ships with today.
type AccountType string

// Well-known account types.
const (
	AccountChecking   AccountType = "checking"
	AccountSavings    AccountType = "savings"
	AccountCreditCard AccountType = "credit_card"
	AccountInvestment AccountType = "investment"
	AccountLoan       AccountType = "loan"
	AccountOther      AccountType = "other"
)

// AccountTypes lists the well-known account types, for help text and
// completion. Values outside this list are still accepted.
var AccountTypes = []AccountType{
	AccountChecking,
	AccountSavings,
	AccountCreditCard,
	AccountInvestment,
	AccountLoan,
	AccountOther,
}

// Account is a financial account as returned by the backend. Balance may be
// negative; credit and loan accounts normally are.
type Account struct {
	ID          int64           `json:"id"`
	UserID      int64           `json:"user_id,omitempty"`
	Name        string          `json:"name"`
	AccountType AccountType     `json:"account_type"`
	Balance     decimal.Decimal `json:"balance"`
	Currency    string          `json:"currency"`
	Description string          `json:"description,omitempty"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at,omitempty"`
	UpdatedAt   *time.Time      `json:"updated_at,omitempty"`
}

// AccountCreate is the payload for opening an account.
type AccountCreate struct {
	Name        string          `json:"name"`
	AccountType AccountType     `json:"account_type"`
	Balance     decimal.Decimal `json:"balance"`
	Currency    string          `json:"currency,omitempty"`
	Description string          `json:"description,omitempty"`
}

// AccountUpdate is the payload for a partial account update. Nil fields are
// omitted from the request and left unchanged by the backend.
type AccountUpdate struct {
	Name        *string          `json:"name,omitempty"`
	AccountType *AccountType     `json:"account_type,omitempty"`
	Balance     *decimal.Decimal `json:"balance,omitempty"`
	Currency    *string          `json:"currency,omitempty"`
	Description *string          `json:"description,omitempty"`
	IsActive    *bool            `json:"is_active,omitempty"`
}
