package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountValid(t *testing.T) {
	raw := []byte(`{
		"id": 1,
		"user_id": 7,
		"name": "Everyday Checking",
		"account_type": "checking",
		"balance": 100.5,
		"currency": "USD",
		"is_active": true,
		"created_at": "2024-01-15T12:00:00Z"
	}`)

	acct, err := Account(raw)
	require.NoError(t, err)

	assert.Equal(t, int64(1), acct.ID)
	assert.Equal(t, int64(7), acct.UserID)
	assert.Equal(t, "Everyday Checking", acct.Name)
	assert.Equal(t, "100.5", acct.Balance.String())
	assert.Equal(t, "USD", acct.Currency)
	assert.True(t, acct.IsActive)
}

func TestAccountTypeIsOpen(t *testing.T) {
	// Unknown account types must validate; the backend grows new ones.
	raw := []byte(`{"id": 1, "name": "x", "account_type": "CHECKING", "balance": 100.5}`)

	acct, err := Account(raw)
	require.NoError(t, err)
	assert.Equal(t, "CHECKING", string(acct.AccountType))
}

func TestAccountMissingFields(t *testing.T) {
	raw := []byte(`{"id": 1, "name": "Checking"}`)

	_, err := Account(raw)
	require.Error(t, err)

	var schemaErr *Error
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "account", schemaErr.Resource)

	paths := issuePaths(schemaErr)
	assert.Contains(t, paths, ".account_type")
	assert.Contains(t, paths, ".balance")
}

func TestAccountWrongTypes(t *testing.T) {
	raw := []byte(`{"id": "one", "name": 3, "account_type": "checking", "balance": "lots"}`)

	_, err := Account(raw)
	var schemaErr *Error
	require.ErrorAs(t, err, &schemaErr)

	paths := issuePaths(schemaErr)
	assert.Contains(t, paths, ".id")
	assert.Contains(t, paths, ".name")
	assert.Contains(t, paths, ".balance")
}

func TestAccountCurrencyDefault(t *testing.T) {
	raw := []byte(`{"id": 1, "name": "x", "account_type": "savings", "balance": 0}`)

	acct, err := Account(raw)
	require.NoError(t, err)
	assert.Equal(t, "USD", acct.Currency)
}

func TestAccountsListIndexesIssues(t *testing.T) {
	raw := []byte(`[
		{"id": 1, "name": "ok", "account_type": "checking", "balance": 10},
		{"id": 2, "account_type": "savings", "balance": 20}
	]`)

	_, err := Accounts(raw)
	var schemaErr *Error
	require.ErrorAs(t, err, &schemaErr)

	require.Len(t, schemaErr.Issues, 1)
	assert.Equal(t, "[1].name", schemaErr.Issues[0].Path)
}

func TestAccountsListNotAnArray(t *testing.T) {
	_, err := Accounts([]byte(`{"id": 1}`))
	var schemaErr *Error
	require.ErrorAs(t, err, &schemaErr)
	assert.Contains(t, err.Error(), "expected array")
}

func TestAccountInvalidJSON(t *testing.T) {
	_, err := Account([]byte(`{`))
	require.Error(t, err)

	// Malformed JSON is a decode failure, not a contract violation.
	var schemaErr *Error
	assert.False(t, errors.As(err, &schemaErr))
}

func issuePaths(e *Error) []string {
	paths := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		paths[i] = issue.Path
	}
	return paths
}
