package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserValid(t *testing.T) {
	raw := []byte(`{
		"id": 1,
		"email": "sam@example.com",
		"username": "sam",
		"full_name": "Sam Vimes",
		"is_active": true,
		"is_superuser": false
	}`)

	user, err := User(raw)
	require.NoError(t, err)
	assert.Equal(t, "sam@example.com", user.Email)
	assert.Equal(t, "sam", user.Username)
	assert.Equal(t, "Sam Vimes", user.FullName)
	assert.True(t, user.IsActive)
}

func TestUserMissingEmail(t *testing.T) {
	_, err := User([]byte(`{"id": 1, "username": "sam"}`))

	var schemaErr *Error
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, []string{".email"}, issuePaths(schemaErr))
}

func TestTokenValid(t *testing.T) {
	raw := []byte(`{"access_token": "abc", "refresh_token": "def", "token_type": "bearer"}`)

	token, err := Token(raw)
	require.NoError(t, err)
	assert.Equal(t, "abc", token.AccessToken)
	assert.Equal(t, "def", token.RefreshToken)
	assert.Equal(t, "bearer", token.TokenType)
}

func TestTokenRequiresBothHalves(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		missing string
	}{
		{"no refresh", `{"access_token": "abc"}`, ".refresh_token"},
		{"no access", `{"refresh_token": "def"}`, ".access_token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Token([]byte(tt.raw))
			var schemaErr *Error
			require.ErrorAs(t, err, &schemaErr)
			assert.Contains(t, issuePaths(schemaErr), tt.missing)
		})
	}
}

func TestTokenTypeDefaultsToBearer(t *testing.T) {
	token, err := Token([]byte(`{"access_token": "abc", "refresh_token": "def"}`))
	require.NoError(t, err)
	assert.Equal(t, "bearer", token.TokenType)
}
