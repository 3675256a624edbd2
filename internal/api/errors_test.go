package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorString(t *testing.T) {
	err := &Error{Method: "GET", Path: "/accounts", StatusCode: 500, Body: "boom"}
	assert.Equal(t, "GET /accounts: unexpected status 500: boom", err.Error())

	err = &Error{Method: "DELETE", Path: "/goals/1", StatusCode: 404}
	assert.Equal(t, "DELETE /goals/1: unexpected status 404", err.Error())
}

func TestIsUnauthorized(t *testing.T) {
	tests := []struct {
		err  error
		name string
		want bool
	}{
		{&Error{StatusCode: http.StatusUnauthorized}, "401", true},
		{&Error{StatusCode: http.StatusForbidden}, "403", false},
		{&Error{StatusCode: http.StatusInternalServerError}, "500", false},
		{fmt.Errorf("wrapped: %w", &Error{StatusCode: http.StatusUnauthorized}), "wrapped 401", true},
		{fmt.Errorf("plain"), "unrelated", false},
		{nil, "nil", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUnauthorized(tt.err))
		})
	}
}
