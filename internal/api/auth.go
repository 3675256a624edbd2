package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Veraticus/pocketwatch/internal/model"
	"github.com/Veraticus/pocketwatch/internal/schema"
)

// Register creates a new user account. Registration does not log the user
// in; follow with Login.
func (c *Client) Register(ctx context.Context, reg model.Registration) (model.User, error) {
	raw, err := c.postJSON(ctx, "/auth/register", reg)
	if err != nil {
		return model.User{}, err
	}
	return schema.User(raw)
}

// Login authenticates with the backend and, on success, persists both
// credential halves into the session store before returning. This is the
// only gateway operation that writes shared state besides the 401 clear.
func (c *Client) Login(ctx context.Context, username, password string) (model.Token, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	raw, err := c.do(ctx, http.MethodPost, "/auth/login", nil,
		[]byte(form.Encode()), "application/x-www-form-urlencoded")
	if err != nil {
		return model.Token{}, err
	}

	token, err := schema.Token(raw)
	if err != nil {
		return model.Token{}, err
	}

	c.session.SetAccessToken(token.AccessToken)
	c.session.SetRefreshToken(token.RefreshToken)
	c.logger.Debug("Session established", "username", username)

	return token, nil
}

// CurrentUser fetches the authenticated user's profile. A 401 here is the
// canonical guest-mode signal.
func (c *Client) CurrentUser(ctx context.Context) (model.User, error) {
	raw, err := c.get(ctx, "/auth/me", nil)
	if err != nil {
		return model.User{}, err
	}
	return schema.User(raw)
}

// Logout clears the local session. The backend keeps no server-side session
// state, so this is purely a client operation.
func (c *Client) Logout() {
	c.session.Clear()
}
