// Package api provides the typed gateway client for the finance backend.
// It enforces the request/response contract through the schema validators,
// attaches the bearer credential from the injected session store, and clears
// the session on any 401 before propagating the failure unchanged.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Veraticus/pocketwatch/internal/session"
	"github.com/google/uuid"
)

// DefaultBaseURL is the local development backend address.
const DefaultBaseURL = "http://localhost:8000/api/v1"

// Config holds gateway configuration.
type Config struct {
	// BaseURL is the backend root; all endpoints are relative to it.
	// Defaults to DefaultBaseURL.
	BaseURL string
	// HTTPClient overrides the underlying client, mainly for tests.
	HTTPClient *http.Client
	// Timeout applies per request when HTTPClient is not supplied.
	Timeout time.Duration
}

// Client is the typed gateway to the finance backend. All methods take a
// context, validate their responses, and surface failures as *Error,
// *schema.Error, or a wrapped transport error. The only shared state the
// client mutates is the session store: on login success and on 401 detection.
type Client struct {
	httpClient *http.Client
	session    session.Store
	logger     *slog.Logger
	baseURL    string
}

// New creates a gateway client backed by the given session store.
func New(cfg Config, store session.Store) (*Client, error) {
	if store == nil {
		return nil, fmt.Errorf("session store is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	baseURL = strings.TrimRight(baseURL, "/")

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		session:    store,
		logger:     slog.Default().With("component", "api"),
	}, nil
}

// do issues one request with the two transport policies applied: attach the
// bearer credential when a token is present (no header at all otherwise), and
// on a 401 response clear the session before propagating the failure. There
// is deliberately no retry and no redirect: authorization failure is a
// normal state, and retries belong to callers.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body []byte, contentType string) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	if token := c.session.AccessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.logger.Debug("Request", "method", method, "path", path, "query", query.Encode())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// The credential is gone or expired. Drop the session so the next
		// call goes out unauthenticated, then let the caller see the 401.
		c.session.Clear()
		c.logger.Debug("Session cleared after 401", "method", method, "path", path)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &Error{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(respBody)),
		}
	}

	return respBody, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, query, nil, "")
}

func (c *Client) postJSON(ctx context.Context, path string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, nil, body, "application/json")
}

func (c *Client) putJSON(ctx context.Context, path string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}
	return c.do(ctx, http.MethodPut, path, nil, body, "application/json")
}

func (c *Client) delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil, nil, "")
	return err
}

// validateID rejects ids that cannot exist before a request is made.
func validateID(resource string, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%s id must be positive, got %d", resource, id)
	}
	return nil
}

// dateRangeQuery serializes optional report bounds. Zero times are omitted;
// a start after end is passed through uninterpreted, matching the backend
// contract.
func dateRangeQuery(start, end time.Time) url.Values {
	query := url.Values{}
	if !start.IsZero() {
		query.Set("start_date", start.Format(time.RFC3339))
	}
	if !end.IsZero() {
		query.Set("end_date", end.Format(time.RFC3339))
	}
	return query
}
