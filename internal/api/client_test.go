package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Veraticus/pocketwatch/internal/model"
	"github.com/Veraticus/pocketwatch/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *session.MemoryStore) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store := session.NewMemoryStore()
	client, err := New(Config{BaseURL: server.URL}, store)
	require.NoError(t, err)
	return client, store
}

func TestNewRequiresStore(t *testing.T) {
	_, err := New(Config{}, nil)
	assert.Error(t, err)
}

func TestNewTrimsTrailingSlash(t *testing.T) {
	client, _ := newTestClient(t, http.NotFoundHandler())
	client2, err := New(Config{BaseURL: client.baseURL + "/"}, session.NewMemoryStore())
	require.NoError(t, err)
	assert.Equal(t, client.baseURL, client2.baseURL)
}

func TestBearerAttachedOnlyWithToken(t *testing.T) {
	var gotAuth []string
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth, present := r.Header["Authorization"]
		if present {
			gotAuth = append(gotAuth, auth[0])
		} else {
			gotAuth = append(gotAuth, "")
		}
		_, _ = w.Write([]byte(`[]`))
	}))

	// No token: no Authorization header at all, not an empty one.
	_, err := client.ListAccounts(context.Background())
	require.NoError(t, err)

	store.SetAccessToken("abc")
	_, err = client.ListAccounts(context.Background())
	require.NoError(t, err)

	require.Len(t, gotAuth, 2)
	assert.Equal(t, "", gotAuth[0])
	assert.Equal(t, "Bearer abc", gotAuth[1])
}

func TestRequestIDHeader(t *testing.T) {
	var requestIDs []string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestIDs = append(requestIDs, r.Header.Get("X-Request-ID"))
		_, _ = w.Write([]byte(`[]`))
	}))

	_, err := client.ListAccounts(context.Background())
	require.NoError(t, err)
	_, err = client.ListAccounts(context.Background())
	require.NoError(t, err)

	require.Len(t, requestIDs, 2)
	assert.NotEmpty(t, requestIDs[0])
	assert.NotEqual(t, requestIDs[0], requestIDs[1])
}

func TestUnauthorizedClearsSession(t *testing.T) {
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"detail":"Not authenticated"}`, http.StatusUnauthorized)
	}))

	store.SetAccessToken("stale")
	store.SetRefreshToken("also-stale")

	_, err := client.ListAccounts(context.Background())
	require.Error(t, err)

	// Both credential halves are gone and the failure still surfaces.
	assert.Empty(t, store.AccessToken())
	assert.Empty(t, store.RefreshToken())
	assert.True(t, IsUnauthorized(err))
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestNonAuthErrorPreservesStatus(t *testing.T) {
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"detail":"boom"}`, http.StatusInternalServerError)
	}))
	store.SetAccessToken("abc")

	_, err := client.ListAccounts(context.Background())
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.False(t, IsUnauthorized(err))

	// A 500 must not log the user out.
	assert.Equal(t, "abc", store.AccessToken())
}

func TestLoginPersistsTokensBeforeReturning(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "sam", r.PostForm.Get("username"))
		assert.Equal(t, "hunter2", r.PostForm.Get("password"))
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		_, _ = w.Write([]byte(`{"access_token":"abc","refresh_token":"def","token_type":"bearer"}`))
	})
	mux.HandleFunc("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer abc", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"id":1,"email":"sam@example.com","username":"sam"}`))
	})

	client, store := newTestClient(t, mux)

	token, err := client.Login(context.Background(), "sam", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "abc", token.AccessToken)
	assert.Equal(t, "abc", store.AccessToken())
	assert.Equal(t, "def", store.RefreshToken())

	user, err := client.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "sam", user.Username)
}

func TestLoginRejectsPartialTokenResponse(t *testing.T) {
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"access_token":"abc"}`))
	}))

	_, err := client.Login(context.Background(), "sam", "hunter2")
	require.Error(t, err)

	// A malformed login must not establish a half-session.
	assert.Empty(t, store.AccessToken())
	assert.Empty(t, store.RefreshToken())
}

func TestLogoutIsClientSide(t *testing.T) {
	requests := 0
	client, store := newTestClient(t, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		requests++
	}))
	store.SetAccessToken("abc")

	client.Logout()
	assert.Empty(t, store.AccessToken())
	assert.Zero(t, requests)
}

func TestListTransactionsQuery(t *testing.T) {
	var gotQuery map[string][]string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`[]`))
	}))

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	_, err := client.ListTransactions(context.Background(), model.TransactionFilter{
		StartDate: start,
		EndDate:   end,
		AccountID: 3,
		Skip:      10,
		Limit:     50,
	})
	require.NoError(t, err)

	assert.Equal(t, "2024-01-01T00:00:00Z", gotQuery["start_date"][0])
	assert.Equal(t, "2024-01-31T00:00:00Z", gotQuery["end_date"][0])
	assert.Equal(t, "3", gotQuery["account_id"][0])
	assert.Equal(t, "10", gotQuery["skip"][0])
	assert.Equal(t, "50", gotQuery["limit"][0])
	assert.NotContains(t, gotQuery, "category_id")
}

func TestReportRangePassedThroughUninterpreted(t *testing.T) {
	var gotQuery map[string][]string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`[]`))
	}))

	// start after end is the backend's problem, not ours.
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := client.GetExpensesByCategory(context.Background(), start, end)
	require.NoError(t, err)

	assert.Equal(t, "2024-06-01T00:00:00Z", gotQuery["start_date"][0])
	assert.Equal(t, "2024-01-01T00:00:00Z", gotQuery["end_date"][0])
}

func TestReportRangeOmitsZeroBounds(t *testing.T) {
	var gotQuery map[string][]string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"income":0,"expenses":0,"net":0}`))
	}))

	_, err := client.GetIncomeVsExpenses(context.Background(), time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Empty(t, gotQuery)
}

func TestValidateIDRejectsNonPositive(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("no request should be made for an invalid id")
	}))

	_, err := client.GetAccount(context.Background(), 0)
	assert.Error(t, err)
	_, err = client.GetTransaction(context.Background(), -5)
	assert.Error(t, err)
	err = client.DeleteGoal(context.Background(), 0)
	assert.Error(t, err)
}

func TestMalformedResponseIsSchemaError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"not-a-number","name":"x","account_type":"checking","balance":1}]`))
	}))

	_, err := client.ListAccounts(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[0].id")
}

func TestContextCancellation(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.ListAccounts(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
}
