// Package session holds the authentication token pair for the current
// client. The store is injected into the gateway at construction so the
// gateway never touches ambient global state and is testable without a real
// persistence medium.
package session

import "sync"

// Fixed storage keys for the persisted token pair. Absent keys mean
// "no session".
const (
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
)

// Store is the contract for session token persistence. Implementations must
// be safe to call before any persistence medium is available: reads return
// empty strings and writes are best-effort no-ops rather than failures.
// Token validity is never tracked client-side; the backend's response code
// is the only authority.
type Store interface {
	// AccessToken returns the current access token, or "" when no session
	// exists.
	AccessToken() string
	// RefreshToken returns the current refresh token, or "" when no session
	// exists.
	RefreshToken() string
	// SetAccessToken stores the access token. Last writer wins.
	SetAccessToken(token string)
	// SetRefreshToken stores the refresh token. Last writer wins.
	SetRefreshToken(token string)
	// Clear removes both tokens. Called on logout and on any detected
	// authorization failure.
	Clear()
}

// MemoryStore is an in-process Store. It is the default when no session
// database is configured, and the workhorse for tests.
type MemoryStore struct {
	access  string
	refresh string
	mu      sync.RWMutex
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// AccessToken returns the stored access token.
func (s *MemoryStore) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.access
}

// RefreshToken returns the stored refresh token.
func (s *MemoryStore) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refresh
}

// SetAccessToken stores the access token.
func (s *MemoryStore) SetAccessToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = token
}

// SetRefreshToken stores the refresh token.
func (s *MemoryStore) SetRefreshToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refresh = token
}

// Clear removes both tokens.
func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = ""
	s.refresh = ""
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
