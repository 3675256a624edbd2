package session

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Veraticus/pocketwatch/internal/common"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStore persists the session token pair in a local SQLite database so
// a session survives process restarts. Read and write failures are logged
// and degrade to the empty-session behavior instead of surfacing; the
// Store contract is deliberately error-free.
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
	dbPath string
}

// NewSQLiteStore opens (or creates) the session database at dbPath.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("%w: session database path", common.ErrMissingConfig)
	}

	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open session database: %w", err)
	}

	// Single connection; SQLite doesn't benefit from more.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping session database: %w", err)
	}

	const schema = `
		CREATE TABLE IF NOT EXISTS session_tokens (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create session schema: %w", err)
	}

	return &SQLiteStore{
		db:     db,
		dbPath: dbPath,
		logger: slog.Default().With("component", "session"),
	}, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) get(key string) string {
	var value string
	err := s.db.QueryRow(`SELECT value FROM session_tokens WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return ""
	}
	if err != nil {
		s.logger.Warn("Failed to read session token", "key", key, "error", err)
		return ""
	}
	return value
}

func (s *SQLiteStore) set(key, value string) {
	_, err := s.db.Exec(
		`INSERT INTO session_tokens (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		s.logger.Warn("Failed to write session token", "key", key, "error", err)
	}
}

// AccessToken returns the persisted access token, or "" when no session
// exists.
func (s *SQLiteStore) AccessToken() string {
	return s.get(KeyAccessToken)
}

// RefreshToken returns the persisted refresh token, or "" when no session
// exists.
func (s *SQLiteStore) RefreshToken() string {
	return s.get(KeyRefreshToken)
}

// SetAccessToken persists the access token.
func (s *SQLiteStore) SetAccessToken(token string) {
	s.set(KeyAccessToken, token)
}

// SetRefreshToken persists the refresh token.
func (s *SQLiteStore) SetRefreshToken(token string) {
	s.set(KeyRefreshToken, token)
}

// Clear removes both tokens.
func (s *SQLiteStore) Clear() {
	if _, err := s.db.Exec(`DELETE FROM session_tokens`); err != nil {
		s.logger.Warn("Failed to clear session", "error", err)
	}
}

// Ensure SQLiteStore implements Store.
var _ Store = (*SQLiteStore)(nil)
