package session

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	// Import sqlite driver for database/sql package
	_ "modernc.org/sqlite"
)

const addressKey = "connected_address"

// Store persists the last-connected address across restarts.
type Store interface {
	// LoadAddress returns the persisted address, or "" when none is stored.
	LoadAddress(ctx context.Context) (string, error)

	// SaveAddress persists address, replacing any previous value.
	SaveAddress(ctx context.Context, address string) error

	// ClearAddress removes the persisted address.
	ClearAddress(ctx context.Context) error
}

// OpenDatabase opens (and migrates) the local sqlite database at path.
func OpenDatabase(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open session database")
	}

	const schema = `
		CREATE TABLE IF NOT EXISTS session_state (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to migrate session database")
	}

	return db, nil
}

// store implements Store on top of database/sql.
type store struct {
	db *sql.DB
}

// NewStore creates a Store backed by db.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewStore(db *sql.DB) Store {
	return &store{db: db}
}

func (s *store) LoadAddress(ctx context.Context) (string, error) {
	var address string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM session_state WHERE key = ?`, addressKey).Scan(&address)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", errors.Wrap(err, "failed to load persisted address")
	}

	return address, nil
}

func (s *store) SaveAddress(ctx context.Context, address string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO session_state (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		addressKey, address)

	if err != nil {
		return errors.Wrap(err, "failed to persist address")
	}

	return nil
}

func (s *store) ClearAddress(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM session_state WHERE key = ?`, addressKey); err != nil {
		return errors.Wrap(err, "failed to clear persisted address")
	}

	return nil
}
