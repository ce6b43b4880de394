// Package sqlite provides a SQLite-backed ports.CartStore.
//
// One row per visitor holds the cart as a JSON object. Rows idle for longer
// than the configured TTL load as empty carts and are removed by Purge.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jcmexdev/cangroo-storefront/internal/storefront/core/domain/entity"
	"github.com/jcmexdev/cangroo-storefront/internal/storefront/core/ports"
	"github.com/jcmexdev/cangroo-storefront/internal/storefront/infra/adapters/session"

	// Pure-Go driver, no CGO.
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS carts (
    visitor_id  TEXT PRIMARY KEY,
    items       TEXT NOT NULL DEFAULT '{}',
    updated_at  TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_carts_updated_at ON carts(updated_at);
`

var _ ports.CartStore = (*Store)(nil)

// Store is the SQLite implementation of ports.CartStore.
type Store struct {
	db  *sql.DB
	ttl time.Duration
	now func() time.Time
}

// Open opens (or creates) the database at path and applies the schema.
// A zero ttl disables expiry.
//
//	store, err := sqlite.Open("./data/sessions.db", 720*time.Hour)
func Open(path string, ttl time.Duration) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %q: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: apply schema: %w", err)
	}

	return &Store{db: db, ttl: ttl, now: time.Now}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Load(ctx context.Context, visitorID string) (entity.Cart, error) {
	const q = `SELECT items, updated_at FROM carts WHERE visitor_id = ?`

	var items, updatedAt string
	err := s.db.QueryRowContext(ctx, q, visitorID).Scan(&items, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.NewCart(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: load cart for %q: %w", visitorID, err)
	}

	ts, err := parseTime(updatedAt)
	if err != nil {
		return nil, err
	}
	if s.expired(ts) {
		return entity.NewCart(), nil
	}

	return session.DecodeCart(items)
}

// Save upserts the visitor's cart. An empty cart deletes the row.
func (s *Store) Save(ctx context.Context, visitorID string, cart entity.Cart) error {
	if len(cart) == 0 {
		if _, err := s.db.ExecContext(ctx, `DELETE FROM carts WHERE visitor_id = ?`, visitorID); err != nil {
			return fmt.Errorf("sqlite: clear cart for %q: %w", visitorID, err)
		}
		return nil
	}

	payload, err := session.EncodeCart(cart)
	if err != nil {
		return err
	}

	const q = `
		INSERT INTO carts (visitor_id, items, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(visitor_id) DO UPDATE SET
			items = excluded.items,
			updated_at = excluded.updated_at`

	if _, err := s.db.ExecContext(ctx, q, visitorID, payload, formatTime(s.now())); err != nil {
		return fmt.Errorf("sqlite: save cart for %q: %w", visitorID, err)
	}
	return nil
}

// Purge deletes carts idle for longer than the TTL and reports how many were removed.
func (s *Store) Purge(ctx context.Context) (int64, error) {
	if s.ttl <= 0 {
		return 0, nil
	}

	cutoff := formatTime(s.now().Add(-s.ttl))
	res, err := s.db.ExecContext(ctx, `DELETE FROM carts WHERE updated_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("sqlite: purge carts: %w", err)
	}
	return res.RowsAffected()
}

func (s *Store) expired(updatedAt time.Time) bool {
	return s.ttl > 0 && s.now().Sub(updatedAt) > s.ttl
}
