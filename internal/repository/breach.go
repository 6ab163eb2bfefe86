package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/vaultpass/passcheck-go/internal/crypto"
)

const breachSchema = `
	CREATE TABLE IF NOT EXISTS breached_passwords (
		digest     BINARY(32) NOT NULL PRIMARY KEY,
		created_at TIMESTAMP  NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`

// BreachRepository stores digests of known-breached passwords.
type BreachRepository struct {
	db *sql.DB
}

// NewBreachRepository creates a new BreachRepository.
func NewBreachRepository(db *sql.DB) *BreachRepository {
	return &BreachRepository{db: db}
}

// EnsureSchema creates the breach table if it does not exist.
func (r *BreachRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, breachSchema)
	return err
}

// Contains reports whether the exact password is recorded as breached.
func (r *BreachRepository) Contains(ctx context.Context, password string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM breached_passwords WHERE digest = ?)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, crypto.BreachDigest(password)).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// Import records every non-empty line of the given corpus lines in a single
// transaction and returns how many new digests were inserted.
func (r *BreachRepository) Import(ctx context.Context, passwords []string) (int64, error) {
	query := `INSERT IGNORE INTO breached_passwords (digest) VALUES (?)`

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var inserted int64
	for _, p := range passwords {
		p = strings.TrimRight(p, "\r")
		if p == "" {
			continue
		}
		result, err := tx.ExecContext(ctx, query, crypto.BreachDigest(p))
		if err != nil {
			return 0, err
		}
		n, err := result.RowsAffected()
		if err != nil {
			return 0, err
		}
		inserted += n
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return inserted, nil
}

// Count returns the number of recorded digests.
func (r *BreachRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM breached_passwords`).Scan(&n)
	return n, err
}
