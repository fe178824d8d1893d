package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type pgQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresStorage keeps values in the storage_entries table created by
// database/migration.
type PostgresStorage struct {
	db pgQuerier
}

// NewPostgresStorage accepts a *pgxpool.Pool or anything with the same
// Exec/QueryRow methods.
func NewPostgresStorage(db pgQuerier) *PostgresStorage {
	return &PostgresStorage{db: db}
}

func (s *PostgresStorage) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := s.db.QueryRow(ctx, `SELECT value::text FROM storage_entries WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(value), nil
}

func (s *PostgresStorage) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO storage_entries (key, value, updated_at) VALUES ($1, $2::jsonb, NOW())
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`,
		key, string(value))
	return err
}

func (s *PostgresStorage) Remove(ctx context.Context, key string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM storage_entries WHERE key = $1`, key)
	return err
}
