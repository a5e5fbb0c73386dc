package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// postgresStore инкапсулирует пул соединений к PostgreSQL.
// В отличие от SQLite-бэкенда пул живёт всё время работы процесса.
type postgresStore struct {
	pool *pgxpool.Pool
}

func newPostgresStore(ctx context.Context, connString string) (*postgresStore, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}
	return &postgresStore{pool: pool}, nil
}

func (s *postgresStore) init(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS published_items (
			link TEXT PRIMARY KEY,
			title TEXT,
			published_date TEXT,
			wordpress_post_id INTEGER,
			created_at TIMESTAMPTZ DEFAULT now()
		)
	`)
	return err
}

func (s *postgresStore) isPublished(ctx context.Context, link string) (bool, error) {
	var one int
	err := s.pool.QueryRow(ctx, `SELECT 1 FROM published_items WHERE link = $1`, link).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *postgresStore) record(ctx context.Context, link, title, publishedDate string, postID int) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO published_items (link, title, published_date, wordpress_post_id)
		VALUES ($1, $2, $3, $4)
	`, link, title, publishedDate, postID)
	return err
}

func (s *postgresStore) ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *postgresStore) close() {
	s.pool.Close()
}
