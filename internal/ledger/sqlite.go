package ledger

import (
	"context"
	"database/sql"
	"errors"

	_ "github.com/mattn/go-sqlite3"
)

// sqliteStore держит только путь к файлу: база открывается и закрывается
// вокруг каждой отдельной операции, долгоживущих блокировок нет.
type sqliteStore struct {
	path string
}

func (s *sqliteStore) withDB(fn func(db *sql.DB) error) error {
	db, err := sql.Open("sqlite3", s.path)
	if err != nil {
		return err
	}
	defer db.Close()
	return fn(db)
}

func (s *sqliteStore) init(ctx context.Context) error {
	return s.withDB(func(db *sql.DB) error {
		_, err := db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS published_items (
				link TEXT PRIMARY KEY,
				title TEXT,
				published_date TEXT,
				wordpress_post_id INTEGER,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)
		`)
		return err
	})
}

func (s *sqliteStore) isPublished(ctx context.Context, link string) (bool, error) {
	var exists bool
	err := s.withDB(func(db *sql.DB) error {
		var one int
		err := db.QueryRowContext(ctx, `SELECT 1 FROM published_items WHERE link = ?`, link).Scan(&one)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		exists = true
		return nil
	})
	return exists, err
}

func (s *sqliteStore) record(ctx context.Context, link, title, publishedDate string, postID int) error {
	return s.withDB(func(db *sql.DB) error {
		_, err := db.ExecContext(ctx, `
			INSERT INTO published_items (link, title, published_date, wordpress_post_id)
			VALUES (?, ?, ?, ?)
		`, link, title, publishedDate, postID)
		return err
	})
}

func (s *sqliteStore) ping(ctx context.Context) error {
	return s.withDB(func(db *sql.DB) error {
		return db.PingContext(ctx)
	})
}

func (s *sqliteStore) close() {}
