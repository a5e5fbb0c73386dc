package ledger

import (
	"context"
	"fmt"
	"strings"

	"rss_publisher/internal/logger"
)

// store — узкий контракт конкретного хранилища учёта публикаций.
type store interface {
	init(ctx context.Context) error
	isPublished(ctx context.Context, link string) (bool, error)
	record(ctx context.Context, link, title, publishedDate string, postID int) error
	ping(ctx context.Context) error
	close()
}

// Ledger ведёт долговременный учёт уже опубликованных элементов ленты.
// Строка появляется только после успешной публикации и никогда не
// обновляется и не удаляется.
type Ledger struct {
	store  store
	dryRun bool
}

// Open создаёт Ledger по dsn и гарантирует наличие схемы.
// DSN вида postgres:// или postgresql:// выбирает PostgreSQL-бэкенд,
// любое другое значение трактуется как путь к файлу SQLite.
// В режиме dryRun хранилище не читается и не пишется.
func Open(ctx context.Context, dsn string, dryRun bool) (*Ledger, error) {
	var s store
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		pg, err := newPostgresStore(ctx, dsn)
		if err != nil {
			return nil, fmt.Errorf("open ledger: %w", err)
		}
		s = pg
	} else {
		s = &sqliteStore{path: dsn}
	}

	if err := s.init(ctx); err != nil {
		s.close()
		return nil, fmt.Errorf("init ledger schema: %w", err)
	}

	logger.Log.Info("Ledger initialized successfully")
	return &Ledger{store: s, dryRun: dryRun}, nil
}

// IsPublished сообщает, была ли запись с данным link уже опубликована.
// Безопасен для конкурентных вызовов: только чтение.
func (l *Ledger) IsPublished(ctx context.Context, link string) (bool, error) {
	if l.dryRun {
		return false, nil
	}
	return l.store.isPublished(ctx, link)
}

// Record фиксирует успешную публикацию. Нарушение первичного ключа
// возвращается как ошибка: публикация на этот момент уже прошла,
// поэтому вызывающий лишь логирует её.
func (l *Ledger) Record(ctx context.Context, link, title, publishedDate string, postID int) error {
	if l.dryRun {
		return nil
	}
	return l.store.record(ctx, link, title, publishedDate, postID)
}

// Ping проверяет доступность хранилища.
func (l *Ledger) Ping(ctx context.Context) error {
	if l.dryRun {
		return nil
	}
	return l.store.ping(ctx)
}

// Close освобождает ресурсы хранилища.
func (l *Ledger) Close() {
	l.store.close()
}
