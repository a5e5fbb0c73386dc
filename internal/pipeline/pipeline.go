package pipeline

import (
	"context"
	"time"

	"rss_publisher/internal/logger"
	"rss_publisher/internal/metrics"
	"rss_publisher/internal/models"
	"rss_publisher/internal/transform"
)

// Fetcher выдаёт элементы ленты в порядке их следования в ней.
type Fetcher interface {
	Fetch(url string) ([]models.FeedEntry, error)
}

// Store — учёт уже опубликованных элементов.
type Store interface {
	IsPublished(ctx context.Context, link string) (bool, error)
	Record(ctx context.Context, link, title, publishedDate string, postID int) error
}

// Publisher создаёт запись в удалённой CMS и возвращает её идентификатор.
type Publisher interface {
	CreatePost(ctx context.Context, post models.RenderedPost) (int, error)
}

// Options — параметры конвейера, не являющиеся зависимостями.
type Options struct {
	FeedURL    string
	TagPrefix  string
	PostStatus models.PostStatus
}

// Pipeline связывает чтение ленты, фильтрацию, преобразование и публикацию.
type Pipeline struct {
	fetcher   Fetcher
	store     Store
	publisher Publisher
	opts      Options
}

// New собирает конвейер из внедряемых зависимостей.
func New(fetcher Fetcher, store Store, publisher Publisher, opts Options) *Pipeline {
	return &Pipeline{
		fetcher:   fetcher,
		store:     store,
		publisher: publisher,
		opts:      opts,
	}
}

// Run выполняет один прогон: загрузка ленты, затем для каждого ещё не
// опубликованного элемента — преобразование, публикация и запись в учёт.
// Ошибка загрузки ленты прерывает прогон; ошибка публикации отдельного
// элемента не прерывает обработку остальных.
func (p *Pipeline) Run(ctx context.Context) error {
	log := logger.Log.WithField("feed", p.opts.FeedURL)

	entries, err := p.fetcher.Fetch(p.opts.FeedURL)
	if err != nil {
		log.Errorf("Failed to fetch feed: %v", err)
		metrics.RunsTotal.WithLabelValues("fetch_error").Inc()
		return err
	}

	log.WithField("items_count", len(entries)).Info("Processing feed")

	// Ленты обычно отсортированы от новых к старым,
	// публикуем в хронологическом порядке.
	for i := len(entries) - 1; i >= 0; i-- {
		p.processEntry(ctx, log, entries[i])
	}

	metrics.RunsTotal.WithLabelValues("ok").Inc()
	return nil
}

func (p *Pipeline) processEntry(ctx context.Context, log *logger.Entry, entry models.FeedEntry) {
	metrics.EntriesSeen.Inc()

	if entry.Link == "" {
		log.Warn("Skipping entry without link")
		return
	}

	published, err := p.store.IsPublished(ctx, entry.Link)
	if err != nil {
		// Элемент считается неопубликованным: лучше редкий дубликат,
		// чем молча потерянная запись.
		log.Errorf("Ledger query error: %v", err)
	}
	if published {
		metrics.EntriesSkipped.Inc()
		return
	}

	log.WithField("tags", entry.Tags).Infof("Creating post: %s", entry.Title)

	post, err := transform.BuildPost(entry.Title, entry.RawContent, entry.Link, entry.Tags, p.opts.TagPrefix, p.opts.PostStatus)
	if err != nil {
		log.Errorf("Failed to build post: %v", err)
		metrics.PublishFailures.Inc()
		return
	}

	postID, err := p.publisher.CreatePost(ctx, post)
	if err != nil {
		log.Errorf("Failed to create post: %v", err)
		metrics.PublishFailures.Inc()
		return
	}

	log.Infof("Successfully created post: %s", entry.Title)
	metrics.PostsPublished.Inc()

	if err := p.store.Record(ctx, entry.Link, entry.Title, entry.Published, postID); err != nil {
		// Публикация уже прошла, поэтому только логируем:
		// дубликат при следующем прогоне — принятый риск.
		log.Errorf("Failed to record published item: %v", err)
	}
}

// Poll запускает Run сразу и затем по тикеру с заданным интервалом,
// пока не будет отменён контекст.
func (p *Pipeline) Poll(ctx context.Context, interval time.Duration) {
	log := logger.Log.WithFields(map[string]interface{}{
		"service":  "poller",
		"interval": interval.String(),
	})

	if err := p.Run(ctx); err != nil {
		log.Errorf("Publishing run failed: %v", err)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			log.Info("Starting new publishing cycle")
			if err := p.Run(ctx); err != nil {
				log.Errorf("Publishing run failed: %v", err)
			}

		case <-ctx.Done():
			log.Info("Stopping poller by context")
			return
		}
	}
}
