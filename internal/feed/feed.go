package feed

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"rss_publisher/internal/models"
)

// Reader загружает и разбирает RSS/Atom-ленту через gofeed.
type Reader struct {
	parser *gofeed.Parser
}

// NewReader создаёт Reader с HTTP-клиентом с таймаутом 10 секунд.
func NewReader() *Reader {
	p := gofeed.NewParser()
	p.Client = &http.Client{Timeout: 10 * time.Second}
	return &Reader{parser: p}
}

// Fetch загружает ленту по url и возвращает нормализованные элементы
// в порядке следования в ленте. Пустая лента — не ошибка: возвращается
// пустой срез. Ошибка транспорта или разбора возвращается вызывающему.
func (r *Reader) Fetch(url string) ([]models.FeedEntry, error) {
	parsed, err := r.parser.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("fetch feed %s: %w", url, err)
	}

	entries := make([]models.FeedEntry, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		entries = append(entries, normalize(item))
	}
	return entries, nil
}

// normalize приводит элемент gofeed к модели FeedEntry.
// Контент берётся из description с откатом на content, дата публикации —
// из ленты с откатом на текущее время. Каждый taxonomy-термин дополнительно
// разбивается по пробелам: некоторые ленты кладут несколько тегов в один термин.
func normalize(item *gofeed.Item) models.FeedEntry {
	content := item.Description
	if content == "" {
		content = item.Content
	}

	published := item.Published
	if published == "" {
		published = time.Now().Format(time.RFC3339)
	}

	var tags []string
	for _, category := range item.Categories {
		tags = append(tags, strings.Fields(category)...)
	}

	return models.FeedEntry{
		Link:       item.Link,
		Title:      item.Title,
		RawContent: content,
		Published:  published,
		Tags:       tags,
	}
}
