package models

// PostStatus задаёт статус, с которым создаётся запись в WordPress.
type PostStatus string

const (
	StatusDraft   PostStatus = "draft"
	StatusPublish PostStatus = "publish"
)

// FeedEntry представляет один нормализованный элемент RSS/Atom-ленты.
// Поле Link служит первичным ключом для учёта публикаций.
type FeedEntry struct {
	Link       string
	Title      string
	RawContent string
	Published  string
	Tags       []string
}

// RenderedPost — готовый к публикации документ.
// Сериализуется как JSON-тело запроса к REST API WordPress.
type RenderedPost struct {
	Title   string     `json:"title"`
	Content string     `json:"content"`
	Status  PostStatus `json:"status"`
}
