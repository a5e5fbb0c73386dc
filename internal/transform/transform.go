package transform

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	renderhtml "github.com/yuin/goldmark/renderer/html"

	"rss_publisher/internal/models"
)

// urlFinder находит голые URL, www-хосты и адреса вида user@host.
// Шаблон взят из markdown-urlize (https://github.com/r0wb0t/markdown-urlize).
// Известное ограничение: URL внутри уже существующих тегов <a> не исключаются
// и тоже оборачиваются.
var urlFinder = regexp.MustCompile(`((([A-Za-z]{3,9}:(?:\/\/)?)(?:[\-;:&=\+\$,\w]+@)?[A-Za-z0-9\.\-]+(:[0-9]+)?|(?:www\.|[\-;:&=\+\$,\w]+@)[A-Za-z0-9\.\-]+)((?:/[\+~%/\.\w\-_]*)?\??(?:[\-\+=&;%@\.\w_]*)#?(?:[\.!/\\\w]*))?)`)

// markdown настроен на расширенный набор: таблицы, сноски, списки определений.
// Сырой HTML пропускается без экранирования.
var markdown = goldmark.New(
	goldmark.WithExtensions(
		extension.Table,
		extension.Footnote,
		extension.DefinitionList,
	),
	goldmark.WithRendererOptions(
		renderhtml.WithUnsafe(),
	),
)

// DecodeEntities декодирует HTML-сущности ровно один раз.
// Ленты иногда экранируют контент дважды, поэтому важно не декодировать повторно.
func DecodeEntities(content string) string {
	return html.UnescapeString(content)
}

// Autolink оборачивает голые URL в синтаксис markdown-автоссылок <...>
// за один проход регулярного выражения.
func Autolink(content string) string {
	return urlFinder.ReplaceAllString(content, "<$1>")
}

// EnableBlockquoteMarkdown помечает каждый открывающий тег blockquote
// атрибутом обработки markdown внутри блока.
func EnableBlockquoteMarkdown(content string) string {
	return strings.ReplaceAll(content, "<blockquote>", `<blockquote markdown="1">`)
}

// RenderMarkdown превращает гибрид markdown+HTML в HTML.
func RenderMarkdown(content string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}

// TagLinks строит HTML-фрагмент из ссылок на теги, сохраняя порядок тегов.
// Для пустого списка возвращается пустая строка.
func TagLinks(tags []string, prefix string) string {
	links := make([]string, 0, len(tags))
	for _, tag := range tags {
		links = append(links, fmt.Sprintf(`<a class="delicioustag" href="%s/t:%s">%s</a>`, prefix, tag, tag))
	}
	return strings.Join(links, " ")
}

// BuildPost собирает публикуемый документ из сырого элемента ленты:
// декодирование сущностей, автоссылки, маркировка blockquote, рендер markdown,
// затем обёртка с обратной ссылкой на источник и списком тегов.
func BuildPost(title, rawContent, link string, tags []string, tagPrefix string, status models.PostStatus) (models.RenderedPost, error) {
	content := DecodeEntities(rawContent)
	content = Autolink(content)
	content = EnableBlockquoteMarkdown(content)

	rendered, err := RenderMarkdown(content)
	if err != nil {
		return models.RenderedPost{}, err
	}

	tagHTML := TagLinks(tags, tagPrefix)

	assembled := fmt.Sprintf("<ul><li><p>\n"+
		`<a class="deliciouslink" href="%s" title="%s">%s</a></p>`+
		"\n\n%s\n\n"+
		`<p class="taglist">Tags: %s</p></li></ul>`,
		link, title, title, rendered, tagHTML)

	return models.RenderedPost{
		Title:   title,
		Content: assembled,
		Status:  status,
	}, nil
}
