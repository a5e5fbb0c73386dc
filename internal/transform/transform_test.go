package transform_test

import (
	"testing"

	"rss_publisher/internal/models"
	"rss_publisher/internal/transform"

	"github.com/stretchr/testify/require"
)

func TestDecodeEntities_ExactlyOnce(t *testing.T) {
	// Дважды экранированный контент должен декодироваться ровно на один уровень.
	require.Equal(t, "&amp;", transform.DecodeEntities("&amp;amp;"))
	require.Equal(t, "&", transform.DecodeEntities("&amp;"))
}

func TestAutolink(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bare http url with query",
			input:    "Check http://example.com/page?x=1 now",
			expected: "Check <http://example.com/page?x=1> now",
		},
		{
			name:     "https url with fragment",
			input:    "see https://example.org/a/b#sec",
			expected: "see <https://example.org/a/b#sec>",
		},
		{
			name:     "www host without scheme",
			input:    "visit www.example.com today",
			expected: "visit <www.example.com> today",
		},
		{
			name:     "email-like token",
			input:    "write to user@example.com please",
			expected: "write to <user@example.com> please",
		},
		{
			name:     "plain text untouched",
			input:    "nothing to link here",
			expected: "nothing to link here",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, transform.Autolink(tc.input))
		})
	}
}

func TestEnableBlockquoteMarkdown(t *testing.T) {
	input := "<blockquote>quoted</blockquote><blockquote>again</blockquote>"
	expected := `<blockquote markdown="1">quoted</blockquote><blockquote markdown="1">again</blockquote>`
	require.Equal(t, expected, transform.EnableBlockquoteMarkdown(input))
}

func TestRenderMarkdown(t *testing.T) {
	out, err := transform.RenderMarkdown("some **bold** text")
	require.NoError(t, err)
	require.Contains(t, out, "<strong>bold</strong>")
}

func TestRenderMarkdown_RawHTMLPassthrough(t *testing.T) {
	out, err := transform.RenderMarkdown(`<blockquote markdown="1">quoted</blockquote>`)
	require.NoError(t, err)
	require.Contains(t, out, `<blockquote markdown="1">`)
}

func TestTagLinks(t *testing.T) {
	out := transform.TagLinks([]string{"rust", "go"}, "https://x.example")
	expected := `<a class="delicioustag" href="https://x.example/t:rust">rust</a> ` +
		`<a class="delicioustag" href="https://x.example/t:go">go</a>`
	require.Equal(t, expected, out)
}

func TestTagLinks_Empty(t *testing.T) {
	require.Equal(t, "", transform.TagLinks(nil, "https://x.example"))
}

func TestBuildPost(t *testing.T) {
	post, err := transform.BuildPost(
		"An Article",
		"Check http://example.com/page?x=1 now",
		"http://example.com/article",
		[]string{"rust", "go"},
		"https://x.example",
		models.StatusDraft,
	)
	require.NoError(t, err)

	require.Equal(t, "An Article", post.Title)
	require.Equal(t, models.StatusDraft, post.Status)

	// Обратная ссылка на источник с заголовком в тексте и атрибуте title.
	require.Contains(t, post.Content, `<a class="deliciouslink" href="http://example.com/article" title="An Article">An Article</a>`)
	// Автоссылка должна быть отрендерена в обычный якорь.
	require.Contains(t, post.Content, `<a href="http://example.com/page?x=1">`)
	// Секция тегов в исходном порядке.
	require.Contains(t, post.Content, `<p class="taglist">Tags: <a class="delicioustag" href="https://x.example/t:rust">rust</a> <a class="delicioustag" href="https://x.example/t:go">go</a></p>`)
	// Внешняя обёртка-список.
	require.Contains(t, post.Content, "<ul><li><p>")
	require.Contains(t, post.Content, "</li></ul>")
}

func TestBuildPost_EmptyContentAndTags(t *testing.T) {
	post, err := transform.BuildPost(
		"Bare Title",
		"",
		"http://example.com/bare",
		nil,
		"https://x.example",
		models.StatusPublish,
	)
	require.NoError(t, err)

	// Заголовок-ссылка и метка Tags: присутствуют даже при пустом теле.
	require.Contains(t, post.Content, `<a class="deliciouslink" href="http://example.com/bare" title="Bare Title">Bare Title</a>`)
	require.Contains(t, post.Content, `<p class="taglist">Tags: </p>`)
}
