package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownService_RendersBasicMarkdown(t *testing.T) {
	svc := NewMarkdownService()

	html, err := svc.ToHTMLSanitized("Hello **world**")
	require.NoError(t, err)
	assert.Contains(t, html, "<strong>world</strong>")
}

func TestMarkdownService_StripsScripts(t *testing.T) {
	svc := NewMarkdownService()

	html, err := svc.ToHTMLSanitized("hi <script>alert(1)</script> there")
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, "alert(1)")
	assert.Contains(t, html, "hi")
}

func TestMarkdownService_StripsEventHandlers(t *testing.T) {
	svc := NewMarkdownService()

	html, err := svc.ToHTMLSanitized(`<img src="x" onerror="alert(1)">`)
	require.NoError(t, err)
	assert.NotContains(t, html, "onerror")
}

func TestMarkdownService_LinksGetNoFollow(t *testing.T) {
	svc := NewMarkdownService()

	html, err := svc.ToHTMLSanitized("[site](https://example.com)")
	require.NoError(t, err)
	assert.Contains(t, html, `rel="nofollow"`)
}
