// Package markdown converts README markdown into HTML fragments.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/stahnma/gh-showcase/internal/cache"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// Renderer converts GitHub-flavoured markdown to HTML. Raw HTML embedded in
// the source is omitted from the output.
type Renderer struct {
	md   goldmark.Markdown
	memo *cache.Cache
}

// New creates a Renderer. memo may be nil to disable memoisation.
func New(memo *cache.Cache) *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
	return &Renderer{md: md, memo: memo}
}

// Render converts source to HTML.
func (r *Renderer) Render(source string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return buf.String(), nil
}

// RenderKeyed converts source to HTML, reusing an earlier result stored under
// key. Identical content must map to the same key (a blob SHA).
func (r *Renderer) RenderKeyed(key, source string) (string, error) {
	if r.memo == nil || key == "" {
		return r.Render(source)
	}
	cacheKey := "readme:" + key
	if html, ok := r.memo.GetString(cacheKey); ok {
		return html, nil
	}
	html, err := r.Render(source)
	if err != nil {
		return "", err
	}
	r.memo.Set(cacheKey, html)
	return html, nil
}
