package widget

import (
	"context"
	"html/template"

	ghub "github.com/stahnma/gh-showcase/internal/github"
	"github.com/stahnma/gh-showcase/internal/markdown"
)

// ReadmeSource resolves a repository README to HTML.
type ReadmeSource interface {
	Fetch(ctx context.Context, owner, repo string) (template.HTML, bool)
}

// ReadmeFetcher fetches READMEs through the gate and renders them.
type ReadmeFetcher struct {
	gate     *Gate
	client   ghub.Client
	renderer *markdown.Renderer
}

// NewReadmeFetcher creates a ReadmeFetcher.
func NewReadmeFetcher(gate *Gate, client ghub.Client, renderer *markdown.Renderer) *ReadmeFetcher {
	return &ReadmeFetcher{gate: gate, client: client, renderer: renderer}
}

// Fetch returns the rendered README of owner/repo. A closed gate, a missing
// README, or any decode or conversion failure yields ok == false; nothing is
// logged.
func (f *ReadmeFetcher) Fetch(ctx context.Context, owner, repo string) (template.HTML, bool) {
	if !f.gate.CanUseAPI() {
		return "", false
	}

	readme, err := ghub.FetchReadme(ctx, f.client, owner, repo)
	if err != nil {
		return "", false
	}

	html, err := f.renderer.RenderKeyed(readme.SHA, readme.Markdown)
	if err != nil || html == "" {
		return "", false
	}
	return template.HTML(html), true
}
