package widget

import (
	"context"

	ghub "github.com/stahnma/gh-showcase/internal/github"
	"github.com/stahnma/gh-showcase/internal/page"
)

// Logger is the operator diagnostic channel.
type Logger interface {
	Printf(format string, v ...any)
}

// ProfileFetcher renders the configured user's profile.
type ProfileFetcher struct {
	gate     *Gate
	client   ghub.Client
	username string
	logger   Logger
}

// NewProfileFetcher creates a ProfileFetcher for username.
func NewProfileFetcher(gate *Gate, client ghub.Client, username string, logger Logger) *ProfileFetcher {
	return &ProfileFetcher{gate: gate, client: client, username: username, logger: logger}
}

// Load fills the profile region of doc. It does nothing while the gate is
// closed and never returns an error: failures become a fallback message.
func (p *ProfileFetcher) Load(ctx context.Context, doc *page.Document) {
	if !p.gate.CanUseAPI() {
		return
	}

	profile, err := ghub.FetchProfile(ctx, p.client, p.username)
	if err != nil {
		doc.SetProfileText(MsgProfileFailed)
		p.logger.Printf("Error loading profile: %v", err)
		return
	}

	html, err := renderProfile(profile)
	if err != nil {
		doc.SetProfileText(MsgProfileFailed)
		p.logger.Printf("Error rendering profile: %v", err)
		return
	}
	doc.SetProfileHTML(html)
}
