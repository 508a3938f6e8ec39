package widget

import (
	"github.com/stahnma/gh-showcase/internal/config"
	"github.com/stahnma/gh-showcase/internal/page"
)

// StaticLinks renders a fixed list of social links.
type StaticLinks struct {
	links []page.Link
}

// NewStaticLinks creates StaticLinks from configured socials.
func NewStaticLinks(socials []config.SocialLink) *StaticLinks {
	links := make([]page.Link, len(socials))
	for i, s := range socials {
		links[i] = page.Link{Label: s.Label, URL: s.URL}
	}
	return &StaticLinks{links: links}
}

// Render clears and repopulates the social links region.
func (s *StaticLinks) Render(doc *page.Document) {
	doc.SetLinks(s.links)
}
