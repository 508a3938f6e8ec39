// Package page holds the rendered state of the showcase page. Content is
// written into named regions by the widget loaders and read back by the HTTP
// server, the CLI and the Lambda exporter.
package page

import (
	"html/template"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Region identifiers, used as element ids in the rendered document.
const (
	RegionStatus      = "ratelimit-info"
	RegionProfile     = "profile"
	RegionRepoList    = "repo-list"
	RegionSocialLinks = "social-links"
)

// Style classifies the status region.
type Style string

const (
	StyleUnknown Style = "unknown"
	StyleOK      Style = "ok"
	StyleWarn    Style = "warn"
	StyleError   Style = "error"
)

// Source records where a repository description came from.
type Source string

const (
	SourcePending     Source = "pending"
	SourceReadme      Source = "readme"
	SourceDescription Source = "description"
	SourceNone        Source = "none"
)

// Link is a labelled external link.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// RepoItem is the static part of a repository list entry.
type RepoItem struct {
	Name  string `json:"name"`
	URL   string `json:"url"`
	Stars int    `json:"stars"`
	Forks int    `json:"forks"`
}

// RepoEntry is a repository list entry together with its description
// sub-region.
type RepoEntry struct {
	ID int `json:"id"`
	RepoItem
	DescriptionHTML template.HTML `json:"description_html"`
	Source          Source        `json:"source"`
}

// Status is the content of the rate-limit status region.
type Status struct {
	HTML  template.HTML `json:"html"`
	Style Style         `json:"style"`
}

// Snapshot is a point-in-time copy of every region.
type Snapshot struct {
	ID         string        `json:"id"`
	CreatedAt  time.Time     `json:"created_at"`
	Status     Status        `json:"status"`
	Profile    template.HTML `json:"profile"`
	RepoNotice string        `json:"repo_notice,omitempty"`
	Repos      []RepoEntry   `json:"repos"`
	Links      []Link        `json:"links"`
}

// Document is the mutable page. Entries removed from the list region (by
// ClearRepoList or SetRepoListText) are detached: later updates addressed to
// them are ignored.
type Document struct {
	mu         sync.RWMutex
	id         string
	createdAt  time.Time
	status     Status
	profile    template.HTML
	repoNotice string
	repos      []*RepoEntry
	nextID     int
	links      []Link
}

// New creates an empty document with a fresh load id.
func New() *Document {
	return &Document{
		id:        uuid.NewString(),
		createdAt: time.Now(),
		status:    Status{Style: StyleUnknown},
	}
}

// ID identifies the load this document belongs to.
func (d *Document) ID() string {
	return d.id
}

// SetStatus replaces the status region.
func (d *Document) SetStatus(html template.HTML, style Style) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.status = Status{HTML: html, Style: style}
}

// SetStatusText replaces the status region with escaped text.
func (d *Document) SetStatusText(text string, style Style) {
	d.SetStatus(escape(text), style)
}

// SetProfileHTML replaces the profile region.
func (d *Document) SetProfileHTML(html template.HTML) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.profile = html
}

// SetProfileText replaces the profile region with escaped text.
func (d *Document) SetProfileText(text string) {
	d.SetProfileHTML(escape(text))
}

// SetRepoListText replaces the whole list region with a text notice.
func (d *Document) SetRepoListText(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.repoNotice = text
	d.repos = nil
}

// ClearRepoList empties the list region.
func (d *Document) ClearRepoList() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.repoNotice = ""
	d.repos = nil
}

// AppendRepo adds an entry with a pending description and returns its id.
func (d *Document) AppendRepo(item RepoItem, placeholder string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.nextID++
	d.repos = append(d.repos, &RepoEntry{
		ID:              d.nextID,
		RepoItem:        item,
		DescriptionHTML: escape(placeholder),
		Source:          SourcePending,
	})
	return d.nextID
}

// SetRepoDescriptionHTML fills the description sub-region of entry id.
func (d *Document) SetRepoDescriptionHTML(id int, html template.HTML, source Source) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, e := range d.repos {
		if e.ID == id {
			e.DescriptionHTML = html
			e.Source = source
			return
		}
	}
}

// SetRepoDescriptionText fills the description sub-region of entry id with
// escaped text.
func (d *Document) SetRepoDescriptionText(id int, text string, source Source) {
	d.SetRepoDescriptionHTML(id, escape(text), source)
}

// SetLinks replaces the social links region.
func (d *Document) SetLinks(links []Link) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.links = append([]Link(nil), links...)
}

// Snapshot returns a copy of all regions.
func (d *Document) Snapshot() Snapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()

	repos := make([]RepoEntry, len(d.repos))
	for i, e := range d.repos {
		repos[i] = *e
	}
	return Snapshot{
		ID:         d.id,
		CreatedAt:  d.createdAt,
		Status:     d.status,
		Profile:    d.profile,
		RepoNotice: d.repoNotice,
		Repos:      repos,
		Links:      append([]Link(nil), d.links...),
	}
}

func escape(text string) template.HTML {
	return template.HTML(template.HTMLEscapeString(text))
}
