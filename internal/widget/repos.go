package widget

import (
	"context"
	"html/template"

	ghub "github.com/stahnma/gh-showcase/internal/github"
	"github.com/stahnma/gh-showcase/internal/page"
	"golang.org/x/sync/errgroup"
)

// RepoListFetcher renders the user's repositories with README previews.
type RepoListFetcher struct {
	gate     *Gate
	client   ghub.Client
	readmes  ReadmeSource
	username string
	perPage  int
	workers  int
	debug    bool
	logger   Logger
}

// RepoListOptions configures a RepoListFetcher.
type RepoListOptions struct {
	Username string
	PerPage  int
	// Workers > 1 fetches READMEs concurrently; entries are still updated in
	// list order.
	Workers int
	Debug   bool
}

// NewRepoListFetcher creates a RepoListFetcher.
func NewRepoListFetcher(gate *Gate, client ghub.Client, readmes ReadmeSource, opts RepoListOptions, logger Logger) *RepoListFetcher {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return &RepoListFetcher{
		gate:     gate,
		client:   client,
		readmes:  readmes,
		username: opts.Username,
		perPage:  opts.PerPage,
		workers:  opts.Workers,
		debug:    opts.Debug,
		logger:   logger,
	}
}

type readmeResult struct {
	html template.HTML
	ok   bool
}

// Load fills the repository list region of doc. It does nothing while the
// gate is closed and never returns an error.
func (r *RepoListFetcher) Load(ctx context.Context, doc *page.Document) {
	if !r.gate.CanUseAPI() {
		return
	}

	repos, err := ghub.ListRecentRepos(ctx, r.client, r.username, r.perPage)
	if err != nil {
		doc.SetRepoListText(MsgReposFailed)
		r.logger.Printf("Error loading repositories: %v", err)
		return
	}

	doc.ClearRepoList()
	if r.workers > 1 {
		r.loadConcurrently(ctx, doc, repos)
		return
	}

	// Each README is awaited before the next entry is added.
	for _, repo := range repos {
		id := doc.AppendRepo(itemFor(repo), MsgReadmeLoading)
		html, ok := r.readmes.Fetch(ctx, repo.Owner, repo.Name)
		r.resolve(doc, id, repo, readmeResult{html: html, ok: ok})
	}
}

// loadConcurrently fetches READMEs with a bounded pool into indexed slots
// and resolves entries strictly in list order.
func (r *RepoListFetcher) loadConcurrently(ctx context.Context, doc *page.Document, repos []ghub.Repository) {
	ids := make([]int, len(repos))
	for i, repo := range repos {
		ids[i] = doc.AppendRepo(itemFor(repo), MsgReadmeLoading)
	}

	results := make([]readmeResult, len(repos))
	done := make([]chan struct{}, len(repos))
	for i := range done {
		done[i] = make(chan struct{})
	}

	var g errgroup.Group
	g.SetLimit(r.workers)
	// g.Go blocks once the limit is reached, so submission runs beside the
	// ordered drain below.
	go func() {
		for i := range repos {
			g.Go(func() error {
				defer close(done[i])
				html, ok := r.readmes.Fetch(ctx, repos[i].Owner, repos[i].Name)
				results[i] = readmeResult{html: html, ok: ok}
				return nil
			})
		}
	}()

	for i, repo := range repos {
		<-done[i]
		r.resolve(doc, ids[i], repo, results[i])
	}
	// Every g.Go has been called once the last slot is done.
	_ = g.Wait()
}

func itemFor(repo ghub.Repository) page.RepoItem {
	return page.RepoItem{
		Name:  repo.Name,
		URL:   repo.HTMLURL,
		Stars: repo.Stars,
		Forks: repo.Forks,
	}
}

// resolve replaces an entry's placeholder: README, else description, else a
// fixed notice.
func (r *RepoListFetcher) resolve(doc *page.Document, id int, repo ghub.Repository, res readmeResult) {
	source := page.SourceNone
	switch {
	case res.ok:
		source = page.SourceReadme
		doc.SetRepoDescriptionHTML(id, res.html, source)
	case repo.Description != "":
		source = page.SourceDescription
		doc.SetRepoDescriptionText(id, repo.Description, source)
	default:
		doc.SetRepoDescriptionText(id, MsgNoDescription, source)
	}
	if r.debug {
		r.logger.Printf("Resolved %s from %s", repo.FullName(), source)
	}
}
