// Package widget implements the rate-limit-aware page loaders: a shared gate
// refreshed from the GitHub rate-limit endpoint, and the profile, repository
// and link loaders that consult it before every API call.
package widget

import (
	"github.com/stahnma/gh-showcase/internal/cache"
	"github.com/stahnma/gh-showcase/internal/config"
	ghub "github.com/stahnma/gh-showcase/internal/github"
	"github.com/stahnma/gh-showcase/internal/markdown"
)

// New wires every component for cfg around client.
func New(cfg config.Config, client ghub.Client, logger Logger) *Orchestrator {
	gate := NewGate(client)
	renderer := markdown.New(cache.New(cfg.ReadmeCacheTTL))
	readmes := NewReadmeFetcher(gate, client, renderer)

	return NewOrchestrator(Components{
		Gate:    gate,
		Profile: NewProfileFetcher(gate, client, cfg.Username, logger),
		Repos: NewRepoListFetcher(gate, client, readmes, RepoListOptions{
			Username: cfg.Username,
			PerPage:  cfg.RepoPageSize,
			Workers:  cfg.ReadmeWorkers,
			Debug:    cfg.DebugMode,
		}, logger),
		Links:    NewStaticLinks(cfg.Socials),
		Interval: cfg.RefreshInterval,
		Logger:   logger,
		Debug:    cfg.DebugMode,
	})
}
