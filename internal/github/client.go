package github

import (
	"context"
	"net/http"

	gh "github.com/google/go-github/v68/github"
	"golang.org/x/oauth2"
)

// Client defines the GitHub API methods used by this application.
type Client interface {
	GetRateLimits(ctx context.Context) (*gh.RateLimits, *gh.Response, error)
	GetUser(ctx context.Context, user string) (*gh.User, *gh.Response, error)
	ListUserRepos(ctx context.Context, user string, opts *gh.RepositoryListByUserOptions) ([]*gh.Repository, *gh.Response, error)
	GetReadme(ctx context.Context, owner, repo string) (*gh.RepositoryContent, *gh.Response, error)
}

// realClient wraps the go-github client to implement Client.
type realClient struct {
	inner *gh.Client
}

// NewClient creates a new GitHub API client. An empty token yields an
// anonymous client subject to the unauthenticated quota.
func NewClient(token string) Client {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}
	return &realClient{inner: gh.NewClient(httpClient)}
}

func (c *realClient) GetRateLimits(ctx context.Context) (*gh.RateLimits, *gh.Response, error) {
	return c.inner.RateLimit.Get(ctx)
}

func (c *realClient) GetUser(ctx context.Context, user string) (*gh.User, *gh.Response, error) {
	return c.inner.Users.Get(ctx, user)
}

func (c *realClient) ListUserRepos(ctx context.Context, user string, opts *gh.RepositoryListByUserOptions) ([]*gh.Repository, *gh.Response, error) {
	return c.inner.Repositories.ListByUser(ctx, user, opts)
}

// GetReadme requests the README resource. go-github sends
// "Accept: application/vnd.github.v3+json" on every request.
func (c *realClient) GetReadme(ctx context.Context, owner, repo string) (*gh.RepositoryContent, *gh.Response, error) {
	return c.inner.Repositories.GetReadme(ctx, owner, repo, nil)
}
