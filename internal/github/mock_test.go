package github

import (
	"context"
	"net/http"
	"net/url"

	gh "github.com/google/go-github/v68/github"
)

// mockClient implements Client for testing.
type mockClient struct {
	getRateLimitsFn func(ctx context.Context) (*gh.RateLimits, *gh.Response, error)
	getUserFn       func(ctx context.Context, user string) (*gh.User, *gh.Response, error)
	listUserReposFn func(ctx context.Context, user string, opts *gh.RepositoryListByUserOptions) ([]*gh.Repository, *gh.Response, error)
	getReadmeFn     func(ctx context.Context, owner, repo string) (*gh.RepositoryContent, *gh.Response, error)
}

func (m *mockClient) GetRateLimits(ctx context.Context) (*gh.RateLimits, *gh.Response, error) {
	return m.getRateLimitsFn(ctx)
}

func (m *mockClient) GetUser(ctx context.Context, user string) (*gh.User, *gh.Response, error) {
	return m.getUserFn(ctx, user)
}

func (m *mockClient) ListUserRepos(ctx context.Context, user string, opts *gh.RepositoryListByUserOptions) ([]*gh.Repository, *gh.Response, error) {
	return m.listUserReposFn(ctx, user, opts)
}

func (m *mockClient) GetReadme(ctx context.Context, owner, repo string) (*gh.RepositoryContent, *gh.Response, error) {
	return m.getReadmeFn(ctx, owner, repo)
}

func okResponse() *gh.Response {
	return &gh.Response{Response: &http.Response{StatusCode: http.StatusOK}}
}

// notFound builds the error go-github returns for a 404.
func notFound() error {
	return &gh.ErrorResponse{
		Response: &http.Response{
			StatusCode: http.StatusNotFound,
			Request:    &http.Request{Method: http.MethodGet, URL: &url.URL{Path: "/missing"}},
		},
		Message: "Not Found",
	}
}
