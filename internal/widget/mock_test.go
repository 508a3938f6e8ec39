package widget

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	gh "github.com/google/go-github/v68/github"
)

// mockClient implements github.Client for testing. Nil functions fail the
// call with an error.
type mockClient struct {
	getRateLimitsFn func(ctx context.Context) (*gh.RateLimits, *gh.Response, error)
	getUserFn       func(ctx context.Context, user string) (*gh.User, *gh.Response, error)
	listUserReposFn func(ctx context.Context, user string, opts *gh.RepositoryListByUserOptions) ([]*gh.Repository, *gh.Response, error)
	getReadmeFn     func(ctx context.Context, owner, repo string) (*gh.RepositoryContent, *gh.Response, error)

	mu    sync.Mutex
	calls map[string]int
}

var errUnexpected = errors.New("unexpected call")

func (m *mockClient) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[name]++
}

func (m *mockClient) count(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[name]
}

func (m *mockClient) GetRateLimits(ctx context.Context) (*gh.RateLimits, *gh.Response, error) {
	m.record("rate_limit")
	if m.getRateLimitsFn == nil {
		return nil, nil, errUnexpected
	}
	return m.getRateLimitsFn(ctx)
}

func (m *mockClient) GetUser(ctx context.Context, user string) (*gh.User, *gh.Response, error) {
	m.record("user")
	if m.getUserFn == nil {
		return nil, nil, errUnexpected
	}
	return m.getUserFn(ctx, user)
}

func (m *mockClient) ListUserRepos(ctx context.Context, user string, opts *gh.RepositoryListByUserOptions) ([]*gh.Repository, *gh.Response, error) {
	m.record("repos")
	if m.listUserReposFn == nil {
		return nil, nil, errUnexpected
	}
	return m.listUserReposFn(ctx, user, opts)
}

func (m *mockClient) GetReadme(ctx context.Context, owner, repo string) (*gh.RepositoryContent, *gh.Response, error) {
	m.record("readme:" + repo)
	if m.getReadmeFn == nil {
		return nil, nil, errUnexpected
	}
	return m.getReadmeFn(ctx, owner, repo)
}

func okResponse() *gh.Response {
	return &gh.Response{Response: &http.Response{StatusCode: http.StatusOK}}
}

func httpError(status int) error {
	return &gh.ErrorResponse{
		Response: &http.Response{
			StatusCode: status,
			Request:    &http.Request{Method: http.MethodGet, URL: &url.URL{Path: "/x"}},
		},
		Message: http.StatusText(status),
	}
}

func rateLimits(remaining, limit int, reset time.Time) func(context.Context) (*gh.RateLimits, *gh.Response, error) {
	return func(context.Context) (*gh.RateLimits, *gh.Response, error) {
		return &gh.RateLimits{
			Core: &gh.Rate{Remaining: remaining, Limit: limit, Reset: gh.Timestamp{Time: reset}},
		}, okResponse(), nil
	}
}

func readmeContent(markdown string) *gh.RepositoryContent {
	return &gh.RepositoryContent{
		Content:  gh.Ptr(base64.StdEncoding.EncodeToString([]byte(markdown)) + "\n"),
		Encoding: gh.Ptr("base64"),
		SHA:      gh.Ptr(fmt.Sprintf("sha-%x", markdown)),
	}
}

func repo(name, description string, stars, forks int) *gh.Repository {
	r := &gh.Repository{
		Name:            gh.Ptr(name),
		HTMLURL:         gh.Ptr("https://github.com/alice/" + name),
		StargazersCount: gh.Ptr(stars),
		ForksCount:      gh.Ptr(forks),
		Owner:           &gh.User{Login: gh.Ptr("alice")},
	}
	if description != "" {
		r.Description = gh.Ptr(description)
	}
	return r
}

// recordingLogger captures diagnostic output.
type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordingLogger) Printf(format string, v ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, fmt.Sprintf(format, v...))
}

func (l *recordingLogger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.lines...)
}
