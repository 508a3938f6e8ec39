package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	gh "github.com/google/go-github/v68/github"
)

// ErrNotFound is returned when the requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ListRecentRepos returns up to perPage repositories of user, most recently
// updated first, in the order the API returned them.
func ListRecentRepos(ctx context.Context, client Client, user string, perPage int) ([]Repository, error) {
	opts := &gh.RepositoryListByUserOptions{
		Sort:        "updated",
		ListOptions: gh.ListOptions{PerPage: perPage},
	}
	results, _, err := client.ListUserRepos(ctx, user, opts)
	if err != nil {
		return nil, wrapStatus(err)
	}

	repos := make([]Repository, 0, len(results))
	for _, r := range results {
		owner := r.GetOwner().GetLogin()
		if owner == "" {
			owner = user
		}
		repos = append(repos, Repository{
			Owner:       owner,
			Name:        r.GetName(),
			HTMLURL:     r.GetHTMLURL(),
			Description: r.GetDescription(),
			Stars:       r.GetStargazersCount(),
			Forks:       r.GetForksCount(),
		})
	}
	return repos, nil
}

// FetchReadme retrieves and base64-decodes the README of owner/repo.
func FetchReadme(ctx context.Context, client Client, owner, repo string) (Readme, error) {
	content, _, err := client.GetReadme(ctx, owner, repo)
	if err != nil {
		return Readme{}, wrapStatus(err)
	}
	if content == nil || content.Content == nil {
		return Readme{}, fmt.Errorf("readme for %s/%s has no content", owner, repo)
	}

	// GitHub wraps the base64 payload; strip the line breaks before decoding.
	stripped := *content
	stripped.Content = gh.Ptr(strings.ReplaceAll(*content.Content, "\n", ""))
	decoded, err := stripped.GetContent()
	if err != nil {
		return Readme{}, fmt.Errorf("decoding readme for %s/%s: %w", owner, repo, err)
	}
	return Readme{SHA: content.GetSHA(), Markdown: decoded}, nil
}

// wrapStatus maps a 404 API error onto ErrNotFound.
func wrapStatus(err error) error {
	var errResp *gh.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil && errResp.Response.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return err
}
