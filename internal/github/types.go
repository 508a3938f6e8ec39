package github

import (
	"math"
	"time"
)

// DefaultRateLimit is assumed when the API omits the core limit.
const DefaultRateLimit = 60

// RateLimitSnapshot is the latest observed core rate-limit state.
type RateLimitSnapshot struct {
	Remaining int       `json:"remaining"`
	Limit     int       `json:"limit"`
	Reset     time.Time `json:"reset"`
}

// WaitMinutes returns the whole minutes until the quota resets, never negative.
func (s RateLimitSnapshot) WaitMinutes(now time.Time) int {
	d := s.Reset.Sub(now)
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d.Minutes()))
}

// Profile is a read-only projection of a GitHub user.
type Profile struct {
	Login     string `json:"login"`
	Name      string `json:"name"`
	Bio       string `json:"bio"`
	Location  string `json:"location"`
	AvatarURL string `json:"avatar_url"`
	HTMLURL   string `json:"html_url"`
	Followers int    `json:"followers"`
	Following int    `json:"following"`
}

// Repository is a single entry of a user's repository listing.
type Repository struct {
	Owner       string `json:"owner"`
	Name        string `json:"name"`
	HTMLURL     string `json:"html_url"`
	Description string `json:"description,omitempty"`
	Stars       int    `json:"stars"`
	Forks       int    `json:"forks"`
}

// FullName returns the "owner/name" form.
func (r Repository) FullName() string {
	return r.Owner + "/" + r.Name
}

// Readme holds a decoded README document.
type Readme struct {
	SHA      string
	Markdown string
}
