package widget

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	ghub "github.com/stahnma/gh-showcase/internal/github"
	"github.com/stahnma/gh-showcase/internal/page"
)

// GateStatus is the gate's view of the last rate-limit poll.
type GateStatus struct {
	CanUseAPI   bool                    `json:"can_use_api"`
	Snapshot    *ghub.RateLimitSnapshot `json:"snapshot,omitempty"`
	Style       page.Style              `json:"style"`
	WaitMinutes int                     `json:"wait_minutes"`
	CheckedAt   time.Time               `json:"checked_at"`
	Err         string                  `json:"error,omitempty"`
}

// Gate holds the process-wide permission to call the GitHub API. It starts
// open and is changed only by Refresh.
//
// Fetchers read the flag once, at the start of each operation. A Refresh
// running concurrently may close the gate right after that check; the
// request already decided on is still issued and is not cancelled.
type Gate struct {
	client ghub.Client
	now    func() time.Time
	open   atomic.Bool

	mu     sync.RWMutex
	status GateStatus
}

// NewGate creates an open gate polling client.
func NewGate(client ghub.Client) *Gate {
	g := &Gate{client: client, now: time.Now}
	g.open.Store(true)
	g.status = GateStatus{CanUseAPI: true, Style: page.StyleUnknown}
	return g
}

// CanUseAPI reports whether outbound API calls are currently allowed.
func (g *Gate) CanUseAPI() bool {
	return g.open.Load()
}

// Status returns the outcome of the last Refresh.
func (g *Gate) Status() GateStatus {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.status
}

// Refresh polls the rate-limit endpoint, updates the gate and rewrites the
// status region of doc. When the quota is exhausted the profile and
// repository regions are overwritten with a notice, whatever they held.
// Failures to poll leave the gate unchanged and are not logged.
func (g *Gate) Refresh(ctx context.Context, doc *page.Document) GateStatus {
	now := g.now()
	snap, err := ghub.FetchRateLimit(ctx, g.client)
	if err != nil {
		doc.SetStatusText(MsgStatusUnavailable, page.StyleUnknown)
		g.mu.Lock()
		g.status.CanUseAPI = g.open.Load()
		g.status.Snapshot = nil
		g.status.Style = page.StyleUnknown
		g.status.WaitMinutes = 0
		g.status.CheckedAt = now
		g.status.Err = err.Error()
		st := g.status
		g.mu.Unlock()
		return st
	}

	style := classify(snap.Remaining)
	wait := snap.WaitMinutes(now)

	if style == page.StyleError {
		g.open.Store(false)
		doc.SetProfileText(MsgProfileRateLimited)
		doc.SetRepoListText(MsgReposRateLimited)
	} else {
		g.open.Store(true)
	}

	html, err := renderStatus(statusView{
		Remaining:   snap.Remaining,
		Limit:       snap.Limit,
		ResetTime:   snap.Reset.Local().Format(resetTimeLayout),
		WaitMinutes: wait,
		Style:       string(style),
	})
	if err != nil {
		doc.SetStatusText(MsgStatusUnavailable, page.StyleUnknown)
	} else {
		doc.SetStatus(html, style)
	}

	st := GateStatus{
		CanUseAPI:   style != page.StyleError,
		Snapshot:    &snap,
		Style:       style,
		WaitMinutes: wait,
		CheckedAt:   now,
	}
	g.mu.Lock()
	g.status = st
	g.mu.Unlock()
	return st
}
