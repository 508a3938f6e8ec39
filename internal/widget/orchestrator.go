package widget

import (
	"context"
	"sync"
	"time"

	"github.com/stahnma/gh-showcase/internal/page"
)

// Loader fills one region of a page.
type Loader interface {
	Load(ctx context.Context, doc *page.Document)
}

// Components are the parts an Orchestrator drives.
type Components struct {
	Gate     *Gate
	Profile  Loader
	Repos    Loader
	Links    *StaticLinks
	Interval time.Duration
	Logger   Logger
	Debug    bool
}

// Orchestrator runs the page startup sequence and keeps the rate-limit
// status fresh.
type Orchestrator struct {
	gate     *Gate
	profile  Loader
	repos    Loader
	links    *StaticLinks
	interval time.Duration
	logger   Logger
	debug    bool

	mu      sync.Mutex
	ctx     context.Context
	doc     *page.Document
	started bool
	loads   sync.WaitGroup
	stopped chan struct{}
}

// NewOrchestrator creates an Orchestrator. No work starts until Start.
func NewOrchestrator(c Components) *Orchestrator {
	return &Orchestrator{
		gate:     c.Gate,
		profile:  c.Profile,
		repos:    c.Repos,
		links:    c.Links,
		interval: c.Interval,
		logger:   c.Logger,
		debug:    c.Debug,
		doc:      page.New(),
		stopped:  make(chan struct{}),
	}
}

// Gate returns the shared API gate.
func (o *Orchestrator) Gate() *Gate {
	return o.gate
}

// Document returns the page currently being shown.
func (o *Orchestrator) Document() *page.Document {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.doc
}

// Start runs the startup sequence: the gate is refreshed and awaited; if it
// is open the profile and repository loads are started without waiting for
// them; the social links are rendered; finally the gate refresh is scheduled
// every interval until ctx is done. Loads skipped because the gate was
// closed are not retried. Calling Start again returns the current document.
func (o *Orchestrator) Start(ctx context.Context) *page.Document {
	o.mu.Lock()
	if o.started {
		doc := o.doc
		o.mu.Unlock()
		return doc
	}
	o.started = true
	o.ctx = ctx
	o.mu.Unlock()

	doc := o.load(ctx)
	go o.refreshLoop(ctx)
	return doc
}

// Reload discards the current page and repeats the startup sequence on a
// fresh one. The periodic refresh is not duplicated.
func (o *Orchestrator) Reload() *page.Document {
	o.mu.Lock()
	ctx := o.ctx
	o.mu.Unlock()
	if ctx == nil {
		ctx = context.Background()
	}
	return o.load(ctx)
}

// Wait blocks until every load started so far has finished.
func (o *Orchestrator) Wait() {
	o.loads.Wait()
}

// Stopped is closed once the periodic refresh has exited.
func (o *Orchestrator) Stopped() <-chan struct{} {
	return o.stopped
}

func (o *Orchestrator) load(ctx context.Context) *page.Document {
	doc := page.New()
	o.mu.Lock()
	o.doc = doc
	o.mu.Unlock()

	if o.debug {
		o.logger.Printf("Starting page load %s", doc.ID())
	}

	o.gate.Refresh(ctx, doc)
	if o.gate.CanUseAPI() {
		o.loads.Add(2)
		go func() {
			defer o.loads.Done()
			o.profile.Load(ctx, doc)
		}()
		go func() {
			defer o.loads.Done()
			o.repos.Load(ctx, doc)
		}()
	} else if o.debug {
		o.logger.Printf("Rate limit exhausted, skipping profile and repository loads for %s", doc.ID())
	}
	o.links.Render(doc)
	return doc
}

func (o *Orchestrator) refreshLoop(ctx context.Context) {
	defer close(o.stopped)

	ticker := time.NewTicker(o.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			st := o.gate.Refresh(ctx, o.Document())
			if o.debug {
				o.logger.Printf("Rate limit refresh: can_use_api=%t style=%s", st.CanUseAPI, st.Style)
			}
		case <-ctx.Done():
			return
		}
	}
}
