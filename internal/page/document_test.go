package page

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	a, b := New(), New()
	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID(), "each load gets its own id")
	assert.Equal(t, StyleUnknown, a.Snapshot().Status.Style)
}

func TestTextSettersEscape(t *testing.T) {
	d := New()
	d.SetProfileText("<b>nope</b>")
	d.SetStatusText("a & b", StyleError)

	snap := d.Snapshot()
	assert.Equal(t, "&lt;b&gt;nope&lt;/b&gt;", string(snap.Profile))
	assert.Equal(t, "a &amp; b", string(snap.Status.HTML))
	assert.Equal(t, StyleError, snap.Status.Style)
}

func TestRepoEntries(t *testing.T) {
	d := New()
	first := d.AppendRepo(RepoItem{Name: "one", Stars: 1}, "Loading README...")
	second := d.AppendRepo(RepoItem{Name: "two", Forks: 2}, "Loading README...")

	d.SetRepoDescriptionHTML(first, "<p>readme</p>", SourceReadme)

	snap := d.Snapshot()
	require.Len(t, snap.Repos, 2)
	assert.Equal(t, "one", snap.Repos[0].Name)
	assert.Equal(t, SourceReadme, snap.Repos[0].Source)
	assert.Equal(t, "<p>readme</p>", string(snap.Repos[0].DescriptionHTML))
	assert.Equal(t, SourcePending, snap.Repos[1].Source)
	assert.Equal(t, "Loading README...", string(snap.Repos[1].DescriptionHTML))

	d.SetRepoDescriptionText(second, "plain <text>", SourceDescription)
	snap = d.Snapshot()
	assert.Equal(t, "plain &lt;text&gt;", string(snap.Repos[1].DescriptionHTML))
}

func TestSetRepoListText_DetachesEntries(t *testing.T) {
	d := New()
	id := d.AppendRepo(RepoItem{Name: "one"}, "Loading README...")

	d.SetRepoListText("rate limited")
	d.SetRepoDescriptionText(id, "late update", SourceDescription)

	snap := d.Snapshot()
	assert.Equal(t, "rate limited", snap.RepoNotice)
	assert.Empty(t, snap.Repos)

	// Entries appended after the notice are kept next to it.
	d.AppendRepo(RepoItem{Name: "two"}, "Loading README...")
	snap = d.Snapshot()
	assert.Equal(t, "rate limited", snap.RepoNotice)
	assert.Len(t, snap.Repos, 1)

	d.ClearRepoList()
	snap = d.Snapshot()
	assert.Empty(t, snap.RepoNotice)
	assert.Empty(t, snap.Repos)
}

func TestSnapshotIsCopy(t *testing.T) {
	d := New()
	links := []Link{{Label: "GitHub", URL: "https://github.com/x"}}
	d.SetLinks(links)
	links[0].Label = "mutated"

	snap := d.Snapshot()
	snap.Links[0].Label = "also mutated"
	assert.Equal(t, "GitHub", d.Snapshot().Links[0].Label)
}

func TestRender(t *testing.T) {
	d := New()
	d.SetStatus("<strong>Remaining Requests:</strong> 5 / 60", StyleOK)
	d.SetProfileText("Failed to load profile.")
	id := d.AppendRepo(RepoItem{Name: "one", URL: "https://github.com/x/one", Stars: 3, Forks: 4}, "Loading README...")
	d.SetRepoDescriptionHTML(id, "<h1>One</h1>", SourceReadme)
	d.SetLinks([]Link{{Label: "GitHub", URL: "https://github.com/x"}})

	var buf bytes.Buffer
	require.NoError(t, d.Render(&buf, "x on GitHub"))
	out := buf.String()

	assert.Contains(t, out, "<title>x on GitHub</title>")
	assert.Contains(t, out, `data-load-id="`+d.ID()+`"`)
	assert.Contains(t, out, "<strong>Remaining Requests:</strong> 5 / 60")
	assert.Contains(t, out, `class="status-ok"`)
	assert.Contains(t, out, "Failed to load profile.")
	assert.Contains(t, out, "<h1>One</h1>")
	assert.Contains(t, out, "⭐ 3 | Forks: 4")
	assert.Contains(t, out, `<a href="https://github.com/x" target="_blank" rel="noopener noreferrer">GitHub</a>`)
	for _, region := range []string{RegionStatus, RegionProfile, RegionRepoList, RegionSocialLinks} {
		assert.True(t, strings.Contains(out, `id="`+region+`"`), "missing region %s", region)
	}
}

func TestConcurrentWrites(t *testing.T) {
	d := New()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := d.AppendRepo(RepoItem{Name: "r"}, "Loading README...")
			d.SetRepoDescriptionText(id, "done", SourceDescription)
			d.SetStatusText("ok", StyleOK)
			_ = d.Snapshot()
		}()
	}
	wg.Wait()
	assert.Len(t, d.Snapshot().Repos, 20)
}
