package page

import (
	"fmt"
	"html/template"
	"io"
)

var documentTmpl = template.Must(template.New("document").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<meta name="generator" content="gh-showcase">
	<title>{{.Title}}</title>
	<style>
		body { font-family: system-ui, sans-serif; background: #0d1117; color: #c9d1d9; margin: 0 auto; max-width: 960px; padding: 1rem; }
		a { color: #58a6ff; }
		#profile img { border-radius: 50%; width: 120px; height: 120px; }
		#repo-list { list-style: none; padding: 0; }
		#repo-list li { border-bottom: 1px solid #30363d; padding: 0.75rem 0; }
		.repo-description { font-size: 0.9rem; max-height: 16rem; overflow: auto; }
		.repo-stats { color: #8b949e; font-size: 0.85rem; }
		.error { color: #ff6b6b; }
		.warn { color: #ffd966; }
		.ok { color: #85ff50; }
	</style>
</head>
<body data-load-id="{{.Snap.ID}}">
	<section id="ratelimit-info" class="status-{{.Snap.Status.Style}}">{{.Snap.Status.HTML}}</section>
	<section id="profile">{{.Snap.Profile}}</section>
	<h2>Repositories</h2>
	<ul id="repo-list">{{if .Snap.RepoNotice}}{{.Snap.RepoNotice}}{{end}}{{range .Snap.Repos}}
		<li data-source="{{.Source}}">
			<a href="{{.URL}}" target="_blank" rel="noopener noreferrer">{{.Name}}</a>
			<div class="repo-description">{{.DescriptionHTML}}</div>
			<div class="repo-stats">⭐ {{.Stars}} | Forks: {{.Forks}}</div>
		</li>{{end}}
	</ul>
	<h2>Elsewhere</h2>
	<ul id="social-links">{{range .Snap.Links}}
		<li><a href="{{.URL}}" target="_blank" rel="noopener noreferrer">{{.Label}}</a></li>{{end}}
	</ul>
</body>
</html>
`))

// Render writes the document as a complete HTML page.
func (d *Document) Render(w io.Writer, title string) error {
	data := struct {
		Title string
		Snap  Snapshot
	}{Title: title, Snap: d.Snapshot()}

	if err := documentTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return nil
}
