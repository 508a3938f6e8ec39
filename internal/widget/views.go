package widget

import (
	"bytes"
	"html/template"

	ghub "github.com/stahnma/gh-showcase/internal/github"
	"github.com/stahnma/gh-showcase/internal/page"
)

// User-visible strings written into the page regions.
const (
	MsgStatusUnavailable   = "Could not fetch rate limit status."
	MsgProfileRateLimited  = "GitHub API rate limit reached. Profile cannot be loaded now."
	MsgReposRateLimited    = "Repositories cannot be loaded now due to API rate limit. Try again later."
	MsgProfileFailed       = "Failed to load profile."
	MsgReposFailed         = "Failed to load repositories."
	MsgReadmeLoading       = "Loading README..."
	MsgNoDescription       = "No description or README."
	DefaultBio             = "Tech enthusiast, developer, and content creator."
	DefaultLocation        = "Unknown"
	resetTimeLayout        = "15:04:05"
	warnRemainingThreshold = 5
)

var statusTmpl = template.Must(template.New("status").Parse(
	`<strong>Remaining Requests:</strong> {{.Remaining}} / {{.Limit}} <br>
<strong>Reset Time:</strong> {{.ResetTime}}<br>
{{if eq .Style "error"}}<span class="error"><strong>Rate limit reached. Please try again after {{.WaitMinutes}} minute(s).</strong></span>` +
		`{{else if eq .Style "warn"}}<span class="warn">Warning: API limit nearly exhausted.</span>` +
		`{{else}}<span class="ok">API healthy.</span>{{end}}`))

var profileTmpl = template.Must(template.New("profile").Parse(
	`<img src="{{.AvatarURL}}" alt="Profile Picture" />
<h3>{{.DisplayName}}</h3>
<p>{{.Bio}}</p>
<p>Location: {{.Location}}</p>
<p>Followers: {{.Followers}} | Following: {{.Following}}</p>
<p><a href="{{.HTMLURL}}" target="_blank" rel="noopener noreferrer">GitHub Profile</a></p>`))

type statusView struct {
	Remaining   int
	Limit       int
	ResetTime   string
	WaitMinutes int
	Style       string
}

type profileView struct {
	ghub.Profile
	DisplayName string
}

func renderStatus(v statusView) (template.HTML, error) {
	return execute(statusTmpl, v)
}

func renderProfile(p ghub.Profile) (template.HTML, error) {
	v := profileView{Profile: p, DisplayName: p.Name}
	if v.DisplayName == "" {
		v.DisplayName = p.Login
	}
	if v.Bio == "" {
		v.Bio = DefaultBio
	}
	if v.Location == "" {
		v.Location = DefaultLocation
	}
	return execute(profileTmpl, v)
}

func execute(t *template.Template, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// classify maps a remaining-request count onto a status style.
func classify(remaining int) page.Style {
	switch {
	case remaining == 0:
		return page.StyleError
	case remaining < warnRemainingThreshold:
		return page.StyleWarn
	default:
		return page.StyleOK
	}
}
