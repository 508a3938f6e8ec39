package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, env := range envBindings {
		t.Setenv(env, "")
		os.Unsetenv(env)
	}
}

func TestFromEnvironment_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnvironment()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.GitHubToken != "" {
		t.Errorf("expected empty token, got %q", cfg.GitHubToken)
	}
	if cfg.Username != DefaultUsername {
		t.Errorf("Username = %q, want %q", cfg.Username, DefaultUsername)
	}
	if cfg.RefreshInterval != time.Minute {
		t.Errorf("RefreshInterval = %s, want 1m", cfg.RefreshInterval)
	}
	if cfg.RepoPageSize != 30 {
		t.Errorf("RepoPageSize = %d, want 30", cfg.RepoPageSize)
	}
	if cfg.ReadmeWorkers != 1 {
		t.Errorf("ReadmeWorkers = %d, want 1", cfg.ReadmeWorkers)
	}
	if len(cfg.Socials) != 5 {
		t.Errorf("expected 5 default socials, got %d", len(cfg.Socials))
	}
	if cfg.DebugMode {
		t.Error("expected DebugMode false by default")
	}
}

func TestFromEnvironment_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("GITHUB_TOKEN", "ghp_test123")
	t.Setenv("SHOWCASE_USERNAME", "octocat")
	t.Setenv("SHOWCASE_REFRESH_INTERVAL", "90s")
	t.Setenv("SHOWCASE_README_WORKERS", "4")

	cfg, err := FromEnvironment()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.GitHubToken != "ghp_test123" {
		t.Errorf("got %q, want ghp_test123", cfg.GitHubToken)
	}
	if cfg.Username != "octocat" {
		t.Errorf("got %q, want octocat", cfg.Username)
	}
	if cfg.RefreshInterval != 90*time.Second {
		t.Errorf("RefreshInterval = %s, want 1m30s", cfg.RefreshInterval)
	}
	if cfg.ReadmeWorkers != 4 {
		t.Errorf("ReadmeWorkers = %d, want 4", cfg.ReadmeWorkers)
	}
}

func TestFromEnvironment_DebugMode(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"false", false},
		{"FALSE", false},
		{"0", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run("DEBUG="+tt.val, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("DEBUG", tt.val)
			cfg, err := FromEnvironment()
			if err != nil {
				t.Fatal(err)
			}
			if cfg.DebugMode != tt.want {
				t.Errorf("DEBUG=%q → DebugMode=%v, want %v", tt.val, cfg.DebugMode, tt.want)
			}
		})
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "showcase.yaml")
	content := `username: hubot
repo_page_size: 10
socials:
  - label: Blog
    url: https://example.com/blog
  - label: GitHub
    url: https://github.com/hubot
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Username != "hubot" {
		t.Errorf("Username = %q, want hubot", cfg.Username)
	}
	if cfg.RepoPageSize != 10 {
		t.Errorf("RepoPageSize = %d, want 10", cfg.RepoPageSize)
	}
	if len(cfg.Socials) != 2 || cfg.Socials[0].Label != "Blog" {
		t.Errorf("unexpected socials: %+v", cfg.Socials)
	}
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "showcase.yaml")
	if err := os.WriteFile(path, []byte("username: hubot\n"), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SHOWCASE_USERNAME", "octocat")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Username != "octocat" {
		t.Errorf("Username = %q, want octocat", cfg.Username)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	if _, err := Load("/nonexistent/showcase.yaml"); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestValidate(t *testing.T) {
	valid := Config{
		Username:        "alice",
		RefreshInterval: time.Minute,
		RepoPageSize:    30,
		ReadmeWorkers:   1,
		Socials:         DefaultSocials,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty username", func(c *Config) { c.Username = " " }},
		{"zero interval", func(c *Config) { c.RefreshInterval = 0 }},
		{"zero page size", func(c *Config) { c.RepoPageSize = 0 }},
		{"page size too big", func(c *Config) { c.RepoPageSize = 101 }},
		{"zero workers", func(c *Config) { c.ReadmeWorkers = 0 }},
		{"social without url", func(c *Config) { c.Socials = []SocialLink{{Label: "x"}} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			if err := c.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
