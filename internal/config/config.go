package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// SocialLink is a labelled link shown in the social links region.
type SocialLink struct {
	Label string `mapstructure:"label"`
	URL   string `mapstructure:"url"`
}

// DefaultUsername is the GitHub account shown when none is configured.
const DefaultUsername = "khilesh114"

// DefaultSocials are shown when the config file defines no socials.
var DefaultSocials = []SocialLink{
	{Label: "Facebook", URL: "https://m.facebook.com/profile.php/?id=100075320165786"},
	{Label: "Twitter", URL: "https://twitter.com/khilesh25321781"},
	{Label: "Instagram", URL: "https://www.instagram.com/khileshwhite/"},
	{Label: "YouTube", URL: "https://www.youtube.com/@GitHubGuru"},
	{Label: "GitHub", URL: "https://github.com/khilesh114"},
}

// Config holds application configuration loaded from defaults, an optional
// config file and environment variables.
type Config struct {
	GitHubToken     string
	Username        string
	Socials         []SocialLink
	RefreshInterval time.Duration
	RepoPageSize    int
	ReadmeWorkers   int
	ReadmeCacheTTL  time.Duration
	ListenAddr      string
	DebugMode       bool
	S3Bucket        string
	S3ObjectKey     string
	AWSRegion       string
}

// envBindings maps config keys to the environment variables that set them.
var envBindings = map[string]string{
	"github_token":     "GITHUB_TOKEN",
	"username":         "SHOWCASE_USERNAME",
	"refresh_interval": "SHOWCASE_REFRESH_INTERVAL",
	"repo_page_size":   "SHOWCASE_REPO_PAGE_SIZE",
	"readme_workers":   "SHOWCASE_README_WORKERS",
	"readme_cache_ttl": "SHOWCASE_README_CACHE_TTL",
	"listen_addr":      "SHOWCASE_LISTEN_ADDR",
	"debug":            "DEBUG",
	"s3_bucket":        "S3_BUCKET_NAME",
	"s3_object_key":    "S3_OBJECT_KEY",
	"aws_region":       "AWS_REGION",
}

// Load builds a Config. A .env file in the working directory is applied to
// the environment first if present; cfgFile, when non-empty, must exist.
func Load(cfgFile string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()
	v.SetDefault("username", DefaultUsername)
	v.SetDefault("refresh_interval", time.Minute)
	v.SetDefault("repo_page_size", 30)
	v.SetDefault("readme_workers", 1)
	v.SetDefault("readme_cache_ttl", time.Hour)
	v.SetDefault("listen_addr", ":8080")

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, fmt.Errorf("binding %s: %w", env, err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := Config{
		GitHubToken:     v.GetString("github_token"),
		Username:        v.GetString("username"),
		RefreshInterval: v.GetDuration("refresh_interval"),
		RepoPageSize:    v.GetInt("repo_page_size"),
		ReadmeWorkers:   v.GetInt("readme_workers"),
		ReadmeCacheTTL:  v.GetDuration("readme_cache_ttl"),
		ListenAddr:      v.GetString("listen_addr"),
		DebugMode:       truthy(v.GetString("debug")),
		S3Bucket:        v.GetString("s3_bucket"),
		S3ObjectKey:     v.GetString("s3_object_key"),
		AWSRegion:       v.GetString("aws_region"),
	}

	if v.IsSet("socials") {
		if err := v.UnmarshalKey("socials", &cfg.Socials); err != nil {
			return Config{}, fmt.Errorf("parsing socials: %w", err)
		}
	} else {
		cfg.Socials = append([]SocialLink(nil), DefaultSocials...)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FromEnvironment creates a Config from defaults and environment variables only.
func FromEnvironment() (Config, error) {
	return Load("")
}

// Validate checks that the configuration can drive a page load.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Username) == "" {
		return errors.New("username must be set")
	}
	if c.RefreshInterval <= 0 {
		return fmt.Errorf("refresh_interval must be positive, got %s", c.RefreshInterval)
	}
	if c.RepoPageSize <= 0 || c.RepoPageSize > 100 {
		return fmt.Errorf("repo_page_size must be between 1 and 100, got %d", c.RepoPageSize)
	}
	if c.ReadmeWorkers <= 0 {
		return fmt.Errorf("readme_workers must be positive, got %d", c.ReadmeWorkers)
	}
	for i, s := range c.Socials {
		if s.Label == "" || s.URL == "" {
			return fmt.Errorf("socials[%d] needs both label and url", i)
		}
	}
	return nil
}

// truthy interprets an environment flag: anything but "", "0" or "false".
func truthy(s string) bool {
	return s != "" && s != "0" && strings.ToLower(s) != "false"
}
