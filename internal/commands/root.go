package commands

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/stahnma/gh-showcase/internal/config"
	ghub "github.com/stahnma/gh-showcase/internal/github"
	"github.com/stahnma/gh-showcase/internal/widget"
)

// App holds shared application state.
type App struct {
	Config   config.Config
	GHClient ghub.Client
	Logger   widget.Logger
	GitSHA   string
	GitDirty string
}

// NewApp creates a new App from the given configuration.
func NewApp(cfg config.Config, gitSHA, gitDirty string) *App {
	return &App{
		Config:   cfg,
		Logger:   log.New(os.Stderr, "", log.LstdFlags),
		GitSHA:   gitSHA,
		GitDirty: gitDirty,
	}
}

// ensureClient creates the GitHub client if it doesn't exist. Without a
// token the client is unauthenticated and limited to 60 requests an hour.
func (a *App) ensureClient() {
	if a.GHClient != nil {
		return
	}
	if a.Config.GitHubToken == "" && a.Config.DebugMode {
		a.logger().Printf("GITHUB_TOKEN not set, using unauthenticated requests")
	}
	a.GHClient = ghub.NewClient(a.Config.GitHubToken)
}

func (a *App) logger() widget.Logger {
	if a.Logger == nil {
		a.Logger = log.New(os.Stderr, "", log.LstdFlags)
	}
	return a.Logger
}

// Title is the page title for the configured user.
func (a *App) Title() string {
	return fmt.Sprintf("%s on GitHub", a.Config.Username)
}

// newOrchestrator wires the page loaders for the current configuration.
func (a *App) newOrchestrator() *widget.Orchestrator {
	a.ensureClient()
	return widget.New(a.Config, a.GHClient, a.logger())
}

// LoadPage runs the startup sequence once and waits for every load it
// started. The periodic refresh is stopped before returning.
func (a *App) LoadPage(ctx context.Context) *widget.Orchestrator {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	orch := a.newOrchestrator()
	orch.Start(ctx)
	orch.Wait()
	return orch
}

// RenderHTML loads the page once and writes it to w.
func (a *App) RenderHTML(ctx context.Context, w io.Writer) error {
	orch := a.LoadPage(ctx)
	return orch.Document().Render(w, a.Title())
}

// NewRootCommand creates the root cobra command with all subcommands.
func (a *App) NewRootCommand() *cobra.Command {
	var (
		cfgFile  string
		username string
		debug    bool
	)

	rootCmd := &cobra.Command{
		Use:   os.Args[0],
		Short: "Show a GitHub profile, its recent repositories and the API rate limit.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgFile != "" {
				cfg, err := config.Load(cfgFile)
				if err != nil {
					return err
				}
				a.Config = cfg
			}
			if username != "" {
				a.Config.Username = username
			}
			if debug {
				a.Config.DebugMode = true
			}
			return nil
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (yaml, json or toml)")
	rootCmd.PersistentFlags().StringVarP(&username, "user", "u", "", "GitHub username to show")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(a.newServeCommand())
	rootCmd.AddCommand(a.newRenderCommand())
	rootCmd.AddCommand(a.newRateLimitCommand())
	rootCmd.AddCommand(a.newReposCommand())
	rootCmd.AddCommand(a.newExportCommand())
	rootCmd.AddCommand(a.newVersionCommand())

	return rootCmd
}
