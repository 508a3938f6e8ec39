package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/stahnma/gh-showcase/internal/server"
)

const shutdownTimeout = 30 * time.Second

func (a *App) newServeCommand() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve [flags]",
		Short: "Serve the page and keep its rate-limit status fresh",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.Config.ListenAddr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.Serve(ctx, addr)
		},
	}
	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (default from listen_addr)")
	return cmd
}

// Serve starts the orchestrator and serves its page on addr until ctx is done.
func (a *App) Serve(ctx context.Context, addr string) error {
	orch := a.newOrchestrator()
	orch.Start(ctx)
	return server.New(orch, a.Title(), a.logger()).ListenAndServe(ctx, addr, shutdownTimeout)
}
