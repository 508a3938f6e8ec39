package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stahnma/gh-showcase/internal/format"
	"github.com/stahnma/gh-showcase/internal/page"
	"github.com/stahnma/gh-showcase/internal/widget"
)

func (a *App) newRateLimitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ratelimit",
		Short: "Show the GitHub API rate limit",
		RunE: func(cmd *cobra.Command, args []string) error {
			a.ensureClient()
			st := widget.NewGate(a.GHClient).Refresh(cmd.Context(), page.New())
			if st.Err != "" && a.Config.DebugMode {
				a.logger().Printf("Error fetching rate limit: %s", st.Err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), format.StatusLine(st))
			return nil
		},
	}
}
