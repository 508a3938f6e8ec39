package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"github.com/stahnma/gh-showcase/internal/format"
)

func (a *App) newExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Export the loaded page in JSON format",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.ExportJSON(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

// ExportJSON loads the page once and writes its snapshot as JSON to w.
func (a *App) ExportJSON(ctx context.Context, w io.Writer) error {
	snap := a.LoadPage(ctx).Document().Snapshot()
	return format.WriteJSON(w, snap)
}
