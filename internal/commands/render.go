package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func (a *App) newRenderCommand() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "render [flags]",
		Short: "Load the page once and write it as HTML",
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				return a.RenderHTML(cmd.Context(), cmd.OutOrStdout())
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("creating %s: %w", output, err)
			}
			if err := a.RenderHTML(cmd.Context(), f); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")
	return cmd
}
