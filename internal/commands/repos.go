package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/stahnma/gh-showcase/internal/format"
)

func (a *App) newReposCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repos [flags]",
		Short: "List the most recently updated repositories",
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			return a.runRepos(cmd, verbose)
		},
	}
	cmd.Flags().BoolP("verbose", "v", false, "Verbose output")
	return cmd
}

func (a *App) runRepos(cmd *cobra.Command, verbose bool) error {
	w := cmd.OutOrStdout()
	snap := a.LoadPage(cmd.Context()).Document().Snapshot()

	if snap.RepoNotice != "" {
		fmt.Fprintln(w, snap.RepoNotice)
	}
	if len(snap.Repos) == 0 {
		return nil
	}

	table := format.Table(w, []string{"Name", "Stars", "Forks", "Source"})
	totalStars := 0
	for _, r := range snap.Repos {
		totalStars += r.Stars
		if err := table.Append([]string{r.Name, strconv.Itoa(r.Stars), strconv.Itoa(r.Forks), string(r.Source)}); err != nil {
			return fmt.Errorf("adding %s to table: %w", r.Name, err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}

	if verbose {
		fmt.Fprintf(w, "Total repositories: %d, Total stars: %d\n", len(snap.Repos), totalStars)
	}
	return nil
}
