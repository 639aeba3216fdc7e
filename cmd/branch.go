package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/releasekit/verconfig/internal/git"
)

var branchCmd = &cobra.Command{
	Use:   "branch [name]",
	Short: "Show which branch families match a branch name",
	Long: "branch resolves the effective configuration of every configured branch\n" +
		"family whose pattern matches the given branch name. With no argument it\n" +
		"uses the current HEAD branch.",
	Args: cobra.MaximumNArgs(1),
	RunE: branchRunE,
}

func init() {
	rootCmd.AddCommand(branchCmd)
}

func branchRunE(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	var name string
	if len(args) == 1 {
		name = args[0]
	} else {
		repo, err := git.Open(flagPath)
		if err != nil {
			return fmt.Errorf("no branch name given and %w", err)
		}
		name, err = repo.CurrentBranch()
		if err != nil {
			return err
		}
	}

	matches, err := cfg.MatchBranch(name)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		return fmt.Errorf("no configured branch family matches %q", name)
	}

	w := cmd.OutOrStdout()
	for _, m := range matches {
		fmt.Fprintf(w, "%s\n  tag: %q\n  mode: %s\n  increment: %s\n",
			m.Pattern, m.Tag, m.Mode, m.Increment)
	}
	return nil
}
