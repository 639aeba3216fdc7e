package cmd

import (
	"fmt"
	"regexp"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the configuration document",
	Long: "check loads the configuration and resolves it against the defaults.\n" +
		"Obsolete keys and malformed enum values fail with a non-zero exit;\n" +
		"branch patterns that do not compile as regexes are reported as warnings.",
	RunE: checkRunE,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func checkRunE(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	for pattern := range cfg.Branches {
		if _, err := regexp.Compile(pattern); err != nil {
			logger.Warn("branch pattern does not compile as a regex", "pattern", pattern, "err", err)
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), "configuration OK")
	return nil
}
