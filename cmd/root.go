// Package cmd implements the verconfig command line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Global flags shared across commands.
var (
	flagPath     string
	flagConfig   string
	flagOutput   string
	flagLogLevel string
)

var logger *log.Logger

// rootCmd is the top-level command for verconfig.
var rootCmd = &cobra.Command{
	Use:   "verconfig",
	Short: "Resolve repository versioning configuration",
	Long: "verconfig loads a repository's versioning configuration, rejects obsolete\n" +
		"layouts, overlays it onto the built-in defaults, and renders the effective\n" +
		"configuration for audit.",
	// Default action is show.
	RunE: showRunE,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q", flagLogLevel)
		}
		logger.SetLevel(level)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})

	rootCmd.PersistentFlags().StringVarP(&flagPath, "path", "p", ".", "path to the repository")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file (default: auto-detect)")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "yaml", "output format: yaml or json")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "log level: debug, info, warn, error")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
