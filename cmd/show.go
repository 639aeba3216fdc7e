package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/releasekit/verconfig/internal/config"
	"github.com/releasekit/verconfig/internal/git"
	"github.com/releasekit/verconfig/internal/output"
)

// configFileNames lists the files searched for configuration, in order.
// Checks .github/ first, then the worktree root.
var configFileNames = []string{
	".github/verconfig.yml",
	"verconfig.yml",
	"verconfig.yaml",
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Render the effective configuration",
	RunE:  showRunE,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func showRunE(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	return writeConfig(cmd.OutOrStdout(), cfg)
}

// resolveConfig discovers and loads the configuration document, then
// overlays it onto the defaults.
func resolveConfig() (*config.Config, error) {
	builder := config.NewBuilder()

	configPath := flagConfig
	if configPath == "" {
		configPath = findConfigFile(discoveryRoot())
	}

	if configPath != "" {
		logger.Debug("loading configuration", "path", configPath)
		doc, err := config.LoadFromFile(configPath)
		if err != nil {
			return nil, err
		}
		builder.Add(doc)
	} else {
		logger.Debug("no configuration file found, using defaults")
	}

	return builder.Build(), nil
}

// discoveryRoot returns the directory config discovery starts from: the
// git worktree root when --path is inside a repository, the path itself
// otherwise.
func discoveryRoot() string {
	repo, err := git.Open(flagPath)
	if err != nil {
		logger.Debug("not a git repository, using path directly", "path", flagPath)
		return flagPath
	}
	return repo.WorkingDirectory()
}

// findConfigFile searches for a config file under dir.
func findConfigFile(dir string) string {
	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// writeConfig renders the configuration in the requested format.
func writeConfig(w io.Writer, cfg *config.Config) error {
	switch flagOutput {
	case "yaml":
		return output.WriteYAML(w, cfg)
	case "json":
		return output.WriteJSON(w, cfg)
	default:
		return fmt.Errorf("unknown output format %q", flagOutput)
	}
}
