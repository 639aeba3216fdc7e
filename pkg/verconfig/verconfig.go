// Package verconfig provides a public Go API for resolving a repository's
// versioning configuration.
//
// Basic usage:
//
//	result, err := verconfig.Load(verconfig.Options{Path: "/path/to/repo"})
//	if err != nil {
//	    // *config.OldConfigurationError for obsolete documents,
//	    // *scheme.InvalidEnumValueError for malformed enum values.
//	}
//	fmt.Println(*result.Config.TagPrefix)
package verconfig

import (
	"os"
	"path/filepath"

	"github.com/releasekit/verconfig/internal/config"
	"github.com/releasekit/verconfig/internal/git"
	"github.com/releasekit/verconfig/internal/output"
)

// DefaultTagPrefix is the tag-prefix applied when no document sets one.
// Queryable independent of any document.
const DefaultTagPrefix = config.DefaultTagPrefix

// configFileNames lists the files searched for configuration, in order.
var configFileNames = []string{
	".github/verconfig.yml",
	"verconfig.yml",
	"verconfig.yaml",
}

// Options configures configuration resolution.
type Options struct {
	// Path to the repository or directory. Defaults to "." if empty.
	// When the path is inside a git repository, discovery starts at the
	// worktree root.
	Path string

	// ConfigPath is an explicit config file path. If empty, the standard
	// file names are searched under Path.
	ConfigPath string
}

// Result holds a resolved configuration.
type Result struct {
	// Config is the fully merged effective configuration.
	Config *config.Config

	// Source is the config file the document was loaded from. Empty when
	// the defaults were used unmodified.
	Source string
}

// RenderYAML returns the canonical YAML rendering of the resolved
// configuration, suitable for audit and approved-output comparison.
func (r *Result) RenderYAML() ([]byte, error) {
	return output.MarshalYAML(r.Config)
}

// Load discovers, loads, and resolves the configuration for a repository.
// With no config file present it returns the built-in defaults.
func Load(opts Options) (*Result, error) {
	path := opts.Path
	if path == "" {
		path = "."
	}

	source := opts.ConfigPath
	if source == "" {
		root := path
		if repo, err := git.Open(path); err == nil {
			root = repo.WorkingDirectory()
		}
		source = findConfigFile(root)
	}

	builder := config.NewBuilder()
	if source != "" {
		doc, err := config.LoadFromFile(source)
		if err != nil {
			return nil, err
		}
		builder.Add(doc)
	}

	return &Result{Config: builder.Build(), Source: source}, nil
}

func findConfigFile(dir string) string {
	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
