// Package config implements the configuration resolution engine: YAML
// document loading, legacy-key detection, default configuration, branch
// pattern normalization, and the presence-wins merge onto defaults.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/releasekit/verconfig/internal/scheme"
)

// Config is the root configuration document. All optional fields are
// pointers so that "key absent" (nil) is distinct from "key present with
// an empty value" during merging.
type Config struct {
	AssemblyVersioningScheme    *scheme.AssemblyVersioningScheme `yaml:"assembly-versioning-scheme" json:"assembly-versioning-scheme,omitempty"`
	AssemblyInformationalFormat *string                          `yaml:"assembly-informational-format" json:"assembly-informational-format,omitempty"`
	NextVersion                 *VersionString                   `yaml:"next-version" json:"next-version,omitempty"`
	TagPrefix                   *string                          `yaml:"tag-prefix" json:"tag-prefix,omitempty"`
	Mode                        *scheme.VersioningMode           `yaml:"mode" json:"mode,omitempty"`
	Branches                    map[string]*BranchConfig         `yaml:"branches" json:"branches,omitempty"`
}

// VersionString preserves a next-version scalar exactly as written in the
// document. YAML would otherwise refuse to decode a bare integer into a
// string field; the merge promotes bare integers to "<n>.0" afterwards.
type VersionString string

// UnmarshalYAML implements yaml.Unmarshaler for VersionString.
func (v *VersionString) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("next-version must be a scalar value")
	}
	*v = VersionString(value.Value)
	return nil
}

// MarshalYAML implements yaml.Marshaler for VersionString.
func (v VersionString) MarshalYAML() (any, error) {
	return string(v), nil
}

// Clone returns a deep copy of the configuration. The copy owns its own
// branch map; mutating it never affects the receiver.
func (cfg *Config) Clone() *Config {
	if cfg == nil {
		return nil
	}
	out := &Config{
		AssemblyVersioningScheme:    cloneptr(cfg.AssemblyVersioningScheme),
		AssemblyInformationalFormat: cloneptr(cfg.AssemblyInformationalFormat),
		NextVersion:                 cloneptr(cfg.NextVersion),
		TagPrefix:                   cloneptr(cfg.TagPrefix),
		Mode:                        cloneptr(cfg.Mode),
	}
	if cfg.Branches != nil {
		out.Branches = make(map[string]*BranchConfig, len(cfg.Branches))
		for pattern, branch := range cfg.Branches {
			out.Branches[pattern] = branch.Clone()
		}
	}
	return out
}
