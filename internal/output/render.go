// Package output renders a merged configuration canonically for display
// and audit: fixed field order, branch keys sorted, unset optionals
// omitted. It only formats; it performs no coercion or validation.
package output

import (
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/releasekit/verconfig/internal/config"
)

// MarshalYAML serializes the configuration to canonical YAML. Two calls
// on equal configurations produce byte-identical output.
func MarshalYAML(cfg *config.Config) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}

	if cfg.AssemblyVersioningScheme != nil {
		appendScalar(root, "assembly-versioning-scheme", cfg.AssemblyVersioningScheme.String())
	}
	if cfg.AssemblyInformationalFormat != nil {
		appendScalar(root, "assembly-informational-format", *cfg.AssemblyInformationalFormat)
	}
	if cfg.NextVersion != nil {
		appendScalar(root, "next-version", string(*cfg.NextVersion))
	}
	if cfg.TagPrefix != nil {
		appendScalar(root, "tag-prefix", *cfg.TagPrefix)
	}
	if cfg.Mode != nil {
		appendScalar(root, "mode", cfg.Mode.String())
	}

	if len(cfg.Branches) > 0 {
		patterns := make([]string, 0, len(cfg.Branches))
		for pattern := range cfg.Branches {
			patterns = append(patterns, pattern)
		}
		sort.Strings(patterns)

		branches := &yaml.Node{Kind: yaml.MappingNode}
		for _, pattern := range patterns {
			branches.Content = append(branches.Content,
				scalarNode(pattern), branchNode(cfg.Branches[pattern]))
		}
		root.Content = append(root.Content, scalarNode("branches"), branches)
	}

	data, err := yaml.Marshal(root)
	if err != nil {
		return nil, fmt.Errorf("rendering configuration: %w", err)
	}
	return data, nil
}

// WriteYAML writes the canonical YAML rendering to w.
func WriteYAML(w io.Writer, cfg *config.Config) error {
	data, err := MarshalYAML(cfg)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func branchNode(branch *config.BranchConfig) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}
	if branch.Tag != nil {
		appendScalar(node, "tag", *branch.Tag)
	}
	if branch.Mode != nil {
		appendScalar(node, "mode", branch.Mode.String())
	}
	if branch.Increment != nil {
		appendScalar(node, "increment", branch.Increment.String())
	}
	return node
}

func appendScalar(mapping *yaml.Node, key, value string) {
	mapping.Content = append(mapping.Content, scalarNode(key), scalarNode(value))
}

func scalarNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}
