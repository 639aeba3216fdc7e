package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFromFile reads and parses a configuration document. Legacy keys are
// rejected before the document model is decoded.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes parses a configuration document from raw YAML bytes. The
// raw node tree is scanned for legacy keys first; only a clean document is
// decoded into the typed model, where malformed enum values fail with
// scheme.InvalidEnumValueError.
func LoadFromBytes(data []byte) (*Config, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := detectLegacyKeys(&root); err != nil {
		return nil, err
	}

	// An empty document has no content nodes and nothing to decode.
	if mappingNode(&root) == nil {
		return &Config{}, nil
	}

	var cfg Config
	if err := root.Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
