package config

import "gopkg.in/yaml.v3"

// legacyKeys maps deprecated top-level keys to the guidance shown in the
// aggregated error. Immutable after process start.
var legacyKeys = map[string]string{
	"assemblyVersioningScheme": "assembly-versioning-scheme",
}

// legacyBranchTagKeys are deprecated keys that have no one-to-one
// replacement; they always resolve to the generic branch-configuration
// guidance below.
var legacyBranchTagKeys = map[string]bool{
	"develop-branch-tag": true,
	"release-branch-tag": true,
}

const branchTagGuidance = "branch specific configuration. See docs/configuration.md#branches"

// detectLegacyKeys scans the raw document tree for deprecated keys, both
// at the top level and inside every branch-level mapping. It runs to
// completion and returns a single aggregated OldConfigurationError listing
// every violation in document order, or nil when the document is clean.
func detectLegacyKeys(root *yaml.Node) error {
	mapping := mappingNode(root)
	if mapping == nil {
		return nil
	}

	var violations []string
	// Branch-level mappings are only checked against the branch-tag key
	// set; the top-level legacy keys were never valid inside a branch.
	scanBranch := func(m *yaml.Node) {
		for i := 0; i+1 < len(m.Content); i += 2 {
			if key := m.Content[i].Value; legacyBranchTagKeys[key] {
				violations = append(violations, key+" has been replaced by "+branchTagGuidance)
			}
		}
	}

	// Single pass so violations come out in document-encounter order even
	// when the branches block precedes later top-level keys.
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key := mapping.Content[i]
		value := mapping.Content[i+1]

		if replacement, ok := legacyKeys[key.Value]; ok {
			violations = append(violations, key.Value+" has been replaced by "+replacement)
			continue
		}
		if legacyBranchTagKeys[key.Value] {
			violations = append(violations, key.Value+" has been replaced by "+branchTagGuidance)
			continue
		}

		if key.Value == "branches" && value.Kind == yaml.MappingNode {
			for j := 0; j+1 < len(value.Content); j += 2 {
				if branch := value.Content[j+1]; branch.Kind == yaml.MappingNode {
					scanBranch(branch)
				}
			}
		}
	}

	if len(violations) > 0 {
		return &OldConfigurationError{Violations: violations}
	}
	return nil
}

// mappingNode unwraps a document node to its top-level mapping, or nil
// for empty or non-mapping documents.
func mappingNode(root *yaml.Node) *yaml.Node {
	if root == nil {
		return nil
	}
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil
		}
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil
	}
	return root
}
