package config

import (
	"fmt"
	"regexp"
	"sort"
)

// MatchBranch returns the effective configuration of every branch family
// whose pattern matches the given branch name, sorted by pattern for
// determinism. Patterns that do not compile as regexes are reported as an
// error naming the offending pattern.
func (cfg *Config) MatchBranch(branchName string) ([]EffectiveBranchConfiguration, error) {
	var matches []EffectiveBranchConfiguration

	for pattern := range cfg.Branches {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid branch pattern %q: %w", pattern, err)
		}
		if re.MatchString(branchName) {
			eb, _ := cfg.EffectiveBranch(pattern)
			matches = append(matches, eb)
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Pattern < matches[j].Pattern
	})
	return matches, nil
}
