package config

import "github.com/releasekit/verconfig/internal/scheme"

// EffectiveBranchConfiguration is a branch entry with every optional
// field resolved: mode inherits from the top-level configuration,
// increment falls back to Inherit, and an unset tag resolves to empty.
type EffectiveBranchConfiguration struct {
	Pattern   string
	Tag       string
	Mode      scheme.VersioningMode
	Increment scheme.IncrementStrategy
}

// EffectiveBranch resolves the branch entry stored under the given
// canonical pattern. Inheritance happens here, at read time: the merged
// Config keeps nil for fields neither the document nor the defaults set.
// The second return value reports whether the pattern exists.
func (cfg *Config) EffectiveBranch(pattern string) (EffectiveBranchConfiguration, bool) {
	branch, ok := cfg.Branches[pattern]
	if !ok {
		return EffectiveBranchConfiguration{}, false
	}
	return EffectiveBranchConfiguration{
		Pattern:   pattern,
		Tag:       derefString(branch.Tag, ""),
		Mode:      derefVersioningMode(branch.Mode, derefVersioningMode(cfg.Mode, scheme.VersioningModeContinuousDelivery)),
		Increment: derefIncrementStrategy(branch.Increment, scheme.IncrementStrategyInherit),
	}, true
}

func derefString(p *string, fallback string) string {
	if p != nil {
		return *p
	}
	return fallback
}

func derefVersioningMode(p *scheme.VersioningMode, fallback scheme.VersioningMode) scheme.VersioningMode {
	if p != nil {
		return *p
	}
	return fallback
}

func derefIncrementStrategy(p *scheme.IncrementStrategy, fallback scheme.IncrementStrategy) scheme.IncrementStrategy {
	if p != nil {
		return *p
	}
	return fallback
}
