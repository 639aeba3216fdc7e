package config

import "github.com/releasekit/verconfig/internal/scheme"

// DefaultTagPrefix is the tag-prefix applied when the document does not
// set one. It is a regex matching an optional leading v or V on tags.
const DefaultTagPrefix = "[vV]"

// DefaultConfiguration returns a fully populated baseline configuration
// with the two built-in branch rules: the development family and the
// release family. A fresh value is constructed on every call, so callers
// may mutate the result freely; resolution is idempotent.
func DefaultConfiguration() *Config {
	return &Config{
		AssemblyVersioningScheme: schemePtr(scheme.AssemblyVersioningSchemeMajorMinorPatch),
		TagPrefix:                stringPtr(DefaultTagPrefix),
		Mode:                     versioningModePtr(scheme.VersioningModeContinuousDelivery),
		Branches: map[string]*BranchConfig{
			DevelopPattern: defaultDevelopBranch(),
			ReleasePattern: defaultReleaseBranch(),
		},
	}
}

func defaultDevelopBranch() *BranchConfig {
	return &BranchConfig{
		Tag:       stringPtr("unstable"),
		Increment: incrementPtr(scheme.IncrementStrategyMinor),
	}
}

func defaultReleaseBranch() *BranchConfig {
	return &BranchConfig{
		Tag:       stringPtr("beta"),
		Increment: incrementPtr(scheme.IncrementStrategyNone),
	}
}
