package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/releasekit/verconfig/internal/scheme"
)

func TestEffectiveBranch_BuiltinDefaults(t *testing.T) {
	cfg := Resolve(&Config{})

	dev, ok := cfg.EffectiveBranch(DevelopPattern)
	require.True(t, ok)
	require.Equal(t, DevelopPattern, dev.Pattern)
	require.Equal(t, "unstable", dev.Tag)
	require.Equal(t, scheme.IncrementStrategyMinor, dev.Increment)
	// Mode is unset on the branch; it inherits the top level.
	require.Equal(t, scheme.VersioningModeContinuousDelivery, dev.Mode)
}

func TestEffectiveBranch_ModeInheritsTopLevelOverride(t *testing.T) {
	cfg := Resolve(&Config{Mode: versioningModePtr(scheme.VersioningModeMainline)})

	rel, ok := cfg.EffectiveBranch(ReleasePattern)
	require.True(t, ok)
	require.Equal(t, scheme.VersioningModeMainline, rel.Mode)
}

func TestEffectiveBranch_ExplicitModeBeatsInheritance(t *testing.T) {
	doc := &Config{
		Mode: versioningModePtr(scheme.VersioningModeMainline),
		Branches: map[string]*BranchConfig{
			"develop": {Mode: versioningModePtr(scheme.VersioningModeContinuousDeployment)},
		},
	}
	cfg := Resolve(doc)

	dev, ok := cfg.EffectiveBranch(DevelopPattern)
	require.True(t, ok)
	require.Equal(t, scheme.VersioningModeContinuousDeployment, dev.Mode)
}

func TestEffectiveBranch_NewPatternReadTimeFallbacks(t *testing.T) {
	doc := &Config{
		Branches: map[string]*BranchConfig{
			"bug[/-]": {},
		},
	}
	cfg := Resolve(doc)

	bug, ok := cfg.EffectiveBranch("bug[/-]")
	require.True(t, ok)
	require.Equal(t, "", bug.Tag)
	require.Equal(t, scheme.IncrementStrategyInherit, bug.Increment)
	require.Equal(t, scheme.VersioningModeContinuousDelivery, bug.Mode)
}

func TestEffectiveBranch_UnknownPattern(t *testing.T) {
	cfg := Resolve(&Config{})
	_, ok := cfg.EffectiveBranch("^nope$")
	require.False(t, ok)
}
