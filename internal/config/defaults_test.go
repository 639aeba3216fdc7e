package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/releasekit/verconfig/internal/scheme"
)

func TestDefaultConfiguration_Baseline(t *testing.T) {
	cfg := DefaultConfiguration()

	require.Equal(t, "[vV]", *cfg.TagPrefix)
	require.Equal(t, scheme.AssemblyVersioningSchemeMajorMinorPatch, *cfg.AssemblyVersioningScheme)
	require.Equal(t, scheme.VersioningModeContinuousDelivery, *cfg.Mode)
	require.Nil(t, cfg.NextVersion)
	require.Nil(t, cfg.AssemblyInformationalFormat)
}

func TestDefaultConfiguration_BuiltinBranches(t *testing.T) {
	cfg := DefaultConfiguration()

	require.Len(t, cfg.Branches, 2)

	dev := cfg.Branches[DevelopPattern]
	require.Equal(t, "unstable", *dev.Tag)
	require.Equal(t, scheme.IncrementStrategyMinor, *dev.Increment)
	require.Nil(t, dev.Mode)

	rel := cfg.Branches[ReleasePattern]
	require.Equal(t, "beta", *rel.Tag)
	require.Equal(t, scheme.IncrementStrategyNone, *rel.Increment)
	require.Nil(t, rel.Mode)
}

func TestDefaultConfiguration_FreshInstancePerCall(t *testing.T) {
	first := DefaultConfiguration()
	*first.TagPrefix = "mutated"
	*first.Branches[DevelopPattern].Tag = "mutated"

	second := DefaultConfiguration()
	require.Equal(t, "[vV]", *second.TagPrefix)
	require.Equal(t, "unstable", *second.Branches[DevelopPattern].Tag)
}

func TestDefaultTagPrefixConstant(t *testing.T) {
	require.Equal(t, "[vV]", DefaultTagPrefix)
}
