package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeBranchPattern_Aliases(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"dev", DevelopPattern},
		{"develop", DevelopPattern},
		{"development", DevelopPattern},
		{"release", ReleasePattern},
		{"releases", ReleasePattern},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			require.Equal(t, tt.want, NormalizeBranchPattern(tt.raw))
		})
	}
}

func TestNormalizeBranchPattern_CanonicalIsNoOp(t *testing.T) {
	require.Equal(t, DevelopPattern, NormalizeBranchPattern(DevelopPattern))
	require.Equal(t, ReleasePattern, NormalizeBranchPattern(ReleasePattern))
}

func TestNormalizeBranchPattern_Idempotent(t *testing.T) {
	for _, raw := range []string{"develop", "release", "bug[/-]", "feature/"} {
		once := NormalizeBranchPattern(raw)
		require.Equal(t, once, NormalizeBranchPattern(once))
	}
}

func TestNormalizeBranchPattern_UnknownPassesThrough(t *testing.T) {
	require.Equal(t, "bug[/-]", NormalizeBranchPattern("bug[/-]"))
	require.Equal(t, "^staging$", NormalizeBranchPattern("^staging$"))
}

func TestNormalizeBranchPattern_SpellingsOfOneFamilyCoincide(t *testing.T) {
	require.Equal(t, NormalizeBranchPattern("develop"), NormalizeBranchPattern("development"))
	require.Equal(t, NormalizeBranchPattern("release"), NormalizeBranchPattern("releases"))
}
