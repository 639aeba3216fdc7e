package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchBranch_BuiltinFamilies(t *testing.T) {
	cfg := Resolve(&Config{})

	tests := []struct {
		branch string
		want   string
	}{
		{"develop", DevelopPattern},
		{"development", DevelopPattern},
		{"release/1.2", ReleasePattern},
		{"release-1.2", ReleasePattern},
		{"releases/2.0", ReleasePattern},
	}
	for _, tt := range tests {
		t.Run(tt.branch, func(t *testing.T) {
			matches, err := cfg.MatchBranch(tt.branch)
			require.NoError(t, err)
			require.Len(t, matches, 1)
			require.Equal(t, tt.want, matches[0].Pattern)
		})
	}
}

func TestMatchBranch_NoMatch(t *testing.T) {
	cfg := Resolve(&Config{})
	matches, err := cfg.MatchBranch("feature/login")
	require.NoError(t, err)
	require.Empty(t, matches)
}

func TestMatchBranch_UserDefinedFamily(t *testing.T) {
	doc := &Config{
		Branches: map[string]*BranchConfig{
			"bug[/-]": {Tag: stringPtr("bugfix")},
		},
	}
	cfg := Resolve(doc)

	matches, err := cfg.MatchBranch("bug/crash-on-start")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, "bugfix", matches[0].Tag)
}

func TestMatchBranch_DeterministicOrder(t *testing.T) {
	doc := &Config{
		Branches: map[string]*BranchConfig{
			"rel":  {Tag: stringPtr("a")},
			"rele": {Tag: stringPtr("b")},
		},
	}
	cfg := Resolve(doc)

	matches, err := cfg.MatchBranch("release/1.0")
	require.NoError(t, err)
	require.Len(t, matches, 3)
	require.Equal(t, "rel", matches[0].Pattern)
	require.Equal(t, "rele", matches[1].Pattern)
	require.Equal(t, ReleasePattern, matches[2].Pattern)
}

func TestMatchBranch_InvalidPattern(t *testing.T) {
	doc := &Config{
		Branches: map[string]*BranchConfig{
			"[broken": {},
		},
	}
	cfg := Resolve(doc)

	_, err := cfg.MatchBranch("anything")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid branch pattern")
}
