package config

import (
	"regexp"
	"sort"
)

// Builder constructs the effective configuration by overlaying document
// overrides onto the built-in defaults. Overlays follow the presence-wins
// rule: a field set in a later override replaces the value beneath it, an
// absent field inherits.
type Builder struct {
	overrides []*Config
}

// NewBuilder creates a new configuration builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add adds a configuration override. Overrides are applied in order:
// later overrides take precedence over earlier ones.
func (b *Builder) Add(override *Config) *Builder {
	if override != nil {
		b.overrides = append(b.overrides, override)
	}
	return b
}

// Build resolves the effective configuration. It starts from a fresh
// default configuration on every call, so repeated builds are idempotent
// and the result shares no state with the overrides or other builds.
// Build never fails: malformed enum values are rejected earlier, at
// document decode.
func (b *Builder) Build() *Config {
	cfg := DefaultConfiguration()
	for _, override := range b.overrides {
		mergeConfig(cfg, override)
	}
	return cfg
}

// Resolve overlays a single parsed document onto the defaults. It is the
// common single-document path over Builder.
func Resolve(doc *Config) *Config {
	return NewBuilder().Add(doc).Build()
}

// mergeConfig applies the non-nil fields of src onto dst.
func mergeConfig(dst, src *Config) {
	if src.AssemblyVersioningScheme != nil {
		dst.AssemblyVersioningScheme = cloneptr(src.AssemblyVersioningScheme)
	}
	if src.AssemblyInformationalFormat != nil {
		dst.AssemblyInformationalFormat = cloneptr(src.AssemblyInformationalFormat)
	}
	if src.NextVersion != nil {
		dst.NextVersion = versionPtr(promoteNextVersion(string(*src.NextVersion)))
	}
	if src.TagPrefix != nil {
		dst.TagPrefix = cloneptr(src.TagPrefix)
	}
	if src.Mode != nil {
		dst.Mode = cloneptr(src.Mode)
	}

	// Branch entries merge per key. The raw key is normalized first so an
	// alias override lands on the canonical default entry instead of
	// duplicating it. New entries are deep-copied: the merged config owns
	// its branch map exclusively. Keys are visited in sorted order so two
	// aliases colliding on the same canonical pattern resolve the same way
	// on every run.
	rawKeys := make([]string, 0, len(src.Branches))
	for rawKey := range src.Branches {
		rawKeys = append(rawKeys, rawKey)
	}
	sort.Strings(rawKeys)
	for _, rawKey := range rawKeys {
		srcBranch := src.Branches[rawKey]
		pattern := NormalizeBranchPattern(rawKey)
		if dstBranch, ok := dst.Branches[pattern]; ok {
			srcBranch.MergeTo(dstBranch)
		} else {
			dst.Branches[pattern] = srcBranch.Clone()
		}
	}
}

var bareIntegerPattern = regexp.MustCompile(`^\d+$`)

// promoteNextVersion coerces a bare integer next-version to a two part
// version string: "2" becomes "2.0". Anything else passes through
// verbatim, including arbitrarily large dotted numerics and non-numeric
// text. Promotion never fails.
func promoteNextVersion(raw string) string {
	if bareIntegerPattern.MatchString(raw) {
		return raw + ".0"
	}
	return raw
}
