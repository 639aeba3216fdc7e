package config

import "github.com/releasekit/verconfig/internal/scheme"

func cloneptr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func stringPtr(s string) *string { return &s }

func versionPtr(s string) *VersionString {
	v := VersionString(s)
	return &v
}

func schemePtr(s scheme.AssemblyVersioningScheme) *scheme.AssemblyVersioningScheme {
	return &s
}

func versioningModePtr(m scheme.VersioningMode) *scheme.VersioningMode {
	return &m
}

func incrementPtr(s scheme.IncrementStrategy) *scheme.IncrementStrategy {
	return &s
}
