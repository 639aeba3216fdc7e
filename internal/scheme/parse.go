package scheme

import "strings"

// normalizeEnumInput lowercases and strips hyphens so that "MajorMinorPatch",
// "major-minor-patch" and "majorminorpatch" all parse to the same member.
func normalizeEnumInput(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), "-", "")
}

var assemblyVersioningSchemes = []AssemblyVersioningScheme{
	AssemblyVersioningSchemeMajorMinorPatchTag,
	AssemblyVersioningSchemeMajorMinorPatch,
	AssemblyVersioningSchemeMajorMinor,
	AssemblyVersioningSchemeMajor,
	AssemblyVersioningSchemeNone,
}

var versioningModes = []VersioningMode{
	VersioningModeContinuousDelivery,
	VersioningModeContinuousDeployment,
	VersioningModeMainline,
}

var incrementStrategies = []IncrementStrategy{
	IncrementStrategyNone,
	IncrementStrategyMajor,
	IncrementStrategyMinor,
	IncrementStrategyPatch,
	IncrementStrategyInherit,
}

// AssemblyVersioningSchemeValues returns the allowed spellings, in
// declaration order, for error messages and documentation.
func AssemblyVersioningSchemeValues() []string {
	return enumNames(assemblyVersioningSchemes)
}

// VersioningModeValues returns the allowed spellings of VersioningMode.
func VersioningModeValues() []string {
	return enumNames(versioningModes)
}

// IncrementStrategyValues returns the allowed spellings of IncrementStrategy.
func IncrementStrategyValues() []string {
	return enumNames(incrementStrategies)
}

func enumNames[T interface{ String() string }](members []T) []string {
	names := make([]string, len(members))
	for i, m := range members {
		names[i] = m.String()
	}
	return names
}

// ParseAssemblyVersioningScheme parses a scheme name case-insensitively,
// accepting hyphenated spellings.
func ParseAssemblyVersioningScheme(s string) (AssemblyVersioningScheme, error) {
	for _, m := range assemblyVersioningSchemes {
		if normalizeEnumInput(s) == normalizeEnumInput(m.String()) {
			return m, nil
		}
	}
	return 0, &InvalidEnumValueError{
		Field:   "assembly-versioning-scheme",
		Value:   s,
		Allowed: AssemblyVersioningSchemeValues(),
	}
}

// ParseVersioningMode parses a versioning mode name case-insensitively.
func ParseVersioningMode(s string) (VersioningMode, error) {
	for _, m := range versioningModes {
		if normalizeEnumInput(s) == normalizeEnumInput(m.String()) {
			return m, nil
		}
	}
	return 0, &InvalidEnumValueError{
		Field:   "mode",
		Value:   s,
		Allowed: VersioningModeValues(),
	}
}

// ParseIncrementStrategy parses an increment strategy name case-insensitively.
func ParseIncrementStrategy(s string) (IncrementStrategy, error) {
	for _, m := range incrementStrategies {
		if normalizeEnumInput(s) == normalizeEnumInput(m.String()) {
			return m, nil
		}
	}
	return 0, &InvalidEnumValueError{
		Field:   "increment",
		Value:   s,
		Allowed: IncrementStrategyValues(),
	}
}
