// Package scheme provides the versioning enumerations used by the
// configuration document: assembly versioning scheme, versioning mode,
// and increment strategy, with case-insensitive parsing and YAML codecs.
package scheme

// AssemblyVersioningScheme controls how many version components are
// stamped into assembly versions.
type AssemblyVersioningScheme int

const (
	AssemblyVersioningSchemeMajorMinorPatchTag AssemblyVersioningScheme = iota
	AssemblyVersioningSchemeMajorMinorPatch
	AssemblyVersioningSchemeMajorMinor
	AssemblyVersioningSchemeMajor
	AssemblyVersioningSchemeNone
)

func (s AssemblyVersioningScheme) String() string {
	switch s {
	case AssemblyVersioningSchemeMajorMinorPatchTag:
		return "MajorMinorPatchTag"
	case AssemblyVersioningSchemeMajorMinorPatch:
		return "MajorMinorPatch"
	case AssemblyVersioningSchemeMajorMinor:
		return "MajorMinor"
	case AssemblyVersioningSchemeMajor:
		return "Major"
	case AssemblyVersioningSchemeNone:
		return "None"
	default:
		return "Unknown"
	}
}

// VersioningMode represents the versioning mode.
type VersioningMode int

const (
	VersioningModeContinuousDelivery VersioningMode = iota
	VersioningModeContinuousDeployment
	VersioningModeMainline
)

func (m VersioningMode) String() string {
	switch m {
	case VersioningModeContinuousDelivery:
		return "ContinuousDelivery"
	case VersioningModeContinuousDeployment:
		return "ContinuousDeployment"
	case VersioningModeMainline:
		return "Mainline"
	default:
		return "Unknown"
	}
}

// IncrementStrategy represents the configured increment strategy for a branch.
type IncrementStrategy int

const (
	IncrementStrategyNone IncrementStrategy = iota
	IncrementStrategyMajor
	IncrementStrategyMinor
	IncrementStrategyPatch
	IncrementStrategyInherit
)

func (s IncrementStrategy) String() string {
	switch s {
	case IncrementStrategyNone:
		return "None"
	case IncrementStrategyMajor:
		return "Major"
	case IncrementStrategyMinor:
		return "Minor"
	case IncrementStrategyPatch:
		return "Patch"
	case IncrementStrategyInherit:
		return "Inherit"
	default:
		return "Unknown"
	}
}
