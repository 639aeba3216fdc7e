package config

// Canonical branch match patterns for the built-in branch families.
// DevelopPattern matches develop, development and dev; ReleasePattern
// matches release branches with either a slash or hyphen separator.
const (
	DevelopPattern = `dev(elop)?(ment)?$`
	ReleasePattern = `releases?[/-]`
)

// branchAliases maps short branch keys a user may type to the canonical
// pattern used as the branch map key. Each canonical pattern also maps to
// itself so normalization is idempotent.
var branchAliases = map[string]string{
	"dev":          DevelopPattern,
	"develop":      DevelopPattern,
	"development":  DevelopPattern,
	DevelopPattern: DevelopPattern,
	"release":      ReleasePattern,
	"releases":     ReleasePattern,
	ReleasePattern: ReleasePattern,
}

// NormalizeBranchPattern maps a raw branch key to its canonical match
// pattern. Keys that are not a known alias are treated as already
// canonical and returned verbatim, which allows arbitrary user-defined
// branch families.
func NormalizeBranchPattern(raw string) string {
	if canonical, ok := branchAliases[raw]; ok {
		return canonical
	}
	return raw
}
