package config

import "strings"

// oldConfigurationHeader is the first line of every OldConfigurationError
// message. The per-violation lines follow in document order.
const oldConfigurationHeader = "The configuration contains obsolete settings that must be updated:"

// OldConfigurationError aggregates every legacy-key violation found in a
// document. The load aborts before any merge when this error is returned;
// all violations are collected first so the user fixes them in one pass.
type OldConfigurationError struct {
	// Violations holds one "<old-key> has been replaced by <guidance>"
	// line per legacy key, in document-encounter order.
	Violations []string
}

func (e *OldConfigurationError) Error() string {
	return oldConfigurationHeader + "\n" + strings.Join(e.Violations, "\n")
}
