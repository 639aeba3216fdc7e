package config

import "github.com/releasekit/verconfig/internal/scheme"

// BranchConfig holds per-branch configuration, keyed in Config.Branches by
// its canonical match pattern. All fields are pointers to support merge
// semantics: nil means "not set, inherit at read time". An explicit empty
// tag (&"") is a valid value distinct from absence.
type BranchConfig struct {
	Tag       *string                   `yaml:"tag" json:"tag,omitempty"`
	Mode      *scheme.VersioningMode    `yaml:"mode" json:"mode,omitempty"`
	Increment *scheme.IncrementStrategy `yaml:"increment" json:"increment,omitempty"`
}

// MergeTo copies non-nil fields from bc into target. Used for overlay
// semantics: user config overrides defaults where specified, per field.
func (bc *BranchConfig) MergeTo(target *BranchConfig) {
	if bc == nil || target == nil {
		return
	}
	if bc.Tag != nil {
		target.Tag = cloneptr(bc.Tag)
	}
	if bc.Mode != nil {
		target.Mode = cloneptr(bc.Mode)
	}
	if bc.Increment != nil {
		target.Increment = cloneptr(bc.Increment)
	}
}

// Clone returns a deep copy of the branch configuration.
func (bc *BranchConfig) Clone() *BranchConfig {
	if bc == nil {
		return nil
	}
	return &BranchConfig{
		Tag:       cloneptr(bc.Tag),
		Mode:      cloneptr(bc.Mode),
		Increment: cloneptr(bc.Increment),
	}
}
