package scheme

import (
	"strconv"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML implements yaml.Unmarshaler for AssemblyVersioningScheme.
func (s *AssemblyVersioningScheme) UnmarshalYAML(value *yaml.Node) error {
	var str string
	if err := value.Decode(&str); err != nil {
		return err
	}
	parsed, err := ParseAssemblyVersioningScheme(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for AssemblyVersioningScheme.
func (s AssemblyVersioningScheme) MarshalYAML() (any, error) {
	return s.String(), nil
}

// MarshalJSON implements json.Marshaler for AssemblyVersioningScheme.
func (s AssemblyVersioningScheme) MarshalJSON() ([]byte, error) {
	return quoted(s.String()), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for VersioningMode.
func (m *VersioningMode) UnmarshalYAML(value *yaml.Node) error {
	var str string
	if err := value.Decode(&str); err != nil {
		return err
	}
	parsed, err := ParseVersioningMode(str)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for VersioningMode.
func (m VersioningMode) MarshalYAML() (any, error) {
	return m.String(), nil
}

// MarshalJSON implements json.Marshaler for VersioningMode.
func (m VersioningMode) MarshalJSON() ([]byte, error) {
	return quoted(m.String()), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for IncrementStrategy.
func (s *IncrementStrategy) UnmarshalYAML(value *yaml.Node) error {
	var str string
	if err := value.Decode(&str); err != nil {
		return err
	}
	parsed, err := ParseIncrementStrategy(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for IncrementStrategy.
func (s IncrementStrategy) MarshalYAML() (any, error) {
	return s.String(), nil
}

// MarshalJSON implements json.Marshaler for IncrementStrategy.
func (s IncrementStrategy) MarshalJSON() ([]byte, error) {
	return quoted(s.String()), nil
}

func quoted(s string) []byte {
	return []byte(strconv.Quote(s))
}
