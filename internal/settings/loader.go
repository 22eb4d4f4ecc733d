package settings

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and parses a settings document from path.
func Load(path string) (*QuerySettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}
	return s, nil
}

// Parse parses a YAML settings document and applies defaults.
func Parse(data []byte) (*QuerySettings, error) {
	var s QuerySettings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}

	for i := range s.Filters {
		f := &s.Filters[i]
		if f.FieldType == "" {
			f.FieldType = FieldTypeText
		}
		if f.Join == "" {
			f.Join = JoinAnd
		}
		if !f.FieldType.Valid() {
			return nil, fmt.Errorf("filter %d: unknown field type %q", f.Index, f.FieldType)
		}
		if !f.Operator.Valid() {
			return nil, fmt.Errorf("filter %d: unknown operator %q", f.Index, f.Operator)
		}
		if !f.Join.Valid() {
			return nil, fmt.Errorf("filter %d: unknown join %q", f.Index, f.Join)
		}
	}

	return &s, nil
}

// Marshal renders settings back to YAML, for the saved-query library.
func Marshal(s *QuerySettings) ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal settings: %w", err)
	}
	return data, nil
}
