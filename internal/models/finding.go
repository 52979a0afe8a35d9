package models

import "fmt"

// Severity ranks a validation finding. Errors block generation, warnings are
// advisory.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// ValidationFinding attributes one validation outcome to a field and,
// when row-specific, to a 1-based row number (0 means mapping-level).
type ValidationFinding struct {
	Field    string   `json:"field" csv:"field"`
	Row      int      `json:"row,omitempty" csv:"row"`
	Severity Severity `json:"severity" csv:"severity"`
	Message  string   `json:"message" csv:"message"`
}

func (f ValidationFinding) String() string {
	if f.Row > 0 {
		return fmt.Sprintf("[%s] %s (row %d): %s", f.Severity, f.Field, f.Row, f.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", f.Severity, f.Field, f.Message)
}

// HasErrors reports whether any finding in the list is error-severity.
// Generation must not proceed while this returns true.
func HasErrors(findings []ValidationFinding) bool {
	for _, f := range findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

// MappingConfig is the on-disk shape of a mapping session: field sources,
// constants, and any user-defined fields. Exporting then importing a config
// must reproduce identical generation output against the same dataset.
type MappingConfig struct {
	Fields       map[string]Source `json:"fields" yaml:"fields"`
	Constants    map[string]string `json:"constants,omitempty" yaml:"constants,omitempty"`
	CustomFields []FieldDefinition `json:"custom_fields,omitempty" yaml:"custom_fields,omitempty"`
}

// Mapping extracts the mapping portion of the configuration.
func (c MappingConfig) Mapping() Mapping {
	m := NewMapping()
	for name, src := range c.Fields {
		m.Fields[name] = src
	}
	for name, v := range c.Constants {
		m.Constants[name] = v
	}
	return m
}
