package models

import "strings"

// SourceKind discriminates the three possible resolutions of a target field.
type SourceKind string

const (
	SourceColumn   SourceKind = "column"
	SourceConstant SourceKind = "constant"
	SourceUnmapped SourceKind = "unmapped"
)

// Source binds a target field to a source column, a constant, or nothing.
// Constant values themselves live in Mapping.Constants so that the same
// configuration shape round-trips through the mapping file.
type Source struct {
	Kind   SourceKind `json:"kind" yaml:"kind"`
	Column string     `json:"column,omitempty" yaml:"column,omitempty"`
}

// ColumnSource returns a Source bound to the named column.
func ColumnSource(column string) Source {
	return Source{Kind: SourceColumn, Column: column}
}

// ConstantSource returns a Source resolved from the mapping's constant table.
func ConstantSource() Source {
	return Source{Kind: SourceConstant}
}

// Unmapped returns an empty Source.
func Unmapped() Source {
	return Source{Kind: SourceUnmapped}
}

// IsUnmapped reports whether the source resolves to nothing.
func (s Source) IsUnmapped() bool {
	return s.Kind == SourceUnmapped || (s.Kind == SourceColumn && s.Column == "")
}

// Row is one record of the uploaded tabular data, keyed by column name.
// Values are raw cell text as read from the source file.
type Row map[string]string

// Get returns the trimmed cell value for a column, tolerating headers that
// differ only by surrounding whitespace.
func (r Row) Get(column string) string {
	if v, ok := r[column]; ok {
		return strings.TrimSpace(v)
	}
	for k, v := range r {
		if strings.TrimSpace(k) == column {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// Mapping assigns each target field a Source plus the constant table backing
// constant-kind sources. A source column may serve several target fields.
type Mapping struct {
	Fields    map[string]Source `json:"fields" yaml:"fields"`
	Constants map[string]string `json:"constants,omitempty" yaml:"constants,omitempty"`
}

// NewMapping returns an empty mapping ready for assignment.
func NewMapping() Mapping {
	return Mapping{
		Fields:    make(map[string]Source),
		Constants: make(map[string]string),
	}
}

// SourceFor returns the source assigned to a field, or Unmapped when absent.
func (m Mapping) SourceFor(field string) Source {
	if s, ok := m.Fields[field]; ok {
		return s
	}
	return Unmapped()
}

// Resolve returns the raw value for a field against one row and whether the
// field is mapped at all. Constants resolve identically for every row.
func (m Mapping) Resolve(field string, row Row) (string, bool) {
	src := m.SourceFor(field)
	switch src.Kind {
	case SourceColumn:
		if src.Column == "" {
			return "", false
		}
		return row.Get(src.Column), true
	case SourceConstant:
		return strings.TrimSpace(m.Constants[field]), true
	default:
		return "", false
	}
}

// SetColumn maps a field to a source column.
func (m *Mapping) SetColumn(field, column string) {
	m.Fields[field] = ColumnSource(column)
}

// SetConstant maps a field to a fixed value applied to every row.
func (m *Mapping) SetConstant(field, value string) {
	m.Fields[field] = ConstantSource()
	if m.Constants == nil {
		m.Constants = make(map[string]string)
	}
	m.Constants[field] = value
}

// Unmap removes the source assignment for a field.
func (m *Mapping) Unmap(field string) {
	delete(m.Fields, field)
	delete(m.Constants, field)
}

// MappedFields returns the names of all fields with a non-unmapped source.
func (m Mapping) MappedFields() []string {
	names := make([]string, 0, len(m.Fields))
	for name, src := range m.Fields {
		if !src.IsUnmapped() {
			names = append(names, name)
		}
	}
	return names
}
