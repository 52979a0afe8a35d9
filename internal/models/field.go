// Package models provides the data structures used throughout the application.
package models

import "fmt"

// DataType identifies the target type a raw cell value is transformed into
// before it is written to the report.
type DataType string

const (
	TypeString   DataType = "string"
	TypeDate     DataType = "date"
	TypeDateTime DataType = "datetime"
	TypeDecimal  DataType = "decimal"
	TypeInteger  DataType = "integer"
	TypeBoolean  DataType = "boolean"
	TypeEnum     DataType = "enum"
)

// ParseDataType converts a string to a DataType, rejecting unknown values.
func ParseDataType(s string) (DataType, error) {
	switch DataType(s) {
	case TypeString, TypeDate, TypeDateTime, TypeDecimal, TypeInteger, TypeBoolean, TypeEnum:
		return DataType(s), nil
	}
	return "", fmt.Errorf("unknown data type: %q", s)
}

// Category classifies how a field participates in report generation.
type Category string

const (
	CategoryRequired    Category = "required"
	CategoryConditional Category = "conditional"
	CategoryOptional    Category = "optional"
	CategoryConstant    Category = "constant"
)

// Categories lists all categories in their canonical ordering. Custom fields
// are grouped by this ordering in the custom-only report.
var Categories = []Category{CategoryRequired, CategoryConditional, CategoryOptional, CategoryConstant}

// ParseCategory converts a string to a Category, rejecting unknown values.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryRequired, CategoryConditional, CategoryOptional, CategoryConstant:
		return Category(s), nil
	}
	return "", fmt.Errorf("unknown field category: %q", s)
}

// CaseTransform selects an optional case normalization applied by the string
// and enum transformers.
type CaseTransform string

const (
	CaseNone  CaseTransform = ""
	CaseUpper CaseTransform = "upper"
	CaseLower CaseTransform = "lower"
)

// Condition declares a cross-field trigger for a conditional field.
// When the referenced field resolves (per row) to one of the trigger values,
// or resolves empty with WhenEmpty set, the conditional field is treated as
// required for that row.
type Condition struct {
	Field     string   `json:"field" yaml:"field"`
	Equals    []string `json:"equals,omitempty" yaml:"equals,omitempty"`
	WhenEmpty bool     `json:"when_empty,omitempty" yaml:"when_empty,omitempty"`
}

// FieldDefinition describes one target field of the auth.016.001.01 report:
// where it lives in the XML tree, how its value is typed, and whether a
// mapping for it is mandatory.
//
// XMLPath is the ordered sequence of element names below the repeating
// transaction block. A final segment starting with '@' addresses an attribute
// of the preceding element (e.g. ["Tx", "Pric", ..., "Amt", "@Ccy"]).
type FieldDefinition struct {
	Name        string        `json:"name" yaml:"name"`
	XMLPath     []string      `json:"xml_path" yaml:"xml_path"`
	Type        DataType      `json:"type" yaml:"type"`
	Category    Category      `json:"category" yaml:"category"`
	EnumValues  []string      `json:"enum_values,omitempty" yaml:"enum_values,omitempty"`
	Synonyms    []string      `json:"synonyms,omitempty" yaml:"synonyms,omitempty"`
	Case        CaseTransform `json:"case,omitempty" yaml:"case,omitempty"`
	MaxLen      int           `json:"max_len,omitempty" yaml:"max_len,omitempty"`
	AlnumOnly   bool          `json:"alnum_only,omitempty" yaml:"alnum_only,omitempty"`
	EmitEmpty   bool          `json:"emit_empty,omitempty" yaml:"emit_empty,omitempty"`
	Condition   *Condition    `json:"condition,omitempty" yaml:"condition,omitempty"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty"`
	Example     string        `json:"example,omitempty" yaml:"example,omitempty"`
}

// IsRequired reports whether the field must resolve to a source or constant
// before generation may proceed.
func (f FieldDefinition) IsRequired() bool {
	return f.Category == CategoryRequired
}

// IsAttribute reports whether the field addresses an XML attribute rather
// than an element.
func (f FieldDefinition) IsAttribute() bool {
	if len(f.XMLPath) == 0 {
		return false
	}
	last := f.XMLPath[len(f.XMLPath)-1]
	return len(last) > 0 && last[0] == '@'
}
