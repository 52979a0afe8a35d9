// Package mapperror defines the typed errors produced by the mapping,
// transformation, and generation core.
package mapperror

import "fmt"

// TransformError represents a cell value that failed type-specific
// parsing or normalization.
type TransformError struct {
	Field string
	Value string
	Type  string
	Err   error
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("%s: cannot transform %q to %s: %v", e.Field, e.Value, e.Type, e.Err)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// EnumViolationError represents a resolved value outside a field's declared
// enum domain. Invalid enum values are rejected, never coerced.
type EnumViolationError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *EnumViolationError) Error() string {
	return fmt.Sprintf("%s: value %q is not in the allowed set %v", e.Field, e.Value, e.Allowed)
}

// MappingIncompleteError represents a required field with no resolved source
// or constant at generation time.
type MappingIncompleteError struct {
	Field string
}

func (e *MappingIncompleteError) Error() string {
	return fmt.Sprintf("required field %q has no mapped source or constant", e.Field)
}

// DuplicateFieldError represents a custom field name colliding with a
// built-in or existing custom field.
type DuplicateFieldError struct {
	Name string
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("field name %q already exists", e.Name)
}

// SchemaStructureError represents a field definition whose XML path cannot
// be reconciled with the report structure. This is a programming error in
// the registry, not a data problem.
type SchemaStructureError struct {
	Field  string
	Reason string
}

func (e *SchemaStructureError) Error() string {
	return fmt.Sprintf("invalid schema structure for field %q: %s", e.Field, e.Reason)
}
