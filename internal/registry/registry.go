// Package registry holds the catalog of target report fields: the built-in
// auth.016.001.01 definitions plus any user-defined fields merged in for a
// session. Registry order is the schema emission order and is independent of
// how fields were mapped.
package registry

import (
	"fmt"
	"regexp"

	"mariosat/mifir-mapper/internal/mapperror"
	"mariosat/mifir-mapper/internal/models"
)

// Registry is an immutable, ordered field catalog.
type Registry struct {
	fields []models.FieldDefinition
	index  map[string]int
}

var elementNameRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// NewBuiltin returns the built-in field catalog.
func NewBuiltin() *Registry {
	r, err := fromFields(builtinFields)
	if err != nil {
		// The built-in catalog is static; a bad definition is a bug.
		panic(err)
	}
	return r
}

// New builds a registry from an explicit field list, preserving order.
func New(fields []models.FieldDefinition) (*Registry, error) {
	return fromFields(fields)
}

func fromFields(fields []models.FieldDefinition) (*Registry, error) {
	r := &Registry{
		fields: make([]models.FieldDefinition, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for _, f := range fields {
		if err := checkPath(f); err != nil {
			return nil, err
		}
		if _, exists := r.index[f.Name]; exists {
			return nil, &mapperror.DuplicateFieldError{Name: f.Name}
		}
		r.index[f.Name] = len(r.fields)
		r.fields = append(r.fields, f)
	}
	return r, nil
}

// checkPath validates a field's XML path structurally. A violation is a
// SchemaStructureError: the registry itself is broken, not the user's data.
func checkPath(f models.FieldDefinition) error {
	if f.Name == "" {
		return &mapperror.SchemaStructureError{Field: f.Name, Reason: "empty field name"}
	}
	if len(f.XMLPath) == 0 {
		return &mapperror.SchemaStructureError{Field: f.Name, Reason: "empty XML path"}
	}
	for i, seg := range f.XMLPath {
		if seg == "" {
			return &mapperror.SchemaStructureError{Field: f.Name, Reason: fmt.Sprintf("empty path segment at position %d", i)}
		}
		if seg[0] == '@' {
			if i != len(f.XMLPath)-1 {
				return &mapperror.SchemaStructureError{Field: f.Name, Reason: "attribute segment must be last"}
			}
			if i == 0 {
				return &mapperror.SchemaStructureError{Field: f.Name, Reason: "attribute needs a parent element"}
			}
			if !elementNameRe.MatchString(seg[1:]) {
				return &mapperror.SchemaStructureError{Field: f.Name, Reason: fmt.Sprintf("invalid attribute name %q", seg)}
			}
			continue
		}
		if !elementNameRe.MatchString(seg) {
			return &mapperror.SchemaStructureError{Field: f.Name, Reason: fmt.Sprintf("invalid element name %q", seg)}
		}
	}
	if f.Type == models.TypeEnum && len(f.EnumValues) == 0 {
		return &mapperror.SchemaStructureError{Field: f.Name, Reason: "enum field without enum values"}
	}
	return nil
}

// Resolve merges the built-in catalog with custom definitions into a new
// Registry. Custom fields are appended after the built-ins, grouped by
// category in canonical category order. Name collisions with built-in or
// other custom fields fail with a DuplicateFieldError.
func (r *Registry) Resolve(custom []models.FieldDefinition) (*Registry, error) {
	merged := make([]models.FieldDefinition, len(r.fields), len(r.fields)+len(custom))
	copy(merged, r.fields)
	for _, cat := range models.Categories {
		for _, f := range custom {
			if f.Category == cat {
				merged = append(merged, f)
			}
		}
	}
	if len(merged) != len(r.fields)+len(custom) {
		for _, f := range custom {
			if _, err := models.ParseCategory(string(f.Category)); err != nil {
				return nil, &mapperror.SchemaStructureError{Field: f.Name, Reason: err.Error()}
			}
		}
	}
	return fromFields(merged)
}

// Fields returns the definitions in schema order.
func (r *Registry) Fields() []models.FieldDefinition {
	out := make([]models.FieldDefinition, len(r.fields))
	copy(out, r.fields)
	return out
}

// Lookup returns the definition for a field name.
func (r *Registry) Lookup(name string) (models.FieldDefinition, bool) {
	i, ok := r.index[name]
	if !ok {
		return models.FieldDefinition{}, false
	}
	return r.fields[i], true
}

// Len returns the number of fields in the catalog.
func (r *Registry) Len() int {
	return len(r.fields)
}

// ByCategory returns the definitions of one category, preserving registry
// order within the category.
func (r *Registry) ByCategory(cat models.Category) []models.FieldDefinition {
	var out []models.FieldDefinition
	for _, f := range r.fields {
		if f.Category == cat {
			out = append(out, f)
		}
	}
	return out
}

// Required returns the required fields in registry order.
func (r *Registry) Required() []models.FieldDefinition {
	return r.ByCategory(models.CategoryRequired)
}
