// Package customfields manages user-defined report fields for a session.
// Custom fields behave exactly like built-ins once resolved into the
// registry: they are mapped, validated, and emitted the same way.
package customfields

import (
	"encoding/json"
	"fmt"

	"mariosat/mifir-mapper/internal/mapperror"
	"mariosat/mifir-mapper/internal/models"
	"mariosat/mifir-mapper/internal/registry"
)

// Manager holds the custom field set and guards name uniqueness against the
// built-in catalog.
type Manager struct {
	builtins *registry.Registry
	fields   []models.FieldDefinition
}

// NewManager returns an empty manager checking collisions against the given
// built-in registry.
func NewManager(builtins *registry.Registry) *Manager {
	return &Manager{builtins: builtins}
}

// Add registers a new custom field. Names must be unique across built-ins
// and existing custom fields.
func (m *Manager) Add(def models.FieldDefinition) error {
	if _, exists := m.builtins.Lookup(def.Name); exists {
		return &mapperror.DuplicateFieldError{Name: def.Name}
	}
	for _, f := range m.fields {
		if f.Name == def.Name {
			return &mapperror.DuplicateFieldError{Name: def.Name}
		}
	}
	if err := m.check(def); err != nil {
		return err
	}
	m.fields = append(m.fields, def)
	return nil
}

// Update replaces the definition of an existing custom field by name.
func (m *Manager) Update(def models.FieldDefinition) error {
	if err := m.check(def); err != nil {
		return err
	}
	for i, f := range m.fields {
		if f.Name == def.Name {
			m.fields[i] = def
			return nil
		}
	}
	return fmt.Errorf("custom field %q does not exist", def.Name)
}

// Delete removes a custom field by name. Any mapping entry still referring
// to the field becomes stale and is reported by the next validation run.
func (m *Manager) Delete(name string) error {
	for i, f := range m.fields {
		if f.Name == name {
			m.fields = append(m.fields[:i], m.fields[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("custom field %q does not exist", name)
}

// Fields returns the custom field definitions in creation order.
func (m *Manager) Fields() []models.FieldDefinition {
	out := make([]models.FieldDefinition, len(m.fields))
	copy(out, m.fields)
	return out
}

// Resolve merges the custom set into the built-in registry.
func (m *Manager) Resolve() (*registry.Registry, error) {
	return m.builtins.Resolve(m.fields)
}

// check validates a definition by resolving it against the built-ins in
// isolation, reusing the registry's structural path checks.
func (m *Manager) check(def models.FieldDefinition) error {
	if _, err := models.ParseDataType(string(def.Type)); err != nil {
		return &mapperror.SchemaStructureError{Field: def.Name, Reason: err.Error()}
	}
	if _, err := models.ParseCategory(string(def.Category)); err != nil {
		return &mapperror.SchemaStructureError{Field: def.Name, Reason: err.Error()}
	}
	_, err := registry.New([]models.FieldDefinition{def})
	return err
}

// ExportJSON serializes the custom field set.
func (m *Manager) ExportJSON() ([]byte, error) {
	return json.MarshalIndent(m.fields, "", "  ")
}

// ImportJSON replaces the custom field set with definitions parsed from
// data. Each definition passes the same checks as Add.
func (m *Manager) ImportJSON(data []byte) error {
	var defs []models.FieldDefinition
	if err := json.Unmarshal(data, &defs); err != nil {
		return fmt.Errorf("failed to parse custom fields: %w", err)
	}
	replacement := NewManager(m.builtins)
	for _, def := range defs {
		if err := replacement.Add(def); err != nil {
			return err
		}
	}
	m.fields = replacement.fields
	return nil
}
