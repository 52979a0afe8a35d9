package customfields

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mariosat/mifir-mapper/internal/mapperror"
	"mariosat/mifir-mapper/internal/models"
	"mariosat/mifir-mapper/internal/registry"
)

func newManager() *Manager {
	return NewManager(registry.NewBuiltin())
}

func sampleField() models.FieldDefinition {
	return models.FieldDefinition{
		Name:     "desk_id",
		XMLPath:  []string{"ExctgPrsn", "Prsn", "Othr", "Id"},
		Type:     models.TypeString,
		Category: models.CategoryOptional,
	}
}

func TestAddAndResolve(t *testing.T) {
	m := newManager()
	require.NoError(t, m.Add(sampleField()))

	reg, err := m.Resolve()
	require.NoError(t, err)
	def, ok := reg.Lookup("desk_id")
	require.True(t, ok)
	assert.Equal(t, models.CategoryOptional, def.Category)
}

func TestAddRejectsBuiltinCollision(t *testing.T) {
	m := newManager()
	def := sampleField()
	def.Name = "quantity"

	err := m.Add(def)
	var dupErr *mapperror.DuplicateFieldError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "quantity", dupErr.Name)
}

func TestAddRejectsCustomCollision(t *testing.T) {
	m := newManager()
	require.NoError(t, m.Add(sampleField()))

	var dupErr *mapperror.DuplicateFieldError
	assert.ErrorAs(t, m.Add(sampleField()), &dupErr)
}

func TestAddRejectsInvalidDefinition(t *testing.T) {
	m := newManager()
	tests := []struct {
		name   string
		mutate func(*models.FieldDefinition)
	}{
		{"bad type", func(d *models.FieldDefinition) { d.Type = "number" }},
		{"bad category", func(d *models.FieldDefinition) { d.Category = "mandatory" }},
		{"no path", func(d *models.FieldDefinition) { d.XMLPath = nil }},
		{"bad segment", func(d *models.FieldDefinition) { d.XMLPath = []string{"2Bad"} }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			def := sampleField()
			tc.mutate(&def)
			var structErr *mapperror.SchemaStructureError
			assert.ErrorAs(t, m.Add(def), &structErr)
		})
	}
}

func TestUpdateAndDelete(t *testing.T) {
	m := newManager()
	require.NoError(t, m.Add(sampleField()))

	updated := sampleField()
	updated.Category = models.CategoryRequired
	require.NoError(t, m.Update(updated))
	assert.Equal(t, models.CategoryRequired, m.Fields()[0].Category)

	assert.Error(t, m.Update(models.FieldDefinition{
		Name: "ghost", XMLPath: []string{"X"}, Type: models.TypeString, Category: models.CategoryOptional,
	}))

	require.NoError(t, m.Delete("desk_id"))
	assert.Empty(t, m.Fields())
	assert.Error(t, m.Delete("desk_id"))
}

func TestImportExportRoundTrip(t *testing.T) {
	m := newManager()
	require.NoError(t, m.Add(sampleField()))
	second := sampleField()
	second.Name = "venue_note"
	second.XMLPath = []string{"AddtlAttrbts", "Note"}
	require.NoError(t, m.Add(second))

	data, err := m.ExportJSON()
	require.NoError(t, err)

	restored := newManager()
	require.NoError(t, restored.ImportJSON(data))
	assert.Equal(t, m.Fields(), restored.Fields())
}

func TestImportRejectsBadSet(t *testing.T) {
	m := newManager()
	assert.Error(t, m.ImportJSON([]byte("not json")))

	// A bad entry rejects the whole import and leaves the set untouched.
	require.NoError(t, m.Add(sampleField()))
	err := m.ImportJSON([]byte(`[{"name":"quantity","xml_path":["X"],"type":"string","category":"optional"}]`))
	assert.Error(t, err)
	assert.Len(t, m.Fields(), 1)
	assert.Equal(t, "desk_id", m.Fields()[0].Name)
}
