package mappingstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mariosat/mifir-mapper/internal/logging"
	"mariosat/mifir-mapper/internal/models"
)

func sampleConfig() *models.MappingConfig {
	return &models.MappingConfig{
		Fields: map[string]models.Source{
			"transaction_id": models.ColumnSource("Trade ID"),
			"quantity":       models.ColumnSource("Qty"),
			"trading_venue":  models.ConstantSource(),
		},
		Constants: map[string]string{"trading_venue": "XOFF"},
		CustomFields: []models.FieldDefinition{
			{Name: "desk_id", XMLPath: []string{"DeskId"}, Type: models.TypeString, Category: models.CategoryOptional},
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := NewStore(logging.NewMockLogger())
	path := filepath.Join(t.TempDir(), "mapping.json")

	require.NoError(t, store.Save(path, sampleConfig()))
	loaded, err := store.Load(path)
	require.NoError(t, err)

	assert.Equal(t, sampleConfig(), loaded)

	// The loaded configuration resolves identically.
	m := loaded.Mapping()
	v, ok := m.Resolve("trading_venue", models.Row{})
	assert.True(t, ok)
	assert.Equal(t, "XOFF", v)
}

func TestLoadYAML(t *testing.T) {
	store := NewStore(logging.NewMockLogger())
	path := filepath.Join(t.TempDir(), "mapping.yaml")
	yamlDoc := `fields:
  transaction_id:
    kind: column
    column: Trade ID
  trading_venue:
    kind: constant
constants:
  trading_venue: XOFF
`
	require.NoError(t, os.WriteFile(path, []byte(yamlDoc), 0o644))

	cfg, err := store.Load(path)
	require.NoError(t, err)
	assert.Equal(t, models.ColumnSource("Trade ID"), cfg.Fields["transaction_id"])
	assert.Equal(t, "XOFF", cfg.Constants["trading_venue"])
}

func TestLoadMissingFile(t *testing.T) {
	store := NewStore(logging.NewMockLogger())
	_, err := store.Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadMalformedFile(t *testing.T) {
	store := NewStore(logging.NewMockLogger())
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := store.Load(path)
	assert.Error(t, err)
}

func TestSaveCreatesParentDirectory(t *testing.T) {
	store := NewStore(logging.NewMockLogger())
	path := filepath.Join(t.TempDir(), "nested", "dir", "mapping.json")

	require.NoError(t, store.Save(path, sampleConfig()))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}
