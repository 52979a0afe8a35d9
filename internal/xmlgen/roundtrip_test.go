package xmlgen

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mariosat/mifir-mapper/internal/logging"
	"mariosat/mifir-mapper/internal/mappingstore"
	"mariosat/mifir-mapper/internal/models"
	"mariosat/mifir-mapper/internal/registry"
)

// Saving a mapping configuration and loading it back must produce
// byte-identical generation output for the same dataset and header values.
func TestMappingConfigRoundTripReproducesOutput(t *testing.T) {
	custom := []models.FieldDefinition{
		{Name: "desk_id", XMLPath: []string{"ExctgPrsn", "Prsn", "Othr", "Id"}, Type: models.TypeString, Category: models.CategoryOptional},
	}
	cfg := &models.MappingConfig{
		Fields: map[string]models.Source{
			"transaction_id":      models.ColumnSource("Trade ID"),
			"trade_datetime":      models.ColumnSource("Timestamp"),
			"quantity":            models.ColumnSource("Qty"),
			"price_amount":        models.ColumnSource("Price"),
			"instrument_isin":     models.ColumnSource("ISIN"),
			"reporting_party_lei": models.ColumnSource("LEI"),
			"desk_id":             models.ConstantSource(),
		},
		Constants:    map[string]string{"desk_id": "DESK-7"},
		CustomFields: custom,
	}

	reg, err := registry.NewBuiltin().Resolve(cfg.CustomFields)
	require.NoError(t, err)
	gen := New(reg, 0, logging.NewMockLogger())

	headers := []string{"Trade ID", "Timestamp", "Qty", "Price", "ISIN", "LEI"}
	rows := []models.Row{{
		"Trade ID":  "TX1",
		"Timestamp": "2025-08-19T22:23:00.300Z",
		"Qty":       "1",
		"Price":     "144.01",
		"ISIN":      "US0231351067",
		"LEI":       "2138001ME4Z9Z8DZNS52",
	}}

	before, _, err := gen.Generate(testHeader, cfg.Mapping(), headers, rows)
	require.NoError(t, err)
	require.NotNil(t, before)

	store := mappingstore.NewStore(logging.NewMockLogger())
	path := filepath.Join(t.TempDir(), "mapping.json")
	require.NoError(t, store.Save(path, cfg))
	loaded, err := store.Load(path)
	require.NoError(t, err)

	loadedReg, err := registry.NewBuiltin().Resolve(loaded.CustomFields)
	require.NoError(t, err)
	loadedGen := New(loadedReg, 0, logging.NewMockLogger())

	after, _, err := loadedGen.Generate(testHeader, loaded.Mapping(), headers, rows)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
