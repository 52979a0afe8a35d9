package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowGet(t *testing.T) {
	row := Row{"Trade ID": " TX1 ", " Qty ": "2"}

	assert.Equal(t, "TX1", row.Get("Trade ID"))
	// Header whitespace differences are tolerated.
	assert.Equal(t, "2", row.Get("Qty"))
	assert.Equal(t, "", row.Get("missing"))
}

func TestMappingResolve(t *testing.T) {
	m := NewMapping()
	m.SetColumn("transaction_id", "Trade ID")
	m.SetConstant("trading_venue", "XOFF")

	row := Row{"Trade ID": "TX1"}

	v, ok := m.Resolve("transaction_id", row)
	require.True(t, ok)
	assert.Equal(t, "TX1", v)

	v, ok = m.Resolve("trading_venue", row)
	require.True(t, ok)
	assert.Equal(t, "XOFF", v)

	_, ok = m.Resolve("quantity", row)
	assert.False(t, ok)
}

func TestMappingUnmap(t *testing.T) {
	m := NewMapping()
	m.SetConstant("trading_venue", "XOFF")
	m.Unmap("trading_venue")

	assert.True(t, m.SourceFor("trading_venue").IsUnmapped())
	assert.Empty(t, m.Constants)
	assert.Empty(t, m.MappedFields())
}

func TestSourceIsUnmapped(t *testing.T) {
	assert.True(t, Unmapped().IsUnmapped())
	assert.True(t, Source{Kind: SourceColumn}.IsUnmapped())
	assert.False(t, ColumnSource("Qty").IsUnmapped())
	assert.False(t, ConstantSource().IsUnmapped())
}

func TestMappingConfigExtract(t *testing.T) {
	cfg := MappingConfig{
		Fields:    map[string]Source{"quantity": ColumnSource("Qty")},
		Constants: map[string]string{"trading_venue": "XOFF"},
	}
	m := cfg.Mapping()
	assert.Equal(t, ColumnSource("Qty"), m.SourceFor("quantity"))
	assert.Equal(t, "XOFF", m.Constants["trading_venue"])
}

func TestHasErrors(t *testing.T) {
	assert.False(t, HasErrors(nil))
	assert.False(t, HasErrors([]ValidationFinding{{Severity: SeverityWarning}}))
	assert.True(t, HasErrors([]ValidationFinding{
		{Severity: SeverityWarning},
		{Severity: SeverityError},
	}))
}

func TestFindingString(t *testing.T) {
	f := ValidationFinding{Field: "quantity", Row: 3, Severity: SeverityError, Message: "bad value"}
	assert.Equal(t, "[error] quantity (row 3): bad value", f.String())

	f.Row = 0
	assert.Equal(t, "[error] quantity: bad value", f.String())
}

func TestParseDataType(t *testing.T) {
	for _, s := range []string{"string", "date", "datetime", "decimal", "integer", "boolean", "enum"} {
		dt, err := ParseDataType(s)
		require.NoError(t, err, s)
		assert.Equal(t, DataType(s), dt)
	}
	_, err := ParseDataType("number")
	assert.Error(t, err)
}

func TestFieldDefinitionIsAttribute(t *testing.T) {
	def := FieldDefinition{XMLPath: []string{"Tx", "Pric", "Amt", "@Ccy"}}
	assert.True(t, def.IsAttribute())

	def.XMLPath = []string{"Tx", "TradDt"}
	assert.False(t, def.IsAttribute())

	def.XMLPath = nil
	assert.False(t, def.IsAttribute())
}
