package transform

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mariosat/mifir-mapper/internal/mapperror"
	"mariosat/mifir-mapper/internal/models"
)

func TestApplyString(t *testing.T) {
	tests := []struct {
		name     string
		def      models.FieldDefinition
		input    string
		expected string
	}{
		{"plain passthrough", models.FieldDefinition{Name: "f", Type: models.TypeString}, "hello", "hello"},
		{"trims whitespace", models.FieldDefinition{Name: "f", Type: models.TypeString}, "  hello  ", "hello"},
		{"upper case", models.FieldDefinition{Name: "f", Type: models.TypeString, Case: models.CaseUpper}, "usd", "USD"},
		{"lower case", models.FieldDefinition{Name: "f", Type: models.TypeString, Case: models.CaseLower}, "USD", "usd"},
		{"empty stays empty", models.FieldDefinition{Name: "f", Type: models.TypeString}, "", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := Apply(tc.def, tc.input)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, out)
		})
	}
}

func TestApplyStringSanitized(t *testing.T) {
	def := models.FieldDefinition{
		Name:      "transaction_id",
		Type:      models.TypeString,
		Case:      models.CaseUpper,
		AlnumOnly: true,
		MaxLen:    52,
	}

	out, err := Apply(def, "tx-5068/8694.79p90")
	require.NoError(t, err)
	assert.Equal(t, "TX5068869479P90", out)

	long := ""
	for i := 0; i < 60; i++ {
		long += "A"
	}
	out, err = Apply(def, long)
	require.NoError(t, err)
	assert.Len(t, out, 52)
}

func TestApplyStringMaxLen(t *testing.T) {
	def := models.FieldDefinition{Name: "buyer_country", Type: models.TypeString, Case: models.CaseUpper, MaxLen: 2}

	out, err := Apply(def, "cy")
	require.NoError(t, err)
	assert.Equal(t, "CY", out)

	_, err = Apply(def, "CYP")
	var transformErr *mapperror.TransformError
	require.ErrorAs(t, err, &transformErr)
	assert.Equal(t, "buyer_country", transformErr.Field)
}

func TestApplyDate(t *testing.T) {
	def := models.FieldDefinition{Name: "settlement_date", Type: models.TypeDate}
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{"ISO", "2025-08-21", "2025-08-21", false},
		{"European", "21.08.2025", "2025-08-21", false},
		{"slash EU", "21/08/2025", "2025-08-21", false},
		{"month name", "21 Aug 2025", "2025-08-21", false},
		{"garbage", "not a date", "", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := Apply(def, tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, out)
		})
	}
}

func TestApplyDateTime(t *testing.T) {
	def := models.FieldDefinition{Name: "trade_datetime", Type: models.TypeDateTime}

	out, err := Apply(def, "2025-08-19T22:23:00.300Z")
	require.NoError(t, err)
	assert.Equal(t, "2025-08-19T22:23:00.300Z", out)

	out, err = Apply(def, "2025-08-19 22:23:00")
	require.NoError(t, err)
	assert.Equal(t, "2025-08-19T22:23:00.000Z", out)

	// Date-only input becomes midnight UTC.
	out, err = Apply(def, "2025-08-19")
	require.NoError(t, err)
	assert.Equal(t, "2025-08-19T00:00:00.000Z", out)
}

func TestApplyDecimal(t *testing.T) {
	def := models.FieldDefinition{Name: "price_amount", Type: models.TypeDecimal}
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{"plain", "144.01", "144.01", false},
		{"decimal comma", "144,01", "144.01", false},
		{"thousand separator", "1,234.56", "1234.56", false},
		{"bare comma thousands", "1,000", "1000", false},
		{"european grouping", "1.234,56", "1234.56", false},
		{"apostrophe grouping", "1'234.56", "1234.56", false},
		{"negative", "-0.01", "-0.01", false},
		{"trailing zeros dropped", "1.500", "1.5", false},
		{"garbage", "abc", "", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := Apply(def, tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, out)
		})
	}
}

func TestApplyInteger(t *testing.T) {
	def := models.FieldDefinition{Name: "lot_count", Type: models.TypeInteger}

	out, err := Apply(def, "1,000")
	require.NoError(t, err)
	assert.Equal(t, "1000", out)

	_, err = Apply(def, "1.5")
	assert.Error(t, err)
}

func TestApplyBoolean(t *testing.T) {
	def := models.FieldDefinition{Name: "securities_financing_indicator", Type: models.TypeBoolean}
	tests := []struct {
		input    string
		expected string
	}{
		{"true", "true"}, {"TRUE", "true"}, {"yes", "true"}, {"Y", "true"}, {"1", "true"},
		{"false", "false"}, {"No", "false"}, {"n", "false"}, {"0", "false"},
	}
	for _, tc := range tests {
		out, err := Apply(def, tc.input)
		require.NoError(t, err, tc.input)
		assert.Equal(t, tc.expected, out, tc.input)
	}

	_, err := Apply(def, "maybe")
	assert.Error(t, err)
}

func TestApplyEnum(t *testing.T) {
	def := models.FieldDefinition{
		Name:       "trading_capacity",
		Type:       models.TypeEnum,
		EnumValues: []string{"DEAL", "MTCH", "AOTC"},
		Case:       models.CaseUpper,
	}

	out, err := Apply(def, "aotc")
	require.NoError(t, err)
	assert.Equal(t, "AOTC", out)

	_, err = Apply(def, "PRINCIPAL")
	var enumErr *mapperror.EnumViolationError
	require.ErrorAs(t, err, &enumErr)
	assert.Equal(t, "trading_capacity", enumErr.Field)
	assert.Equal(t, []string{"DEAL", "MTCH", "AOTC"}, enumErr.Allowed)
}

func TestTransformErrorUnwrap(t *testing.T) {
	def := models.FieldDefinition{Name: "quantity", Type: models.TypeDecimal}
	_, err := Apply(def, "not-a-number")

	var transformErr *mapperror.TransformError
	require.ErrorAs(t, err, &transformErr)
	assert.NotNil(t, errors.Unwrap(transformErr))
	assert.Equal(t, "decimal", transformErr.Type)
}
