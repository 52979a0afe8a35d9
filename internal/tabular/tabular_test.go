package tabular

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"mariosat/mifir-mapper/internal/logging"
)

func newTestReader() *Reader {
	return NewReader("", "", logging.NewMockLogger())
}

func TestReadCSVComma(t *testing.T) {
	input := "Trade ID,Qty,Price\nTX1,0.01,144.01\nTX2,2,99.5\n"
	ds, err := newTestReader().ReadCSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"Trade ID", "Qty", "Price"}, ds.Headers)
	require.Len(t, ds.Rows, 2)
	assert.Equal(t, "0.01", ds.Rows[0].Get("Qty"))
	assert.Equal(t, "TX2", ds.Rows[1].Get("Trade ID"))
}

func TestReadCSVDetectsDelimiters(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"semicolon", "a;b;c\n1;2;3\n"},
		{"tab", "a\tb\tc\n1\t2\t3\n"},
		{"pipe", "a|b|c\n1|2|3\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ds, err := newTestReader().ReadCSV(strings.NewReader(tc.input))
			require.NoError(t, err)
			assert.Equal(t, []string{"a", "b", "c"}, ds.Headers)
			require.Len(t, ds.Rows, 1)
			assert.Equal(t, "2", ds.Rows[0].Get("b"))
		})
	}
}

func TestReadCSVExplicitDelimiter(t *testing.T) {
	// A comma-heavy cell would confuse detection; the configured delimiter wins.
	input := "name;note\nx;a,b,c,d\n"
	reader := NewReader(";", "", logging.NewMockLogger())
	ds, err := reader.ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "a,b,c,d", ds.Rows[0].Get("note"))
}

func TestReadCSVStripsBOMAndPadsShortRows(t *testing.T) {
	input := "\ufeffa,b,c\n1,2\n\n4,5,6\n"
	ds, err := newTestReader().ReadCSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, "a", ds.Headers[0])
	require.Len(t, ds.Rows, 2)
	assert.Equal(t, "", ds.Rows[0].Get("c"))
	assert.Equal(t, "6", ds.Rows[1].Get("c"))
}

func TestReadCSVEmptyInput(t *testing.T) {
	_, err := newTestReader().ReadCSV(strings.NewReader(""))
	assert.Error(t, err)
}

func TestReadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trades.xlsx")
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"Trade ID", "Qty"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"TX1", 0.01}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]interface{}{"TX2", 2}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	ds, err := newTestReader().ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Trade ID", "Qty"}, ds.Headers)
	require.Len(t, ds.Rows, 2)
	assert.Equal(t, "TX1", ds.Rows[0].Get("Trade ID"))
	assert.Equal(t, "2", ds.Rows[1].Get("Qty"))
}

func TestReadXLSXNamedSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trades.xlsx")
	f := excelize.NewFile()
	_, err := f.NewSheet("August")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("August", "A1", &[]interface{}{"ISIN"}))
	require.NoError(t, f.SetSheetRow("August", "A2", &[]interface{}{"US0231351067"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	reader := NewReader("", "August", logging.NewMockLogger())
	ds, err := reader.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "US0231351067", ds.Rows[0].Get("ISIN"))

	missing := NewReader("", "September", logging.NewMockLogger())
	_, err = missing.ReadFile(path)
	assert.Error(t, err)
}

func TestProfile(t *testing.T) {
	input := "venue,qty\nXOFF,1\nXOFF,\nXOFF,3\n"
	ds, err := newTestReader().ReadCSV(strings.NewReader(input))
	require.NoError(t, err)

	p := ds.Profile()
	assert.Equal(t, 3, p.RowCount)
	assert.Equal(t, 2, p.ColumnCount)

	venue := p.Columns[0]
	assert.Equal(t, "XOFF", venue.SingleValue)
	assert.Equal(t, 1, venue.Distinct)
	assert.InDelta(t, 0.0, venue.MissingPct, 0.001)

	qty := p.Columns[1]
	assert.Equal(t, 2, qty.NonEmpty)
	assert.Equal(t, "", qty.SingleValue)
	assert.InDelta(t, 33.3, qty.MissingPct, 0.1)
}
