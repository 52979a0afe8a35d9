// Package tabular reads uploaded trade files into a uniform in-memory
// dataset. CSV and XLSX are supported; the first row is always the header
// row and cell values are kept as raw strings for the transformer.
package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"mariosat/mifir-mapper/internal/logging"
	"mariosat/mifir-mapper/internal/models"
)

// Dataset is the parsed content of one input file.
type Dataset struct {
	Headers []string
	Rows    []models.Row
}

// Reader loads input files into datasets.
type Reader struct {
	delimiter rune   // 0 = detect
	sheet     string // XLSX sheet, empty = first
	logger    logging.Logger
}

// NewReader returns a Reader. delimiter "" enables detection; sheet ""
// selects the first sheet of a workbook.
func NewReader(delimiter string, sheet string, logger logging.Logger) *Reader {
	r := &Reader{sheet: sheet, logger: logger}
	if delimiter != "" {
		r.delimiter = rune(delimiter[0])
	}
	return r
}

// ReadFile loads a dataset, choosing the format from the file extension.
// Anything that is not .xlsx is treated as delimited text.
func (r *Reader) ReadFile(path string) (*Dataset, error) {
	var ds *Dataset
	var err error
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		ds, err = r.readXLSX(path)
	} else {
		ds, err = r.readCSV(path)
	}
	if err != nil {
		return nil, err
	}
	r.logger.Info("input file loaded",
		logging.Field{Key: logging.FieldInputFile, Value: path},
		logging.Field{Key: logging.FieldRow, Value: len(ds.Rows)},
		logging.Field{Key: logging.FieldCount, Value: len(ds.Headers)},
	)
	return ds, nil
}

func (r *Reader) readCSV(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()
	return r.ReadCSV(f)
}

// ReadCSV parses delimited text from a stream.
func (r *Reader) ReadCSV(src io.Reader) (*Dataset, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	text := strings.TrimPrefix(string(data), "\ufeff")

	delim := r.delimiter
	if delim == 0 {
		delim = detectDelimiter(text)
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = delim
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("input file is empty")
	}
	return fromRecords(records)
}

func (r *Reader) readXLSX(path string) (*Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := r.sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}
	return fromRecords(records)
}

// fromRecords converts raw records into a dataset: first record is the
// header row, remaining records become rows keyed by header. Short records
// are padded with empty cells; fully empty records are dropped.
func fromRecords(records [][]string) (*Dataset, error) {
	headers := make([]string, 0, len(records[0]))
	for _, h := range records[0] {
		headers = append(headers, strings.TrimSpace(h))
	}
	if len(headers) == 0 || (len(headers) == 1 && headers[0] == "") {
		return nil, fmt.Errorf("input file has no header row")
	}

	ds := &Dataset{Headers: headers}
	for _, rec := range records[1:] {
		empty := true
		row := make(models.Row, len(headers))
		for i, h := range headers {
			v := ""
			if i < len(rec) {
				v = strings.TrimSpace(rec[i])
			}
			row[h] = v
			if v != "" {
				empty = false
			}
		}
		if !empty {
			ds.Rows = append(ds.Rows, row)
		}
	}
	return ds, nil
}

// detectDelimiter picks the candidate delimiter occurring most often in the
// first line. Commas win ties.
func detectDelimiter(text string) rune {
	line := text
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	best := ','
	bestCount := strings.Count(line, ",")
	for _, cand := range []rune{';', '\t', '|'} {
		if n := strings.Count(line, string(cand)); n > bestCount {
			best = cand
			bestCount = n
		}
	}
	return best
}
