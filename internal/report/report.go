// Package report renders validation findings, mapping suggestions, and field
// catalogs for the console, and exports findings as CSV. The core packages
// return data; all presentation lives here.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/gocarina/gocsv"

	"mariosat/mifir-mapper/internal/automapper"
	"mariosat/mifir-mapper/internal/models"
	"mariosat/mifir-mapper/internal/tabular"
)

// WriteFindingsCSV exports findings as CSV with a header row.
func WriteFindingsCSV(w io.Writer, findings []models.ValidationFinding) error {
	if err := gocsv.Marshal(&findings, w); err != nil {
		return fmt.Errorf("failed to write findings CSV: %w", err)
	}
	return nil
}

// RenderFindings prints findings one per line followed by a severity tally.
func RenderFindings(w io.Writer, findings []models.ValidationFinding) {
	if len(findings) == 0 {
		fmt.Fprintln(w, "No findings: mapping is valid.")
		return
	}
	errs, warns := 0, 0
	for _, f := range findings {
		fmt.Fprintln(w, f.String())
		if f.Severity == models.SeverityError {
			errs++
		} else {
			warns++
		}
	}
	fmt.Fprintf(w, "\n%d error(s), %d warning(s)\n", errs, warns)
}

// RenderSuggestions prints proposed column assignments with their scores.
func RenderSuggestions(w io.Writer, suggestions []automapper.Suggestion) {
	if len(suggestions) == 0 {
		fmt.Fprintln(w, "No columns matched any field.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tCOLUMN\tSCORE")
	for _, s := range suggestions {
		fmt.Fprintf(tw, "%s\t%s\t%.2f\n", s.Field, s.Column, s.Score)
	}
	tw.Flush()
}

// RenderFields prints the effective field catalog in schema order.
func RenderFields(w io.Writer, fields []models.FieldDefinition) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tTYPE\tCATEGORY\tDESCRIPTION")
	for _, f := range fields {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", f.Name, f.Type, f.Category, f.Description)
	}
	tw.Flush()
}

// RenderProfile prints the data-quality summary of a dataset.
func RenderProfile(w io.Writer, p tabular.Profile) {
	fmt.Fprintf(w, "%d rows, %d columns\n\n", p.RowCount, p.ColumnCount)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "COLUMN\tNON-EMPTY\tMISSING%\tDISTINCT\tNOTE")
	for _, c := range p.Columns {
		note := ""
		if c.SingleValue != "" {
			note = fmt.Sprintf("constant value %q", c.SingleValue)
		}
		fmt.Fprintf(tw, "%s\t%d\t%.1f\t%d\t%s\n", c.Name, c.NonEmpty, c.MissingPct, c.Distinct, note)
	}
	tw.Flush()
}
