// Package validate checks a mapping against an input file.
package validate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mariosat/mifir-mapper/cmd/common"
	"mariosat/mifir-mapper/cmd/root"
	"mariosat/mifir-mapper/internal/mapvalidate"
	"mariosat/mifir-mapper/internal/report"
)

var reportFile string

// Cmd represents the validate command
var Cmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a mapping against an input file",
	Long: `Validate the mapping configuration against the input file: unresolved
required fields, unusable columns, and per-row values the transformers
reject are reported as findings. Any error-severity finding blocks report
generation.`,
	RunE: validateFunc,
}

func init() {
	Cmd.Flags().StringVar(&reportFile, "report", "", "Write findings as CSV to this file")
}

func validateFunc(cmd *cobra.Command, args []string) error {
	cfg, reg, err := common.LoadMapping(root.SharedFlags.Mapping, root.Log)
	if err != nil {
		return err
	}
	ds, err := common.LoadDataset(root.SharedFlags.Input, root.Cfg, root.Log)
	if err != nil {
		return err
	}

	validator := mapvalidate.New(reg, root.Cfg.Mapper.MaxRowFindings, root.Log)
	findings := validator.Validate(cfg.Mapping(), ds.Headers, ds.Rows)
	report.RenderFindings(os.Stdout, findings)

	if reportFile != "" {
		f, err := os.Create(reportFile)
		if err != nil {
			return fmt.Errorf("failed to create report file: %w", err)
		}
		defer f.Close()
		if err := report.WriteFindingsCSV(f, findings); err != nil {
			return err
		}
		root.Log.WithField("output_file", reportFile).Info("findings report written")
	}

	if mapvalidate.Blocked(findings) {
		return fmt.Errorf("mapping has validation errors")
	}
	return nil
}
