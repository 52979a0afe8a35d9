// Package generate renders the auth.016.001.01 transaction report.
package generate

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"mariosat/mifir-mapper/cmd/common"
	"mariosat/mifir-mapper/cmd/root"
	"mariosat/mifir-mapper/internal/models"
	"mariosat/mifir-mapper/internal/report"
	"mariosat/mifir-mapper/internal/xmlgen"
)

var (
	customOnly bool
	bizMsgID   string
)

// Cmd represents the generate command
var Cmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the ISO 20022 transaction report",
	Long: `Generate the auth.016.001.01 XML report from the input file and the
mapping configuration. Validation runs first; any error-severity finding
blocks generation and no partial document is written.`,
	RunE: generateFunc,
}

func init() {
	Cmd.Flags().BoolVar(&customOnly, "custom-only", false, "Emit only custom fields inside each transaction block")
	Cmd.Flags().StringVar(&bizMsgID, "biz-msg-id", "", "Business message identifier (default: random UUID)")
}

func generateFunc(cmd *cobra.Command, args []string) error {
	cfg, reg, err := common.LoadMapping(root.SharedFlags.Mapping, root.Log)
	if err != nil {
		return err
	}
	ds, err := common.LoadDataset(root.SharedFlags.Input, root.Cfg, root.Log)
	if err != nil {
		return err
	}

	hdr := xmlgen.Header{
		FromOrgID: root.Cfg.Report.FromOrgID,
		ToOrgID:   root.Cfg.Report.ToOrgID,
		BizMsgIdr: bizMsgID,
		CreDt:     time.Now().UTC(),
	}
	if hdr.BizMsgIdr == "" {
		hdr.BizMsgIdr = uuid.NewString()
	}

	gen := xmlgen.New(reg, root.Cfg.Mapper.MaxRowFindings, root.Log)

	var out []byte
	var findings []models.ValidationFinding
	if customOnly {
		out, findings, err = gen.GenerateCustomOnly(hdr, cfg.CustomFields, cfg.Mapping(), ds.Headers, ds.Rows)
	} else {
		out, findings, err = gen.Generate(hdr, cfg.Mapping(), ds.Headers, ds.Rows)
	}
	if err != nil {
		return err
	}

	if out == nil {
		report.RenderFindings(os.Stderr, findings)
		return fmt.Errorf("generation blocked by validation errors")
	}
	if len(findings) > 0 {
		report.RenderFindings(os.Stderr, findings)
	}
	return common.WriteOutput(root.SharedFlags.Output, out, root.Log)
}
