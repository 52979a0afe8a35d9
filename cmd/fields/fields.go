// Package fields lists the effective field catalog and manages custom
// field definitions.
package fields

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mariosat/mifir-mapper/cmd/common"
	"mariosat/mifir-mapper/cmd/root"
	"mariosat/mifir-mapper/internal/customfields"
	"mariosat/mifir-mapper/internal/mappingstore"
	"mariosat/mifir-mapper/internal/registry"
	"mariosat/mifir-mapper/internal/report"
)

var (
	importFile string
	exportFile string
)

// Cmd represents the fields command
var Cmd = &cobra.Command{
	Use:   "fields",
	Short: "List report fields and manage custom field definitions",
	Long: `List the effective field catalog in schema order: the built-in
auth.016.001.01 fields plus any custom fields defined in the mapping
configuration. Custom field sets can be exported to and imported from JSON.`,
	RunE: fieldsFunc,
}

func init() {
	Cmd.Flags().StringVar(&importFile, "import-custom", "", "Import custom field definitions from a JSON file into the mapping configuration")
	Cmd.Flags().StringVar(&exportFile, "export-custom", "", "Export custom field definitions to a JSON file")
}

func fieldsFunc(cmd *cobra.Command, args []string) error {
	cfg, _, err := common.LoadMapping(root.SharedFlags.Mapping, root.Log)
	if err != nil {
		return err
	}

	manager := customfields.NewManager(registry.NewBuiltin())
	for _, def := range cfg.CustomFields {
		if err := manager.Add(def); err != nil {
			return fmt.Errorf("invalid custom field in mapping configuration: %w", err)
		}
	}

	if importFile != "" {
		data, err := os.ReadFile(importFile)
		if err != nil {
			return fmt.Errorf("failed to read custom fields file: %w", err)
		}
		if err := manager.ImportJSON(data); err != nil {
			return err
		}
		cfg.CustomFields = manager.Fields()
		store := mappingstore.NewStore(root.Log)
		if err := store.Save(root.SharedFlags.Mapping, cfg); err != nil {
			return err
		}
		root.Log.WithField("count", len(cfg.CustomFields)).Info("custom fields imported")
	}

	if exportFile != "" {
		data, err := manager.ExportJSON()
		if err != nil {
			return err
		}
		if err := os.WriteFile(exportFile, data, 0o644); err != nil {
			return fmt.Errorf("failed to write custom fields file: %w", err)
		}
	}

	reg, err := manager.Resolve()
	if err != nil {
		return err
	}
	report.RenderFields(os.Stdout, reg.Fields())
	return nil
}
