// Package suggest auto-maps the columns of an input file to report fields.
package suggest

import (
	"os"

	"github.com/spf13/cobra"

	"mariosat/mifir-mapper/cmd/common"
	"mariosat/mifir-mapper/cmd/root"
	"mariosat/mifir-mapper/internal/automapper"
	"mariosat/mifir-mapper/internal/mappingstore"
	"mariosat/mifir-mapper/internal/report"
)

var (
	withConstants bool
	showProfile   bool
)

// Cmd represents the suggest command
var Cmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest a column-to-field mapping for an input file",
	Long: `Suggest a mapping by fuzzy-matching the input file's column headers
against the field catalog and its synonyms, refined by what the sampled
values look like. The suggested mapping is written to the mapping
configuration file for review; nothing is applied silently.`,
	RunE: suggestFunc,
}

func init() {
	Cmd.Flags().BoolVar(&withConstants, "with-constants", false, "Also fill in suggested constant values for unmapped fields")
	Cmd.Flags().BoolVar(&showProfile, "profile", false, "Print a data-quality summary of the input file")
}

func suggestFunc(cmd *cobra.Command, args []string) error {
	cfg, reg, err := common.LoadMapping(root.SharedFlags.Mapping, root.Log)
	if err != nil {
		return err
	}
	ds, err := common.LoadDataset(root.SharedFlags.Input, root.Cfg, root.Log)
	if err != nil {
		return err
	}

	if showProfile {
		report.RenderProfile(os.Stdout, ds.Profile())
		os.Stdout.WriteString("\n")
	}

	mapper := automapper.New(reg, root.Cfg.Mapper.Threshold, root.Log)
	mapping, suggestions := mapper.Suggest(ds.Headers, ds.Rows)
	report.RenderSuggestions(os.Stdout, suggestions)

	if withConstants {
		for _, s := range mapper.SuggestConstants(mapping) {
			mapping.SetConstant(s.Field, s.Column)
			root.Log.WithField("field", s.Field).WithField("value", s.Column).Info("constant suggested")
		}
	}

	cfg.Fields = mapping.Fields
	cfg.Constants = mapping.Constants
	store := mappingstore.NewStore(root.Log)
	return store.Save(root.SharedFlags.Mapping, cfg)
}
