// Package root contains the root command for the application
package root

import (
	"mariosat/mifir-mapper/internal/config"
	"mariosat/mifir-mapper/internal/logging"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags shared by multiple commands
type CommonFlags struct {
	Input   string
	Output  string
	Mapping string
}

var (
	// Log is the shared logger instance for commands
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// Cfg is the resolved application configuration
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "mifir-mapper",
		Short: "Map tabular trade files to MiFIR RTS 22 transaction reports.",
		Long: `mifir-mapper converts CSV and XLSX trade records into schema-valid
ISO 20022 auth.016.001.01 transaction reports. Columns are bound to report
fields through a reviewable mapping configuration; the tool can suggest
mappings, validate them against the data, and generate the final XML.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.WithError(err).Fatal("invalid configuration")
			}
			Cfg = cfg
			Log = logging.NewLogrusAdapterFromLogger(config.ConfigureLoggingFromConfig(cfg))
		},
	}

	// SharedFlags holds the common flag values
	SharedFlags = CommonFlags{}
)

// Init registers the persistent flags on the root command.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input trade file (.csv or .xlsx)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Mapping, "mapping", "m", "mapping.json", "Mapping configuration file")
}
