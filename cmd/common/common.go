// Package common provides shared helpers for the CLI commands.
package common

import (
	"fmt"
	"os"

	"mariosat/mifir-mapper/internal/config"
	"mariosat/mifir-mapper/internal/logging"
	"mariosat/mifir-mapper/internal/mappingstore"
	"mariosat/mifir-mapper/internal/models"
	"mariosat/mifir-mapper/internal/registry"
	"mariosat/mifir-mapper/internal/tabular"
)

// LoadMapping loads the mapping configuration and resolves the effective
// registry (built-ins plus the configuration's custom fields). A missing
// mapping file yields an empty configuration, not an error, so commands can
// bootstrap one.
func LoadMapping(mappingFile string, logger logging.Logger) (*models.MappingConfig, *registry.Registry, error) {
	store := mappingstore.NewStore(logger)
	cfg, err := store.Load(mappingFile)
	if err != nil {
		if _, statErr := store.FindConfigFile(mappingFile); os.IsNotExist(statErr) {
			logger.Debug("no mapping file, starting empty",
				logging.Field{Key: logging.FieldMapping, Value: mappingFile},
			)
			cfg = &models.MappingConfig{Fields: map[string]models.Source{}}
		} else {
			return nil, nil, err
		}
	}

	reg, err := registry.NewBuiltin().Resolve(cfg.CustomFields)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid custom fields in %s: %w", mappingFile, err)
	}
	return cfg, reg, nil
}

// LoadDataset reads the input file using the configured delimiter and sheet.
func LoadDataset(input string, appCfg *config.Config, logger logging.Logger) (*tabular.Dataset, error) {
	if input == "" {
		return nil, fmt.Errorf("no input file given, use --input")
	}
	reader := tabular.NewReader(appCfg.Input.Delimiter, appCfg.Input.Sheet, logger)
	return reader.ReadFile(input)
}

// WriteOutput writes data to the output path, or stdout when the path is
// empty.
func WriteOutput(path string, data []byte, logger logging.Logger) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	logger.Info("output written",
		logging.Field{Key: logging.FieldOutputFile, Value: path},
	)
	return nil
}
