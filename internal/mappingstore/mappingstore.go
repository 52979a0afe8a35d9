// Package mappingstore loads and saves mapping configurations. The on-disk
// format is JSON; YAML is accepted on load for hand-written configurations.
// A saved configuration loaded back must reproduce the same mapping and
// therefore byte-identical generation output for the same dataset and header.
package mappingstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"mariosat/mifir-mapper/internal/logging"
	"mariosat/mifir-mapper/internal/models"
)

// Store resolves and persists mapping configuration files.
type Store struct {
	logger logging.Logger
}

// NewStore returns a Store.
func NewStore(logger logging.Logger) *Store {
	return &Store{logger: logger}
}

// FindConfigFile looks for a configuration file in standard locations:
// the path as given, ./config/, then ~/.config/mifir-mapper/.
func (s *Store) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".config", "mifir-mapper", filename))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}
	return "", os.ErrNotExist
}

// Load reads a mapping configuration. Files ending in .yaml or .yml parse
// as YAML, everything else as JSON.
func (s *Store) Load(filename string) (*models.MappingConfig, error) {
	path, err := s.FindConfigFile(filename)
	if err != nil {
		return nil, fmt.Errorf("mapping file not found: %s", filename)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file: %w", err)
	}

	var cfg models.MappingConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse mapping file %s: %w", path, err)
	}

	s.logger.Info("mapping configuration loaded",
		logging.Field{Key: logging.FieldMapping, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(cfg.Fields)},
	)
	return &cfg, nil
}

// Save writes a mapping configuration as indented JSON.
func (s *Store) Save(filename string, cfg *models.MappingConfig) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize mapping: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create mapping directory: %w", err)
		}
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write mapping file: %w", err)
	}

	s.logger.Info("mapping configuration saved",
		logging.Field{Key: logging.FieldMapping, Value: filename},
		logging.Field{Key: logging.FieldCount, Value: len(cfg.Fields)},
	)
	return nil
}
