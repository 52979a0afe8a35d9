package config

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes into dir for the duration of the test; t.Chdir requires Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestInitializeConfigDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "", cfg.Input.Delimiter)
	assert.InDelta(t, 0.6, cfg.Mapper.Threshold, 0.001)
	assert.Equal(t, 5, cfg.Mapper.MaxRowFindings)
	assert.Equal(t, "KD", cfg.Report.FromOrgID)
	assert.Equal(t, "CY", cfg.Report.ToOrgID)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("MIFIR_LOG_LEVEL", "debug")
	t.Setenv("MIFIR_MAPPER_THRESHOLD", "0.8")

	cfg, err := InitializeConfig()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.InDelta(t, 0.8, cfg.Mapper.Threshold, 0.001)
}

func TestValidateConfig(t *testing.T) {
	base := func() *Config {
		cfg := &Config{}
		cfg.Log.Level = "info"
		cfg.Log.Format = "text"
		cfg.Mapper.Threshold = 0.6
		cfg.Mapper.MaxRowFindings = 5
		return cfg
	}

	assert.NoError(t, validateConfig(base()))

	cfg := base()
	cfg.Log.Level = "noisy"
	assert.Error(t, validateConfig(cfg))

	cfg = base()
	cfg.Log.Format = "xml"
	assert.Error(t, validateConfig(cfg))

	cfg = base()
	cfg.Input.Delimiter = ";;"
	assert.Error(t, validateConfig(cfg))

	cfg = base()
	cfg.Mapper.Threshold = 1.5
	assert.Error(t, validateConfig(cfg))

	cfg = base()
	cfg.Mapper.MaxRowFindings = 0
	assert.Error(t, validateConfig(cfg))
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	cfg := &Config{}
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(cfg)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	_, ok := logger.Formatter.(*logrus.JSONFormatter)
	assert.True(t, ok)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("MIFIR_TEST_KEY", "value")
	assert.Equal(t, "value", GetEnv("MIFIR_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("MIFIR_ABSENT_KEY", "fallback"))
}
