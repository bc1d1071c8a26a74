package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// clearEnv evita que el entorno de la máquina contamine los tests.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"LOG_LEVEL", "LOG_FORMAT", "REVFX_PRICE_PREFIX", "REVFX_QUANTITY_PREFIX", "REVFX_DECIMALS"} {
		t.Setenv(k, "")
	}
}

func TestLoad_FullFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
columns:
  price_prefix: "p_"
  quantity_prefix: "q_"
report:
  decimals: 0
  time_layout: "2006-01"
log:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "p_", cfg.Columns.PricePrefix)
	assert.Equal(t, "q_", cfg.Columns.QuantityPrefix)
	assert.Equal(t, 0, cfg.ReportDecimals(), "0 decimals is a valid explicit value")
	assert.Equal(t, "2006-01", cfg.Report.TimeLayout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_EmptyFileGetsDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(writeConfig(t, "{}\n"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("REVFX_PRICE_PREFIX", "unit_price_")
	t.Setenv("REVFX_DECIMALS", "4")

	cfg, err := Load(writeConfig(t, "log:\n  level: debug\n"))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "unit_price_", cfg.Columns.PricePrefix)
	assert.Equal(t, "quantity_", cfg.Columns.QuantityPrefix)
	assert.Equal(t, 4, cfg.ReportDecimals())
}

func TestLoad_BadDecimalsEnv(t *testing.T) {
	t.Setenv("REVFX_DECIMALS", "two")
	_, err := Load(writeConfig(t, "{}\n"))
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "columns: [unclosed\n"))
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "price_", cfg.Columns.PricePrefix)
	assert.Equal(t, "quantity_", cfg.Columns.QuantityPrefix)
	assert.Equal(t, 2, cfg.ReportDecimals())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestNewLogger_LevelAndFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LogConfig{Level: "warn", Format: "json"})

	logger.Info("hidden")
	logger.Warn("shown", "k", 1)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"k":1`)
}

func TestNewLogger_TextDefault(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LogConfig{})

	logger.Debug("hidden")
	logger.Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
}
