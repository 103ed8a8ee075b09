package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Missing file falls back to defaults", func(t *testing.T) {
		cfg, err := LoadConfig(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, "info", cfg.Logger.Level)
		assert.Equal(t, "console", cfg.Logger.Format)
		assert.Equal(t, "Sanitized Demo", cfg.Report.TitleSuffix)
		assert.Equal(t, "01_Manual_Backtest_Sample_portfolio_safe.pdf", cfg.Report.ManualOutput)
		assert.Equal(t, "02_Automated_Algo_Sample_portfolio_safe.pdf", cfg.Report.AutomatedOutput)
		assert.Equal(t, 15, cfg.Source.HTTPTimeoutSeconds)
		assert.Equal(t, 3, cfg.Source.HTTPRetries)
		assert.Equal(t, "trades", cfg.Source.SQLiteTable)
	})

	t.Run("File values override defaults", func(t *testing.T) {
		dir := t.TempDir()
		yml := "logger:\n  level: debug\n  format: json\nreport:\n  title_suffix: Internal\nsource:\n  sqlite_table: journal\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte(yml), 0o644))

		cfg, err := LoadConfig(dir)
		require.NoError(t, err)

		assert.Equal(t, "debug", cfg.Logger.Level)
		assert.Equal(t, "json", cfg.Logger.Format)
		assert.Equal(t, "Internal", cfg.Report.TitleSuffix)
		assert.Equal(t, "journal", cfg.Source.SQLiteTable)
		assert.Equal(t, 3, cfg.Source.HTTPRetries)
	})

	t.Run("Environment overrides file", func(t *testing.T) {
		t.Setenv("REPORT_AUTHOR", "desk-7")
		t.Setenv("SOURCE_HTTP_RETRIES", "5")

		cfg, err := LoadConfig(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, "desk-7", cfg.Report.Author)
		assert.Equal(t, 5, cfg.Source.HTTPRetries)
	})

	t.Run("Malformed file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte("logger: [unterminated"), 0o644))

		_, err := LoadConfig(dir)
		assert.Error(t, err)
	})
}
