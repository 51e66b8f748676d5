package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "data/nbsrates.db", cfg.Database.Path)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Empty(t, cfg.Sources)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
database:
  path: /tmp/rates.db
logging:
  level: debug
  format: json
sources:
  - file: bulletin.xlsx
    sheet: "Tab 1"
    category: household_loans
  - file: bulletin.xlsx
    sheet: "Tab 5"
    category: non_financial_term_deposits_by_size
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/rates.db", cfg.Database.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	require.Len(t, cfg.Sources, 2)

	category, err := cfg.Sources[1].ParsedCategory()
	require.NoError(t, err)
	assert.Equal(t, "non_financial_term_deposits_by_size", string(category))
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
database:
  path: /tmp/rates.db
`)
	t.Setenv("NBS_DATABASE_PATH", "/tmp/override.db")
	t.Setenv("NBS_LOGGING_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/override.db", cfg.Database.Path)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "bad log level",
			content: `
logging:
  level: loud
`,
		},
		{
			name: "empty database path",
			content: `
database:
  path: ""
`,
		},
		{
			name: "source without sheet",
			content: `
sources:
  - file: bulletin.xlsx
    category: household_loans
`,
		},
		{
			name: "unknown category",
			content: `
sources:
  - file: bulletin.xlsx
    sheet: "Tab 1"
    category: mortgage_rates
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}
