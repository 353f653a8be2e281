package config

import (
	"os"
	"path/filepath"
	"testing"

	perrors "github.com/Omodaka9375/code-prompt/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultVersion, cfg.Version)
	assert.Equal(t, DefaultOutputFormat, cfg.Defaults.OutputFormat)
	assert.Equal(t, DefaultComplexity, cfg.Defaults.Complexity)
	assert.Equal(t, DefaultExportFormat, cfg.Export.Format)
}

func TestLoadFrom_PartialConfigFilled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("defaults:\n  complexity: production\n"), 0o644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Defaults.Complexity)
	assert.Equal(t, DefaultOutputFormat, cfg.Defaults.OutputFormat)
	assert.Equal(t, DefaultVersion, cfg.Version)
}

func TestLoadFrom_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("defaults: [unclosed"), 0o644))

	_, err := LoadFrom(path)
	require.Error(t, err)

	var pe *perrors.PromptError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, perrors.ErrConfigInvalid, pe.Code)
}

func TestLoadFrom_InvalidEnum(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad output format", "defaults:\n  output_format: json\n"},
		{"bad complexity", "defaults:\n  complexity: extreme\n"},
		{"bad export format", "export:\n  format: pdf\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0o644))

			_, err := LoadFrom(path)
			require.Error(t, err)

			var pe *perrors.PromptError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, perrors.ErrConfigInvalid, pe.Code)
		})
	}
}

func TestSaveTo_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := &Config{
		Defaults: DefaultsConfig{OutputFormat: "explanation", Complexity: "simple"},
		Export:   ExportConfig{Format: "markdown", Dir: "/tmp/prompts"},
	}
	require.NoError(t, SaveTo(cfg, path))

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "explanation", loaded.Defaults.OutputFormat)
	assert.Equal(t, "simple", loaded.Defaults.Complexity)
	assert.Equal(t, "markdown", loaded.Export.Format)
	assert.Equal(t, "/tmp/prompts", loaded.Export.Dir)
	assert.Equal(t, DefaultVersion, loaded.Version)
}

func TestColorEnabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("color: false\n"), 0o644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.False(t, cfg.ColorEnabled())

	// Unset means enabled.
	defaults, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.True(t, defaults.ColorEnabled())
}

func TestValidate_DefaultsAreValid(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()
	assert.NoError(t, cfg.Validate())
}
