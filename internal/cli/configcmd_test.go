package cli

import (
	"os"
	"testing"

	"github.com/Omodaka9375/code-prompt/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunConfigInit(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	require.False(t, config.Exists())
	require.NoError(t, runConfigInit(false))
	require.True(t, config.Exists())

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultOutputFormat, cfg.Defaults.OutputFormat)
	assert.Equal(t, config.DefaultComplexity, cfg.Defaults.Complexity)
	assert.Equal(t, config.DefaultExportFormat, cfg.Export.Format)
}

func TestRunConfigInit_ExistingFileKept(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	require.NoError(t, runConfigInit(false))
	paths := config.NewPaths()
	custom := "defaults:\n  complexity: production\n"
	require.NoError(t, os.WriteFile(paths.ConfigFile, []byte(custom), 0o644))

	// Without --force the edited file survives.
	require.NoError(t, runConfigInit(false))
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Defaults.Complexity)

	// With --force it is reset to defaults.
	require.NoError(t, runConfigInit(true))
	cfg, err = config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultComplexity, cfg.Defaults.Complexity)
}
