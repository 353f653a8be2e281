package config

import (
	"os"
	"path/filepath"
)

// Paths provides all code-prompt related filesystem paths.
type Paths struct {
	ConfigDir  string // ~/.config/code-prompt
	ConfigFile string // ~/.config/code-prompt/config.yaml
	PresetsDir string // ~/.config/code-prompt/presets
	PromptsDir string // ~/.config/code-prompt/prompts (export target for bare --output names)
}

// NewPaths creates Paths rooted at ~/.config. We use this path explicitly
// for cross-platform consistency rather than platform-specific defaults
// (like ~/Library/Application Support on macOS).
func NewPaths() *Paths {
	home := os.Getenv("HOME")
	return NewPathsWithOverrides(filepath.Join(home, ".config", "code-prompt"))
}

// NewPathsWithOverrides allows overriding the config directory for testing.
func NewPathsWithOverrides(configDir string) *Paths {
	return &Paths{
		ConfigDir:  configDir,
		ConfigFile: filepath.Join(configDir, "config.yaml"),
		PresetsDir: filepath.Join(configDir, "presets"),
		PromptsDir: filepath.Join(configDir, "prompts"),
	}
}
