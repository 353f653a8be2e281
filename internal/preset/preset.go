// Package preset provides embedded, ready-made option sets that ship with
// code-prompt. A preset names a task type plus a curated option set so a
// common request (an Express API, a React app) is one flag away.
package preset

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Omodaka9375/code-prompt/internal/errors"
	"github.com/Omodaka9375/code-prompt/internal/schema"
	"gopkg.in/yaml.v3"
)

//go:embed presets/*.yaml
var presetsFS embed.FS

// Preset is a named, reusable (task type, option set) pair.
type Preset struct {
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	Task        schema.TaskType `yaml:"task"`
	Options     schema.Options  `yaml:"options"`
}

// Names returns the embedded preset names, sorted.
func Names() []string {
	entries, err := presetsFS.ReadDir("presets")
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".yaml" {
			names = append(names, strings.TrimSuffix(entry.Name(), ".yaml"))
		}
	}
	sort.Strings(names)
	return names
}

// Get loads a preset by name, preferring a user-installed copy in userDir
// over the embedded one so installed presets can be customized.
func Get(name, userDir string) (*Preset, error) {
	if userDir != "" {
		userPath := filepath.Join(userDir, name+".yaml")
		if data, err := os.ReadFile(userPath); err == nil {
			return parse(name, data)
		}
	}

	data, err := presetsFS.ReadFile(filepath.Join("presets", name+".yaml"))
	if err != nil {
		return nil, errors.PresetNotFound(name, strings.Join(Names(), ", "))
	}
	return parse(name, data)
}

func parse(name string, data []byte) (*Preset, error) {
	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("invalid preset %s: %w", name, err)
	}
	if p.Name == "" {
		p.Name = name
	}
	if !p.Task.Known() {
		return nil, fmt.Errorf("preset %s has unknown task type '%s'", name, p.Task)
	}
	if p.Options == nil {
		p.Options = schema.Options{}
	}
	return &p, nil
}

// Bootstrap copies the embedded presets into targetDir so users can edit
// them. Existing files are skipped. Returns the number of presets copied.
func Bootstrap(targetDir string) (int, error) {
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create presets directory: %w", err)
	}

	entries, err := presetsFS.ReadDir("presets")
	if err != nil {
		return 0, fmt.Errorf("failed to read embedded presets: %w", err)
	}

	copied := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		targetPath := filepath.Join(targetDir, entry.Name())
		if _, err := os.Stat(targetPath); err == nil {
			continue
		}

		content, err := presetsFS.ReadFile(filepath.Join("presets", entry.Name()))
		if err != nil {
			return copied, fmt.Errorf("failed to read %s: %w", entry.Name(), err)
		}
		if err := os.WriteFile(targetPath, content, 0644); err != nil {
			return copied, fmt.Errorf("failed to write %s: %w", entry.Name(), err)
		}
		copied++
	}

	return copied, nil
}
