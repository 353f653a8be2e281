// Package project inspects a project directory and produces the context
// facts the prompt optimizer consumes. Probing fails soft: a missing or
// unparsable manifest yields empty facts, never an error, so the core
// pipeline can always run.
package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/Omodaka9375/code-prompt/internal/optimize"
)

// manifest mirrors the package.json fields probing cares about.
type manifest struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
	Scripts         map[string]string `json:"scripts"`
}

// lockfiles maps lockfile names to the package manager they identify,
// checked in preference order.
var lockfiles = []struct {
	file    string
	manager string
}{
	{"pnpm-lock.yaml", "pnpm"},
	{"yarn.lock", "yarn"},
	{"bun.lockb", "bun"},
	{"package-lock.json", "npm"},
}

// testingDeps are dependency names that indicate an existing test setup.
var testingDeps = []string{"jest", "vitest", "mocha", "playwright", "@playwright/test"}

// Probe derives context facts from the project rooted at root.
func Probe(root string) optimize.Facts {
	var facts optimize.Facts

	data, err := os.ReadFile(filepath.Join(root, "package.json"))
	if err != nil {
		// No manifest means no context; repo-level files are still useless
		// to the optimizer without a package ecosystem to anchor them.
		return facts
	}

	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return facts
	}

	facts.HasTypeScript = m.hasDep("typescript") || fileExists(root, "tsconfig.json")
	facts.HasReact = m.hasDep("react")
	facts.PackageManager = detectPackageManager(root)
	facts.HasLinting = m.hasDep("eslint") || m.hasScript("lint")
	facts.HasFormatting = m.hasDep("prettier") || m.hasScript("format")
	facts.HasTesting = m.hasAnyDep(testingDeps) || m.hasScript("test")
	facts.HasGitignore = fileExists(root, ".gitignore")
	facts.HasReadme = fileExists(root, "README.md") || fileExists(root, "readme.md")

	return facts
}

func (m manifest) hasDep(name string) bool {
	if _, ok := m.Dependencies[name]; ok {
		return true
	}
	_, ok := m.DevDependencies[name]
	return ok
}

func (m manifest) hasAnyDep(names []string) bool {
	for _, name := range names {
		if m.hasDep(name) {
			return true
		}
	}
	return false
}

func (m manifest) hasScript(name string) bool {
	_, ok := m.Scripts[name]
	return ok
}

func detectPackageManager(root string) string {
	for _, lf := range lockfiles {
		if fileExists(root, lf.file) {
			return lf.manager
		}
	}
	// A package.json with no lockfile still implies npm.
	return "npm"
}

func fileExists(root, name string) bool {
	_, err := os.Stat(filepath.Join(root, name))
	return err == nil
}
