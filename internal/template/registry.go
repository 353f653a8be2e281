// Package template holds the static phrasing data behind prompt generation:
// base phrase templates per task type, the phrase dictionaries that turn raw
// option tags into prose, and the per-key placeholder fallback table.
// The package is pure data plus lookups; all resolution logic lives in builder.
package template

import "github.com/Omodaka9375/code-prompt/internal/schema"

// Template is the phrasing skeleton for one task type.
type Template struct {
	// Base contains {{key}} placeholders matching option keys.
	Base string

	// Alternate replaces Base when AltKey is non-blank in the caller's
	// original options. Empty when the task has no alternate phrasing.
	Alternate string
	AltKey    string
}

var templates = map[schema.TaskType]Template{
	schema.TaskInit: {
		Base:      "Create {{projectType}} project with {{framework}}",
		Alternate: "Create {{projectType}} project named {{projectName}} with {{framework}}",
		AltKey:    "projectName",
	},
	schema.TaskFeature: {
		Base:      "Add {{featureType}} feature to the project using {{approach}}",
		Alternate: "Add {{featureType}} feature called {{featureName}} to the project using {{approach}}",
		AltKey:    "featureName",
	},
	schema.TaskArchitecture: {
		Base: "Design {{pattern}} architecture for a {{scale}} application",
	},
	schema.TaskTesting: {
		Base: "Write {{testType}} tests for {{target}} using {{library}}",
	},
	schema.TaskDocs: {
		Base: "Generate {{docType}} documentation for {{target}}",
	},
	schema.TaskFix: {
		Base:      "Fix {{errorType}} error in the project",
		Alternate: "Fix {{errorType}} error: {{errorMessage}}",
		AltKey:    "errorMessage",
	},
}

// Lookup returns the template for a task type.
func Lookup(t schema.TaskType) (Template, bool) {
	tmpl, ok := templates[t]
	return tmpl, ok
}

// GenericFallback substitutes for any placeholder that has neither a supplied
// value nor an entry in the fallback table.
const GenericFallback = "component"

// fallbacks maps placeholder keys to the literal used when the caller
// supplies nothing. Every placeholder in every template has an entry here
// except the alternate-only name fields, which must never be fallback-filled
// (a fallback would wrongly trigger the alternate phrasing).
var fallbacks = map[string]string{
	"projectType": "node",
	"framework":   "express",
	"featureType": "component",
	"approach":    "incremental",
	"pattern":     "layered",
	"scale":       "medium",
	"testType":    "unit",
	"target":      "function",
	"library":     "Jest",
	"docType":     "api",
	"errorType":   "runtime",
}

// Fallback returns the fallback literal for a placeholder key.
func Fallback(key string) (string, bool) {
	v, ok := fallbacks[key]
	return v, ok
}

// CustomPairs maps enum options that accept the "other" sentinel to the
// companion key holding the free-form custom value.
var CustomPairs = map[string]string{
	"framework": "customFramework",
	"library":   "customLibrary",
}

// Approaches rewrites the raw approach tag into prose inside the feature base.
var Approaches = map[string]string{
	"incremental":    "small incremental changes",
	"test-first":     "a test-first workflow",
	"refactor-first": "a refactor-then-extend workflow",
}

// Patterns rewrites the raw architecture pattern tag into prose.
var Patterns = map[string]string{
	"mvc":           "model-view-controller (MVC)",
	"microservices": "microservice-based",
	"event-driven":  "event-driven message-passing",
	"monolith":      "modular monolith",
	"layered":       "layered (n-tier)",
}

// Scopes supplies the change-scope constraint clause for feature and
// architecture tasks.
var Scopes = map[string]string{
	"minimal":  "touch only the files strictly required",
	"standard": "keep changes within the affected module",
	"complete": "update all affected modules and docs",
}

// Priorities supplies the fix-priority constraint clause.
var Priorities = map[string]string{
	"quick-fix":  "apply the fastest safe fix",
	"root-cause": "diagnose and fix the root cause",
	"refactor":   "fix and clean up the surrounding code",
}

// Frameworks supplies the framework-specific constraint clause for init tasks.
var Frameworks = map[string]string{
	"express": "follow Express middleware conventions",
	"react":   "use functional React components with hooks",
	"vue":     "use the Vue 3 composition API",
	"next":    "follow Next.js app router conventions",
	"fastify": "use Fastify plugins for cross-cutting concerns",
}

// OutputFormats supplies the output-format constraint clause.
var OutputFormats = map[string]string{
	"code":          "output code only",
	"code-comments": "output code with explanatory comments",
	"explanation":   "explain the approach before showing code",
	"step-by-step":  "walk through the solution step by step",
}

// Complexities supplies the complexity constraint clause.
var Complexities = map[string]string{
	"simple":       "keep the solution simple and beginner-friendly",
	"intermediate": "use intermediate-level patterns and idioms",
	"production":   "make it production-grade with robust error handling",
}

// CodeStyles supplies the code-style constraint clause.
var CodeStyles = map[string]string{
	"clean":      "follow clean code principles",
	"functional": "prefer a functional style",
	"documented": "document all public functions",
}

// FileStructures supplies the file-structure constraint clause.
var FileStructures = map[string]string{
	"single-file": "keep everything in one file",
	"modular":     "split the code into small modules",
}

// Dependencies supplies the dependency-preference constraint clause.
var Dependencies = map[string]string{
	"none":     "use no external dependencies",
	"minimal":  "keep external dependencies minimal",
	"standard": "prefer well-established libraries",
}

// PackageManagers supplies the package-manager constraint clause for init tasks.
var PackageManagers = map[string]string{
	"npm":  "use npm as the package manager",
	"yarn": "use yarn as the package manager",
	"pnpm": "use pnpm as the package manager",
	"bun":  "use bun as the package manager",
}

// Structures supplies the folder-structure constraint clause for init tasks.
var Structures = map[string]string{
	"flat":          "use a flat file layout",
	"layered":       "use a layered folder structure",
	"feature-based": "group files by feature",
}

// Libraries supplies the test-library constraint clause.
var Libraries = map[string]string{
	"Jest":       "use Jest with its built-in assertions",
	"Vitest":     "use Vitest with its Jest-compatible API",
	"Mocha":      "use Mocha with Chai assertions",
	"Playwright": "use the Playwright test runner",
}

// Coverage supplies the coverage-goal constraint clause.
var Coverage = map[string]string{
	"happy-path": "cover the happy path only",
	"edge-cases": "include edge cases and error paths",
	"full":       "aim for full branch coverage",
}

// DocFormats supplies the document-format constraint clause.
var DocFormats = map[string]string{
	"markdown": "write the documentation in Markdown",
	"html":     "write the documentation as HTML",
	"plain":    "write the documentation as plain text",
}

// DetailLevels supplies the detail-level constraint clause.
var DetailLevels = map[string]string{
	"brief":         "keep it brief",
	"standard":      "use a standard level of detail",
	"comprehensive": "make it comprehensive",
}

// Categories supplies the issue-location constraint clause for fix tasks.
var Categories = map[string]string{
	"frontend": "the issue is in frontend code",
	"backend":  "the issue is in backend code",
	"build":    "the issue is in the build tooling",
	"tests":    "the issue is in the test suite",
}
