// Package schema defines the task types code-prompt knows about and the
// per-task question schemas the interactive flow and flag parsing share.
package schema

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TaskType is the category of coding request a prompt is generated for.
type TaskType string

const (
	TaskInit         TaskType = "init"
	TaskFeature      TaskType = "feature"
	TaskArchitecture TaskType = "architecture"
	TaskTesting      TaskType = "testing"
	TaskDocs         TaskType = "docs"
	TaskFix          TaskType = "fix"
)

// AllTaskTypes lists every known task type in menu order.
var AllTaskTypes = []TaskType{
	TaskInit,
	TaskFeature,
	TaskArchitecture,
	TaskTesting,
	TaskDocs,
	TaskFix,
}

// Known reports whether t is one of the defined task types.
func (t TaskType) Known() bool {
	for _, known := range AllTaskTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Label returns a human-readable label for the task type.
func (t TaskType) Label() string {
	switch t {
	case TaskInit:
		return "New Project"
	case TaskFeature:
		return "Add Feature"
	case TaskArchitecture:
		return "Architecture Design"
	case TaskTesting:
		return "Write Tests"
	case TaskDocs:
		return "Documentation"
	case TaskFix:
		return "Fix Error"
	default:
		return cases.Title(language.English).String(string(t))
	}
}

// Options holds the user's answers for a task, keyed by option name.
// Values are stored as strings; boolean options use "true"/"false".
type Options map[string]string

// Get returns the trimmed value for key, or "" if unset.
func (o Options) Get(key string) string {
	return strings.TrimSpace(o[key])
}

// Has reports whether key has a non-blank value.
func (o Options) Has(key string) bool {
	return o.Get(key) != ""
}

// IsTrue reports whether key holds a truthy value.
func (o Options) IsTrue(key string) bool {
	switch strings.ToLower(o.Get(key)) {
	case "true", "yes", "y", "1":
		return true
	}
	return false
}

// Clone returns a shallow copy of the option set.
func (o Options) Clone() Options {
	out := make(Options, len(o))
	for k, v := range o {
		out[k] = v
	}
	return out
}

// Condition gates a question on a sibling option's value.
type Condition struct {
	Key    string
	Equals string
}

// Question describes one option the user can answer for a task type.
type Question struct {
	Key      string
	Prompt   string
	Options  []string   // Valid values if constrained
	Default  string     // Applied by the interactive flow when left blank
	Required bool
	ShowIf   *Condition // Only asked when the sibling option matches
}

// Visible reports whether the question applies given the answers so far.
func (q Question) Visible(opts Options) bool {
	if q.ShowIf == nil {
		return true
	}
	return opts.Get(q.ShowIf.Key) == q.ShowIf.Equals
}

// universalQuestions apply to every task type.
var universalQuestions = []Question{
	{
		Key:     "outputFormat",
		Prompt:  "Output format",
		Options: []string{"code", "code-comments", "explanation", "step-by-step"},
		Default: "code",
	},
	{
		Key:     "complexity",
		Prompt:  "Complexity level",
		Options: []string{"simple", "intermediate", "production"},
		Default: "intermediate",
	},
	{
		Key:     "codeStyle",
		Prompt:  "Code style (optional)",
		Options: []string{"clean", "functional", "documented"},
	},
	{
		Key:     "fileStructure",
		Prompt:  "File structure (optional)",
		Options: []string{"single-file", "modular"},
	},
	{
		Key:     "dependencies",
		Prompt:  "Dependency preference (optional)",
		Options: []string{"none", "minimal", "standard"},
	},
}

// taskQuestions holds the task-specific questions, asked before the universal ones.
var taskQuestions = map[TaskType][]Question{
	TaskInit: {
		{Key: "projectType", Prompt: "Project type", Options: []string{"node", "web", "cli", "api", "library"}, Default: "node", Required: true},
		{Key: "projectName", Prompt: "Project name (optional)"},
		{Key: "framework", Prompt: "Framework", Options: []string{"express", "react", "vue", "next", "fastify", "other"}, Default: "express"},
		{Key: "customFramework", Prompt: "Custom framework name", ShowIf: &Condition{Key: "framework", Equals: "other"}},
		{Key: "packageManager", Prompt: "Package manager", Options: []string{"npm", "yarn", "pnpm", "bun"}, Default: "npm"},
		{Key: "structure", Prompt: "Folder structure", Options: []string{"flat", "layered", "feature-based"}},
	},
	TaskFeature: {
		{Key: "featureType", Prompt: "Feature type", Options: []string{"component", "api-endpoint", "auth", "database", "ui"}, Default: "component", Required: true},
		{Key: "featureName", Prompt: "Feature name (optional)"},
		{Key: "approach", Prompt: "Approach", Options: []string{"incremental", "test-first", "refactor-first"}, Default: "incremental"},
		{Key: "scope", Prompt: "Change scope", Options: []string{"minimal", "standard", "complete"}},
	},
	TaskArchitecture: {
		{Key: "pattern", Prompt: "Architecture pattern", Options: []string{"mvc", "microservices", "event-driven", "monolith", "layered"}, Default: "layered", Required: true},
		{Key: "scale", Prompt: "Application scale", Options: []string{"small", "medium", "large"}, Default: "medium"},
		{Key: "scope", Prompt: "Design scope", Options: []string{"minimal", "standard", "complete"}},
	},
	TaskTesting: {
		{Key: "testType", Prompt: "Test type", Options: []string{"unit", "integration", "e2e"}, Default: "unit", Required: true},
		{Key: "target", Prompt: "What to test", Default: "function"},
		{Key: "library", Prompt: "Test library", Options: []string{"Jest", "Vitest", "Mocha", "Playwright", "other"}, Default: "Jest"},
		{Key: "customLibrary", Prompt: "Custom test library name", ShowIf: &Condition{Key: "library", Equals: "other"}},
		{Key: "coverage", Prompt: "Coverage goal", Options: []string{"happy-path", "edge-cases", "full"}},
	},
	TaskDocs: {
		{Key: "docType", Prompt: "Documentation type", Options: []string{"api", "readme", "architecture", "user-guide"}, Default: "api", Required: true},
		{Key: "target", Prompt: "What to document", Default: "function"},
		{Key: "docFormat", Prompt: "Document format", Options: []string{"markdown", "html", "plain"}, Default: "markdown"},
		{Key: "detailLevel", Prompt: "Detail level", Options: []string{"brief", "standard", "comprehensive"}},
		{Key: "diagrams", Prompt: "Include diagrams?", Options: []string{"true", "false"}, Default: "false"},
		{Key: "examples", Prompt: "Include usage examples?", Options: []string{"true", "false"}, Default: "true"},
		{Key: "toc", Prompt: "Include table of contents?", Options: []string{"true", "false"}, Default: "false", ShowIf: &Condition{Key: "docFormat", Equals: "markdown"}},
	},
	TaskFix: {
		{Key: "errorType", Prompt: "Error type", Options: []string{"runtime", "build", "type", "logic", "performance"}, Default: "runtime", Required: true},
		{Key: "errorMessage", Prompt: "Error message (optional)"},
		{Key: "priority", Prompt: "Fix priority", Options: []string{"quick-fix", "root-cause", "refactor"}, Default: "root-cause"},
		{Key: "category", Prompt: "Where is the issue?", Options: []string{"frontend", "backend", "build", "tests"}},
	},
}

// Questions returns the full ordered question list for a task type:
// task-specific questions first, then the universal ones.
// Unknown task types get only the universal questions.
func Questions(t TaskType) []Question {
	qs := make([]Question, 0, len(taskQuestions[t])+len(universalQuestions))
	qs = append(qs, taskQuestions[t]...)
	qs = append(qs, universalQuestions...)
	return qs
}

// Validate checks supplied options against the task's question schema.
// It rejects unknown keys and values outside a question's constrained options.
// The prompt builder itself never validates; this guards the CLI boundary so
// typos surface before a degraded prompt is generated.
func Validate(t TaskType, opts Options) error {
	if !t.Known() {
		return fmt.Errorf("unknown task type '%s' (available: %s)", t, taskNames())
	}

	questions := Questions(t)
	known := make(map[string]Question, len(questions))
	for _, q := range questions {
		known[q.Key] = q
	}

	for key, val := range opts {
		q, ok := known[key]
		if !ok {
			return fmt.Errorf("unknown option '%s' for task %s", key, t)
		}
		if len(q.Options) > 0 && strings.TrimSpace(val) != "" {
			valid := false
			for _, allowed := range q.Options {
				if val == allowed {
					valid = true
					break
				}
			}
			// "other" pairs accept free-form custom values through
			// their companion question, never through the enum itself.
			if !valid {
				return fmt.Errorf("invalid value '%s' for option '%s' (valid: %s)",
					val, key, strings.Join(q.Options, ", "))
			}
		}
	}

	return nil
}

// ApplyDefaults fills schema defaults for visible, unanswered questions.
// Used by the flag-driven path so it matches what the interactive flow collects.
func ApplyDefaults(t TaskType, opts Options) Options {
	out := opts.Clone()
	for _, q := range Questions(t) {
		if q.Default == "" || !q.Visible(out) {
			continue
		}
		if !out.Has(q.Key) {
			out[q.Key] = q.Default
		}
	}
	return out
}

func taskNames() string {
	names := make([]string, len(AllTaskTypes))
	for i, t := range AllTaskTypes {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
