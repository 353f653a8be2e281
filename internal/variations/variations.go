// Package variations produces the four fixed alternative phrasings of a
// built prompt: ultra minimal, production ready, learning focused, and
// constraint heavy. Generation is deterministic; identical inputs always
// yield identical variations in the same order.
package variations

import (
	"strings"

	"github.com/Omodaka9375/code-prompt/internal/builder"
	"github.com/Omodaka9375/code-prompt/internal/optimize"
	"github.com/Omodaka9375/code-prompt/internal/schema"
)

// Variation is one alternative phrasing of a request.
type Variation struct {
	Name            string
	Prompt          string
	Description     string
	Category        string
	EstimatedTokens int // same rune-based estimate the analyzer reports
}

// frameworkHints decorates the production variation per framework.
var frameworkHints = map[string]string{
	"express": "RESTful Express patterns",
	"react":   "React hooks and functional components",
	"vue":     "the Vue 3 composition API",
	"next":    "Next.js app router conventions",
	"fastify": "the Fastify plugin architecture",
}

const defaultFrameworkHint = "idiomatic patterns for the chosen stack"

// taskHints decorates the learning variation per task type.
var taskHints = map[schema.TaskType]string{
	schema.TaskInit:         "project scaffolding and tooling choices",
	schema.TaskFeature:      "incremental feature development",
	schema.TaskArchitecture: "architecture trade-offs",
	schema.TaskTesting:      "test design and coverage strategy",
	schema.TaskDocs:         "clear technical writing",
	schema.TaskFix:          "systematic debugging",
}

const defaultTaskHint = "the task at hand"

// Generate returns exactly four variations of the base prompt, in fixed
// order: Ultra Minimal, Production Ready, Learning Focused, Constraint Heavy.
func Generate(task schema.TaskType, basePrompt string, opts schema.Options) []Variation {
	clean := strings.TrimSuffix(basePrompt, builder.ClarificationClause)
	core := coreAction(clean)

	fwHint := hintFor(opts.Get("framework"), frameworkHints, defaultFrameworkHint)
	taskHint := hintForTask(task)

	minimal := core + ". Code only, no explanations."
	production := core + ". Production-grade: handle errors, validate inputs, add logging. Use " +
		fwHint + ". Follow security best practices." + builder.ClarificationClause
	learning := core + ". Explain each step and why it works. Focus on " + taskHint +
		". Add comments a beginner can follow." + builder.ClarificationClause
	constrained := clean + " Use strict typing where available, no deprecated APIs, no global state, " +
		"small pure functions, explicit error handling." + builder.ClarificationClause

	return []Variation{
		{
			Name:            "Ultra Minimal",
			Prompt:          minimal,
			Description:     "Shortest possible phrasing of the request",
			Category:        "minimal",
			EstimatedTokens: optimize.EstimateTokens(minimal),
		},
		{
			Name:            "Production Ready",
			Prompt:          production,
			Description:     "Enterprise-quality output with defensive coding",
			Category:        "production",
			EstimatedTokens: optimize.EstimateTokens(production),
		},
		{
			Name:            "Learning Focused",
			Prompt:          learning,
			Description:     "Educational phrasing with step-by-step reasoning",
			Category:        "educational",
			EstimatedTokens: optimize.EstimateTokens(learning),
		},
		{
			Name:            "Constraint Heavy",
			Prompt:          constrained,
			Description:     "Full prompt plus an exhaustive constraint list",
			Category:        "constrained",
			EstimatedTokens: optimize.EstimateTokens(constrained),
		},
	}
}

// coreAction takes the text before the first period of the clean prompt.
func coreAction(clean string) string {
	if idx := strings.Index(clean, "."); idx >= 0 {
		return clean[:idx]
	}
	return clean
}

func hintFor(key string, hints map[string]string, fallback string) string {
	if hint, ok := hints[key]; ok {
		return hint
	}
	return fallback
}

func hintForTask(t schema.TaskType) string {
	if hint, ok := taskHints[t]; ok {
		return hint
	}
	return defaultTaskHint
}
