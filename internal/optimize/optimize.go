package optimize

import (
	"fmt"
	"strings"

	"github.com/Omodaka9375/code-prompt/internal/schema"
)

// Facts is the project-context record a prober supplies. The optimizer only
// reads these values; probing belongs to the caller. A zero value means
// "no context" and contributes nothing.
type Facts struct {
	HasTypeScript  bool
	HasReact       bool
	PackageManager string
	HasLinting     bool
	HasFormatting  bool
	HasTesting     bool
	HasGitignore   bool
	HasReadme      bool
}

// Empty reports whether no fact was detected.
func (f Facts) Empty() bool {
	return f == Facts{}
}

// outputPhrases drive the Output segment from the outputFormat option.
var outputPhrases = map[string]string{
	"code":          "Code only, no explanations",
	"code-comments": "Code with inline comments",
	"explanation":   "Explanation first, then code",
	"step-by-step":  "Step-by-step walkthrough",
}

// complexityPhrases drive the Output segment from the complexity option.
// Intermediate contributes nothing here; the builder's complexity clause
// already covers it.
var complexityPhrases = map[string]string{
	"simple":     "Keep the solution minimal",
	"production": "Include error handling and logging",
}

// Optimize appends context- and output-driven directives to a built prompt.
// Context clauses are skipped when their keyword already appears verbatim in
// the base prompt, so a prompt that mentions TypeScript never gets a second
// TypeScript directive. Pure function: no I/O, no state.
func Optimize(basePrompt string, opts schema.Options, facts Facts) string {
	out := basePrompt

	if clauses := contextClauses(basePrompt, facts); len(clauses) > 0 {
		out = appendSegment(out, "Context", clauses)
	}

	var output []string
	if phrase, ok := outputPhrases[opts.Get("outputFormat")]; ok {
		output = append(output, phrase)
	}
	if phrase, ok := complexityPhrases[opts.Get("complexity")]; ok {
		output = append(output, phrase)
	}
	if len(output) > 0 {
		out = appendSegment(out, "Output", output)
	}

	return out
}

// contextClauses converts detected facts into directives, gated by a naive
// substring check against the base prompt.
func contextClauses(basePrompt string, facts Facts) []string {
	var clauses []string
	add := func(keyword, clause string) {
		if !strings.Contains(basePrompt, keyword) {
			clauses = append(clauses, clause)
		}
	}

	if facts.HasTypeScript {
		add("TypeScript", "use TypeScript")
	}
	if facts.HasReact {
		add("React", "follow the existing React conventions")
	}
	if pm := strings.TrimSpace(facts.PackageManager); pm != "" {
		add(pm, fmt.Sprintf("use %s for all package scripts", pm))
	}
	if facts.HasLinting {
		add("lint", "match the existing lint rules")
	}
	if facts.HasFormatting {
		add("Prettier", "match the Prettier formatting config")
	}
	if facts.HasTesting {
		add("test", "keep the existing test setup passing")
	}
	if facts.HasGitignore {
		add(".gitignore", "keep the existing .gitignore")
	}
	if facts.HasReadme {
		add("README", "update the existing README")
	}

	return clauses
}

// appendSegment attaches a ". <Label>: a, b." segment, collapsing the
// period boundary so segments chain cleanly after the clarification clause.
func appendSegment(s, label string, clauses []string) string {
	s = strings.TrimSuffix(s, ".")
	return s + ". " + label + ": " + strings.Join(clauses, ", ") + "."
}
