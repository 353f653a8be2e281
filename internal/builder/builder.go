// Package builder turns a task type and option set into a final prompt string.
//
// Resolution is deliberately lenient: missing values degrade to fallback
// literals and unknown task types degrade to a sentinel string. The builder
// never returns an error and never leaves a {{placeholder}} in its output.
package builder

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Omodaka9375/code-prompt/internal/schema"
	"github.com/Omodaka9375/code-prompt/internal/template"
)

// ClarificationClause is appended to every built prompt exactly once.
const ClarificationClause = " Ask user to clarify if necessary."

// UnknownTask is returned for task types outside the known set.
const UnknownTask = "unknown type"

var placeholderRe = regexp.MustCompile(`\{\{(\w+)\}\}`)

// Build produces the final prompt for a task type and option set.
func Build(task schema.TaskType, opts schema.Options) string {
	tmpl, ok := template.Lookup(task)
	if !ok {
		return UnknownTask
	}
	if opts == nil {
		opts = schema.Options{}
	}

	merged := mergeFallbacks(opts)
	resolveCustomValues(merged, opts)

	// The alternate phrasing triggers on the caller's original options only.
	// A fallback-filled value must never switch templates.
	phrase := tmpl.Base
	if tmpl.AltKey != "" && opts.Has(tmpl.AltKey) && tmpl.Alternate != "" {
		phrase = tmpl.Alternate
	}

	out := substitute(phrase, merged)
	out = rewriteProse(task, out, merged)

	if clauses := collectConstraints(task, merged, opts); len(clauses) > 0 {
		out += ". Constraints: " + strings.Join(clauses, ", ") + "."
	}

	return out + ClarificationClause
}

// mergeFallbacks lays the caller's options over the fixed fallback table.
// Only placeholder keys have fallbacks; constraint options stay absent
// unless the caller supplied them.
func mergeFallbacks(opts schema.Options) schema.Options {
	merged := opts.Clone()
	for key := range placeholderFallbackKeys {
		if !merged.Has(key) {
			if v, ok := template.Fallback(key); ok {
				merged[key] = v
			}
		}
	}
	return merged
}

// placeholderFallbackKeys enumerates the keys the fallback table covers.
var placeholderFallbackKeys = map[string]struct{}{
	"projectType": {}, "framework": {}, "featureType": {}, "approach": {},
	"pattern": {}, "scale": {}, "testType": {}, "target": {}, "library": {},
	"docType": {}, "errorType": {},
}

// resolveCustomValues swaps the "other" sentinel for the paired custom value
// before any substitution happens, so the sentinel never reaches the output.
func resolveCustomValues(merged, original schema.Options) {
	for key, customKey := range template.CustomPairs {
		if merged.Get(key) == "other" && original.Has(customKey) {
			merged[key] = original.Get(customKey)
		}
	}
}

// substitute replaces every {{key}} with the merged value, falling back to
// the per-key fallback literal and finally to the generic literal.
func substitute(phrase string, merged schema.Options) string {
	return placeholderRe.ReplaceAllStringFunc(phrase, func(match string) string {
		key := placeholderRe.FindStringSubmatch(match)[1]
		if v := merged.Get(key); v != "" {
			return v
		}
		if v, ok := template.Fallback(key); ok {
			return v
		}
		return template.GenericFallback
	})
}

// rewriteProse runs the task's phrase dictionaries over the substituted
// string, replacing raw option tags with their prose equivalents. Running
// after substitution lets the dictionary win over the raw literal.
func rewriteProse(task schema.TaskType, out string, merged schema.Options) string {
	switch task {
	case schema.TaskFeature:
		out = replaceTag(out, merged.Get("approach"), template.Approaches)
	case schema.TaskArchitecture:
		out = replaceTag(out, merged.Get("pattern"), template.Patterns)
	}
	return out
}

func replaceTag(out, raw string, dict map[string]string) string {
	if raw == "" {
		return out
	}
	prose, ok := dict[raw]
	if !ok || prose == raw {
		return out
	}
	return strings.Replace(out, raw, prose, 1)
}

// collectConstraints gathers constraint clauses in the fixed emission order:
// framework (init only), output format, complexity, code style, file
// structure, dependency preference, then the task-specific clauses.
func collectConstraints(task schema.TaskType, merged, original schema.Options) []string {
	var clauses []string
	add := func(clause string) {
		if clause != "" {
			clauses = append(clauses, clause)
		}
	}

	if task == schema.TaskInit {
		add(frameworkClause(merged.Get("framework")))
	}
	add(template.OutputFormats[merged.Get("outputFormat")])
	add(template.Complexities[merged.Get("complexity")])
	add(template.CodeStyles[merged.Get("codeStyle")])
	add(template.FileStructures[merged.Get("fileStructure")])
	add(template.Dependencies[merged.Get("dependencies")])

	switch task {
	case schema.TaskInit:
		add(template.PackageManagers[merged.Get("packageManager")])
		add(template.Structures[merged.Get("structure")])
	case schema.TaskFeature, schema.TaskArchitecture:
		add(template.Scopes[merged.Get("scope")])
	case schema.TaskTesting:
		add(template.Libraries[merged.Get("library")])
		add(template.Coverage[merged.Get("coverage")])
	case schema.TaskDocs:
		add(template.DocFormats[merged.Get("docFormat")])
		add(template.DetailLevels[merged.Get("detailLevel")])
		if merged.IsTrue("diagrams") {
			add("include architecture diagrams")
		}
		if merged.IsTrue("examples") {
			add("include usage examples")
		}
		if merged.IsTrue("toc") {
			add("include a table of contents")
		}
	case schema.TaskFix:
		add(template.Priorities[merged.Get("priority")])
		if original.Has("errorMessage") {
			add("focus only on the reported error")
		}
		add(template.Categories[merged.Get("category")])
	}

	return clauses
}

// frameworkClause returns the framework-specific clause for init prompts.
// Custom frameworks get a generic conventions clause so the chosen name
// still shows up in the constraint list.
func frameworkClause(framework string) string {
	if framework == "" {
		return ""
	}
	if clause, ok := template.Frameworks[framework]; ok {
		return clause
	}
	return fmt.Sprintf("follow idiomatic %s conventions", framework)
}
