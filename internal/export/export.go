// Package export serializes a generated prompt with its analysis and the
// originating options into a plain-text or Markdown document.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/Omodaka9375/code-prompt/internal/errors"
	"github.com/Omodaka9375/code-prompt/internal/optimize"
	"github.com/Omodaka9375/code-prompt/internal/schema"
	"github.com/Omodaka9375/code-prompt/internal/variations"
)

// Format selects the document layout.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
)

// FormatFromExtension maps a file extension to a format, defaulting to text.
func FormatFromExtension(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return FormatMarkdown
	default:
		return FormatText
	}
}

// Document bundles everything worth persisting about one generation run.
type Document struct {
	TaskType   schema.TaskType
	Prompt     string
	Analysis   optimize.Analysis
	Options    schema.Options
	Variations []variations.Variation // optional
	CreatedAt  time.Time
}

// Render produces the document body in the requested format.
func Render(doc Document, format Format) string {
	if format == FormatMarkdown {
		return renderMarkdown(doc)
	}
	return renderText(doc)
}

// Write renders the document and writes it to path, creating parent
// directories as needed.
func Write(path string, doc Document, format Format) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.ExportFailed(path, err)
	}
	if err := os.WriteFile(path, []byte(Render(doc, format)), 0644); err != nil {
		return errors.ExportFailed(path, err)
	}
	return nil
}

func renderText(doc Document) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Task: %s (%s)\n", doc.TaskType.Label(), doc.TaskType)
	fmt.Fprintf(&b, "Generated: %s\n\n", doc.CreatedAt.Format(time.RFC3339))

	b.WriteString("Prompt:\n")
	b.WriteString(doc.Prompt)
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Estimated tokens: %d\n", doc.Analysis.EstimatedTokens)
	fmt.Fprintf(&b, "Efficiency: %s\n", doc.Analysis.Efficiency)
	for _, rec := range doc.Analysis.Recommendations {
		fmt.Fprintf(&b, "  - %s\n", rec)
	}

	if len(doc.Options) > 0 {
		b.WriteString("\nOptions:\n")
		for _, key := range sortedKeys(doc.Options) {
			fmt.Fprintf(&b, "  %s: %s\n", key, doc.Options[key])
		}
	}

	for _, v := range doc.Variations {
		fmt.Fprintf(&b, "\n[%s] (~%d tokens)\n%s\n", v.Name, v.EstimatedTokens, v.Prompt)
	}

	return b.String()
}

func renderMarkdown(doc Document) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s Prompt\n\n", doc.TaskType.Label())
	fmt.Fprintf(&b, "_Generated %s_\n\n", doc.CreatedAt.Format("2006-01-02 15:04"))

	b.WriteString("## Prompt\n\n")
	fmt.Fprintf(&b, "> %s\n\n", doc.Prompt)

	b.WriteString("## Analysis\n\n")
	fmt.Fprintf(&b, "- Estimated tokens: **%d**\n", doc.Analysis.EstimatedTokens)
	fmt.Fprintf(&b, "- Efficiency: **%s**\n", doc.Analysis.Efficiency)
	for _, rec := range doc.Analysis.Recommendations {
		fmt.Fprintf(&b, "- Recommendation: %s\n", rec)
	}
	b.WriteString("\n")

	if len(doc.Options) > 0 {
		b.WriteString("## Options\n\n")
		b.WriteString("| Option | Value |\n|---|---|\n")
		for _, key := range sortedKeys(doc.Options) {
			fmt.Fprintf(&b, "| %s | %s |\n", key, doc.Options[key])
		}
		b.WriteString("\n")
	}

	if len(doc.Variations) > 0 {
		b.WriteString("## Variations\n\n")
		for _, v := range doc.Variations {
			fmt.Fprintf(&b, "### %s (~%d tokens)\n\n%s\n\n> %s\n\n",
				v.Name, v.EstimatedTokens, v.Description, v.Prompt)
		}
	}

	return b.String()
}

func sortedKeys(opts schema.Options) []string {
	keys := make([]string, 0, len(opts))
	for k := range opts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
