package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Omodaka9375/code-prompt/internal/builder"
	"github.com/Omodaka9375/code-prompt/internal/config"
	"github.com/Omodaka9375/code-prompt/internal/errors"
	"github.com/Omodaka9375/code-prompt/internal/export"
	"github.com/Omodaka9375/code-prompt/internal/optimize"
	"github.com/Omodaka9375/code-prompt/internal/preset"
	"github.com/Omodaka9375/code-prompt/internal/project"
	"github.com/Omodaka9375/code-prompt/internal/schema"
	"github.com/Omodaka9375/code-prompt/internal/variations"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

// Prober supplies project-context facts for the optimizer. It is injected
// into the generate command so the core never touches the filesystem.
type Prober func(root string) optimize.Facts

type generateOptions struct {
	task           string
	sets           []string
	presetName     string
	optimizePrompt bool
	projectRoot    string
	showVariations bool
	copyToClip     bool
	output         string
	format         string
}

// NewGenerateCmd creates the generate command with the default prober.
func NewGenerateCmd() *cobra.Command {
	return NewGenerateCmdWithProber(project.Probe)
}

// NewGenerateCmdWithProber creates the generate command with a custom
// context prober (used by tests).
func NewGenerateCmdWithProber(prober Prober) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a prompt from task options",
		Long: `Generate a constraint-annotated prompt for an AI coding assistant.

With no flags, an interactive flow asks for the task type and its options.
With --task (plus --set key=value pairs or --preset), generation is fully
flag-driven and suitable for scripting.`,
		Example: `  code-prompt generate
  code-prompt generate --task init --set projectType=node --set framework=express
  code-prompt generate --preset express-api --optimize
  code-prompt generate --task testing --set library=Vitest --variations
  code-prompt generate --preset react-app -o prompt.md --copy`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts, prober)
		},
	}

	cmd.Flags().StringVarP(&opts.task, "task", "t", "", "Task type: init, feature, architecture, testing, docs, fix")
	cmd.Flags().StringArrayVar(&opts.sets, "set", nil, "Set an option as key=value (repeatable)")
	cmd.Flags().StringVarP(&opts.presetName, "preset", "p", "", "Start from a named preset")
	cmd.Flags().BoolVar(&opts.optimizePrompt, "optimize", false, "Append project-context directives")
	cmd.Flags().StringVar(&opts.projectRoot, "project", ".", "Project root to probe for context")
	cmd.Flags().BoolVar(&opts.showVariations, "variations", false, "Also print the four prompt variations")
	cmd.Flags().BoolVar(&opts.copyToClip, "copy", false, "Copy the prompt to the clipboard")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Save prompt document to file")
	cmd.Flags().StringVar(&opts.format, "format", "", "Export format: text or markdown (default from extension)")

	return cmd
}

func runGenerate(opts *generateOptions, prober Prober) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	task, answers, interactive, err := collectInputs(opts, cfg)
	if err != nil {
		return err
	}

	basePrompt := builder.Build(task, answers)

	finalPrompt := basePrompt
	if opts.optimizePrompt {
		facts := prober(opts.projectRoot)
		if facts.Empty() {
			printWarning("No project context detected in %s", opts.projectRoot)
		}
		finalPrompt = optimize.Optimize(basePrompt, answers, facts)

		stats := optimize.TokenStats{
			Before: optimize.EstimateTokens(basePrompt),
			After:  optimize.EstimateTokens(finalPrompt),
		}
		if stats.Delta() > 0 {
			fmt.Printf("%s Context added ~%d tokens (%+.0f%%)\n\n",
				dim("→"), stats.Delta(), stats.PercentChange())
		}
	}

	analysis := optimize.Analyze(finalPrompt)
	printPrompt(finalPrompt, analysis)

	var vars []variations.Variation
	if opts.showVariations {
		vars = variations.Generate(task, basePrompt, answers)
		printVariations(vars)
	}

	copyPrompt := opts.copyToClip
	if interactive && !copyPrompt {
		fmt.Println()
		copyPrompt = promptYesNo("Copy prompt to clipboard?")
	}
	if copyPrompt {
		if err := clipboard.WriteAll(finalPrompt); err != nil {
			printWarning("Could not copy to clipboard: %v", err)
		} else {
			printSuccess("Prompt copied to clipboard")
		}
	}

	if opts.output != "" {
		outPath := resolveExportPath(opts.output, cfg.Export.Dir)
		doc := export.Document{
			TaskType:   task,
			Prompt:     finalPrompt,
			Analysis:   analysis,
			Options:    answers,
			Variations: vars,
			CreatedAt:  time.Now(),
		}
		format := export.Format(opts.format)
		if opts.format == "" {
			format = export.FormatFromExtension(outPath)
			// The configured default only applies when the extension
			// gives no signal.
			if filepath.Ext(outPath) == "" && cfg.Export.Format != "" {
				format = export.Format(cfg.Export.Format)
			}
		}
		if err := export.Write(outPath, doc, format); err != nil {
			return err
		}
		printSuccess("Saved to %s", outPath)
	}

	return nil
}

// collectInputs resolves the task type and option set from preset, flags,
// or the interactive flow, in that order of precedence.
func collectInputs(opts *generateOptions, cfg *config.Config) (schema.TaskType, schema.Options, bool, error) {
	answers := schema.Options{}
	task := schema.TaskType(opts.task)

	if opts.presetName != "" {
		paths := config.NewPaths()
		p, err := preset.Get(opts.presetName, paths.PresetsDir)
		if err != nil {
			return "", nil, false, err
		}
		task = p.Task
		answers = p.Options.Clone()
		if opts.task != "" && schema.TaskType(opts.task) != p.Task {
			return "", nil, false, errors.InvalidOption(
				fmt.Sprintf("--task %s conflicts with preset %s (task %s)", opts.task, p.Name, p.Task))
		}
	}

	// --set pairs layer over the preset.
	for _, pair := range opts.sets {
		key, val, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return "", nil, false, errors.InvalidOption(fmt.Sprintf("invalid --set value '%s', want key=value", pair))
		}
		answers[strings.TrimSpace(key)] = strings.TrimSpace(val)
	}

	if opts.presetName == "" && opts.task == "" && len(opts.sets) == 0 {
		task, answers, err := runQuestionFlow(cfg)
		return task, answers, true, err
	}

	if task == "" {
		return "", nil, false, errors.InvalidOption("--set requires a task type; pass --task or --preset")
	}
	if !task.Known() {
		return "", nil, false, errors.UnknownTask(string(task), taskTypeNames())
	}
	if err := schema.Validate(task, answers); err != nil {
		return "", nil, false, errors.InvalidOption(err.Error())
	}

	answers = applyConfigDefaults(answers, cfg)
	answers = schema.ApplyDefaults(task, answers)
	return task, answers, false, nil
}

// runQuestionFlow walks the user through the task's question schema.
func runQuestionFlow(cfg *config.Config) (schema.TaskType, schema.Options, error) {
	fmt.Println("What do you want to do?")
	for i, t := range schema.AllTaskTypes {
		fmt.Printf("  %d. %s %s\n", i+1, t.Label(), dim("("+string(t)+")"))
	}

	choice := promptString(fmt.Sprintf("Choose [1-%d]:", len(schema.AllTaskTypes)))
	idx, err := strconv.Atoi(choice)
	if err != nil || idx < 1 || idx > len(schema.AllTaskTypes) {
		return "", nil, errors.InvalidOption(fmt.Sprintf("invalid choice '%s'", choice))
	}
	task := schema.AllTaskTypes[idx-1]
	fmt.Println()

	answers := schema.Options{}
	for _, q := range schema.Questions(task) {
		if !q.Visible(answers) {
			continue
		}

		def := q.Default
		if q.Key == "outputFormat" && cfg.Defaults.OutputFormat != "" {
			def = cfg.Defaults.OutputFormat
		}
		if q.Key == "complexity" && cfg.Defaults.Complexity != "" {
			def = cfg.Defaults.Complexity
		}

		answer := askQuestion(q, def)
		if answer != "" {
			answers[q.Key] = answer
		}
	}

	fmt.Println()
	return task, answers, nil
}

// askQuestion prompts for a single question, re-asking on invalid choices
// for constrained options and honoring the default on a blank answer.
func askQuestion(q schema.Question, def string) string {
	if len(q.Options) == 0 {
		label := q.Prompt
		if def != "" {
			label += fmt.Sprintf(" [%s]", def)
		}
		answer := promptString(label + ":")
		if answer == "" {
			return def
		}
		return answer
	}

	fmt.Println(q.Prompt + ":")
	for i, opt := range q.Options {
		marker := " "
		if opt == def {
			marker = "*"
		}
		fmt.Printf("  %s %d. %s\n", dim(marker), i+1, opt)
	}

	for {
		answer := promptString(fmt.Sprintf("Choose [1-%d]:", len(q.Options)))
		if answer == "" {
			if def != "" || !q.Required {
				return def
			}
			printError("This option is required")
			continue
		}
		idx, err := strconv.Atoi(answer)
		if err == nil && idx >= 1 && idx <= len(q.Options) {
			return q.Options[idx-1]
		}
		// Accept the literal value too
		for _, opt := range q.Options {
			if answer == opt {
				return opt
			}
		}
		printError("Invalid choice '%s'", answer)
	}
}

// resolveExportPath places a bare filename in the configured export
// directory, falling back to the default prompts dir. Any path with a
// directory component is taken as given.
func resolveExportPath(output, exportDir string) string {
	if strings.ContainsRune(output, filepath.Separator) {
		return output
	}
	if exportDir == "" {
		exportDir = config.NewPaths().PromptsDir
	}
	return filepath.Join(exportDir, output)
}

// applyConfigDefaults fills universal defaults from the user config before
// schema defaults apply.
func applyConfigDefaults(answers schema.Options, cfg *config.Config) schema.Options {
	out := answers.Clone()
	if !out.Has("outputFormat") && cfg.Defaults.OutputFormat != "" {
		out["outputFormat"] = cfg.Defaults.OutputFormat
	}
	if !out.Has("complexity") && cfg.Defaults.Complexity != "" {
		out["complexity"] = cfg.Defaults.Complexity
	}
	return out
}

// printPrompt renders the prompt plus its efficiency analysis.
func printPrompt(prompt string, analysis optimize.Analysis) {
	fmt.Println(prompt)
	fmt.Println()
	fmt.Printf("%s %s  %s %s\n",
		dim("Estimated tokens:"), info(fmt.Sprintf("%d", analysis.EstimatedTokens)),
		dim("Efficiency:"), efficiencyLabel(analysis.Efficiency))
	for _, rec := range analysis.Recommendations {
		fmt.Printf("  %s %s\n", warningIcon, rec)
	}
}

// printVariations renders the four variations, re-analyzing each one for
// its efficiency bucket.
func printVariations(vars []variations.Variation) {
	fmt.Println()
	fmt.Println("Variations:")
	for _, v := range vars {
		analysis := optimize.Analyze(v.Prompt)
		fmt.Println()
		fmt.Printf("%s %s %s\n", successIcon, v.Name,
			dim(fmt.Sprintf("(%s, ~%d tokens, %s)", v.Category, analysis.EstimatedTokens, analysis.Efficiency)))
		fmt.Printf("  %s\n", dim(v.Description))
		fmt.Printf("  %s\n", v.Prompt)
	}
}

// efficiencyLabel colors the efficiency bucket.
func efficiencyLabel(e optimize.Efficiency) string {
	switch e {
	case optimize.EfficiencyExcellent:
		return success(string(e))
	case optimize.EfficiencyGood:
		return info(string(e))
	case optimize.EfficiencyFair:
		return warning(string(e))
	default:
		return danger(string(e))
	}
}

func taskTypeNames() string {
	names := make([]string, len(schema.AllTaskTypes))
	for i, t := range schema.AllTaskTypes {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

// promptString prompts for a string input.
func promptString(prompt string) string {
	fmt.Printf("%s ", prompt)
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

// promptYesNo prompts for a yes/no input.
func promptYesNo(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	input = strings.ToLower(strings.TrimSpace(input))
	return input == "y" || input == "yes"
}
