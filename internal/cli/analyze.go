package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Omodaka9375/code-prompt/internal/optimize"
	"github.com/spf13/cobra"
)

type analyzeOptions struct {
	text string
}

// NewAnalyzeCmd creates the analyze command.
func NewAnalyzeCmd() *cobra.Command {
	opts := &analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Estimate token cost and efficiency of a prompt",
		Long: `Run the efficiency analyzer over arbitrary prompt text.

Reads from a file argument, from --text, or from stdin when the argument
is "-" or absent.`,
		Example: `  code-prompt analyze prompt.txt
  code-prompt analyze --text "Create node project with express"
  echo "some prompt" | code-prompt analyze -`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.text, "text", "", "Prompt text to analyze")

	return cmd
}

func runAnalyze(opts *analyzeOptions, args []string) error {
	text, err := analyzeInput(opts, args)
	if err != nil {
		return err
	}

	analysis := optimize.Analyze(text)
	fmt.Printf("%s %s\n", dim("Estimated tokens:"), info(fmt.Sprintf("%d", analysis.EstimatedTokens)))
	fmt.Printf("%s %s\n", dim("Efficiency:"), efficiencyLabel(analysis.Efficiency))
	if len(analysis.Recommendations) == 0 {
		printSuccess("No recommendations; prompt looks efficient")
		return nil
	}
	for _, rec := range analysis.Recommendations {
		fmt.Printf("  %s %s\n", warningIcon, rec)
	}
	return nil
}

func analyzeInput(opts *analyzeOptions, args []string) (string, error) {
	if opts.text != "" {
		return opts.text, nil
	}

	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		return strings.TrimRight(string(data), "\n"), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}
