// Package cli implements the code-prompt command-line interface.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/Omodaka9375/code-prompt/internal/config"
	perrors "github.com/Omodaka9375/code-prompt/internal/errors"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time.
	Version = "dev"

	// Output helpers.
	successIcon = color.New(color.FgGreen).Sprint("✓")
	warningIcon = color.New(color.FgYellow).Sprint("⚠")
	errorIcon   = color.New(color.FgRed).Sprint("✗")

	success = color.New(color.FgGreen).SprintFunc()
	warning = color.New(color.FgYellow).SprintFunc()
	info    = color.New(color.FgCyan).SprintFunc()
	danger  = color.New(color.FgRed).SprintFunc()
	dim     = color.New(color.Faint).SprintFunc()
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "code-prompt",
		Short: "Generate efficient prompts for AI coding assistants",
		Long: `Code-prompt turns a handful of answers (task type, framework, output
format, complexity) into a short, constraint-annotated prompt for an AI
coding assistant, reports its estimated token cost, and can produce four
alternative phrasings of the same request.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(NewGenerateCmd())
	rootCmd.AddCommand(NewVariationsCmd())
	rootCmd.AddCommand(NewAnalyzeCmd())
	rootCmd.AddCommand(NewShareCmd())
	rootCmd.AddCommand(NewPresetsCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("code-prompt %s\n", Version)
		},
	}
}

// Execute runs the CLI.
func Execute() error {
	if cfg, err := config.Load(); err == nil && !cfg.ColorEnabled() {
		color.NoColor = true
	}

	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Print error with hint if available
		fmt.Fprintf(os.Stderr, "%s %s\n", errorIcon, err.Error())
		var pe *perrors.PromptError
		if errors.As(err, &pe) && pe.Hint != "" {
			fmt.Fprintf(os.Stderr, "  %s\n", dim(pe.Hint))
		}
		return err
	}
	return nil
}

// printSuccess prints a success message.
func printSuccess(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", successIcon, fmt.Sprintf(format, args...))
}

// printWarning prints a warning message.
func printWarning(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", warningIcon, fmt.Sprintf(format, args...))
}

// printError prints an error message.
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s %s\n", errorIcon, fmt.Sprintf(format, args...))
}

// printInfo prints an info line.
func printInfo(label, value string) {
	fmt.Printf("  %s: %s\n", dim(label), value)
}
