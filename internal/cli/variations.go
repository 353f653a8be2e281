package cli

import (
	"github.com/Omodaka9375/code-prompt/internal/builder"
	"github.com/Omodaka9375/code-prompt/internal/config"
	"github.com/Omodaka9375/code-prompt/internal/variations"
	"github.com/spf13/cobra"
)

// NewVariationsCmd creates the variations command.
func NewVariationsCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "variations",
		Short: "Generate the four alternative phrasings of a prompt",
		Long: `Build a prompt from task options and print its four fixed variations:
Ultra Minimal, Production Ready, Learning Focused, and Constraint Heavy.
Each variation is re-analyzed for token cost.`,
		Example: `  code-prompt variations --task init --set framework=react
  code-prompt variations --preset express-api`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVariations(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.task, "task", "t", "", "Task type: init, feature, architecture, testing, docs, fix")
	cmd.Flags().StringArrayVar(&opts.sets, "set", nil, "Set an option as key=value (repeatable)")
	cmd.Flags().StringVarP(&opts.presetName, "preset", "p", "", "Start from a named preset")

	return cmd
}

func runVariations(opts *generateOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	task, answers, _, err := collectInputs(opts, cfg)
	if err != nil {
		return err
	}

	basePrompt := builder.Build(task, answers)
	printVariations(variations.Generate(task, basePrompt, answers))
	return nil
}
