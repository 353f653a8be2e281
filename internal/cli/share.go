package cli

import (
	"fmt"
	"sort"

	"github.com/Omodaka9375/code-prompt/internal/builder"
	"github.com/Omodaka9375/code-prompt/internal/config"
	"github.com/Omodaka9375/code-prompt/internal/share"
	"github.com/spf13/cobra"
)

// NewShareCmd creates the share command group.
func NewShareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "share",
		Short: "Encode or decode shareable prompt inputs",
		Long: `Share turns a task type plus option set into a single URL-safe payload
and back again. Decoding a payload reproduces exactly the prompt the
sender generated.`,
	}

	cmd.AddCommand(newShareEncodeCmd())
	cmd.AddCommand(newShareDecodeCmd())

	return cmd
}

func newShareEncodeCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode task options into a shareable payload",
		Example: `  code-prompt share encode --task init --set framework=express
  code-prompt share encode --preset react-app`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			task, answers, _, err := collectInputs(opts, cfg)
			if err != nil {
				return err
			}
			payload, err := share.Encode(share.Payload{TaskType: task, Options: answers})
			if err != nil {
				return err
			}
			fmt.Println(payload)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.task, "task", "t", "", "Task type: init, feature, architecture, testing, docs, fix")
	cmd.Flags().StringArrayVar(&opts.sets, "set", nil, "Set an option as key=value (repeatable)")
	cmd.Flags().StringVarP(&opts.presetName, "preset", "p", "", "Start from a named preset")

	return cmd
}

func newShareDecodeCmd() *cobra.Command {
	var rebuild bool

	cmd := &cobra.Command{
		Use:     "decode <payload>",
		Short:   "Decode a shared payload back into task options",
		Example: `  code-prompt share decode eyJ0YXNrVHlwZSI6ImluaXQiLCJvcHRpb25zIjp7fX0`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := share.Decode(args[0])
			if err != nil {
				return err
			}

			printInfo("Task", string(payload.TaskType))
			keys := make([]string, 0, len(payload.Options))
			for k := range payload.Options {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				printInfo(k, payload.Options[k])
			}

			if rebuild {
				fmt.Println()
				fmt.Println(builder.Build(payload.TaskType, payload.Options))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&rebuild, "build", false, "Also rebuild and print the prompt")

	return cmd
}
