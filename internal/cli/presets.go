package cli

import (
	"fmt"

	"github.com/Omodaka9375/code-prompt/internal/builder"
	"github.com/Omodaka9375/code-prompt/internal/config"
	"github.com/Omodaka9375/code-prompt/internal/preset"
	"github.com/spf13/cobra"
)

// NewPresetsCmd creates the presets command group.
func NewPresetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List, inspect, and install built-in option presets",
	}

	cmd.AddCommand(newPresetsListCmd())
	cmd.AddCommand(newPresetsShowCmd())
	cmd.AddCommand(newPresetsInstallCmd())

	return cmd
}

func newPresetsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := config.NewPaths()
			for _, name := range preset.Names() {
				p, err := preset.Get(name, paths.PresetsDir)
				if err != nil {
					printWarning("%s: %v", name, err)
					continue
				}
				fmt.Printf("%s %s %s\n", successIcon, info(name), dim("("+string(p.Task)+")"))
				fmt.Printf("    %s\n", p.Description)
			}
			return nil
		},
	}
}

func newPresetsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show a preset's options and the prompt it generates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := config.NewPaths()
			p, err := preset.Get(args[0], paths.PresetsDir)
			if err != nil {
				return err
			}

			printInfo("Preset", p.Name)
			printInfo("Task", string(p.Task))
			printInfo("Description", p.Description)
			fmt.Println()
			fmt.Println(builder.Build(p.Task, p.Options))
			return nil
		},
	}
}

func newPresetsInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Copy the built-in presets into your config directory for editing",
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := config.NewPaths()
			count, err := preset.Bootstrap(paths.PresetsDir)
			if err != nil {
				return err
			}
			if count == 0 {
				fmt.Println("Presets already installed")
				return nil
			}
			printSuccess("Installed %d presets to %s", count, paths.PresetsDir)
			return nil
		},
	}
}
