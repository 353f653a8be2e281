package cli

import (
	"github.com/Omodaka9375/code-prompt/internal/config"
	"github.com/spf13/cobra"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or initialize the user configuration",
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the built-in defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")

	return cmd
}

func runConfigInit(force bool) error {
	paths := config.NewPaths()
	if config.Exists() && !force {
		printWarning("Config already exists at %s (use --force to overwrite)", paths.ConfigFile)
		return nil
	}

	if err := config.Save(&config.Config{}); err != nil {
		return err
	}
	printSuccess("Wrote %s", paths.ConfigFile)
	return nil
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			paths := config.NewPaths()
			source := paths.ConfigFile
			if !config.Exists() {
				source = "built-in defaults"
			}
			exportDir := cfg.Export.Dir
			if exportDir == "" {
				exportDir = paths.PromptsDir
			}

			printInfo("Source", source)
			printInfo("Output format", cfg.Defaults.OutputFormat)
			printInfo("Complexity", cfg.Defaults.Complexity)
			printInfo("Export format", cfg.Export.Format)
			printInfo("Export dir", exportDir)
			return nil
		},
	}
}
