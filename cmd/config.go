package cmd

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/olivierh59500/netpulse-go/internal/config"
	"github.com/olivierh59500/netpulse-go/internal/ui"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the netpulse config file",
	}

	cmd.AddCommand(configInitCmd(), configShowCmd(), configPathCmd())
	return cmd
}

func configInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:              "init",
		Short:            "Write the default config file",
		PersistentPreRun: skipConfigLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configTarget()
			if _, err := os.Stat(path); err == nil && !force {
				ui.Warn.Printf("  %s already exists (use --force to overwrite)\n", path)
				return nil
			}

			if err := config.Save(path, config.Default()); err != nil {
				return fmt.Errorf("write config: %w", err)
			}
			fmt.Printf("  %s wrote %s\n", ui.StatusIcon(true), path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}

func configShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return toml.NewEncoder(cmd.OutOrStdout()).Encode(cfg)
		},
	}
}

func configPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:              "path",
		Short:            "Print the config file path",
		PersistentPreRun: skipConfigLoad,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), configTarget())
		},
	}
}

// skipConfigLoad replaces the root pre-run for commands whose target file
// may not exist yet.
func skipConfigLoad(cmd *cobra.Command, args []string) {}

func configTarget() string {
	if cfgPath != "" {
		return cfgPath
	}
	return config.DefaultPath()
}
