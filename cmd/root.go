package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/olivierh59500/netpulse-go/internal/config"
	"github.com/olivierh59500/netpulse-go/internal/logger"
	"github.com/olivierh59500/netpulse-go/internal/logger/console"
	"github.com/olivierh59500/netpulse-go/internal/ui"
)

var version = "0.3.0"

var (
	cfgPath   string
	debugMode bool
	cfg       *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "netpulse",
	Short: "netpulse — animated network backgrounds",
	Long: ui.Brand.Sprint(ui.Pulse+" netpulse") + " — a living network of nodes and pulses\n" +
		ui.Subtle.Sprint("Open it in a window, render it to PNG or GIF, or inspect a generated graph"),
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.LoadEnv()

		loaded, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		cfg = loaded

		logger.Init(console.NewConsoleLogger(console.ConsoleLoggerParams{
			Debug: debugMode || cfg.Log.Debug,
		}))
		logger.Debug("config loaded", "path", cfgPath, "grid", cfg.Engine.GridSize, "seed", cfg.Engine.Seed)
		return nil
	},
}

func init() {
	rootCmd.SetVersionTemplate("netpulse {{ .Version }}\n")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Config file (default $XDG_CONFIG_HOME/netpulse/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(
		runCmd(),
		renderCmd(),
		inspectCmd(),
		configCmd(),
	)
}

// Execute runs the root command. Interrupts cancel the command context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		ui.Bad.Fprintf(os.Stderr, "netpulse: %v\n", err)
	}
	return err
}
