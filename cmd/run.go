package cmd

import (
	"github.com/spf13/cobra"

	"github.com/olivierh59500/netpulse-go/internal/host/window"
	"github.com/olivierh59500/netpulse-go/internal/logger"
)

func runCmd() *cobra.Command {
	var (
		ef            engineFlags
		width, height int
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the network in a resizable window",
		Long: "Open the network in a resizable window.\n\n" +
			"Keys: space toggles animation, r regenerates, q or esc quits.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("width") {
				cfg.Window.Width = width
			}
			if cmd.Flags().Changed("height") {
				cfg.Window.Height = height
			}
			if err := ef.apply(cmd, cfg); err != nil {
				return err
			}

			logger.Info("opening window", "width", cfg.Window.Width, "height", cfg.Window.Height, "animate", cfg.Engine.Animate)
			return window.Run(window.Config{
				Width:      cfg.Window.Width,
				Height:     cfg.Window.Height,
				Title:      cfg.Window.Title,
				TPS:        cfg.Window.TPS,
				Background: cfg.BackgroundColor(),
			}, cfg.EngineOptions())
		},
	}

	ef.bind(cmd)
	cmd.Flags().IntVar(&width, "width", 0, "Window width")
	cmd.Flags().IntVar(&height, "height", 0, "Window height")
	return cmd
}
