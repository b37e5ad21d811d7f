package cmd

import (
	"github.com/spf13/cobra"

	"github.com/olivierh59500/netpulse-go/internal/config"
)

// engineFlags are the background settings every command can override.
type engineFlags struct {
	grid      float64
	color     string
	intensity float64
	noAnimate bool
	seed      int64
}

func (f *engineFlags) bind(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.Float64Var(&f.grid, "grid", 0, "Grid cell size in pixels")
	fl.StringVar(&f.color, "color", "", "Node color (#rrggbb or rgb(r, g, b))")
	fl.Float64Var(&f.intensity, "intensity", 0, "Animation intensity between 0 and 1")
	fl.BoolVar(&f.noAnimate, "no-animate", false, "Draw a single static frame")
	fl.Int64Var(&f.seed, "seed", 0, "Random seed (0 picks a new network)")
}

// apply copies the flags the user actually set onto cfg and revalidates it.
func (f *engineFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	fl := cmd.Flags()
	if fl.Changed("grid") {
		cfg.Engine.GridSize = f.grid
	}
	if fl.Changed("color") {
		cfg.Engine.NodeColor = f.color
	}
	if fl.Changed("intensity") {
		cfg.Engine.Intensity = f.intensity
	}
	if fl.Changed("no-animate") {
		cfg.Engine.Animate = !f.noAnimate
	}
	if fl.Changed("seed") {
		cfg.Engine.Seed = f.seed
	}
	return cfg.Validate()
}
