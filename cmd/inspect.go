package cmd

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/olivierh59500/netpulse-go/internal/network"
	"github.com/olivierh59500/netpulse-go/internal/ui"
)

func inspectCmd() *cobra.Command {
	var (
		ef            engineFlags
		width, height int
	)

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Generate a network and print its statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ef.apply(cmd, cfg); err != nil {
				return err
			}

			seed := cfg.Engine.Seed
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			g := network.Generate(float64(width), float64(height), cfg.Engine.GridSize, rand.New(rand.NewSource(seed)), cfg.Tuning)

			ui.Banner("network inspect")
			fmt.Printf("  %s %s\n\n", ui.Brand.Sprint(g.ID), ui.Subtle.Sprintf("(%dx%d, grid %g, seed %d)", width, height, g.GridSize, seed))
			ui.Table([]string{"Metric", "Value"}, statsRows(g))

			err := g.Validate()
			fmt.Printf("\n  Valid:  %s\n", ui.StatusIcon(err == nil))
			return err
		},
	}

	ef.bind(cmd)
	cmd.Flags().IntVar(&width, "width", 1920, "Surface width")
	cmd.Flags().IntVar(&height, "height", 1080, "Surface height")
	return cmd
}

func statsRows(g *network.Graph) [][]string {
	st := g.Stats()

	avg := 0.0
	if st.Nodes > 0 {
		avg = 2 * float64(st.Edges) / float64(st.Nodes)
	}

	return [][]string{
		{"nodes", strconv.Itoa(st.Nodes)},
		{"hubs", strconv.Itoa(st.Hubs)},
		{"edges", strconv.Itoa(st.Edges)},
		{"active edges", strconv.Itoa(st.Active)},
		{"avg degree", strconv.FormatFloat(avg, 'f', 2, 64)},
	}
}
