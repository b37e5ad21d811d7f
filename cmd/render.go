package cmd

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/olivierh59500/netpulse-go/internal/config"
	"github.com/olivierh59500/netpulse-go/internal/host/headless"
	"github.com/olivierh59500/netpulse-go/internal/logger"
	"github.com/olivierh59500/netpulse-go/internal/ui"
)

func renderCmd() *cobra.Command {
	var (
		ef engineFlags
		rc config.RenderConfig
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render frames to PNG files or an animated GIF",
		RunE: func(cmd *cobra.Command, args []string) error {
			applyRenderFlags(cmd, &rc, &cfg.Render)
			if err := ef.apply(cmd, cfg); err != nil {
				return err
			}

			ui.Banner("render")
			out, n, err := renderOutput(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			fmt.Printf("  %s wrote %d frame(s) to %s\n", ui.StatusIcon(true), n, out)
			return nil
		},
	}

	ef.bind(cmd)
	fl := cmd.Flags()
	fl.IntVar(&rc.Width, "width", 0, "Canvas width")
	fl.IntVar(&rc.Height, "height", 0, "Canvas height")
	fl.IntVar(&rc.Frames, "frames", 0, "Number of frames to record")
	fl.IntVar(&rc.FPS, "fps", 0, "Frames per second")
	fl.StringVar(&rc.OutDir, "out", "", "Directory for PNG frames")
	fl.StringVar(&rc.GIF, "gif", "", "Write an animated GIF to this path instead of PNGs")
	fl.IntVar(&rc.Concurrency, "concurrency", 0, "Parallel encoders")

	return cmd
}

func applyRenderFlags(cmd *cobra.Command, from, to *config.RenderConfig) {
	fl := cmd.Flags()
	if fl.Changed("width") {
		to.Width = from.Width
	}
	if fl.Changed("height") {
		to.Height = from.Height
	}
	if fl.Changed("frames") {
		to.Frames = from.Frames
	}
	if fl.Changed("fps") {
		to.FPS = from.FPS
	}
	if fl.Changed("out") {
		to.OutDir = from.OutDir
	}
	if fl.Changed("gif") {
		to.GIF = from.GIF
	}
	if fl.Changed("concurrency") {
		to.Concurrency = from.Concurrency
	}
}

// renderOutput records cfg.Render.Frames frames and writes them out. It
// returns the destination and the number of frames written.
func renderOutput(ctx context.Context, cfg *config.Config) (string, int, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	r := cfg.Render
	if r.Width <= 0 || r.Height <= 0 {
		return "", 0, fmt.Errorf("nothing to render on a %dx%d canvas", r.Width, r.Height)
	}

	rec := headless.NewRecorder(r.Width, r.Height, r.FPS, cfg.BackgroundColor(), cfg.EngineOptions())
	frames, err := rec.Record(ctx, r.Frames)
	if err != nil {
		return "", 0, err
	}
	if r.GIF != "" {
		if err := writeGIFFile(ctx, r.GIF, frames, cfg); err != nil {
			return "", 0, err
		}
		return r.GIF, len(frames), nil
	}

	paths, err := headless.WritePNGs(ctx, r.OutDir, frames, r.Concurrency)
	if err != nil {
		return "", 0, err
	}
	logger.Debug("frames written", "dir", r.OutDir, "count", len(paths))
	return r.OutDir, len(paths), nil
}

func writeGIFFile(ctx context.Context, path string, frames []*image.RGBA, cfg *config.Config) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	err = headless.WriteGIF(ctx, f, frames, headless.GIFOptions{
		FPS:         cfg.Render.FPS,
		Color:       cfg.Engine.NodeColor,
		Background:  cfg.BackgroundColor(),
		Concurrency: cfg.Render.Concurrency,
	})
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
