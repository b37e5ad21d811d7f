// Package headless drives a simulation without a window and captures the
// frames it paints.
package headless

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/olivierh59500/netpulse-go/internal/engine"
	"github.com/olivierh59500/netpulse-go/internal/logger"
	"github.com/olivierh59500/netpulse-go/internal/render"
)

// Recorder pumps frames through a FrameQueue at a fixed rate and snapshots
// the canvas after each one.
type Recorder struct {
	Sim    *engine.Simulation
	Canvas *render.Canvas
	Queue  *engine.FrameQueue
	FPS    int

	now float64
}

// NewRecorder mounts a simulation on a width x height canvas.
func NewRecorder(width, height, fps int, background color.NRGBA, opts engine.Options) *Recorder {
	if fps <= 0 {
		fps = 60
	}
	r := &Recorder{FPS: fps}
	r.Canvas = render.NewCanvas(width, height)
	r.Canvas.Background = background
	r.Queue = engine.NewFrameQueue(func() float64 { return r.now })
	r.Sim = engine.NewSimulation(r.Canvas, r.Queue, opts)
	r.Sim.OnMount(width, height)
	return r
}

// Record runs up to frames frames and returns a copy of each painted frame.
// With animation disabled there is only the static frame to return.
func (r *Recorder) Record(ctx context.Context, frames int) ([]*image.RGBA, error) {
	defer r.Sim.OnUnmount()

	if !r.Sim.Animate() {
		return []*image.RGBA{snapshot(r.Canvas.Image())}, nil
	}

	step := 1000 / float64(r.FPS)
	out := make([]*image.RGBA, 0, frames)
	for i := 0; i < frames; i++ {
		if err := ctx.Err(); err != nil {
			return out, fmt.Errorf("recording stopped after %d frames: %w", i, err)
		}
		r.now += step
		if r.Queue.Fire(r.now) == 0 {
			break
		}
		out = append(out, snapshot(r.Canvas.Image()))
	}

	logger.Debug("recorded frames", "frames", len(out), "fps", r.FPS)
	return out, nil
}

func snapshot(img *image.RGBA) *image.RGBA {
	cp := image.NewRGBA(img.Bounds())
	copy(cp.Pix, img.Pix)
	return cp
}
