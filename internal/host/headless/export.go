package headless

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/olivierh59500/netpulse-go/internal/colorutil"
)

// WritePNGs encodes frames as dir/frame_00000.png, ... using up to
// concurrency encoders, and returns the written paths in frame order.
func WritePNGs(ctx context.Context, dir string, frames []*image.RGBA, concurrency int) ([]string, error) {
	if concurrency < 1 {
		concurrency = 4
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	paths := make([]string, len(frames))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, frame := range frames {
		path := filepath.Join(dir, fmt.Sprintf("frame_%05d.png", i))
		paths[i] = path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return writePNG(path, frame)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// GIFOptions controls animated GIF export.
type GIFOptions struct {
	FPS         int
	Color       string      // base node color, used to build the palette
	Background  color.NRGBA // transparent backgrounds export as black
	Concurrency int
}

// WriteGIF encodes frames as a looping animated GIF. Frames only hold blends
// of the node color over the background, so the palette is a 256-step ramp
// between the two.
func WriteGIF(ctx context.Context, w io.Writer, frames []*image.RGBA, opts GIFOptions) error {
	if len(frames) == 0 {
		return fmt.Errorf("no frames to encode")
	}
	if opts.Concurrency < 1 {
		opts.Concurrency = 4
	}

	pal := ramp(opts.Background, opts.Color)
	delay := gifDelay(opts.FPS)

	anim := &gif.GIF{
		Image: make([]*image.Paletted, len(frames)),
		Delay: make([]int, len(frames)),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)
	for i, frame := range frames {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p := image.NewPaletted(frame.Bounds(), pal)
			draw.Draw(p, p.Rect, frame, frame.Bounds().Min, draw.Src)
			anim.Image[i] = p
			anim.Delay[i] = delay
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("encode gif: %w", err)
	}
	return nil
}

func ramp(bg color.NRGBA, base string) color.Palette {
	from := bg
	from.A = 0xff
	if bg.A == 0 {
		from = color.NRGBA{A: 0xff}
	}
	to, ok := colorutil.Parse(base)
	if !ok {
		to = color.NRGBA{0xff, 0xff, 0xff, 0xff}
	}
	to.A = 0xff

	pal := make(color.Palette, 256)
	for i := range pal {
		pal[i] = colorutil.Lerp(from, to, float64(i)/255)
	}
	return pal
}

// gifDelay converts a frame rate into GIF delay units (1/100 s). Browsers
// clamp delays under 2.
func gifDelay(fps int) int {
	if fps <= 0 {
		fps = 60
	}
	return max(2, int(math.Round(100/float64(fps))))
}
