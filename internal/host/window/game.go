// Package window hosts the network background in a desktop window.
package window

import (
	"errors"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/olivierh59500/netpulse-go/internal/engine"
	"github.com/olivierh59500/netpulse-go/internal/logger"
)

// Config describes the window.
type Config struct {
	Width, Height int
	Title         string
	TPS           int
	Background    color.NRGBA
}

// Game implements ebiten.Game. Layout reports surface size changes to the
// simulation, Update fires its pending frame and Draw shows the result.
type Game struct {
	sim     *engine.Simulation
	queue   *engine.FrameQueue
	surface *Surface

	start   time.Time
	w, h    int
	mounted bool
}

// NewGame wires a simulation to an offscreen ebiten surface.
func NewGame(cfg Config, opts engine.Options) *Game {
	g := &Game{
		surface: &Surface{Background: cfg.Background},
		start:   time.Now(),
	}
	g.queue = engine.NewFrameQueue(g.now)
	g.sim = engine.NewSimulation(g.surface, g.queue, opts)
	return g
}

func (g *Game) now() float64 {
	return float64(time.Since(g.start)) / float64(time.Millisecond)
}

// Update is called each tick by Ebitengine
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.sim.OnUnmount()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.sim.SetAnimate(!g.sim.Animate())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.Regenerate()
	}

	g.queue.Fire(g.now())
	return nil
}

// Draw is called each frame by Ebitengine
func (g *Game) Draw(screen *ebiten.Image) {
	if img := g.surface.Image(); img != nil {
		screen.DrawImage(img, nil)
	}
}

// Layout follows the window size so the network always fills it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if !g.mounted {
		g.mounted = true
		g.w, g.h = outsideWidth, outsideHeight
		g.sim.OnMount(outsideWidth, outsideHeight)
	} else if outsideWidth != g.w || outsideHeight != g.h {
		g.w, g.h = outsideWidth, outsideHeight
		logger.Debug("window resized", "width", outsideWidth, "height", outsideHeight)
		g.sim.OnResize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed.
func Run(cfg Config, opts engine.Options) error {
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}

	g := NewGame(cfg, opts)
	defer g.sim.OnUnmount()

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
