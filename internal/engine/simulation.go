// Package engine runs the network background: it owns the current graph,
// advances pulses once per host frame and repaints the surface.
package engine

import (
	"math"
	"math/rand"
	"time"

	"github.com/olivierh59500/netpulse-go/internal/logger"
	"github.com/olivierh59500/netpulse-go/internal/network"
	"github.com/olivierh59500/netpulse-go/internal/render"
)

// Defaults for Options fields left at their zero value.
const (
	DefaultGridSize = 30.0
	DefaultColor    = "#00f5d4"
)

// State is the clock state. There is no paused state: pausing is stopping.
type State int

const (
	Stopped State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// Options configures a Simulation.
type Options struct {
	GridSize  float64 // sampling grid spacing in pixels
	Color     string  // base node color: hex, rgb() or rgba()
	Intensity float64 // 0..1, scales pulse size and pulse speed
	Animate   bool    // run the clock; false draws a single static frame
	Seed      int64   // 0 seeds from the wall clock
	Tuning    network.Tuning
}

// Simulation binds the graph generator, the clock and the renderer to a
// surface and a host scheduler. It is not safe for concurrent use; hosts
// call it from their frame loop.
type Simulation struct {
	Width, Height int

	opts    Options
	sched   Scheduler
	surface render.Surface
	rng     network.Rand

	graph   *network.Graph
	mounted bool
	state   State
	frame   FrameID
	draws   uint64
}

// NewSimulation creates a stopped, unmounted simulation.
func NewSimulation(surface render.Surface, sched Scheduler, opts Options) *Simulation {
	if opts.GridSize <= 0 {
		opts.GridSize = DefaultGridSize
	}
	if opts.Color == "" {
		opts.Color = DefaultColor
	}
	if opts.Tuning == (network.Tuning{}) {
		opts.Tuning = network.DefaultTuning()
	}
	opts.Intensity = clampIntensity(opts.Intensity)

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Simulation{
		opts:    opts,
		sched:   sched,
		surface: surface,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// OnMount attaches the simulation to a w x h surface, generates the first
// network and starts the clock if animation is enabled.
func (s *Simulation) OnMount(w, h int) {
	s.mounted = true
	logger.Debug("mounted", "width", w, "height", h, "animate", s.opts.Animate)
	s.Resize(w, h)
}

// OnResize regenerates the network for the new surface size.
func (s *Simulation) OnResize(w, h int) {
	if !s.mounted {
		return
	}
	s.Resize(w, h)
}

// OnUnmount stops the clock and drops the network. Frames that still fire
// afterwards do nothing.
func (s *Simulation) OnUnmount() {
	s.Stop()
	s.mounted = false
	s.graph = nil
	logger.Debug("unmounted")
}

// Resize stops the clock, replaces the network wholesale for a w x h
// surface and then resumes: the clock restarts when animating, otherwise a
// single static frame is drawn.
func (s *Simulation) Resize(w, h int) {
	s.Stop()

	s.Width, s.Height = max(w, 0), max(h, 0)
	s.surface.Resize(s.Width, s.Height)
	s.graph = network.Generate(float64(s.Width), float64(s.Height), s.opts.GridSize, s.rng, s.opts.Tuning)

	st := s.graph.Stats()
	logger.Debug("network generated", "id", s.graph.ID, "width", s.Width, "height", s.Height,
		"nodes", st.Nodes, "hubs", st.Hubs, "edges", st.Edges, "active", st.Active)

	if s.mounted {
		s.resume()
	}
}

// Regenerate builds a fresh network at the current size.
func (s *Simulation) Regenerate() {
	if !s.mounted {
		return
	}
	s.Resize(s.Width, s.Height)
}

// SetAnimate applies the animation-enabled signal. Turning it off stops the
// clock and leaves one static frame on the surface.
func (s *Simulation) SetAnimate(on bool) {
	if s.opts.Animate == on {
		return
	}
	s.opts.Animate = on
	logger.Debug("animation toggled", "animate", on)
	if !s.mounted {
		return
	}
	if on {
		s.Start()
		return
	}
	s.Stop()
	s.drawStatic()
}

// SetIntensity changes the intensity, clamped to [0, 1].
func (s *Simulation) SetIntensity(v float64) {
	s.opts.Intensity = clampIntensity(v)
}

// Start schedules the first frame. It does nothing when unmounted, already
// running or when animation is disabled.
func (s *Simulation) Start() {
	if !s.mounted || !s.opts.Animate || s.state == Running {
		return
	}
	s.state = Running
	s.schedule()
}

// Stop cancels the pending frame.
func (s *Simulation) Stop() {
	if s.state != Running {
		return
	}
	s.sched.CancelFrame(s.frame)
	s.frame = 0
	s.state = Stopped
}

// State returns the clock state.
func (s *Simulation) State() State { return s.state }

// Animate reports the current animation-enabled signal.
func (s *Simulation) Animate() bool { return s.opts.Animate }

// Graph returns the current network, nil when unmounted.
func (s *Simulation) Graph() *network.Graph { return s.graph }

// Draws returns how many frames have been painted.
func (s *Simulation) Draws() uint64 { return s.draws }

func (s *Simulation) resume() {
	if s.opts.Animate {
		s.Start()
		return
	}
	s.drawStatic()
}

func (s *Simulation) schedule() {
	var id FrameID
	id = s.sched.RequestFrame(func(now float64) { s.tick(id, now) })
	s.frame = id
}

// tick advances and repaints, then schedules the next frame. Callbacks that
// are no longer the pending frame are ignored, which covers frames firing
// after Stop, OnUnmount or a resize.
func (s *Simulation) tick(id FrameID, now float64) {
	if !s.mounted || s.state != Running || id != s.frame {
		return
	}
	s.frame = 0

	if s.graph != nil {
		advance(s.graph, s.opts.Intensity, s.rng, s.opts.Tuning)
		s.paint(now)
	}

	s.schedule()
}

func (s *Simulation) drawStatic() {
	s.paint(s.sched.Now())
}

func (s *Simulation) paint(now float64) {
	render.Draw(s.surface, s.graph, now, render.Style{
		Color:     s.opts.Color,
		Intensity: s.opts.Intensity,
		Tuning:    s.opts.Tuning,
	})
	s.draws++
}

func clampIntensity(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}
