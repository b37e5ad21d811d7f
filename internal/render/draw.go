package render

import (
	"image/color"
	"math"

	"github.com/olivierh59500/netpulse-go/internal/colorutil"
	"github.com/olivierh59500/netpulse-go/internal/network"
)

// Opacities used when painting a frame.
const (
	TrailOpacity = 0.05 // edge gradient outside the pulse
	PulseOpacity = 0.3  // edge gradient at the pulse
	HaloOpacity  = 0.03 // hub outer glow
	HaloScale    = 6.0

	HubGlowOpacity  = 0.15
	NodeGlowOpacity = 0.1
	GlowScale       = 2.0

	HubCoreOpacity  = 0.8
	NodeCoreOpacity = 0.5

	EdgeWidth = 1.0
)

// Style carries the external configuration a frame is painted with.
type Style struct {
	Color     string  // hex, rgb() or rgba()
	Intensity float64 // 0..1
	Tuning    network.Tuning
}

// palette holds the parsed colors for one frame. A color that fails to parse
// is left invisible.
type palette struct {
	trail, pulse      color.NRGBA
	halo              color.NRGBA
	hubGlow, nodeGlow color.NRGBA
	hubCore, nodeCore color.NRGBA
}

func newPalette(base string) palette {
	at := func(opacity float64) color.NRGBA {
		c, _ := colorutil.Parse(colorutil.WithOpacity(base, opacity))
		return c
	}
	return palette{
		trail:    at(TrailOpacity),
		pulse:    at(PulseOpacity),
		halo:     at(HaloOpacity),
		hubGlow:  at(HubGlowOpacity),
		nodeGlow: at(NodeGlowOpacity),
		hubCore:  at(HubCoreOpacity),
		nodeCore: at(NodeCoreOpacity),
	}
}

// Draw paints one frame of g at time now (milliseconds). It reads the graph
// and never modifies it. Active edges are painted first, then every node
// from its outermost glow inwards to the core.
func Draw(s Surface, g *network.Graph, now float64, st Style) {
	s.Clear()
	if g.Empty() {
		return
	}

	p := newPalette(st.Color)

	for _, e := range g.Edges {
		if !e.Active {
			continue
		}
		from, to := g.Nodes[e.From], g.Nodes[e.To]
		s.StrokeGradient(from.X, from.Y, to.X, to.Y, EdgeWidth, EdgeGradient(p.trail, p.pulse, e.Progress, st.Tuning.PulseWidth))
	}

	for _, n := range g.Nodes {
		r := network.PulsedRadius(n, now, st.Intensity, st.Tuning)
		if r <= 0 || math.IsNaN(r) {
			continue
		}
		if n.IsHub {
			s.FillCircle(n.X, n.Y, r*HaloScale, p.halo)
			s.FillCircle(n.X, n.Y, r*GlowScale, p.hubGlow)
			s.FillCircle(n.X, n.Y, r, p.hubCore)
			continue
		}
		s.FillCircle(n.X, n.Y, r*GlowScale, p.nodeGlow)
		s.FillCircle(n.X, n.Y, r, p.nodeCore)
	}
}

// EdgeGradient is the faint-bright-faint profile of a pulse at progress.
func EdgeGradient(trail, pulse color.NRGBA, progress, width float64) Gradient {
	return Gradient{
		{Offset: 0, Color: trail},
		{Offset: progress, Color: pulse},
		{Offset: math.Min(progress+width, 1), Color: trail},
		{Offset: 1, Color: trail},
	}
}
