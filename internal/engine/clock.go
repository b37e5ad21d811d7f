package engine

import "github.com/olivierh59500/netpulse-go/internal/network"

// advance moves every active pulse forward by one tick. A pulse that reaches
// the end of its edge restarts at 0 and the edge re-rolls its activation.
// Inactive edges keep their progress and only wake up when RekindleChance
// is set.
func advance(g *network.Graph, intensity float64, rnd network.Rand, t network.Tuning) {
	step := t.AdvanceFactor * intensity
	for i := range g.Edges {
		e := &g.Edges[i]
		if !e.Active {
			if t.RekindleChance > 0 && rnd.Float64() < t.RekindleChance {
				e.Active = true
			}
			continue
		}
		e.Progress += e.Speed * step
		if e.Progress >= 1 {
			e.Progress = 0
			e.Active = rnd.Float64() < t.ActivationChance(g.HubLink(*e))
		}
	}
}
