// Package network generates the node and edge sets behind the animated
// background.
package network

import (
	"fmt"
	"math"
)

// Rand is the random source used for generation and activation rolls.
// *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Node is a point of the network. Everything except Connections is fixed
// once the node is generated.
type Node struct {
	X, Y        float64 // surface pixels
	Connections []int   // peer node indices
	PulseOffset float64 // phase offset in radians
	Size        float64 // base radius
	IsHub       bool
}

// Edge links two distinct nodes. Only Progress and Active change after
// generation.
type Edge struct {
	From, To int
	Progress float64 // pulse position in [0, 1)
	Speed    float64
	Active   bool
}

// Graph is one generation of the network for a given surface size.
type Graph struct {
	ID       string
	Width    float64
	Height   float64
	GridSize float64
	Nodes    []Node
	Edges    []Edge
}

// Stats summarises a graph.
type Stats struct {
	Nodes  int
	Hubs   int
	Edges  int
	Active int
}

// Empty reports whether there is nothing to draw.
func (g *Graph) Empty() bool {
	return g == nil || len(g.Nodes) == 0
}

// HubLink reports whether either endpoint of e is a hub.
func (g *Graph) HubLink(e Edge) bool {
	return g.Nodes[e.From].IsHub || g.Nodes[e.To].IsHub
}

// Length returns the euclidean length of e.
func (g *Graph) Length(e Edge) float64 {
	a, b := g.Nodes[e.From], g.Nodes[e.To]
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Stats counts nodes, hubs, edges and currently active edges.
func (g *Graph) Stats() Stats {
	if g == nil {
		return Stats{}
	}
	s := Stats{Nodes: len(g.Nodes), Edges: len(g.Edges)}
	for _, n := range g.Nodes {
		if n.IsHub {
			s.Hubs++
		}
	}
	for _, e := range g.Edges {
		if e.Active {
			s.Active++
		}
	}
	return s
}

// Validate checks that every edge joins two distinct in-range nodes, that no
// unordered pair repeats and that progress stays in [0, 1).
func (g *Graph) Validate() error {
	if g == nil {
		return nil
	}

	seen := make(map[[2]int]bool, len(g.Edges))
	for i, e := range g.Edges {
		if e.From < 0 || e.From >= len(g.Nodes) || e.To < 0 || e.To >= len(g.Nodes) {
			return fmt.Errorf("edge %d: endpoint out of range (%d, %d) for %d nodes", i, e.From, e.To, len(g.Nodes))
		}
		if e.From == e.To {
			return fmt.Errorf("edge %d: self-loop on node %d", i, e.From)
		}
		key := [2]int{min(e.From, e.To), max(e.From, e.To)}
		if seen[key] {
			return fmt.Errorf("edge %d: duplicate pair (%d, %d)", i, key[0], key[1])
		}
		seen[key] = true
		if e.Progress < 0 || e.Progress >= 1 {
			return fmt.Errorf("edge %d: progress %v outside [0, 1)", i, e.Progress)
		}
	}
	return nil
}
