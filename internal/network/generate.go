package network

import (
	"math"

	"github.com/google/uuid"
)

// Generate builds a new network for a width x height surface.
//
// Candidate positions are the intersections of gridSize cells, sampled every
// SampleStride rows and columns. Each candidate becomes a node with
// probability NodeChance and a hub with probability HubChance. Edges come
// from a single pass over pairs (i, j > i); the origin node may create at
// most HubMaxLinks or NodeMaxLinks of them in that pass.
//
// A surface with no area, or a non-positive grid size, yields an empty graph.
func Generate(width, height, gridSize float64, rnd Rand, t Tuning) *Graph {
	g := &Graph{
		ID:       uuid.NewString(),
		Width:    width,
		Height:   height,
		GridSize: gridSize,
		Nodes:    []Node{},
		Edges:    []Edge{},
	}
	if width <= 0 || height <= 0 || gridSize <= 0 || math.IsNaN(width+height+gridSize) {
		return g
	}

	g.Nodes = placeNodes(width, height, gridSize, rnd, t)
	g.Edges = connectNodes(g.Nodes, gridSize, rnd, t)
	return g
}

func placeNodes(width, height, gridSize float64, rnd Rand, t Tuning) []Node {
	cols := int(math.Floor(width / gridSize))
	rows := int(math.Floor(height / gridSize))
	stride := max(t.SampleStride, 1)

	var jitter noise2D
	if t.Jitter > 0 {
		jitter = newNoise(t.Noise, int64(rnd.Float64()*(1<<53)))
	}

	nodes := []Node{}
	for col := 0; col < cols; col += stride {
		for row := 0; row < rows; row += stride {
			if rnd.Float64() >= t.NodeChance {
				continue
			}

			x := float64(col) * gridSize
			y := float64(row) * gridSize
			if jitter != nil {
				x, y = displace(jitter, col, row, x, y, gridSize*t.Jitter, width, height)
			}

			hub := rnd.Float64() < t.HubChance
			size := t.NodeSizeBase + rnd.Float64()*t.NodeSizeSpread
			if hub {
				size = t.HubSizeBase + rnd.Float64()*t.HubSizeSpread
			}

			nodes = append(nodes, Node{
				X:           x,
				Y:           y,
				Connections: []int{},
				PulseOffset: rnd.Float64() * 2 * math.Pi,
				Size:        size,
				IsHub:       hub,
			})
		}
	}
	return nodes
}

func connectNodes(nodes []Node, gridSize float64, rnd Rand, t Tuning) []Edge {
	edges := []Edge{}

	for i := range nodes {
		limit := t.NodeMaxLinks
		if nodes[i].IsHub {
			limit = t.HubMaxLinks
		}

		made := 0
		for j := i + 1; j < len(nodes) && made < limit; j++ {
			hubLink := nodes[i].IsHub || nodes[j].IsHub

			radius := gridSize * t.NodeRadius
			if hubLink {
				radius = gridSize * t.HubRadius
			}

			dist := math.Hypot(nodes[j].X-nodes[i].X, nodes[j].Y-nodes[i].Y)
			if dist >= radius || rnd.Float64() >= t.LinkChance {
				continue
			}

			edges = append(edges, Edge{
				From:     i,
				To:       j,
				Progress: rnd.Float64(),
				Speed:    t.SpeedMin + rnd.Float64()*t.SpeedSpread,
				Active:   rnd.Float64() < t.ActivationChance(hubLink),
			})
			nodes[i].Connections = append(nodes[i].Connections, j)
			nodes[j].Connections = append(nodes[j].Connections, i)
			made++
		}
	}
	return edges
}
