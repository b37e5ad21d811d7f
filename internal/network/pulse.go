package network

import "math"

// PulseFactor is the glow oscillation of n at time now (milliseconds), in
// [-1, 1]. Hubs oscillate faster.
func PulseFactor(n Node, now float64, t Tuning) float64 {
	return math.Sin(now*t.PulseFreq(n.IsHub) + n.PulseOffset)
}

// PulsedRadius scales a node's base size by its current pulse.
func PulsedRadius(n Node, now, intensity float64, t Tuning) float64 {
	return n.Size * (1 + PulseFactor(n, now, t)*t.PulseAmplitude*intensity)
}
