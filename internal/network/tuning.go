package network

// Tuning holds the constants that shape a generated network and its motion.
// The defaults were picked by eye for visual density; none of them carries
// meaning beyond that.
type Tuning struct {
	SampleStride int     `toml:"sample_stride" validate:"gte=1"`     // sample every Nth grid row/column
	NodeChance   float64 `toml:"node_chance" validate:"gte=0,lte=1"` // candidate inclusion probability
	HubChance    float64 `toml:"hub_chance" validate:"gte=0,lte=1"`  // hub probability among included nodes

	HubSizeBase    float64 `toml:"hub_size_base" validate:"gt=0"`
	HubSizeSpread  float64 `toml:"hub_size_spread" validate:"gte=0"`
	NodeSizeBase   float64 `toml:"node_size_base" validate:"gt=0"`
	NodeSizeSpread float64 `toml:"node_size_spread" validate:"gte=0"`

	HubMaxLinks  int     `toml:"hub_max_links" validate:"gte=0"`  // edges a hub may originate per pass
	NodeMaxLinks int     `toml:"node_max_links" validate:"gte=0"` // edges a plain node may originate per pass
	HubRadius    float64 `toml:"hub_radius" validate:"gte=0"`     // connection radius in grid cells when either end is a hub
	NodeRadius   float64 `toml:"node_radius" validate:"gte=0"`
	LinkChance   float64 `toml:"link_chance" validate:"gte=0,lte=1"`

	SpeedMin    float64 `toml:"speed_min" validate:"gte=0"`
	SpeedSpread float64 `toml:"speed_spread" validate:"gte=0"`

	HubActiveChance  float64 `toml:"hub_active_chance" validate:"gte=0,lte=1"`
	NodeActiveChance float64 `toml:"node_active_chance" validate:"gte=0,lte=1"`
	RekindleChance   float64 `toml:"rekindle_chance" validate:"gte=0,lte=1"` // per-tick wake-up chance of an idle edge

	AdvanceFactor  float64 `toml:"advance_factor" validate:"gte=0"` // progress per tick = speed * factor * intensity
	HubPulseFreq   float64 `toml:"hub_pulse_freq" validate:"gte=0"` // radians per millisecond
	NodePulseFreq  float64 `toml:"node_pulse_freq" validate:"gte=0"`
	PulseAmplitude float64 `toml:"pulse_amplitude" validate:"gte=0"`
	PulseWidth     float64 `toml:"pulse_width" validate:"gt=0,lte=1"` // gradient length behind the bright stop

	Jitter float64 `toml:"jitter" validate:"gte=0,lte=1"` // noise displacement in grid cells; 0 keeps exact intersections
	Noise  string  `toml:"noise" validate:"oneof=perlin simplex"`
}

// DefaultTuning returns the stock network shape.
func DefaultTuning() Tuning {
	return Tuning{
		SampleStride: 3,
		NodeChance:   0.4,
		HubChance:    0.2,

		HubSizeBase:    3,
		HubSizeSpread:  2,
		NodeSizeBase:   1.5,
		NodeSizeSpread: 1.5,

		HubMaxLinks:  5,
		NodeMaxLinks: 2,
		HubRadius:    6,
		NodeRadius:   4,
		LinkChance:   0.6,

		SpeedMin:    0.2,
		SpeedSpread: 0.3,

		HubActiveChance:  0.4,
		NodeActiveChance: 0.2,
		RekindleChance:   0,

		AdvanceFactor:  0.008,
		HubPulseFreq:   0.003,
		NodePulseFreq:  0.002,
		PulseAmplitude: 0.3,
		PulseWidth:     0.1,

		Jitter: 0,
		Noise:  "perlin",
	}
}

// ActivationChance is the probability that an edge carries a pulse.
func (t Tuning) ActivationChance(hubLink bool) float64 {
	if hubLink {
		return t.HubActiveChance
	}
	return t.NodeActiveChance
}

// PulseFreq is the glow oscillation frequency for a node role.
func (t Tuning) PulseFreq(hub bool) float64 {
	if hub {
		return t.HubPulseFreq
	}
	return t.NodePulseFreq
}
