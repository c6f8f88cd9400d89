// Package tuning holds the named numeric tuning parameters of the derivation
// and deformation pipeline, organized as presets that can be selectively
// overridden. Components receive a Config explicitly; there are no ambient
// globals.
package tuning

// BandConfig sets the fractional boundaries partitioning frequency bins into
// the four bands. Bins below BassEdge are bass, below LowMidEdge low-mid,
// below HighMidEdge high-mid, and the remainder treble.
type BandConfig struct {
	BassEdge    float64 `json:"bassEdge"`
	LowMidEdge  float64 `json:"lowMidEdge"`
	HighMidEdge float64 `json:"highMidEdge"`
}

// EnvelopeConfig sets the extractor's gain mapping and smoothing constants.
type EnvelopeConfig struct {
	GainFloor float64 `json:"gainFloor"` // Gain at sensitivity 0.
	GainRange float64 `json:"gainRange"` // Added gain across the sensitivity range.

	MidPulseHold   float64 `json:"midPulseHold"`   // Per-frame retention of the pulse value.
	MidPulseIntake float64 `json:"midPulseIntake"` // Fraction of the raw delta blended in.
	MidPulseScale  float64 `json:"midPulseScale"`  // Raw rectified delta scale.
	MidPulseMax    float64 `json:"midPulseMax"`

	BassEnvTime   float64 `json:"bassEnvTime"`   // EMA time constant, seconds.
	TrebleEnvTime float64 `json:"trebleEnvTime"` // EMA time constant, seconds.

	BassHitDecay  float64 `json:"bassHitDecay"`  // Per-frame decay retention.
	BassHitAttack float64 `json:"bassHitAttack"` // Rectified delta attack gain.
	BassHitMax    float64 `json:"bassHitMax"`
}

// ZoneConfig sets the logistic windows that blend each point between the
// bass, mid and treble behavior zones along the structure's polar axis.
type ZoneConfig struct {
	BassEdge float64 `json:"bassEdge"` // Normalized polar position of the bass/mid boundary.
	MidEdge  float64 `json:"midEdge"`  // Normalized polar position of the mid/treble boundary.
	Softness float64 `json:"softness"` // Sigmoid steepness; higher is closer to a hard cutoff.
}

// ArmConfig sets the spiral lane attractors structuring point azimuth.
type ArmConfig struct {
	CountMin  int     `json:"countMin"` // Inclusive bounds for the seed-chosen lane count.
	CountMax  int     `json:"countMax"`
	Pitch     float64 `json:"pitch"`     // Radians of lane twist per unit height.
	PullMax   float64 `json:"pullMax"`   // Maximum fraction of the forward gap closed per frame.
	LaneWidth float64 `json:"laneWidth"` // Angular half-width used for off-lane darkening.
}

// RadialConfig sets the breathing, splash and envelope-bias radius terms.
type RadialConfig struct {
	BreathAmpA   float64 `json:"breathAmpA"`
	BreathRateA  float64 `json:"breathRateA"`
	BreathAmpB   float64 `json:"breathAmpB"`
	BreathRateB  float64 `json:"breathRateB"`
	SplashGain   float64 `json:"splashGain"`   // Outward-only bass-hit displacement.
	EnvelopeBias float64 `json:"envelopeBias"` // Sustained outward bias from the bass envelope.
	SmoothTime   float64 `json:"smoothTime"`   // Per-point smoothing time constant, seconds.
}

// VerticalConfig sets the treble-driven polar motion.
type VerticalConfig struct {
	TrebleLift float64 `json:"trebleLift"` // Polar pull toward the treble pole per unit envelope.
	SmoothTime float64 `json:"smoothTime"`
}

// TideConfig sets the tangential drift orthogonal to the radius vector.
type TideConfig struct {
	CarrierAmp       float64 `json:"carrierAmp"`
	CarrierRate      float64 `json:"carrierRate"`
	ShimmerAmp       float64 `json:"shimmerAmp"`
	ShimmerRate      float64 `json:"shimmerRate"`
	UndercurrentAmp  float64 `json:"undercurrentAmp"`
	UndercurrentRate float64 `json:"undercurrentRate"`
}

// ColorConfig sets hue perturbation, saturation and luminance shaping.
type ColorConfig struct {
	SaturationBase  float64 `json:"saturationBase"`
	SaturationRange float64 `json:"saturationRange"`
	HueTrebleShift  float64 `json:"hueTrebleShift"`
	LumBase         float64 `json:"lumBase"`
	LumRange        float64 `json:"lumRange"`
	LaneDarkening   float64 `json:"laneDarkening"` // Off-lane luminance reduction, 0..1.
}

// StructureConfig sets the structure generator's spatial layout parameters.
type StructureConfig struct {
	NodesPerSecond  float64 `json:"nodesPerSecond"`
	MinNodes        int     `json:"minNodes"`
	MaxNodes        int     `json:"maxNodes"`
	SpreadX         float64 `json:"spreadX"`         // Index-based horizontal spread.
	AmplitudeHeight float64 `json:"amplitudeHeight"` // Amplitude-driven vertical offset.
	FreqDepth       float64 `json:"freqDepth"`       // Zero-crossing-driven depth modulation.
	Jitter          float64 `json:"jitter"`          // Seeded random jitter magnitude.
	EdgeThreshold   float64 `json:"edgeThreshold"`   // Maximum Euclidean distance for an edge.
	EdgeProbability float64 `json:"edgeProbability"` // Random keep probability per candidate edge.
}

// MacroConfig sets the point-cloud expansion of the macro view.
type MacroConfig struct {
	PointsPerNode int     `json:"pointsPerNode"`
	ClusterSpread float64 `json:"clusterSpread"`
}

// MicroConfig sets the connected-graph view's per-frame reactions.
type MicroConfig struct {
	BassPulseGain    float64 `json:"bassPulseGain"`
	TrebleJitterGain float64 `json:"trebleJitterGain"`
}

// Config is the complete tuning profile consumed by the pipeline components.
type Config struct {
	Bands     BandConfig      `json:"bands"`
	Envelopes EnvelopeConfig  `json:"envelopes"`
	Zones     ZoneConfig      `json:"zones"`
	Arms      ArmConfig       `json:"arms"`
	Radial    RadialConfig    `json:"radial"`
	Vertical  VerticalConfig  `json:"vertical"`
	Tide      TideConfig      `json:"tide"`
	Color     ColorConfig     `json:"color"`
	Structure StructureConfig `json:"structure"`
	Macro     MacroConfig     `json:"macro"`
	Micro     MicroConfig     `json:"micro"`
}

// Default returns the baseline tuning profile.
func Default() Config {
	return Config{
		Bands: BandConfig{
			BassEdge:    0.10,
			LowMidEdge:  0.35,
			HighMidEdge: 0.70,
		},
		Envelopes: EnvelopeConfig{
			GainFloor:      0.6,
			GainRange:      1.4,
			MidPulseHold:   0.82,
			MidPulseIntake: 0.5,
			MidPulseScale:  6.0,
			MidPulseMax:    1.5,
			BassEnvTime:    0.12,
			TrebleEnvTime:  0.09,
			BassHitDecay:   0.88,
			BassHitAttack:  2.2,
			BassHitMax:     1.35,
		},
		Zones: ZoneConfig{
			BassEdge: 0.33,
			MidEdge:  0.66,
			Softness: 10.0,
		},
		Arms: ArmConfig{
			CountMin:  2,
			CountMax:  5,
			Pitch:     0.6,
			PullMax:   0.35,
			LaneWidth: 0.45,
		},
		Radial: RadialConfig{
			BreathAmpA:   0.060,
			BreathRateA:  0.70,
			BreathAmpB:   0.025,
			BreathRateB:  1.90,
			SplashGain:   0.35,
			EnvelopeBias: 0.18,
			SmoothTime:   0.08,
		},
		Vertical: VerticalConfig{
			TrebleLift: 0.25,
			SmoothTime: 0.12,
		},
		Tide: TideConfig{
			CarrierAmp:       0.045,
			CarrierRate:      0.23,
			ShimmerAmp:       0.020,
			ShimmerRate:      3.10,
			UndercurrentAmp:  0.030,
			UndercurrentRate: 0.90,
		},
		Color: ColorConfig{
			SaturationBase:  0.55,
			SaturationRange: 0.40,
			HueTrebleShift:  0.08,
			LumBase:         0.25,
			LumRange:        0.55,
			LaneDarkening:   0.45,
		},
		Structure: StructureConfig{
			NodesPerSecond:  10,
			MinNodes:        50,
			MaxNodes:        200,
			SpreadX:         10.0,
			AmplitudeHeight: 4.0,
			FreqDepth:       3.0,
			Jitter:          0.8,
			EdgeThreshold:   2.2,
			EdgeProbability: 0.7,
		},
		Macro: MacroConfig{
			PointsPerNode: 24,
			ClusterSpread: 0.35,
		},
		Micro: MicroConfig{
			BassPulseGain:    0.20,
			TrebleJitterGain: 0.08,
		},
	}
}
