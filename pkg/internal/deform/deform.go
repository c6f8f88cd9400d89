// Package deform implements the per-frame point-cloud deformation model of
// the macro view. The Engine reinterprets every base position in spherical
// coordinates about the structure origin and rewrites position, color and
// shape tier each frame from the current FeatureFrame. All motion terms are
// scaled by the measured frame delta, so animation speed does not depend on
// the caller's frame rate.
package deform

import (
	"math"
	"sync"

	"github.com/audioglyph/helix/pkg/internal/randstream"
	"github.com/audioglyph/helix/pkg/internal/tuning"
	"github.com/audioglyph/helix/pkg/internal/types"
	"github.com/audioglyph/helix/pkg/internal/utils"
)

// referenceFrameDelta is the frame delta the per-frame pull fractions are
// calibrated against (60 fps).
const referenceFrameDelta = 1.0 / 60.0

// Engine deforms render points in place. Not safe for concurrent use; the
// frame loop owns it.
type Engine struct {
	componentMetadata types.ComponentMetadata
	cfg               tuning.Config

	armCount int

	// Per-point smoothing caches, indexed like the point slice. Rebuilt from
	// base geometry whenever the point count changes or the seed is replaced.
	prevAzimuth []float64
	prevRadius  []float64
	prevPolar   []float64

	loggers     []types.Logger
	loggersLock sync.Mutex
}

// NewEngine creates an Engine configured with the provided options.
func NewEngine(options ...types.Option[types.Deformer]) types.Deformer {
	e := &Engine{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "DEFORM_ENGINE",
		},
		cfg: tuning.Default(),
	}
	e.armCount = e.cfg.Arms.CountMin

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}

	return e
}

func (e *Engine) GetComponentMetadata() types.ComponentMetadata {
	return e.componentMetadata
}

func (e *Engine) SetComponentMetadata(name string, id string) {
	e.componentMetadata.Name = name
	if id != "" {
		e.componentMetadata.ID = id
	}
}

// ConnectLogger registers loggers. Nil loggers are ignored.
func (e *Engine) ConnectLogger(loggers ...types.Logger) {
	e.loggersLock.Lock()
	defer e.loggersLock.Unlock()
	for _, l := range loggers {
		if l != nil {
			e.loggers = append(e.loggers, l)
		}
	}
}

// SetTuning replaces the tuning profile. Configuration time only.
func (e *Engine) SetTuning(cfg tuning.Config) {
	e.cfg = cfg
	if e.armCount < e.cfg.Arms.CountMin {
		e.armCount = e.cfg.Arms.CountMin
	}
	if e.armCount > e.cfg.Arms.CountMax {
		e.armCount = e.cfg.Arms.CountMax
	}
}

// SetSeed re-derives the seed-chosen lane count and drops the smoothing
// caches. The same seed always yields the same lane count.
func (e *Engine) SetSeed(seed string) {
	arms := e.cfg.Arms
	span := arms.CountMax - arms.CountMin + 1
	if span < 1 {
		span = 1
	}
	rng := randstream.New(seed)
	e.armCount = arms.CountMin + rng.IntN(span)
	e.ResetSmoothing()

	e.NotifyLoggers(types.DebugLevel, "deform: seed installed",
		"component", e.componentMetadata, "event", "SetSeed", "arm_count", e.armCount)
}

// ResetSmoothing drops the per-point smoothing caches so the next Step starts
// at rest from base geometry. Call when a structure is replaced; the caches
// must never carry state across different structures, even same-sized ones.
func (e *Engine) ResetSmoothing() {
	e.prevAzimuth = nil
	e.prevRadius = nil
	e.prevPolar = nil
}

// ArmCount reports the current spiral lane count.
func (e *Engine) ArmCount() int {
	return e.armCount
}

// Step rewrites Current, color and ShapeTier for every point from its
// immutable base geometry and the supplied feature frame.
func (e *Engine) Step(points []types.RenderPoint, frame types.FeatureFrame, sensitivity, now, dt float64) {
	if len(points) == 0 {
		return
	}
	dt = utils.ClampFrameDelta(dt)
	sensitivity = utils.Clamp(sensitivity, 0, 1)
	e.ensureCaches(points)

	cfg := e.cfg
	mid := (frame.Bands.LowMid + frame.Bands.HighMid) / 2

	// Higher sensitivity shortens the radial time constant so the cloud
	// tracks transients more tightly.
	radialK := utils.SmoothCoeff(cfg.Radial.SmoothTime*(1.5-sensitivity), dt)
	polarK := utils.SmoothCoeff(cfg.Vertical.SmoothTime, dt)
	pull := utils.Clamp(cfg.Arms.PullMax*mid*(dt/referenceFrameDelta), 0, 0.9)
	sat := utils.Clamp(cfg.Color.SaturationBase+cfg.Color.SaturationRange*sensitivity, 0, 1)

	for i := range points {
		p := &points[i]
		baseR, basePolar, baseAzimuth := toSpherical(p.Base)
		height := 1 - basePolar/math.Pi
		wb, wm, wt := ZoneWeights(height, cfg.Zones)

		// Azimuth only ever advances: the gap to the nearest lane ahead is
		// closed by a mid-energy-driven fraction, never reopened backwards.
		phi := e.prevAzimuth[i]
		phi = utils.WrapTau(phi + e.laneGapAhead(phi, height)*pull)
		e.prevAzimuth[i] = phi

		breath := cfg.Radial.BreathAmpA*math.Sin(now*cfg.Radial.BreathRateA*utils.Tau+baseAzimuth) +
			cfg.Radial.BreathAmpB*math.Sin(now*cfg.Radial.BreathRateB*utils.Tau+basePolar*2)
		splash := cfg.Radial.SplashGain * frame.BassHit * (0.5 + 0.5*wb)
		bias := cfg.Radial.EnvelopeBias * frame.BassEnvelope
		targetR := baseR * (1 + breath + splash + bias)
		r := utils.Lerp(e.prevRadius[i], targetR, radialK)
		e.prevRadius[i] = r

		// Treble alone lifts points toward the pole; bass and mid leave the
		// polar angle untouched.
		targetPolar := basePolar * (1 - cfg.Vertical.TrebleLift*frame.TrebleEnvelope*wt)
		polar := utils.Lerp(e.prevPolar[i], targetPolar, polarK)
		e.prevPolar[i] = polar

		sinP, cosP := math.Sincos(polar)
		sinA, cosA := math.Sincos(phi)
		cur := types.Vec3{X: r * sinP * cosA, Y: r * cosP, Z: r * sinP * sinA}

		tide := cfg.Tide.CarrierAmp*math.Sin(now*cfg.Tide.CarrierRate*utils.Tau+baseAzimuth) +
			cfg.Tide.ShimmerAmp*frame.TrebleEnvelope*math.Sin(now*cfg.Tide.ShimmerRate*utils.Tau+3*basePolar) +
			cfg.Tide.UndercurrentAmp*frame.BassEnvelope*math.Sin(now*cfg.Tide.UndercurrentRate*utils.Tau)
		// Tangent of increasing azimuth; orthogonal to the radius vector.
		cur = cur.Add(types.Vec3{X: -sinA, Y: 0, Z: cosA}.Scale(tide))
		p.Current = cur

		p.ShapeTier = wm + 2*wt

		hue := wrap01(p.Hue + cfg.Color.HueTrebleShift*frame.TrebleEnvelope*wt)
		energy := utils.Clamp(
			0.35*p.Amplitude+
				0.25*frame.Loudness+
				0.40*(wb*frame.Bands.Bass+wm*mid+wt*frame.Bands.Treble), 0, 1)
		lum := cfg.Color.LumBase + cfg.Color.LumRange*energy
		offLane := utils.Clamp(e.laneDistance(phi, height)/cfg.Arms.LaneWidth, 0, 1)
		lum = utils.Clamp(lum*(1-cfg.Color.LaneDarkening*offLane), 0, 1)
		p.R, p.G, p.B = hslToRGB(hue, sat, lum)
	}
}

// ensureCaches resizes and reseeds the smoothing caches when the point count
// changes, initializing each slot from the point's base geometry so the first
// frame after a structure swap starts at rest.
func (e *Engine) ensureCaches(points []types.RenderPoint) {
	if len(e.prevRadius) == len(points) {
		return
	}
	e.prevAzimuth = make([]float64, len(points))
	e.prevRadius = make([]float64, len(points))
	e.prevPolar = make([]float64, len(points))
	for i := range points {
		r, polar, azimuth := toSpherical(points[i].Base)
		e.prevAzimuth[i] = azimuth
		e.prevRadius[i] = r
		e.prevPolar[i] = polar
	}
	e.NotifyLoggers(types.DebugLevel, "deform: smoothing caches rebuilt",
		"component", e.componentMetadata, "event", "Step", "points", len(points))
}

// toSpherical decomposes a position into radius, polar angle from the +Y pole
// and azimuth in the XZ plane. Degenerate positions at the origin are nudged
// onto a tiny radius so angles stay defined.
func toSpherical(v types.Vec3) (r, polar, azimuth float64) {
	r = math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
	if r < 1e-9 {
		return 1e-9, math.Pi / 2, 0
	}
	polar = math.Acos(utils.Clamp(v.Y/r, -1, 1))
	azimuth = utils.WrapTau(math.Atan2(v.Z, v.X))
	return r, polar, azimuth
}

func wrap01(v float64) float64 {
	v = math.Mod(v, 1)
	if v < 0 {
		v++
	}
	return v
}
