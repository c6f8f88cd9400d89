// Package features reduces live frequency-domain snapshots into per-frame
// FeatureFrames: band energies, smoothed envelopes, transient detectors and
// pulse signals. The Extractor holds the only persistent mutable state of the
// audio path; everything else in the pipeline is a pure function of its input.
package features

import (
	"math"
	"sync"

	"github.com/audioglyph/helix/pkg/internal/tuning"
	"github.com/audioglyph/helix/pkg/internal/types"
	"github.com/audioglyph/helix/pkg/internal/utils"
)

// referenceFrameDelta is the frame delta the per-frame retention constants
// are calibrated against (60 fps).
const referenceFrameDelta = 1.0 / 60.0

// hitNotifyThreshold is the raw impulse above which sensors are notified.
const hitNotifyThreshold = 0.5

// Extractor folds frequency snapshots into FeatureFrames. Not safe for
// concurrent use; the frame loop owns it.
type Extractor struct {
	componentMetadata types.ComponentMetadata
	cfg               tuning.Config

	prevLowMid float64
	prevBass   float64
	bassEnv    float64
	trebleEnv  float64
	midPulse   float64
	bassHit    float64

	loggers     []types.Logger
	loggersLock sync.Mutex
	sensors     []types.Sensor
	sensorLock  sync.Mutex
}

// NewExtractor creates an Extractor configured with the provided options.
func NewExtractor(options ...types.Option[types.FeatureExtractor]) types.FeatureExtractor {
	e := &Extractor{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "FEATURE_EXTRACTOR",
		},
		cfg: tuning.Default(),
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}

	return e
}

func (e *Extractor) GetComponentMetadata() types.ComponentMetadata {
	return e.componentMetadata
}

func (e *Extractor) SetComponentMetadata(name string, id string) {
	e.componentMetadata.Name = name
	if id != "" {
		e.componentMetadata.ID = id
	}
}

// ConnectLogger registers loggers. Nil loggers are ignored.
func (e *Extractor) ConnectLogger(loggers ...types.Logger) {
	e.loggersLock.Lock()
	defer e.loggersLock.Unlock()
	for _, l := range loggers {
		if l != nil {
			e.loggers = append(e.loggers, l)
		}
	}
}

// ConnectSensor registers sensors. Nil sensors are ignored.
func (e *Extractor) ConnectSensor(sensors ...types.Sensor) {
	e.sensorLock.Lock()
	defer e.sensorLock.Unlock()
	for _, s := range sensors {
		if s != nil {
			e.sensors = append(e.sensors, s)
		}
	}
}

// SetTuning replaces the tuning profile. Configuration time only.
func (e *Extractor) SetTuning(cfg tuning.Config) {
	e.cfg = cfg
}

// Reset clears all smoothing state, e.g. on audio reload.
func (e *Extractor) Reset() {
	e.prevLowMid = 0
	e.prevBass = 0
	e.bassEnv = 0
	e.trebleEnv = 0
	e.midPulse = 0
	e.bassHit = 0
}

// Update folds one frequency snapshot into a FeatureFrame. bins holds one
// byte per frequency bin (0..255); sensitivity is the UI scalar in [0,1];
// dt is the measured inter-frame delta in seconds.
func (e *Extractor) Update(bins []byte, sensitivity, dt float64) types.FeatureFrame {
	env := e.cfg.Envelopes
	dt = utils.ClampFrameDelta(dt)
	sensitivity = utils.Clamp(sensitivity, 0, 1)

	bands := e.bandEnergies(bins)
	gain := env.GainFloor + sensitivity*env.GainRange

	// Percussive low-mid pulse: rectified positive delta, held and blended
	// exponentially. No delay line involved.
	rawPulse := math.Max(0, bands.LowMid-e.prevLowMid) * env.MidPulseScale
	hold := rateAdjust(env.MidPulseHold, dt)
	e.midPulse = utils.Clamp(e.midPulse*hold+rawPulse*env.MidPulseIntake, 0, env.MidPulseMax)
	e.prevLowMid = bands.LowMid

	// Band envelopes: EMA toward the gain-scaled energy.
	e.bassEnv = utils.Clamp(
		utils.Lerp(e.bassEnv, bands.Bass*gain, utils.SmoothCoeff(env.BassEnvTime, dt)), 0, 1)
	e.trebleEnv = utils.Clamp(
		utils.Lerp(e.trebleEnv, bands.Treble*gain, utils.SmoothCoeff(env.TrebleEnvTime, dt)), 0, 1)

	// Bass transient: fast rise on rectified delta, slow exponential fall.
	rawHit := math.Max(0, bands.Bass-e.prevBass) * gain * env.BassHitAttack
	decay := rateAdjust(env.BassHitDecay, dt)
	e.bassHit = utils.Clamp(e.bassHit*decay+rawHit, 0, env.BassHitMax)
	e.prevBass = bands.Bass

	if rawHit > hitNotifyThreshold {
		for _, s := range e.snapshotSensors() {
			s.InvokeOnBassHit(e.componentMetadata, e.bassHit)
		}
	}

	loudness := (bands.Bass + bands.LowMid + bands.HighMid + bands.Treble) / 4

	return types.FeatureFrame{
		Bands:          bands,
		BassEnvelope:   e.bassEnv,
		TrebleEnvelope: e.trebleEnv,
		BassHit:        e.bassHit,
		MidPulse:       e.midPulse,
		Loudness:       loudness,
	}
}

// bandEnergies partitions the bins into four contiguous bands by the
// configured fractional boundaries; each band is the mean of its bins
// normalized to [0,1].
func (e *Extractor) bandEnergies(bins []byte) types.BandEnergies {
	n := len(bins)
	if n == 0 {
		return types.BandEnergies{}
	}
	b := e.cfg.Bands
	bassEnd := int(b.BassEdge * float64(n))
	lowMidEnd := int(b.LowMidEdge * float64(n))
	highMidEnd := int(b.HighMidEdge * float64(n))

	return types.BandEnergies{
		Bass:    bandMean(bins, 0, bassEnd),
		LowMid:  bandMean(bins, bassEnd, lowMidEnd),
		HighMid: bandMean(bins, lowMidEnd, highMidEnd),
		Treble:  bandMean(bins, highMidEnd, n),
	}
}

func bandMean(bins []byte, lo, hi int) float64 {
	if hi <= lo {
		return 0
	}
	sum := 0
	for _, v := range bins[lo:hi] {
		sum += int(v)
	}
	return float64(sum) / float64(hi-lo) / 255.0
}

// rateAdjust rescales a per-frame retention constant calibrated at 60 fps to
// the measured frame delta, so decay speed is independent of frame rate.
func rateAdjust(retention, dt float64) float64 {
	return math.Pow(retention, dt/referenceFrameDelta)
}
