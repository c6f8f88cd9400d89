// Package spectrum provides the decoded-audio collaborator of the pipeline:
// an Analyzer that exposes decoded PCM samples plus a live frequency-domain
// snapshot around a movable playhead. Snapshots are windowed, magnitude
// smoothed across calls and mapped onto a decibel range, one byte per bin.
package spectrum

import (
	"errors"
	"math"
	"math/cmplx"
	"sync"

	"github.com/mjibson/go-dsp/fft"
	dspwindow "github.com/mjibson/go-dsp/window"
	"gonum.org/v1/gonum/floats"

	"github.com/audioglyph/helix/pkg/internal/types"
	"github.com/audioglyph/helix/pkg/internal/utils"
)

// ErrBadFFTSize is returned when the configured transform size is not a
// power of two of at least 32.
var ErrBadFFTSize = errors.New("spectrum: fft size must be a power of two >= 32")

const (
	defaultFFTSize    = 2048
	defaultSmoothing  = 0.8
	defaultSampleRate = 44100
	defaultMinDB      = -100.0
	defaultMaxDB      = -30.0
)

// Analyzer implements the audio source consumed by the modes. Not safe for
// concurrent use; the frame loop owns it.
type Analyzer struct {
	componentMetadata types.ComponentMetadata

	samples    []float64
	sampleRate float64
	playhead   float64

	fftSize   int
	smoothing float64
	minDB     float64
	maxDB     float64

	hann    []float64
	segment []float64
	mags    []float64

	loggers     []types.Logger
	loggersLock sync.Mutex
}

// NewAnalyzer creates an Analyzer configured with the provided options.
func NewAnalyzer(options ...types.Option[*Analyzer]) *Analyzer {
	a := &Analyzer{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "SPECTRUM_ANALYZER",
		},
		sampleRate: defaultSampleRate,
		fftSize:    defaultFFTSize,
		smoothing:  defaultSmoothing,
		minDB:      defaultMinDB,
		maxDB:      defaultMaxDB,
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(a)
	}

	a.rebuild()
	return a
}

func (a *Analyzer) GetComponentMetadata() types.ComponentMetadata {
	return a.componentMetadata
}

func (a *Analyzer) SetComponentMetadata(name string, id string) {
	a.componentMetadata.Name = name
	if id != "" {
		a.componentMetadata.ID = id
	}
}

// ConnectLogger registers loggers. Nil loggers are ignored.
func (a *Analyzer) ConnectLogger(loggers ...types.Logger) {
	a.loggersLock.Lock()
	defer a.loggersLock.Unlock()
	for _, l := range loggers {
		if l != nil {
			a.loggers = append(a.loggers, l)
		}
	}
}

// SetSamples installs decoded first-channel samples and resets the playhead
// and the magnitude smoothing state.
func (a *Analyzer) SetSamples(samples []float64, sampleRate float64) {
	a.samples = samples
	if sampleRate > 0 {
		a.sampleRate = sampleRate
	}
	a.playhead = 0
	for i := range a.mags {
		a.mags[i] = 0
	}
	a.NotifyLoggers(types.InfoLevel, "spectrum: samples installed",
		"component", a.componentMetadata, "event", "SetSamples",
		"samples", len(samples), "sample_rate", a.sampleRate, "duration", a.Duration())
}

// ChannelData returns the decoded samples of the first channel.
func (a *Analyzer) ChannelData() []float64 {
	return a.samples
}

// Duration returns the audio duration in seconds.
func (a *Analyzer) Duration() float64 {
	if a.sampleRate <= 0 {
		return 0
	}
	return float64(len(a.samples)) / a.sampleRate
}

// Playhead returns the analysis position in seconds.
func (a *Analyzer) Playhead() float64 {
	return a.playhead
}

// Seek moves the analysis position, clamped to the audio duration.
func (a *Analyzer) Seek(seconds float64) {
	a.playhead = utils.Clamp(seconds, 0, a.Duration())
}

// Advance moves the playhead forward by dt seconds, clamped to the duration.
func (a *Analyzer) Advance(dt float64) {
	a.Seek(a.playhead + dt)
}

// FrequencySnapshot transforms the window of samples around the playhead and
// fills dst with one byte per bin (0..255), mapped from the configured
// decibel range. Magnitudes are blended with the previous snapshot so the
// spectrum does not flicker between frames. Returns the number of bins
// written, at most fftSize/2.
func (a *Analyzer) FrequencySnapshot(dst []byte) int {
	bins := a.fftSize / 2
	if len(dst) < bins {
		bins = len(dst)
	}
	if bins == 0 {
		return 0
	}
	if len(a.samples) == 0 {
		for i := 0; i < bins; i++ {
			dst[i] = 0
		}
		return bins
	}

	a.fillSegment()
	floats.Mul(a.segment, a.hann)
	spec := fft.FFTReal(a.segment)

	norm := 2.0 / float64(a.fftSize)
	dbSpan := a.maxDB - a.minDB
	for i := 0; i < bins; i++ {
		mag := cmplx.Abs(spec[i]) * norm
		a.mags[i] = a.smoothing*a.mags[i] + (1-a.smoothing)*mag

		db := -math.MaxFloat64
		if a.mags[i] > 0 {
			db = 20 * math.Log10(a.mags[i])
		}
		dst[i] = byte(255 * utils.Clamp((db-a.minDB)/dbSpan, 0, 1))
	}
	return bins
}

// fillSegment copies fftSize samples centered on the playhead into the
// scratch segment, zero-padding past either end of the buffer.
func (a *Analyzer) fillSegment() {
	center := int(a.playhead * a.sampleRate)
	start := center - a.fftSize/2
	for i := range a.segment {
		idx := start + i
		if idx >= 0 && idx < len(a.samples) {
			a.segment[i] = a.samples[idx]
		} else {
			a.segment[i] = 0
		}
	}
}

// rebuild sizes the scratch buffers and window coefficients for the current
// transform size.
func (a *Analyzer) rebuild() {
	a.hann = dspwindow.Hann(a.fftSize)
	a.segment = make([]float64, a.fftSize)
	a.mags = make([]float64, a.fftSize/2)
}

func validFFTSize(n int) bool {
	return n >= 32 && n&(n-1) == 0
}
