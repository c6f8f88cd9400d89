package spectrum

import "github.com/audioglyph/helix/pkg/internal/types"

// WithLogger creates an option to add a logger to an Analyzer.
func WithLogger(logger ...types.Logger) types.Option[*Analyzer] {
	return func(a *Analyzer) {
		a.ConnectLogger(logger...)
	}
}

// WithComponentMetadata creates an option to set the Analyzer's name and ID.
func WithComponentMetadata(name string, id string) types.Option[*Analyzer] {
	return func(a *Analyzer) {
		a.SetComponentMetadata(name, id)
	}
}

// WithSamples creates an option to install decoded samples at build time.
func WithSamples(samples []float64, sampleRate float64) types.Option[*Analyzer] {
	return func(a *Analyzer) {
		a.samples = samples
		if sampleRate > 0 {
			a.sampleRate = sampleRate
		}
	}
}

// WithFFTSize creates an option to set the transform size. Invalid sizes are
// ignored and the default kept.
func WithFFTSize(n int) types.Option[*Analyzer] {
	return func(a *Analyzer) {
		if validFFTSize(n) {
			a.fftSize = n
		} else {
			a.NotifyLoggers(types.WarnLevel, "spectrum: fft size rejected",
				"component", a.componentMetadata, "event", "WithFFTSize",
				"size", n, "error", ErrBadFFTSize)
		}
	}
}

// WithSmoothing creates an option to set the inter-snapshot magnitude
// blending factor in [0,1); 0 disables smoothing.
func WithSmoothing(s float64) types.Option[*Analyzer] {
	return func(a *Analyzer) {
		if s >= 0 && s < 1 {
			a.smoothing = s
		}
	}
}

// WithDecibelRange creates an option to set the magnitude-to-byte mapping
// range. min must be strictly below max.
func WithDecibelRange(min, max float64) types.Option[*Analyzer] {
	return func(a *Analyzer) {
		if min < max {
			a.minDB = min
			a.maxDB = max
		}
	}
}
