package builder

import (
	"github.com/audioglyph/helix/pkg/internal/spectrum"
	"github.com/audioglyph/helix/pkg/internal/types"
)

// SpectrumAnalyzer is the decoded-audio collaborator backed by an FFT.
type SpectrumAnalyzer = spectrum.Analyzer

// NewSpectrumAnalyzer creates a new analyzer with the provided configuration
// options.
func NewSpectrumAnalyzer(options ...types.Option[*spectrum.Analyzer]) *spectrum.Analyzer {
	return spectrum.NewAnalyzer(options...)
}

// SpectrumAnalyzerWithLogger adds one or more loggers to the analyzer.
func SpectrumAnalyzerWithLogger(logger ...types.Logger) types.Option[*spectrum.Analyzer] {
	return spectrum.WithLogger(logger...)
}

// SpectrumAnalyzerWithComponentMetadata adds component metadata overrides.
func SpectrumAnalyzerWithComponentMetadata(name string, id string) types.Option[*spectrum.Analyzer] {
	return spectrum.WithComponentMetadata(name, id)
}

// SpectrumAnalyzerWithSamples installs decoded samples at build time.
func SpectrumAnalyzerWithSamples(samples []float64, sampleRate float64) types.Option[*spectrum.Analyzer] {
	return spectrum.WithSamples(samples, sampleRate)
}

// SpectrumAnalyzerWithFFTSize sets the transform size.
func SpectrumAnalyzerWithFFTSize(n int) types.Option[*spectrum.Analyzer] {
	return spectrum.WithFFTSize(n)
}

// SpectrumAnalyzerWithSmoothing sets the inter-snapshot blending factor.
func SpectrumAnalyzerWithSmoothing(s float64) types.Option[*spectrum.Analyzer] {
	return spectrum.WithSmoothing(s)
}

// SpectrumAnalyzerWithDecibelRange sets the magnitude-to-byte mapping range.
func SpectrumAnalyzerWithDecibelRange(min, max float64) types.Option[*spectrum.Analyzer] {
	return spectrum.WithDecibelRange(min, max)
}
