package builder

import (
	"github.com/audioglyph/helix/pkg/internal/features"
	"github.com/audioglyph/helix/pkg/internal/tuning"
	"github.com/audioglyph/helix/pkg/internal/types"
)

// NewFeatureExtractor creates a new feature extractor with the provided
// configuration options.
func NewFeatureExtractor(options ...types.Option[types.FeatureExtractor]) types.FeatureExtractor {
	return features.NewExtractor(options...)
}

// FeatureExtractorWithLogger adds one or more loggers to the extractor.
func FeatureExtractorWithLogger(logger ...types.Logger) types.Option[types.FeatureExtractor] {
	return features.WithLogger(logger...)
}

// FeatureExtractorWithSensor adds one or more sensors to the extractor.
func FeatureExtractorWithSensor(s ...types.Sensor) types.Option[types.FeatureExtractor] {
	return features.WithSensor(s...)
}

// FeatureExtractorWithComponentMetadata adds component metadata overrides.
func FeatureExtractorWithComponentMetadata(name string, id string) types.Option[types.FeatureExtractor] {
	return features.WithComponentMetadata(name, id)
}

// FeatureExtractorWithTuning replaces the extractor's tuning profile.
func FeatureExtractorWithTuning(cfg tuning.Config) types.Option[types.FeatureExtractor] {
	return features.WithTuning(cfg)
}
