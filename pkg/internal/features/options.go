package features

import (
	"github.com/audioglyph/helix/pkg/internal/tuning"
	"github.com/audioglyph/helix/pkg/internal/types"
)

// WithLogger creates an option to add a logger to an Extractor.
func WithLogger(logger ...types.Logger) types.Option[types.FeatureExtractor] {
	return func(e types.FeatureExtractor) {
		e.ConnectLogger(logger...)
	}
}

// WithSensor creates an option to add a sensor to an Extractor.
func WithSensor(s ...types.Sensor) types.Option[types.FeatureExtractor] {
	return func(e types.FeatureExtractor) {
		e.ConnectSensor(s...)
	}
}

// WithComponentMetadata creates an option to set the Extractor's name and ID.
func WithComponentMetadata(name string, id string) types.Option[types.FeatureExtractor] {
	return func(e types.FeatureExtractor) {
		e.SetComponentMetadata(name, id)
	}
}

// WithTuning creates an option to replace the Extractor's tuning profile.
func WithTuning(cfg tuning.Config) types.Option[types.FeatureExtractor] {
	return func(e types.FeatureExtractor) {
		if ext, ok := e.(*Extractor); ok {
			ext.SetTuning(cfg)
		}
	}
}
