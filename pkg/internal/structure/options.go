package structure

import (
	"github.com/audioglyph/helix/pkg/internal/tuning"
	"github.com/audioglyph/helix/pkg/internal/types"
)

// WithLogger creates an option to add a logger to a Generator.
func WithLogger(logger ...types.Logger) types.Option[types.StructureGenerator] {
	return func(g types.StructureGenerator) {
		g.ConnectLogger(logger...)
	}
}

// WithSensor creates an option to add a sensor to a Generator.
func WithSensor(s ...types.Sensor) types.Option[types.StructureGenerator] {
	return func(g types.StructureGenerator) {
		g.ConnectSensor(s...)
	}
}

// WithComponentMetadata creates an option to set the Generator's name and ID.
func WithComponentMetadata(name string, id string) types.Option[types.StructureGenerator] {
	return func(g types.StructureGenerator) {
		g.SetComponentMetadata(name, id)
	}
}

// WithTuning creates an option to replace the Generator's tuning profile.
func WithTuning(cfg tuning.Config) types.Option[types.StructureGenerator] {
	return func(g types.StructureGenerator) {
		if gen, ok := g.(*Generator); ok {
			gen.SetTuning(cfg)
		}
	}
}
