package builder

import (
	"github.com/audioglyph/helix/pkg/internal/contenthash"
	"github.com/audioglyph/helix/pkg/internal/structure"
	"github.com/audioglyph/helix/pkg/internal/tuning"
	"github.com/audioglyph/helix/pkg/internal/types"
)

// NewStructureGenerator creates a new structure generator with the provided
// configuration options.
func NewStructureGenerator(options ...types.Option[types.StructureGenerator]) types.StructureGenerator {
	return structure.NewGenerator(options...)
}

// StructureGeneratorWithLogger adds one or more loggers to the generator.
func StructureGeneratorWithLogger(logger ...types.Logger) types.Option[types.StructureGenerator] {
	return structure.WithLogger(logger...)
}

// StructureGeneratorWithSensor adds one or more sensors to the generator.
func StructureGeneratorWithSensor(s ...types.Sensor) types.Option[types.StructureGenerator] {
	return structure.WithSensor(s...)
}

// StructureGeneratorWithComponentMetadata adds component metadata overrides.
func StructureGeneratorWithComponentMetadata(name string, id string) types.Option[types.StructureGenerator] {
	return structure.WithComponentMetadata(name, id)
}

// StructureGeneratorWithTuning replaces the generator's tuning profile.
func StructureGeneratorWithTuning(cfg tuning.Config) types.Option[types.StructureGenerator] {
	return structure.WithTuning(cfg)
}

// ContentHash derives the deterministic seed string from decoded samples.
func ContentHash(samples []float64) string {
	return contenthash.Sum(samples)
}
