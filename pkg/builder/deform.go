package builder

import (
	"github.com/audioglyph/helix/pkg/internal/deform"
	"github.com/audioglyph/helix/pkg/internal/tuning"
	"github.com/audioglyph/helix/pkg/internal/types"
)

// NewDeformEngine creates a new deformation engine with the provided
// configuration options.
func NewDeformEngine(options ...types.Option[types.Deformer]) types.Deformer {
	return deform.NewEngine(options...)
}

// DeformEngineWithLogger adds one or more loggers to the engine.
func DeformEngineWithLogger(logger ...types.Logger) types.Option[types.Deformer] {
	return deform.WithLogger(logger...)
}

// DeformEngineWithComponentMetadata adds component metadata overrides.
func DeformEngineWithComponentMetadata(name string, id string) types.Option[types.Deformer] {
	return deform.WithComponentMetadata(name, id)
}

// DeformEngineWithTuning replaces the engine's tuning profile.
func DeformEngineWithTuning(cfg tuning.Config) types.Option[types.Deformer] {
	return deform.WithTuning(cfg)
}

// DeformEngineWithSeed installs the structure seed at build time.
func DeformEngineWithSeed(seed string) types.Option[types.Deformer] {
	return deform.WithSeed(seed)
}
