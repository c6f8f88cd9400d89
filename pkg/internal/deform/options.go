package deform

import (
	"github.com/audioglyph/helix/pkg/internal/tuning"
	"github.com/audioglyph/helix/pkg/internal/types"
)

// WithLogger creates an option to add a logger to an Engine.
func WithLogger(logger ...types.Logger) types.Option[types.Deformer] {
	return func(d types.Deformer) {
		d.ConnectLogger(logger...)
	}
}

// WithComponentMetadata creates an option to set the Engine's name and ID.
func WithComponentMetadata(name string, id string) types.Option[types.Deformer] {
	return func(d types.Deformer) {
		d.SetComponentMetadata(name, id)
	}
}

// WithTuning creates an option to replace the Engine's tuning profile.
func WithTuning(cfg tuning.Config) types.Option[types.Deformer] {
	return func(d types.Deformer) {
		if eng, ok := d.(*Engine); ok {
			eng.SetTuning(cfg)
		}
	}
}

// WithSeed creates an option to install the structure seed at build time.
func WithSeed(seed string) types.Option[types.Deformer] {
	return func(d types.Deformer) {
		d.SetSeed(seed)
	}
}
