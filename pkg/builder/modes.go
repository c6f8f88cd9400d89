package builder

import (
	"github.com/audioglyph/helix/pkg/internal/modes"
	"github.com/audioglyph/helix/pkg/internal/tuning"
	"github.com/audioglyph/helix/pkg/internal/types"
)

// Director coordinates audio loading, structure derivation and mode
// switching.
type Director = modes.Director

// ModeFactory builds a fresh mode instance for the Director.
type ModeFactory = modes.ModeFactory

// MicroMode is the connected-graph view.
type MicroMode = modes.MicroMode

// MacroMode is the deformed point-cloud view.
type MacroMode = modes.MacroMode

// Errors surfaced by the Director.
var (
	ErrNoAudio     = modes.ErrNoAudio
	ErrUnknownMode = modes.ErrUnknownMode
)

// NewDirector creates a new Director with the provided configuration options.
func NewDirector(options ...types.Option[*modes.Director]) *modes.Director {
	return modes.NewDirector(options...)
}

// NewMicroMode creates the connected-graph view.
func NewMicroMode(options ...types.Option[types.Mode]) types.Mode {
	return modes.NewMicroMode(options...)
}

// NewMacroMode creates the point-cloud view.
func NewMacroMode(options ...types.Option[types.Mode]) types.Mode {
	return modes.NewMacroMode(options...)
}

// ModeWithLogger adds one or more loggers to a mode.
func ModeWithLogger(logger ...types.Logger) types.Option[types.Mode] {
	return modes.WithLogger(logger...)
}

// ModeWithComponentMetadata adds component metadata overrides.
func ModeWithComponentMetadata(name string, id string) types.Option[types.Mode] {
	return modes.WithComponentMetadata(name, id)
}

// ModeWithTuning replaces a mode's tuning profile.
func ModeWithTuning(cfg tuning.Config) types.Option[types.Mode] {
	return modes.WithTuning(cfg)
}

// ModeWithSource installs the audio collaborator on a mode.
func ModeWithSource(src types.AudioSource) types.Option[types.Mode] {
	return modes.WithSource(src)
}

// ModeWithSeed installs the structure seed on a mode.
func ModeWithSeed(seed string) types.Option[types.Mode] {
	return modes.WithSeed(seed)
}

// ModeWithSensitivity sets a mode's sensitivity scalar.
func ModeWithSensitivity(s float64) types.Option[types.Mode] {
	return modes.WithSensitivity(s)
}

// DirectorWithLogger adds one or more loggers to the Director.
func DirectorWithLogger(logger ...types.Logger) types.Option[*modes.Director] {
	return modes.DirectorWithLogger(logger...)
}

// DirectorWithSensor adds one or more sensors to the Director.
func DirectorWithSensor(s ...types.Sensor) types.Option[*modes.Director] {
	return modes.DirectorWithSensor(s...)
}

// DirectorWithComponentMetadata adds component metadata overrides.
func DirectorWithComponentMetadata(name string, id string) types.Option[*modes.Director] {
	return modes.DirectorWithComponentMetadata(name, id)
}

// DirectorWithTuning replaces the Director's tuning profile.
func DirectorWithTuning(cfg tuning.Config) types.Option[*modes.Director] {
	return modes.DirectorWithTuning(cfg)
}

// DirectorWithGenerator installs the structure generator.
func DirectorWithGenerator(g types.StructureGenerator) types.Option[*modes.Director] {
	return modes.DirectorWithGenerator(g)
}

// DirectorWithMode registers a mode factory by name.
func DirectorWithMode(name string, factory modes.ModeFactory) types.Option[*modes.Director] {
	return modes.DirectorWithMode(name, factory)
}

// DirectorWithSensitivity sets the sensitivity scalar.
func DirectorWithSensitivity(s float64) types.Option[*modes.Director] {
	return modes.DirectorWithSensitivity(s)
}
