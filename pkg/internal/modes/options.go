package modes

import (
	"github.com/audioglyph/helix/pkg/internal/tuning"
	"github.com/audioglyph/helix/pkg/internal/types"
)

// WithLogger creates an option to add a logger to a mode.
func WithLogger(logger ...types.Logger) types.Option[types.Mode] {
	return func(m types.Mode) {
		if c, ok := m.(interface{ ConnectLogger(...types.Logger) }); ok {
			c.ConnectLogger(logger...)
		}
	}
}

// WithComponentMetadata creates an option to set a mode's name and ID.
func WithComponentMetadata(name string, id string) types.Option[types.Mode] {
	return func(m types.Mode) {
		if c, ok := m.(interface{ SetComponentMetadata(string, string) }); ok {
			c.SetComponentMetadata(name, id)
		}
	}
}

// WithTuning creates an option to replace a mode's tuning profile.
func WithTuning(cfg tuning.Config) types.Option[types.Mode] {
	return func(m types.Mode) {
		if c, ok := m.(interface{ SetTuning(tuning.Config) }); ok {
			c.SetTuning(cfg)
		}
	}
}

// WithSource creates an option to install the audio collaborator on a mode.
func WithSource(src types.AudioSource) types.Option[types.Mode] {
	return func(m types.Mode) {
		if c, ok := m.(interface{ SetSource(types.AudioSource) }); ok {
			c.SetSource(src)
		}
	}
}

// WithSeed creates an option to install the structure seed on a mode.
func WithSeed(seed string) types.Option[types.Mode] {
	return func(m types.Mode) {
		if c, ok := m.(interface{ SetSeed(string) }); ok {
			c.SetSeed(seed)
		}
	}
}

// WithSensitivity creates an option to set a mode's sensitivity scalar.
func WithSensitivity(s float64) types.Option[types.Mode] {
	return func(m types.Mode) {
		if c, ok := m.(interface{ SetSensitivity(float64) }); ok {
			c.SetSensitivity(s)
		}
	}
}

// DirectorWithLogger creates an option to add a logger to a Director.
func DirectorWithLogger(logger ...types.Logger) types.Option[*Director] {
	return func(d *Director) {
		d.ConnectLogger(logger...)
	}
}

// DirectorWithSensor creates an option to add a sensor to a Director.
func DirectorWithSensor(s ...types.Sensor) types.Option[*Director] {
	return func(d *Director) {
		d.ConnectSensor(s...)
	}
}

// DirectorWithComponentMetadata creates an option to set the Director's name
// and ID.
func DirectorWithComponentMetadata(name string, id string) types.Option[*Director] {
	return func(d *Director) {
		d.SetComponentMetadata(name, id)
	}
}

// DirectorWithTuning creates an option to replace the Director's tuning
// profile. It also seeds the default generator built when no explicit
// generator option is given.
func DirectorWithTuning(cfg tuning.Config) types.Option[*Director] {
	return func(d *Director) {
		d.cfg = cfg
	}
}

// DirectorWithGenerator creates an option to install the structure generator.
func DirectorWithGenerator(g types.StructureGenerator) types.Option[*Director] {
	return func(d *Director) {
		d.generator = g
	}
}

// DirectorWithMode creates an option to register a mode factory by name.
func DirectorWithMode(name string, factory ModeFactory) types.Option[*Director] {
	return func(d *Director) {
		d.RegisterMode(name, factory)
	}
}

// DirectorWithSensitivity creates an option to set the sensitivity scalar.
func DirectorWithSensitivity(s float64) types.Option[*Director] {
	return func(d *Director) {
		d.SetSensitivity(s)
	}
}
