package framemeter

import "github.com/audioglyph/helix/pkg/internal/types"

// WithLogger creates an option to add a logger to a Meter.
func WithLogger(logger ...types.Logger) types.Option[types.FrameMeter] {
	return func(m types.FrameMeter) {
		m.ConnectLogger(logger...)
	}
}

// WithSensor creates an option to add a sensor to a Meter.
func WithSensor(s ...types.Sensor) types.Option[types.FrameMeter] {
	return func(m types.FrameMeter) {
		m.ConnectSensor(s...)
	}
}

// WithComponentMetadata creates an option to set the Meter's name and ID.
func WithComponentMetadata(name string, id string) types.Option[types.FrameMeter] {
	return func(m types.FrameMeter) {
		m.SetComponentMetadata(name, id)
	}
}

// WithBudget creates an option to set the over-budget frame threshold in
// seconds.
func WithBudget(seconds float64) types.Option[types.FrameMeter] {
	return func(m types.FrameMeter) {
		if meter, ok := m.(*Meter); ok {
			meter.SetBudget(seconds)
		}
	}
}
