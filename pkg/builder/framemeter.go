package builder

import (
	"github.com/audioglyph/helix/pkg/internal/framemeter"
	"github.com/audioglyph/helix/pkg/internal/types"
)

// NewFrameMeter creates a new frame meter with the provided configuration
// options.
func NewFrameMeter(options ...types.Option[types.FrameMeter]) types.FrameMeter {
	return framemeter.NewMeter(options...)
}

// FrameMeterWithLogger adds one or more loggers to the meter.
func FrameMeterWithLogger(logger ...types.Logger) types.Option[types.FrameMeter] {
	return framemeter.WithLogger(logger...)
}

// FrameMeterWithSensor adds one or more sensors to the meter.
func FrameMeterWithSensor(s ...types.Sensor) types.Option[types.FrameMeter] {
	return framemeter.WithSensor(s...)
}

// FrameMeterWithComponentMetadata adds component metadata overrides.
func FrameMeterWithComponentMetadata(name string, id string) types.Option[types.FrameMeter] {
	return framemeter.WithComponentMetadata(name, id)
}

// FrameMeterWithBudget sets the over-budget frame threshold in seconds.
func FrameMeterWithBudget(seconds float64) types.Option[types.FrameMeter] {
	return framemeter.WithBudget(seconds)
}
