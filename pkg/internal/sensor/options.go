// Package sensor options configure Sensor components: loggers, metadata and
// event callbacks.
package sensor

import (
	"github.com/audioglyph/helix/pkg/internal/types"
)

// WithLogger creates an option to add a logger to a Sensor.
func WithLogger(logger ...types.Logger) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.ConnectLogger(logger...)
	}
}

// WithComponentMetadata creates an option to set the Sensor's name and ID.
func WithComponentMetadata(name string, id string) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.SetComponentMetadata(name, id)
	}
}

// WithOnStructureBuiltFunc registers callbacks for the OnStructureBuilt event.
func WithOnStructureBuiltFunc(callback ...func(c types.ComponentMetadata, nodeCount int, seed string)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnStructureBuilt(callback...)
	}
}

// WithOnBassHitFunc registers callbacks for the OnBassHit event.
func WithOnBassHitFunc(callback ...func(c types.ComponentMetadata, strength float64)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnBassHit(callback...)
	}
}

// WithOnModeSwitchFunc registers callbacks for the OnModeSwitch event.
func WithOnModeSwitchFunc(callback ...func(c types.ComponentMetadata, from string, to string)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnModeSwitch(callback...)
	}
}

// WithOnFrameOverBudgetFunc registers callbacks for the OnFrameOverBudget event.
func WithOnFrameOverBudgetFunc(callback ...func(c types.ComponentMetadata, dtSeconds float64)) types.Option[types.Sensor] {
	return func(s types.Sensor) {
		s.RegisterOnFrameOverBudget(callback...)
	}
}
