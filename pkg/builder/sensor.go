package builder

import (
	"github.com/audioglyph/helix/pkg/internal/sensor"
	"github.com/audioglyph/helix/pkg/internal/types"
)

// NewSensor creates a new Sensor with the provided configuration options.
func NewSensor(options ...types.Option[types.Sensor]) types.Sensor {
	return sensor.NewSensor(options...)
}

// SensorWithLogger adds a logger to the Sensor.
func SensorWithLogger(logger ...types.Logger) types.Option[types.Sensor] {
	return sensor.WithLogger(logger...)
}

// SensorWithComponentMetadata adds component metadata overrides.
func SensorWithComponentMetadata(name string, id string) types.Option[types.Sensor] {
	return sensor.WithComponentMetadata(name, id)
}

// SensorWithOnStructureBuiltFunc registers a callback for the OnStructureBuilt event.
func SensorWithOnStructureBuiltFunc(callback ...func(c ComponentMetadata, nodeCount int, seed string)) types.Option[types.Sensor] {
	return sensor.WithOnStructureBuiltFunc(callback...)
}

// SensorWithOnBassHitFunc registers a callback for the OnBassHit event.
func SensorWithOnBassHitFunc(callback ...func(c ComponentMetadata, strength float64)) types.Option[types.Sensor] {
	return sensor.WithOnBassHitFunc(callback...)
}

// SensorWithOnModeSwitchFunc registers a callback for the OnModeSwitch event.
func SensorWithOnModeSwitchFunc(callback ...func(c ComponentMetadata, from string, to string)) types.Option[types.Sensor] {
	return sensor.WithOnModeSwitchFunc(callback...)
}

// SensorWithOnFrameOverBudgetFunc registers a callback for the OnFrameOverBudget event.
func SensorWithOnFrameOverBudgetFunc(callback ...func(c ComponentMetadata, dtSeconds float64)) types.Option[types.Sensor] {
	return sensor.WithOnFrameOverBudgetFunc(callback...)
}
