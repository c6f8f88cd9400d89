package types

// Sensor provides callback hooks for component telemetry: structure builds,
// transient hits, mode switches and frame-budget overruns. Components accept
// sensors via ConnectSensor and invoke the registered callbacks inline, so
// callbacks must be cheap and must not block the frame path.
type Sensor interface {
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
	ConnectLogger(...Logger)

	RegisterOnStructureBuilt(...func(ComponentMetadata, int, string))
	RegisterOnBassHit(...func(ComponentMetadata, float64))
	RegisterOnModeSwitch(...func(ComponentMetadata, string, string))
	RegisterOnFrameOverBudget(...func(ComponentMetadata, float64))

	InvokeOnStructureBuilt(ComponentMetadata, int, string)
	InvokeOnBassHit(ComponentMetadata, float64)
	InvokeOnModeSwitch(ComponentMetadata, string, string)
	InvokeOnFrameOverBudget(ComponentMetadata, float64)
}
