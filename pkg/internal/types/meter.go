package types

// FrameStats is a point-in-time summary of frame timing and process load.
type FrameStats struct {
	Frames     uint64  // Total frames observed.
	MeanMillis float64 // Rolling mean frame duration in milliseconds.
	MaxMillis  float64 // Worst frame duration in milliseconds since the last reset.
	OverBudget uint64  // Frames that exceeded the configured budget.
	CPUPercent float64 // Process CPU utilization at sample time.
	RSSBytes   uint64  // Process resident set size at sample time.
}

// FrameMeter accumulates per-frame durations and exposes periodic snapshots.
// Observe is safe to call from the frame path; Snapshot may query the OS.
type FrameMeter interface {
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
	ConnectLogger(...Logger)
	ConnectSensor(...Sensor)

	Observe(dtSeconds float64)
	Snapshot() FrameStats
	Reset()
}
