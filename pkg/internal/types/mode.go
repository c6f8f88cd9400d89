package types

// Mode is one of the interchangeable visualization views over the shared
// structure. Exactly one mode instance is live at a time; Advance is driven by
// the embedding renderer's frame loop and must stay free of scheduling
// primitives so it can be exercised directly with synthetic deltas.
type Mode interface {
	GetComponentMetadata() ComponentMetadata

	// OnNewAudio installs a freshly generated (or imported) structure.
	// Passing nil installs the neutral fallback geometry.
	OnNewAudio(nodes []StructureNode)

	// ExportStructure returns a copy of the held structure for handoff to the
	// next mode, or nil if the mode holds none. It must be callable
	// synchronously before Dispose.
	ExportStructure() []StructureNode

	// Advance runs one frame of feature extraction and deformation. now is
	// the animation clock in seconds, dt the measured frame delta in seconds.
	Advance(now, dt float64)

	// Dispose stops the mode and releases derived geometry. Idempotent; no
	// Advance may run after Dispose returns.
	Dispose()
}
