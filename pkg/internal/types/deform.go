package types

// RenderPoint is the per-point mutable geometry record of the macro view.
// Base values are cached at structure-build time and never change afterwards;
// Current, color and ShapeTier are rewritten every frame by the deformer.
type RenderPoint struct {
	ID        int
	Base      Vec3    // Immutable rest position.
	Current   Vec3    // Deformed position for this frame.
	Hue       float64 // Base hue carried over from the source node, in [0,1).
	Amplitude float64 // Local spectral intensity proxy from the source node, in [0,1].
	R         float64 // Red, in [0,1].
	G         float64 // Green, in [0,1].
	B         float64 // Blue, in [0,1].
	ShapeTier float64 // Continuous archetype selector, in [0,2].
}

// Deformer recomputes point positions, colors and shape tiers every frame
// from the immutable base geometry plus the current FeatureFrame.
type Deformer interface {
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
	ConnectLogger(...Logger)

	// SetSeed re-derives the seed-chosen deformation parameters (the spiral
	// lane count) and invalidates the smoothing caches. Called when a new
	// structure is installed.
	SetSeed(seed string)

	// Step advances all points by one frame. now is the absolute animation
	// clock in seconds, dt the measured inter-frame delta in seconds.
	// Smoothing caches are sized to len(points) and reset whenever the
	// point count changes.
	Step(points []RenderPoint, frame FeatureFrame, sensitivity, now, dt float64)

	// NeutralSpiral produces fallback geometry of the requested size when no
	// structure or audio exists, with all shape tiers set to 1.
	NeutralSpiral(count int) []RenderPoint
}
