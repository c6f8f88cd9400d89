// Package builder is the public facade of the library. It re-exports the
// internal component constructors, options and shared types so applications
// depend on a single import path.
package builder

import "github.com/audioglyph/helix/pkg/internal/types"

// Shared types re-exported from the internal types package.
type (
	ComponentMetadata = types.ComponentMetadata
	Vec3              = types.Vec3
	Logger            = types.Logger
	Sensor            = types.Sensor

	StructureNode      = types.StructureNode
	StructureGenerator = types.StructureGenerator

	BandEnergies     = types.BandEnergies
	FeatureFrame     = types.FeatureFrame
	FeatureExtractor = types.FeatureExtractor
	AudioSource      = types.AudioSource

	RenderPoint = types.RenderPoint
	Deformer    = types.Deformer
	Mode        = types.Mode

	FrameStats = types.FrameStats
	FrameMeter = types.FrameMeter
)

// CloneStructure deep-copies a node slice, including adjacency lists.
func CloneStructure(nodes []StructureNode) []StructureNode {
	return types.CloneStructure(nodes)
}
