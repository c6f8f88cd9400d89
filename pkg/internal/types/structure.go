package types

// StructureNode is one node of the deterministic structure ("DNA") derived from
// an audio buffer. Nodes are created once per audio load and are immutable
// afterwards; handing a structure between modes copies the node slice.
type StructureNode struct {
	ID                int     // Index of the node within the structure.
	Position          Vec3    // Static position assigned at generation time.
	Amplitude         float64 // Peak absolute amplitude of the node's sample slice, in [0,1].
	DominantFreqRatio float64 // Zero-crossing rate of the slice; a structural feature, not a spectral estimate.
	Hue               float64 // Base hue in [0,1).
	Connections       []int   // Ordered directed adjacency list (node IDs).
}

// StructureGenerator derives a deterministic node set from decoded audio.
// Identical (samples, duration, seed) inputs must yield bit-identical output.
type StructureGenerator interface {
	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
	ConnectLogger(...Logger)
	ConnectSensor(...Sensor)

	// Generate builds the node set. samples is the first audio channel,
	// duration is in seconds and seed is the audio content hash (or a
	// fallback literal when audio is absent).
	Generate(samples []float64, duration float64, seed string) []StructureNode
}

// CloneStructure deep-copies a node slice, including adjacency lists, so that
// an exported structure shares no memory with the exporter.
func CloneStructure(nodes []StructureNode) []StructureNode {
	if nodes == nil {
		return nil
	}
	out := make([]StructureNode, len(nodes))
	copy(out, nodes)
	for i := range out {
		if nodes[i].Connections != nil {
			out[i].Connections = make([]int, len(nodes[i].Connections))
			copy(out[i].Connections, nodes[i].Connections)
		}
	}
	return out
}
