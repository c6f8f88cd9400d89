// Package modes holds the interchangeable visualization views over the shared
// structure (the connected-graph micro view and the point-cloud macro view)
// and the Director that owns audio loading, structure derivation and mode
// switching. Exactly one mode is live at a time; the renderer's frame loop
// drives it through Advance.
package modes

import (
	"math"
	"sync"

	"github.com/audioglyph/helix/pkg/internal/features"
	"github.com/audioglyph/helix/pkg/internal/randstream"
	"github.com/audioglyph/helix/pkg/internal/tuning"
	"github.com/audioglyph/helix/pkg/internal/types"
	"github.com/audioglyph/helix/pkg/internal/utils"
)

// snapshotBins caps the frequency snapshot buffer shared by the modes.
const snapshotBins = 1024

// MicroMode renders the structure as a connected graph: node positions pulse
// radially with bass transients and shiver with the treble envelope, while
// the adjacency list stays fixed. Not safe for concurrent use.
type MicroMode struct {
	componentMetadata types.ComponentMetadata
	cfg               tuning.Config

	extractor   types.FeatureExtractor
	source      types.AudioSource
	sensitivity float64
	seed        string

	nodes     []types.StructureNode
	fallback  bool
	positions []types.Vec3
	edges     [][2]int
	jitter    []types.Vec3
	bins      []byte

	disposed bool

	loggers     []types.Logger
	loggersLock sync.Mutex
}

// NewMicroMode creates a MicroMode configured with the provided options.
func NewMicroMode(options ...types.Option[types.Mode]) types.Mode {
	m := &MicroMode{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "MICRO_MODE",
		},
		cfg:         tuning.Default(),
		sensitivity: 0.5,
		bins:        make([]byte, snapshotBins),
	}
	m.extractor = features.NewExtractor(features.WithTuning(m.cfg))

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(m)
	}

	return m
}

func (m *MicroMode) GetComponentMetadata() types.ComponentMetadata {
	return m.componentMetadata
}

func (m *MicroMode) SetComponentMetadata(name string, id string) {
	m.componentMetadata.Name = name
	if id != "" {
		m.componentMetadata.ID = id
	}
}

// ConnectLogger registers loggers. Nil loggers are ignored.
func (m *MicroMode) ConnectLogger(loggers ...types.Logger) {
	m.loggersLock.Lock()
	defer m.loggersLock.Unlock()
	for _, l := range loggers {
		if l != nil {
			m.loggers = append(m.loggers, l)
		}
	}
}

// SetTuning replaces the tuning profile on the mode and its extractor. The
// extractor instance is kept, so connected loggers and smoothing state survive.
// Configuration time only.
func (m *MicroMode) SetTuning(cfg tuning.Config) {
	m.cfg = cfg
	if e, ok := m.extractor.(interface{ SetTuning(tuning.Config) }); ok {
		e.SetTuning(cfg)
	}
}

// SetSource installs the decoded audio collaborator. A nil source mutes the
// feature path without touching the held structure.
func (m *MicroMode) SetSource(src types.AudioSource) {
	m.source = src
}

// SetSeed installs the structure seed used for per-node jitter phases.
func (m *MicroMode) SetSeed(seed string) {
	m.seed = seed
}

// SetSensitivity sets the UI sensitivity scalar in [0,1].
func (m *MicroMode) SetSensitivity(s float64) {
	m.sensitivity = utils.Clamp(s, 0, 1)
}

// OnNewAudio installs a structure. Passing nil (or an empty slice) installs a
// neutral chain spiral so the view is never blank.
func (m *MicroMode) OnNewAudio(nodes []types.StructureNode) {
	m.extractor.Reset()
	if len(nodes) == 0 {
		m.nodes = m.fallbackNodes()
		m.fallback = true
	} else {
		m.nodes = types.CloneStructure(nodes)
		m.fallback = false
	}
	m.rebuildDerived()

	m.NotifyLoggers(types.InfoLevel, "micro: structure installed",
		"component", m.componentMetadata, "event", "OnNewAudio",
		"nodes", len(m.nodes), "fallback", m.fallback)
}

// ExportStructure returns a copy of the held structure, or nil when the mode
// only holds fallback geometry.
func (m *MicroMode) ExportStructure() []types.StructureNode {
	if m.fallback {
		return nil
	}
	return types.CloneStructure(m.nodes)
}

// Advance runs one frame: extract features from the live snapshot and rewrite
// the display positions.
func (m *MicroMode) Advance(now, dt float64) {
	if m.disposed || len(m.nodes) == 0 {
		return
	}
	frame := m.extractor.Update(m.snapshot(), m.sensitivity, dt)

	pulse := 1 + m.cfg.Micro.BassPulseGain*frame.BassHit
	shiver := m.cfg.Micro.TrebleJitterGain * frame.TrebleEnvelope
	for i := range m.nodes {
		p := m.nodes[i].Position.Scale(pulse)
		if shiver > 0 {
			ph := m.jitter[i]
			p = p.Add(types.Vec3{
				X: math.Sin(now*13+ph.X) * shiver,
				Y: math.Sin(now*11+ph.Y) * shiver,
				Z: math.Sin(now*17+ph.Z) * shiver,
			})
		}
		m.positions[i] = p
	}
}

// Positions returns the per-node display positions for the current frame.
// The slice is reused across frames; callers must not retain it.
func (m *MicroMode) Positions() []types.Vec3 {
	return m.positions
}

// Edges returns the directed edge list as (from, to) node index pairs. Built
// once per structure install.
func (m *MicroMode) Edges() [][2]int {
	return m.edges
}

// Dispose releases derived geometry. Idempotent.
func (m *MicroMode) Dispose() {
	if m.disposed {
		return
	}
	m.disposed = true
	m.positions = nil
	m.edges = nil
	m.jitter = nil
	m.NotifyLoggers(types.InfoLevel, "micro: disposed",
		"component", m.componentMetadata, "event", "Dispose")
}

func (m *MicroMode) snapshot() []byte {
	if m.source == nil {
		return nil
	}
	n := m.source.FrequencySnapshot(m.bins)
	if n < 0 {
		n = 0
	}
	if n > len(m.bins) {
		n = len(m.bins)
	}
	return m.bins[:n]
}

// rebuildDerived sizes the per-node position, edge and jitter-phase buffers
// for the installed structure.
func (m *MicroMode) rebuildDerived() {
	m.positions = make([]types.Vec3, len(m.nodes))
	m.jitter = make([]types.Vec3, len(m.nodes))
	m.edges = m.edges[:0]

	rng := randstream.New(m.seed + ":jitter")
	for i, node := range m.nodes {
		m.positions[i] = node.Position
		m.jitter[i] = types.Vec3{
			X: rng.Range(0, utils.Tau),
			Y: rng.Range(0, utils.Tau),
			Z: rng.Range(0, utils.Tau),
		}
		for _, to := range node.Connections {
			if to >= 0 && to < len(m.nodes) {
				m.edges = append(m.edges, [2]int{i, to})
			}
		}
	}
}

// fallbackNodes builds the neutral chain spiral shown when no structure
// exists.
func (m *MicroMode) fallbackNodes() []types.StructureNode {
	count := m.cfg.Structure.MinNodes
	nodes := make([]types.StructureNode, count)
	for i := range nodes {
		t := float64(i) / float64(count)
		angle := t * utils.Tau * 3
		r := 2.0 + t*1.5
		nodes[i] = types.StructureNode{
			ID:                i,
			Position:          types.Vec3{X: r * math.Cos(angle), Y: (t - 0.5) * 3, Z: r * math.Sin(angle)},
			Amplitude:         0.5,
			DominantFreqRatio: 0.5,
			Hue:               t,
		}
		if i+1 < count {
			nodes[i].Connections = []int{i + 1}
		}
	}
	return nodes
}
