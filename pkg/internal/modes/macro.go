package modes

import (
	"sync"

	"github.com/audioglyph/helix/pkg/internal/deform"
	"github.com/audioglyph/helix/pkg/internal/features"
	"github.com/audioglyph/helix/pkg/internal/randstream"
	"github.com/audioglyph/helix/pkg/internal/tuning"
	"github.com/audioglyph/helix/pkg/internal/types"
	"github.com/audioglyph/helix/pkg/internal/utils"
)

// MacroMode renders the structure as a deformed point cloud: every node is
// expanded into a seeded cluster of render points, and the deformation engine
// rewrites the cloud each frame. Not safe for concurrent use.
type MacroMode struct {
	componentMetadata types.ComponentMetadata
	cfg               tuning.Config

	extractor   types.FeatureExtractor
	deformer    types.Deformer
	source      types.AudioSource
	sensitivity float64
	seed        string

	nodes    []types.StructureNode
	fallback bool
	points   []types.RenderPoint
	bins     []byte

	disposed bool

	loggers     []types.Logger
	loggersLock sync.Mutex
}

// NewMacroMode creates a MacroMode configured with the provided options.
func NewMacroMode(options ...types.Option[types.Mode]) types.Mode {
	m := &MacroMode{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "MACRO_MODE",
		},
		cfg:         tuning.Default(),
		sensitivity: 0.5,
		bins:        make([]byte, snapshotBins),
	}
	m.extractor = features.NewExtractor(features.WithTuning(m.cfg))
	m.deformer = deform.NewEngine(deform.WithTuning(m.cfg))

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(m)
	}

	return m
}

func (m *MacroMode) GetComponentMetadata() types.ComponentMetadata {
	return m.componentMetadata
}

func (m *MacroMode) SetComponentMetadata(name string, id string) {
	m.componentMetadata.Name = name
	if id != "" {
		m.componentMetadata.ID = id
	}
}

// ConnectLogger registers loggers on the mode and its deformation engine.
// Nil loggers are ignored.
func (m *MacroMode) ConnectLogger(loggers ...types.Logger) {
	m.loggersLock.Lock()
	for _, l := range loggers {
		if l != nil {
			m.loggers = append(m.loggers, l)
		}
	}
	m.loggersLock.Unlock()
	m.deformer.ConnectLogger(loggers...)
}

// SetTuning replaces the tuning profile on the mode and its collaborators.
// The instances are kept, so connected loggers and the installed seed survive.
// Configuration time only.
func (m *MacroMode) SetTuning(cfg tuning.Config) {
	m.cfg = cfg
	if e, ok := m.extractor.(interface{ SetTuning(tuning.Config) }); ok {
		e.SetTuning(cfg)
	}
	if d, ok := m.deformer.(interface{ SetTuning(tuning.Config) }); ok {
		d.SetTuning(cfg)
	}
}

// SetSource installs the decoded audio collaborator.
func (m *MacroMode) SetSource(src types.AudioSource) {
	m.source = src
}

// SetSeed installs the structure seed; the deformation engine re-derives its
// seed-chosen lane count from it.
func (m *MacroMode) SetSeed(seed string) {
	m.seed = seed
	m.deformer.SetSeed(seed)
}

// SetSensitivity sets the UI sensitivity scalar in [0,1].
func (m *MacroMode) SetSensitivity(s float64) {
	m.sensitivity = utils.Clamp(s, 0, 1)
}

// OnNewAudio installs a structure and expands it into the point cloud.
// Passing nil (or an empty slice) installs the neutral spiral.
func (m *MacroMode) OnNewAudio(nodes []types.StructureNode) {
	m.extractor.Reset()
	// Smoothing state never carries across structures, even same-sized ones.
	if d, ok := m.deformer.(interface{ ResetSmoothing() }); ok {
		d.ResetSmoothing()
	}
	if len(nodes) == 0 {
		m.nodes = nil
		m.fallback = true
		m.points = m.deformer.NeutralSpiral(m.cfg.Structure.MinNodes * m.cfg.Macro.PointsPerNode)
	} else {
		m.nodes = types.CloneStructure(nodes)
		m.fallback = false
		m.points = m.expand(m.nodes)
	}

	m.NotifyLoggers(types.InfoLevel, "macro: structure installed",
		"component", m.componentMetadata, "event", "OnNewAudio",
		"nodes", len(m.nodes), "points", len(m.points), "fallback", m.fallback)
}

// ExportStructure returns a copy of the held structure, or nil when the mode
// only holds fallback geometry.
func (m *MacroMode) ExportStructure() []types.StructureNode {
	if m.fallback {
		return nil
	}
	return types.CloneStructure(m.nodes)
}

// Advance runs one frame of feature extraction and deformation.
func (m *MacroMode) Advance(now, dt float64) {
	if m.disposed || len(m.points) == 0 {
		return
	}
	frame := m.extractor.Update(m.snapshot(), m.sensitivity, dt)
	m.deformer.Step(m.points, frame, m.sensitivity, now, dt)
}

// Points returns the render points for the current frame. The slice is
// rewritten in place by Advance; callers must not retain it across frames.
func (m *MacroMode) Points() []types.RenderPoint {
	return m.points
}

// Dispose releases the point cloud. Idempotent.
func (m *MacroMode) Dispose() {
	if m.disposed {
		return
	}
	m.disposed = true
	m.points = nil
	m.NotifyLoggers(types.InfoLevel, "macro: disposed",
		"component", m.componentMetadata, "event", "Dispose")
}

func (m *MacroMode) snapshot() []byte {
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

// expand turns every node into a seeded cluster of render points around the
// node's position. Identical (structure, seed) inputs yield an identical
// cloud.
func (m *MacroMode) expand(nodes []types.StructureNode) []types.RenderPoint {
	ppn := m.cfg.Macro.PointsPerNode
	if ppn < 1 {
		ppn = 1
	}
	spread := m.cfg.Macro.ClusterSpread
	rng := randstream.New(m.seed + ":cloud")

	points := make([]types.RenderPoint, 0, len(nodes)*ppn)
	for _, node := range nodes {
		for j := 0; j < ppn; j++ {
			offset := types.Vec3{
				X: rng.Range(-spread, spread),
				Y: rng.Range(-spread, spread),
				Z: rng.Range(-spread, spread),
			}
			points = append(points, types.RenderPoint{
				ID:        len(points),
				Base:      node.Position.Add(offset),
				Current:   node.Position.Add(offset),
				Hue:       node.Hue,
				Amplitude: node.Amplitude,
			})
		}
	}
	return points
}
