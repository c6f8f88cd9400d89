// Package structure derives the deterministic node set ("DNA") from decoded
// audio. Every arithmetic step and every random draw is a function of the
// samples, the duration and the seed only, so rebuilding from the same audio
// yields a bit-identical structure across sessions, reloads and mode switches.
package structure

import (
	"math"
	"sync"

	"github.com/audioglyph/helix/pkg/internal/randstream"
	"github.com/audioglyph/helix/pkg/internal/tuning"
	"github.com/audioglyph/helix/pkg/internal/types"
	"github.com/audioglyph/helix/pkg/internal/utils"
)

// Generator builds StructureNode sequences from decoded first-channel samples.
type Generator struct {
	componentMetadata types.ComponentMetadata
	cfg               tuning.Config

	loggers     []types.Logger
	loggersLock sync.Mutex
	sensors     []types.Sensor
	sensorLock  sync.Mutex
}

// NewGenerator creates a Generator configured with the provided options.
func NewGenerator(options ...types.Option[types.StructureGenerator]) types.StructureGenerator {
	g := &Generator{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "STRUCTURE_GENERATOR",
		},
		cfg: tuning.Default(),
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}

	return g
}

func (g *Generator) GetComponentMetadata() types.ComponentMetadata {
	return g.componentMetadata
}

func (g *Generator) SetComponentMetadata(name string, id string) {
	g.componentMetadata.Name = name
	if id != "" {
		g.componentMetadata.ID = id
	}
}

// ConnectLogger registers loggers. Nil loggers are ignored.
func (g *Generator) ConnectLogger(loggers ...types.Logger) {
	g.loggersLock.Lock()
	defer g.loggersLock.Unlock()
	for _, l := range loggers {
		if l != nil {
			g.loggers = append(g.loggers, l)
		}
	}
}

// ConnectSensor registers sensors. Nil sensors are ignored.
func (g *Generator) ConnectSensor(sensors ...types.Sensor) {
	g.sensorLock.Lock()
	defer g.sensorLock.Unlock()
	for _, s := range sensors {
		if s != nil {
			g.sensors = append(g.sensors, s)
		}
	}
}

// SetTuning replaces the tuning profile. Configuration time only.
func (g *Generator) SetTuning(cfg tuning.Config) {
	g.cfg = cfg
}

// NodeCount returns the node count for an audio duration: denser for longer
// audio, bounded both ways.
func (g *Generator) NodeCount(duration float64) int {
	count := int(duration * g.cfg.Structure.NodesPerSecond)
	if count < g.cfg.Structure.MinNodes {
		count = g.cfg.Structure.MinNodes
	}
	if count > g.cfg.Structure.MaxNodes {
		count = g.cfg.Structure.MaxNodes
	}
	return count
}

// Generate builds the node set from first-channel samples, the duration in
// seconds and a seed string (normally the audio content hash).
func (g *Generator) Generate(samples []float64, duration float64, seed string) []types.StructureNode {
	sc := g.cfg.Structure
	count := g.NodeCount(duration)
	rng := randstream.New(seed)

	sliceLen := (len(samples) + count - 1) / count
	if sliceLen < 1 {
		sliceLen = 1
	}

	nodes := make([]types.StructureNode, count)
	for i := 0; i < count; i++ {
		lo := i * sliceLen
		hi := lo + sliceLen
		if lo > len(samples) {
			lo = len(samples)
		}
		if hi > len(samples) {
			hi = len(samples)
		}
		slice := samples[lo:hi]

		amp := peakAmplitude(slice)
		zcr := zeroCrossingRate(slice)

		t := float64(i) / float64(count)
		pos := types.Vec3{
			X: (t - 0.5) * sc.SpreadX,
			Y: (amp - 0.5) * sc.AmplitudeHeight,
			Z: math.Sin(zcr*4*math.Pi+t*utils.Tau) * sc.FreqDepth * 0.5,
		}
		pos.X += rng.Range(-sc.Jitter, sc.Jitter)
		pos.Y += rng.Range(-sc.Jitter, sc.Jitter)
		pos.Z += rng.Range(-sc.Jitter, sc.Jitter)

		hue := math.Mod(t*0.66+amp*0.25, 1.0)

		nodes[i] = types.StructureNode{
			ID:                i,
			Position:          pos,
			Amplitude:         amp,
			DominantFreqRatio: zcr,
			Hue:               hue,
		}
	}

	// Pairwise connection pass. O(count^2) with count <= MaxNodes, cheap.
	for i := range nodes {
		for j := range nodes {
			if i == j {
				continue
			}
			d := nodes[i].Position.Sub(nodes[j].Position)
			dist := math.Sqrt(d.X*d.X + d.Y*d.Y + d.Z*d.Z)
			if dist < sc.EdgeThreshold && rng.Next() < sc.EdgeProbability {
				nodes[i].Connections = append(nodes[i].Connections, j)
			}
		}
	}

	g.NotifyLoggers(types.InfoLevel, "Structure generated",
		"component", g.componentMetadata,
		"event", "Generate",
		"result", "SUCCESS",
		"nodeCount", count,
		"sampleCount", len(samples),
		"seed", seed,
	)
	for _, s := range g.snapshotSensors() {
		s.InvokeOnStructureBuilt(g.componentMetadata, count, seed)
	}

	return nodes
}

// peakAmplitude returns the maximum absolute sample value of a slice.
func peakAmplitude(slice []float64) float64 {
	peak := 0.0
	for _, s := range slice {
		if a := math.Abs(s); a > peak {
			peak = a
		}
	}
	if peak > 1 {
		peak = 1
	}
	return peak
}

// zeroCrossingRate counts sign changes between consecutive samples, divided
// by the slice length. This is a structural feature standing in for dominant
// frequency; it is deliberately not a spectral estimate.
func zeroCrossingRate(slice []float64) float64 {
	if len(slice) == 0 {
		return 0
	}
	changes := 0
	for k := 0; k+1 < len(slice); k++ {
		if (slice[k] < 0) != (slice[k+1] < 0) {
			changes++
		}
	}
	return float64(changes) / float64(len(slice))
}
