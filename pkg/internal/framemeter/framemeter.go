// Package framemeter accumulates frame timings from the render loop and
// exposes periodic snapshots enriched with process CPU and memory load.
// Observe is cheap and safe on the frame path; OS queries happen only in
// Snapshot.
package framemeter

import (
	"os"
	"sync"

	"github.com/shirou/gopsutil/process"

	"github.com/audioglyph/helix/pkg/internal/types"
	"github.com/audioglyph/helix/pkg/internal/utils"
)

// defaultFrameBudget is the per-frame duration above which a frame counts as
// over budget, in seconds.
const defaultFrameBudget = 1.0 / 30.0

// Meter implements the frame meter. Safe for concurrent use.
type Meter struct {
	componentMetadata types.ComponentMetadata
	budget            float64

	mu         sync.Mutex
	frames     uint64
	sumSeconds float64
	maxSeconds float64
	overBudget uint64

	proc *process.Process

	loggers     []types.Logger
	loggersLock sync.Mutex
	sensors     []types.Sensor
	sensorLock  sync.Mutex
}

// NewMeter creates a Meter configured with the provided options.
func NewMeter(options ...types.Option[types.FrameMeter]) types.FrameMeter {
	m := &Meter{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "FRAME_METER",
		},
		budget: defaultFrameBudget,
	}
	if proc, err := process.NewProcess(int32(os.Getpid())); err == nil {
		m.proc = proc
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(m)
	}

	return m
}

func (m *Meter) GetComponentMetadata() types.ComponentMetadata {
	return m.componentMetadata
}

func (m *Meter) SetComponentMetadata(name string, id string) {
	m.componentMetadata.Name = name
	if id != "" {
		m.componentMetadata.ID = id
	}
}

// ConnectLogger registers loggers. Nil loggers are ignored.
func (m *Meter) ConnectLogger(loggers ...types.Logger) {
	m.loggersLock.Lock()
	defer m.loggersLock.Unlock()
	for _, l := range loggers {
		if l != nil {
			m.loggers = append(m.loggers, l)
		}
	}
}

// ConnectSensor registers sensors. Nil sensors are ignored.
func (m *Meter) ConnectSensor(sensors ...types.Sensor) {
	m.sensorLock.Lock()
	defer m.sensorLock.Unlock()
	for _, s := range sensors {
		if s != nil {
			m.sensors = append(m.sensors, s)
		}
	}
}

// SetBudget replaces the over-budget threshold, in seconds. Non-positive
// values are ignored.
func (m *Meter) SetBudget(seconds float64) {
	if seconds > 0 {
		m.budget = seconds
	}
}

// Observe records one frame duration in seconds. Frames above the budget are
// counted and reported to attached sensors.
func (m *Meter) Observe(dtSeconds float64) {
	if dtSeconds < 0 {
		dtSeconds = 0
	}

	m.mu.Lock()
	m.frames++
	m.sumSeconds += dtSeconds
	if dtSeconds > m.maxSeconds {
		m.maxSeconds = dtSeconds
	}
	over := dtSeconds > m.budget
	if over {
		m.overBudget++
	}
	m.mu.Unlock()

	if over {
		for _, s := range m.snapshotSensors() {
			s.InvokeOnFrameOverBudget(m.componentMetadata, dtSeconds)
		}
		m.NotifyLoggers(types.DebugLevel, "framemeter: frame over budget",
			"component", m.componentMetadata, "event", "Observe",
			"dt_ms", dtSeconds*1000, "budget_ms", m.budget*1000)
	}
}

// Snapshot returns the accumulated frame statistics together with the
// process CPU and resident-set readings at call time.
func (m *Meter) Snapshot() types.FrameStats {
	m.mu.Lock()
	stats := types.FrameStats{
		Frames:     m.frames,
		MaxMillis:  m.maxSeconds * 1000,
		OverBudget: m.overBudget,
	}
	if m.frames > 0 {
		stats.MeanMillis = m.sumSeconds / float64(m.frames) * 1000
	}
	m.mu.Unlock()

	if m.proc != nil {
		if pct, err := m.proc.CPUPercent(); err == nil {
			stats.CPUPercent = pct
		}
		if mem, err := m.proc.MemoryInfo(); err == nil && mem != nil {
			stats.RSSBytes = mem.RSS
		}
	}
	return stats
}

// Reset clears the accumulated counters. The process handle is kept.
func (m *Meter) Reset() {
	m.mu.Lock()
	m.frames = 0
	m.sumSeconds = 0
	m.maxSeconds = 0
	m.overBudget = 0
	m.mu.Unlock()
}
