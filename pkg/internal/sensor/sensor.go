// Package sensor provides callback hooks for pipeline telemetry: structure
// builds, bass transients, mode switches and frame-budget overruns. Sensors
// are attached to components via ConnectSensor; callbacks run inline on the
// invoking goroutine and must not block the frame path.
package sensor

import (
	"sync"

	"github.com/audioglyph/helix/pkg/internal/types"
	"github.com/audioglyph/helix/pkg/internal/utils"
)

// Sensor fans events out to registered callbacks.
type Sensor struct {
	componentMetadata types.ComponentMetadata
	metadataLock      sync.Mutex

	onStructureBuilt  []func(types.ComponentMetadata, int, string)
	onBassHit         []func(types.ComponentMetadata, float64)
	onModeSwitch      []func(types.ComponentMetadata, string, string)
	onFrameOverBudget []func(types.ComponentMetadata, float64)

	callbackLock sync.Mutex
	loggers      []types.Logger
	loggersLock  sync.Mutex
}

// NewSensor constructs a Sensor with optional configuration.
func NewSensor(options ...types.Option[types.Sensor]) types.Sensor {
	s := &Sensor{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "SENSOR",
		},
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}

	return s
}

func (s *Sensor) GetComponentMetadata() types.ComponentMetadata {
	return s.componentMetadata
}

func (s *Sensor) SetComponentMetadata(name string, id string) {
	s.metadataLock.Lock()
	defer s.metadataLock.Unlock()
	s.componentMetadata.Name = name
	if id != "" {
		s.componentMetadata.ID = id
	}
}

// ConnectLogger registers loggers. Nil loggers are ignored.
func (s *Sensor) ConnectLogger(loggers ...types.Logger) {
	s.loggersLock.Lock()
	defer s.loggersLock.Unlock()
	for _, l := range loggers {
		if l != nil {
			s.loggers = append(s.loggers, l)
		}
	}
}

func (s *Sensor) RegisterOnStructureBuilt(callbacks ...func(types.ComponentMetadata, int, string)) {
	s.callbackLock.Lock()
	defer s.callbackLock.Unlock()
	s.onStructureBuilt = append(s.onStructureBuilt, callbacks...)
}

func (s *Sensor) RegisterOnBassHit(callbacks ...func(types.ComponentMetadata, float64)) {
	s.callbackLock.Lock()
	defer s.callbackLock.Unlock()
	s.onBassHit = append(s.onBassHit, callbacks...)
}

func (s *Sensor) RegisterOnModeSwitch(callbacks ...func(types.ComponentMetadata, string, string)) {
	s.callbackLock.Lock()
	defer s.callbackLock.Unlock()
	s.onModeSwitch = append(s.onModeSwitch, callbacks...)
}

func (s *Sensor) RegisterOnFrameOverBudget(callbacks ...func(types.ComponentMetadata, float64)) {
	s.callbackLock.Lock()
	defer s.callbackLock.Unlock()
	s.onFrameOverBudget = append(s.onFrameOverBudget, callbacks...)
}

// InvokeOnStructureBuilt notifies callbacks that a structure of nodeCount
// nodes was generated from the given seed.
func (s *Sensor) InvokeOnStructureBuilt(meta types.ComponentMetadata, nodeCount int, seed string) {
	for _, cb := range s.snapshotStructureBuilt() {
		cb(meta, nodeCount, seed)
	}
}

// InvokeOnBassHit notifies callbacks of a bass transient with the given
// impulse strength.
func (s *Sensor) InvokeOnBassHit(meta types.ComponentMetadata, strength float64) {
	for _, cb := range s.snapshotBassHit() {
		cb(meta, strength)
	}
}

// InvokeOnModeSwitch notifies callbacks of a transition between view modes.
func (s *Sensor) InvokeOnModeSwitch(meta types.ComponentMetadata, from string, to string) {
	for _, cb := range s.snapshotModeSwitch() {
		cb(meta, from, to)
	}
}

// InvokeOnFrameOverBudget notifies callbacks that a frame exceeded its budget.
func (s *Sensor) InvokeOnFrameOverBudget(meta types.ComponentMetadata, dtSeconds float64) {
	for _, cb := range s.snapshotFrameOverBudget() {
		cb(meta, dtSeconds)
	}
}

// Snapshot helpers copy the callback slices so callbacks never run while the
// registration lock is held.

func (s *Sensor) snapshotStructureBuilt() []func(types.ComponentMetadata, int, string) {
	s.callbackLock.Lock()
	defer s.callbackLock.Unlock()
	out := make([]func(types.ComponentMetadata, int, string), len(s.onStructureBuilt))
	copy(out, s.onStructureBuilt)
	return out
}

func (s *Sensor) snapshotBassHit() []func(types.ComponentMetadata, float64) {
	s.callbackLock.Lock()
	defer s.callbackLock.Unlock()
	out := make([]func(types.ComponentMetadata, float64), len(s.onBassHit))
	copy(out, s.onBassHit)
	return out
}

func (s *Sensor) snapshotModeSwitch() []func(types.ComponentMetadata, string, string) {
	s.callbackLock.Lock()
	defer s.callbackLock.Unlock()
	out := make([]func(types.ComponentMetadata, string, string), len(s.onModeSwitch))
	copy(out, s.onModeSwitch)
	return out
}

func (s *Sensor) snapshotFrameOverBudget() []func(types.ComponentMetadata, float64) {
	s.callbackLock.Lock()
	defer s.callbackLock.Unlock()
	out := make([]func(types.ComponentMetadata, float64), len(s.onFrameOverBudget))
	copy(out, s.onFrameOverBudget)
	return out
}
