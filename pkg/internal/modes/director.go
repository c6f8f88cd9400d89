package modes

import (
	"errors"
	"fmt"
	"sync"

	"github.com/audioglyph/helix/pkg/internal/contenthash"
	"github.com/audioglyph/helix/pkg/internal/structure"
	"github.com/audioglyph/helix/pkg/internal/tuning"
	"github.com/audioglyph/helix/pkg/internal/types"
	"github.com/audioglyph/helix/pkg/internal/utils"
)

// ErrNoAudio is returned by LoadAudio when the source is absent; the prior
// structure stays installed.
var ErrNoAudio = errors.New("modes: no audio source")

// ErrUnknownMode is returned by SwitchMode for an unregistered mode name.
var ErrUnknownMode = errors.New("modes: unknown mode")

// ModeFactory builds a fresh mode instance. Switching modes always constructs
// a new instance; disposed modes are never revived.
type ModeFactory func() types.Mode

// Director owns the audio-to-structure derivation and the live mode. Loading
// audio hashes the decoded samples, derives the structure and hands it to the
// mode; switching modes exports the structure from the outgoing mode
// synchronously, disposes it and installs the export into the incoming one.
// Not safe for concurrent use; the frame loop owns it.
type Director struct {
	componentMetadata types.ComponentMetadata
	cfg               tuning.Config

	generator   types.StructureGenerator
	factories   map[string]ModeFactory
	source      types.AudioSource
	sensitivity float64

	current     types.Mode
	currentName string
	structure   []types.StructureNode
	seed        string

	loggers     []types.Logger
	loggersLock sync.Mutex
	sensors     []types.Sensor
	sensorLock  sync.Mutex
}

// NewDirector creates a Director configured with the provided options. With
// no explicit generator option, a default structure generator sharing the
// Director's tuning is built.
func NewDirector(options ...types.Option[*Director]) *Director {
	d := &Director{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "DIRECTOR",
		},
		cfg:         tuning.Default(),
		factories:   make(map[string]ModeFactory),
		sensitivity: 0.5,
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(d)
	}

	if d.generator == nil {
		d.generator = structure.NewGenerator(structure.WithTuning(d.cfg))
	}

	return d
}

func (d *Director) GetComponentMetadata() types.ComponentMetadata {
	return d.componentMetadata
}

func (d *Director) SetComponentMetadata(name string, id string) {
	d.componentMetadata.Name = name
	if id != "" {
		d.componentMetadata.ID = id
	}
}

// ConnectLogger registers loggers. Nil loggers are ignored.
func (d *Director) ConnectLogger(loggers ...types.Logger) {
	d.loggersLock.Lock()
	defer d.loggersLock.Unlock()
	for _, l := range loggers {
		if l != nil {
			d.loggers = append(d.loggers, l)
		}
	}
}

// ConnectSensor registers sensors. Nil sensors are ignored.
func (d *Director) ConnectSensor(sensors ...types.Sensor) {
	d.sensorLock.Lock()
	defer d.sensorLock.Unlock()
	for _, s := range sensors {
		if s != nil {
			d.sensors = append(d.sensors, s)
		}
	}
}

// RegisterMode binds a mode name to its factory. Re-registering a name
// replaces the factory; the live mode is unaffected.
func (d *Director) RegisterMode(name string, factory ModeFactory) {
	if factory == nil {
		return
	}
	d.factories[name] = factory
}

// SetSensitivity sets the UI sensitivity scalar in [0,1] and forwards it to
// the live mode.
func (d *Director) SetSensitivity(s float64) {
	d.sensitivity = utils.Clamp(s, 0, 1)
	if m, ok := d.current.(interface{ SetSensitivity(float64) }); ok {
		m.SetSensitivity(d.sensitivity)
	}
}

// CurrentMode returns the live mode instance, or nil before the first switch.
func (d *Director) CurrentMode() types.Mode {
	return d.current
}

// CurrentModeName returns the registered name of the live mode.
func (d *Director) CurrentModeName() string {
	return d.currentName
}

// Structure returns a copy of the held structure, or nil when none exists.
func (d *Director) Structure() []types.StructureNode {
	return types.CloneStructure(d.structure)
}

// Seed returns the content hash of the loaded audio, or "" before the first
// successful load.
func (d *Director) Seed() string {
	return d.seed
}

// LoadAudio hashes the decoded samples, derives the structure and installs it
// into the live mode. A nil source is a decode failure: the error is returned
// and the previously held structure remains installed unchanged. A source with
// no decoded samples installs the neutral fallback instead of a structure.
func (d *Director) LoadAudio(src types.AudioSource) error {
	if src == nil {
		d.NotifyLoggers(types.WarnLevel, "director: audio load rejected",
			"component", d.componentMetadata, "event", "LoadAudio", "error", ErrNoAudio)
		return ErrNoAudio
	}

	samples := src.ChannelData()
	seed := contenthash.Sum(samples)

	// Empty decoded audio never produces a structure: the mode degenerates to
	// its neutral fallback geometry and exports nothing.
	var nodes []types.StructureNode
	if len(samples) > 0 {
		nodes = d.generator.Generate(samples, src.Duration(), seed)
	} else {
		d.NotifyLoggers(types.WarnLevel, "director: decoded audio is empty, neutral fallback installed",
			"component", d.componentMetadata, "event", "LoadAudio", "seed", seed)
	}

	d.source = src
	d.seed = seed
	d.structure = nodes
	d.installInto(d.current)

	d.NotifyLoggers(types.InfoLevel, "director: audio loaded",
		"component", d.componentMetadata, "event", "LoadAudio",
		"seed", seed, "nodes", len(nodes), "duration", src.Duration())
	return nil
}

// SwitchMode replaces the live mode with a freshly built instance of the
// named one. The outgoing mode's structure is exported synchronously before
// it is disposed, then handed to the incoming mode; when neither an export
// nor a held structure exists the incoming mode receives nil and falls back
// to neutral geometry.
func (d *Director) SwitchMode(name string) error {
	factory, ok := d.factories[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownMode, name)
	}

	var exported []types.StructureNode
	prevName := d.currentName
	if d.current != nil {
		exported = d.current.ExportStructure()
		d.current.Dispose()
	}
	if exported == nil {
		exported = types.CloneStructure(d.structure)
	}

	next := factory()
	d.current = next
	d.currentName = name
	d.installIntoWith(next, exported)

	for _, s := range d.snapshotSensors() {
		s.InvokeOnModeSwitch(d.componentMetadata, prevName, name)
	}
	d.NotifyLoggers(types.InfoLevel, "director: mode switched",
		"component", d.componentMetadata, "event", "SwitchMode",
		"from", prevName, "to", name)
	return nil
}

// Advance runs one frame of the live mode. A Director with no live mode is a
// no-op.
func (d *Director) Advance(now, dt float64) {
	if d.current != nil {
		d.current.Advance(now, dt)
	}
}

// Dispose disposes the live mode. Idempotent.
func (d *Director) Dispose() {
	if d.current != nil {
		d.current.Dispose()
		d.current = nil
		d.currentName = ""
	}
}

// installInto pushes the held source, seed, sensitivity and structure into a
// mode.
func (d *Director) installInto(m types.Mode) {
	d.installIntoWith(m, types.CloneStructure(d.structure))
}

func (d *Director) installIntoWith(m types.Mode, nodes []types.StructureNode) {
	if m == nil {
		return
	}
	if s, ok := m.(interface{ SetSource(types.AudioSource) }); ok {
		s.SetSource(d.source)
	}
	if s, ok := m.(interface{ SetSeed(string) }); ok {
		s.SetSeed(d.seed)
	}
	if s, ok := m.(interface{ SetSensitivity(float64) }); ok {
		s.SetSensitivity(d.sensitivity)
	}
	m.OnNewAudio(nodes)
}
