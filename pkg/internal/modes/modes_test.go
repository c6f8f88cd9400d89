package modes_test

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/audioglyph/helix/pkg/internal/contenthash"
	"github.com/audioglyph/helix/pkg/internal/modes"
	"github.com/audioglyph/helix/pkg/internal/sensor"
	"github.com/audioglyph/helix/pkg/internal/tuning"
	"github.com/audioglyph/helix/pkg/internal/types"
)

const frameDelta = 1.0 / 60.0

var (
	_ types.Mode = (*modes.MicroMode)(nil)
	_ types.Mode = (*modes.MacroMode)(nil)
)

type fakeSource struct {
	samples  []float64
	duration float64
	bins     []byte
}

func (f *fakeSource) FrequencySnapshot(dst []byte) int { return copy(dst, f.bins) }
func (f *fakeSource) ChannelData() []float64           { return f.samples }
func (f *fakeSource) Duration() float64                { return f.duration }

func sineSource(n int, duration float64, level byte) *fakeSource {
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = 0.8 * math.Sin(float64(i)*0.037)
	}
	bins := make([]byte, 256)
	for i := range bins {
		bins[i] = level
	}
	return &fakeSource{samples: samples, duration: duration, bins: bins}
}

// recordingLogger captures log messages so tests can assert which components
// still reach a connected logger.
type recordingLogger struct {
	mu       sync.Mutex
	messages []string
}

func (l *recordingLogger) record(msg string) {
	l.mu.Lock()
	l.messages = append(l.messages, msg)
	l.mu.Unlock()
}

func (l *recordingLogger) has(msg string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, m := range l.messages {
		if m == msg {
			return true
		}
	}
	return false
}

func (l *recordingLogger) GetLevel() types.LogLevel               { return types.DebugLevel }
func (l *recordingLogger) SetLevel(types.LogLevel)                {}
func (l *recordingLogger) Debug(msg string, _ ...interface{})     { l.record(msg) }
func (l *recordingLogger) Info(msg string, _ ...interface{})      { l.record(msg) }
func (l *recordingLogger) Warn(msg string, _ ...interface{})      { l.record(msg) }
func (l *recordingLogger) Error(msg string, _ ...interface{})     { l.record(msg) }
func (l *recordingLogger) DPanic(msg string, _ ...interface{})    { l.record(msg) }
func (l *recordingLogger) Panic(msg string, _ ...interface{})     { l.record(msg) }
func (l *recordingLogger) Fatal(msg string, _ ...interface{})     { l.record(msg) }
func (l *recordingLogger) Flush() error                           { return nil }
func (l *recordingLogger) AddSink(string, types.SinkConfig) error { return nil }
func (l *recordingLogger) RemoveSink(string) error                { return nil }
func (l *recordingLogger) ListSinks() ([]string, error)           { return nil, nil }

func chainNodes() []types.StructureNode {
	return []types.StructureNode{
		{ID: 0, Position: types.Vec3{X: 2}, Amplitude: 0.5, Hue: 0.1, Connections: []int{1}},
		{ID: 1, Position: types.Vec3{Y: 2}, Amplitude: 0.7, Hue: 0.4},
	}
}

func newDirector(opts ...types.Option[*modes.Director]) *modes.Director {
	base := []types.Option[*modes.Director]{
		modes.DirectorWithMode("macro", func() types.Mode { return modes.NewMacroMode() }),
		modes.DirectorWithMode("micro", func() types.Mode { return modes.NewMicroMode() }),
	}
	return modes.NewDirector(append(base, opts...)...)
}

func TestDirector_LoadAudioDerivesStructure(t *testing.T) {
	d := newDirector()
	if err := d.SwitchMode("macro"); err != nil {
		t.Fatal(err)
	}

	src := sineSource(44100*3, 3.0, 120)
	if err := d.LoadAudio(src); err != nil {
		t.Fatal(err)
	}

	if want := contenthash.Sum(src.samples); d.Seed() != want {
		t.Fatalf("seed %q, want content hash %q", d.Seed(), want)
	}
	nodes := d.Structure()
	cfg := tuning.Default()
	if len(nodes) < cfg.Structure.MinNodes || len(nodes) > cfg.Structure.MaxNodes {
		t.Fatalf("node count %d outside [%d,%d]", len(nodes), cfg.Structure.MinNodes, cfg.Structure.MaxNodes)
	}

	macro := d.CurrentMode().(*modes.MacroMode)
	if want := len(nodes) * cfg.Macro.PointsPerNode; len(macro.Points()) != want {
		t.Fatalf("point cloud size %d, want %d", len(macro.Points()), want)
	}
}

func TestDirector_LoadAudioNilSourceKeepsStructure(t *testing.T) {
	d := newDirector()
	if err := d.SwitchMode("macro"); err != nil {
		t.Fatal(err)
	}
	if err := d.LoadAudio(sineSource(44100*3, 3.0, 120)); err != nil {
		t.Fatal(err)
	}
	before := d.Structure()

	if err := d.LoadAudio(nil); !errors.Is(err, modes.ErrNoAudio) {
		t.Fatalf("expected ErrNoAudio, got %v", err)
	}

	after := d.Structure()
	if len(after) != len(before) {
		t.Fatalf("structure changed on failed load: %d vs %d nodes", len(after), len(before))
	}
	if after[0].Position != before[0].Position {
		t.Fatalf("structure changed on failed load")
	}
}

func TestDirector_SwitchModeHandsOffStructure(t *testing.T) {
	var from, to string
	switches := 0
	s := sensor.NewSensor(sensor.WithOnModeSwitchFunc(func(_ types.ComponentMetadata, prev, next string) {
		from, to = prev, next
		switches++
	}))

	d := newDirector(modes.DirectorWithSensor(s))
	if err := d.SwitchMode("macro"); err != nil {
		t.Fatal(err)
	}
	if err := d.LoadAudio(sineSource(44100*3, 3.0, 120)); err != nil {
		t.Fatal(err)
	}
	nodeCount := len(d.Structure())

	if err := d.SwitchMode("micro"); err != nil {
		t.Fatal(err)
	}
	micro := d.CurrentMode().(*modes.MicroMode)
	exported := micro.ExportStructure()
	if len(exported) != nodeCount {
		t.Fatalf("handed-off structure has %d nodes, want %d", len(exported), nodeCount)
	}
	if switches != 2 || from != "macro" || to != "micro" {
		t.Fatalf("mode switch sensor saw %d switches, last %q->%q", switches, from, to)
	}
}

func TestDirector_SwitchModeUnknown(t *testing.T) {
	d := newDirector()
	if err := d.SwitchMode("holograph"); !errors.Is(err, modes.ErrUnknownMode) {
		t.Fatalf("expected ErrUnknownMode, got %v", err)
	}
}

func TestDirector_NeutralFallbackWithoutAudio(t *testing.T) {
	d := newDirector()
	if err := d.SwitchMode("macro"); err != nil {
		t.Fatal(err)
	}

	macro := d.CurrentMode().(*modes.MacroMode)
	points := macro.Points()
	if len(points) == 0 {
		t.Fatal("expected fallback geometry before any audio load")
	}
	for i, p := range points {
		if p.ShapeTier != 1 {
			t.Fatalf("fallback point %d shape tier %v, want 1", i, p.ShapeTier)
		}
	}
	if macro.ExportStructure() != nil {
		t.Fatal("fallback geometry must not be exported as a structure")
	}
}

func TestMicroMode_BassPulseScalesPositions(t *testing.T) {
	src := sineSource(1000, 1.0, 250)
	m := modes.NewMicroMode(modes.WithSource(src), modes.WithSensitivity(1.0)).(*modes.MicroMode)
	m.OnNewAudio(chainNodes())

	m.Advance(0, frameDelta)
	pos := m.Positions()
	if pos[0].X <= 2 {
		t.Fatalf("expected bass transient to push node outward, got X=%v", pos[0].X)
	}
	if got := m.Edges(); len(got) != 1 || got[0] != [2]int{0, 1} {
		t.Fatalf("unexpected edge list: %v", got)
	}
}

func TestMicroMode_DisposeIdempotent(t *testing.T) {
	m := modes.NewMicroMode().(*modes.MicroMode)
	m.OnNewAudio(chainNodes())
	m.Dispose()
	m.Dispose()
	m.Advance(0, frameDelta)
	if m.Positions() != nil {
		t.Fatal("derived geometry survived Dispose")
	}
}

func TestMacroMode_ExpansionDeterministic(t *testing.T) {
	nodes := chainNodes()
	a := modes.NewMacroMode(modes.WithSeed("abc123")).(*modes.MacroMode)
	b := modes.NewMacroMode(modes.WithSeed("abc123")).(*modes.MacroMode)
	a.OnNewAudio(nodes)
	b.OnNewAudio(nodes)

	pa, pb := a.Points(), b.Points()
	if len(pa) != len(pb) {
		t.Fatalf("cloud sizes differ: %d vs %d", len(pa), len(pb))
	}
	for i := range pa {
		if pa[i].Base != pb[i].Base {
			t.Fatalf("point %d base differs: %+v vs %+v", i, pa[i].Base, pb[i].Base)
		}
	}
}

func TestDirector_LoadAudioEmptySamplesFallsBack(t *testing.T) {
	d := newDirector()
	if err := d.SwitchMode("macro"); err != nil {
		t.Fatal(err)
	}

	if err := d.LoadAudio(&fakeSource{}); err != nil {
		t.Fatal(err)
	}
	if d.Seed() != "0" {
		t.Fatalf("seed %q, want %q for empty audio", d.Seed(), "0")
	}
	if nodes := d.Structure(); nodes != nil {
		t.Fatalf("empty audio produced a structure of %d nodes", len(nodes))
	}

	macro := d.CurrentMode().(*modes.MacroMode)
	if len(macro.Points()) == 0 {
		t.Fatal("expected fallback geometry for empty audio")
	}
	for i, p := range macro.Points() {
		if p.ShapeTier != 1 {
			t.Fatalf("fallback point %d shape tier %v, want 1", i, p.ShapeTier)
		}
	}
	if macro.ExportStructure() != nil {
		t.Fatal("fallback geometry must not be exported as a structure")
	}
}

func TestMacroMode_SetTuningKeepsCollaborators(t *testing.T) {
	log := &recordingLogger{}
	m := modes.NewMacroMode(modes.WithLogger(log)).(*modes.MacroMode)

	m.SetTuning(tuning.Default())
	m.OnNewAudio(nil)

	if !log.has("deform: neutral spiral emitted") {
		t.Fatal("deformation engine lost its logger across SetTuning")
	}
}

func TestMacroMode_SameSizeStructureResetsSmoothing(t *testing.T) {
	far := []types.StructureNode{
		{ID: 0, Position: types.Vec3{X: 10}, Amplitude: 0.5, Hue: 0.2},
		{ID: 1, Position: types.Vec3{X: -10}, Amplitude: 0.5, Hue: 0.6},
	}
	near := []types.StructureNode{
		{ID: 0, Position: types.Vec3{X: 2}, Amplitude: 0.5, Hue: 0.2},
		{ID: 1, Position: types.Vec3{Z: 2}, Amplitude: 0.5, Hue: 0.6},
	}

	m := modes.NewMacroMode().(*modes.MacroMode)
	m.OnNewAudio(far)
	for i := 0; i < 30; i++ {
		m.Advance(float64(i)*frameDelta, frameDelta)
	}

	// Same point count, different geometry: the smoothed radii of the old
	// structure must not bleed into the first frames of the new one.
	m.OnNewAudio(near)
	m.Advance(0, 0.001)
	for i, p := range m.Points() {
		r := math.Sqrt(p.Current.X*p.Current.X + p.Current.Y*p.Current.Y + p.Current.Z*p.Current.Z)
		base := math.Sqrt(p.Base.X*p.Base.X + p.Base.Y*p.Base.Y + p.Base.Z*p.Base.Z)
		if math.Abs(r-base) > 0.5 {
			t.Fatalf("point %d radius %.2f far from base radius %.2f after structure swap", i, r, base)
		}
	}
}

func TestMacroMode_ExportIsDeepCopy(t *testing.T) {
	m := modes.NewMacroMode().(*modes.MacroMode)
	m.OnNewAudio(chainNodes())

	exported := m.ExportStructure()
	exported[0].Connections[0] = 99

	again := m.ExportStructure()
	if again[0].Connections[0] != 1 {
		t.Fatalf("export shares memory with the held structure")
	}
}
