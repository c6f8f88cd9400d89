package builder_test

import (
	"math"
	"testing"

	"github.com/audioglyph/helix/pkg/builder"
)

// Builds the whole pipeline through the facade: decoded audio in, derived
// structure out, frames advanced, structure exported and re-imported.
func TestPipelineEndToEnd(t *testing.T) {
	const (
		sampleRate = 44100.0
		seconds    = 3
		frameDelta = 1.0 / 60.0
	)

	samples := make([]float64, sampleRate*seconds)
	for i := range samples {
		samples[i] = 0.7 * math.Sin(float64(i)*0.021)
	}
	analyzer := builder.NewSpectrumAnalyzer(
		builder.SpectrumAnalyzerWithSamples(samples, sampleRate),
	)

	structureBuilds := 0
	s := builder.NewSensor(
		builder.SensorWithOnStructureBuiltFunc(func(_ builder.ComponentMetadata, nodeCount int, seed string) {
			structureBuilds++
		}),
	)

	gen := builder.NewStructureGenerator(builder.StructureGeneratorWithSensor(s))
	d := builder.NewDirector(
		builder.DirectorWithGenerator(gen),
		builder.DirectorWithSensor(s),
		builder.DirectorWithMode("macro", func() builder.Mode { return builder.NewMacroMode() }),
		builder.DirectorWithMode("micro", func() builder.Mode { return builder.NewMicroMode() }),
		builder.DirectorWithSensitivity(0.7),
	)
	defer d.Dispose()

	if err := d.SwitchMode("macro"); err != nil {
		t.Fatal(err)
	}
	if err := d.LoadAudio(analyzer); err != nil {
		t.Fatal(err)
	}
	if structureBuilds != 1 {
		t.Fatalf("structure built %d times, want 1", structureBuilds)
	}

	meter := builder.NewFrameMeter()
	for frame := 0; frame < 120; frame++ {
		now := float64(frame) * frameDelta
		analyzer.Advance(frameDelta)
		d.Advance(now, frameDelta)
		meter.Observe(frameDelta)
	}
	if stats := meter.Snapshot(); stats.Frames != 120 {
		t.Fatalf("meter saw %d frames, want 120", stats.Frames)
	}

	doc := builder.StructureDocument{
		Seed:     d.Seed(),
		Duration: analyzer.Duration(),
		Nodes:    d.Structure(),
	}
	data, err := builder.EncodeStructure(doc, builder.StructureFormatBinary, builder.StructureCompressZstd)
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := builder.DecodeStructure(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(decoded.Nodes) != len(doc.Nodes) || decoded.Seed != doc.Seed {
		t.Fatalf("round trip mismatch: %d nodes seed %q", len(decoded.Nodes), decoded.Seed)
	}

	if err := d.SwitchMode("micro"); err != nil {
		t.Fatal(err)
	}
	micro := d.CurrentMode().(*builder.MicroMode)
	if len(micro.ExportStructure()) != len(doc.Nodes) {
		t.Fatal("structure lost across mode switch")
	}
	d.Advance(2.0, frameDelta)
}

func TestTuningPresetsAndOverrides(t *testing.T) {
	base, err := builder.TuningPreset("club")
	if err != nil {
		t.Fatal(err)
	}
	merged, err := builder.MergeTuning(base, builder.TuningOverrides{
		"arms": map[string]interface{}{"pullMax": 0.42},
	})
	if err != nil {
		t.Fatal(err)
	}
	if merged.Arms.PullMax != 0.42 {
		t.Fatalf("override not applied: %v", merged.Arms.PullMax)
	}

	if _, err := builder.MergeTuning(base, builder.TuningOverrides{"armz": 1}); err == nil {
		t.Fatal("expected unknown key rejection")
	}
}
