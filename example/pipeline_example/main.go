package main

import (
	"fmt"
	"math"
	"time"

	"github.com/audioglyph/helix/pkg/builder"
)

// Derives a structure from a synthetic audio buffer, runs the macro view for
// a few seconds of frames and prints what the pipeline produced.
func main() {
	logger := builder.NewLogger(builder.LoggerWithDevelopment(true), builder.LoggerWithLevel("info"))

	const sampleRate = 44100.0
	samples := make([]float64, int(sampleRate)*4)
	for i := range samples {
		tSec := float64(i) / sampleRate
		samples[i] = 0.6*math.Sin(2*math.Pi*55*tSec) + 0.3*math.Sin(2*math.Pi*880*tSec)
	}
	analyzer := builder.NewSpectrumAnalyzer(
		builder.SpectrumAnalyzerWithSamples(samples, sampleRate),
		builder.SpectrumAnalyzerWithLogger(logger),
	)

	sensor := builder.NewSensor(
		builder.SensorWithOnStructureBuiltFunc(func(_ builder.ComponentMetadata, nodeCount int, seed string) {
			fmt.Printf("structure built: %d nodes, seed %s\n", nodeCount, seed)
		}),
		builder.SensorWithOnModeSwitchFunc(func(_ builder.ComponentMetadata, from, to string) {
			fmt.Printf("mode switch: %q -> %q\n", from, to)
		}),
	)

	director := builder.NewDirector(
		builder.DirectorWithLogger(logger),
		builder.DirectorWithSensor(sensor),
		builder.DirectorWithMode("macro", func() builder.Mode {
			return builder.NewMacroMode(builder.ModeWithLogger(logger))
		}),
		builder.DirectorWithMode("micro", func() builder.Mode {
			return builder.NewMicroMode(builder.ModeWithLogger(logger))
		}),
		builder.DirectorWithSensitivity(0.7),
	)
	defer director.Dispose()

	if err := director.SwitchMode("macro"); err != nil {
		panic(err)
	}
	if err := director.LoadAudio(analyzer); err != nil {
		panic(err)
	}

	meter := builder.NewFrameMeter(builder.FrameMeterWithLogger(logger))
	const frameDelta = 1.0 / 60.0
	start := time.Now()
	for frame := 0; frame < 240; frame++ {
		frameStart := time.Now()
		analyzer.Advance(frameDelta)
		director.Advance(float64(frame)*frameDelta, frameDelta)
		meter.Observe(time.Since(frameStart).Seconds())
	}

	stats := meter.Snapshot()
	fmt.Printf("ran %d frames in %v (mean %.3f ms, max %.3f ms, %d over budget)\n",
		stats.Frames, time.Since(start).Round(time.Millisecond),
		stats.MeanMillis, stats.MaxMillis, stats.OverBudget)

	doc := builder.StructureDocument{
		Seed:     director.Seed(),
		Duration: analyzer.Duration(),
		Nodes:    director.Structure(),
	}
	data, err := builder.EncodeStructure(doc, builder.StructureFormatBinary, builder.StructureCompressZstd)
	if err != nil {
		panic(err)
	}
	fmt.Printf("exported structure: %d nodes in %d bytes\n", len(doc.Nodes), len(data))

	if err := director.SwitchMode("micro"); err != nil {
		panic(err)
	}
	director.Advance(4.0, frameDelta)
}
