package main

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/audioglyph/helix/pkg/builder"
)

// Serves live frame telemetry and the derived structure over a WebSocket
// endpoint. Connect with any client, e.g.:
//
//	websocat ws://127.0.0.1:8173/live
func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger := builder.NewLogger(builder.LoggerWithDevelopment(true), builder.LoggerWithLevel("info"))

	bridge := builder.NewWSBridge(
		builder.WSBridgeWithLogger(logger),
		builder.WSBridgeWithAddress("127.0.0.1:8173"),
		builder.WSBridgeWithEndpoint("/live"),
		builder.WSBridgeWithMaxConnections(1),
	)
	if err := bridge.Start(ctx); err != nil {
		panic(err)
	}
	defer bridge.Close(context.Background())
	fmt.Printf("listening on ws://%s/live\n", bridge.Addr())

	const sampleRate = 44100.0
	samples := make([]float64, int(sampleRate)*8)
	for i := range samples {
		tSec := float64(i) / sampleRate
		samples[i] = 0.5 * math.Sin(2*math.Pi*110*tSec) * (1 + 0.5*math.Sin(2*math.Pi*0.5*tSec))
	}
	analyzer := builder.NewSpectrumAnalyzer(builder.SpectrumAnalyzerWithSamples(samples, sampleRate))

	director := builder.NewDirector(
		builder.DirectorWithLogger(logger),
		builder.DirectorWithMode("macro", func() builder.Mode { return builder.NewMacroMode() }),
	)
	defer director.Dispose()
	if err := director.SwitchMode("macro"); err != nil {
		panic(err)
	}
	if err := director.LoadAudio(analyzer); err != nil {
		panic(err)
	}

	_ = bridge.Publish(map[string]interface{}{
		"kind":  "structure",
		"seed":  director.Seed(),
		"nodes": len(director.Structure()),
	})

	meter := builder.NewFrameMeter()
	const frameDelta = 1.0 / 60.0
	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	frame := 0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			frameStart := time.Now()
			analyzer.Advance(frameDelta)
			director.Advance(float64(frame)*frameDelta, frameDelta)
			meter.Observe(time.Since(frameStart).Seconds())
			frame++

			if frame%60 == 0 {
				stats := meter.Snapshot()
				_ = bridge.Publish(map[string]interface{}{
					"kind":       "telemetry",
					"frames":     stats.Frames,
					"meanMillis": stats.MeanMillis,
					"maxMillis":  stats.MaxMillis,
					"overBudget": stats.OverBudget,
					"cpuPercent": stats.CPUPercent,
					"rssBytes":   stats.RSSBytes,
				})
			}
		}
	}
}
