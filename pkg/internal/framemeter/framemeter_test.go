package framemeter_test

import (
	"math"
	"testing"

	"github.com/audioglyph/helix/pkg/internal/framemeter"
	"github.com/audioglyph/helix/pkg/internal/sensor"
	"github.com/audioglyph/helix/pkg/internal/types"
)

var _ types.FrameMeter = (*framemeter.Meter)(nil)

func TestObserve_Accumulates(t *testing.T) {
	m := framemeter.NewMeter()
	m.Observe(0.010)
	m.Observe(0.020)
	m.Observe(0.030)

	stats := m.Snapshot()
	if stats.Frames != 3 {
		t.Fatalf("frames %d, want 3", stats.Frames)
	}
	if math.Abs(stats.MeanMillis-20) > 1e-9 {
		t.Fatalf("mean %v ms, want 20", stats.MeanMillis)
	}
	if math.Abs(stats.MaxMillis-30) > 1e-9 {
		t.Fatalf("max %v ms, want 30", stats.MaxMillis)
	}
}

func TestObserve_OverBudget(t *testing.T) {
	var reported float64
	s := sensor.NewSensor(sensor.WithOnFrameOverBudgetFunc(func(_ types.ComponentMetadata, dt float64) {
		reported = dt
	}))
	m := framemeter.NewMeter(framemeter.WithBudget(0.020), framemeter.WithSensor(s))

	m.Observe(0.015)
	m.Observe(0.050)

	stats := m.Snapshot()
	if stats.OverBudget != 1 {
		t.Fatalf("over-budget count %d, want 1", stats.OverBudget)
	}
	if reported != 0.050 {
		t.Fatalf("sensor saw %v, want 0.050", reported)
	}
}

func TestReset_ClearsCounters(t *testing.T) {
	m := framemeter.NewMeter(framemeter.WithBudget(0.010))
	m.Observe(0.040)
	m.Reset()

	stats := m.Snapshot()
	if stats.Frames != 0 || stats.OverBudget != 0 || stats.MeanMillis != 0 || stats.MaxMillis != 0 {
		t.Fatalf("counters survived Reset: %+v", stats)
	}
}

func TestObserve_NegativeDeltaClamped(t *testing.T) {
	m := framemeter.NewMeter()
	m.Observe(-1)
	stats := m.Snapshot()
	if stats.Frames != 1 || stats.MaxMillis != 0 {
		t.Fatalf("unexpected stats for negative delta: %+v", stats)
	}
}
