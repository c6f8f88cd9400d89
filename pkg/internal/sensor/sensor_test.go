package sensor_test

import (
	"testing"

	"github.com/audioglyph/helix/pkg/internal/sensor"
	"github.com/audioglyph/helix/pkg/internal/types"
)

func TestSensor_StructureBuiltCallback(t *testing.T) {
	var gotCount int
	var gotSeed string

	s := sensor.NewSensor(
		sensor.WithOnStructureBuiltFunc(func(c types.ComponentMetadata, nodeCount int, seed string) {
			gotCount = nodeCount
			gotSeed = seed
		}),
	)

	s.InvokeOnStructureBuilt(s.GetComponentMetadata(), 50, "5f2c91ab")
	if gotCount != 50 || gotSeed != "5f2c91ab" {
		t.Fatalf("callback not invoked with expected args: %d %q", gotCount, gotSeed)
	}
}

func TestSensor_MultipleCallbacks(t *testing.T) {
	calls := 0
	s := sensor.NewSensor(
		sensor.WithOnBassHitFunc(
			func(types.ComponentMetadata, float64) { calls++ },
			func(types.ComponentMetadata, float64) { calls++ },
		),
	)

	s.InvokeOnBassHit(s.GetComponentMetadata(), 1.1)
	if calls != 2 {
		t.Fatalf("expected 2 callback invocations, got %d", calls)
	}
}

func TestSensor_NoCallbacksIsNoop(t *testing.T) {
	s := sensor.NewSensor()
	s.InvokeOnModeSwitch(s.GetComponentMetadata(), "micro", "macro")
	s.InvokeOnFrameOverBudget(s.GetComponentMetadata(), 0.030)
}

func TestSensor_Metadata(t *testing.T) {
	s := sensor.NewSensor(sensor.WithComponentMetadata("frame-sensor", "s-1"))
	meta := s.GetComponentMetadata()
	if meta.Name != "frame-sensor" || meta.ID != "s-1" {
		t.Fatalf("unexpected metadata: %+v", meta)
	}
	if meta.Type != "SENSOR" {
		t.Fatalf("expected SENSOR type, got %q", meta.Type)
	}
}
