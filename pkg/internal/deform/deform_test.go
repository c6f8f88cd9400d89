package deform_test

import (
	"math"
	"testing"

	"github.com/audioglyph/helix/pkg/internal/deform"
	"github.com/audioglyph/helix/pkg/internal/tuning"
	"github.com/audioglyph/helix/pkg/internal/types"
	"github.com/audioglyph/helix/pkg/internal/utils"
)

const frameDelta = 1.0 / 60.0

var _ types.Deformer = (*deform.Engine)(nil)

func ringPoints(n int, radius float64) []types.RenderPoint {
	points := make([]types.RenderPoint, n)
	for i := range points {
		a := float64(i) / float64(n) * utils.Tau
		points[i] = types.RenderPoint{
			ID:        i,
			Base:      types.Vec3{X: radius * math.Cos(a), Y: 0.3 * math.Sin(a*3), Z: radius * math.Sin(a)},
			Hue:       float64(i) / float64(n),
			Amplitude: 0.5,
		}
	}
	return points
}

func TestZoneWeights_PartitionOfUnity(t *testing.T) {
	cfg := tuning.Default().Zones
	for i := 0; i <= 100; i++ {
		h := float64(i) / 100
		wb, wm, wt := deform.ZoneWeights(h, cfg)
		for _, w := range []float64{wb, wm, wt} {
			if w < 0 || w > 1 {
				t.Fatalf("weight out of range at height %v: %v %v %v", h, wb, wm, wt)
			}
		}
		if sum := wb + wm + wt; math.Abs(sum-1) > 1e-9 {
			t.Fatalf("weights do not sum to 1 at height %v: %v", h, sum)
		}
	}

	if wb, _, _ := deform.ZoneWeights(0.02, cfg); wb < 0.5 {
		t.Fatalf("expected bass dominance near the bottom, got %v", wb)
	}
	if _, _, wt := deform.ZoneWeights(0.98, cfg); wt < 0.5 {
		t.Fatalf("expected treble dominance near the top, got %v", wt)
	}
}

func TestSetSeed_ArmCountDeterministicAndBounded(t *testing.T) {
	cfg := tuning.Default()
	for _, seed := range []string{"0", "a1b2c3", "deadbeef", "7f", "1234567890"} {
		a := deform.NewEngine(deform.WithSeed(seed)).(*deform.Engine)
		b := deform.NewEngine(deform.WithSeed(seed)).(*deform.Engine)
		if a.ArmCount() != b.ArmCount() {
			t.Fatalf("seed %q produced differing arm counts: %d vs %d", seed, a.ArmCount(), b.ArmCount())
		}
		if a.ArmCount() < cfg.Arms.CountMin || a.ArmCount() > cfg.Arms.CountMax {
			t.Fatalf("seed %q arm count %d outside [%d,%d]", seed, a.ArmCount(), cfg.Arms.CountMin, cfg.Arms.CountMax)
		}
	}
}

func TestStep_ArmMonotonicity(t *testing.T) {
	cfg := tuning.Default()
	cfg.Tide = tuning.TideConfig{} // isolate lane pull from tangential drift

	e := deform.NewEngine(deform.WithTuning(cfg), deform.WithSeed("cafe01"))
	points := ringPoints(48, 3.0)
	frame := types.FeatureFrame{
		Bands: types.BandEnergies{LowMid: 0.8, HighMid: 0.8},
	}

	prev := make([]float64, len(points))
	e.Step(points, frame, 0.7, 0, frameDelta)
	for i, p := range points {
		prev[i] = math.Atan2(p.Current.Z, p.Current.X)
	}

	for step := 1; step < 240; step++ {
		now := float64(step) * frameDelta
		e.Step(points, frame, 0.7, now, frameDelta)
		for i, p := range points {
			cur := math.Atan2(p.Current.Z, p.Current.X)
			if d := utils.ForwardDelta(prev[i], cur); d > math.Pi {
				t.Fatalf("point %d rotated backwards at step %d: delta %v", i, step, d)
			}
			prev[i] = cur
		}
	}
}

func TestStep_ShapeTierAndColorRanges(t *testing.T) {
	e := deform.NewEngine(deform.WithSeed("0f0f"))
	points := ringPoints(64, 2.5)
	frame := types.FeatureFrame{
		Bands:          types.BandEnergies{Bass: 0.9, LowMid: 0.6, HighMid: 0.4, Treble: 0.7},
		BassEnvelope:   0.8,
		TrebleEnvelope: 0.6,
		BassHit:        1.2,
		MidPulse:       1.0,
		Loudness:       0.65,
	}

	for step := 0; step < 90; step++ {
		e.Step(points, frame, 1.0, float64(step)*frameDelta, frameDelta)
	}
	for _, p := range points {
		if p.ShapeTier < 0 || p.ShapeTier > 2 {
			t.Fatalf("shape tier out of range: %v", p.ShapeTier)
		}
		for _, c := range []float64{p.R, p.G, p.B} {
			if c < 0 || c > 1 || math.IsNaN(c) {
				t.Fatalf("color channel out of range: %+v", p)
			}
		}
		for _, v := range []float64{p.Current.X, p.Current.Y, p.Current.Z} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("non-finite position: %+v", p.Current)
			}
		}
	}
}

func TestStep_CachesSurvivePointCountChange(t *testing.T) {
	e := deform.NewEngine()
	frame := types.FeatureFrame{Bands: types.BandEnergies{Bass: 0.5}}

	small := ringPoints(10, 2.0)
	e.Step(small, frame, 0.5, 0, frameDelta)

	large := ringPoints(30, 2.0)
	e.Step(large, frame, 0.5, frameDelta, frameDelta)
	for _, p := range large {
		if math.IsNaN(p.Current.X) || math.IsNaN(p.Current.Y) || math.IsNaN(p.Current.Z) {
			t.Fatalf("non-finite position after cache rebuild: %+v", p.Current)
		}
	}
}

func TestStep_EmptyPoints(t *testing.T) {
	e := deform.NewEngine()
	e.Step(nil, types.FeatureFrame{}, 0.5, 0, frameDelta)
}

func TestNeutralSpiral(t *testing.T) {
	e := deform.NewEngine()

	points := e.NeutralSpiral(120)
	if len(points) != 120 {
		t.Fatalf("expected 120 points, got %d", len(points))
	}
	for i, p := range points {
		if p.ShapeTier != 1 {
			t.Fatalf("point %d shape tier %v, want 1", i, p.ShapeTier)
		}
		if p.Current != p.Base {
			t.Fatalf("point %d not at rest: base %+v current %+v", i, p.Base, p.Current)
		}
		if p.Hue < 0 || p.Hue >= 1 {
			t.Fatalf("point %d hue out of range: %v", i, p.Hue)
		}
	}

	if got := e.NeutralSpiral(0); got != nil {
		t.Fatalf("expected nil for non-positive count, got %d points", len(got))
	}
}
