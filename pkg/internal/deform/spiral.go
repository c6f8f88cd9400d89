package deform

import (
	"math"

	"github.com/audioglyph/helix/pkg/internal/types"
	"github.com/audioglyph/helix/pkg/internal/utils"
)

// neutralRadius is the rest radius of the fallback spiral.
const neutralRadius = 2.2

// NeutralSpiral produces placeholder geometry when no structure or audio
// exists: count points wound along the current lanes from pole to pole, hue
// sweeping the full wheel, every shape tier pinned to the mid archetype.
func (e *Engine) NeutralSpiral(count int) []types.RenderPoint {
	if count <= 0 {
		return nil
	}
	cfg := e.cfg
	points := make([]types.RenderPoint, count)
	for i := range points {
		t := float64(i) / float64(count)
		polar := math.Acos(1 - 2*t)
		height := 1 - polar/math.Pi
		lane := i % e.armCount
		azimuth := utils.WrapTau(e.laneAngle(lane, height) + t*utils.Tau*1.5)
		r := neutralRadius * (0.85 + 0.15*math.Sin(t*utils.Tau*2))

		sinP, cosP := math.Sincos(polar)
		sinA, cosA := math.Sincos(azimuth)
		pos := types.Vec3{X: r * sinP * cosA, Y: r * cosP, Z: r * sinP * sinA}

		red, green, blue := hslToRGB(t, cfg.Color.SaturationBase, cfg.Color.LumBase+cfg.Color.LumRange*0.5)
		points[i] = types.RenderPoint{
			ID:        i,
			Base:      pos,
			Current:   pos,
			Hue:       t,
			Amplitude: 0.5,
			R:         red,
			G:         green,
			B:         blue,
			ShapeTier: 1,
		}
	}

	e.NotifyLoggers(types.InfoLevel, "deform: neutral spiral emitted",
		"component", e.componentMetadata, "event", "NeutralSpiral", "points", count)
	return points
}
