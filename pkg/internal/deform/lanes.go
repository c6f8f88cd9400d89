package deform

import (
	"math"

	"github.com/audioglyph/helix/pkg/internal/utils"
)

// laneAngle returns the azimuth of lane l at the given normalized height.
// Lanes are evenly spaced and twisted by the pitch so they trace helical
// arms from pole to pole.
func (e *Engine) laneAngle(l int, height float64) float64 {
	return utils.WrapTau(float64(l)*utils.Tau/float64(e.armCount) + e.cfg.Arms.Pitch*height)
}

// laneGapAhead returns the forward rotation from azimuth to the nearest lane
// attractor ahead of it. The result is always non-negative, so closing any
// fraction of it never reverses a point's rotation direction.
func (e *Engine) laneGapAhead(azimuth, height float64) float64 {
	best := utils.Tau
	for l := 0; l < e.armCount; l++ {
		if d := utils.ForwardDelta(azimuth, e.laneAngle(l, height)); d < best {
			best = d
		}
	}
	return best
}

// laneDistance returns the absolute angular distance from azimuth to the
// nearest lane in either direction, used for off-lane darkening.
func (e *Engine) laneDistance(azimuth, height float64) float64 {
	best := math.Pi
	for l := 0; l < e.armCount; l++ {
		fd := utils.ForwardDelta(azimuth, e.laneAngle(l, height))
		if d := math.Min(fd, utils.Tau-fd); d < best {
			best = d
		}
	}
	return best
}
