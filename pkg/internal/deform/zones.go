package deform

import (
	"github.com/audioglyph/helix/pkg/internal/tuning"
	"github.com/audioglyph/helix/pkg/internal/utils"
)

// ZoneWeights blends a normalized polar height (0 at the bass pole, 1 at the
// treble pole) into bass, mid and treble zone weights using paired logistic
// windows. The weights are continuous in height, each lies in [0,1], and they
// are renormalized to sum to exactly 1 so the zones always partition the
// point's behavior.
func ZoneWeights(height float64, cfg tuning.ZoneConfig) (bass, mid, treble float64) {
	lower := utils.Sigmoid(height, cfg.BassEdge, cfg.Softness)
	upper := utils.Sigmoid(height, cfg.MidEdge, cfg.Softness)

	bass = 1 - lower
	mid = lower * (1 - upper)
	treble = upper

	sum := bass + mid + treble
	if sum <= 0 {
		return 0, 1, 0
	}
	return bass / sum, mid / sum, treble / sum
}
