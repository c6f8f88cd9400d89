package builder

import "github.com/audioglyph/helix/pkg/internal/tuning"

// TuningConfig is the complete tuning profile consumed by the pipeline.
type TuningConfig = tuning.Config

// TuningOverrides is a sparse tree of parameter overrides applied on top of
// a preset.
type TuningOverrides = tuning.Overrides

// DefaultTuning returns the baseline tuning profile.
func DefaultTuning() tuning.Config {
	return tuning.Default()
}

// TuningPreset looks up a named preset.
func TuningPreset(name string) (tuning.Config, error) {
	return tuning.Preset(name)
}

// MergeTuning applies overrides onto a base profile, rejecting unknown keys.
func MergeTuning(base tuning.Config, overrides tuning.Overrides) (tuning.Config, error) {
	return tuning.Merge(base, overrides)
}
