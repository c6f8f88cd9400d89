package tuning_test

import (
	"testing"

	"github.com/audioglyph/helix/pkg/internal/tuning"
)

func TestDefault_BandEdgesOrdered(t *testing.T) {
	cfg := tuning.Default()
	if !(cfg.Bands.BassEdge < cfg.Bands.LowMidEdge && cfg.Bands.LowMidEdge < cfg.Bands.HighMidEdge && cfg.Bands.HighMidEdge < 1) {
		t.Fatalf("band edges not strictly ordered: %+v", cfg.Bands)
	}
}

func TestPreset_Lookup(t *testing.T) {
	for _, name := range []string{"", "default", "chill", "club"} {
		if _, err := tuning.Preset(name); err != nil {
			t.Fatalf("Preset(%q) error: %v", name, err)
		}
	}
	if _, err := tuning.Preset("bogus"); err == nil {
		t.Fatalf("expected error for unknown preset")
	}
}

func TestMerge_PartialOverride(t *testing.T) {
	base := tuning.Default()
	merged, err := tuning.Merge(base, tuning.Overrides{
		"radial": map[string]interface{}{
			"splashGain": 0.9,
		},
	})
	if err != nil {
		t.Fatalf("Merge error: %v", err)
	}
	if merged.Radial.SplashGain != 0.9 {
		t.Errorf("override not applied: %v", merged.Radial.SplashGain)
	}
	if merged.Radial.BreathAmpA != base.Radial.BreathAmpA {
		t.Errorf("sibling key changed: %v", merged.Radial.BreathAmpA)
	}
	if merged.Zones != base.Zones {
		t.Errorf("unrelated group changed: %+v", merged.Zones)
	}
	if base.Radial.SplashGain == 0.9 {
		t.Errorf("base profile mutated")
	}
}

func TestMerge_NestedOverrides(t *testing.T) {
	merged, err := tuning.Merge(tuning.Default(), tuning.Overrides{
		"arms": tuning.Overrides{
			"countMax": 8,
		},
		"envelopes": map[string]interface{}{
			"bassHitMax": 2.0,
		},
	})
	if err != nil {
		t.Fatalf("Merge error: %v", err)
	}
	if merged.Arms.CountMax != 8 {
		t.Errorf("nested Overrides not applied: %d", merged.Arms.CountMax)
	}
	if merged.Envelopes.BassHitMax != 2.0 {
		t.Errorf("nested map not applied: %v", merged.Envelopes.BassHitMax)
	}
}

func TestMerge_RejectsUnknownKey(t *testing.T) {
	if _, err := tuning.Merge(tuning.Default(), tuning.Overrides{"radail": map[string]interface{}{}}); err == nil {
		t.Fatalf("expected error for misspelled group")
	}
	if _, err := tuning.Merge(tuning.Default(), tuning.Overrides{"radial": map[string]interface{}{"splash": 1.0}}); err == nil {
		t.Fatalf("expected error for misspelled key")
	}
}

func TestMerge_EmptyIsIdentity(t *testing.T) {
	base := tuning.Default()
	merged, err := tuning.Merge(base, nil)
	if err != nil {
		t.Fatalf("Merge error: %v", err)
	}
	if merged != base {
		t.Fatalf("empty merge changed the profile")
	}
}
