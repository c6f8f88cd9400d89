package tuning

import "fmt"

// Chill is a preset with slower breathing and gentler transients.
func Chill() Config {
	cfg := Default()
	cfg.Radial.BreathRateA = 0.45
	cfg.Radial.BreathRateB = 1.20
	cfg.Radial.SplashGain = 0.22
	cfg.Envelopes.BassHitAttack = 1.6
	cfg.Envelopes.BassEnvTime = 0.20
	cfg.Envelopes.TrebleEnvTime = 0.16
	cfg.Tide.CarrierRate = 0.15
	cfg.Color.SaturationBase = 0.45
	return cfg
}

// Club is a preset emphasizing bass transients and lane structure.
func Club() Config {
	cfg := Default()
	cfg.Radial.SplashGain = 0.55
	cfg.Envelopes.BassHitAttack = 3.0
	cfg.Envelopes.MidPulseScale = 8.0
	cfg.Arms.PullMax = 0.50
	cfg.Color.LaneDarkening = 0.60
	cfg.Color.SaturationBase = 0.65
	return cfg
}

// Preset returns a named tuning profile.
func Preset(name string) (Config, error) {
	switch name {
	case "", "default":
		return Default(), nil
	case "chill":
		return Chill(), nil
	case "club":
		return Club(), nil
	default:
		return Config{}, fmt.Errorf("unknown tuning preset: %s", name)
	}
}
