package utils

import "math"

// Tau is one full turn in radians.
const Tau = 2 * math.Pi

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Sigmoid is the standard logistic function with midpoint mid and steepness k.
func Sigmoid(x, mid, k float64) float64 {
	return 1.0 / (1.0 + math.Exp(-k*(x-mid)))
}

// WrapTau normalizes an angle to [0, Tau).
func WrapTau(a float64) float64 {
	a = math.Mod(a, Tau)
	if a < 0 {
		a += Tau
	}
	return a
}

// ForwardDelta returns the smallest non-negative rotation from angle a to
// angle b, i.e. how far b sits ahead of a when only moving forward.
func ForwardDelta(a, b float64) float64 {
	d := math.Mod(b-a, Tau)
	if d < 0 {
		d += Tau
	}
	return d
}

// Frame delta clamp bounds, seconds. Smoothing compensates for variable frame
// timing inside this window instead of assuming a fixed rate.
const (
	MinFrameDelta = 0.001
	MaxFrameDelta = 0.050
)

// ClampFrameDelta limits a measured frame delta to the supported window.
func ClampFrameDelta(dt float64) float64 {
	return Clamp(dt, MinFrameDelta, MaxFrameDelta)
}

// SmoothCoeff converts a time constant (seconds) and a frame delta (seconds)
// into an exponential blend coefficient, so smoothing stays frame-rate
// independent. The result is the fraction of the remaining distance to cover
// this frame.
func SmoothCoeff(timeConstant, dt float64) float64 {
	if timeConstant <= 0 {
		return 1
	}
	return 1 - math.Exp(-dt/timeConstant)
}
