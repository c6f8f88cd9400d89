package utils_test

import (
	"math"
	"testing"

	"github.com/audioglyph/helix/pkg/internal/utils"
)

func TestClamp(t *testing.T) {
	if got := utils.Clamp(2.0, 0, 1); got != 1 {
		t.Errorf("Expected 1, got %v", got)
	}
	if got := utils.Clamp(-2.0, 0, 1); got != 0 {
		t.Errorf("Expected 0, got %v", got)
	}
	if got := utils.Clamp(0.5, 0, 1); got != 0.5 {
		t.Errorf("Expected 0.5, got %v", got)
	}
}

func TestWrapTau(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0, 0},
		{utils.Tau, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{3 * utils.Tau, 0},
	}
	for _, c := range cases {
		if got := utils.WrapTau(c.in); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("WrapTau(%v): expected %v, got %v", c.in, c.want, got)
		}
	}
}

func TestForwardDeltaNeverNegative(t *testing.T) {
	for a := 0.0; a < utils.Tau; a += 0.37 {
		for b := 0.0; b < utils.Tau; b += 0.53 {
			d := utils.ForwardDelta(a, b)
			if d < 0 || d >= utils.Tau {
				t.Fatalf("ForwardDelta(%v, %v) = %v out of [0, tau)", a, b, d)
			}
			if math.Abs(utils.WrapTau(a+d)-utils.WrapTau(b)) > 1e-9 {
				t.Fatalf("ForwardDelta(%v, %v) does not land on target", a, b)
			}
		}
	}
}

func TestSmoothCoeff(t *testing.T) {
	if got := utils.SmoothCoeff(0, 0.016); got != 1 {
		t.Errorf("zero time constant should snap, got %v", got)
	}
	slow := utils.SmoothCoeff(1.0, 0.016)
	fast := utils.SmoothCoeff(0.05, 0.016)
	if slow >= fast {
		t.Errorf("longer time constant should blend less per frame: %v >= %v", slow, fast)
	}
	if slow <= 0 || fast >= 1 {
		t.Errorf("coefficients out of range: %v, %v", slow, fast)
	}
}
