package contenthash_test

import (
	"math"
	"testing"

	"github.com/audioglyph/helix/pkg/internal/contenthash"
)

func sine(n int, freq float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(2 * math.Pi * freq * float64(i) / 44100.0)
	}
	return out
}

func TestSum_Stable(t *testing.T) {
	samples := sine(500000, 440)
	first := contenthash.Sum(samples)
	for i := 0; i < 5; i++ {
		if got := contenthash.Sum(samples); got != first {
			t.Fatalf("hash changed between calls: %q vs %q", got, first)
		}
	}
}

func TestSum_Empty(t *testing.T) {
	if got := contenthash.Sum(nil); got != "0" {
		t.Fatalf("expected \"0\" for empty samples, got %q", got)
	}
	if got := contenthash.Sum([]float64{}); got != "0" {
		t.Fatalf("expected \"0\" for empty slice, got %q", got)
	}
}

func TestSum_DistinguishesContent(t *testing.T) {
	a := contenthash.Sum(sine(500000, 440))
	b := contenthash.Sum(sine(500000, 523.25))
	if a == b {
		t.Fatalf("different audio content produced identical hash %q", a)
	}
}

func TestSum_IgnoresOffStrideSamples(t *testing.T) {
	samples := sine(100000, 440)
	mutated := make([]float64, len(samples))
	copy(mutated, samples)
	mutated[contenthash.SampleStride/2] += 0.5

	if contenthash.Sum(samples) != contenthash.Sum(mutated) {
		t.Fatalf("off-stride sample affected the hash")
	}
}
