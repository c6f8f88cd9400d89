// Package randstream provides the deterministic pseudo-random stream used
// wherever the derivation pipeline needs randomness. Streams are seeded from a
// string (normally the audio content hash), hold no global state, and two
// streams built from the same seed produce identical sequences.
package randstream

// Stream is a linear-congruential generator over a 32-bit state. It cannot be
// rewound; reconstruct with the same seed to restart the sequence.
type Stream struct {
	state uint32
}

// New derives the initial state by folding each character of the seed string
// into a multiply-by-31 hash, the same family used for the content hash.
func New(seed string) *Stream {
	var h int32
	for _, c := range seed {
		h = h*31 + int32(c)
	}
	return &Stream{state: uint32(h)}
}

// Next advances the state and returns a float in [0,1).
func (s *Stream) Next() float64 {
	s.state = s.state*1664525 + 1013904223
	return float64(s.state) / 4294967296.0
}

// Range returns a float in [lo, hi).
func (s *Stream) Range(lo, hi float64) float64 {
	return lo + s.Next()*(hi-lo)
}

// IntN returns an integer in [0, n). n must be positive.
func (s *Stream) IntN(n int) int {
	return int(s.Next() * float64(n))
}
