// Package contenthash derives a stable identifier from decoded audio samples.
// The hash is the seed for all structure and placement randomness, so it is the
// determinism contract of the whole system: same audio in, same identifier out,
// across sessions and reloads.
package contenthash

import "strconv"

// SampleStride bounds hashing cost on long buffers; only every SampleStride-th
// sample participates in the hash.
const SampleStride = 1000

// sampleScale fixes the precision at which a float sample is folded in.
const sampleScale = 100000

// Sum folds the strided sample values into a 32-bit multiply-by-31 hash and
// renders the absolute value in hexadecimal. It is a pure function of the
// sample values: no dependency on sample rate, wall-clock time or prior
// invocations. An empty sample slice hashes to "0".
func Sum(samples []float64) string {
	var h int32
	for i := 0; i < len(samples); i += SampleStride {
		h = h*31 + int32(samples[i]*sampleScale)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return strconv.FormatInt(v, 16)
}
