// SPDX-License-Identifier: MIT

package quantuminfo

import (
	"math"
	"math/rand"
)

// defaultRNGSeed replaces seed==0 so the zero value stays reproducible.
const defaultRNGSeed int64 = 1

// sampleSeed mixes the caller seed with a sample index (SplitMix64 finalizer),
// so sample i draws the same parameters however samples are scheduled.
// Complexity: O(1).
func sampleSeed(seed int64, sample uint64) int64 {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	x := uint64(seed) ^ (sample + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// sampleRNG returns the private stream for one sample.
// A *rand.Rand is not goroutine-safe; each worker owns its own.
func sampleRNG(seed int64, sample int) *rand.Rand {
	return rand.New(rand.NewSource(sampleSeed(seed, uint64(sample))))
}

// uniformAngles draws k angles uniformly from [−π, π).
func uniformAngles(rng *rand.Rand, k int) []float64 {
	out := make([]float64, k)
	for i := range out {
		out[i] = (2*rng.Float64() - 1) * math.Pi
	}

	return out
}
