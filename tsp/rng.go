// Package tsp - deterministic random streams.
//
// Every random choice in a solve (the ant colony) comes from a *rand.Rand
// created here; nothing reads the wall clock or the global source. SolveAll
// derives one independent stream per lane from the caller's seed.
//
// math/rand.Rand is not goroutine-safe: each stream belongs to one solve.
package tsp

import "math/rand"

// defaultRNGSeed is used when callers pass seed == 0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic generator; seed 0 maps to defaultRNGSeed.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed with a lane number using the SplitMix64
// finalizer, so neighbouring lanes get uncorrelated streams.
//
// Complexity: O(1).
func deriveSeed(parent int64, lane uint64) int64 {
	if parent == 0 {
		parent = defaultRNGSeed
	}
	x := uint64(parent) ^ (lane + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
