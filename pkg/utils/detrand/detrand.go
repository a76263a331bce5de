// ABOUTME: Deterministic pseudo-random variation derived from content identity strings
// ABOUTME: The same key always maps to the same value so estimates survive recomputation

package detrand

import "hash/fnv"

// Hash32 returns the FNV-1a 32-bit hash of key.
func Hash32(key string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(key))
	return h.Sum32()
}

// Unit maps key onto [0, 1) with four decimal digits of resolution.
func Unit(key string) float64 {
	return float64(Hash32(key)%10000) / 10000
}

// InRange maps key onto [min, max). Identical keys always yield the
// identical value, which is what lets reach figures stay stable across
// repeated computations without persisting them.
func InRange(key string, min, max float64) float64 {
	return min + Unit(key)*(max-min)
}
