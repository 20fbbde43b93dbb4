package selection

import "hash/fnv"

// seededFraction returns a deterministic pseudo-random value in [0,1)
// derived from the given parts with FNV-1a. The same inputs always produce
// the same value across processes and platforms.
func seededFraction(parts ...string) float64 {
	h := fnv.New64a()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return float64(h.Sum64()%10_000) / 10_000
}

// seededBand maps a deterministic fraction into [lo, hi).
func seededBand(lo, hi float64, parts ...string) float64 {
	return lo + (hi-lo)*seededFraction(parts...)
}
