package game

import "github.com/iburimskiy/gfx-demo/internal/config"

// Rand is the randomness the scene draws from. *rand.Rand from math/rand/v2
// satisfies it.
type Rand interface {
	Float64() float64
	Uint32() uint32
}

// Uniform samples [lo, hi).
func Uniform(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// OpaqueColor returns a random packed color with the alpha byte forced to 0xFF.
func OpaqueColor(r Rand) uint32 {
	return r.Uint32() | config.OpaqueAlpha
}
