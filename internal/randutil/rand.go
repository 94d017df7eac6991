// Package randutil centralises seeding so every deterministic surface of the
// program (dealing, bot noise, simulations, equity sampling) derives its
// randomness the same way.
package randutil

import rand "math/rand/v2"

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from one int64. rand/v2's
// PCG wants two 64-bit seeds; both come from the same splitmix finalizer so
// nearby seeds still produce unrelated streams.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Derive maps a base seed and a stream number to an independent child seed.
// Simulation hands and parallel equity workers each take their own stream so
// results stay reproducible under any worker count or scheduling order.
func Derive(seed, stream int64) int64 {
	return int64(mix(mix(uint64(seed)) + uint64(stream)*goldenRatio64))
}

// mix is the splitmix64 finalizer.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
