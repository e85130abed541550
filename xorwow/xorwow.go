// Package xorwow implements Marsaglia's xorwow pseudo-random generator, the
// deterministic randomness source behind the stochastic optimizers.
//
// Goals (shared with every stochastic component of this module):
//   - Determinism: same seed ⇒ identical stream across platforms. No
//     time-based sources hidden anywhere.
//   - Encapsulation: a single constructor; callers hold the only reference.
//   - Safety: no panics, no logging.
//
// Concurrency: a *Xorwow is NOT goroutine-safe. Create one generator per
// worker instead of sharing.
package xorwow

// norm scales a uint32 onto [0,1): 2^-32.
const norm = 2.3283064365386963e-10

// warmupDraws decorrelates the fixed initial state from the seed word.
const warmupDraws = 10

// Xorwow is a 160-bit xorshift generator with a Weyl sequence counter.
// Period 2^192 − 2^32.
type Xorwow struct {
	x, y, z, w, v uint32
	d             uint32
}

// New returns a generator seeded with seed. The seed occupies one state word;
// ten warm-up draws spread it through the full state before the generator is
// handed to the caller, so nearby seeds still produce unrelated streams.
func New(seed uint32) *Xorwow {
	g := &Xorwow{
		x: 123456789,
		y: 362436069,
		z: 521288629,
		w: seed,
		v: 88675123,
		d: 6615241,
	}
	for i := 0; i < warmupDraws; i++ {
		g.Uint32()
	}
	return g
}

// Uint32 advances the state and returns the next 32 uniform bits. The
// combining step is an end-around-carry add: an overflow wraps back into the
// low bit instead of being discarded. Changing it to a plain modular add
// would produce a different stream for the same seed.
func (g *Xorwow) Uint32() uint32 {
	t := g.x ^ (g.x >> 2)
	g.x = g.y
	g.y = g.z
	g.z = g.w
	g.w = g.v
	g.v = (g.v ^ (g.v << 4)) ^ (t ^ (t << 1))
	g.d += 362437

	s := g.w + (g.v ^ g.d)
	if s < g.w { // overflow: carry wraps around
		s++
	}
	return s
}

// Float64 returns the next uniform value in [0,1).
func (g *Xorwow) Float64() float64 {
	return float64(g.Uint32()) * norm
}

// Floats returns a fresh slice of n uniform values in [0,1).
func (g *Xorwow) Floats(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = g.Float64()
	}
	return out
}
