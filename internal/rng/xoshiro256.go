package rng

import "math/bits"

// xoshiro256ss is xoshiro256** (Blackman & Vigna), the stateful PRNG
// driving the shuffle in this build. Its four 64-bit state words are
// seeded exclusively via splitMix64, never directly from the caller's
// seed, so the construction stays versioned and reproducible.
type xoshiro256ss struct {
	s [4]uint64
}

func newXoshiro256ss(seed uint64) *xoshiro256ss {
	mix := newSplitMix64(seed)
	var x xoshiro256ss
	for i := range x.s {
		x.s[i] = mix.next()
	}
	return &x
}

func (x *xoshiro256ss) next() uint64 {
	s := &x.s
	result := bits.RotateLeft64(s[1]*5, 7) * 9

	t := s[1] << 17

	s[2] ^= s[0]
	s[3] ^= s[1]
	s[1] ^= s[2]
	s[0] ^= s[3]

	s[2] ^= t

	s[3] = bits.RotateLeft64(s[3], 45)

	return result
}

// uniform returns a uniformly distributed integer in [0, n) using
// rejection sampling against the generator's full 64-bit range: draws
// at or above the largest multiple of n are redrawn, so the final
// modulo reduction introduces no bias for any n.
func (x *xoshiro256ss) uniform(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	// Largest multiple of n that fits in 64 bits; draws landing in the
	// excluded tail are rejected and redrawn.
	limit := (^uint64(0) / n) * n
	for {
		v := x.next()
		if v < limit {
			return v % n
		}
	}
}
