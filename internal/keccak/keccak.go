// Package keccak implements the Keccak-f[1600] permutation: a pure,
// deterministic function over a 25-lane, 64-bit-wide state. It carries no
// domain separation, padding, or rate/capacity split of its own — those
// belong to whatever sponge construction sits on top (see
// github.com/Pre-quel/qvortex/internal/shake).
package keccak

// Width is the number of 64-bit lanes in the permutation state.
const Width = 25

// Rounds is the number of Keccak-f[1600] rounds.
const Rounds = 24

// rc holds the 24 round constants used by the iota step, reproduced
// bit-exact from the canonical Keccak specification.
var rc = [Rounds]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808a,
	0x8000000080008000, 0x000000000000808b, 0x0000000080000001,
	0x8000000080008081, 0x8000000000008009, 0x000000000000008a,
	0x0000000000000088, 0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b, 0x8000000000008089,
	0x8000000000008003, 0x8000000000008002, 0x8000000000000080,
	0x000000000000800a, 0x800000008000000a, 0x8000000080008081,
	0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// piIndices is the destination lane, in the linearized 5x5 layout, that
// each of the 24 non-(0,0) lanes moves to during rho+pi.
var piIndices = [24]int{
	1, 6, 9, 22, 14, 20, 2, 12,
	13, 19, 23, 15, 4, 24, 21, 8,
	16, 5, 3, 18, 17, 11, 7, 10,
}

// rhoOffsets is the rotation amount applied to each lane in the same
// order as piIndices.
var rhoOffsets = [24]uint{
	1, 3, 6, 10, 15, 21, 28, 36, 45, 55,
	2, 14, 27, 41, 56, 8, 25, 43, 62, 18,
	39, 61, 20, 44,
}

func rotl64(x uint64, n uint) uint64 {
	n &= 63
	if n == 0 {
		return x
	}
	return (x << n) | (x >> (64 - n))
}

// Permute applies the full 24-round Keccak-f[1600] permutation to a in
// place. a is indexed in row-major order: lane (x, y) lives at a[x+5*y].
func Permute(a *[Width]uint64) {
	var c [5]uint64
	var d [5]uint64

	for round := 0; round < Rounds; round++ {
		// Theta
		for x := 0; x < 5; x++ {
			c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
		}
		for x := 0; x < 5; x++ {
			d[x] = rotl64(c[(x+1)%5], 1) ^ c[(x+4)%5]
		}
		for x := 0; x < 5; x++ {
			a[x] ^= d[x]
			a[x+5] ^= d[x]
			a[x+10] ^= d[x]
			a[x+15] ^= d[x]
			a[x+20] ^= d[x]
		}

		// Rho + Pi
		t := a[1]
		for i := 0; i < 24; i++ {
			j := piIndices[i]
			temp := a[j]
			a[j] = rotl64(t, rhoOffsets[i])
			t = temp
		}

		// Chi
		for row := 0; row < 25; row += 5 {
			a0, a1, a2, a3, a4 := a[row], a[row+1], a[row+2], a[row+3], a[row+4]
			a[row] = a0 ^ (^a1 & a2)
			a[row+1] = a1 ^ (^a2 & a3)
			a[row+2] = a2 ^ (^a3 & a4)
			a[row+3] = a3 ^ (^a4 & a0)
			a[row+4] = a4 ^ (^a0 & a1)
		}

		// Iota
		a[0] ^= rc[round]
	}
}
