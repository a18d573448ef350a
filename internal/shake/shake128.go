// Package shake implements the SHAKE-128 extendable-output sponge
// construction over the Keccak-f[1600] permutation. It is used only to
// derive Qvortex's S-box (see the qvortex package); it carries no
// knowledge of Qvortex itself.
package shake

import (
	"github.com/Pre-quel/qvortex/internal/keccak"
)

// Rate is the SHAKE-128 sponge rate in bytes: 1600 bits minus a 256-bit
// capacity, i.e. 168 bytes absorbed or squeezed per permutation call.
const Rate = 168

const (
	domainSep = 0x1F
	padBit    = 0x80
)

// State is a SHAKE-128 sponge context. The zero value is a valid,
// freshly initialized sponge.
type State struct {
	lanes    [keccak.Width]uint64
	rateUsed int
}

// Init resets s to a freshly initialized absorb-phase sponge.
func (s *State) Init() {
	*s = State{}
}

// Absorb XORs in into the sponge's rate region, permuting whenever the
// rate fills. It must not be called after Finalize.
func (s *State) Absorb(in []byte) {
	for len(in) > 0 {
		can := Rate - s.rateUsed
		n := len(in)
		if n > can {
			n = can
		}
		xorBytes(&s.lanes, s.rateUsed, in[:n])
		s.rateUsed += n
		in = in[n:]
		if s.rateUsed == Rate {
			keccak.Permute(&s.lanes)
			s.rateUsed = 0
		}
	}
}

// Finalize applies SHAKE-128 domain separation and padding, then
// transitions the sponge from absorb phase to squeeze phase. It is a
// programmer error to Absorb after Finalize.
func (s *State) Finalize() {
	xorByte(&s.lanes, s.rateUsed, domainSep)
	xorByte(&s.lanes, Rate-1, padBit)
	keccak.Permute(&s.lanes)
	s.rateUsed = 0
}

// Squeeze fills out with pseudorandom output bytes, permuting whenever
// the rate is exhausted. Finalize must be called first.
func (s *State) Squeeze(out []byte) {
	for len(out) > 0 {
		if s.rateUsed == Rate {
			keccak.Permute(&s.lanes)
			s.rateUsed = 0
		}
		can := Rate - s.rateUsed
		n := len(out)
		if n > can {
			n = can
		}
		readBytes(&s.lanes, s.rateUsed, out[:n])
		s.rateUsed += n
		out = out[n:]
	}
}

// Sum is a one-shot convenience: absorb in, finalize, and squeeze
// outLen bytes of output.
func Sum(in []byte, outLen int) []byte {
	var s State
	s.Absorb(in)
	s.Finalize()
	out := make([]byte, outLen)
	s.Squeeze(out)
	return out
}

// xorBytes XORs data into the sponge's byte-addressed state starting at
// byte offset off, viewing each lane as little-endian.
func xorBytes(lanes *[keccak.Width]uint64, off int, data []byte) {
	for i, b := range data {
		laneIdx, byteIdx := laneOffset(off + i)
		shift := uint(byteIdx) * 8
		lanes[laneIdx] ^= uint64(b) << shift
	}
}

func xorByte(lanes *[keccak.Width]uint64, off int, b byte) {
	laneIdx, byteIdx := laneOffset(off)
	lanes[laneIdx] ^= uint64(b) << (uint(byteIdx) * 8)
}

// readBytes copies bytes out of the sponge's byte-addressed state
// starting at byte offset off, little-endian per lane.
func readBytes(lanes *[keccak.Width]uint64, off int, out []byte) {
	for i := range out {
		laneIdx, byteIdx := laneOffset(off + i)
		shift := uint(byteIdx) * 8
		out[i] = byte(lanes[laneIdx] >> shift)
	}
}

func laneOffset(byteOff int) (laneIdx, byteIdx int) {
	return byteOff / 8, byteOff % 8
}
