package qvortex

import (
	"encoding/binary"
	"hash"

	"github.com/Pre-quel/qvortex/internal/shake"
)

// Context satisfies the standard library's hash.Hash interface.
var _ hash.Hash = (*Context)(nil)

// Size is the fixed digest length in bytes. Qvortex defines no
// variable-length output mode.
const Size = 32

// BlockSize is the compression function's input block size in bytes.
const BlockSize = 64

// iv is the fixed initial chaining state, little-endian words taken
// verbatim from the reference implementation.
var iv = [8]uint64{
	0x6A09E667F3BCC908, 0xBB67AE8584CAA73B, 0x3C6EF372FE94F82B, 0xA54FF53A5F1D36F1,
	0x510E527FADE682D1, 0x9B05688C2B3E6C1F, 0x1F83D9ABFB41BD6B, 0x5BE0CD19137E2179,
}

// defaultSeedByte fills the 32-byte seed used to derive the S-box when
// no key is supplied.
const defaultSeedByte = 0xCC

// Context is an incremental Qvortex hashing context. The zero value is
// not usable directly; construct one with New or Init. A Context must
// not be used concurrently from multiple goroutines without external
// synchronization — it holds mutable, unsynchronized state, exactly
// like the standard library's hash.Hash implementations.
type Context struct {
	state     [8]uint64
	sbox      [256]byte
	buffer    [BlockSize]byte
	bufferLen int
	totalLen  uint64
	key       []byte
}

// New returns an initialized Context. key may be nil or empty for
// unkeyed hashing.
func New(key []byte) *Context {
	c := &Context{}
	c.Init(key)
	return c
}

// Init (re)initializes c with the fixed IV and a fresh S-box derived
// from key. It is equivalent to discarding c and calling New, but
// reuses the allocation.
func (c *Context) Init(key []byte) {
	c.state = iv
	c.sbox = deriveSBox(key)
	c.buffer = [BlockSize]byte{}
	c.bufferLen = 0
	c.totalLen = 0
	c.key = key
}

// deriveSBox implements the two-stage SHAKE-128 derivation from the
// key (or a fixed default seed when unkeyed) described in the S-box
// derivation step: seed = SHAKE128(key, 32) (or 0xCC*32 when unkeyed),
// then sbox = SHAKE128(seed, 256).
func deriveSBox(key []byte) [256]byte {
	var seed []byte
	if len(key) > 0 {
		seed = shake.Sum(key, 32)
	} else {
		seed = make([]byte, 32)
		for i := range seed {
			seed[i] = defaultSeedByte
		}
	}
	box := shake.Sum(seed, 256)
	var out [256]byte
	copy(out[:], box)
	return out
}

// Write absorbs p into the hash state. It always returns
// (len(p), nil); Qvortex's compression function is total over every
// byte string, so there is no failure mode to report here.
func (c *Context) Write(p []byte) (int, error) {
	n := len(p)
	c.totalLen += uint64(n)

	if c.bufferLen > 0 {
		need := BlockSize - c.bufferLen
		take := len(p)
		if take > need {
			take = need
		}
		copy(c.buffer[c.bufferLen:], p[:take])
		c.bufferLen += take
		p = p[take:]
		if c.bufferLen == BlockSize {
			c.processBlock(c.buffer[:])
			c.bufferLen = 0
		}
	}

	for len(p) >= BlockSize {
		c.processBlock(p[:BlockSize])
		p = p[BlockSize:]
	}

	if len(p) > 0 {
		c.bufferLen = copy(c.buffer[:], p)
	}

	return n, nil
}

// Sum appends the current digest to b and returns the resulting slice,
// without modifying c's state — matching hash.Hash's Sum contract. A
// defensive copy of c is finalized internally.
func (c *Context) Sum(b []byte) []byte {
	clone := *c
	digest := clone.Final()
	return append(b, digest[:]...)
}

// Final pads and compresses the last block, emits the 32-byte digest,
// and zeroes c so key-derived material does not persist. After Final,
// c must be re-initialized with Init before further use.
func (c *Context) Final() [32]byte {
	current := c.bufferLen
	c.buffer[current] = 0x80
	current++

	padZeros := BlockSize - (current % BlockSize)
	if padZeros < 8 {
		padZeros += BlockSize
	}
	padZeros -= 8

	if current+padZeros > BlockSize {
		for i := current; i < BlockSize; i++ {
			c.buffer[i] = 0
		}
		c.processBlock(c.buffer[:])
		current = 0
		c.buffer = [BlockSize]byte{}
	}
	for i := current; i < current+padZeros; i++ {
		c.buffer[i] = 0
	}
	current += padZeros

	binary.LittleEndian.PutUint64(c.buffer[BlockSize-8:], c.totalLen*8)

	c.processBlock(c.buffer[:])

	var out [32]byte
	for i := 0; i < 4; i++ {
		binary.LittleEndian.PutUint64(out[i*8:i*8+8], c.state[i])
	}

	*c = Context{}
	return out
}

// Reset reinitializes c with the key it was most recently constructed
// or Init'd with, so it can be reused. This is the hash.Hash-compatible
// analogue of calling Init again. Final clears the stored key, so Reset
// after Final reinitializes c for unkeyed hashing.
func (c *Context) Reset() {
	c.Init(c.key)
}

// Size returns the digest length in bytes, satisfying hash.Hash.
func (c *Context) Size() int { return Size }

// BlockSize returns the compression function's block size, satisfying
// hash.Hash.
func (c *Context) BlockSize() int { return BlockSize }

// Sum computes the one-shot Qvortex digest of data, keyed by key (nil
// or empty for unkeyed hashing).
func Sum(data, key []byte) [32]byte {
	c := New(key)
	c.Write(data)
	return c.Final()
}

// SumLegacy mirrors qvortex_hash's full parameter list, including the
// two legacy parameters (blocksPerSBox, usePrecomputed) that the
// reference implementation accepts purely for binary compatibility and
// never reads. They are accepted and ignored here for the same reason.
func SumLegacy(data []byte, blocksPerSBox int, usePrecomputed bool, key []byte) [32]byte {
	_ = blocksPerSBox
	_ = usePrecomputed
	return Sum(data, key)
}

// VortexHash is the legacy alias for SumLegacy, matching the reference
// C surface's vortex_hash wrapper around qvortex_hash.
func VortexHash(data []byte, blocksPerSBox int, usePrecomputed bool, key []byte) [32]byte {
	return SumLegacy(data, blocksPerSBox, usePrecomputed, key)
}

// Version returns the implementation version string.
func Version() string {
	return "1.0.0"
}
