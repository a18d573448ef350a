package shake

import (
	"bytes"
	"testing"

	"golang.org/x/crypto/sha3"
)

func referenceShake128(in []byte, outLen int) []byte {
	h := sha3.NewShake128()
	h.Write(in)
	out := make([]byte, outLen)
	h.Read(out)
	return out
}

func TestSumMatchesReferenceShake128(t *testing.T) {
	cases := []struct {
		name   string
		in     []byte
		outLen int
	}{
		{"empty-32", nil, 32},
		{"short-32", []byte("Hello, Qvortex!"), 32},
		{"key-256", []byte("test key"), 256},
		{"one-rate-block", bytes.Repeat([]byte{0x42}, Rate), 64},
		{"two-rate-blocks-plus-one", bytes.Repeat([]byte{0x07}, 2*Rate+1), 512},
		{"long-output", []byte("seed"), 1024},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Sum(tc.in, tc.outLen)
			want := referenceShake128(tc.in, tc.outLen)
			if !bytes.Equal(got, want) {
				t.Fatalf("Sum(%q, %d) mismatch:\ngot:  %x\nwant: %x", tc.in, tc.outLen, got, want)
			}
		})
	}
}

func TestSqueezeIsIncrementalOverRateBoundary(t *testing.T) {
	in := []byte("incremental squeeze test")
	full := Sum(in, 3*Rate+5)

	var s State
	s.Absorb(in)
	s.Finalize()

	got := make([]byte, len(full))
	// Squeeze in small, rate-straddling chunks and confirm it matches a
	// single big squeeze of the same total length.
	off := 0
	for _, n := range []int{1, 7, Rate - 5, Rate, 3, len(full)} {
		if off+n > len(got) {
			n = len(got) - off
		}
		if n <= 0 {
			continue
		}
		s.Squeeze(got[off : off+n])
		off += n
	}
	if off < len(got) {
		s.Squeeze(got[off:])
	}

	if !bytes.Equal(got, full) {
		t.Fatalf("incremental squeeze mismatch:\ngot:  %x\nwant: %x", got, full)
	}
}

func TestAbsorbIsIncrementalOverRateBoundary(t *testing.T) {
	in := bytes.Repeat([]byte{0x9}, 2*Rate+13)
	want := Sum(in, 32)

	var s State
	for _, n := range []int{1, Rate - 1, 2, Rate, len(in)} {
		if len(in) == 0 {
			break
		}
		if n > len(in) {
			n = len(in)
		}
		s.Absorb(in[:n])
		in = in[n:]
	}
	s.Finalize()
	got := make([]byte, 32)
	s.Squeeze(got)

	if !bytes.Equal(got, want) {
		t.Fatalf("chunked absorb mismatch:\ngot:  %x\nwant: %x", got, want)
	}
}

func TestInitResetsState(t *testing.T) {
	var s State
	s.Absorb([]byte("something"))
	s.Finalize()
	s.Init()

	a := make([]byte, 32)
	s.Absorb([]byte("fresh"))
	s.Finalize()
	s.Squeeze(a)

	want := Sum([]byte("fresh"), 32)
	if !bytes.Equal(a, want) {
		t.Fatalf("State after Init() diverged: got %x want %x", a, want)
	}
}

func BenchmarkSum(b *testing.B) {
	in := bytes.Repeat([]byte{0x5}, 4096)
	b.SetBytes(int64(len(in)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Sum(in, 32)
	}
}
