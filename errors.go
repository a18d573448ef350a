package qvortex

import "errors"

// Sentinel errors mirroring the reference C implementation's status
// codes (QVORTEX_ERROR_NULL_POINTER, QVORTEX_ERROR_MEMORY_ALLOCATION).
// They exist for callers migrating code that branched on those codes;
// the hot path here never allocates and so never produces ErrAlloc.
var (
	// ErrNilContext is the error the legacy-shaped entry points map to
	// StatusNilPtr when called with a nil *Context.
	ErrNilContext = errors.New("qvortex: nil context")

	// ErrNilData is returned when a non-empty length is claimed for a
	// nil data pointer. Go's slice model makes this unreachable through
	// normal []byte arguments (a nil slice always reports len 0); it is
	// retained for API-shape parity with qvortex_update's contract.
	ErrNilData = errors.New("qvortex: nil data with non-zero length")

	// ErrNilOutput is the error the legacy-shaped entry points map to
	// StatusNilPtr when a required output buffer is nil or undersized.
	ErrNilOutput = errors.New("qvortex: output buffer too small")

	// ErrAlloc is never produced by this implementation. It exists only
	// so statusFor has an error to map to StatusAllocFail, the analogue of
	// QVORTEX_ERROR_MEMORY_ALLOCATION, for callers porting status-driven
	// logic from the C surface.
	ErrAlloc = errors.New("qvortex: allocation failure")
)

// Status mirrors the C surface's integer return codes for callers that
// need them instead of (or alongside) Go's error values.
type Status int

const (
	StatusSuccess   Status = 0
	StatusNilPtr    Status = -1
	StatusAllocFail Status = -2
)

// statusFor maps a sentinel error to its legacy status code. Unknown
// errors (there are none on this path today) map to StatusNilPtr, the
// most conservative of the two non-success codes.
func statusFor(err error) Status {
	switch err {
	case nil:
		return StatusSuccess
	case ErrAlloc:
		return StatusAllocFail
	default:
		return StatusNilPtr
	}
}
