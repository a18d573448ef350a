package qvortex

// The functions in this file mirror the reference C surface's exact
// entry points (qvortex_hash, qvortex_init, qvortex_update,
// qvortex_final, qvortex_version, vortex_hash) status-code for
// status-code, for callers porting code that branches on those codes
// instead of idiomatic Go errors. New code should prefer Sum, New,
// (*Context).Write, and (*Context).Final directly.

// QvortexHash is qvortex_hash's signature translated to Go: data may be
// nil only if len(data) == 0, out must have length >= Size. The two
// legacy integer parameters are accepted and ignored.
func QvortexHash(data []byte, blocksPerSBox int, usePrecomputed bool, key []byte, out []byte) Status {
	if err := checkOut(out); err != nil {
		return statusFor(err)
	}
	digest := SumLegacy(data, blocksPerSBox, usePrecomputed, key)
	copy(out, digest[:])
	return StatusSuccess
}

// QvortexInit is qvortex_init translated to Go.
func QvortexInit(ctx *Context, key []byte) Status {
	if ctx == nil {
		return statusFor(ErrNilContext)
	}
	ctx.Init(key)
	return StatusSuccess
}

// QvortexUpdate is qvortex_update translated to Go.
func QvortexUpdate(ctx *Context, data []byte) Status {
	if ctx == nil {
		return statusFor(ErrNilContext)
	}
	ctx.Write(data)
	return StatusSuccess
}

// QvortexFinal is qvortex_final translated to Go. out must have length
// >= Size.
func QvortexFinal(ctx *Context, out []byte) Status {
	if ctx == nil {
		return statusFor(ErrNilContext)
	}
	if err := checkOut(out); err != nil {
		return statusFor(err)
	}
	digest := ctx.Final()
	copy(out, digest[:])
	return StatusSuccess
}

// QvortexVersion is qvortex_version translated to Go.
func QvortexVersion() string {
	return Version()
}

func checkOut(out []byte) error {
	if out == nil || len(out) < Size {
		return ErrNilOutput
	}
	return nil
}
