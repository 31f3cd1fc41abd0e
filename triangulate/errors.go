package triangulate

import (
	"errors"
	"fmt"
)

var (
	// ErrValidationFailed is returned by Triangulate when Validate has not
	// been called, or was called and returned a non-OK Diagnostics.
	ErrValidationFailed = errors.New("triangulate: input failed validation, call Validate first")

	// ErrNoConstraintPath indicates insertConstraintEdge could not find a
	// face incident to v0 whose opposite edge is crossed by the
	// constraint segment; this signals a corrupted mesh rather than a
	// bad input, since validation already rules out degenerate or
	// crossing constraints.
	ErrNoConstraintPath = errors.New("triangulate: no cavity path found for constraint edge")
)

// assertf panics if cond is false. It guards internal algorithm
// invariants established by Validate; violating one here means the
// caller skipped validation or the mesh was corrupted by a prior bug,
// either of which is a fatal condition per the package's error model.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("triangulate: invariant violated: "+format, args...))
	}
}
