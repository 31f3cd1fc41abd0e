package mesh

import "fmt"

// assertf panics if cond is false. It guards internal topology
// invariants (CCW winding, edge-face arity) that a caller violating the
// mesh's contract would otherwise corrupt silently; anything reachable
// from malformed but well-typed input should return an error instead.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("mesh: invariant violated: "+format, args...))
	}
}
