package mesh

// VertexHandle, EdgeHandle, and FaceHandle are opaque references into a
// Mesh's arenas. Each pairs an arena index with the generation the slot
// was allocated at, so a handle captured before a deletion can never be
// mistaken for whatever unrelated element is later allocated into the
// same slot — dereferencing a stale handle reports NilVertex/NilEdge/
// NilFace rather than silently resolving to the wrong element.
//
// This is the arena-with-generation-counter design spec.md's Design
// Notes section calls for in place of raw pointers: it gives O(1)
// random access, lets deleted slots be recycled via a free list, and
// needs no reference counting or GC-cycle awareness.
type VertexHandle struct {
	index int32
	gen   uint32
}

type EdgeHandle struct {
	index int32
	gen   uint32
}

type FaceHandle struct {
	index int32
	gen   uint32
}

// NilVertex, NilEdge, and NilFace are the sentinel handles at index -1,
// where no live element is ever allocated. The zero value of a handle
// type has index 0 and is not nil.
var (
	NilVertex = VertexHandle{index: -1}
	NilEdge   = EdgeHandle{index: -1}
	NilFace   = FaceHandle{index: -1}
)

func (h VertexHandle) IsNil() bool { return h.index < 0 }
func (h EdgeHandle) IsNil() bool   { return h.index < 0 }
func (h FaceHandle) IsNil() bool   { return h.index < 0 }

// Index exposes the raw arena slot index, primarily for use as a map
// key or for deterministic sorting by allocation order.
func (h VertexHandle) Index() int { return int(h.index) }
func (h EdgeHandle) Index() int   { return int(h.index) }
func (h FaceHandle) Index() int   { return int(h.index) }

// Generation exposes the slot generation the handle was issued at,
// primarily for diagnostic formatting.
func (h VertexHandle) Generation() uint32 { return h.gen }
func (h EdgeHandle) Generation() uint32   { return h.gen }
func (h FaceHandle) Generation() uint32   { return h.gen }
