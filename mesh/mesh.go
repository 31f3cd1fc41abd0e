// Package mesh implements the triangulator's topology layer: an
// arena-allocated collection of vertices, edges, and faces addressed by
// stable, generation-checked handles, plus the surgery primitives
// (splitFace, splitEdge, swapEdge, createTriangleAndEdges, and the
// delete variants) that every higher-level triangulation algorithm is
// built from.
//
// No geometric decision is made in this package. Callers supply the
// coordinates; the mesh only tracks which vertices, edges, and faces
// exist and how they touch each other.
package mesh

import "github.com/arvidw/geotri/types"

type vertexSlot struct {
	gen        uint32
	alive      bool
	point      types.Point
	inputIndex int
	edges      []EdgeHandle
	faces      []FaceHandle
}

type edgeSlot struct {
	gen         uint32
	alive       bool
	v1, v2      VertexHandle
	f1, f2      FaceHandle
	inputIndex  int
	outputIndex int
}

type faceSlot struct {
	gen   uint32
	alive bool
	v     [3]VertexHandle
	e     [3]EdgeHandle
}

// Mesh is the arena of vertices, edges, and faces. The zero value is not
// usable; construct one with NewMesh.
type Mesh struct {
	vertices []vertexSlot
	edges    []edgeSlot
	faces    []faceSlot

	freeVertices []int32
	freeEdges    []int32
	freeFaces    []int32

	liveVertices int
	liveEdges    int
	liveFaces    int
}

// NewMesh constructs an empty Mesh.
func NewMesh(opts ...Option) *Mesh {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Mesh{
		vertices: make([]vertexSlot, 0, cfg.vertexCap),
		edges:    make([]edgeSlot, 0, cfg.edgeCap),
		faces:    make([]faceSlot, 0, cfg.faceCap),
	}
}

// CreateVertex allocates a new vertex at p. inputIndex records the
// vertex's position in the caller's original input sequence and is
// purely informational; pass -1 for vertices with no such back-reference
// (for example vertices created only to carry out mesh surgery).
func (m *Mesh) CreateVertex(p types.Point, inputIndex int) VertexHandle {
	slot := vertexSlot{point: p, inputIndex: inputIndex, alive: true}
	if n := len(m.freeVertices); n > 0 {
		idx := m.freeVertices[n-1]
		m.freeVertices = m.freeVertices[:n-1]
		slot.gen = m.vertices[idx].gen + 1
		m.vertices[idx] = slot
		m.liveVertices++
		return VertexHandle{index: idx, gen: slot.gen}
	}
	slot.gen = 1
	m.vertices = append(m.vertices, slot)
	m.liveVertices++
	return VertexHandle{index: int32(len(m.vertices) - 1), gen: slot.gen}
}

func (m *Mesh) vertexSlot(h VertexHandle) (*vertexSlot, bool) {
	if h.index < 0 || int(h.index) >= len(m.vertices) {
		return nil, false
	}
	s := &m.vertices[h.index]
	if !s.alive || s.gen != h.gen {
		return nil, false
	}
	return s, true
}

func (m *Mesh) edgeSlot(h EdgeHandle) (*edgeSlot, bool) {
	if h.index < 0 || int(h.index) >= len(m.edges) {
		return nil, false
	}
	s := &m.edges[h.index]
	if !s.alive || s.gen != h.gen {
		return nil, false
	}
	return s, true
}

func (m *Mesh) faceSlot(h FaceHandle) (*faceSlot, bool) {
	if h.index < 0 || int(h.index) >= len(m.faces) {
		return nil, false
	}
	s := &m.faces[h.index]
	if !s.alive || s.gen != h.gen {
		return nil, false
	}
	return s, true
}

// VertexAlive reports whether h still refers to a live vertex.
func (m *Mesh) VertexAlive(h VertexHandle) bool { _, ok := m.vertexSlot(h); return ok }

// EdgeAlive reports whether h still refers to a live edge.
func (m *Mesh) EdgeAlive(h EdgeHandle) bool { _, ok := m.edgeSlot(h); return ok }

// FaceAlive reports whether h still refers to a live face.
func (m *Mesh) FaceAlive(h FaceHandle) bool { _, ok := m.faceSlot(h); return ok }

// VertexPoint returns the coordinates of v, or the zero Point if v is stale.
func (m *Mesh) VertexPoint(v VertexHandle) types.Point {
	s, ok := m.vertexSlot(v)
	if !ok {
		return types.Point{}
	}
	return s.point
}

// VertexInputIndex returns the back-reference stamped at CreateVertex, or
// -1 if v is stale or carries none.
func (m *Mesh) VertexInputIndex(v VertexHandle) int {
	s, ok := m.vertexSlot(v)
	if !ok {
		return -1
	}
	return s.inputIndex
}

// VertexEdges returns the edges currently incident to v, in no
// particular order.
func (m *Mesh) VertexEdges(v VertexHandle) []EdgeHandle {
	s, ok := m.vertexSlot(v)
	if !ok {
		return nil
	}
	out := make([]EdgeHandle, len(s.edges))
	copy(out, s.edges)
	return out
}

// VertexFaces returns the faces currently incident to v, in no
// particular order.
func (m *Mesh) VertexFaces(v VertexHandle) []FaceHandle {
	s, ok := m.vertexSlot(v)
	if !ok {
		return nil
	}
	out := make([]FaceHandle, len(s.faces))
	copy(out, s.faces)
	return out
}

// EdgeVertices returns the two endpoints of e.
func (m *Mesh) EdgeVertices(e EdgeHandle) (VertexHandle, VertexHandle) {
	s, ok := m.edgeSlot(e)
	if !ok {
		return NilVertex, NilVertex
	}
	return s.v1, s.v2
}

// EdgeFaces returns the faces bordering e. A boundary edge has exactly
// one; a valid manifold edge never has more than two. Missing slots are
// reported as NilFace.
func (m *Mesh) EdgeFaces(e EdgeHandle) (FaceHandle, FaceHandle) {
	s, ok := m.edgeSlot(e)
	if !ok {
		return NilFace, NilFace
	}
	return s.f1, s.f2
}

// EdgeFaceCount reports how many faces currently border e (0, 1, or 2).
func (m *Mesh) EdgeFaceCount(e EdgeHandle) int {
	s, ok := m.edgeSlot(e)
	if !ok {
		return 0
	}
	n := 0
	if !s.f1.IsNil() {
		n++
	}
	if !s.f2.IsNil() {
		n++
	}
	return n
}

// EdgeInputIndex returns the back-reference to the caller's constraint
// edge list, or -1 if e is not a constraint edge or is stale.
func (m *Mesh) EdgeInputIndex(e EdgeHandle) int {
	s, ok := m.edgeSlot(e)
	if !ok {
		return -1
	}
	return s.inputIndex
}

// SetEdgeInputIndex stamps e as originating from position idx of the
// caller's constraint edge list. Pass -1 to clear the back-reference.
func (m *Mesh) SetEdgeInputIndex(e EdgeHandle, idx int) {
	if s, ok := m.edgeSlot(e); ok {
		s.inputIndex = idx
	}
}

// EdgeOutputIndex returns the index stamped by SetEdgeOutputIndex, or -1
// if none has been assigned yet or e is stale.
func (m *Mesh) EdgeOutputIndex(e EdgeHandle) int {
	s, ok := m.edgeSlot(e)
	if !ok {
		return -1
	}
	return s.outputIndex
}

// SetEdgeOutputIndex stamps the position e was emitted at. Used by the
// output-emission stage to give edges a deterministic, caller-facing
// ordering distinct from their arena index.
func (m *Mesh) SetEdgeOutputIndex(e EdgeHandle, idx int) {
	if s, ok := m.edgeSlot(e); ok {
		s.outputIndex = idx
	}
}

// FaceVertices returns the three vertices of f in counter-clockwise
// order, with v[i] and v[(i+1)%3] the endpoints of e[i].
func (m *Mesh) FaceVertices(f FaceHandle) [3]VertexHandle {
	s, ok := m.faceSlot(f)
	if !ok {
		return [3]VertexHandle{NilVertex, NilVertex, NilVertex}
	}
	return s.v
}

// FaceEdges returns the three edges of f, aligned with FaceVertices so
// that e[i] connects v[i] to v[(i+1)%3].
func (m *Mesh) FaceEdges(f FaceHandle) [3]EdgeHandle {
	s, ok := m.faceSlot(f)
	if !ok {
		return [3]EdgeHandle{NilEdge, NilEdge, NilEdge}
	}
	return s.e
}

// Vertices returns every live vertex handle, in arena (allocation slot)
// order. The order is deterministic for a given sequence of mesh
// operations and does not depend on map iteration or pointer values.
func (m *Mesh) Vertices() []VertexHandle {
	out := make([]VertexHandle, 0, m.liveVertices)
	for i := range m.vertices {
		if m.vertices[i].alive {
			out = append(out, VertexHandle{index: int32(i), gen: m.vertices[i].gen})
		}
	}
	return out
}

// Edges returns every live edge handle, in arena order.
func (m *Mesh) Edges() []EdgeHandle {
	out := make([]EdgeHandle, 0, m.liveEdges)
	for i := range m.edges {
		if m.edges[i].alive {
			out = append(out, EdgeHandle{index: int32(i), gen: m.edges[i].gen})
		}
	}
	return out
}

// Faces returns every live face handle, in arena order.
func (m *Mesh) Faces() []FaceHandle {
	out := make([]FaceHandle, 0, m.liveFaces)
	for i := range m.faces {
		if m.faces[i].alive {
			out = append(out, FaceHandle{index: int32(i), gen: m.faces[i].gen})
		}
	}
	return out
}

// VertexCount, EdgeCount, and FaceCount report the number of live
// elements without allocating a slice.
func (m *Mesh) VertexCount() int { return m.liveVertices }
func (m *Mesh) EdgeCount() int   { return m.liveEdges }
func (m *Mesh) FaceCount() int   { return m.liveFaces }

func vertexHasEdge(s *vertexSlot, e EdgeHandle) bool {
	for _, x := range s.edges {
		if x == e {
			return true
		}
	}
	return false
}

func removeEdgeFromVertex(s *vertexSlot, e EdgeHandle) {
	for i, x := range s.edges {
		if x == e {
			last := len(s.edges) - 1
			s.edges[i] = s.edges[last]
			s.edges = s.edges[:last]
			return
		}
	}
}

func removeFaceFromVertex(s *vertexSlot, f FaceHandle) {
	for i, x := range s.faces {
		if x == f {
			last := len(s.faces) - 1
			s.faces[i] = s.faces[last]
			s.faces = s.faces[:last]
			return
		}
	}
}

// CreateEdge allocates a new edge between a and b and links it into both
// vertices' adjacency lists. It does not check whether an edge between a
// and b already exists; callers that need edge reuse should look one up
// first with FindEdge.
func (m *Mesh) CreateEdge(a, b VertexHandle) EdgeHandle {
	slot := edgeSlot{v1: a, v2: b, f1: NilFace, f2: NilFace, inputIndex: -1, outputIndex: -1, alive: true}
	var h EdgeHandle
	if n := len(m.freeEdges); n > 0 {
		idx := m.freeEdges[n-1]
		m.freeEdges = m.freeEdges[:n-1]
		slot.gen = m.edges[idx].gen + 1
		m.edges[idx] = slot
		h = EdgeHandle{index: idx, gen: slot.gen}
	} else {
		slot.gen = 1
		m.edges = append(m.edges, slot)
		h = EdgeHandle{index: int32(len(m.edges) - 1), gen: slot.gen}
	}
	m.liveEdges++
	if s, ok := m.vertexSlot(a); ok {
		s.edges = append(s.edges, h)
	}
	if s, ok := m.vertexSlot(b); ok {
		s.edges = append(s.edges, h)
	}
	return h
}

// FindEdge returns the edge between a and b if one already exists.
func (m *Mesh) FindEdge(a, b VertexHandle) (EdgeHandle, bool) {
	sa, ok := m.vertexSlot(a)
	if !ok {
		return NilEdge, false
	}
	for _, eh := range sa.edges {
		es, ok := m.edgeSlot(eh)
		if !ok {
			continue
		}
		if (es.v1 == a && es.v2 == b) || (es.v1 == b && es.v2 == a) {
			return eh, true
		}
	}
	return NilEdge, false
}

// attachFaceToEdge records f as one of e's bordering faces. It returns
// ErrEdgeSaturated if e already borders two faces.
func (m *Mesh) attachFaceToEdge(e EdgeHandle, f FaceHandle) error {
	s, ok := m.edgeSlot(e)
	if !ok {
		return ErrStaleHandle
	}
	switch {
	case s.f1.IsNil():
		s.f1 = f
	case s.f2.IsNil():
		s.f2 = f
	default:
		return ErrEdgeSaturated
	}
	return nil
}

func (m *Mesh) detachFaceFromEdge(e EdgeHandle, f FaceHandle) {
	s, ok := m.edgeSlot(e)
	if !ok {
		return
	}
	switch {
	case s.f1 == f:
		s.f1 = NilFace
	case s.f2 == f:
		s.f2 = NilFace
	}
}

// DestroyEdge removes e, unlinking it from its endpoint vertices. The
// caller is responsible for first detaching any faces still bordering e.
func (m *Mesh) DestroyEdge(e EdgeHandle) {
	s, ok := m.edgeSlot(e)
	if !ok {
		return
	}
	if av, ok := m.vertexSlot(s.v1); ok {
		removeEdgeFromVertex(av, e)
	}
	if bv, ok := m.vertexSlot(s.v2); ok {
		removeEdgeFromVertex(bv, e)
	}
	s.alive = false
	m.liveEdges--
	m.freeEdges = append(m.freeEdges, e.index)
}

// DestroyVertex removes v. The caller must ensure no live edge or face
// still references v.
func (m *Mesh) DestroyVertex(v VertexHandle) {
	s, ok := m.vertexSlot(v)
	if !ok {
		return
	}
	assertf(len(s.edges) == 0, "destroying vertex still referenced by %d edges", len(s.edges))
	assertf(len(s.faces) == 0, "destroying vertex still referenced by %d faces", len(s.faces))
	s.alive = false
	s.edges = nil
	s.faces = nil
	m.liveVertices--
	m.freeVertices = append(m.freeVertices, v.index)
}
