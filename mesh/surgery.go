package mesh

import (
	"github.com/arvidw/geotri/predicates"
	"github.com/arvidw/geotri/types"
)

// CreateTriangleAndEdges creates a face spanning v1, v2, v3, creating
// whichever of its three boundary edges do not already exist and
// reusing the ones that do. v1, v2, v3 must be given counter-clockwise;
// ErrFaceNotCCW is returned otherwise, and ErrDegenerateFace if they are
// collinear. ErrEdgeSaturated is returned if any of the three edges
// already borders two faces.
func (m *Mesh) CreateTriangleAndEdges(v1, v2, v3 VertexHandle) (FaceHandle, error) {
	p1, ok1 := m.vertexSlot(v1)
	p2, ok2 := m.vertexSlot(v2)
	p3, ok3 := m.vertexSlot(v3)
	if !ok1 || !ok2 || !ok3 {
		return NilFace, ErrStaleHandle
	}

	switch predicates.Orient2D(p1.point, p2.point, p3.point) {
	case 0:
		return NilFace, ErrDegenerateFace
	case -1:
		return NilFace, ErrFaceNotCCW
	}

	e1 := m.edgeBetween(v1, v2)
	e2 := m.edgeBetween(v2, v3)
	e3 := m.edgeBetween(v3, v1)
	for _, e := range [3]EdgeHandle{e1, e2, e3} {
		if m.EdgeFaceCount(e) >= 2 {
			return NilFace, ErrEdgeSaturated
		}
	}

	slot := faceSlot{
		v:     [3]VertexHandle{v1, v2, v3},
		e:     [3]EdgeHandle{e1, e2, e3},
		alive: true,
	}
	var h FaceHandle
	if n := len(m.freeFaces); n > 0 {
		idx := m.freeFaces[n-1]
		m.freeFaces = m.freeFaces[:n-1]
		slot.gen = m.faces[idx].gen + 1
		m.faces[idx] = slot
		h = FaceHandle{index: idx, gen: slot.gen}
	} else {
		slot.gen = 1
		m.faces = append(m.faces, slot)
		h = FaceHandle{index: int32(len(m.faces) - 1), gen: slot.gen}
	}
	m.liveFaces++

	for _, e := range [3]EdgeHandle{e1, e2, e3} {
		_ = m.attachFaceToEdge(e, h)
	}
	for _, v := range [3]VertexHandle{v1, v2, v3} {
		if vs, ok := m.vertexSlot(v); ok {
			vs.faces = append(vs.faces, h)
		}
	}
	return h, nil
}

func (m *Mesh) edgeBetween(a, b VertexHandle) EdgeHandle {
	if e, ok := m.FindEdge(a, b); ok {
		return e
	}
	return m.CreateEdge(a, b)
}

func (m *Mesh) destroyFaceKeepEdges(f FaceHandle) {
	s, ok := m.faceSlot(f)
	if !ok {
		return
	}
	for _, e := range s.e {
		m.detachFaceFromEdge(e, f)
	}
	for _, v := range s.v {
		if vs, ok := m.vertexSlot(v); ok {
			removeFaceFromVertex(vs, f)
		}
	}
	s.alive = false
	s.v = [3]VertexHandle{}
	s.e = [3]EdgeHandle{}
	m.liveFaces--
	m.freeFaces = append(m.freeFaces, f.index)
}

// OppositeVertex returns the vertex of f that is not an endpoint of e.
// f must be one of e's bordering faces.
func (m *Mesh) OppositeVertex(f FaceHandle, e EdgeHandle) (VertexHandle, bool) {
	a, b := m.EdgeVertices(e)
	return m.faceApex(f, a, b)
}

func (m *Mesh) faceApex(f FaceHandle, a, b VertexHandle) (VertexHandle, bool) {
	s, ok := m.faceSlot(f)
	if !ok {
		return NilVertex, false
	}
	for _, v := range s.v {
		if v != a && v != b {
			return v, true
		}
	}
	return NilVertex, false
}

// OppositeFace returns the face bordering e other than f, or NilFace if
// e is a boundary edge (only f borders it).
func (m *Mesh) OppositeFace(e EdgeHandle, f FaceHandle) FaceHandle {
	f1, f2 := m.EdgeFaces(e)
	switch f {
	case f1:
		return f2
	case f2:
		return f1
	default:
		return NilFace
	}
}

// SwapEdge flips the diagonal of the quadrilateral formed by e's two
// bordering faces, replacing e with the opposite diagonal and returning
// the new edge. Returns ErrBoundaryEdge if e does not border two faces.
func (m *Mesh) SwapEdge(e EdgeHandle) (EdgeHandle, error) {
	a, b := m.EdgeVertices(e)
	if a.IsNil() || b.IsNil() {
		return NilEdge, ErrStaleHandle
	}
	f1, f2 := m.EdgeFaces(e)
	if f1.IsNil() || f2.IsNil() {
		return NilEdge, ErrBoundaryEdge
	}
	apex1, ok1 := m.faceApex(f1, a, b)
	apex2, ok2 := m.faceApex(f2, a, b)
	if !ok1 || !ok2 {
		return NilEdge, ErrNotAdjacent
	}

	m.destroyFaceKeepEdges(f1)
	m.destroyFaceKeepEdges(f2)
	m.DestroyEdge(e)

	if _, err := m.CreateTriangleAndEdges(a, apex2, apex1); err != nil {
		return NilEdge, err
	}
	if _, err := m.CreateTriangleAndEdges(apex2, b, apex1); err != nil {
		return NilEdge, err
	}
	newEdge, _ := m.FindEdge(apex1, apex2)
	return newEdge, nil
}

// SplitFace replaces f with three faces fanning out from a new vertex at
// p to each of f's original vertices. p is assumed to lie strictly
// inside f; callers are responsible for that classification.
func (m *Mesh) SplitFace(f FaceHandle, p types.Point, inputIndex int) (VertexHandle, error) {
	s, ok := m.faceSlot(f)
	if !ok {
		return NilVertex, ErrStaleHandle
	}
	v0, v1, v2 := s.v[0], s.v[1], s.v[2]

	newV := m.CreateVertex(p, inputIndex)
	m.destroyFaceKeepEdges(f)

	if _, err := m.CreateTriangleAndEdges(v0, v1, newV); err != nil {
		return newV, err
	}
	if _, err := m.CreateTriangleAndEdges(v1, v2, newV); err != nil {
		return newV, err
	}
	if _, err := m.CreateTriangleAndEdges(v2, v0, newV); err != nil {
		return newV, err
	}
	return newV, nil
}

// SplitEdge inserts a new vertex at p in the interior of edge e, assumed
// to lie strictly between e's endpoints, and retriangulates the one or
// two faces bordering e around it. Boundary edges (one bordering face)
// produce two new faces; interior edges (two bordering faces) produce
// four.
func (m *Mesh) SplitEdge(e EdgeHandle, p types.Point, inputIndex int) (VertexHandle, error) {
	a, b := m.EdgeVertices(e)
	if a.IsNil() || b.IsNil() {
		return NilVertex, ErrStaleHandle
	}
	f1, f2 := m.EdgeFaces(e)
	if f1.IsNil() {
		return NilVertex, ErrBoundaryEdge
	}
	apex1, ok1 := m.faceApex(f1, a, b)
	if !ok1 {
		return NilVertex, ErrNotAdjacent
	}
	hasSecond := !f2.IsNil()
	var apex2 VertexHandle
	if hasSecond {
		var ok2 bool
		apex2, ok2 = m.faceApex(f2, a, b)
		if !ok2 {
			return NilVertex, ErrNotAdjacent
		}
	}

	newV := m.CreateVertex(p, inputIndex)
	m.destroyFaceKeepEdges(f1)
	if hasSecond {
		m.destroyFaceKeepEdges(f2)
	}
	m.DestroyEdge(e)

	if _, err := m.CreateTriangleAndEdges(a, newV, apex1); err != nil {
		return newV, err
	}
	if _, err := m.CreateTriangleAndEdges(newV, b, apex1); err != nil {
		return newV, err
	}
	if hasSecond {
		if _, err := m.CreateTriangleAndEdges(b, newV, apex2); err != nil {
			return newV, err
		}
		if _, err := m.CreateTriangleAndEdges(newV, a, apex2); err != nil {
			return newV, err
		}
	}
	return newV, nil
}

func (m *Mesh) deleteFaceAndOrphanedEdges(f FaceHandle, keepConstrained bool) {
	s, ok := m.faceSlot(f)
	if !ok {
		return
	}
	edges := s.e
	verts := s.v
	m.destroyFaceKeepEdges(f)
	for _, e := range edges {
		if m.EdgeFaceCount(e) != 0 {
			continue
		}
		if keepConstrained && m.EdgeInputIndex(e) >= 0 {
			continue
		}
		m.DestroyEdge(e)
	}
	if keepConstrained {
		return
	}
	for _, v := range verts {
		if m.VertexDegree(v) == 0 {
			m.DestroyVertex(v)
		}
	}
}

// DeleteFaceAndOrphanedAllAdjacentEdges deletes f, and any of its three
// edges that are left bordering zero faces, unconditionally. Vertices
// that lose their last adjacent edge in the process are destroyed too.
func (m *Mesh) DeleteFaceAndOrphanedAllAdjacentEdges(f FaceHandle) {
	m.deleteFaceAndOrphanedEdges(f, false)
}

// DeleteFaceAndOrphanedNonconstrainedAdjacentEdges deletes f, and any of
// its three edges left bordering zero faces, except edges that carry a
// constraint back-reference (EdgeInputIndex >= 0). Vertices are never
// destroyed. Used when clearing a constraint cavity: constraint edges
// already in the mesh survive even when they lose their last face.
func (m *Mesh) DeleteFaceAndOrphanedNonconstrainedAdjacentEdges(f FaceHandle) {
	m.deleteFaceAndOrphanedEdges(f, true)
}
