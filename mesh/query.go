package mesh

// IsBoundaryEdge reports whether e borders exactly one face.
func (m *Mesh) IsBoundaryEdge(e EdgeHandle) bool {
	return m.EdgeFaceCount(e) == 1
}

// BoundaryFace returns the single face bordering a boundary edge, or
// NilFace if e is not a boundary edge.
func (m *Mesh) BoundaryFace(e EdgeHandle) FaceHandle {
	f1, f2 := m.EdgeFaces(e)
	switch {
	case !f1.IsNil() && f2.IsNil():
		return f1
	case f1.IsNil() && !f2.IsNil():
		return f2
	default:
		return NilFace
	}
}

// BoundaryEdges returns every edge in the mesh with exactly one
// bordering face, in arena order. For a single connected triangulation
// with no holes these trace the convex hull; with holes or multiple
// polygon boundaries they trace every such loop.
func (m *Mesh) BoundaryEdges() []EdgeHandle {
	var out []EdgeHandle
	for _, e := range m.Edges() {
		if m.IsBoundaryEdge(e) {
			out = append(out, e)
		}
	}
	return out
}

// VertexDegree returns the number of edges incident to v.
func (m *Mesh) VertexDegree(v VertexHandle) int {
	s, ok := m.vertexSlot(v)
	if !ok {
		return 0
	}
	return len(s.edges)
}

// NeighborFaceAcross returns the face adjacent to f across f's edge that
// is opposite vertex v, i.e. the face sharing the edge of f not incident
// to v. Returns NilFace if v is not a vertex of f or that edge is a
// boundary edge.
func (m *Mesh) NeighborFaceAcross(f FaceHandle, v VertexHandle) FaceHandle {
	s, ok := m.faceSlot(f)
	if !ok {
		return NilFace
	}
	for i := range s.v {
		opposite := s.e[(i+1)%3]
		if s.v[i] == v {
			return m.OppositeFace(opposite, f)
		}
	}
	return NilFace
}
