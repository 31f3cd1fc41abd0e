package mesh

// Clone returns a deep copy of m. Handles from the original mesh remain
// valid against the clone since arena indices and generations are
// copied verbatim; mutating the clone never affects m or vice versa.
//
// This is what the snapshot collaborator uses to capture the mesh's
// state at a point in time without holding a reference that the
// triangulator would go on to mutate out from under it.
func (m *Mesh) Clone() *Mesh {
	out := &Mesh{
		vertices:     make([]vertexSlot, len(m.vertices)),
		edges:        make([]edgeSlot, len(m.edges)),
		faces:        make([]faceSlot, len(m.faces)),
		freeVertices: append([]int32(nil), m.freeVertices...),
		freeEdges:    append([]int32(nil), m.freeEdges...),
		freeFaces:    append([]int32(nil), m.freeFaces...),
		liveVertices: m.liveVertices,
		liveEdges:    m.liveEdges,
		liveFaces:    m.liveFaces,
	}
	for i, s := range m.vertices {
		out.vertices[i] = s
		out.vertices[i].edges = append([]EdgeHandle(nil), s.edges...)
		out.vertices[i].faces = append([]FaceHandle(nil), s.faces...)
	}
	copy(out.edges, m.edges)
	copy(out.faces, m.faces)
	return out
}
