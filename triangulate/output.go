package triangulate

import "github.com/arvidw/geotri/mesh"

// emitOutputs populates outputEdges and outputTriangles from the final
// mesh state. Edges that carry a constraint back-reference are placed
// at that constraint's original index, with the original endpoint order
// preserved exactly as supplied (not whatever order the mesh happened
// to store them in). Every other edge is appended afterward in mesh
// iteration order. Triangles are emitted in mesh iteration order, each
// referencing input-point indices for its vertices and output-edge
// indices for its edges, aligned so edge k connects vertex k and vertex
// (k+1)%3.
func (t *PointTriangulator) emitOutputs() {
	allEdges := t.mesh.Edges()
	n := len(t.cfg.constraintEdges)

	out := make([]OutputEdge, n, n+len(allEdges))
	var extra []mesh.EdgeHandle

	for _, e := range allEdges {
		ci := t.mesh.EdgeInputIndex(e)
		if ci >= 0 {
			pair := t.cfg.constraintEdges[ci]
			out[ci] = OutputEdge{V0: pair[0], V1: pair[1]}
			t.mesh.SetEdgeOutputIndex(e, ci)
		} else {
			extra = append(extra, e)
		}
	}

	for _, e := range extra {
		a, b := t.mesh.EdgeVertices(e)
		t.mesh.SetEdgeOutputIndex(e, len(out))
		out = append(out, OutputEdge{
			V0: t.mesh.VertexInputIndex(a),
			V1: t.mesh.VertexInputIndex(b),
		})
	}
	t.outputEdges = out

	faces := t.mesh.Faces()
	tris := make([]OutputTriangle, 0, len(faces))
	for _, f := range faces {
		fv := t.mesh.FaceVertices(f)
		fe := t.mesh.FaceEdges(f)
		var tri OutputTriangle
		for i := 0; i < 3; i++ {
			tri.V[i] = t.mesh.VertexInputIndex(fv[i])
			tri.E[i] = t.mesh.EdgeOutputIndex(fe[i])
		}
		tris = append(tris, tri)
	}
	t.outputTriangles = tris
}
