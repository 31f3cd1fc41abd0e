package mesh

import (
	"testing"

	"github.com/arvidw/geotri/types"
)

func square() (*Mesh, [4]VertexHandle) {
	m := NewMesh()
	var v [4]VertexHandle
	v[0] = m.CreateVertex(types.Point{X: 0, Y: 0}, 0)
	v[1] = m.CreateVertex(types.Point{X: 1, Y: 0}, 1)
	v[2] = m.CreateVertex(types.Point{X: 1, Y: 1}, 2)
	v[3] = m.CreateVertex(types.Point{X: 0, Y: 1}, 3)
	return m, v
}

func TestCreateTriangleAndEdges(t *testing.T) {
	m, v := square()
	f, err := m.CreateTriangleAndEdges(v[0], v[1], v[2])
	if err != nil {
		t.Fatalf("CreateTriangleAndEdges: %v", err)
	}
	if m.FaceCount() != 1 || m.EdgeCount() != 3 || m.VertexCount() != 4 {
		t.Fatalf("unexpected counts: faces=%d edges=%d vertices=%d", m.FaceCount(), m.EdgeCount(), m.VertexCount())
	}
	fv := m.FaceVertices(f)
	if fv != [3]VertexHandle{v[0], v[1], v[2]} {
		t.Fatalf("unexpected face vertices: %v", fv)
	}
}

func TestCreateTriangleAndEdgesRejectsClockwise(t *testing.T) {
	m, v := square()
	if _, err := m.CreateTriangleAndEdges(v[0], v[2], v[1]); err != ErrFaceNotCCW {
		t.Fatalf("expected ErrFaceNotCCW, got %v", err)
	}
}

func TestCreateTriangleAndEdgesRejectsDegenerate(t *testing.T) {
	m := NewMesh()
	a := m.CreateVertex(types.Point{X: 0, Y: 0}, 0)
	b := m.CreateVertex(types.Point{X: 1, Y: 1}, 1)
	c := m.CreateVertex(types.Point{X: 2, Y: 2}, 2)
	if _, err := m.CreateTriangleAndEdges(a, b, c); err != ErrDegenerateFace {
		t.Fatalf("expected ErrDegenerateFace, got %v", err)
	}
}

func twoTriangleSquare(t *testing.T) (*Mesh, [4]VertexHandle, FaceHandle, FaceHandle, EdgeHandle) {
	t.Helper()
	m, v := square()
	f1, err := m.CreateTriangleAndEdges(v[0], v[1], v[2])
	if err != nil {
		t.Fatalf("face1: %v", err)
	}
	f2, err := m.CreateTriangleAndEdges(v[0], v[2], v[3])
	if err != nil {
		t.Fatalf("face2: %v", err)
	}
	diag, ok := m.FindEdge(v[0], v[2])
	if !ok {
		t.Fatal("expected shared diagonal edge")
	}
	return m, v, f1, f2, diag
}

func TestSharedEdgeBordersBothFaces(t *testing.T) {
	m, _, f1, f2, diag := twoTriangleSquare(t)
	a, b := m.EdgeFaces(diag)
	if !((a == f1 && b == f2) || (a == f2 && b == f1)) {
		t.Fatalf("expected diagonal to border both faces, got %v %v", a, b)
	}
	if m.EdgeFaceCount(diag) != 2 {
		t.Fatalf("expected face count 2, got %d", m.EdgeFaceCount(diag))
	}
	if m.EdgeCount() != 5 || m.FaceCount() != 2 {
		t.Fatalf("unexpected counts: edges=%d faces=%d", m.EdgeCount(), m.FaceCount())
	}
}

func TestSwapEdge(t *testing.T) {
	m, v, _, _, diag := twoTriangleSquare(t)

	newEdge, err := m.SwapEdge(diag)
	if err != nil {
		t.Fatalf("SwapEdge: %v", err)
	}
	if m.EdgeAlive(diag) {
		t.Fatal("old diagonal should have been destroyed")
	}
	a, b := m.EdgeVertices(newEdge)
	if !((a == v[1] && b == v[3]) || (a == v[3] && b == v[1])) {
		t.Fatalf("expected flipped diagonal between v1 and v3, got %v-%v", a, b)
	}
	if m.FaceCount() != 2 || m.EdgeCount() != 5 {
		t.Fatalf("swap should preserve face/edge counts, got faces=%d edges=%d", m.FaceCount(), m.EdgeCount())
	}
}

func TestSwapEdgeRejectsBoundaryEdge(t *testing.T) {
	m, v, f1, _, _ := twoTriangleSquare(t)
	outerEdge, ok := m.FindEdge(v[0], v[1])
	if !ok {
		t.Fatal("expected outer edge to exist")
	}
	if _, err := m.SwapEdge(outerEdge); err != ErrBoundaryEdge {
		t.Fatalf("expected ErrBoundaryEdge, got %v", err)
	}
	_ = f1
}

func TestSplitFace(t *testing.T) {
	m, v := square()
	f, err := m.CreateTriangleAndEdges(v[0], v[1], v[2])
	if err != nil {
		t.Fatalf("CreateTriangleAndEdges: %v", err)
	}
	center := types.Point{X: 0.7, Y: 0.3}
	nv, err := m.SplitFace(f, center, -1)
	if err != nil {
		t.Fatalf("SplitFace: %v", err)
	}
	if m.FaceAlive(f) {
		t.Fatal("original face should have been replaced")
	}
	if m.FaceCount() != 3 {
		t.Fatalf("expected 3 faces after split, got %d", m.FaceCount())
	}
	if m.VertexDegree(nv) != 3 {
		t.Fatalf("expected new vertex degree 3, got %d", m.VertexDegree(nv))
	}
}

func TestSplitEdgeBoundary(t *testing.T) {
	m, v := square()
	f, err := m.CreateTriangleAndEdges(v[0], v[1], v[2])
	if err != nil {
		t.Fatalf("CreateTriangleAndEdges: %v", err)
	}
	e, ok := m.FindEdge(v[0], v[1])
	if !ok {
		t.Fatal("expected edge v0-v1")
	}
	mid := types.Point{X: 0.5, Y: 0}
	nv, err := m.SplitEdge(e, mid, -1)
	if err != nil {
		t.Fatalf("SplitEdge: %v", err)
	}
	if m.FaceAlive(f) {
		t.Fatal("original face should have been replaced")
	}
	if m.FaceCount() != 2 {
		t.Fatalf("expected 2 faces after boundary split, got %d", m.FaceCount())
	}
	if m.VertexDegree(nv) != 3 {
		t.Fatalf("expected new vertex degree 3 (two outer, one shared interior), got %d", m.VertexDegree(nv))
	}
}

func TestSplitEdgeInterior(t *testing.T) {
	m, _, _, _, diag := twoTriangleSquare(t)
	mid := types.Point{X: 0.5, Y: 0.5}
	nv, err := m.SplitEdge(diag, mid, -1)
	if err != nil {
		t.Fatalf("SplitEdge: %v", err)
	}
	if m.FaceCount() != 4 {
		t.Fatalf("expected 4 faces after interior split, got %d", m.FaceCount())
	}
	if m.VertexDegree(nv) != 4 {
		t.Fatalf("expected new vertex degree 4, got %d", m.VertexDegree(nv))
	}
}

func TestDeleteFaceAndOrphanedAllAdjacentEdges(t *testing.T) {
	m, v := square()
	f, err := m.CreateTriangleAndEdges(v[0], v[1], v[2])
	if err != nil {
		t.Fatalf("CreateTriangleAndEdges: %v", err)
	}
	before := m.VertexCount()
	m.DeleteFaceAndOrphanedAllAdjacentEdges(f)
	if m.FaceCount() != 0 || m.EdgeCount() != 0 {
		t.Fatalf("expected all edges orphaned and removed, got faces=%d edges=%d", m.FaceCount(), m.EdgeCount())
	}
	if got := m.VertexCount(); got != before-3 {
		t.Fatalf("expected the triangle's 3 vertices to be orphaned and removed, got VertexCount=%d (before=%d)", got, before)
	}
	for _, tv := range []VertexHandle{v[0], v[1], v[2]} {
		if m.VertexDegree(tv) != 0 {
			t.Fatalf("expected vertex %v to have been stripped of edges", tv)
		}
	}
}

func TestDeleteFaceAndOrphanedNonconstrainedAdjacentEdgesKeepsConstraints(t *testing.T) {
	m, v := square()
	f, err := m.CreateTriangleAndEdges(v[0], v[1], v[2])
	if err != nil {
		t.Fatalf("CreateTriangleAndEdges: %v", err)
	}
	e, ok := m.FindEdge(v[0], v[1])
	if !ok {
		t.Fatal("expected edge v0-v1")
	}
	m.SetEdgeInputIndex(e, 0)

	m.DeleteFaceAndOrphanedNonconstrainedAdjacentEdges(f)
	if m.FaceCount() != 0 {
		t.Fatalf("expected face removed, got %d", m.FaceCount())
	}
	if !m.EdgeAlive(e) {
		t.Fatal("constraint edge should survive orphaning")
	}
	if m.EdgeCount() != 1 {
		t.Fatalf("expected only the constraint edge to survive, got %d", m.EdgeCount())
	}
	for _, tv := range []VertexHandle{v[0], v[1], v[2]} {
		if !m.VertexAlive(tv) {
			t.Fatalf("nonconstrained variant must never destroy vertices, but %v was destroyed", tv)
		}
	}
}

func TestHandleGenerationDetectsStaleReference(t *testing.T) {
	m := NewMesh()
	a := m.CreateVertex(types.Point{X: 0, Y: 0}, 0)
	b := m.CreateVertex(types.Point{X: 1, Y: 0}, 1)
	e := m.CreateEdge(a, b)
	m.DestroyEdge(e)
	m.DestroyVertex(a)
	m.DestroyVertex(b)

	// Recycle the freed vertex slots for unrelated vertices.
	c := m.CreateVertex(types.Point{X: 5, Y: 5}, 2)
	d := m.CreateVertex(types.Point{X: 6, Y: 6}, 3)
	_ = d

	if m.VertexAlive(a) {
		t.Fatal("stale handle a should not resolve to the recycled slot")
	}
	if !m.VertexAlive(c) {
		t.Fatal("freshly created vertex should be alive")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	m, v := square()
	f, err := m.CreateTriangleAndEdges(v[0], v[1], v[2])
	if err != nil {
		t.Fatalf("CreateTriangleAndEdges: %v", err)
	}
	clone := m.Clone()

	m.DeleteFaceAndOrphanedAllAdjacentEdges(f)
	if m.FaceCount() != 0 {
		t.Fatalf("expected original to lose its face, got %d", m.FaceCount())
	}
	if clone.FaceCount() != 1 {
		t.Fatalf("expected clone to retain its face, got %d", clone.FaceCount())
	}
}

func TestBoundaryEdges(t *testing.T) {
	m, v, _, _, diag := twoTriangleSquare(t)
	boundary := m.BoundaryEdges()
	if len(boundary) != 4 {
		t.Fatalf("expected 4 boundary edges around the square, got %d", len(boundary))
	}
	for _, e := range boundary {
		if e == diag {
			t.Fatal("shared diagonal must not be reported as a boundary edge")
		}
	}
	_ = v
}
