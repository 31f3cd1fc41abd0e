package triangulate

import (
	"github.com/arvidw/geotri/mesh"
	"github.com/arvidw/geotri/predicates"
	"github.com/arvidw/geotri/types"
)

// insertConstraintEdge forces the constraint edge at constraintIdx to
// exist in the mesh. If it already does (either inherited from the
// point insertion phase or from a previous constraint), it is marked
// with its input-edge back-reference and nothing else happens.
// Otherwise the two triangle fans on either side of the straight
// segment between its endpoints (the "cavity") are torn down and
// retriangulated fresh around the new edge.
func (t *PointTriangulator) insertConstraintEdge(constraintIdx int) error {
	pair := t.cfg.constraintEdges[constraintIdx]
	v0, v1 := t.vertexOf[pair[0]], t.vertexOf[pair[1]]
	p0, p1 := t.mesh.VertexPoint(v0), t.mesh.VertexPoint(v1)

	if e, ok := t.mesh.FindEdge(v0, v1); ok {
		t.mesh.SetEdgeInputIndex(e, constraintIdx)
		return nil
	}

	firstFace, crossEdge, ok := t.firstCavityFace(v0, p0, p1)
	if !ok {
		return ErrNoConstraintPath
	}

	left := []mesh.VertexHandle{v0}
	right := []mesh.VertexHandle{v0}

	curFace, curCross := firstFace, crossEdge
	for {
		a, b := t.mesh.EdgeVertices(curCross)
		next := t.mesh.OppositeFace(curCross, curFace)
		assertf(!next.IsNil(), "constraint cavity ran off the hull boundary")

		t.mesh.DeleteFaceAndOrphanedNonconstrainedAdjacentEdges(curFace)

		appendBySide(&left, &right, t.mesh.VertexPoint(a), a, p0, p1)
		appendBySide(&left, &right, t.mesh.VertexPoint(b), b, p0, p1)

		nfv := t.mesh.FaceVertices(next)
		if containsVertex(nfv, v1) {
			t.mesh.DeleteFaceAndOrphanedNonconstrainedAdjacentEdges(next)
			break
		}

		nfe := t.mesh.FaceEdges(next)
		foundNext := false
		for i := 0; i < 3; i++ {
			if nfe[i] == curCross {
				continue
			}
			va, vb := nfv[i], nfv[(i+1)%3]
			if predicates.ProperlyCross(p0, p1, t.mesh.VertexPoint(va), t.mesh.VertexPoint(vb)) {
				curCross = nfe[i]
				foundNext = true
				break
			}
		}
		if !foundNext {
			return ErrNoConstraintPath
		}
		curFace = next
	}

	left = append(left, v1)
	right = append(right, v1)

	revLeft := reverseVertices(left)
	if err := t.triangulateCavityHalf(revLeft, 0, len(revLeft)-1); err != nil {
		return err
	}
	if err := t.triangulateCavityHalf(right, 0, len(right)-1); err != nil {
		return err
	}

	e, ok := t.mesh.FindEdge(v0, v1)
	assertf(ok, "constraint edge missing after cavity retriangulation")
	t.mesh.SetEdgeInputIndex(e, constraintIdx)
	return nil
}

// firstCavityFace finds the face incident to v0 whose edge opposite v0
// is properly crossed by segment p0-p1.
func (t *PointTriangulator) firstCavityFace(v0 mesh.VertexHandle, p0, p1 types.Point) (mesh.FaceHandle, mesh.EdgeHandle, bool) {
	for _, f := range t.mesh.VertexFaces(v0) {
		fv := t.mesh.FaceVertices(f)
		fe := t.mesh.FaceEdges(f)
		idx := -1
		for i, v := range fv {
			if v == v0 {
				idx = i
				break
			}
		}
		if idx == -1 {
			continue
		}
		oppEdge := fe[(idx+1)%3]
		a, b := fv[(idx+1)%3], fv[(idx+2)%3]
		if predicates.ProperlyCross(p0, p1, t.mesh.VertexPoint(a), t.mesh.VertexPoint(b)) {
			return f, oppEdge, true
		}
	}
	return mesh.NilFace, mesh.NilEdge, false
}

func appendBySide(left, right *[]mesh.VertexHandle, p types.Point, v mesh.VertexHandle, p0, p1 types.Point) {
	side := right
	if predicates.Orient2D(p0, p1, p) > 0 {
		side = left
	}
	// Consecutive crossed edges share an endpoint; record it only once.
	if n := len(*side); n > 0 && (*side)[n-1] == v {
		return
	}
	*side = append(*side, v)
}

func containsVertex(vs [3]mesh.VertexHandle, v mesh.VertexHandle) bool {
	return vs[0] == v || vs[1] == v || vs[2] == v
}

func reverseVertices(vs []mesh.VertexHandle) []mesh.VertexHandle {
	out := make([]mesh.VertexHandle, len(vs))
	for i, v := range vs {
		out[len(vs)-1-i] = v
	}
	return out
}

// triangulateCavityHalf triangulates the polygon fan seq[first..last]
// (a cavity-half boundary chain already ordered counterclockwise with
// its closing edge) by repeatedly picking, as the apex opposite the
// chord seq[first]-seq[last], whichever intermediate vertex's
// circumcircle (with the chord's endpoints) contains no other
// intermediate vertex, then recursing on the two halves that split
// produces. This is the standard empty-circle recursive triangulation
// of a one-sided constrained cavity.
func (t *PointTriangulator) triangulateCavityHalf(seq []mesh.VertexHandle, first, last int) error {
	if last-first == 1 {
		return nil
	}
	if last-first == 2 {
		_, err := t.mesh.CreateTriangleAndEdges(seq[first], seq[first+1], seq[last])
		return err
	}

	pf, pl := t.mesh.VertexPoint(seq[first]), t.mesh.VertexPoint(seq[last])
	m := first + 1
	for i := first + 2; i < last; i++ {
		pm := t.mesh.VertexPoint(seq[m])
		pi := t.mesh.VertexPoint(seq[i])
		if predicates.InCircle(pf, pm, pl, pi) > 0 {
			m = i
		}
	}

	if _, err := t.mesh.CreateTriangleAndEdges(seq[first], seq[m], seq[last]); err != nil {
		return err
	}
	if err := t.triangulateCavityHalf(seq, first, m); err != nil {
		return err
	}
	return t.triangulateCavityHalf(seq, m, last)
}
