package triangulate

import (
	"github.com/arvidw/geotri/mesh"
	"github.com/arvidw/geotri/predicates"
)

// legalizeAround restores the Delaunay property around a freshly
// inserted vertex via the standard work-list edge-flip sweep: for each
// face touching vNew, test the edge opposite vNew against the apex of
// the face on its far side, and flip whenever that apex lies inside the
// near face's circumcircle. A flip can expose new illegal edges further
// out, so both faces newly adjacent to a swapped edge are pushed back
// onto the work list.
func (t *PointTriangulator) legalizeAround(vNew mesh.VertexHandle) error {
	queue := append([]mesh.FaceHandle{}, t.mesh.VertexFaces(vNew)...)

	for len(queue) > 0 {
		f := queue[0]
		queue = queue[1:]
		if !t.mesh.FaceAlive(f) {
			continue
		}

		fv := t.mesh.FaceVertices(f)
		fe := t.mesh.FaceEdges(f)
		idx := -1
		for i, v := range fv {
			if v == vNew {
				idx = i
				break
			}
		}
		if idx == -1 {
			continue
		}
		eOpp := fe[(idx+1)%3]

		if t.mesh.EdgeFaceCount(eOpp) != 2 {
			continue
		}
		other := t.mesh.OppositeFace(eOpp, f)
		vOpp, ok := t.mesh.OppositeVertex(other, eOpp)
		if !ok {
			continue
		}

		a, b := fv[(idx+1)%3], fv[(idx+2)%3]
		pNew := t.mesh.VertexPoint(vNew)
		pa := t.mesh.VertexPoint(a)
		pb := t.mesh.VertexPoint(b)
		pOpp := t.mesh.VertexPoint(vOpp)

		if predicates.InCircle(pNew, pa, pb, pOpp) > 0 {
			newEdge, err := t.mesh.SwapEdge(eOpp)
			if err != nil {
				continue
			}
			nf1, nf2 := t.mesh.EdgeFaces(newEdge)
			queue = append(queue, nf1, nf2)
		}
	}

	return nil
}
