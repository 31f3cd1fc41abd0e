package triangulate

import (
	"fmt"
	"math"

	"github.com/arvidw/geotri/mesh"
	"github.com/arvidw/geotri/predicates"
	"github.com/arvidw/geotri/types"
)

// addVertexOutsidePerimeter handles the case where p lies outside the
// current hull. f is a face the point-location walk terminated at,
// incident to the visible arc of the hull. It finds the nearest
// visible hull vertex to p, then fans new triangles from p across the
// visible arc in both directions until the hull edges stop being
// visible from p.
func (t *PointTriangulator) addVertexOutsidePerimeter(f mesh.FaceHandle, idx int) (mesh.VertexHandle, error) {
	p := t.points[idx]

	start, err := t.findVisibleHullVertex(f, p)
	if err != nil {
		return mesh.NilVertex, err
	}

	hull := t.hullCycleFrom(start)
	n := len(hull)
	assertf(n >= 3, "hull cycle has fewer than 3 vertices")

	newV := t.mesh.CreateVertex(p, idx)
	t.vertexOf[idx] = newV

	for i := 0; i+1 < n; i++ {
		cur, next := hull[i], hull[i+1]
		if predicates.Orient2D(p, t.mesh.VertexPoint(next), t.mesh.VertexPoint(cur)) <= 0 {
			break
		}
		if _, err := t.mesh.CreateTriangleAndEdges(newV, next, cur); err != nil {
			return newV, err
		}
	}

	for j := 0; j+1 < n; j++ {
		a := hull[(n-j)%n]
		b := hull[(n-j-1+n)%n]
		if predicates.Orient2D(p, t.mesh.VertexPoint(a), t.mesh.VertexPoint(b)) <= 0 {
			break
		}
		if _, err := t.mesh.CreateTriangleAndEdges(newV, a, b); err != nil {
			return newV, err
		}
	}

	return newV, nil
}

// findVisibleHullVertex returns the vertex of f, among those lying on
// the hull, nearest to p and visible from it (p lies strictly on the
// outer side of at least one of the vertex's incident hull edges, so
// the fan in one direction or the other starts at this vertex).
func (t *PointTriangulator) findVisibleHullVertex(f mesh.FaceHandle, p types.Point) (mesh.VertexHandle, error) {
	fv := t.mesh.FaceVertices(f)
	var best mesh.VertexHandle
	bestDist := math.Inf(1)
	found := false

	for _, v := range fv {
		prev, next, ok := t.boundaryNeighbors(v)
		if !ok {
			continue
		}
		vp := t.mesh.VertexPoint(v)
		prevVisible := predicates.Orient2D(t.mesh.VertexPoint(prev), vp, p) < 0
		nextVisible := predicates.Orient2D(vp, t.mesh.VertexPoint(next), p) < 0
		if !prevVisible && !nextVisible {
			continue
		}
		d := distance2(vp, p)
		if !found || d < bestDist {
			found = true
			bestDist = d
			best = v
		}
	}

	if !found {
		return mesh.NilVertex, fmt.Errorf("triangulate: no visible hull vertex found for exterior point insertion")
	}
	return best, nil
}

// boundaryNeighbors returns v's two hull-adjacent vertices, where next
// is reached by following the hull edge in its face-relative
// counterclockwise direction (the boundary face's own vertex order) and
// prev is reached against it. ok is false if v is not a hull vertex.
func (t *PointTriangulator) boundaryNeighbors(v mesh.VertexHandle) (prev, next mesh.VertexHandle, ok bool) {
	havePrev, haveNext := false, false
	for _, e := range t.mesh.VertexEdges(v) {
		if t.mesh.EdgeFaceCount(e) != 1 {
			continue
		}
		bf := t.mesh.BoundaryFace(e)
		fe := t.mesh.FaceEdges(bf)
		fv := t.mesh.FaceVertices(bf)
		for i := 0; i < 3; i++ {
			if fe[i] != e {
				continue
			}
			va, vb := fv[i], fv[(i+1)%3]
			if va == v {
				next = vb
				haveNext = true
			}
			if vb == v {
				prev = va
				havePrev = true
			}
		}
	}
	return prev, next, havePrev && haveNext
}

// hullCycleFrom walks the hull starting at start, following the
// face-relative counterclockwise direction, until it returns to start.
func (t *PointTriangulator) hullCycleFrom(start mesh.VertexHandle) []mesh.VertexHandle {
	cycle := []mesh.VertexHandle{start}
	cur := start
	for {
		_, next, ok := t.boundaryNeighbors(cur)
		assertf(ok, "perimeter vertex missing boundary neighbor during hull walk")
		if next == start {
			break
		}
		cycle = append(cycle, next)
		cur = next
	}
	return cycle
}
