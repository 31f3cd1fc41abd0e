package triangulate

import (
	"math"

	"github.com/arvidw/geotri/mesh"
	"github.com/arvidw/geotri/predicates"
	"github.com/arvidw/geotri/types"
)

// findNearestFace locates the face containing p, or, if p falls outside
// the triangulated region, the hull-boundary face at which the walk
// toward p stops. It
// samples a handful of already-inserted vertices to pick a walk start,
// then walks face-to-face across whichever edge separates p from the
// face's interior, using the walk PRNG stream to randomize both the
// sample and the edge-visit order so pathological inputs don't produce
// a worst-case walk every time.
func (t *PointTriangulator) findNearestFace(p types.Point) mesh.FaceHandle {
	verts := t.mesh.Vertices()
	sampleSize := cubeRootSample(t.mesh.FaceCount())
	start := t.sampleNearestVertex(verts, sampleSize, p)

	adjFaces := t.mesh.VertexFaces(start)
	f := adjFaces[t.rngWalk.Intn(len(adjFaces))]

	for {
		fv := t.mesh.FaceVertices(f)
		fe := t.mesh.FaceEdges(f)
		offset := t.rngWalk.Intn(3)
		stepped := false

		for k := 0; k < 3; k++ {
			i := (offset + k) % 3
			a, b := fv[i], fv[(i+1)%3]
			opp := fv[(i+2)%3]

			pa, pb := t.mesh.VertexPoint(a), t.mesh.VertexPoint(b)
			oppPt := t.mesh.VertexPoint(opp)

			sideP := predicates.Orient2D(pa, pb, p)
			sideOpp := predicates.Orient2D(pa, pb, oppPt)
			assertf(sideOpp != 0, "face %v is degenerate: apex colinear with opposite edge", f)

			if sideP == 0 || (sideP > 0) == (sideOpp > 0) {
				continue
			}

			next := t.mesh.OppositeFace(fe[i], f)
			if next.IsNil() {
				continue
			}
			f = next
			stepped = true
			break
		}

		if !stepped {
			return f
		}
	}
}

func cubeRootSample(faceCount int) int {
	if faceCount <= 0 {
		return 1
	}
	r := int(math.Cbrt(float64(faceCount)))
	if r < 1 {
		r = 1
	}
	return r
}

func (t *PointTriangulator) sampleNearestVertex(verts []mesh.VertexHandle, sampleSize int, p types.Point) mesh.VertexHandle {
	if sampleSize >= len(verts) {
		return t.nearestAmong(verts, p)
	}
	perm := t.rngWalk.Perm(len(verts))
	sample := make([]mesh.VertexHandle, sampleSize)
	for i := 0; i < sampleSize; i++ {
		sample[i] = verts[perm[i]]
	}
	return t.nearestAmong(sample, p)
}

func (t *PointTriangulator) nearestAmong(verts []mesh.VertexHandle, p types.Point) mesh.VertexHandle {
	best := verts[0]
	bestDist := distance2(t.mesh.VertexPoint(best), p)
	for _, v := range verts[1:] {
		d := distance2(t.mesh.VertexPoint(v), p)
		if d < bestDist {
			bestDist = d
			best = v
		}
	}
	return best
}

func distance2(a, b types.Point) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx + dy*dy
}
