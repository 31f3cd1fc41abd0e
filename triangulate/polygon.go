package triangulate

import (
	"github.com/arvidw/geotri/algorithm/pslg"
	polygonalg "github.com/arvidw/geotri/algorithm/polygon"
	"github.com/arvidw/geotri/mesh"
	"github.com/arvidw/geotri/types"
)

// PolygonTriangulator wraps a PointTriangulator to triangulate the
// interior of one or more polygon loops: the first loop is the exterior
// boundary (wound counterclockwise), and any further loops are holes
// (wound clockwise). Each loop is a cyclic sequence of indices into the
// shared point list.
type PolygonTriangulator struct {
	cfg      config
	points   []types.Point
	polygons [][]int

	combinedEdges    [][2]int
	polygonEdgeCount int

	diagnostics Diagnostics
	validated   bool

	pt *PointTriangulator

	outputEdges     []OutputEdge
	outputTriangles []OutputTriangle
}

// NewPolygonTriangulator constructs a triangulator for the given point
// set and polygon loops. Any WithConstraintEdges option supplies extra
// interior constraint edges beyond the polygon boundaries themselves.
func NewPolygonTriangulator(points []types.Point, polygons [][]int, opts ...Option) *PolygonTriangulator {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &PolygonTriangulator{
		cfg:      cfg,
		points:   points,
		polygons: polygons,
	}
}

// Validate checks points, the combined polygon-plus-extra constraint
// edge set, and polygon winding, recording every failure found.
func (pt *PolygonTriangulator) Validate() Diagnostics {
	var boundary [][2]int
	for _, poly := range pt.polygons {
		n := len(poly)
		for i := 0; i < n; i++ {
			boundary = append(boundary, [2]int{poly[i], poly[(i+1)%n]})
		}
	}
	pt.polygonEdgeCount = len(boundary)
	pt.combinedEdges = append(boundary, pt.cfg.constraintEdges...)

	d := validatePoints(pt.points)
	if !d.NonFinite {
		d.merge(validateConstraintEdges(pt.points, pt.combinedEdges))
		d.merge(validatePolygonGeometry(pt.points, pt.polygons))
	}

	pt.diagnostics = d
	pt.validated = true
	return d
}

// Diagnostics returns the result of the most recent Validate call.
func (pt *PolygonTriangulator) Diagnostics() Diagnostics { return pt.diagnostics }

// Triangulate runs the point triangulator over the combined edge set,
// then classifies and emits only the polygon's interior.
func (pt *PolygonTriangulator) Triangulate() error {
	if !pt.validated || !pt.diagnostics.OK() {
		return ErrValidationFailed
	}

	innerCfg := pt.cfg
	innerCfg.constraintEdges = pt.combinedEdges
	inner := &PointTriangulator{
		cfg:       innerCfg,
		points:    pt.points,
		validated: true,
	}
	if err := inner.Triangulate(); err != nil {
		return err
	}
	pt.pt = inner

	return pt.classifyAndEmit()
}

// Mesh exposes the underlying mesh, primarily for tests.
func (pt *PolygonTriangulator) Mesh() *mesh.Mesh { return pt.pt.Mesh() }

// OutputEdges returns the emitted edges, valid only after a successful
// Triangulate.
func (pt *PolygonTriangulator) OutputEdges() []OutputEdge { return pt.outputEdges }

// OutputTriangles returns the emitted triangles, valid only after a
// successful Triangulate.
func (pt *PolygonTriangulator) OutputTriangles() []OutputTriangle { return pt.outputTriangles }

// validatePolygonGeometry checks, for each polygon loop, that its
// winding direction matches convention (the first loop is the exterior
// boundary and must be counterclockwise; every subsequent loop is a
// hole and must be clockwise), that no loop self-intersects, that no
// two loops intersect or touch, and that every hole lies strictly
// inside the exterior. It reuses the polygon/PSLG geometry helpers
// rather than reimplementing winding and intersection tests locally.
func validatePolygonGeometry(points []types.Point, polygons [][]int) Diagnostics {
	var d Diagnostics
	loops := make([][]types.Point, len(polygons))
	for i, poly := range polygons {
		if len(poly) < 3 {
			continue
		}
		loop := make([]types.Point, len(poly))
		for j, idx := range poly {
			loop[j] = points[idx]
		}
		loops[i] = loop

		if polygonalg.IsCCW(loop) != (i == 0) {
			d.PolygonWoundClockwise = true
		}
		if err := pslg.LoopSelfIntersections(loop); err != nil {
			d.PolygonSelfIntersects = true
		}
	}

	for i := 0; i < len(loops); i++ {
		if loops[i] == nil {
			continue
		}
		for j := i + 1; j < len(loops); j++ {
			if loops[j] == nil {
				continue
			}
			if err := pslg.LoopsIntersect(loops[i], loops[j]); err != nil {
				d.PolygonLoopsOverlap = true
			}
		}
	}

	if len(loops) > 0 && loops[0] != nil {
		for i := 1; i < len(loops); i++ {
			if loops[i] == nil || len(loops[i]) == 0 {
				continue
			}
			if polygonalg.PointInPolygon(loops[i][0], loops[0]) != polygonalg.Inside {
				d.HoleNotContained = true
			}
		}
	}

	return d
}

// faceDirectLabel reports whether f carries a polygon-boundary edge,
// and if so, whether f is INSIDE: the triangle's traversal direction
// along that edge is compared to the polygon edge's declared direction,
// matching meaning inside.
func (pt *PolygonTriangulator) faceDirectLabel(f mesh.FaceHandle) (inside, ok bool) {
	m := pt.pt.Mesh()
	fv := m.FaceVertices(f)
	fe := m.FaceEdges(f)
	for i := 0; i < 3; i++ {
		idx := m.EdgeInputIndex(fe[i])
		if idx < 0 || idx >= pt.polygonEdgeCount {
			continue
		}
		want := pt.combinedEdges[idx]
		gotA := m.VertexInputIndex(fv[i])
		gotB := m.VertexInputIndex(fv[(i+1)%3])
		return gotA == want[0] && gotB == want[1], true
	}
	return false, false
}

// classifyAndEmit flood-fills INSIDE/OUTSIDE labels from every face
// touching a polygon-boundary edge, across every non-boundary edge, then
// emits the INSIDE faces and the edges they touch, renumbering edges so
// the caller's extra constraint edges occupy positions 0..k-1 exactly as
// PointTriangulator does, with every other surviving edge trailing
// after them in the order it is first reached while visiting the inside
// faces in mesh iteration order.
func (pt *PolygonTriangulator) classifyAndEmit() error {
	m := pt.pt.Mesh()
	faces := m.Faces()

	visited := make(map[mesh.FaceHandle]bool, len(faces))
	insideSet := make(map[mesh.FaceHandle]bool, len(faces))

	var queue []mesh.FaceHandle
	for _, f := range faces {
		inside, ok := pt.faceDirectLabel(f)
		if !ok {
			continue
		}
		visited[f] = true
		insideSet[f] = inside
		queue = append(queue, f)
	}

	for len(queue) > 0 {
		f := queue[0]
		queue = queue[1:]
		isInside := insideSet[f]
		for _, e := range m.FaceEdges(f) {
			idx := m.EdgeInputIndex(e)
			if idx >= 0 && idx < pt.polygonEdgeCount {
				continue
			}
			f1, f2 := m.EdgeFaces(e)
			for _, nf := range [2]mesh.FaceHandle{f1, f2} {
				if nf.IsNil() || nf == f || visited[nf] {
					continue
				}
				visited[nf] = true
				insideSet[nf] = isInside
				queue = append(queue, nf)
			}
		}
	}

	var insideFaces []mesh.FaceHandle
	for _, f := range faces {
		if visited[f] && insideSet[f] {
			insideFaces = append(insideFaces, f)
		}
	}

	k := len(pt.cfg.constraintEdges)
	out := make([]OutputEdge, k)
	haveExtra := make([]bool, k)
	remap := make(map[mesh.EdgeHandle]int, len(insideFaces)*3/2+k)

	var trailing []mesh.EdgeHandle
	seen := make(map[mesh.EdgeHandle]bool)
	for _, f := range insideFaces {
		for _, e := range m.FaceEdges(f) {
			if seen[e] {
				continue
			}
			seen[e] = true

			idx := m.EdgeInputIndex(e)
			extraIdx := idx - pt.polygonEdgeCount
			if idx >= pt.polygonEdgeCount && extraIdx < k {
				pair := pt.combinedEdges[idx]
				out[extraIdx] = OutputEdge{V0: pair[0], V1: pair[1]}
				remap[e] = extraIdx
				haveExtra[extraIdx] = true
				continue
			}
			trailing = append(trailing, e)
		}
	}
	for i, ok := range haveExtra {
		assertf(ok, "interior constraint edge %d is not adjacent to any inside triangle", i)
	}

	for _, e := range trailing {
		idx := m.EdgeInputIndex(e)
		remap[e] = len(out)
		if idx >= 0 && idx < pt.polygonEdgeCount {
			pair := pt.combinedEdges[idx]
			out = append(out, OutputEdge{V0: pair[0], V1: pair[1]})
			continue
		}
		a, b := m.EdgeVertices(e)
		out = append(out, OutputEdge{
			V0: m.VertexInputIndex(a),
			V1: m.VertexInputIndex(b),
		})
	}

	tris := make([]OutputTriangle, 0, len(insideFaces))
	for _, f := range insideFaces {
		fv := m.FaceVertices(f)
		fe := m.FaceEdges(f)
		var tri OutputTriangle
		for i := 0; i < 3; i++ {
			tri.V[i] = m.VertexInputIndex(fv[i])
			idx, ok := remap[fe[i]]
			assertf(ok, "inside triangle references an edge missing from the output remap")
			tri.E[i] = idx
		}
		tris = append(tris, tri)
	}

	pt.outputEdges = out
	pt.outputTriangles = tris
	return nil
}
