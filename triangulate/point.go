// Package triangulate implements the randomized incremental constrained
// Delaunay triangulator: PointTriangulator operates directly on a point
// set and optional constraint edges; PolygonTriangulator wraps it to
// triangulate the interior of a polygon with holes.
package triangulate

import (
	"math/rand"

	"github.com/arvidw/geotri/mesh"
	"github.com/arvidw/geotri/predicates"
	"github.com/arvidw/geotri/types"
)

// OutputEdge is an emitted edge, given as input-point indices.
type OutputEdge struct {
	V0, V1 int
}

// OutputTriangle is an emitted triangle: V holds input-point indices,
// E holds output-edge indices, both counterclockwise and aligned so
// that E[k] connects V[k] and V[(k+1)%3].
type OutputTriangle struct {
	V [3]int
	E [3]int
}

// PointTriangulator triangulates a point set, optionally respecting a
// set of constraint edges, via randomized incremental insertion.
type PointTriangulator struct {
	cfg    config
	points []types.Point

	mesh       *mesh.Mesh
	vertexOf   []mesh.VertexHandle
	rngShuffle *rand.Rand
	rngWalk    *rand.Rand

	diagnostics     Diagnostics
	validated       bool
	outputEdges     []OutputEdge
	outputTriangles []OutputTriangle
}

// NewPointTriangulator constructs a triangulator over points. Call
// Validate before Triangulate.
func NewPointTriangulator(points []types.Point, opts ...Option) *PointTriangulator {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &PointTriangulator{
		cfg:    cfg,
		points: points,
	}
}

// Validate checks the input for every condition in §4.3's validation
// list and records the result. Triangulate refuses to run until this
// has been called and returned an OK Diagnostics.
func (t *PointTriangulator) Validate() Diagnostics {
	d := validatePoints(t.points)
	if !d.NonFinite {
		d.merge(validateConstraintEdges(t.points, t.cfg.constraintEdges))
	}
	t.diagnostics = d
	t.validated = true
	return d
}

// Diagnostics returns the result of the most recent Validate call.
func (t *PointTriangulator) Diagnostics() Diagnostics { return t.diagnostics }

// Triangulate runs the full algorithm: seed triangle, randomized
// insertion with point location, legalization, and constraint-edge
// insertion by cavity retriangulation. It returns ErrValidationFailed if
// Validate was not called or did not pass; any other error indicates an
// internal inconsistency (a logic bug, not a malformed-input condition,
// since Validate already screened for those).
func (t *PointTriangulator) Triangulate() error {
	if !t.validated || !t.diagnostics.OK() {
		return ErrValidationFailed
	}

	t.mesh = mesh.NewMesh(mesh.WithCapacityHint(len(t.points)))
	t.vertexOf = make([]mesh.VertexHandle, len(t.points))
	for i := range t.vertexOf {
		t.vertexOf[i] = mesh.NilVertex
	}

	t.rngShuffle = rngFromSeed(t.cfg.seed, streamShuffle)
	t.rngWalk = rngFromSeed(t.cfg.seed, streamWalk)

	order := make([]int, len(t.points))
	for i := range order {
		order[i] = i
	}
	if t.cfg.shufflePoints {
		order = shufflePermutation(len(t.points), t.rngShuffle)
	}

	remaining, err := t.buildSeedTriangle(order)
	if err != nil {
		return err
	}
	t.snapshot("seed-triangle", Annotations{})

	for _, idx := range remaining {
		if err := t.insertPoint(idx); err != nil {
			return err
		}
		t.snapshot("insert-point", Annotations{})
	}

	for ci := range t.cfg.constraintEdges {
		if err := t.insertConstraintEdge(ci); err != nil {
			return err
		}
		t.snapshot("insert-constraint", Annotations{})
	}

	t.emitOutputs()
	t.snapshot("final", Annotations{})
	return nil
}

// OutputEdges returns the triangulation's emitted edges. Valid only
// after a successful Triangulate.
func (t *PointTriangulator) OutputEdges() []OutputEdge { return t.outputEdges }

// OutputTriangles returns the triangulation's emitted triangles. Valid
// only after a successful Triangulate.
func (t *PointTriangulator) OutputTriangles() []OutputTriangle { return t.outputTriangles }

// Mesh exposes the underlying mesh, primarily for the polygon wrapper
// and for tests; mutating it after Triangulate returns invalidates the
// emitted outputs.
func (t *PointTriangulator) Mesh() *mesh.Mesh { return t.mesh }

// buildSeedTriangle scans order for the first three points that are not
// mutually colinear, reorienting them counterclockwise if necessary, and
// returns the remaining insertion order with those three indices
// removed (any colinear points skipped over along the way stay in the
// remaining order, to be inserted normally).
func (t *PointTriangulator) buildSeedTriangle(order []int) ([]int, error) {
	assertf(len(order) >= 3, "buildSeedTriangle requires at least 3 points")

	idxA, idxB := order[0], order[1]
	idxC := -1
	pos := 2
	for pos < len(order) {
		cand := order[pos]
		if predicates.Orient2D(t.points[idxA], t.points[idxB], t.points[cand]) != 0 {
			idxC = cand
			break
		}
		pos++
	}
	assertf(idxC != -1, "no non-colinear triple found; Validate should have rejected all-colinear input")

	if predicates.Orient2D(t.points[idxA], t.points[idxB], t.points[idxC]) < 0 {
		idxB, idxC = idxC, idxB
	}

	vA := t.mesh.CreateVertex(t.points[idxA], idxA)
	vB := t.mesh.CreateVertex(t.points[idxB], idxB)
	vC := t.mesh.CreateVertex(t.points[idxC], idxC)
	t.vertexOf[idxA], t.vertexOf[idxB], t.vertexOf[idxC] = vA, vB, vC

	if _, err := t.mesh.CreateTriangleAndEdges(vA, vB, vC); err != nil {
		return nil, err
	}

	remaining := make([]int, 0, len(order)-3)
	for i, v := range order {
		if i == 0 || i == 1 || i == pos {
			continue
		}
		remaining = append(remaining, v)
	}
	return remaining, nil
}

// insertPoint locates, classifies, splits, and legalizes for a single
// input point.
func (t *PointTriangulator) insertPoint(idx int) error {
	p := t.points[idx]
	f := t.findNearestFace(p)

	fv := t.mesh.FaceVertices(f)
	p0, p1, p2 := t.mesh.VertexPoint(fv[0]), t.mesh.VertexPoint(fv[1]), t.mesh.VertexPoint(fv[2])
	o0 := predicates.Orient2D(p0, p1, p)
	o1 := predicates.Orient2D(p1, p2, p)
	o2 := predicates.Orient2D(p2, p0, p)

	var newV mesh.VertexHandle
	var err error

	switch {
	case o0 < 0 || o1 < 0 || o2 < 0:
		newV, err = t.addVertexOutsidePerimeter(f, idx)
	case o0 == 0:
		e := t.mesh.FaceEdges(f)[0]
		newV, err = t.mesh.SplitEdge(e, p, idx)
	case o1 == 0:
		e := t.mesh.FaceEdges(f)[1]
		newV, err = t.mesh.SplitEdge(e, p, idx)
	case o2 == 0:
		e := t.mesh.FaceEdges(f)[2]
		newV, err = t.mesh.SplitEdge(e, p, idx)
	default:
		newV, err = t.mesh.SplitFace(f, p, idx)
	}
	if err != nil {
		return err
	}

	t.vertexOf[idx] = newV
	return t.legalizeAround(newV)
}
