package triangulate

import (
	"testing"

	"github.com/arvidw/geotri/predicates"
	"github.com/arvidw/geotri/types"
)

func mustTriangulate(t *testing.T, points []types.Point, opts ...Option) *PointTriangulator {
	t.Helper()
	pt := NewPointTriangulator(points, opts...)
	if diag := pt.Validate(); !diag.OK() {
		t.Fatalf("unexpected validation failure: %s", diag.String())
	}
	if err := pt.Triangulate(); err != nil {
		t.Fatalf("Triangulate: %v", err)
	}
	return pt
}

func checkCCWTriangles(t *testing.T, points []types.Point, pt *PointTriangulator) {
	t.Helper()
	for _, tri := range pt.OutputTriangles() {
		a, b, c := points[tri.V[0]], points[tri.V[1]], points[tri.V[2]]
		if predicates.Orient2D(a, b, c) <= 0 {
			t.Errorf("triangle %v is not strictly counterclockwise", tri.V)
		}
		for k := 0; k < 3; k++ {
			e := pt.OutputEdges()[tri.E[k]]
			want0, want1 := tri.V[k], tri.V[(k+1)%3]
			if !(e.V0 == want0 && e.V1 == want1) && !(e.V0 == want1 && e.V1 == want0) {
				t.Errorf("triangle %v edge %d (%v) does not connect expected endpoints %d,%d", tri.V, k, e, want0, want1)
			}
		}
	}
}

// Scenario A: minimal triangle.
func TestScenarioAMinimalTriangle(t *testing.T) {
	points := []types.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	pt := mustTriangulate(t, points, WithShufflePoints(false))

	if len(pt.OutputTriangles()) != 1 {
		t.Fatalf("expected 1 triangle, got %d", len(pt.OutputTriangles()))
	}
	if len(pt.OutputEdges()) != 3 {
		t.Fatalf("expected 3 edges, got %d", len(pt.OutputEdges()))
	}
	checkCCWTriangles(t, points, pt)
}

// Scenario B: unit square, 2 triangles, 5 edges, deterministic without shuffle.
func TestScenarioBUnitSquare(t *testing.T) {
	points := []types.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	pt := mustTriangulate(t, points, WithShufflePoints(false))

	if len(pt.OutputTriangles()) != 2 {
		t.Fatalf("expected 2 triangles, got %d", len(pt.OutputTriangles()))
	}
	if len(pt.OutputEdges()) != 5 {
		t.Fatalf("expected 5 edges, got %d", len(pt.OutputEdges()))
	}
	checkCCWTriangles(t, points, pt)
}

// Scenario C: square with a forced diagonal constraint.
func TestScenarioCForcedDiagonal(t *testing.T) {
	points := []types.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	pt := mustTriangulate(t, points, WithShufflePoints(false), WithConstraintEdges([][2]int{{0, 2}}))

	if len(pt.OutputTriangles()) != 2 {
		t.Fatalf("expected 2 triangles, got %d", len(pt.OutputTriangles()))
	}
	diag := pt.OutputEdges()[0]
	if diag.V0 != 0 || diag.V1 != 2 {
		t.Fatalf("expected constraint edge at position 0 to be {0,2}, got %v", diag)
	}
	checkCCWTriangles(t, points, pt)

	foundBoth := map[[3]int]bool{}
	for _, tri := range pt.OutputTriangles() {
		v := tri.V
		key := [3]int{v[0], v[1], v[2]}
		sorted := key
		for i := 0; i < 3; i++ {
			for j := i + 1; j < 3; j++ {
				if sorted[j] < sorted[i] {
					sorted[i], sorted[j] = sorted[j], sorted[i]
				}
			}
		}
		foundBoth[sorted] = true
	}
	if !foundBoth[[3]int{0, 1, 2}] || !foundBoth[[3]int{0, 2, 3}] {
		t.Fatalf("expected triangles {0,1,2} and {0,2,3}, got %v", pt.OutputTriangles())
	}
}

// Property 13: four colinear points plus a fifth off the line fans into
// exactly three triangles.
func TestColinearPlusOneFansIntoThreeTriangles(t *testing.T) {
	points := []types.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0},
		{X: 1, Y: 1},
	}
	pt := mustTriangulate(t, points, WithShufflePoints(false))

	if len(pt.OutputTriangles()) != 3 {
		t.Fatalf("expected 3 triangles, got %d: %v", len(pt.OutputTriangles()), pt.OutputTriangles())
	}
	checkCCWTriangles(t, points, pt)
}

// Property 14: a convex polygon of N points with no interior points
// produces exactly N-2 triangles.
func TestConvexPolygonProducesNMinus2Triangles(t *testing.T) {
	points := []types.Point{
		{X: 0, Y: 0}, {X: 2, Y: -1}, {X: 4, Y: 0}, {X: 4, Y: 3},
		{X: 2, Y: 4}, {X: 0, Y: 3},
	}
	pt := mustTriangulate(t, points, WithShufflePoints(false))

	if got, want := len(pt.OutputTriangles()), len(points)-2; got != want {
		t.Fatalf("expected %d triangles, got %d", want, got)
	}
	checkCCWTriangles(t, points, pt)
}

// Property 10: shufflePoints=false is deterministic across runs.
func TestDeterministicWithoutShuffle(t *testing.T) {
	points := []types.Point{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4},
		{X: 2, Y: 2}, {X: 1, Y: 3}, {X: 3, Y: 1},
	}
	a := mustTriangulate(t, points, WithShufflePoints(false))
	b := mustTriangulate(t, points, WithShufflePoints(false))

	if len(a.OutputTriangles()) != len(b.OutputTriangles()) {
		t.Fatalf("triangle count differs between runs")
	}
	for i := range a.OutputTriangles() {
		if a.OutputTriangles()[i] != b.OutputTriangles()[i] {
			t.Fatalf("triangle %d differs between runs: %v vs %v", i, a.OutputTriangles()[i], b.OutputTriangles()[i])
		}
	}
	for i := range a.OutputEdges() {
		if a.OutputEdges()[i] != b.OutputEdges()[i] {
			t.Fatalf("edge %d differs between runs: %v vs %v", i, a.OutputEdges()[i], b.OutputEdges()[i])
		}
	}
}

// Property 11: shufflePoints=true with a fixed seed is also deterministic.
func TestDeterministicWithShuffleAndFixedSeed(t *testing.T) {
	points := []types.Point{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4},
		{X: 2, Y: 2}, {X: 1, Y: 3}, {X: 3, Y: 1}, {X: 3.5, Y: 3.5},
	}
	a := mustTriangulate(t, points, WithSeed(42))
	b := mustTriangulate(t, points, WithSeed(42))

	if len(a.OutputTriangles()) != len(b.OutputTriangles()) {
		t.Fatalf("triangle count differs between runs")
	}
	for i := range a.OutputTriangles() {
		if a.OutputTriangles()[i] != b.OutputTriangles()[i] {
			t.Fatalf("triangle %d differs between runs: %v vs %v", i, a.OutputTriangles()[i], b.OutputTriangles()[i])
		}
	}
}

func TestValidateRejectsFewerThanThreePoints(t *testing.T) {
	pt := NewPointTriangulator([]types.Point{{X: 0, Y: 0}, {X: 1, Y: 1}})
	diag := pt.Validate()
	if !diag.FewerThanThree {
		t.Fatalf("expected FewerThanThree to be set")
	}
	if err := pt.Triangulate(); err != ErrValidationFailed {
		t.Fatalf("expected ErrValidationFailed, got %v", err)
	}
}

// Scenario F: three colinear points.
func TestScenarioFAllColinearRejected(t *testing.T) {
	pt := NewPointTriangulator([]types.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}})
	diag := pt.Validate()
	if !diag.Colinear {
		t.Fatalf("expected Colinear to be set")
	}
}

// Scenario E: crossing constraint edges are rejected by validation.
func TestScenarioECrossingConstraintsRejected(t *testing.T) {
	points := []types.Point{{X: 0, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}, {X: 2, Y: 0}}
	pt := NewPointTriangulator(points, WithConstraintEdges([][2]int{{0, 1}, {2, 3}}))
	diag := pt.Validate()
	if !diag.EdgesCross {
		t.Fatalf("expected EdgesCross to be set")
	}
}

func TestDenserRandomPointSetStaysDelaunay(t *testing.T) {
	points := []types.Point{
		{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 5}, {X: 5, Y: 5},
		{X: 10, Y: 5}, {X: 0, Y: 10}, {X: 5, Y: 10}, {X: 10, Y: 10}, {X: 3, Y: 7},
		{X: 7, Y: 3}, {X: 2, Y: 2}, {X: 8, Y: 8},
	}
	pt := mustTriangulate(t, points, WithSeed(7))
	checkCCWTriangles(t, points, pt)

	for _, tri := range pt.OutputTriangles() {
		a, b, c := points[tri.V[0]], points[tri.V[1]], points[tri.V[2]]
		for pi, p := range points {
			if pi == tri.V[0] || pi == tri.V[1] || pi == tri.V[2] {
				continue
			}
			if predicates.InCircle(a, b, c, p) > 0 {
				t.Errorf("triangle %v fails Delaunay property against point %d %v", tri.V, pi, p)
			}
		}
	}
}
