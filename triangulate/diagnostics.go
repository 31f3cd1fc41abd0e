package triangulate

import (
	"math"
	"strings"

	"github.com/arvidw/geotri/predicates"
	"github.com/arvidw/geotri/types"
)

// Diagnostics reports every input-validation failure found by Validate,
// so a caller can surface every problem at once rather than stopping at
// the first. A zero-value Diagnostics (all flags false) means the input
// may be triangulated.
type Diagnostics struct {
	FewerThanThree        bool
	Coincident            bool
	Colinear              bool
	NonFinite             bool
	DegenerateEdge        bool
	PointOnEdge           bool
	EdgesCross            bool
	DuplicateEdges        bool
	PolygonWoundClockwise bool
	PolygonSelfIntersects bool
	PolygonLoopsOverlap   bool
	HoleNotContained      bool
}

// OK reports whether every flag is clear.
func (d Diagnostics) OK() bool {
	return d == Diagnostics{}
}

// String flattens the set flags into a human-readable sentence list.
func (d Diagnostics) String() string {
	if d.OK() {
		return "valid"
	}
	var sentences []string
	add := func(set bool, msg string) {
		if set {
			sentences = append(sentences, msg)
		}
	}
	add(d.FewerThanThree, "input has fewer than three points.")
	add(d.Coincident, "two or more input points coincide.")
	add(d.Colinear, "all input points are colinear.")
	add(d.NonFinite, "an input point is not finite (NaN or infinite).")
	add(d.DegenerateEdge, "a constraint edge has equal or coincident endpoints.")
	add(d.PointOnEdge, "a point lies on the interior of a constraint edge it is not an endpoint of.")
	add(d.EdgesCross, "two constraint edges properly cross.")
	add(d.DuplicateEdges, "two constraint edges connect the same pair of points.")
	add(d.PolygonWoundClockwise, "a polygon loop has the wrong winding direction.")
	add(d.PolygonSelfIntersects, "a polygon loop self-intersects.")
	add(d.PolygonLoopsOverlap, "two polygon loops intersect or touch.")
	add(d.HoleNotContained, "a hole loop is not strictly inside the exterior loop.")
	return strings.Join(sentences, " ")
}

func (d *Diagnostics) merge(other Diagnostics) {
	d.FewerThanThree = d.FewerThanThree || other.FewerThanThree
	d.Coincident = d.Coincident || other.Coincident
	d.Colinear = d.Colinear || other.Colinear
	d.NonFinite = d.NonFinite || other.NonFinite
	d.DegenerateEdge = d.DegenerateEdge || other.DegenerateEdge
	d.PointOnEdge = d.PointOnEdge || other.PointOnEdge
	d.EdgesCross = d.EdgesCross || other.EdgesCross
	d.DuplicateEdges = d.DuplicateEdges || other.DuplicateEdges
	d.PolygonWoundClockwise = d.PolygonWoundClockwise || other.PolygonWoundClockwise
	d.PolygonSelfIntersects = d.PolygonSelfIntersects || other.PolygonSelfIntersects
	d.PolygonLoopsOverlap = d.PolygonLoopsOverlap || other.PolygonLoopsOverlap
	d.HoleNotContained = d.HoleNotContained || other.HoleNotContained
}

func validatePoints(points []types.Point) Diagnostics {
	var d Diagnostics
	if len(points) < 3 {
		d.FewerThanThree = true
	}
	for _, p := range points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			d.NonFinite = true
		}
	}
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			if points[i] == points[j] {
				d.Coincident = true
			}
		}
	}
	if len(points) >= 3 && !d.NonFinite {
		allColinear := true
		for i := 2; i < len(points); i++ {
			if predicates.Orient2D(points[0], points[1], points[i]) != 0 {
				allColinear = false
				break
			}
		}
		d.Colinear = allColinear
	}
	return d
}

func canonicalPair(a, b int) [2]int {
	if a < b {
		return [2]int{a, b}
	}
	return [2]int{b, a}
}

func validateConstraintEdges(points []types.Point, edges [][2]int) Diagnostics {
	var d Diagnostics

	for _, e := range edges {
		if e[0] == e[1] || points[e[0]] == points[e[1]] {
			d.DegenerateEdge = true
		}
	}

	for _, e := range edges {
		a, b := points[e[0]], points[e[1]]
		for pi, p := range points {
			if pi == e[0] || pi == e[1] {
				continue
			}
			if predicates.PointStrictlyOnSegment(p, a, b) {
				d.PointOnEdge = true
			}
		}
	}

	for i := 0; i < len(edges); i++ {
		for j := i + 1; j < len(edges); j++ {
			if edges[i][0] == edges[j][0] || edges[i][0] == edges[j][1] ||
				edges[i][1] == edges[j][0] || edges[i][1] == edges[j][1] {
				continue
			}
			a1, a2 := points[edges[i][0]], points[edges[i][1]]
			b1, b2 := points[edges[j][0]], points[edges[j][1]]
			if predicates.ProperlyCross(a1, a2, b1, b2) {
				d.EdgesCross = true
			}
		}
	}

	seen := make(map[[2]int]bool, len(edges))
	for _, e := range edges {
		key := canonicalPair(e[0], e[1])
		if seen[key] {
			d.DuplicateEdges = true
		}
		seen[key] = true
	}

	return d
}
