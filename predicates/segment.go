package predicates

import (
	"math"

	"github.com/arvidw/geotri/types"
)

// SegmentIntersect reports whether closed segments [p,q] and [r,s]
// intersect, and if so the parametric coordinates t, u along each
// segment (both in [0,1]) at which the crossing occurs.
//
// Collinear overlaps report true with both parameters as NaN — callers
// that need to distinguish a single crossing point from an overlapping
// run of collinear points must check for NaN.
func SegmentIntersect(p, q, r, s types.Point) (bool, float64, float64) {
	o1 := Orient2D(p, q, r)
	o2 := Orient2D(p, q, s)
	o3 := Orient2D(r, s, p)
	o4 := Orient2D(r, s, q)

	if o1*o2 < 0 && o3*o4 < 0 {
		t, u := paramIntersect(p, q, r, s)
		return true, t, u
	}

	if o1 == 0 && o2 == 0 && o3 == 0 && o4 == 0 {
		if collinearOverlap(p, q, r, s) {
			return true, math.NaN(), math.NaN()
		}
		return false, math.NaN(), math.NaN()
	}

	if o1 == 0 && onSegment(p, q, r) {
		return true, paramOnSegment(p, q, r), 0
	}
	if o2 == 0 && onSegment(p, q, s) {
		return true, paramOnSegment(p, q, s), 1
	}
	if o3 == 0 && onSegment(r, s, p) {
		return true, 0, paramOnSegment(r, s, p)
	}
	if o4 == 0 && onSegment(r, s, q) {
		return true, 1, paramOnSegment(r, s, q)
	}

	return false, math.NaN(), math.NaN()
}

// ProperlyCross reports whether open segments (p,q) and (r,s) cross at a
// single interior point of both — sharing an endpoint does not count.
func ProperlyCross(p, q, r, s types.Point) bool {
	o1 := Orient2D(p, q, r)
	o2 := Orient2D(p, q, s)
	o3 := Orient2D(r, s, p)
	o4 := Orient2D(r, s, q)
	return o1*o2 < 0 && o3*o4 < 0
}

// PointOnSegment reports whether p lies on the closed segment [a,b].
func PointOnSegment(p, a, b types.Point) bool {
	if Orient2D(a, b, p) != 0 {
		return false
	}
	return onSegment(a, b, p)
}

// PointStrictlyOnSegment reports whether p lies on segment [a,b] but is
// not equal to either endpoint.
func PointStrictlyOnSegment(p, a, b types.Point) bool {
	return PointOnSegment(p, a, b) && p != a && p != b
}

func onSegment(a, b, p types.Point) bool {
	if Orient2D(a, b, p) != 0 {
		return false
	}
	const tol = 1e-12
	minX, maxX := math.Min(a.X, b.X), math.Max(a.X, b.X)
	minY, maxY := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	return p.X >= minX-tol && p.X <= maxX+tol && p.Y >= minY-tol && p.Y <= maxY+tol
}

func paramOnSegment(a, b, p types.Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	length2 := dx*dx + dy*dy
	if length2 == 0 {
		return 0
	}
	return ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / length2
}

func paramIntersect(p, q, r, s types.Point) (float64, float64) {
	pq := types.Point{X: q.X - p.X, Y: q.Y - p.Y}
	rs := types.Point{X: s.X - r.X, Y: s.Y - r.Y}
	diff := types.Point{X: r.X - p.X, Y: r.Y - p.Y}

	den := cross(pq, rs)
	t := cross(diff, rs) / den
	u := cross(diff, pq) / den
	return t, u
}

func cross(a, b types.Point) float64 {
	return a.X*b.Y - a.Y*b.X
}

func collinearOverlap(a1, a2, b1, b2 types.Point) bool {
	useX := math.Abs(a1.X-a2.X) >= math.Abs(a1.Y-a2.Y)
	var aMin, aMax, bMin, bMax float64
	if useX {
		aMin, aMax = math.Min(a1.X, a2.X), math.Max(a1.X, a2.X)
		bMin, bMax = math.Min(b1.X, b2.X), math.Max(b1.X, b2.X)
	} else {
		aMin, aMax = math.Min(a1.Y, a2.Y), math.Max(a1.Y, a2.Y)
		bMin, bMax = math.Min(b1.Y, b2.Y), math.Max(b1.Y, b2.Y)
	}
	return math.Min(aMax, bMax)-math.Max(aMin, bMin) > 1e-12
}

// DistancePointSegment returns the shortest Euclidean distance from p to
// the closed segment [a,b].
func DistancePointSegment(p, a, b types.Point) float64 {
	ax, ay := b.X-a.X, b.Y-a.Y
	length2 := ax*ax + ay*ay
	if length2 == 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	t := ((p.X-a.X)*ax + (p.Y-a.Y)*ay) / length2
	switch {
	case t <= 0:
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	case t >= 1:
		return math.Hypot(p.X-b.X, p.Y-b.Y)
	default:
		proj := types.Point{X: a.X + t*ax, Y: a.Y + t*ay}
		return math.Hypot(p.X-proj.X, p.Y-proj.Y)
	}
}
