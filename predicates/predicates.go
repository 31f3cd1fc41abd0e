// Package predicates provides the exact-arithmetic geometric tests the
// triangulator's topology decisions depend on: orientation and
// in-circle. Both evaluate a fast floating-point filter first and fall
// back to arbitrary-precision arithmetic only when the floating-point
// result is too close to zero to trust.
package predicates

import (
	"math"
	"math/big"

	"github.com/arvidw/geotri/types"
)

const (
	orientFilter = 1e-15
	inCircleFilter = 1e-14
)

// Orient2D returns the orientation of the ordered triple (a,b,c).
//
//   - +1 if a,b,c turn counter-clockwise
//   - -1 if a,b,c turn clockwise
//   -  0 if a,b,c are collinear
//
// This is the sign of twice the signed area of the triangle, computed
// first in float64 with an adaptive error bound and, only when that
// bound cannot rule out a sign flip, recomputed exactly with
// arbitrary-precision arithmetic.
func Orient2D(a, b, c types.Point) int {
	ax := b.X - a.X
	ay := b.Y - a.Y
	bx := c.X - a.X
	by := c.Y - a.Y
	det := ax*by - ay*bx

	eps := errorBound(orientFilter, a.X, a.Y, b.X, b.Y, c.X, c.Y)
	switch {
	case det > eps:
		return 1
	case det < -eps:
		return -1
	default:
		return orient2DExact(a, b, c)
	}
}

func orient2DExact(a, b, c types.Point) int {
	ax := bigSub(b.X, a.X)
	ay := bigSub(b.Y, a.Y)
	bx := bigSub(c.X, a.X)
	by := bigSub(c.Y, a.Y)
	return bigDet2(ax, ay, bx, by).Sign()
}

// InCircle tests point d against the circumscribed circle of (a,b,c).
//
// Assuming a,b,c are given counter-clockwise, the return value is
// positive if d lies strictly inside the circle, negative if strictly
// outside, and zero if d is cocircular with a,b,c. Callers with a
// clockwise triple must negate the result (or swap two of a,b,c).
func InCircle(a, b, c, d types.Point) int {
	adx, ady := a.X-d.X, a.Y-d.Y
	bdx, bdy := b.X-d.X, b.Y-d.Y
	cdx, cdy := c.X-d.X, c.Y-d.Y

	ad2 := adx*adx + ady*ady
	bd2 := bdx*bdx + bdy*bdy
	cd2 := cdx*cdx + cdy*cdy

	det := ad2*(bdx*cdy-bdy*cdx) -
		bd2*(adx*cdy-ady*cdx) +
		cd2*(adx*bdy-ady*bdx)

	// Bound the rounding error by the magnitude of the determinant's
	// terms, which scale with the fourth power of the coordinates.
	permanent := ad2*(math.Abs(bdx*cdy)+math.Abs(bdy*cdx)) +
		bd2*(math.Abs(adx*cdy)+math.Abs(ady*cdx)) +
		cd2*(math.Abs(adx*bdy)+math.Abs(ady*bdx))
	eps := permanent * inCircleFilter
	if eps < inCircleFilter {
		eps = inCircleFilter
	}

	switch {
	case det > eps:
		return 1
	case det < -eps:
		return -1
	default:
		return inCircleExact(a, b, c, d)
	}
}

func inCircleExact(a, b, c, d types.Point) int {
	ax, ay := bigSub(a.X, d.X), bigSub(a.Y, d.Y)
	bx, by := bigSub(b.X, d.X), bigSub(b.Y, d.Y)
	cx, cy := bigSub(c.X, d.X), bigSub(c.Y, d.Y)

	ad2 := bigAdd(bigMul(ax, ax), bigMul(ay, ay))
	bd2 := bigAdd(bigMul(bx, bx), bigMul(by, by))
	cd2 := bigAdd(bigMul(cx, cx), bigMul(cy, cy))

	term1 := bigMul(ad2, bigDet2(bx, by, cx, cy))
	term2 := bigMul(bd2, bigDet2(ax, ay, cx, cy))
	term3 := bigMul(cd2, bigDet2(ax, ay, bx, by))

	det := bigAdd(term1, term3)
	det.Sub(det, term2)
	return det.Sign()
}

func errorBound(filter float64, coords ...float64) float64 {
	mag := maxAbs(coords...)
	eps := mag * mag * filter
	if eps < filter {
		eps = filter
	}
	return eps
}

func maxAbs(values ...float64) float64 {
	max := 0.0
	for _, v := range values {
		if abs := math.Abs(v); abs > max {
			max = abs
		}
	}
	return max
}

const bigPrecision = 256

func bigFloat(v float64) *big.Float {
	return new(big.Float).SetPrec(bigPrecision).SetFloat64(v)
}

func bigSub(a, b float64) *big.Float {
	return new(big.Float).SetPrec(bigPrecision).Sub(bigFloat(a), bigFloat(b))
}

func bigAdd(a, b *big.Float) *big.Float {
	return new(big.Float).SetPrec(bigPrecision).Add(a, b)
}

func bigMul(a, b *big.Float) *big.Float {
	return new(big.Float).SetPrec(bigPrecision).Mul(a, b)
}

// bigDet2 computes the 2x2 determinant | ax ay ; bx by | exactly.
func bigDet2(ax, ay, bx, by *big.Float) *big.Float {
	out := bigMul(ax, by)
	out.Sub(out, bigMul(ay, bx))
	return out
}
