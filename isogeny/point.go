// Package isogeny implements x-only Montgomery curve arithmetic and the
// large-degree isogeny computations at the heart of the SIKE suite: point
// doubling and tripling, the three-point ladder, degree 2/3/4 isogenies
// derived from kernel points, and the strategy-driven tree traversal that
// composes them into 2^e2 and 3^e3 isogenies.
//
// All formulas follow the SIKE submission's algorithm catalogue; curve
// coefficients circulate in the projective forms the formulas want,
// (A+2C : 4C) on the 2-torsion side and (A+2C : A-2C) on the 3-torsion
// side. The engine is purely computational: no I/O, no locks, safe for
// concurrent use from multiple goroutines.
package isogeny

import (
	"github.com/drand/sike/field"
)

// Point is a point on the Kummer line of a Montgomery curve, held in
// projective (X : Z) coordinates. Z = 0 encodes the point at infinity;
// the sign of y is not tracked.
type Point struct {
	X, Z field.Ext
}

// PointFromX lifts an affine x-coordinate to (x : 1).
func (e *Engine) PointFromX(x field.Ext) Point {
	return Point{X: x, Z: e.fld.One()}
}

// IsInfinity reports whether the point is the group identity.
func (e *Engine) IsInfinity(p Point) bool {
	return e.fld.IsZero(p.Z)
}

// PointEqual compares two projective points: both at infinity, or equal
// affine x-coordinates.
func (e *Engine) PointEqual(p, q Point) bool {
	pInf, qInf := e.fld.IsZero(p.Z), e.fld.IsZero(q.Z)
	if pInf || qInf {
		return pInf == qInf
	}
	// X_P / Z_P == X_Q / Z_Q without divisions
	return e.fld.Equal(e.fld.Mul(p.X, q.Z), e.fld.Mul(q.X, p.Z))
}

// Affine returns the affine x-coordinate X/Z of a finite point.
func (e *Engine) Affine(p Point) (field.Ext, error) {
	return e.fld.Div(p.X, p.Z)
}
