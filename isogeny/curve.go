package isogeny

import (
	"errors"

	"github.com/drand/sike/field"
)

var (
	// ErrNotOnCurve is returned when a curve is degenerate, e.g. when the
	// j-invariant denominator vanishes.
	ErrNotOnCurve = errors.New("isogeny: point or curve is degenerate")
	// ErrInvalidStrategy is returned when a traversal table does not cover
	// the isogeny tree it is applied to.
	ErrInvalidStrategy = errors.New("isogeny: invalid traversal strategy")
	// ErrEncoding is returned when bytes do not decode to key material.
	ErrEncoding = errors.New("isogeny: invalid encoding")
)

// Curve is a Montgomery curve y² = x³ + (A/C)x² + x held as the projective
// coefficient pair (A : C). Two curves are the same iff A1·C2 = A2·C1.
// The same struct also carries the (A+2C : 4C) and (A+2C : A-2C)
// representations between formulas; the producer documents which one it is.
type Curve struct {
	A, C field.Ext
}

// StartingCurve returns the public starting curve y² = x³ + 6x² + x.
func (e *Engine) StartingCurve() Curve {
	return Curve{A: e.fld.FromUint64(6), C: e.fld.One()}
}

// CurvePlus converts (A : C) to the (A+2C : 4C) form consumed by the
// doubling and 4-isogeny formulas.
func (e *Engine) CurvePlus(c Curve) Curve {
	f := e.fld
	twoC := f.Add(c.C, c.C)
	return Curve{
		A: f.Add(c.A, twoC),
		C: f.Add(twoC, twoC),
	}
}

// CurvePlusMinus converts (A : C) to the (A+2C : A-2C) form consumed by
// the tripling and 3-isogeny formulas.
func (e *Engine) CurvePlusMinus(c Curve) Curve {
	f := e.fld
	twoC := f.Add(c.C, c.C)
	return Curve{
		A: f.Add(c.A, twoC),
		C: f.Sub(c.A, twoC),
	}
}

// CurveEqual reports projective equality A1·C2 = A2·C1.
func (e *Engine) CurveEqual(c1, c2 Curve) bool {
	return e.fld.Equal(e.fld.Mul(c1.A, c2.C), e.fld.Mul(c2.A, c1.C))
}

// JInvariant computes 256·(A² - 3C²)³ / (C⁴·(A² - 4C²)). A vanishing
// denominator means the coefficient pair does not describe a smooth
// Montgomery curve and yields ErrNotOnCurve.
func (e *Engine) JInvariant(c Curve) (field.Ext, error) {
	f := e.fld
	j := f.Sqr(c.A)
	t1 := f.Sqr(c.C)
	t0 := f.Add(t1, t1)
	t0 = f.Sub(j, t0)
	t0 = f.Sub(t0, t1)
	j = f.Sub(t0, t1)
	t1 = f.Sqr(t1)
	j = f.Mul(j, t1)
	t0 = f.Add(t0, t0)
	t0 = f.Add(t0, t0)
	t1 = f.Sqr(t0)
	t0 = f.Mul(t0, t1)
	t0 = f.Add(t0, t0)
	t0 = f.Add(t0, t0)
	jInv, err := f.Inv(j)
	if err != nil {
		return field.Ext{}, ErrNotOnCurve
	}
	return f.Mul(t0, jInv), nil
}

// CurveFromPublicKey recovers the curve containing the three transmitted
// x-coordinates (the cfpk routine). Zero coordinates are rejected.
func (e *Engine) CurveFromPublicKey(pk *PublicKey) (Curve, error) {
	f := e.fld
	xP, xQ, xR := pk.X1, pk.X2, pk.X3
	if f.IsZero(xP) || f.IsZero(xQ) || f.IsZero(xR) {
		return Curve{}, ErrNotOnCurve
	}

	one := f.One()
	num := f.Sub(one, f.Mul(xP, xQ))
	num = f.Sub(num, f.Mul(xP, xR))
	num = f.Sub(num, f.Mul(xQ, xR))
	num = f.Sqr(num)
	den := f.Mul(f.FromUint64(4), f.Mul(xP, f.Mul(xQ, xR)))
	frac, err := f.Div(num, den)
	if err != nil {
		return Curve{}, ErrNotOnCurve
	}
	a := f.Sub(frac, xP)
	a = f.Sub(a, xQ)
	a = f.Sub(a, xR)
	return Curve{A: a, C: one}, nil
}

// CurveFromLadder recovers the Montgomery coefficient from a ladder triple
// (x_P, x_Q, x_{Q-P}) — the get_A routine.
func (e *Engine) CurveFromLadder(xP, xQ, xQmP field.Ext) (Curve, error) {
	f := e.fld
	t1 := f.Add(xP, xQ)
	t0 := f.Mul(xP, xQ)
	a := f.Mul(xQmP, t1)
	a = f.Add(a, t0)
	t0 = f.Mul(t0, xQmP)
	a = f.Sub(a, f.One())
	t0 = f.Add(t0, t0)
	t1 = f.Add(t1, xQmP)
	t0 = f.Add(t0, t0)
	a = f.Sqr(a)
	t0inv, err := f.Inv(t0)
	if err != nil {
		return Curve{}, ErrNotOnCurve
	}
	a = f.Mul(a, t0inv)
	a = f.Sub(a, t1)
	return Curve{A: a, C: f.One()}, nil
}
