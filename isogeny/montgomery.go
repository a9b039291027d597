package isogeny

import (
	"math/big"

	"github.com/drand/sike/field"
	"github.com/drand/sike/params"
)

// Engine computes isogenies for one parameter set. It is stateless apart
// from the immutable parameter tables and may be shared between goroutines.
type Engine struct {
	fld *field.Fp2
	prm *params.Params
}

// New builds an engine over the given parameter set.
func New(prm *params.Params) *Engine {
	return &Engine{fld: prm.Fp2, prm: prm}
}

// Params returns the parameter set the engine was built with.
func (e *Engine) Params() *params.Params { return e.prm }

// Field returns the extension field the engine works in.
func (e *Engine) Field() *field.Fp2 { return e.fld }

// Double computes [2]P. The curve must be in (A+2C : 4C) form.
func (e *Engine) Double(p Point, plus Curve) Point {
	f := e.fld
	t0 := f.Sub(p.X, p.Z)
	t1 := f.Add(p.X, p.Z)
	t0 = f.Sqr(t0)
	t1 = f.Sqr(t1)
	z := f.Mul(plus.C, t0)
	x := f.Mul(z, t1)
	t1 = f.Sub(t1, t0)
	t0 = f.Mul(plus.A, t1)
	z = f.Add(z, t0)
	z = f.Mul(z, t1)
	return Point{X: x, Z: z}
}

// NDouble computes [2^n]P. The curve must be in (A+2C : 4C) form.
func (e *Engine) NDouble(p Point, n uint, plus Curve) Point {
	for ; n > 0; n-- {
		p = e.Double(p, plus)
	}
	return p
}

// Triple computes [3]P. The curve must be in (A+2C : A-2C) form.
func (e *Engine) Triple(p Point, pm Curve) Point {
	f := e.fld
	t0 := f.Sub(p.X, p.Z)
	t2 := f.Sqr(t0)
	t1 := f.Add(p.X, p.Z)
	t3 := f.Sqr(t1)
	t4 := f.Add(t1, t0)
	t0 = f.Sub(t1, t0)
	t1 = f.Sqr(t4)
	t1 = f.Sub(t1, t3)
	t1 = f.Sub(t1, t2)
	t5 := f.Mul(t3, pm.A)
	t3 = f.Mul(t5, t3)
	t6 := f.Mul(t2, pm.C)
	t2 = f.Mul(t2, t6)
	t3 = f.Sub(t2, t3)
	t2 = f.Sub(t5, t6)
	t1 = f.Mul(t2, t1)
	t2 = f.Add(t3, t1)
	t2 = f.Sqr(t2)
	x := f.Mul(t2, t4)
	t1 = f.Sub(t3, t1)
	t1 = f.Sqr(t1)
	z := f.Mul(t1, t0)
	return Point{X: x, Z: z}
}

// NTriple computes [3^n]P. The curve must be in (A+2C : A-2C) form.
func (e *Engine) NTriple(p Point, n uint, pm Curve) Point {
	for ; n > 0; n-- {
		p = e.Triple(p, pm)
	}
	return p
}

// DoubleAndAdd computes ([2]P, P+Q) given P, Q and Q-P. a24 is the field
// constant (A+2C)/4C of the current curve.
func (e *Engine) DoubleAndAdd(p, q, qmp Point, a24 field.Ext) (Point, Point) {
	f := e.fld
	t0 := f.Add(p.X, p.Z)
	t1 := f.Sub(p.X, p.Z)
	x2 := f.Sqr(t0)
	t2 := f.Sub(q.X, q.Z)
	xpq := f.Add(q.X, q.Z)
	t0 = f.Mul(t0, t2)
	z2 := f.Sqr(t1)
	t1 = f.Mul(t1, xpq)
	t2 = f.Sub(x2, z2)
	x2 = f.Mul(x2, z2)
	xpq = f.Mul(t2, a24)
	zpq := f.Sub(t0, t1)
	z2 = f.Add(xpq, z2)
	xpq = f.Add(t0, t1)
	z2 = f.Mul(z2, t2)
	zpq = f.Sqr(zpq)
	xpq = f.Sqr(xpq)
	zpq = f.Mul(qmp.X, zpq)
	xpq = f.Mul(qmp.Z, xpq)
	return Point{X: x2, Z: z2}, Point{X: xpq, Z: zpq}
}

// Ladder3pt computes P + [m]Q on the curve (A : C) using the three-point
// Montgomery ladder. The scalar is consumed least-significant bit first
// over exactly nbits iterations, so callers can fix the iteration count
// independently of the scalar's length.
func (e *Engine) Ladder3pt(m *big.Int, nbits int, xP, xQ, xQmP field.Ext, c Curve) (Point, error) {
	f := e.fld
	p0 := e.PointFromX(xQ)
	p1 := e.PointFromX(xP)
	p2 := e.PointFromX(xQmP)

	num := f.Add(c.A, f.Add(c.C, c.C))
	den := f.Mul(f.FromUint64(4), c.C)
	a24, err := f.Div(num, den)
	if err != nil {
		return Point{}, ErrNotOnCurve
	}

	for i := 0; i < nbits; i++ {
		if m.Bit(i) == 1 {
			p0, p1 = e.DoubleAndAdd(p0, p1, p2, a24)
		} else {
			p0, p2 = e.DoubleAndAdd(p0, p2, p1, a24)
		}
	}
	return p1, nil
}
