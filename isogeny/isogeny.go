package isogeny

import (
	"github.com/drand/sike/field"
)

// The elementary isogeny steps below are Vélu-style formulas taking a
// kernel point of small exact order. Feeding a kernel of the wrong order
// is a caller bug: the formulas still return well-defined field elements,
// they just do not describe a useful isogeny. Evaluating an isogeny at a
// point of its own kernel legitimately lands on (X : 0).

// TwoIsogenyCurve derives the curve 2-isogenous to the current one from a
// kernel point of order 2. The result is in (A+2C : 4C) form.
func (e *Engine) TwoIsogenyCurve(k Point) Curve {
	f := e.fld
	a := f.Sqr(k.X)
	c := f.Sqr(k.Z)
	return Curve{A: f.Sub(c, a), C: c}
}

// TwoIsogenyEval pushes a point q through the 2-isogeny with kernel ⟨k⟩.
func (e *Engine) TwoIsogenyEval(k, q Point) Point {
	f := e.fld
	t0 := f.Add(k.X, k.Z)
	t1 := f.Sub(k.X, k.Z)
	t2 := f.Add(q.X, q.Z)
	t3 := f.Sub(q.X, q.Z)
	t0 = f.Mul(t0, t3)
	t1 = f.Mul(t1, t2)
	t2 = f.Add(t0, t1)
	t3 = f.Sub(t0, t1)
	return Point{X: f.Mul(q.X, t2), Z: f.Mul(q.Z, t3)}
}

// FourIsogenyCurve derives the 4-isogenous curve from a kernel point of
// order 4, along with the three constants reused by evaluation. The curve
// is in (A+2C : 4C) form.
func (e *Engine) FourIsogenyCurve(k Point) (Curve, field.Ext, field.Ext, field.Ext) {
	f := e.fld
	k2 := f.Sub(k.X, k.Z)
	k3 := f.Add(k.X, k.Z)
	k1 := f.Sqr(k.Z)
	k1 = f.Add(k1, k1)
	c := f.Sqr(k1)
	k1 = f.Add(k1, k1)
	a := f.Sqr(k.X)
	a = f.Add(a, a)
	a = f.Sqr(a)
	return Curve{A: a, C: c}, k1, k2, k3
}

// FourIsogenyEval pushes a point through the 4-isogeny described by the
// constants from FourIsogenyCurve.
func (e *Engine) FourIsogenyEval(k1, k2, k3 field.Ext, q Point) Point {
	f := e.fld
	t0 := f.Add(q.X, q.Z)
	t1 := f.Sub(q.X, q.Z)
	x := f.Mul(t0, k2)
	z := f.Mul(t1, k3)
	t0 = f.Mul(t0, t1)
	t0 = f.Mul(t0, k1)
	t1 = f.Add(x, z)
	z = f.Sub(x, z)
	t1 = f.Sqr(t1)
	z = f.Sqr(z)
	x = f.Add(t0, t1)
	t0 = f.Sub(z, t0)
	return Point{X: f.Mul(x, t1), Z: f.Mul(z, t0)}
}

// ThreeIsogenyCurve derives the 3-isogenous curve from a kernel point of
// order 3, with the two constants reused by evaluation. The curve is in
// (A+2C : A-2C) form.
func (e *Engine) ThreeIsogenyCurve(k Point) (Curve, field.Ext, field.Ext) {
	f := e.fld
	k1 := f.Sub(k.X, k.Z)
	t0 := f.Sqr(k1)
	k2 := f.Add(k.X, k.Z)
	t1 := f.Sqr(k2)
	t2 := f.Add(t0, t1)
	t3 := f.Add(k1, k2)
	t3 = f.Sqr(t3)
	t3 = f.Sub(t3, t2)
	t2 = f.Add(t1, t3)
	t3 = f.Add(t3, t0)
	t4 := f.Add(t3, t0)
	t4 = f.Add(t4, t4)
	t4 = f.Add(t1, t4)
	c := f.Mul(t2, t4)
	t4 = f.Add(t1, t2)
	t4 = f.Add(t4, t4)
	t4 = f.Add(t0, t4)
	t4 = f.Mul(t3, t4)
	t0 = f.Sub(t4, c)
	a := f.Add(c, t0)
	return Curve{A: a, C: c}, k1, k2
}

// ThreeIsogenyEval pushes a point through the 3-isogeny described by the
// constants from ThreeIsogenyCurve.
func (e *Engine) ThreeIsogenyEval(k1, k2 field.Ext, q Point) Point {
	f := e.fld
	t0 := f.Add(q.X, q.Z)
	t1 := f.Sub(q.X, q.Z)
	t0 = f.Mul(k1, t0)
	t1 = f.Mul(k2, t1)
	t2 := f.Add(t0, t1)
	t0 = f.Sub(t1, t0)
	t2 = f.Sqr(t2)
	t0 = f.Sqr(t0)
	return Point{X: f.Mul(q.X, t2), Z: f.Mul(q.Z, t0)}
}
