package isogeny

import (
	"github.com/drand/sike/field"
)

// The SIDH protocol layer. One party walks the 2-torsion, the other the
// 3-torsion; key generation pushes the other side's generators through the
// walk, shared-secret derivation walks again on the received curve and
// hands back its j-invariant.

// Isogen2 derives the public key of the 2-torsion side from a secret key:
// the kernel is S = P2 + [sk]Q2, and (P3, Q3, R3) are pushed through the
// 2^e2 isogeny it generates.
func (e *Engine) Isogen2(sk *SecretKey) (*PublicKey, error) {
	curve := e.StartingCurve()
	plus := e.CurvePlus(curve)

	aux := []Point{
		e.PointFromX(e.prm.XP3),
		e.PointFromX(e.prm.XQ3),
		e.PointFromX(e.prm.XR3),
	}

	s, err := e.Ladder3pt(sk.scalar(), e.prm.Bits2, e.prm.XP2, e.prm.XQ2, e.prm.XR2, curve)
	if err != nil {
		return nil, err
	}

	_, aux, err = e.Iso2E(s, aux, plus)
	if err != nil {
		return nil, err
	}
	return e.publicKeyFromPoints(aux)
}

// Isogen3 derives the public key of the 3-torsion side, pushing the
// 2-torsion generators through the 3^e3 isogeny.
func (e *Engine) Isogen3(sk *SecretKey) (*PublicKey, error) {
	curve := e.StartingCurve()
	pm := e.CurvePlusMinus(curve)

	aux := []Point{
		e.PointFromX(e.prm.XP2),
		e.PointFromX(e.prm.XQ2),
		e.PointFromX(e.prm.XR2),
	}

	s, err := e.Ladder3pt(sk.scalar(), e.prm.Bits3, e.prm.XP3, e.prm.XQ3, e.prm.XR3, curve)
	if err != nil {
		return nil, err
	}

	_, aux, err = e.Iso3E(s, aux, pm)
	if err != nil {
		return nil, err
	}
	return e.publicKeyFromPoints(aux)
}

// Isoex2 derives the shared j-invariant on the 2-torsion side from the
// peer's public key.
func (e *Engine) Isoex2(sk *SecretKey, pk *PublicKey) (field.Ext, error) {
	f := e.fld
	curve, err := e.CurveFromPublicKey(pk)
	if err != nil {
		return field.Ext{}, err
	}

	s, err := e.Ladder3pt(sk.scalar(), e.prm.Bits2, pk.X1, pk.X2, pk.X3, curve)
	if err != nil {
		return field.Ext{}, err
	}

	two := f.FromUint64(2)
	plus := Curve{A: f.Add(curve.A, two), C: f.FromUint64(4)}
	plus, _, err = e.Iso2E(s, nil, plus)
	if err != nil {
		return field.Ext{}, err
	}

	// back from (A+2C : 4C) to (A : C) up to scaling
	final := Curve{
		A: f.Sub(f.Mul(f.FromUint64(4), plus.A), f.Add(plus.C, plus.C)),
		C: plus.C,
	}
	return e.JInvariant(final)
}

// Isoex3 derives the shared j-invariant on the 3-torsion side.
func (e *Engine) Isoex3(sk *SecretKey, pk *PublicKey) (field.Ext, error) {
	f := e.fld
	curve, err := e.CurveFromPublicKey(pk)
	if err != nil {
		return field.Ext{}, err
	}

	s, err := e.Ladder3pt(sk.scalar(), e.prm.Bits3, pk.X1, pk.X2, pk.X3, curve)
	if err != nil {
		return field.Ext{}, err
	}

	two := f.FromUint64(2)
	pm := Curve{A: f.Add(curve.A, two), C: f.Sub(curve.A, two)}
	pm, _, err = e.Iso3E(s, nil, pm)
	if err != nil {
		return field.Ext{}, err
	}

	// back from (A+2C : A-2C) to (A : C) up to scaling
	final := Curve{
		A: f.Add(f.Add(pm.A, pm.C), f.Add(pm.A, pm.C)),
		C: f.Sub(pm.A, pm.C),
	}
	return e.JInvariant(final)
}

func (e *Engine) publicKeyFromPoints(pts []Point) (*PublicKey, error) {
	x1, err := e.Affine(pts[0])
	if err != nil {
		return nil, err
	}
	x2, err := e.Affine(pts[1])
	if err != nil {
		return nil, err
	}
	x3, err := e.Affine(pts[2])
	if err != nil {
		return nil, err
	}
	return &PublicKey{X1: x1, X2: x2, X3: x3}, nil
}
