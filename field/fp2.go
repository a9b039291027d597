package field

import "io"

// Ext is an element a + b·i of F_p², with i² = -1.
type Ext struct {
	A, B Element
}

// Fp2 provides arithmetic on the quadratic extension of a base field.
type Fp2 struct {
	Fp *Fp
}

// NewFp2 builds the extension-field description over the given base field.
func NewFp2(base *Fp) *Fp2 { return &Fp2{Fp: base} }

// ByteLen is the fixed encoding length of an extension element, a ‖ b.
func (e *Fp2) ByteLen() int { return 2 * e.Fp.ByteLen }

// Zero returns 0 + 0i.
func (e *Fp2) Zero() Ext { return Ext{A: e.Fp.Zero(), B: e.Fp.Zero()} }

// One returns 1 + 0i.
func (e *Fp2) One() Ext { return Ext{A: e.Fp.One(), B: e.Fp.Zero()} }

// FromUint64 embeds a small base-field constant.
func (e *Fp2) FromUint64(u uint64) Ext {
	return Ext{A: e.Fp.FromUint64(u), B: e.Fp.Zero()}
}

// FromStrings parses the two hexadecimal components a and b.
func (e *Fp2) FromStrings(a, b string) Ext {
	return Ext{A: e.Fp.FromString(a), B: e.Fp.FromString(b)}
}

// Add returns x + y componentwise.
func (e *Fp2) Add(x, y Ext) Ext {
	return Ext{A: e.Fp.Add(x.A, y.A), B: e.Fp.Add(x.B, y.B)}
}

// Sub returns x - y componentwise.
func (e *Fp2) Sub(x, y Ext) Ext {
	return Ext{A: e.Fp.Sub(x.A, y.A), B: e.Fp.Sub(x.B, y.B)}
}

// Neg returns -x.
func (e *Fp2) Neg(x Ext) Ext {
	return Ext{A: e.Fp.Neg(x.A), B: e.Fp.Neg(x.B)}
}

// Conj returns the conjugate a - b·i.
func (e *Fp2) Conj(x Ext) Ext {
	return Ext{A: x.A, B: e.Fp.Neg(x.B)}
}

// Mul returns x·y using the three-multiplication Karatsuba schedule:
// (a+bi)(c+di) = (ac - bd) + ((a+b)(c+d) - ac - bd)i.
func (e *Fp2) Mul(x, y Ext) Ext {
	f := e.Fp
	t1 := f.Mul(x.A, y.A)
	t2 := f.Mul(x.B, y.B)
	t3 := f.Mul(f.Add(x.A, x.B), f.Add(y.A, y.B))
	return Ext{
		A: f.Sub(t1, t2),
		B: f.Sub(t3, f.Add(t1, t2)),
	}
}

// Sqr returns x² as (a+b)(a-b) + 2ab·i, two base-field multiplications.
func (e *Fp2) Sqr(x Ext) Ext {
	f := e.Fp
	ab := f.Mul(x.A, x.B)
	return Ext{
		A: f.Mul(f.Add(x.A, x.B), f.Sub(x.A, x.B)),
		B: f.Add(ab, ab),
	}
}

// Inv returns x⁻¹ = (a - bi) / (a² + b²). Inverting zero is an error.
func (e *Fp2) Inv(x Ext) (Ext, error) {
	f := e.Fp
	norm := f.Add(f.Sqr(x.A), f.Sqr(x.B))
	ninv, err := f.Inv(norm)
	if err != nil {
		return Ext{}, err
	}
	return Ext{
		A: f.Mul(x.A, ninv),
		B: f.Mul(f.Neg(x.B), ninv),
	}, nil
}

// Div returns x / y.
func (e *Fp2) Div(x, y Ext) (Ext, error) {
	yi, err := e.Inv(y)
	if err != nil {
		return Ext{}, err
	}
	return e.Mul(x, yi), nil
}

// Sqrt returns an element w with w² = z, using Shanks-style exponentiation
// specialised to p ≡ 3 (mod 4). Non-squares are rejected with ErrNotASquare.
func (e *Fp2) Sqrt(z Ext) (Ext, error) {
	f := e.Fp
	if f.IsZero(z.B) {
		// z lies in the base field: its root is either real or purely
		// imaginary depending on the residue class of a.
		if r, err := f.Sqrt(z.A); err == nil {
			return Ext{A: r, B: f.Zero()}, nil
		}
		r, err := f.Sqrt(f.Neg(z.A))
		if err != nil {
			return Ext{}, ErrNotASquare
		}
		return Ext{A: f.Zero(), B: r}, nil
	}

	// Write w = x + yi. Then x² = (a ± |z|)/2 with |z| = sqrt(a² + b²),
	// and y = b / 2x. One of the two signs yields a square.
	norm := f.Add(f.Sqr(z.A), f.Sqr(z.B))
	t, err := f.Sqrt(norm)
	if err != nil {
		return Ext{}, ErrNotASquare
	}
	halfInv, _ := f.Inv(f.FromUint64(2))
	for _, s := range []Element{t, f.Neg(t)} {
		x2 := f.Mul(f.Add(z.A, s), halfInv)
		x, err := f.Sqrt(x2)
		if err != nil {
			continue
		}
		den, err := f.Inv(f.Add(x, x))
		if err != nil {
			continue
		}
		w := Ext{A: x, B: f.Mul(z.B, den)}
		if e.Equal(e.Sqr(w), z) {
			return w, nil
		}
	}
	return Ext{}, ErrNotASquare
}

// Equal reports componentwise equality of canonical representatives.
func (e *Fp2) Equal(x, y Ext) bool {
	return e.Fp.Equal(x.A, y.A) && e.Fp.Equal(x.B, y.B)
}

// IsZero reports whether x is 0 + 0i.
func (e *Fp2) IsZero(x Ext) bool {
	return e.Fp.IsZero(x.A) && e.Fp.IsZero(x.B)
}

// ToBytes encodes x as a ‖ b, each component fixed-length big-endian.
func (e *Fp2) ToBytes(x Ext) []byte {
	out := make([]byte, 0, e.ByteLen())
	out = append(out, e.Fp.ToBytes(x.A)...)
	return append(out, e.Fp.ToBytes(x.B)...)
}

// FromBytes decodes a ‖ b, rejecting non-canonical components.
func (e *Fp2) FromBytes(b []byte) (Ext, error) {
	if len(b) != e.ByteLen() {
		return Ext{}, ErrEncoding
	}
	n := e.Fp.ByteLen
	a, err := e.Fp.FromBytes(b[:n])
	if err != nil {
		return Ext{}, err
	}
	bb, err := e.Fp.FromBytes(b[n:])
	if err != nil {
		return Ext{}, err
	}
	return Ext{A: a, B: bb}, nil
}

// Rand draws a uniform extension element from the byte oracle.
func (e *Fp2) Rand(source io.Reader) (Ext, error) {
	a, err := e.Fp.Rand(source)
	if err != nil {
		return Ext{}, err
	}
	b, err := e.Fp.Rand(source)
	if err != nil {
		return Ext{}, err
	}
	return Ext{A: a, B: b}, nil
}
