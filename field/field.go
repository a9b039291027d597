// Package field implements the prime field F_p and its quadratic extension
// F_p² = F_p(i) for the SIKE primes p = 2^e2 * 3^e3 - 1. All primes used
// here satisfy p ≡ 3 (mod 4), which makes i² = -1 a valid extension and
// gives cheap square roots.
//
// Elements are value types and are never mutated after creation: every
// operation returns a freshly reduced element. The representation is a
// math/big integer kept in [0, p).
package field

import (
	"errors"
	"io"
	"math/big"

	"github.com/drand/sike/entropy"
)

var (
	// ErrDivisionByZero is returned when inverting the zero element.
	ErrDivisionByZero = errors.New("field: division by zero")
	// ErrNotASquare is returned by Sqrt when the input has no square root.
	ErrNotASquare = errors.New("field: not a square")
	// ErrEncoding is returned when a byte string does not decode to a
	// canonical field element.
	ErrEncoding = errors.New("field: invalid element encoding")
)

// Fp describes the prime field F_p for a fixed SIKE prime. It carries the
// modulus and the precomputed exponents used by inversion and square roots.
// An Fp is immutable once created and safe for concurrent use.
type Fp struct {
	// P is the field modulus.
	P *big.Int
	// ByteLen is the fixed big-endian encoding length, ⌈log₂p / 8⌉.
	ByteLen int

	pMinus2  *big.Int // p-2, Fermat inversion exponent
	sqrtExp  *big.Int // (p+1)/4, square-root exponent
	elemBits int
}

// NewFp builds the field description for the given prime. The prime is
// trusted; it comes from the static parameter tables.
func NewFp(p *big.Int) *Fp {
	one := big.NewInt(1)
	pm2 := new(big.Int).Sub(p, big.NewInt(2))
	se := new(big.Int).Add(p, one)
	se.Rsh(se, 2)
	return &Fp{
		P:        p,
		ByteLen:  (p.BitLen() + 7) / 8,
		pMinus2:  pm2,
		sqrtExp:  se,
		elemBits: p.BitLen(),
	}
}

// Element is an element of F_p, always fully reduced.
type Element struct {
	v *big.Int
}

// BigInt returns a copy of the element's integer representative.
func (x Element) BigInt() *big.Int {
	if x.v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(x.v)
}

func (x Element) val() *big.Int {
	if x.v == nil {
		return new(big.Int)
	}
	return x.v
}

// Zero returns the additive identity.
func (f *Fp) Zero() Element { return Element{v: new(big.Int)} }

// One returns the multiplicative identity.
func (f *Fp) One() Element { return Element{v: big.NewInt(1)} }

// FromUint64 reduces a small constant into the field.
func (f *Fp) FromUint64(u uint64) Element {
	v := new(big.Int).SetUint64(u)
	return Element{v: v.Mod(v, f.P)}
}

// FromString parses a hexadecimal representative and reduces it. It is used
// to load the static parameter tables and panics on malformed input.
func (f *Fp) FromString(s string) Element {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("field: bad hex constant: " + s)
	}
	return Element{v: v.Mod(v, f.P)}
}

// Add returns x + y.
func (f *Fp) Add(x, y Element) Element {
	v := new(big.Int).Add(x.val(), y.val())
	if v.Cmp(f.P) >= 0 {
		v.Sub(v, f.P)
	}
	return Element{v: v}
}

// Sub returns x - y.
func (f *Fp) Sub(x, y Element) Element {
	v := new(big.Int).Sub(x.val(), y.val())
	if v.Sign() < 0 {
		v.Add(v, f.P)
	}
	return Element{v: v}
}

// Neg returns -x.
func (f *Fp) Neg(x Element) Element {
	if x.val().Sign() == 0 {
		return f.Zero()
	}
	return Element{v: new(big.Int).Sub(f.P, x.val())}
}

// Mul returns x * y.
func (f *Fp) Mul(x, y Element) Element {
	v := new(big.Int).Mul(x.val(), y.val())
	return Element{v: v.Mod(v, f.P)}
}

// Sqr returns x².
func (f *Fp) Sqr(x Element) Element { return f.Mul(x, x) }

// Inv returns x⁻¹ computed as x^(p-2). Inverting zero is an error.
func (f *Fp) Inv(x Element) (Element, error) {
	if x.val().Sign() == 0 {
		return Element{}, ErrDivisionByZero
	}
	return Element{v: new(big.Int).Exp(x.val(), f.pMinus2, f.P)}, nil
}

// Sqrt returns a square root of x, computed as x^((p+1)/4). If x is a
// quadratic non-residue it returns ErrNotASquare.
func (f *Fp) Sqrt(x Element) (Element, error) {
	r := Element{v: new(big.Int).Exp(x.val(), f.sqrtExp, f.P)}
	if !f.Equal(f.Sqr(r), x) {
		return Element{}, ErrNotASquare
	}
	return r, nil
}

// Equal reports whether x and y are the same element.
func (f *Fp) Equal(x, y Element) bool { return x.val().Cmp(y.val()) == 0 }

// IsZero reports whether x is the additive identity.
func (f *Fp) IsZero(x Element) bool { return x.val().Sign() == 0 }

// ToBytes encodes x as a fixed-length big-endian byte string.
func (f *Fp) ToBytes(x Element) []byte {
	out := make([]byte, f.ByteLen)
	x.val().FillBytes(out)
	return out
}

// FromBytes decodes a fixed-length big-endian byte string. Strings of the
// wrong length or encoding an integer ≥ p are rejected with ErrEncoding.
func (f *Fp) FromBytes(b []byte) (Element, error) {
	if len(b) != f.ByteLen {
		return Element{}, ErrEncoding
	}
	v := new(big.Int).SetBytes(b)
	if v.Cmp(f.P) >= 0 {
		return Element{}, ErrEncoding
	}
	return Element{v: v}, nil
}

// Rand draws a uniform element from the given byte oracle. It reads
// ⌈log₂p⌉ + 64 bits of entropy and reduces, leaving a negligible bias.
// A nil source falls back to the operating system generator.
func (f *Fp) Rand(source io.Reader) (Element, error) {
	n := (f.elemBits + 64 + 7) / 8
	buff, err := entropy.GetRandom(source, uint32(n))
	if err != nil {
		return Element{}, err
	}
	v := new(big.Int).SetBytes(buff)
	return Element{v: v.Mod(v, f.P)}, nil
}
