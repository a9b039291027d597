package isogeny

import (
	"io"
	"math/big"

	"github.com/drand/sike/entropy"
	"github.com/drand/sike/field"
	"github.com/drand/sike/params"
)

// PublicKey is the triple of x-coordinates transmitted by either side of
// the exchange. The image curve is recovered from them on arrival.
type PublicKey struct {
	X1, X2, X3 field.Ext
}

// MarshalPublicKey encodes the three coordinates back to back.
func (e *Engine) MarshalPublicKey(pk *PublicKey) []byte {
	f := e.fld
	out := make([]byte, 0, 3*f.ByteLen())
	out = append(out, f.ToBytes(pk.X1)...)
	out = append(out, f.ToBytes(pk.X2)...)
	return append(out, f.ToBytes(pk.X3)...)
}

// UnmarshalPublicKey decodes a public key, rejecting byte strings of the
// wrong length or with non-canonical coordinates.
func (e *Engine) UnmarshalPublicKey(b []byte) (*PublicKey, error) {
	f := e.fld
	n := f.ByteLen()
	if len(b) != 3*n {
		return nil, ErrEncoding
	}
	x1, err := f.FromBytes(b[:n])
	if err != nil {
		return nil, ErrEncoding
	}
	x2, err := f.FromBytes(b[n : 2*n])
	if err != nil {
		return nil, ErrEncoding
	}
	x3, err := f.FromBytes(b[2*n:])
	if err != nil {
		return nil, ErrEncoding
	}
	return &PublicKey{X1: x1, X2: x2, X3: x3}, nil
}

// PublicKeyEqual compares the canonical coordinates of two public keys.
func (e *Engine) PublicKeyEqual(a, b *PublicKey) bool {
	return e.fld.Equal(a.X1, b.X1) && e.fld.Equal(a.X2, b.X2) && e.fld.Equal(a.X3, b.X3)
}

// SecretKey is a walk scalar held as fixed-length big-endian bytes.
// Secret keys should be wiped once they are no longer needed.
type SecretKey struct {
	bytes []byte
}

// SecretKeyFromBytes builds a secret key from its byte representation.
func SecretKeyFromBytes(b []byte) *SecretKey {
	out := make([]byte, len(b))
	copy(out, b)
	return &SecretKey{bytes: out}
}

// Bytes returns a copy of the byte representation.
func (sk *SecretKey) Bytes() []byte {
	out := make([]byte, len(sk.bytes))
	copy(out, sk.bytes)
	return out
}

// Equal compares two secret keys.
func (sk *SecretKey) Equal(other *SecretKey) bool {
	if len(sk.bytes) != len(other.bytes) {
		return false
	}
	var d byte
	for i := range sk.bytes {
		d |= sk.bytes[i] ^ other.bytes[i]
	}
	return d == 0
}

// Wipe zeroises the key material.
func (sk *SecretKey) Wipe() {
	for i := range sk.bytes {
		sk.bytes[i] = 0
	}
}

func (sk *SecretKey) scalar() *big.Int {
	return new(big.Int).SetBytes(sk.bytes)
}

// RandomSecretKey2 samples a 2-torsion walk scalar from the byte oracle:
// it draws the keyspace bit length of entropy, rounded up to whole bytes,
// and reduces modulo the keyspace order.
func RandomSecretKey2(prm *params.Params, source io.Reader) (*SecretKey, error) {
	return randomSecretKey(prm.Order2, prm.SecretKeySize2, source)
}

// RandomSecretKey3 samples a 3-torsion walk scalar.
func RandomSecretKey3(prm *params.Params, source io.Reader) (*SecretKey, error) {
	return randomSecretKey(prm.Order3, prm.SecretKeySize3, source)
}

// SecretKey2FromSeed deterministically maps a seed to a 2-torsion walk
// scalar by reduction modulo the keyspace order. The Fujisaki-Okamoto
// transform uses it to re-derive encryption randomness.
func SecretKey2FromSeed(prm *params.Params, seed []byte) *SecretKey {
	v := new(big.Int).SetBytes(seed)
	v.Mod(v, prm.Order2)
	out := make([]byte, prm.SecretKeySize2)
	v.FillBytes(out)
	v.SetUint64(0)
	return &SecretKey{bytes: out}
}

func randomSecretKey(order *big.Int, size int, source io.Reader) (*SecretKey, error) {
	buff, err := entropy.GetRandom(source, uint32(size))
	if err != nil {
		return nil, err
	}
	v := new(big.Int).SetBytes(buff)
	v.Mod(v, order)
	out := make([]byte, size)
	v.FillBytes(out)
	v.SetUint64(0)
	return &SecretKey{bytes: out}, nil
}
