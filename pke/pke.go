// Package pke implements the SIKE public-key encryption scheme: an
// ephemeral 2-torsion walk against the recipient's static 3-torsion key,
// with the shared j-invariant stretched into a message mask by cSHAKE256.
package pke

import (
	"errors"
	"io"

	"github.com/drand/sike/field"
	"github.com/drand/sike/internal/shake"
	"github.com/drand/sike/isogeny"
	"github.com/drand/sike/params"
)

// ErrMessageLength is returned when a plaintext does not have the
// parameter set's fixed message length.
var ErrMessageLength = errors.New("pke: bad message length")

// Ciphertext is an ephemeral public key together with the masked message.
type Ciphertext struct {
	C0 []byte // marshalled ephemeral public key
	C1 []byte // message XOR mask
}

// Marshal encodes the ciphertext as c0 ‖ c1.
func (c *Ciphertext) Marshal() []byte {
	out := make([]byte, 0, len(c.C0)+len(c.C1))
	out = append(out, c.C0...)
	return append(out, c.C1...)
}

// UnmarshalCiphertext splits a byte string into its ciphertext parts.
func UnmarshalCiphertext(prm *params.Params, b []byte) (*Ciphertext, error) {
	if len(b) != prm.CiphertextSize() {
		return nil, params.ErrInvalidParameter
	}
	n := prm.PublicKeySize()
	c := &Ciphertext{C0: make([]byte, n), C1: make([]byte, prm.MsgLen)}
	copy(c.C0, b[:n])
	copy(c.C1, b[n:])
	return c, nil
}

// PKE encrypts fixed-length messages under a parameter set.
type PKE struct {
	prm *params.Params
	eng *isogeny.Engine
}

// New builds the encryption scheme for a parameter set.
func New(prm *params.Params) *PKE {
	return &PKE{prm: prm, eng: isogeny.New(prm)}
}

// Params returns the underlying parameter set.
func (p *PKE) Params() *params.Params { return p.prm }

// Engine exposes the isogeny engine, shared with the KEM layer.
func (p *PKE) Engine() *isogeny.Engine { return p.eng }

// GenerateKeyPair draws a 3-torsion secret from the byte oracle and
// derives the matching public key.
func (p *PKE) GenerateKeyPair(source io.Reader) (*isogeny.SecretKey, *isogeny.PublicKey, error) {
	sk, err := isogeny.RandomSecretKey3(p.prm, source)
	if err != nil {
		return nil, nil, err
	}
	pk, err := p.eng.Isogen3(sk)
	if err != nil {
		return nil, nil, err
	}
	return sk, pk, nil
}

// Encrypt encrypts msg under pk with a fresh ephemeral key drawn from the
// byte oracle.
func (p *PKE) Encrypt(pk *isogeny.PublicKey, msg []byte, source io.Reader) (*Ciphertext, error) {
	eph, err := isogeny.RandomSecretKey2(p.prm, source)
	if err != nil {
		return nil, err
	}
	defer eph.Wipe()
	return p.EncryptWithKey(pk, msg, eph)
}

// EncryptWithKey encrypts msg under pk using the given ephemeral 2-torsion
// key. The KEM layer uses it to make encryption deterministic.
func (p *PKE) EncryptWithKey(pk *isogeny.PublicKey, msg []byte, eph *isogeny.SecretKey) (*Ciphertext, error) {
	if len(msg) != p.prm.MsgLen {
		return nil, ErrMessageLength
	}

	c0, err := p.eng.Isogen2(eph)
	if err != nil {
		return nil, err
	}
	j, err := p.eng.Isoex2(eph, pk)
	if err != nil {
		return nil, err
	}

	mask := p.maskFromJ(j)
	return &Ciphertext{
		C0: p.eng.MarshalPublicKey(c0),
		C1: xor(msg, mask),
	}, nil
}

// Decrypt recovers the plaintext with the static 3-torsion secret key.
func (p *PKE) Decrypt(sk *isogeny.SecretKey, ct *Ciphertext) ([]byte, error) {
	if len(ct.C1) != p.prm.MsgLen {
		return nil, ErrMessageLength
	}
	c0, err := p.eng.UnmarshalPublicKey(ct.C0)
	if err != nil {
		return nil, err
	}
	j, err := p.eng.Isoex3(sk, c0)
	if err != nil {
		return nil, err
	}
	return xor(ct.C1, p.maskFromJ(j)), nil
}

// maskFromJ is the hash function F: the shared j-invariant stretched to
// the message length.
func (p *PKE) maskFromJ(j field.Ext) []byte {
	return shake.Sum(shake.TagF, p.prm.MsgLen, p.prm.Fp2.ToBytes(j))
}

func xor(a, b []byte) []byte {
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out
}
