// Package kem implements the SIKE key-encapsulation mechanism: the
// Fujisaki-Okamoto transform over the pke package, with implicit
// rejection. Decapsulating a tampered ciphertext yields a deterministic
// pseudorandom key and never an error, as IND-CCA security requires.
package kem

import (
	"bytes"
	"io"

	"github.com/drand/sike/entropy"
	"github.com/drand/sike/internal/shake"
	"github.com/drand/sike/isogeny"
	"github.com/drand/sike/params"
	"github.com/drand/sike/pke"
)

// TagSize is the length of the short ciphertext tag appended to the PKE
// ciphertext.
const TagSize = 8

// PrivateKey is the decapsulation key: the static 3-torsion secret, the
// matching public key (needed by re-encryption), and the implicit
// rejection secret s.
type PrivateKey struct {
	S      []byte
	Secret *isogeny.SecretKey
	Public *isogeny.PublicKey
}

// Wipe zeroises the secret material.
func (p *PrivateKey) Wipe() {
	for i := range p.S {
		p.S[i] = 0
	}
	p.Secret.Wipe()
}

// KEM encapsulates shared keys under a parameter set.
type KEM struct {
	prm *params.Params
	pke *pke.PKE
	eng *isogeny.Engine
}

// New builds the KEM for a parameter set.
func New(prm *params.Params) *KEM {
	p := pke.New(prm)
	return &KEM{prm: prm, pke: p, eng: p.Engine()}
}

// Params returns the underlying parameter set.
func (k *KEM) Params() *params.Params { return k.prm }

// CiphertextSize is the byte length of an encapsulation.
func (k *KEM) CiphertextSize() int { return k.prm.CiphertextSize() + TagSize }

// SharedSecretSize is the byte length of the encapsulated key.
func (k *KEM) SharedSecretSize() int { return k.prm.SharedSecretSize() }

// GenerateKeyPair draws a keypair and the implicit-rejection secret from
// the byte oracle.
func (k *KEM) GenerateKeyPair(source io.Reader) (*PrivateKey, *isogeny.PublicKey, error) {
	sk, pk, err := k.pke.GenerateKeyPair(source)
	if err != nil {
		return nil, nil, err
	}
	s, err := entropy.GetRandom(source, uint32(k.prm.MsgLen))
	if err != nil {
		return nil, nil, err
	}
	return &PrivateKey{S: s, Secret: sk, Public: pk}, pk, nil
}

// Encapsulate derives a fresh shared key for the holder of pk and returns
// the matching ciphertext.
func (k *KEM) Encapsulate(pk *isogeny.PublicKey, source io.Reader) (ct, key []byte, err error) {
	m, err := entropy.GetRandom(source, uint32(k.prm.MsgLen))
	if err != nil {
		return nil, nil, err
	}

	ct, err = k.encrypt(m, pk)
	if err != nil {
		return nil, nil, err
	}
	return ct, shake.Sum(shake.TagH, k.prm.MsgLen, m, ct), nil
}

// Decapsulate recovers the shared key from a ciphertext. Any tampering is
// absorbed: the re-encryption check fails and a pseudorandom key derived
// from the rejection secret is returned instead of an error. Only a
// ciphertext of the wrong length is reported as an error.
func (k *KEM) Decapsulate(priv *PrivateKey, ct []byte) ([]byte, error) {
	if len(ct) != k.CiphertextSize() {
		return nil, params.ErrInvalidParameter
	}

	reject := shake.Sum(shake.TagH, k.prm.MsgLen, priv.S, ct)

	inner, err := pke.UnmarshalCiphertext(k.prm, ct[:k.prm.CiphertextSize()])
	if err != nil {
		return reject, nil
	}
	m, err := k.pke.Decrypt(priv.Secret, inner)
	if err != nil {
		return reject, nil
	}

	again, err := k.encrypt(m, priv.Public)
	if err != nil || !bytes.Equal(again, ct) {
		return reject, nil
	}
	return shake.Sum(shake.TagH, k.prm.MsgLen, m, ct), nil
}

// encrypt runs the deterministic FO encryption of m under pk: randomness
// from G(m ‖ pk), then the tagged ciphertext c0 ‖ c1 ‖ t.
func (k *KEM) encrypt(m []byte, pk *isogeny.PublicKey) ([]byte, error) {
	pkBytes := k.eng.MarshalPublicKey(pk)

	seed := shake.Sum(shake.TagG, k.prm.SecretKeySize2, m, pkBytes)
	eph := isogeny.SecretKey2FromSeed(k.prm, seed)
	defer eph.Wipe()

	inner, err := k.pke.EncryptWithKey(pk, m, eph)
	if err != nil {
		return nil, err
	}

	ct := inner.Marshal()
	tag := shake.Sum(shake.TagT, TagSize, m, pkBytes)
	return append(ct, tag...), nil
}
