// Package key handles the keypair material of the KEM and its storage on
// disk as TOML files, the private part under tight permissions.
package key

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/drand/sike/isogeny"
	"github.com/drand/sike/kem"
	"github.com/drand/sike/params"
)

// Pair is a KEM keypair bound to the parameter set it was generated for.
type Pair struct {
	Scheme string
	Priv   *kem.PrivateKey
	Pub    *isogeny.PublicKey
}

// NewPair generates a fresh keypair for the given parameter set, drawing
// randomness from the byte oracle.
func NewPair(prm *params.Params, source io.Reader) (*Pair, error) {
	k := kem.New(prm)
	priv, pub, err := k.GenerateKeyPair(source)
	if err != nil {
		return nil, fmt.Errorf("key: generating keypair: %w", err)
	}
	return &Pair{Scheme: prm.Name, Priv: priv, Pub: pub}, nil
}

// Tomler represents any struct that can be (un)marshalled into/from toml
// format.
type Tomler interface {
	TOML() interface{}
	FromTOML(i interface{}) error
	TOMLValue() interface{}
}

// PairTOML is the TOML-able version of a keypair.
type PairTOML struct {
	Scheme    string
	Secret    string
	Rejection string
	Public    string
}

// PublicTOML is the TOML-able version of the public part only.
type PublicTOML struct {
	Scheme string
	Key    string
}

// TOML returns the TOML-able version of the full keypair.
func (p *Pair) TOML() interface{} {
	eng := isogeny.New(params.MustByName(p.Scheme))
	return &PairTOML{
		Scheme:    p.Scheme,
		Secret:    hex.EncodeToString(p.Priv.Secret.Bytes()),
		Rejection: hex.EncodeToString(p.Priv.S),
		Public:    hex.EncodeToString(eng.MarshalPublicKey(p.Pub)),
	}
}

// FromTOML restores the keypair from its TOML representation.
func (p *Pair) FromTOML(i interface{}) error {
	ptoml, ok := i.(*PairTOML)
	if !ok {
		return errors.New("key: private can't decode toml from non PairTOML struct")
	}
	prm, err := params.ByName(ptoml.Scheme)
	if err != nil {
		return err
	}
	skBuff, err := hex.DecodeString(ptoml.Secret)
	if err != nil {
		return fmt.Errorf("key: decoding secret: %w", err)
	}
	sBuff, err := hex.DecodeString(ptoml.Rejection)
	if err != nil {
		return fmt.Errorf("key: decoding rejection secret: %w", err)
	}
	pkBuff, err := hex.DecodeString(ptoml.Public)
	if err != nil {
		return fmt.Errorf("key: decoding public key: %w", err)
	}
	eng := isogeny.New(prm)
	pub, err := eng.UnmarshalPublicKey(pkBuff)
	if err != nil {
		return fmt.Errorf("key: parsing public key: %w", err)
	}
	p.Scheme = prm.Name
	p.Priv = &kem.PrivateKey{
		S:      sBuff,
		Secret: isogeny.SecretKeyFromBytes(skBuff),
		Public: pub,
	}
	p.Pub = pub
	return nil
}

// TOMLValue returns an empty TOML-able version of a keypair.
func (p *Pair) TOMLValue() interface{} { return &PairTOML{} }

// Public is the shareable part of a pair, with its own TOML form.
type Public struct {
	Scheme string
	Key    *isogeny.PublicKey
}

// TOML returns the TOML-able version of the public key.
func (p *Public) TOML() interface{} {
	eng := isogeny.New(params.MustByName(p.Scheme))
	return &PublicTOML{
		Scheme: p.Scheme,
		Key:    hex.EncodeToString(eng.MarshalPublicKey(p.Key)),
	}
}

// FromTOML restores the public key from its TOML representation.
func (p *Public) FromTOML(i interface{}) error {
	ptoml, ok := i.(*PublicTOML)
	if !ok {
		return errors.New("key: public can't decode toml from non PublicTOML struct")
	}
	prm, err := params.ByName(ptoml.Scheme)
	if err != nil {
		return err
	}
	buff, err := hex.DecodeString(ptoml.Key)
	if err != nil {
		return fmt.Errorf("key: decoding public key: %w", err)
	}
	pub, err := isogeny.New(prm).UnmarshalPublicKey(buff)
	if err != nil {
		return err
	}
	p.Scheme = prm.Name
	p.Key = pub
	return nil
}

// TOMLValue returns an empty TOML-able version of a public key.
func (p *Public) TOMLValue() interface{} { return &PublicTOML{} }
