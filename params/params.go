// Package params holds the four SIKE parameter sets as a registry of
// lazily-initialised, immutable schemes: the prime, the torsion generators
// on the starting curve, the tree-traversal strategies and the derived
// byte sizes. After first use a parameter set is process-wide read-only.
package params

import (
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/drand/sike/field"
)

// ErrInvalidParameter is returned when a parameter-set name is unknown.
var ErrInvalidParameter = errors.New("params: unknown parameter set")

// Scheme names accepted by ByName.
const (
	SIKEp434 = "sikep434"
	SIKEp503 = "sikep503"
	SIKEp610 = "sikep610"
	SIKEp751 = "sikep751"
)

// DefaultSchemeID is the parameter set used when none is specified.
const DefaultSchemeID = SIKEp434

// Params bundles everything one parameter set defines. The struct is
// created once per process and never mutated afterwards.
type Params struct {
	// Name is the registry name, e.g. "sikep434".
	Name string

	// P is the prime 2^E2 * 3^E3 - 1.
	P *big.Int
	// E2 and E3 are the torsion exponents.
	E2, E3 uint

	// Fp and Fp2 are the field descriptions every computation runs in.
	Fp  *field.Fp
	Fp2 *field.Fp2

	// Generator x-coordinates on the starting curve: the 2-torsion basis
	// (P2, Q2) with R2 = P2 - Q2, and the 3-torsion (P3, Q3, R3).
	XP2, XQ2, XR2 field.Ext
	XP3, XQ3, XR3 field.Ext

	// Strategy2 and Strategy3 are the traversal tables for the large
	// isogeny walks. A nil strategy selects the naive quadratic walk.
	Strategy2, Strategy3 []int

	// Order2 and Order3 bound the walk scalars; Bits2 and Bits3 fix the
	// ladder iteration counts.
	Order2, Order3 *big.Int
	Bits2, Bits3   int

	// SecretKeySize2 and SecretKeySize3 are the scalar encoding lengths.
	SecretKeySize2, SecretKeySize3 int

	// MsgLen is the PKE message and KEM shared-key length n.
	MsgLen int
	// SecParam is the classical security parameter in bits.
	SecParam int
}

// PublicKeySize is the byte length of a marshalled public key: three
// F_p² elements.
func (p *Params) PublicKeySize() int { return 3 * p.Fp2.ByteLen() }

// CiphertextSize is the byte length of a PKE ciphertext.
func (p *Params) CiphertextSize() int { return p.PublicKeySize() + p.MsgLen }

// SharedSecretSize is the byte length of the KEM shared key.
func (p *Params) SharedSecretSize() int { return p.MsgLen }

func (p *Params) String() string {
	if p == nil {
		return ""
	}
	return p.Name
}

// WithoutStrategies returns a copy of the parameter set that selects the
// naive large-isogeny walk. Useful as a cross-check oracle in tests.
func (p *Params) WithoutStrategies() *Params {
	cp := *p
	cp.Strategy2 = nil
	cp.Strategy3 = nil
	return &cp
}

type rawParams struct {
	name                   string
	e2, e3                 uint
	pHex                   string
	xp2, xq2, xr2          [2]string
	xp3, xq3, xr3          [2]string
	strategy2, strategy3   []int
	msgLen, secParam       int
}

func (r *rawParams) build() *Params {
	p, ok := new(big.Int).SetString(r.pHex, 16)
	if !ok {
		panic("params: bad prime constant for " + r.name)
	}
	fp := field.NewFp(p)
	fp2 := field.NewFp2(fp)

	// keyspaces: [0, 2^(E2-1)) on the 2-torsion side, the power-of-two
	// truncation of [0, 3^E3) on the 3-torsion side
	order2 := new(big.Int).Lsh(big.NewInt(1), r.e2-1)
	full3 := new(big.Int).Exp(big.NewInt(3), big.NewInt(int64(r.e3)), nil)
	order3 := new(big.Int).Lsh(big.NewInt(1), uint(full3.BitLen()-1))

	return &Params{
		Name:           r.name,
		P:              p,
		E2:             r.e2,
		E3:             r.e3,
		Fp:             fp,
		Fp2:            fp2,
		XP2:            fp2.FromStrings(r.xp2[0], r.xp2[1]),
		XQ2:            fp2.FromStrings(r.xq2[0], r.xq2[1]),
		XR2:            fp2.FromStrings(r.xr2[0], r.xr2[1]),
		XP3:            fp2.FromStrings(r.xp3[0], r.xp3[1]),
		XQ3:            fp2.FromStrings(r.xq3[0], r.xq3[1]),
		XR3:            fp2.FromStrings(r.xr3[0], r.xr3[1]),
		Strategy2:      r.strategy2,
		Strategy3:      r.strategy3,
		Order2:         order2,
		Order3:         order3,
		Bits2:          int(r.e2),
		Bits3:          full3.BitLen(),
		SecretKeySize2: (int(r.e2) - 1 + 7) / 8,
		SecretKeySize3: (full3.BitLen() - 1 + 7) / 8,
		MsgLen:         r.msgLen,
		SecParam:       r.secParam,
	}
}

var (
	registry = map[string]*rawParams{
		SIKEp434: &p434,
		SIKEp503: &p503,
		SIKEp610: &p610,
		SIKEp751: &p751,
	}
	built   = map[string]*Params{}
	buildMu sync.Mutex
)

// ByName returns the named parameter set, building it on first use.
func ByName(name string) (*Params, error) {
	buildMu.Lock()
	defer buildMu.Unlock()
	if p, ok := built[name]; ok {
		return p, nil
	}
	raw, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidParameter, name)
	}
	p := raw.build()
	built[name] = p
	return p, nil
}

// MustByName is ByName for statically known names.
func MustByName(name string) *Params {
	p, err := ByName(name)
	if err != nil {
		panic(err)
	}
	return p
}

// P434 returns the SIKEp434 parameter set.
func P434() *Params { return MustByName(SIKEp434) }

// P503 returns the SIKEp503 parameter set.
func P503() *Params { return MustByName(SIKEp503) }

// P610 returns the SIKEp610 parameter set.
func P610() *Params { return MustByName(SIKEp610) }

// P751 returns the SIKEp751 parameter set.
func P751() *Params { return MustByName(SIKEp751) }

// Names lists the registered parameter sets.
func Names() []string {
	return []string{SIKEp434, SIKEp503, SIKEp610, SIKEp751}
}
