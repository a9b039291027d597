package params_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/drand/sike/params"
)

func TestByName(t *testing.T) {
	for _, name := range params.Names() {
		p, err := params.ByName(name)
		require.NoError(t, err)
		require.Equal(t, name, p.Name)
	}

	_, err := params.ByName("sikep9000")
	require.ErrorIs(t, err, params.ErrInvalidParameter)
}

func TestByNameCaches(t *testing.T) {
	a, err := params.ByName(params.SIKEp434)
	require.NoError(t, err)
	b, err := params.ByName(params.SIKEp434)
	require.NoError(t, err)
	require.Same(t, a, b)
}

func TestPrimeShape(t *testing.T) {
	bits := map[string]int{
		params.SIKEp434: 434,
		params.SIKEp503: 503,
		params.SIKEp610: 610,
		params.SIKEp751: 751,
	}
	for _, name := range params.Names() {
		p := params.MustByName(name)

		require.Equal(t, bits[name], p.P.BitLen(), name)

		// p == 3 (mod 4)
		require.Equal(t, int64(3), new(big.Int).Mod(p.P, big.NewInt(4)).Int64(), name)

		// p == 2^e2 * 3^e3 - 1
		rebuilt := new(big.Int).Lsh(big.NewInt(1), p.E2)
		rebuilt.Mul(rebuilt, new(big.Int).Exp(big.NewInt(3), big.NewInt(int64(p.E3)), nil))
		rebuilt.Sub(rebuilt, big.NewInt(1))
		require.Zero(t, rebuilt.Cmp(p.P), name)
	}
}

func TestDerivedSizes(t *testing.T) {
	for _, name := range params.Names() {
		p := params.MustByName(name)
		fpLen := (p.P.BitLen() + 7) / 8
		require.Equal(t, fpLen, p.Fp.ByteLen, name)
		require.Equal(t, 2*fpLen, p.Fp2.ByteLen(), name)
		require.Equal(t, 6*fpLen, p.PublicKeySize(), name)
		require.Equal(t, p.PublicKeySize()+p.MsgLen, p.CiphertextSize(), name)
		require.Equal(t, p.MsgLen, p.SharedSecretSize(), name)
	}
}

func TestStrategyTableShapes(t *testing.T) {
	for _, name := range params.Names() {
		p := params.MustByName(name)
		require.Len(t, p.Strategy2, int(p.E2)/2-1, name)
		require.Len(t, p.Strategy3, int(p.E3)-1, name)
		for _, s := range append(append([]int{}, p.Strategy2...), p.Strategy3...) {
			require.Positive(t, s, name)
		}
	}
}

func TestWithoutStrategies(t *testing.T) {
	p := params.P434()
	naive := p.WithoutStrategies()
	require.Nil(t, naive.Strategy2)
	require.Nil(t, naive.Strategy3)
	require.NotNil(t, p.Strategy2)
	require.Same(t, p.Fp2, naive.Fp2)
}

func TestKeyspaceBounds(t *testing.T) {
	for _, name := range params.Names() {
		p := params.MustByName(name)

		// 2-torsion keyspace is 2^(e2-1)
		want := new(big.Int).Lsh(big.NewInt(1), p.E2-1)
		require.Zero(t, want.Cmp(p.Order2), name)

		// 3-torsion keyspace is the power-of-two truncation of 3^e3
		full := new(big.Int).Exp(big.NewInt(3), big.NewInt(int64(p.E3)), nil)
		require.True(t, p.Order3.Cmp(full) < 0, name)
		require.Equal(t, full.BitLen(), p.Order3.BitLen(), name)

		require.Equal(t, (int(p.E2)-1+7)/8, p.SecretKeySize2, name)
	}
}
