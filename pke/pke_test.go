package pke_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/drand/sike/entropy"
	"github.com/drand/sike/isogeny"
	"github.com/drand/sike/params"
	"github.com/drand/sike/pke"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	for _, name := range []string{params.SIKEp434, params.SIKEp503} {
		name := name
		t.Run(name, func(t *testing.T) {
			prm := params.MustByName(name)
			p := pke.New(prm)

			sk, pk, err := p.GenerateKeyPair(nil)
			require.NoError(t, err)

			for i := 0; i < 3; i++ {
				msg, err := entropy.GetRandom(nil, uint32(prm.MsgLen))
				require.NoError(t, err)

				ct, err := p.Encrypt(pk, msg, nil)
				require.NoError(t, err)
				require.Len(t, ct.C0, prm.PublicKeySize())
				require.Len(t, ct.C1, prm.MsgLen)

				back, err := p.Decrypt(sk, ct)
				require.NoError(t, err)
				require.Equal(t, msg, back)
			}
		})
	}
}

func TestEncryptRejectsBadMessageLength(t *testing.T) {
	prm := params.P434()
	p := pke.New(prm)
	_, pk, err := p.GenerateKeyPair(nil)
	require.NoError(t, err)

	_, err = p.Encrypt(pk, make([]byte, prm.MsgLen+1), nil)
	require.ErrorIs(t, err, pke.ErrMessageLength)
}

func TestEncryptWithKeyDeterministic(t *testing.T) {
	prm := params.P434()
	p := pke.New(prm)
	_, pk, err := p.GenerateKeyPair(nil)
	require.NoError(t, err)

	eph, err := isogeny.RandomSecretKey2(prm, nil)
	require.NoError(t, err)
	msg := bytes.Repeat([]byte{0x5A}, prm.MsgLen)

	c1, err := p.EncryptWithKey(pk, msg, eph)
	require.NoError(t, err)
	c2, err := p.EncryptWithKey(pk, msg, eph)
	require.NoError(t, err)
	require.Equal(t, c1.Marshal(), c2.Marshal())
}

func TestCiphertextMarshalRoundTrip(t *testing.T) {
	prm := params.P434()
	p := pke.New(prm)
	sk, pk, err := p.GenerateKeyPair(nil)
	require.NoError(t, err)

	msg := bytes.Repeat([]byte{0x11}, prm.MsgLen)
	ct, err := p.Encrypt(pk, msg, nil)
	require.NoError(t, err)

	buff := ct.Marshal()
	require.Len(t, buff, prm.CiphertextSize())

	back, err := pke.UnmarshalCiphertext(prm, buff)
	require.NoError(t, err)
	require.Equal(t, ct.C0, back.C0)
	require.Equal(t, ct.C1, back.C1)

	dec, err := p.Decrypt(sk, back)
	require.NoError(t, err)
	require.Equal(t, msg, dec)

	_, err = pke.UnmarshalCiphertext(prm, buff[1:])
	require.ErrorIs(t, err, params.ErrInvalidParameter)
}

func TestDecryptRejectsMangledEphemeralKey(t *testing.T) {
	prm := params.P434()
	p := pke.New(prm)
	sk, pk, err := p.GenerateKeyPair(nil)
	require.NoError(t, err)

	msg := bytes.Repeat([]byte{0x22}, prm.MsgLen)
	ct, err := p.Encrypt(pk, msg, nil)
	require.NoError(t, err)

	// force a non-canonical coordinate into the ephemeral public key
	for i := range ct.C0 {
		ct.C0[i] = 0xFF
	}
	_, err = p.Decrypt(sk, ct)
	require.Error(t, err)
}
