package key_test

import (
	"os"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/drand/sike/isogeny"
	"github.com/drand/sike/key"
	"github.com/drand/sike/params"
)

func isogenyEngine(prm *params.Params) *isogeny.Engine {
	return isogeny.New(prm)
}

func TestStoreRoundTrip(t *testing.T) {
	prm := params.P434()
	pair, err := key.NewPair(prm, nil)
	require.NoError(t, err)

	store := key.NewFileStore(t.TempDir(), nil)
	require.NoError(t, store.SaveKeyPair(pair))

	loaded, err := store.LoadKeyPair()
	require.NoError(t, err)
	require.Equal(t, pair.Scheme, loaded.Scheme)
	require.Equal(t, pair.Priv.S, loaded.Priv.S)
	require.True(t, pair.Priv.Secret.Equal(loaded.Priv.Secret))

	eng := isogenyEngine(prm)
	require.True(t, eng.PublicKeyEqual(pair.Pub, loaded.Pub))

	pub, err := store.LoadPublic()
	require.NoError(t, err)
	require.Equal(t, pair.Scheme, pub.Scheme)
	require.True(t, eng.PublicKeyEqual(pair.Pub, pub.Key))
}

func TestStorePrivatePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("posix permissions only")
	}
	pair, err := key.NewPair(params.P434(), nil)
	require.NoError(t, err)

	store := key.NewFileStore(t.TempDir(), nil)
	require.NoError(t, store.SaveKeyPair(pair))

	info, err := os.Stat(store.PrivateFile)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestStoreAbsent(t *testing.T) {
	store := key.NewFileStore(t.TempDir(), nil)
	_, err := store.LoadKeyPair()
	require.ErrorIs(t, err, key.ErrAbsent)
}
