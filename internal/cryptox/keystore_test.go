package cryptox

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeystore_GenerateLoad(t *testing.T) {
	ks := NewKeystore(filepath.Join(t.TempDir(), "keys"))
	pass := []byte("correct horse")

	key, err := ks.Generate("manager", pass)
	require.NoError(t, err)

	pub, err := ks.PublicKey("manager")
	require.NoError(t, err)
	assert.Equal(t, key.PublicKey(), pub)

	loaded, err := ks.Load("manager", pass)
	require.NoError(t, err)
	assert.Equal(t, key, loaded)
}

func TestKeystore_WrongPassphrase(t *testing.T) {
	ks := NewKeystore(t.TempDir())
	_, err := ks.Generate("k", []byte("a"))
	require.NoError(t, err)

	_, err = ks.Load("k", []byte("b"))
	assert.ErrorIs(t, err, ErrWrongPassphrase)
}

func TestKeystore_NoOverwrite(t *testing.T) {
	ks := NewKeystore(t.TempDir())
	_, err := ks.Generate("k", []byte("a"))
	require.NoError(t, err)

	err = ks.Save("k", solana.NewWallet().PrivateKey, []byte("a"))
	assert.ErrorIs(t, err, ErrKeyExists)
}

func TestKeystore_Missing(t *testing.T) {
	ks := NewKeystore(t.TempDir())

	_, err := ks.PublicKey("nobody")
	assert.ErrorIs(t, err, ErrKeyNotFound)
	_, err = ks.Load("nobody", []byte("x"))
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestKeystore_InvalidName(t *testing.T) {
	ks := NewKeystore(t.TempDir())
	for _, name := range []string{"", "../escape", "a/b", "with space"} {
		_, err := ks.Generate(name, []byte("x"))
		assert.ErrorIs(t, err, ErrInvalidKeyName, name)
	}
}

func TestKeystore_FileMode(t *testing.T) {
	dir := t.TempDir()
	ks := NewKeystore(dir)
	_, err := ks.Generate("k", []byte("a"))
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(dir, "k.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
