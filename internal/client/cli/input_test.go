package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubTerminal(t *testing.T, answers ...string) {
	t.Helper()
	origRead, origEnv := readPassword, getenv
	t.Cleanup(func() { readPassword, getenv = origRead, origEnv })

	getenv = func(string) string { return "" }
	readPassword = func(int) ([]byte, error) {
		if len(answers) == 0 {
			return nil, errors.New("no input")
		}
		a := answers[0]
		answers = answers[1:]
		return []byte(a), nil
	}
}

func TestGetPassphrase_FromEnv(t *testing.T) {
	origEnv := getenv
	t.Cleanup(func() { getenv = origEnv })
	getenv = func(k string) string {
		if k == PassphraseEnv {
			return "from-env"
		}
		return ""
	}

	var w bytes.Buffer
	pw, err := GetPassphrase(&w, "k", true)
	require.NoError(t, err)
	assert.Equal(t, []byte("from-env"), pw)
	assert.Empty(t, w.String())
}

func TestGetPassphrase_Prompt(t *testing.T) {
	stubTerminal(t, "secret")

	var w bytes.Buffer
	pw, err := GetPassphrase(&w, "alice", false)
	require.NoError(t, err)
	assert.Equal(t, []byte("secret"), pw)
	assert.Contains(t, w.String(), `Passphrase for "alice"`)
}

func TestGetPassphrase_Confirm(t *testing.T) {
	stubTerminal(t, "a", "a")
	pw, err := GetPassphrase(&bytes.Buffer{}, "k", true)
	require.NoError(t, err)
	assert.Equal(t, []byte("a"), pw)

	stubTerminal(t, "a", "b")
	_, err = GetPassphrase(&bytes.Buffer{}, "k", true)
	assert.ErrorIs(t, err, errPassphraseMismatch)
}

func TestGetPassphrase_ReadError(t *testing.T) {
	stubTerminal(t)
	_, err := GetPassphrase(&bytes.Buffer{}, "k", false)
	assert.Error(t, err)
}
