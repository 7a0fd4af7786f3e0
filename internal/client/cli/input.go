package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// PassphraseEnv, when set, supplies the keystore passphrase without a prompt.
const PassphraseEnv = "TOKENREGISTER_PASSPHRASE"

// AccessTokenEnv supplies the operator token for protected calls.
const AccessTokenEnv = "TOKENREGISTER_ACCESS_TOKEN"

var errPassphraseMismatch = errors.New("passphrases do not match")

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// getenv is a test seam for os.Getenv.
var getenv = os.Getenv

// GetPassphrase returns the passphrase for key name, from PassphraseEnv or
// read from the terminal without echo. With confirm set the terminal prompt
// asks twice.
func GetPassphrase(w io.Writer, name string, confirm bool) ([]byte, error) {
	if v := getenv(PassphraseEnv); v != "" {
		return []byte(v), nil
	}

	pw, err := prompt(w, fmt.Sprintf("Passphrase for %q: ", name))
	if err != nil {
		return nil, err
	}
	if !confirm {
		return pw, nil
	}

	again, err := prompt(w, "Repeat passphrase: ")
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(pw, again) {
		return nil, errPassphraseMismatch
	}
	return pw, nil
}

func prompt(w io.Writer, text string) ([]byte, error) {
	if _, err := fmt.Fprint(w, text); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}
