package cryptox

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"github.com/gagliardetto/solana-go"
)

var (
	ErrKeyNotFound     = errors.New("key not found")
	ErrKeyExists       = errors.New("key already exists")
	ErrWrongPassphrase = errors.New("wrong passphrase")
	ErrInvalidKeyName  = errors.New("invalid key name")
)

const keyFileVersion = 1

var keyName = regexp.MustCompile(`^[A-Za-z0-9_.-]{1,64}$`)

// keyFile is the on-disk form of one keypair. The public key is stored in
// the clear so it can be shown without the passphrase.
type keyFile struct {
	Version    int    `json:"version"`
	PublicKey  string `json:"public_key"`
	Salt       []byte `json:"salt"`
	Nonce      []byte `json:"nonce"`
	Ciphertext []byte `json:"ciphertext"`
}

// Keystore keeps named ed25519 keypairs in a directory, one JSON file per
// key, each encrypted under its own passphrase-derived key.
type Keystore struct {
	dir string
}

func NewKeystore(dir string) *Keystore {
	return &Keystore{dir: dir}
}

func (k *Keystore) path(name string) (string, error) {
	if !keyName.MatchString(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidKeyName, name)
	}
	return filepath.Join(k.dir, name+".json"), nil
}

// Generate creates a new random keypair and stores it under name.
func (k *Keystore) Generate(name string, passphrase []byte) (solana.PrivateKey, error) {
	key, err := solana.NewRandomPrivateKey()
	if err != nil {
		return nil, err
	}
	if err := k.Save(name, key, passphrase); err != nil {
		return nil, err
	}
	return key, nil
}

// Save encrypts key under passphrase. Existing keys are never overwritten.
func (k *Keystore) Save(name string, key solana.PrivateKey, passphrase []byte) error {
	p, err := k.path(name)
	if err != nil {
		return err
	}

	salt, err := RandomBytes(SaltSize)
	if err != nil {
		return err
	}
	master := DeriveMasterKey(passphrase, salt)
	defer Wipe(master)
	ciphertext, nonce, err := Seal(key, master)
	if err != nil {
		return fmt.Errorf("seal key: %w", err)
	}

	data, err := json.MarshalIndent(keyFile{
		Version:    keyFileVersion,
		PublicKey:  key.PublicKey().String(),
		Salt:       salt,
		Nonce:      nonce,
		Ciphertext: ciphertext,
	}, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(k.dir, 0o700); err != nil {
		return err
	}
	f, err := os.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrKeyExists, name)
		}
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func (k *Keystore) read(name string) (*keyFile, error) {
	p, err := k.path(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, name)
		}
		return nil, err
	}
	kf := &keyFile{}
	if err := json.Unmarshal(data, kf); err != nil {
		return nil, fmt.Errorf("key file %s: %w", name, err)
	}
	if kf.Version != keyFileVersion {
		return nil, fmt.Errorf("key file %s: unsupported version %d", name, kf.Version)
	}
	return kf, nil
}

// PublicKey returns the public half of name without decrypting it.
func (k *Keystore) PublicKey(name string) (solana.PublicKey, error) {
	kf, err := k.read(name)
	if err != nil {
		return solana.PublicKey{}, err
	}
	return solana.PublicKeyFromBase58(kf.PublicKey)
}

// Load decrypts name with passphrase.
func (k *Keystore) Load(name string, passphrase []byte) (solana.PrivateKey, error) {
	kf, err := k.read(name)
	if err != nil {
		return nil, err
	}
	master := DeriveMasterKey(passphrase, kf.Salt)
	defer Wipe(master)
	plain, err := Open(kf.Ciphertext, kf.Nonce, master)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	key := solana.PrivateKey(plain)
	if key.PublicKey().String() != kf.PublicKey {
		return nil, fmt.Errorf("key file %s: public key does not match secret", name)
	}
	return key, nil
}
