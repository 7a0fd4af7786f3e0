// Package state defines the persisted layout of registry records.
//
// Each record is an 8-byte account discriminator followed by the
// Borsh-encoded fields. Records are allocated with a fixed space and funded
// with the rent-exempt minimum for that space.
package state

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	"github.com/dmitrijs2005/tokenregister/internal/common"
	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

const (
	// DiscriminatorSize is the length of the account type prefix.
	DiscriminatorSize = 8

	// ManagerSpace is the allocated size of a ManagerRecord account.
	ManagerSpace = DiscriminatorSize + solana.PublicKeyLength

	// TokenSpace is the allocated size of a TokenRecord account.
	TokenSpace = DiscriminatorSize + 1000
)

var (
	ManagerDiscriminator = AccountDiscriminator("Manager")
	TokenDiscriminator   = AccountDiscriminator("TokenInfo")
)

// AccountDiscriminator returns sha256("account:<name>")[:8].
func AccountDiscriminator(name string) [DiscriminatorSize]byte {
	sum := sha256.Sum256([]byte("account:" + name))
	var d [DiscriminatorSize]byte
	copy(d[:], sum[:DiscriminatorSize])
	return d
}

// RentExemptMinimum returns the lamports a record of the given space must
// hold to be exempt from rent collection.
func RentExemptMinimum(space int) uint64 {
	const (
		accountStorageOverhead = 128
		lamportsPerByteYear    = 3480
		exemptionYears         = 2
	)
	return uint64(accountStorageOverhead+space) * lamportsPerByteYear * exemptionYears
}

// ManagerRecord names the identity allowed to approve new registrations.
type ManagerRecord struct {
	Authority solana.PublicKey
}

// TokenRecord is the metadata of one registered mint. Mint never changes
// after creation; Authority governs later metadata edits.
type TokenRecord struct {
	Mint      solana.PublicKey
	Authority solana.PublicKey
	Name      string
	Symbol    string
	ImageURI  string
}

func (m *ManagerRecord) Marshal() ([]byte, error) {
	return marshal(ManagerDiscriminator, m, ManagerSpace)
}

func (t *TokenRecord) Marshal() ([]byte, error) {
	return marshal(TokenDiscriminator, t, TokenSpace)
}

// UnmarshalManager decodes account data written by ManagerRecord.Marshal.
func UnmarshalManager(data []byte) (*ManagerRecord, error) {
	m := &ManagerRecord{}
	if err := unmarshal(ManagerDiscriminator, data, m); err != nil {
		return nil, err
	}
	return m, nil
}

// UnmarshalToken decodes account data written by TokenRecord.Marshal.
func UnmarshalToken(data []byte) (*TokenRecord, error) {
	t := &TokenRecord{}
	if err := unmarshal(TokenDiscriminator, data, t); err != nil {
		return nil, err
	}
	return t, nil
}

// IsToken reports whether data carries the TokenRecord discriminator.
func IsToken(data []byte) bool {
	return len(data) >= DiscriminatorSize && bytes.Equal(data[:DiscriminatorSize], TokenDiscriminator[:])
}

func marshal(disc [DiscriminatorSize]byte, v any, space int) ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.Write(disc[:])
	if err := bin.NewBorshEncoder(buf).Encode(v); err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	if buf.Len() > space {
		return nil, fmt.Errorf("%w: %d bytes, %d allocated", common.ErrMetadataTooLarge, buf.Len(), space)
	}
	return buf.Bytes(), nil
}

func unmarshal(disc [DiscriminatorSize]byte, data []byte, v any) error {
	if len(data) < DiscriminatorSize || !bytes.Equal(data[:DiscriminatorSize], disc[:]) {
		return fmt.Errorf("%w: discriminator mismatch", common.ErrInvalidAccountData)
	}
	if err := bin.NewBorshDecoder(data[DiscriminatorSize:]).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", common.ErrInvalidAccountData, err)
	}
	return nil
}
