// Package instruction defines the wire format of registry calls: signed
// transactions carrying one or more program instructions, Anchor-style
// instruction discriminators and Borsh-encoded arguments.
package instruction

import (
	"bytes"
	"fmt"

	"github.com/dmitrijs2005/tokenregister/internal/common"
	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/google/uuid"
)

// AccountMeta names an account an instruction touches.
type AccountMeta struct {
	PublicKey  solana.PublicKey
	IsSigner   bool
	IsWritable bool
}

// Instruction is one call into a program.
type Instruction struct {
	ProgramID solana.PublicKey
	Accounts  []AccountMeta
	Data      []byte
}

// Message is the signed part of a transaction. Signers[0] pays for any
// records the transaction creates.
type Message struct {
	Nonce        [16]byte
	Signers      []solana.PublicKey
	Instructions []Instruction
}

// Transaction is a message plus one signature per signer, in signer order.
type Transaction struct {
	Signatures []solana.Signature
	Message    Message
}

// SignerSet holds the identities whose signatures verified for a call.
type SignerSet map[solana.PublicKey]struct{}

// Has reports whether key signed the call.
func (s SignerSet) Has(key solana.PublicKey) bool {
	_, ok := s[key]
	return ok
}

// Marshal returns the bytes that signers sign.
func (m *Message) Marshal() ([]byte, error) {
	return encode(m)
}

// FeePayer returns the first signer.
func (m *Message) FeePayer() (solana.PublicKey, error) {
	if len(m.Signers) == 0 {
		return solana.PublicKey{}, fmt.Errorf("%w: no signers", common.ErrInvalidTransaction)
	}
	return m.Signers[0], nil
}

// NewTransaction builds a message with a fresh nonce from the given
// instructions and signs it with every key. The first key pays.
func NewTransaction(instructions []Instruction, signers ...solana.PrivateKey) (*Transaction, error) {
	if len(signers) == 0 {
		return nil, fmt.Errorf("%w: at least one signer required", common.ErrInvalidTransaction)
	}

	tx := &Transaction{Message: Message{
		Nonce:        uuid.New(),
		Instructions: instructions,
	}}
	for _, k := range signers {
		tx.Message.Signers = append(tx.Message.Signers, k.PublicKey())
	}

	payload, err := tx.Message.Marshal()
	if err != nil {
		return nil, fmt.Errorf("encode message: %w", err)
	}
	for _, k := range signers {
		sig, err := k.Sign(payload)
		if err != nil {
			return nil, fmt.Errorf("sign message: %w", err)
		}
		tx.Signatures = append(tx.Signatures, sig)
	}
	return tx, nil
}

// ID identifies a transaction by its first signature.
func (t *Transaction) ID() string {
	if len(t.Signatures) == 0 {
		return ""
	}
	return t.Signatures[0].String()
}

func (t *Transaction) Marshal() ([]byte, error) {
	return encode(t)
}

// Unmarshal decodes a transaction produced by Transaction.Marshal.
func Unmarshal(data []byte) (*Transaction, error) {
	tx := &Transaction{}
	if err := bin.NewBorshDecoder(data).Decode(tx); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidTransaction, err)
	}
	return tx, nil
}

// Verify checks every signature against the message and that each account
// flagged as signer is among the verified signers. It returns the set of
// verified signers.
func (t *Transaction) Verify() (SignerSet, error) {
	if len(t.Message.Signers) == 0 {
		return nil, fmt.Errorf("%w: no signers", common.ErrInvalidTransaction)
	}
	if len(t.Signatures) != len(t.Message.Signers) {
		return nil, fmt.Errorf("%w: %d signatures for %d signers", common.ErrSignatureVerification, len(t.Signatures), len(t.Message.Signers))
	}

	payload, err := t.Message.Marshal()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidTransaction, err)
	}

	signers := make(SignerSet, len(t.Message.Signers))
	for i, key := range t.Message.Signers {
		if !t.Signatures[i].Verify(key, payload) {
			return nil, fmt.Errorf("%w: signer %s", common.ErrSignatureVerification, key)
		}
		signers[key] = struct{}{}
	}

	for _, ix := range t.Message.Instructions {
		for _, acc := range ix.Accounts {
			if acc.IsSigner && !signers.Has(acc.PublicKey) {
				return nil, fmt.Errorf("%w: %s", common.ErrMissingSignature, acc.PublicKey)
			}
		}
	}
	return signers, nil
}

func encode(v any) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := bin.NewBorshEncoder(buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
