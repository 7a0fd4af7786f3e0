package instruction

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	"github.com/dmitrijs2005/tokenregister/internal/common"
	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// DiscriminatorSize is the length of the instruction selector.
const DiscriminatorSize = 8

// Registry instruction names as they appear on the wire.
const (
	NameInitialize    = "initialize"
	NameUpdateManager = "update_manager"
	NameRegister      = "register"
	NameUpdateToken   = "update_token"
)

var (
	InitializeDiscriminator    = Discriminator(NameInitialize)
	UpdateManagerDiscriminator = Discriminator(NameUpdateManager)
	RegisterDiscriminator      = Discriminator(NameRegister)
	UpdateTokenDiscriminator   = Discriminator(NameUpdateToken)
)

// Discriminator returns sha256("global:<name>")[:8].
func Discriminator(name string) [DiscriminatorSize]byte {
	sum := sha256.Sum256([]byte("global:" + name))
	var d [DiscriminatorSize]byte
	copy(d[:], sum[:DiscriminatorSize])
	return d
}

type InitializeArgs struct {
	Bump uint8
}

type UpdateManagerArgs struct {
	Bump       uint8
	NewManager solana.PublicKey
}

// TokenArgs carries the arguments of register and update_token. The
// authority bump is the bump of the token record address.
type TokenArgs struct {
	ManagerBump   uint8
	AuthorityBump uint8
	Name          string
	Symbol        string
	ImageURI      string
}

// Encode prefixes the Borsh-encoded args with the discriminator of name.
func Encode(name string, args any) ([]byte, error) {
	disc := Discriminator(name)
	buf := new(bytes.Buffer)
	buf.Write(disc[:])
	if err := bin.NewBorshEncoder(buf).Encode(args); err != nil {
		return nil, fmt.Errorf("encode %s args: %w", name, err)
	}
	return buf.Bytes(), nil
}

// Decode resolves the instruction name from data and decodes its args.
// The returned args are one of *InitializeArgs, *UpdateManagerArgs or
// *TokenArgs.
func Decode(data []byte) (string, any, error) {
	if len(data) < DiscriminatorSize {
		return "", nil, fmt.Errorf("%w: %d bytes", common.ErrInvalidInstruction, len(data))
	}

	var disc [DiscriminatorSize]byte
	copy(disc[:], data[:DiscriminatorSize])

	var (
		name string
		args any
	)
	switch disc {
	case InitializeDiscriminator:
		name, args = NameInitialize, &InitializeArgs{}
	case UpdateManagerDiscriminator:
		name, args = NameUpdateManager, &UpdateManagerArgs{}
	case RegisterDiscriminator:
		name, args = NameRegister, &TokenArgs{}
	case UpdateTokenDiscriminator:
		name, args = NameUpdateToken, &TokenArgs{}
	default:
		return "", nil, fmt.Errorf("%w: unknown discriminator %x", common.ErrInvalidInstruction, disc)
	}

	if err := bin.NewBorshDecoder(data[DiscriminatorSize:]).Decode(args); err != nil {
		return "", nil, fmt.Errorf("%w: %s args: %v", common.ErrInvalidInstruction, name, err)
	}
	return name, args, nil
}

// NewInitialize builds an initialize instruction. The authority signs and
// pays for the manager record.
func NewInitialize(programID, manager, authority solana.PublicKey, bump uint8) (Instruction, error) {
	data, err := Encode(NameInitialize, &InitializeArgs{Bump: bump})
	if err != nil {
		return Instruction{}, err
	}
	return Instruction{
		ProgramID: programID,
		Accounts: []AccountMeta{
			{PublicKey: manager, IsWritable: true},
			{PublicKey: authority, IsSigner: true, IsWritable: true},
			{PublicKey: solana.SystemProgramID},
		},
		Data: data,
	}, nil
}

func NewUpdateManager(programID, manager, authority, newManager solana.PublicKey, bump uint8) (Instruction, error) {
	data, err := Encode(NameUpdateManager, &UpdateManagerArgs{Bump: bump, NewManager: newManager})
	if err != nil {
		return Instruction{}, err
	}
	return Instruction{
		ProgramID: programID,
		Accounts: []AccountMeta{
			{PublicKey: manager, IsWritable: true},
			{PublicKey: authority, IsSigner: true},
		},
		Data: data,
	}, nil
}

// NewRegister builds a register instruction for mint. The authority must be
// the current manager and pays for the token record.
func NewRegister(programID, manager, token, authority, mint solana.PublicKey, args TokenArgs) (Instruction, error) {
	data, err := Encode(NameRegister, &args)
	if err != nil {
		return Instruction{}, err
	}
	return Instruction{
		ProgramID: programID,
		Accounts: []AccountMeta{
			{PublicKey: manager},
			{PublicKey: token, IsWritable: true},
			{PublicKey: authority, IsSigner: true, IsWritable: true},
			{PublicKey: mint},
			{PublicKey: solana.SystemProgramID},
			{PublicKey: solana.TokenProgramID},
			{PublicKey: solana.SysVarRentPubkey},
		},
		Data: data,
	}, nil
}

func NewUpdateToken(programID, manager, token, authority, mint solana.PublicKey, args TokenArgs) (Instruction, error) {
	data, err := Encode(NameUpdateToken, &args)
	if err != nil {
		return Instruction{}, err
	}
	return Instruction{
		ProgramID: programID,
		Accounts: []AccountMeta{
			{PublicKey: manager},
			{PublicKey: token, IsWritable: true},
			{PublicKey: authority, IsSigner: true},
			{PublicKey: mint},
		},
		Data: data,
	}, nil
}
