// Package tokenprogram stands in for the fungible-token program: it only
// creates mints, laid out exactly like SPL token mints so other programs can
// read them.
package tokenprogram

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tokenregister/internal/common"
	"github.com/dmitrijs2005/tokenregister/internal/registry/instruction"
	"github.com/dmitrijs2005/tokenregister/internal/runtime"
	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// MintSize is the length of an SPL mint account.
const MintSize = 82

// InitializeMint is instruction 0 of the SPL token program.
const InitializeMint uint8 = 0

// Mint is the SPL mint layout. Options are encoded as a u32 tag followed by
// the key, which is what the Option flags model.
type Mint struct {
	MintAuthorityOption   uint32
	MintAuthority         solana.PublicKey
	Supply                uint64
	Decimals              uint8
	IsInitialized         bool
	FreezeAuthorityOption uint32
	FreezeAuthority       solana.PublicKey
}

// Authority returns the mint authority if one is set.
func (m *Mint) Authority() (solana.PublicKey, bool) {
	return m.MintAuthority, m.MintAuthorityOption == 1
}

func (m *Mint) Marshal() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := bin.NewBinEncoder(buf).Encode(m); err != nil {
		return nil, err
	}
	if buf.Len() != MintSize {
		return nil, fmt.Errorf("mint encodes to %d bytes, want %d", buf.Len(), MintSize)
	}
	return buf.Bytes(), nil
}

// UnmarshalMint decodes an SPL mint account.
func UnmarshalMint(data []byte) (*Mint, error) {
	if len(data) != MintSize {
		return nil, fmt.Errorf("%w: mint is %d bytes", common.ErrInvalidMint, len(data))
	}
	m := &Mint{}
	if err := bin.NewBinDecoder(data).Decode(m); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidMint, err)
	}
	return m, nil
}

// InitializeMintArgs follows the instruction tag. Mints created here never
// carry a freeze authority.
type InitializeMintArgs struct {
	Decimals      uint8
	MintAuthority solana.PublicKey
}

// NewInitializeMint builds an instruction creating mint. Both payer and the
// mint key sign.
func NewInitializeMint(mint, payer, mintAuthority solana.PublicKey, decimals uint8) (instruction.Instruction, error) {
	buf := new(bytes.Buffer)
	buf.WriteByte(InitializeMint)
	if err := bin.NewBinEncoder(buf).Encode(&InitializeMintArgs{Decimals: decimals, MintAuthority: mintAuthority}); err != nil {
		return instruction.Instruction{}, err
	}
	return instruction.Instruction{
		ProgramID: solana.TokenProgramID,
		Accounts: []instruction.AccountMeta{
			{PublicKey: mint, IsSigner: true, IsWritable: true},
			{PublicKey: payer, IsSigner: true, IsWritable: true},
		},
		Data: buf.Bytes(),
	}, nil
}

// Program implements runtime.Program for the token program id.
type Program struct{}

func New() *Program {
	return &Program{}
}

func (p *Program) ID() solana.PublicKey {
	return solana.TokenProgramID
}

func (p *Program) Name(data []byte) string {
	if len(data) > 0 && data[0] == InitializeMint {
		return "initialize_mint"
	}
	return "unknown"
}

func (p *Program) Process(ctx context.Context, ic *runtime.InvokeContext, ix *instruction.Instruction) error {
	if len(ix.Data) == 0 || ix.Data[0] != InitializeMint {
		return fmt.Errorf("%w: token program supports initialize_mint only", common.ErrInvalidInstruction)
	}
	if len(ix.Accounts) < 2 {
		return fmt.Errorf("%w: initialize_mint needs 2, got %d", common.ErrNotEnoughAccounts, len(ix.Accounts))
	}

	args := &InitializeMintArgs{}
	if err := bin.NewBinDecoder(ix.Data[1:]).Decode(args); err != nil {
		return fmt.Errorf("%w: initialize_mint args: %v", common.ErrInvalidInstruction, err)
	}

	mintKey := ix.Accounts[0].PublicKey
	payer := ix.Accounts[1].PublicKey
	if !ic.Signers.Has(mintKey) {
		return fmt.Errorf("%w: mint %s", common.ErrMissingSignature, mintKey)
	}

	mint := &Mint{
		MintAuthorityOption: 1,
		MintAuthority:       args.MintAuthority,
		Decimals:            args.Decimals,
		IsInitialized:       true,
	}
	data, err := mint.Marshal()
	if err != nil {
		return err
	}

	if err := ic.Create(ctx, mintKey, payer, MintSize, data); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return fmt.Errorf("%w: %s", common.ErrAccountAlreadyInUse, mintKey)
		}
		return err
	}

	ic.Logger.Debug(ctx, "mint initialized", "mint", mintKey.String(), "authority", args.MintAuthority.String(), "decimals", args.Decimals)
	return nil
}
