package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/tokenregister/internal/registry/instruction"
	"github.com/dmitrijs2005/tokenregister/internal/runtime/tokenprogram"
	"github.com/gagliardetto/solana-go"
)

// submit signs ixs with signers (the first pays) and prints the id.
func (a *App) submit(ctx context.Context, ixs []instruction.Instruction, signers ...solana.PrivateKey) error {
	tx, err := instruction.NewTransaction(ixs, signers...)
	if err != nil {
		return err
	}

	c, ctx, done, err := a.connect(ctx, "")
	if err != nil {
		return err
	}
	defer done()

	id, err := c.Submit(ctx, tx)
	if err != nil {
		if id != "" {
			return fmt.Errorf("transaction %s: %w", id, err)
		}
		return err
	}

	fmt.Fprintf(a.out, "tx %s\n", id)
	return nil
}

func (a *App) createMint(ctx context.Context, args []string) error {
	fs := newFlagSet("create-mint")
	payerName := fs.String("payer", "", "fee payer key name")
	mintName := fs.String("mint", "", "mint key name")
	authorityRef := fs.String("authority", "", "mint authority key")
	decimals := fs.Uint("decimals", 9, "decimals")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required("payer", *payerName, "mint", *mintName); err != nil {
		return err
	}
	if *decimals > 255 {
		return fmt.Errorf("%w: -decimals must fit in a byte", errUsage)
	}

	ref := *authorityRef
	if ref == "" {
		ref = *payerName
	}
	authority, err := a.resolvePublicKey(ref)
	if err != nil {
		return err
	}

	payer, err := a.unlock(*payerName)
	if err != nil {
		return err
	}
	mint, err := a.unlock(*mintName)
	if err != nil {
		return err
	}

	ix, err := tokenprogram.NewInitializeMint(mint.PublicKey(), payer.PublicKey(), authority, uint8(*decimals))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "mint %s\n", mint.PublicKey())
	return a.submit(ctx, []instruction.Instruction{ix}, payer, mint)
}

func (a *App) initialize(ctx context.Context, args []string) error {
	fs := newFlagSet("init")
	payerName := fs.String("payer", "", "fee payer key name; becomes the manager")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required("payer", *payerName); err != nil {
		return err
	}

	payer, err := a.unlock(*payerName)
	if err != nil {
		return err
	}
	manager, err := a.deriver.Manager()
	if err != nil {
		return err
	}

	ix, err := instruction.NewInitialize(a.deriver.ProgramID(), manager.Address, payer.PublicKey(), manager.Bump)
	if err != nil {
		return err
	}
	return a.submit(ctx, []instruction.Instruction{ix}, payer)
}

func (a *App) updateManager(ctx context.Context, args []string) error {
	fs := newFlagSet("update-manager")
	signerName := fs.String("signer", "", "current manager key name")
	newRef := fs.String("new", "", "new manager key")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required("signer", *signerName, "new", *newRef); err != nil {
		return err
	}

	newManager, err := a.resolvePublicKey(*newRef)
	if err != nil {
		return err
	}
	signer, err := a.unlock(*signerName)
	if err != nil {
		return err
	}
	manager, err := a.deriver.Manager()
	if err != nil {
		return err
	}

	ix, err := instruction.NewUpdateManager(a.deriver.ProgramID(), manager.Address, signer.PublicKey(), newManager, manager.Bump)
	if err != nil {
		return err
	}
	return a.submit(ctx, []instruction.Instruction{ix}, signer)
}

type tokenFlags struct {
	signer, mint, name, symbol, uri *string
}

func parseTokenFlags(cmd string, args []string) (*tokenFlags, error) {
	fs := newFlagSet(cmd)
	f := &tokenFlags{
		signer: fs.String("signer", "", "signing key name"),
		mint:   fs.String("mint", "", "mint public key"),
		name:   fs.String("name", "", "token name"),
		symbol: fs.String("symbol", "", "token symbol"),
		uri:    fs.String("uri", "", "token image URI"),
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := required("signer", *f.signer, "mint", *f.mint); err != nil {
		return nil, err
	}
	return f, nil
}

// tokenInstruction resolves addresses for f and builds the instruction with
// build (NewRegister or NewUpdateToken).
func (a *App) tokenInstruction(f *tokenFlags, signer solana.PublicKey,
	build func(programID, manager, token, authority, mint solana.PublicKey, args instruction.TokenArgs) (instruction.Instruction, error),
) (instruction.Instruction, error) {
	mint, err := a.resolvePublicKey(*f.mint)
	if err != nil {
		return instruction.Instruction{}, err
	}
	manager, err := a.deriver.Manager()
	if err != nil {
		return instruction.Instruction{}, err
	}
	token, err := a.deriver.Token(mint)
	if err != nil {
		return instruction.Instruction{}, err
	}

	return build(a.deriver.ProgramID(), manager.Address, token.Address, signer, mint, instruction.TokenArgs{
		ManagerBump:   manager.Bump,
		AuthorityBump: token.Bump,
		Name:          *f.name,
		Symbol:        *f.symbol,
		ImageURI:      *f.uri,
	})
}

func (a *App) register(ctx context.Context, args []string) error {
	return a.tokenCommand(ctx, "register", args, instruction.NewRegister)
}

func (a *App) updateToken(ctx context.Context, args []string) error {
	return a.tokenCommand(ctx, "update-token", args, instruction.NewUpdateToken)
}

func (a *App) tokenCommand(ctx context.Context, cmd string, args []string,
	build func(programID, manager, token, authority, mint solana.PublicKey, args instruction.TokenArgs) (instruction.Instruction, error),
) error {
	f, err := parseTokenFlags(cmd, args)
	if err != nil {
		return err
	}
	signer, err := a.unlock(*f.signer)
	if err != nil {
		return err
	}
	ix, err := a.tokenInstruction(f, signer.PublicKey(), build)
	if err != nil {
		return err
	}
	return a.submit(ctx, []instruction.Instruction{ix}, signer)
}
