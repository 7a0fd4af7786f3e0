// Package processor is the registry program: it dispatches initialize,
// update_manager, register and update_token against the ledger.
//
// Every handler checks in the same order: declared addresses against the
// derived ones, then existence of the records involved, then authority.
// Nothing is written until all checks pass.
package processor

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tokenregister/internal/common"
	"github.com/dmitrijs2005/tokenregister/internal/logging"
	"github.com/dmitrijs2005/tokenregister/internal/registry/address"
	"github.com/dmitrijs2005/tokenregister/internal/registry/authority"
	"github.com/dmitrijs2005/tokenregister/internal/registry/instruction"
	"github.com/dmitrijs2005/tokenregister/internal/registry/state"
	"github.com/dmitrijs2005/tokenregister/internal/runtime"
	"github.com/dmitrijs2005/tokenregister/internal/runtime/tokenprogram"
	"github.com/gagliardetto/solana-go"
)

type Program struct {
	deriver *address.Deriver
	logger  logging.Logger
}

func New(deriver *address.Deriver, logger logging.Logger) *Program {
	if logger == nil {
		logger = logging.Nop{}
	}
	return &Program{deriver: deriver, logger: logger.With("module", "registry")}
}

func (p *Program) ID() solana.PublicKey {
	return p.deriver.ProgramID()
}

func (p *Program) Name(data []byte) string {
	name, _, err := instruction.Decode(data)
	if err != nil {
		return "unknown"
	}
	return name
}

func (p *Program) Process(ctx context.Context, ic *runtime.InvokeContext, ix *instruction.Instruction) error {
	name, args, err := instruction.Decode(ix.Data)
	if err != nil {
		return err
	}

	switch a := args.(type) {
	case *instruction.InitializeArgs:
		return p.initialize(ctx, ic, ix.Accounts, a)
	case *instruction.UpdateManagerArgs:
		return p.updateManager(ctx, ic, ix.Accounts, a)
	case *instruction.TokenArgs:
		if name == instruction.NameRegister {
			return p.register(ctx, ic, ix.Accounts, a)
		}
		return p.updateToken(ctx, ic, ix.Accounts, a)
	default:
		return fmt.Errorf("%w: %s", common.ErrInvalidInstruction, name)
	}
}

func (p *Program) initialize(ctx context.Context, ic *runtime.InvokeContext, accounts []instruction.AccountMeta, args *instruction.InitializeArgs) error {
	if err := requireAccounts(instruction.NameInitialize, accounts, 3); err != nil {
		return err
	}
	managerKey, authorityKey := accounts[0].PublicKey, accounts[1].PublicKey
	if err := requireProgram(accounts[2].PublicKey, solana.SystemProgramID); err != nil {
		return err
	}

	if err := p.deriver.VerifyCanonical(address.TagManager, nil, args.Bump, managerKey); err != nil {
		return err
	}

	exists, err := ic.Exists(ctx, managerKey)
	if err != nil {
		return err
	}
	if exists {
		return common.ErrAlreadyInitialized
	}

	if !ic.Signers.Has(authorityKey) {
		return fmt.Errorf("%w: %s", common.ErrMissingSignature, authorityKey)
	}

	data, err := (&state.ManagerRecord{Authority: authorityKey}).Marshal()
	if err != nil {
		return err
	}
	if err := ic.Create(ctx, managerKey, authorityKey, state.ManagerSpace, data); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return common.ErrAlreadyInitialized
		}
		return err
	}

	p.logger.Info(ctx, "manager initialized", "manager", managerKey.String(), "authority", authorityKey.String())
	return nil
}

func (p *Program) updateManager(ctx context.Context, ic *runtime.InvokeContext, accounts []instruction.AccountMeta, args *instruction.UpdateManagerArgs) error {
	if err := requireAccounts(instruction.NameUpdateManager, accounts, 2); err != nil {
		return err
	}
	managerKey := accounts[0].PublicKey

	if err := p.deriver.Verify(address.TagManager, nil, args.Bump, managerKey); err != nil {
		return err
	}

	acc, manager, err := p.loadManager(ctx, ic, managerKey, true)
	if err != nil {
		return err
	}

	signer, err := declaredSigner(ic, accounts[1].PublicKey)
	if err != nil {
		return err
	}
	if err := authority.Require(manager.Authority, signer); err != nil {
		return err
	}

	previous := manager.Authority
	manager.Authority = args.NewManager
	data, err := manager.Marshal()
	if err != nil {
		return err
	}
	if err := ic.Store(ctx, acc, data); err != nil {
		return err
	}

	p.logger.Info(ctx, "manager updated", "previous", previous.String(), "authority", args.NewManager.String())
	return nil
}

func (p *Program) register(ctx context.Context, ic *runtime.InvokeContext, accounts []instruction.AccountMeta, args *instruction.TokenArgs) error {
	if err := requireAccounts(instruction.NameRegister, accounts, 7); err != nil {
		return err
	}
	managerKey, tokenKey, signerKey, mintKey := accounts[0].PublicKey, accounts[1].PublicKey, accounts[2].PublicKey, accounts[3].PublicKey
	for i, want := range []solana.PublicKey{solana.SystemProgramID, solana.TokenProgramID, solana.SysVarRentPubkey} {
		if err := requireProgram(accounts[4+i].PublicKey, want); err != nil {
			return err
		}
	}

	if err := p.deriver.Verify(address.TagManager, nil, args.ManagerBump, managerKey); err != nil {
		return err
	}
	if err := p.deriver.VerifyCanonical(address.TagToken, mintKey.Bytes(), args.AuthorityBump, tokenKey); err != nil {
		return err
	}

	_, manager, err := p.loadManager(ctx, ic, managerKey, false)
	if err != nil {
		return err
	}
	exists, err := ic.Exists(ctx, tokenKey)
	if err != nil {
		return err
	}
	if exists {
		return common.ErrAlreadyRegistered
	}

	signer, err := declaredSigner(ic, signerKey)
	if err != nil {
		return err
	}
	if err := authority.Require(manager.Authority, signer); err != nil {
		return err
	}

	if _, err := loadMint(ctx, ic, mintKey); err != nil {
		return err
	}

	record := &state.TokenRecord{
		Mint:      mintKey,
		Authority: signerKey,
		Name:      args.Name,
		Symbol:    args.Symbol,
		ImageURI:  args.ImageURI,
	}
	data, err := record.Marshal()
	if err != nil {
		return err
	}
	if err := ic.Create(ctx, tokenKey, signerKey, state.TokenSpace, data); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return common.ErrAlreadyRegistered
		}
		return err
	}

	p.logger.Info(ctx, "token registered", "mint", mintKey.String(), "token", tokenKey.String(), "symbol", args.Symbol)
	return nil
}

func (p *Program) updateToken(ctx context.Context, ic *runtime.InvokeContext, accounts []instruction.AccountMeta, args *instruction.TokenArgs) error {
	if err := requireAccounts(instruction.NameUpdateToken, accounts, 4); err != nil {
		return err
	}
	managerKey, tokenKey, signerKey, mintKey := accounts[0].PublicKey, accounts[1].PublicKey, accounts[2].PublicKey, accounts[3].PublicKey

	if err := p.deriver.Verify(address.TagManager, nil, args.ManagerBump, managerKey); err != nil {
		return err
	}
	if err := p.deriver.Verify(address.TagToken, mintKey.Bytes(), args.AuthorityBump, tokenKey); err != nil {
		return err
	}

	// The manager must exist but has no say over token metadata.
	if _, _, err := p.loadManager(ctx, ic, managerKey, false); err != nil {
		return err
	}
	acc, record, err := p.loadToken(ctx, ic, tokenKey)
	if err != nil {
		return err
	}

	signer, err := declaredSigner(ic, signerKey)
	if err != nil {
		return err
	}
	candidates := []solana.PublicKey{record.Authority}
	mint, err := loadMint(ctx, ic, mintKey)
	switch {
	case err == nil:
		if key, ok := mint.Authority(); ok {
			candidates = append(candidates, key)
		}
	case !errors.Is(err, common.ErrInvalidMint):
		return err
	}
	if err := authority.RequireAny(signer, candidates...); err != nil {
		return err
	}

	record.Name, record.Symbol, record.ImageURI = args.Name, args.Symbol, args.ImageURI
	data, err := record.Marshal()
	if err != nil {
		return err
	}
	if err := ic.Store(ctx, acc, data); err != nil {
		return err
	}

	p.logger.Info(ctx, "token updated", "mint", mintKey.String(), "by", signerKey.String(), "symbol", args.Symbol)
	return nil
}

func (p *Program) loadManager(ctx context.Context, ic *runtime.InvokeContext, key solana.PublicKey, forUpdate bool) (*runtime.Account, *state.ManagerRecord, error) {
	load := ic.Load
	if forUpdate {
		load = ic.LoadForUpdate
	}
	acc, err := load(ctx, key)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil, fmt.Errorf("%w: manager %s", common.ErrorNotFound, key)
		}
		return nil, nil, err
	}
	if !acc.Owner.Equals(p.ID()) {
		return nil, nil, fmt.Errorf("%w: manager owned by %s", common.ErrInvalidAccountData, acc.Owner)
	}
	manager, err := state.UnmarshalManager(acc.Data)
	if err != nil {
		return nil, nil, err
	}
	return acc, manager, nil
}

func (p *Program) loadToken(ctx context.Context, ic *runtime.InvokeContext, key solana.PublicKey) (*runtime.Account, *state.TokenRecord, error) {
	acc, err := ic.LoadForUpdate(ctx, key)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil, fmt.Errorf("%w: token %s", common.ErrorNotFound, key)
		}
		return nil, nil, err
	}
	if !acc.Owner.Equals(p.ID()) {
		return nil, nil, fmt.Errorf("%w: token owned by %s", common.ErrInvalidAccountData, acc.Owner)
	}
	record, err := state.UnmarshalToken(acc.Data)
	if err != nil {
		return nil, nil, err
	}
	return acc, record, nil
}

func loadMint(ctx context.Context, ic *runtime.InvokeContext, key solana.PublicKey) (*tokenprogram.Mint, error) {
	acc, err := ic.Load(ctx, key)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, fmt.Errorf("%w: %s does not exist", common.ErrInvalidMint, key)
		}
		return nil, err
	}
	if !acc.Owner.Equals(solana.TokenProgramID) {
		return nil, fmt.Errorf("%w: %s is not owned by the token program", common.ErrInvalidMint, key)
	}
	mint, err := tokenprogram.UnmarshalMint(acc.Data)
	if err != nil {
		return nil, err
	}
	if !mint.IsInitialized {
		return nil, fmt.Errorf("%w: %s is not initialized", common.ErrInvalidMint, key)
	}
	return mint, nil
}

// declaredSigner narrows the call's signers to the authority account the
// instruction names, which must itself have signed. An unsigned authority
// is reported as both unauthorized and a missing signature.
func declaredSigner(ic *runtime.InvokeContext, key solana.PublicKey) (instruction.SignerSet, error) {
	if !ic.Signers.Has(key) {
		return nil, fmt.Errorf("%w: %w: %s", common.ErrorUnauthorized, common.ErrMissingSignature, key)
	}
	return instruction.SignerSet{key: {}}, nil
}

func requireAccounts(name string, accounts []instruction.AccountMeta, n int) error {
	if len(accounts) < n {
		return fmt.Errorf("%w: %s needs %d, got %d", common.ErrNotEnoughAccounts, name, n, len(accounts))
	}
	return nil
}

func requireProgram(got, want solana.PublicKey) error {
	if !got.Equals(want) {
		return fmt.Errorf("%w: expected %s, got %s", common.ErrInvalidProgramAccount, want, got)
	}
	return nil
}
