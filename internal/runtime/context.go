package runtime

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/tokenregister/internal/common"
	"github.com/dmitrijs2005/tokenregister/internal/logging"
	"github.com/dmitrijs2005/tokenregister/internal/registry/instruction"
	"github.com/dmitrijs2005/tokenregister/internal/registry/state"
	"github.com/dmitrijs2005/tokenregister/internal/server/models"
	"github.com/dmitrijs2005/tokenregister/internal/server/repositories/accounts"
	"github.com/gagliardetto/solana-go"
)

// Account is the program view of a stored account.
type Account struct {
	Address  solana.PublicKey
	Owner    solana.PublicKey
	Lamports uint64
	Space    int
	Data     []byte
}

// InvokeContext is what a program sees while processing one instruction.
// Account access goes through the transaction that wraps the whole call.
type InvokeContext struct {
	ProgramID solana.PublicKey
	Signers   instruction.SignerSet
	FeePayer  solana.PublicKey
	Now       time.Time
	Logger    logging.Logger

	accounts accounts.Repository
}

// NewInvokeContext binds a context to an account repository. The runtime
// builds one per transaction; tests build their own.
func NewInvokeContext(repo accounts.Repository, signers instruction.SignerSet, feePayer solana.PublicKey, now time.Time, logger logging.Logger) *InvokeContext {
	if logger == nil {
		logger = logging.Nop{}
	}
	return &InvokeContext{Signers: signers, FeePayer: feePayer, Now: now, Logger: logger, accounts: repo}
}

// Load returns the account at addr or common.ErrorNotFound.
func (ic *InvokeContext) Load(ctx context.Context, addr solana.PublicKey) (*Account, error) {
	m, err := ic.accounts.Get(ctx, addr.String())
	if err != nil {
		return nil, err
	}
	return fromModel(m)
}

// LoadForUpdate is Load plus a row lock held until the transaction ends.
func (ic *InvokeContext) LoadForUpdate(ctx context.Context, addr solana.PublicKey) (*Account, error) {
	m, err := ic.accounts.GetForUpdate(ctx, addr.String())
	if err != nil {
		return nil, err
	}
	return fromModel(m)
}

// Exists reports whether an account is stored at addr.
func (ic *InvokeContext) Exists(ctx context.Context, addr solana.PublicKey) (bool, error) {
	_, err := ic.accounts.Get(ctx, addr.String())
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, common.ErrorNotFound):
		return false, nil
	default:
		return false, err
	}
}

// Create allocates an account owned by the running program, funded by payer
// with the rent-exempt minimum for space. It returns an error wrapping
// common.ErrorAlreadyExists if the address is taken.
func (ic *InvokeContext) Create(ctx context.Context, addr, payer solana.PublicKey, space int, data []byte) error {
	if len(data) > space {
		return fmt.Errorf("%w: %d bytes, %d allocated", common.ErrMetadataTooLarge, len(data), space)
	}
	if !ic.Signers.Has(payer) {
		return fmt.Errorf("%w: payer %s", common.ErrMissingSignature, payer)
	}

	err := ic.accounts.Create(ctx, &models.Account{
		Address:   addr.String(),
		Owner:     ic.ProgramID.String(),
		Lamports:  int64(state.RentExemptMinimum(space)),
		Space:     space,
		Data:      data,
		Payer:     payer.String(),
		CreatedAt: ic.Now,
		UpdatedAt: ic.Now,
	})
	if err != nil {
		return fmt.Errorf("create account %s: %w", addr, err)
	}
	return nil
}

// Store overwrites the data of an account owned by the running program.
func (ic *InvokeContext) Store(ctx context.Context, acc *Account, data []byte) error {
	if !acc.Owner.Equals(ic.ProgramID) {
		return fmt.Errorf("%w: %s is owned by %s", common.ErrInvalidAccountData, acc.Address, acc.Owner)
	}
	if len(data) > acc.Space {
		return fmt.Errorf("%w: %d bytes, %d allocated", common.ErrMetadataTooLarge, len(data), acc.Space)
	}
	if err := ic.accounts.UpdateData(ctx, acc.Address.String(), data, ic.Now); err != nil {
		return fmt.Errorf("store account %s: %w", acc.Address, err)
	}
	acc.Data = data
	return nil
}

func fromModel(m *models.Account) (*Account, error) {
	addr, err := solana.PublicKeyFromBase58(m.Address)
	if err != nil {
		return nil, fmt.Errorf("%w: address %q: %v", common.ErrInvalidAccountData, m.Address, err)
	}
	owner, err := solana.PublicKeyFromBase58(m.Owner)
	if err != nil {
		return nil, fmt.Errorf("%w: owner %q: %v", common.ErrInvalidAccountData, m.Owner, err)
	}
	return &Account{
		Address:  addr,
		Owner:    owner,
		Lamports: uint64(m.Lamports),
		Space:    m.Space,
		Data:     m.Data,
	}, nil
}
