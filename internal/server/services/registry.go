// Package services contains the node's business logic. RegistryService
// submits transactions to the ledger and answers read queries about the
// registry records; SnapshotService exports those records to S3.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/tokenregister/internal/common"
	"github.com/dmitrijs2005/tokenregister/internal/logging"
	"github.com/dmitrijs2005/tokenregister/internal/registry/address"
	"github.com/dmitrijs2005/tokenregister/internal/registry/state"
	"github.com/dmitrijs2005/tokenregister/internal/runtime"
	"github.com/dmitrijs2005/tokenregister/internal/server/models"
	"github.com/gagliardetto/solana-go"
)

// Ledger is the part of the runtime the services use.
type Ledger interface {
	Submit(ctx context.Context, raw []byte) (string, error)
	Transaction(ctx context.Context, id string) (*models.Transaction, error)
	Accounts() runtime.AccountReader
}

// ManagerView is the manager record with its location.
type ManagerView struct {
	Address   solana.PublicKey `json:"address"`
	Bump      uint8            `json:"bump"`
	Authority solana.PublicKey `json:"authority"`
}

// TokenView is a token record with its location.
type TokenView struct {
	Address   solana.PublicKey `json:"address"`
	Mint      solana.PublicKey `json:"mint"`
	Authority solana.PublicKey `json:"authority"`
	Name      string           `json:"name"`
	Symbol    string           `json:"symbol"`
	ImageURI  string           `json:"image_uri"`
	UpdatedAt time.Time        `json:"updated_at"`
}

type RegistryService struct {
	ledger  Ledger
	deriver *address.Deriver
	logger  logging.Logger
}

func NewRegistryService(ledger Ledger, deriver *address.Deriver, logger logging.Logger) *RegistryService {
	return &RegistryService{ledger: ledger, deriver: deriver, logger: logger.With("module", "registry-service")}
}

// Submit executes a signed, Borsh-encoded transaction and returns its id.
func (s *RegistryService) Submit(ctx context.Context, raw []byte) (string, error) {
	return s.ledger.Submit(ctx, raw)
}

func (s *RegistryService) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	return s.ledger.Transaction(ctx, id)
}

// GetManager returns common.ErrorNotFound until the registry is initialized.
func (s *RegistryService) GetManager(ctx context.Context) (*ManagerView, error) {
	derived, err := s.deriver.Manager()
	if err != nil {
		return nil, err
	}
	acc, err := s.ledger.Accounts().Get(ctx, derived.Address.String())
	if err != nil {
		return nil, err
	}
	if acc.Owner != s.deriver.ProgramID().String() {
		return nil, fmt.Errorf("%w: manager owned by %s", common.ErrInvalidAccountData, acc.Owner)
	}
	m, err := state.UnmarshalManager(acc.Data)
	if err != nil {
		return nil, err
	}
	return &ManagerView{Address: derived.Address, Bump: derived.Bump, Authority: m.Authority}, nil
}

// GetToken returns the record of mint or common.ErrorNotFound.
func (s *RegistryService) GetToken(ctx context.Context, mint solana.PublicKey) (*TokenView, error) {
	derived, err := s.deriver.Token(mint)
	if err != nil {
		return nil, err
	}
	acc, err := s.ledger.Accounts().Get(ctx, derived.Address.String())
	if err != nil {
		return nil, err
	}
	if acc.Owner != s.deriver.ProgramID().String() {
		return nil, fmt.Errorf("%w: token owned by %s", common.ErrInvalidAccountData, acc.Owner)
	}
	return tokenView(acc)
}

// ListTokens returns every token record ordered by record address.
func (s *RegistryService) ListTokens(ctx context.Context) ([]*TokenView, error) {
	accs, err := s.ledger.Accounts().ListByOwner(ctx, s.deriver.ProgramID().String())
	if err != nil {
		return nil, err
	}

	tokens := make([]*TokenView, 0, len(accs))
	for _, acc := range accs {
		if !state.IsToken(acc.Data) {
			continue
		}
		v, err := tokenView(acc)
		if err != nil {
			s.logger.Warn(ctx, "skipping undecodable token record", "address", acc.Address, "error", err.Error())
			continue
		}
		tokens = append(tokens, v)
	}
	return tokens, nil
}

// registrySnapshot is everything the registry holds at one moment.
type registrySnapshot struct {
	ProgramID solana.PublicKey `json:"program_id"`
	TakenAt   time.Time        `json:"taken_at"`
	TakenBy   string           `json:"taken_by"`
	Manager   *ManagerView     `json:"manager"`
	Tokens    []*TokenView     `json:"tokens"`
}

func (s *RegistryService) snapshot(ctx context.Context, operator string, now time.Time) (*registrySnapshot, error) {
	manager, err := s.GetManager(ctx)
	if err != nil && !errors.Is(err, common.ErrorNotFound) {
		return nil, err
	}
	tokens, err := s.ListTokens(ctx)
	if err != nil {
		return nil, err
	}
	return &registrySnapshot{
		ProgramID: s.deriver.ProgramID(),
		TakenAt:   now.UTC(),
		TakenBy:   operator,
		Manager:   manager,
		Tokens:    tokens,
	}, nil
}

func tokenView(acc *models.Account) (*TokenView, error) {
	addr, err := solana.PublicKeyFromBase58(acc.Address)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidAccountData, err)
	}
	t, err := state.UnmarshalToken(acc.Data)
	if err != nil {
		return nil, err
	}
	return &TokenView{
		Address:   addr,
		Mint:      t.Mint,
		Authority: t.Authority,
		Name:      t.Name,
		Symbol:    t.Symbol,
		ImageURI:  t.ImageURI,
		UpdatedAt: acc.UpdatedAt,
	}, nil
}
