package services

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/dmitrijs2005/tokenregister/internal/common"
	"github.com/dmitrijs2005/tokenregister/internal/logging"
	"github.com/dmitrijs2005/tokenregister/internal/registry/address"
	"github.com/dmitrijs2005/tokenregister/internal/registry/state"
	"github.com/dmitrijs2005/tokenregister/internal/runtime"
	"github.com/dmitrijs2005/tokenregister/internal/server/models"
	"github.com/gagliardetto/solana-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- fakes ----

type fakeAccounts struct {
	byAddr  map[string]*models.Account
	listErr error
}

func (f *fakeAccounts) Get(_ context.Context, addr string) (*models.Account, error) {
	acc, ok := f.byAddr[addr]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return acc, nil
}

func (f *fakeAccounts) ListByOwner(_ context.Context, owner string) ([]*models.Account, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*models.Account
	for _, acc := range f.byAddr {
		if acc.Owner == owner {
			out = append(out, acc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Address < out[j].Address })
	return out, nil
}

type fakeLedger struct {
	accounts  *fakeAccounts
	submitID  string
	submitErr error
	submitted []byte
	txs       map[string]*models.Transaction
}

func (f *fakeLedger) Submit(_ context.Context, raw []byte) (string, error) {
	f.submitted = raw
	return f.submitID, f.submitErr
}

func (f *fakeLedger) Transaction(_ context.Context, id string) (*models.Transaction, error) {
	tx, ok := f.txs[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return tx, nil
}

func (f *fakeLedger) Accounts() runtime.AccountReader { return f.accounts }

// ---- helpers ----

var updatedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newRegistry(t *testing.T) (*RegistryService, *fakeLedger, *address.Deriver) {
	t.Helper()
	deriver := address.NewDeriver(solana.MustPublicKeyFromBase58(common.DefaultProgramID), time.Minute)
	ledger := &fakeLedger{
		accounts: &fakeAccounts{byAddr: map[string]*models.Account{}},
		txs:      map[string]*models.Transaction{},
	}
	return NewRegistryService(ledger, deriver, logging.Nop{}), ledger, deriver
}

func putManager(t *testing.T, l *fakeLedger, d *address.Deriver, authority solana.PublicKey) address.Derived {
	t.Helper()
	derived, err := d.Manager()
	require.NoError(t, err)
	data, err := (&state.ManagerRecord{Authority: authority}).Marshal()
	require.NoError(t, err)
	l.accounts.byAddr[derived.Address.String()] = &models.Account{
		Address: derived.Address.String(),
		Owner:   d.ProgramID().String(),
		Data:    data,
	}
	return derived
}

func putToken(t *testing.T, l *fakeLedger, d *address.Deriver, rec *state.TokenRecord) address.Derived {
	t.Helper()
	derived, err := d.Token(rec.Mint)
	require.NoError(t, err)
	data, err := rec.Marshal()
	require.NoError(t, err)
	l.accounts.byAddr[derived.Address.String()] = &models.Account{
		Address:   derived.Address.String(),
		Owner:     d.ProgramID().String(),
		Data:      data,
		UpdatedAt: updatedAt,
	}
	return derived
}

// ---- tests ----

func TestRegistryService_Submit(t *testing.T) {
	s, l, _ := newRegistry(t)
	l.submitID = "sig"

	id, err := s.Submit(context.Background(), []byte{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, "sig", id)
	assert.Equal(t, []byte{1, 2, 3}, l.submitted)

	l.submitErr = common.ErrorUnauthorized
	_, err = s.Submit(context.Background(), nil)
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestRegistryService_GetManager(t *testing.T) {
	s, l, d := newRegistry(t)

	_, err := s.GetManager(context.Background())
	assert.ErrorIs(t, err, common.ErrorNotFound)

	authority := solana.NewWallet().PublicKey()
	derived := putManager(t, l, d, authority)

	got, err := s.GetManager(context.Background())
	require.NoError(t, err)
	want := &ManagerView{Address: derived.Address, Bump: derived.Bump, Authority: authority}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("manager mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryService_GetManager_ForeignOwner(t *testing.T) {
	s, l, d := newRegistry(t)
	derived := putManager(t, l, d, solana.NewWallet().PublicKey())
	l.accounts.byAddr[derived.Address.String()].Owner = solana.SystemProgramID.String()

	_, err := s.GetManager(context.Background())
	assert.ErrorIs(t, err, common.ErrInvalidAccountData)
}

func TestRegistryService_GetToken(t *testing.T) {
	s, l, d := newRegistry(t)
	rec := &state.TokenRecord{
		Mint:      solana.NewWallet().PublicKey(),
		Authority: solana.NewWallet().PublicKey(),
		Name:      "Test Token 1",
		Symbol:    "TKN",
		ImageURI:  "https://test.com",
	}

	_, err := s.GetToken(context.Background(), rec.Mint)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	derived := putToken(t, l, d, rec)

	got, err := s.GetToken(context.Background(), rec.Mint)
	require.NoError(t, err)
	want := &TokenView{
		Address:   derived.Address,
		Mint:      rec.Mint,
		Authority: rec.Authority,
		Name:      rec.Name,
		Symbol:    rec.Symbol,
		ImageURI:  rec.ImageURI,
		UpdatedAt: updatedAt,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("token mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryService_ListTokens_SkipsManager(t *testing.T) {
	s, l, d := newRegistry(t)
	putManager(t, l, d, solana.NewWallet().PublicKey())

	mints := map[solana.PublicKey]bool{}
	for i := 0; i < 3; i++ {
		mint := solana.NewWallet().PublicKey()
		mints[mint] = true
		putToken(t, l, d, &state.TokenRecord{Mint: mint, Authority: mint, Name: "n", Symbol: "s"})
	}

	tokens, err := s.ListTokens(context.Background())
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	for i, tok := range tokens {
		assert.True(t, mints[tok.Mint])
		if i > 0 {
			assert.Less(t, tokens[i-1].Address.String(), tok.Address.String())
		}
	}
}

func TestRegistryService_ListTokens_Error(t *testing.T) {
	s, l, _ := newRegistry(t)
	l.accounts.listErr = errors.New("db down")

	_, err := s.ListTokens(context.Background())
	assert.EqualError(t, err, "db down")
}

func TestRegistryService_GetTransaction(t *testing.T) {
	s, l, _ := newRegistry(t)
	l.txs["abc"] = &models.Transaction{ID: "abc", Status: models.TxStatusFailed, ErrorCode: 6004}

	tx, err := s.GetTransaction(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, int64(6004), tx.ErrorCode)

	_, err = s.GetTransaction(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestRegistryService_snapshot_WithoutManager(t *testing.T) {
	s, l, d := newRegistry(t)
	mint := solana.NewWallet().PublicKey()
	putToken(t, l, d, &state.TokenRecord{Mint: mint, Authority: mint, Name: "n", Symbol: "s"})

	snap, err := s.snapshot(context.Background(), "ops", updatedAt)
	require.NoError(t, err)
	assert.Nil(t, snap.Manager)
	assert.Len(t, snap.Tokens, 1)
	assert.Equal(t, "ops", snap.TakenBy)
	assert.Equal(t, d.ProgramID(), snap.ProgramID)
}
