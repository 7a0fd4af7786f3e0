package processor

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/tokenregister/internal/common"
	"github.com/dmitrijs2005/tokenregister/internal/logging"
	"github.com/dmitrijs2005/tokenregister/internal/registry/address"
	"github.com/dmitrijs2005/tokenregister/internal/registry/instruction"
	"github.com/dmitrijs2005/tokenregister/internal/registry/state"
	"github.com/dmitrijs2005/tokenregister/internal/runtime"
	"github.com/dmitrijs2005/tokenregister/internal/runtime/tokenprogram"
	"github.com/dmitrijs2005/tokenregister/internal/server/repositories/repomanager"
	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"
)

var programID = solana.MustPublicKeyFromBase58(common.DefaultProgramID)

// ledger is a node-less harness: a runtime over an in-memory SQLite store
// with the registry and token programs loaded.
type ledger struct {
	t       testing.TB
	rt      *runtime.Runtime
	deriver *address.Deriver
}

func newLedger(t testing.TB) *ledger {
	t.Helper()
	ctx := context.Background()

	repos := repomanager.NewSQLiteRepositoryManager()
	db, err := repos.Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, repos.RunMigrations(ctx, db))

	deriver := address.NewDeriver(programID, time.Minute)
	programs := []runtime.Program{New(deriver, logging.Nop{}), tokenprogram.New()}
	return &ledger{
		t:       t,
		rt:      runtime.New(db, repos, logging.Nop{}, programs),
		deriver: deriver,
	}
}

func newSigner(t testing.TB) solana.PrivateKey {
	t.Helper()
	k, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)
	return k
}

func (l *ledger) submit(signers []solana.PrivateKey, ixs ...instruction.Instruction) error {
	l.t.Helper()
	tx, err := instruction.NewTransaction(ixs, signers...)
	require.NoError(l.t, err)
	raw, err := tx.Marshal()
	require.NoError(l.t, err)
	_, err = l.rt.Submit(context.Background(), raw)
	return err
}

func (l *ledger) manager() address.Derived {
	l.t.Helper()
	d, err := l.deriver.Manager()
	require.NoError(l.t, err)
	return d
}

func (l *ledger) token(mint solana.PublicKey) address.Derived {
	l.t.Helper()
	d, err := l.deriver.Token(mint)
	require.NoError(l.t, err)
	return d
}

func (l *ledger) mintIx(mint, payer, authority solana.PublicKey) instruction.Instruction {
	l.t.Helper()
	ix, err := tokenprogram.NewInitializeMint(mint, payer, authority, 9)
	require.NoError(l.t, err)
	return ix
}

// createMint creates a mint controlled by authority and returns its key.
func (l *ledger) createMint(payer solana.PrivateKey, authority solana.PublicKey) solana.PublicKey {
	l.t.Helper()
	mint := newSigner(l.t)
	require.NoError(l.t, l.submit([]solana.PrivateKey{payer, mint}, l.mintIx(mint.PublicKey(), payer.PublicKey(), authority)))
	return mint.PublicKey()
}

func (l *ledger) initializeIx(signer solana.PublicKey) instruction.Instruction {
	l.t.Helper()
	m := l.manager()
	ix, err := instruction.NewInitialize(programID, m.Address, signer, m.Bump)
	require.NoError(l.t, err)
	return ix
}

func (l *ledger) initialize(signer solana.PrivateKey) error {
	return l.submit([]solana.PrivateKey{signer}, l.initializeIx(signer.PublicKey()))
}

func (l *ledger) updateManager(signer solana.PrivateKey, newManager solana.PublicKey) error {
	l.t.Helper()
	m := l.manager()
	ix, err := instruction.NewUpdateManager(programID, m.Address, signer.PublicKey(), newManager, m.Bump)
	require.NoError(l.t, err)
	return l.submit([]solana.PrivateKey{signer}, ix)
}

func (l *ledger) tokenArgs(mint solana.PublicKey, name, symbol, uri string) instruction.TokenArgs {
	return instruction.TokenArgs{
		ManagerBump:   l.manager().Bump,
		AuthorityBump: l.token(mint).Bump,
		Name:          name,
		Symbol:        symbol,
		ImageURI:      uri,
	}
}

func (l *ledger) registerIx(signer, mint solana.PublicKey, args instruction.TokenArgs) instruction.Instruction {
	l.t.Helper()
	ix, err := instruction.NewRegister(programID, l.manager().Address, l.token(mint).Address, signer, mint, args)
	require.NoError(l.t, err)
	return ix
}

func (l *ledger) register(signer solana.PrivateKey, mint solana.PublicKey, name, symbol, uri string) error {
	return l.submit([]solana.PrivateKey{signer}, l.registerIx(signer.PublicKey(), mint, l.tokenArgs(mint, name, symbol, uri)))
}

func (l *ledger) updateToken(signer solana.PrivateKey, mint solana.PublicKey, name, symbol, uri string) error {
	l.t.Helper()
	ix, err := instruction.NewUpdateToken(programID, l.manager().Address, l.token(mint).Address, signer.PublicKey(), mint, l.tokenArgs(mint, name, symbol, uri))
	require.NoError(l.t, err)
	return l.submit([]solana.PrivateKey{signer}, ix)
}

func (l *ledger) readManager() *state.ManagerRecord {
	l.t.Helper()
	acc, err := l.rt.Accounts().Get(context.Background(), l.manager().Address.String())
	require.NoError(l.t, err)
	require.Equal(l.t, programID.String(), acc.Owner)
	m, err := state.UnmarshalManager(acc.Data)
	require.NoError(l.t, err)
	return m
}

func (l *ledger) readToken(mint solana.PublicKey) *state.TokenRecord {
	l.t.Helper()
	acc, err := l.rt.Accounts().Get(context.Background(), l.token(mint).Address.String())
	require.NoError(l.t, err)
	tr, err := state.UnmarshalToken(acc.Data)
	require.NoError(l.t, err)
	return tr
}
