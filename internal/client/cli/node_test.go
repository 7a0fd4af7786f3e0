package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/tokenregister/internal/client/client"
	"github.com/dmitrijs2005/tokenregister/internal/client/config"
	"github.com/dmitrijs2005/tokenregister/internal/common"
	"github.com/dmitrijs2005/tokenregister/internal/cryptox"
	"github.com/dmitrijs2005/tokenregister/internal/logging"
	pb "github.com/dmitrijs2005/tokenregister/internal/proto"
	"github.com/dmitrijs2005/tokenregister/internal/registry/address"
	"github.com/dmitrijs2005/tokenregister/internal/registry/instruction"
	"github.com/dmitrijs2005/tokenregister/internal/registry/processor"
	"github.com/dmitrijs2005/tokenregister/internal/runtime"
	"github.com/dmitrijs2005/tokenregister/internal/runtime/tokenprogram"
	"github.com/dmitrijs2005/tokenregister/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/tokenregister/internal/server/services"
	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// localNode serves client.Client from an in-process runtime, so CLI tests
// exercise the real programs without a network.
type localNode struct {
	rt          *runtime.Runtime
	registry    *services.RegistryService
	accessToken string
}

func newLocalNode(t *testing.T, deriver *address.Deriver) *localNode {
	t.Helper()
	ctx := context.Background()

	repos := repomanager.NewSQLiteRepositoryManager()
	db, err := repos.Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, repos.RunMigrations(ctx, db))

	programs := []runtime.Program{processor.New(deriver, logging.Nop{}), tokenprogram.New()}
	rt := runtime.New(db, repos, logging.Nop{}, programs)
	return &localNode{rt: rt, registry: services.NewRegistryService(rt, deriver, logging.Nop{})}
}

func (n *localNode) Close() error                 { return nil }
func (n *localNode) Ping(context.Context) error { return nil }

func (n *localNode) Submit(ctx context.Context, tx *instruction.Transaction) (string, error) {
	raw, err := tx.Marshal()
	if err != nil {
		return "", err
	}
	return n.rt.Execute(ctx, tx, raw)
}

func (n *localNode) GetManager(ctx context.Context) (*pb.Manager, error) {
	m, err := n.registry.GetManager(ctx)
	if err != nil {
		return nil, err
	}
	return &pb.Manager{Address: m.Address.String(), Bump: uint32(m.Bump), Authority: m.Authority.String()}, nil
}

func toProto(t *services.TokenView) *pb.Token {
	return &pb.Token{
		Address: t.Address.String(), Mint: t.Mint.String(), Authority: t.Authority.String(),
		Name: t.Name, Symbol: t.Symbol, ImageUri: t.ImageURI, UpdatedAt: timestamppb.New(t.UpdatedAt),
	}
}

func (n *localNode) GetToken(ctx context.Context, mint string) (*pb.Token, error) {
	pk, err := solana.PublicKeyFromBase58(mint)
	if err != nil {
		return nil, common.ErrInvalidMint
	}
	t, err := n.registry.GetToken(ctx, pk)
	if err != nil {
		return nil, err
	}
	return toProto(t), nil
}

func (n *localNode) ListTokens(ctx context.Context) ([]*pb.Token, error) {
	tokens, err := n.registry.ListTokens(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*pb.Token, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, toProto(t))
	}
	return out, nil
}

func (n *localNode) GetTransaction(ctx context.Context, id string) (*pb.Transaction, error) {
	tx, err := n.rt.Transaction(ctx, id)
	if err != nil {
		return nil, err
	}
	return &pb.Transaction{Id: tx.ID, Status: tx.Status, ErrorCode: tx.ErrorCode, Error: tx.Error}, nil
}

func (n *localNode) Snapshot(context.Context) (*pb.SnapshotResponse, error) {
	if n.accessToken == "" {
		return nil, client.ErrUnauthorized
	}
	return &pb.SnapshotResponse{Key: "snapshots/k.json", Url: "http://signed"}, nil
}

// newTestApp returns an App with a temp keystore, an in-process node and
// a fixed passphrase.
func newTestApp(t *testing.T) (*App, *bytes.Buffer, *localNode) {
	t.Helper()

	origEnv := getenv
	getenv = func(k string) string {
		if k == PassphraseEnv {
			return "test-passphrase"
		}
		return ""
	}
	t.Cleanup(func() { getenv = origEnv })

	cfg := &config.Config{
		ServerEndpointAddr: "local",
		KeystoreDir:        t.TempDir(),
		ProgramID:          common.DefaultProgramID,
		RequestTimeout:     5 * time.Second,
	}
	deriver := address.NewDeriver(solana.MustPublicKeyFromBase58(cfg.ProgramID), time.Minute)
	node := newLocalNode(t, deriver)
	out := &bytes.Buffer{}

	app := &App{
		config:  cfg,
		keys:    cryptox.NewKeystore(cfg.KeystoreDir),
		deriver: deriver,
		out:     out,
		dial: func(_ *config.Config, token string) (client.Client, error) {
			node.accessToken = token
			return node, nil
		},
	}
	return app, out, node
}
