package client

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/tokenregister/internal/common"
	pb "github.com/dmitrijs2005/tokenregister/internal/proto"
	"github.com/dmitrijs2005/tokenregister/internal/registry/instruction"
	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

/*************
 * Fake registry client
 *************/

type fakeAPI struct {
	lastSubmit *pb.SubmitRequest
	lastToken  *pb.GetTokenRequest
	lastTx     *pb.GetTransactionRequest

	pingResp *pb.PingResponse
	err      error

	manager *pb.Manager
	token   *pb.Token
	tokens  []*pb.Token
	tx      *pb.Transaction
	snap    *pb.SnapshotResponse
}

func (f *fakeAPI) Submit(_ context.Context, in *pb.SubmitRequest, _ ...grpc.CallOption) (*pb.SubmitResponse, error) {
	f.lastSubmit = in
	if f.err != nil {
		return nil, f.err
	}
	return &pb.SubmitResponse{Id: "sig"}, nil
}
func (f *fakeAPI) GetManager(context.Context, *pb.GetManagerRequest, ...grpc.CallOption) (*pb.Manager, error) {
	return f.manager, f.err
}
func (f *fakeAPI) GetToken(_ context.Context, in *pb.GetTokenRequest, _ ...grpc.CallOption) (*pb.Token, error) {
	f.lastToken = in
	return f.token, f.err
}
func (f *fakeAPI) ListTokens(context.Context, *pb.ListTokensRequest, ...grpc.CallOption) (*pb.ListTokensResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &pb.ListTokensResponse{Tokens: f.tokens}, nil
}
func (f *fakeAPI) GetTransaction(_ context.Context, in *pb.GetTransactionRequest, _ ...grpc.CallOption) (*pb.Transaction, error) {
	f.lastTx = in
	return f.tx, f.err
}
func (f *fakeAPI) Snapshot(context.Context, *pb.SnapshotRequest, ...grpc.CallOption) (*pb.SnapshotResponse, error) {
	return f.snap, f.err
}
func (f *fakeAPI) Ping(context.Context, *pb.PingRequest, ...grpc.CallOption) (*pb.PingResponse, error) {
	return f.pingResp, f.err
}

func newClient(f *fakeAPI) *GRPCClient {
	return &GRPCClient{client: f}
}

func signedTx(t *testing.T) *instruction.Transaction {
	t.Helper()
	payer := solana.NewWallet().PrivateKey
	ix := instruction.Instruction{
		ProgramID: solana.SystemProgramID,
		Accounts:  []instruction.AccountMeta{{PublicKey: payer.PublicKey(), IsSigner: true, IsWritable: true}},
		Data:      []byte{1},
	}
	tx, err := instruction.NewTransaction([]instruction.Instruction{ix}, payer)
	require.NoError(t, err)
	return tx
}

/*************
 * Tests
 *************/

func TestPing(t *testing.T) {
	c := newClient(&fakeAPI{pingResp: &pb.PingResponse{Status: "OK"}})
	require.NoError(t, c.Ping(context.Background()))

	c = newClient(&fakeAPI{pingResp: &pb.PingResponse{Status: "DEGRADED"}})
	assert.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)

	c = newClient(&fakeAPI{err: status.Error(codes.Unavailable, "down")})
	assert.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)
}

func TestSubmit_SendsEncodedTransaction(t *testing.T) {
	f := &fakeAPI{}
	c := newClient(f)
	tx := signedTx(t)

	id, err := c.Submit(context.Background(), tx)
	require.NoError(t, err)
	assert.Equal(t, "sig", id)

	decoded, err := instruction.Unmarshal(f.lastSubmit.Transaction)
	require.NoError(t, err)
	assert.Equal(t, tx.ID(), decoded.ID())
}

func TestSubmit_MapsProgramErrors(t *testing.T) {
	f := &fakeAPI{err: status.Error(codes.PermissionDenied, common.ErrorUnauthorized.Error())}
	c := newClient(f)
	tx := signedTx(t)

	id, err := c.Submit(context.Background(), tx)
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
	assert.Equal(t, tx.ID(), id)
}

func TestReads(t *testing.T) {
	f := &fakeAPI{
		manager: &pb.Manager{Authority: "A"},
		token:   &pb.Token{Name: "Test Token 1"},
		tokens:  []*pb.Token{{Name: "a"}, {Name: "b"}},
		tx:      &pb.Transaction{Id: "x", Status: "succeeded"},
		snap:    &pb.SnapshotResponse{Key: "k", Url: "u"},
	}
	c := newClient(f)
	ctx := context.Background()

	m, err := c.GetManager(ctx)
	require.NoError(t, err)
	assert.Equal(t, "A", m.Authority)

	tok, err := c.GetToken(ctx, "MINT")
	require.NoError(t, err)
	assert.Equal(t, "Test Token 1", tok.Name)
	assert.Equal(t, "MINT", f.lastToken.Mint)

	list, err := c.ListTokens(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	tx, err := c.GetTransaction(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, "succeeded", tx.Status)
	assert.Equal(t, "x", f.lastTx.GetId())

	snap, err := c.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u", snap.GetUrl())
}

func TestReads_NotFound(t *testing.T) {
	c := newClient(&fakeAPI{err: status.Error(codes.NotFound, common.ErrorNotFound.Error())})

	_, err := c.GetManager(context.Background())
	assert.ErrorIs(t, err, common.ErrorNotFound)
	_, err = c.GetToken(context.Background(), "m")
	assert.ErrorIs(t, err, common.ErrorNotFound)
	_, err = c.ListTokens(context.Background())
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestMapError(t *testing.T) {
	c := &GRPCClient{}

	assert.NoError(t, c.mapError(nil))
	assert.ErrorIs(t, c.mapError(status.Error(codes.AlreadyExists, common.ErrAlreadyRegistered.Error())), common.ErrAlreadyRegistered)
	assert.ErrorIs(t, c.mapError(status.Error(codes.Unauthenticated, "missing token")), ErrUnauthorized)
	assert.ErrorIs(t, c.mapError(status.Error(codes.DeadlineExceeded, "slow")), ErrUnavailable)

	err := c.mapError(status.Error(codes.Internal, "internal error"))
	assert.Contains(t, err.Error(), "rpc error")

	plain := errors.New("boom")
	assert.ErrorIs(t, c.mapError(plain), plain)
}

func TestAccessTokenInterceptor(t *testing.T) {
	c := &GRPCClient{accessToken: "tok"}

	var got []string
	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, _ := metadata.FromOutgoingContext(ctx)
		got = md.Get(common.AccessTokenHeaderName)
		return nil
	}

	ctx := metadata.AppendToOutgoingContext(context.Background(), common.AccessTokenHeaderName, "stale")
	require.NoError(t, c.accessTokenInterceptor(ctx, pb.Registry_Snapshot_FullMethodName, nil, nil, nil, invoker))
	assert.Equal(t, []string{"tok"}, got)

	c.accessToken = ""
	require.NoError(t, c.accessTokenInterceptor(context.Background(), pb.Registry_Ping_FullMethodName, nil, nil, nil, invoker))
	assert.Empty(t, got)
}

func TestCloseWithoutConn(t *testing.T) {
	assert.NoError(t, (&GRPCClient{}).Close())
}
