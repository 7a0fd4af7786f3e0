package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/tokenregister/internal/common"
	"github.com/dmitrijs2005/tokenregister/internal/logging"
	pb "github.com/dmitrijs2005/tokenregister/internal/proto"
	"github.com/dmitrijs2005/tokenregister/internal/server/auth"
	"github.com/dmitrijs2005/tokenregister/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
)

// startBufconn serves s over an in-memory listener and returns a connection.
func startBufconn(t *testing.T, s *GRPCServer) *grpc.ClientConn {
	t.Helper()
	lis := bufconn.Listen(1 << 20)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.serve(ctx, lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
		<-done
	})
	return conn
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	srv, err := NewGRPCServer("127.0.0.1:0", logging.Nop{}, &fakeRegistry{}, &fakeSnapshots{}, "secret", nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	srv, err := NewGRPCServer("127.0.0.1:99999", logging.Nop{}, &fakeRegistry{}, &fakeSnapshots{}, "secret", nil)
	require.NoError(t, err)

	assert.Error(t, srv.Run(context.Background()))
}

func TestBufconn_RoundTrip(t *testing.T) {
	tok := sampleToken()
	reg := &fakeRegistry{submitID: "sig", tokens: []*services.TokenView{tok}}
	sn := &fakeSnapshots{key: "snapshots/k.json", url: "http://signed"}

	s, err := NewGRPCServer("bufnet", logging.Nop{}, reg, sn, "secret", nil)
	require.NoError(t, err)
	conn := startBufconn(t, s)
	client := pb.NewRegistryClient(conn)
	ctx := context.Background()

	ping, err := client.Ping(ctx, &pb.PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "OK", ping.GetStatus())

	sub, err := client.Submit(ctx, &pb.SubmitRequest{Transaction: []byte{1, 2}})
	require.NoError(t, err)
	assert.Equal(t, "sig", sub.GetId())
	assert.Equal(t, []byte{1, 2}, reg.submitted)

	got, err := client.GetToken(ctx, &pb.GetTokenRequest{Mint: tok.Mint.String()})
	require.NoError(t, err)
	assert.Equal(t, tok.Name, got.Name)
	assert.True(t, tok.UpdatedAt.Equal(got.GetUpdatedAt().AsTime()))
	assert.Equal(t, tok.ImageURI, got.GetImageUri())

	_, err = client.GetManager(ctx, &pb.GetManagerRequest{})
	require.NoError(t, err)

	reg.managerErr = common.ErrorNotFound
	_, err = client.GetManager(ctx, &pb.GetManagerRequest{})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = client.Snapshot(ctx, &pb.SnapshotRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	token, err := auth.GenerateToken("ops", []byte("secret"), time.Minute)
	require.NoError(t, err)
	authCtx := metadata.AppendToOutgoingContext(ctx, common.AccessTokenHeaderName, token)
	snap, err := client.Snapshot(authCtx, &pb.SnapshotRequest{})
	require.NoError(t, err)
	assert.Equal(t, "http://signed", snap.GetUrl())
	assert.Equal(t, "ops", sn.operator)
}

func TestBufconn_Health(t *testing.T) {
	s, err := NewGRPCServer("bufnet", logging.Nop{}, &fakeRegistry{}, &fakeSnapshots{}, "secret", nil)
	require.NoError(t, err)
	conn := startBufconn(t, s)

	resp, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{Service: pb.Registry_ServiceDesc.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}

func TestRegistryDescriptor_MatchesServiceDesc(t *testing.T) {
	d, err := protoregistry.GlobalFiles.FindDescriptorByName(protoreflect.FullName(pb.Registry_ServiceDesc.ServiceName))
	require.NoError(t, err)
	sd, ok := d.(protoreflect.ServiceDescriptor)
	require.True(t, ok)

	require.Equal(t, len(pb.Registry_ServiceDesc.Methods), sd.Methods().Len())
	for _, m := range pb.Registry_ServiceDesc.Methods {
		md := sd.Methods().ByName(protoreflect.Name(m.MethodName))
		require.NotNil(t, md, m.MethodName)
		assert.False(t, md.IsStreamingClient() || md.IsStreamingServer(), m.MethodName)
	}

	tok := sd.Methods().ByName("GetToken").Output()
	assert.Equal(t, protoreflect.FullName("google.protobuf.Timestamp"), tok.Fields().ByName("updated_at").Message().FullName())
}
