// Package grpc exposes the registry node over gRPC: the Registry service,
// the standard health service and the interceptors around them.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/tokenregister/internal/logging"
	pb "github.com/dmitrijs2005/tokenregister/internal/proto"
	"github.com/dmitrijs2005/tokenregister/internal/server/models"
	"github.com/dmitrijs2005/tokenregister/internal/server/services"
	"github.com/dmitrijs2005/tokenregister/internal/tracing"
	"github.com/gagliardetto/solana-go"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type registrySvc interface {
	Submit(ctx context.Context, raw []byte) (string, error)
	GetManager(ctx context.Context) (*services.ManagerView, error)
	GetToken(ctx context.Context, mint solana.PublicKey) (*services.TokenView, error)
	ListTokens(ctx context.Context) ([]*services.TokenView, error)
	GetTransaction(ctx context.Context, id string) (*models.Transaction, error)
}

type snapshotSvc interface {
	Snapshot(ctx context.Context, operator string) (string, string, error)
}

type GRPCServer struct {
	pb.UnimplementedRegistryServer
	address   string
	registry  registrySvc
	snapshots snapshotSvc
	logger    logging.Logger
	tracer    trace.Tracer
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, rs registrySvc, ss snapshotSvc, secretKey string, tracer trace.Tracer) (*GRPCServer, error) {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		registry:  rs,
		snapshots: ss,
		tracer:    tracer,
		jwtSecret: []byte(secretKey),
	}, nil
}

// newServer builds the gRPC server with interceptors and services registered.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		tracing.UnaryServerInterceptor(s.tracer),
		s.accessTokenInterceptor,
	))

	pb.RegisterRegistryServer(srv, s)

	hs := health.NewServer()
	hs.SetServingStatus(pb.Registry_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.serve(ctx, listen)
}

func (s *GRPCServer) serve(ctx context.Context, listen net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
