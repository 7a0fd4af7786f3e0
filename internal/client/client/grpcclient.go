package client

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/tokenregister/internal/common"
	pb "github.com/dmitrijs2005/tokenregister/internal/proto"
	"github.com/dmitrijs2005/tokenregister/internal/registry/instruction"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.RegistryClient
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	if s.accessToken != "" {
		ctx = withAccessToken(ctx, s.accessToken)
	}

	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewRegistryClientService(endpointURL, accessToken string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, accessToken: accessToken}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {

	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewRegistryClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.GetStatus() != "OK" {
		return ErrUnavailable
	}

	return nil
}

// Submit encodes and sends a signed transaction. It returns the transaction
// id even when execution failed, so the caller can look up the log entry.
func (s *GRPCClient) Submit(ctx context.Context, tx *instruction.Transaction) (string, error) {

	raw, err := tx.Marshal()
	if err != nil {
		return "", err
	}

	resp, err := s.client.Submit(ctx, &pb.SubmitRequest{Transaction: raw})
	if err != nil {
		return tx.ID(), s.mapError(err)
	}

	return resp.GetId(), nil
}

func (s *GRPCClient) GetManager(ctx context.Context) (*pb.Manager, error) {
	resp, err := s.client.GetManager(ctx, &pb.GetManagerRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) GetToken(ctx context.Context, mint string) (*pb.Token, error) {
	resp, err := s.client.GetToken(ctx, &pb.GetTokenRequest{Mint: mint})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) ListTokens(ctx context.Context) ([]*pb.Token, error) {
	resp, err := s.client.ListTokens(ctx, &pb.ListTokensRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.GetTokens(), nil
}

func (s *GRPCClient) GetTransaction(ctx context.Context, id string) (*pb.Transaction, error) {
	resp, err := s.client.GetTransaction(ctx, &pb.GetTransactionRequest{Id: id})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) Snapshot(ctx context.Context) (*pb.SnapshotResponse, error) {
	resp, err := s.client.Snapshot(ctx, &pb.SnapshotRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

// mapError recovers registry sentinels from status messages and folds
// transport failures into the package errors.
func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	if sentinel, ok := common.ErrorFromMessage(st.Message()); ok {
		return sentinel
	}
	switch st.Code() {
	case codes.Unauthenticated:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
