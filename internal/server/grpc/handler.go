package grpc

import (
	"context"

	"github.com/dmitrijs2005/tokenregister/internal/common"
	pb "github.com/dmitrijs2005/tokenregister/internal/proto"
	"github.com/dmitrijs2005/tokenregister/internal/server/services"
	"github.com/gagliardetto/solana-go"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func (s *GRPCServer) Submit(ctx context.Context, req *pb.SubmitRequest) (*pb.SubmitResponse, error) {

	if len(req.GetTransaction()) == 0 {
		return nil, status.Error(codes.InvalidArgument, common.ErrInvalidTransaction.Error())
	}

	id, err := s.registry.Submit(ctx, req.GetTransaction())
	if err != nil {
		s.logger.Warn(ctx, "transaction rejected", "tx", id, "error", err.Error())
		return nil, toStatus(err)
	}

	s.logger.Info(ctx, "transaction executed", "tx", id)
	return &pb.SubmitResponse{Id: id}, nil
}

func (s *GRPCServer) GetManager(ctx context.Context, _ *pb.GetManagerRequest) (*pb.Manager, error) {

	m, err := s.registry.GetManager(ctx)
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.Manager{Address: m.Address.String(), Bump: uint32(m.Bump), Authority: m.Authority.String()}, nil
}

func (s *GRPCServer) GetToken(ctx context.Context, req *pb.GetTokenRequest) (*pb.Token, error) {

	mint, err := solana.PublicKeyFromBase58(req.GetMint())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, common.ErrInvalidMint.Error())
	}

	t, err := s.registry.GetToken(ctx, mint)
	if err != nil {
		return nil, toStatus(err)
	}

	return tokenToProto(t), nil
}

func (s *GRPCServer) ListTokens(ctx context.Context, _ *pb.ListTokensRequest) (*pb.ListTokensResponse, error) {

	tokens, err := s.registry.ListTokens(ctx)
	if err != nil {
		s.logger.Error(ctx, "list tokens failed", "error", err.Error())
		return nil, toStatus(err)
	}

	resp := &pb.ListTokensResponse{Tokens: make([]*pb.Token, 0, len(tokens))}
	for _, t := range tokens {
		resp.Tokens = append(resp.Tokens, tokenToProto(t))
	}
	return resp, nil
}

func (s *GRPCServer) GetTransaction(ctx context.Context, req *pb.GetTransactionRequest) (*pb.Transaction, error) {

	tx, err := s.registry.GetTransaction(ctx, req.GetId())
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.Transaction{
		Id:           tx.ID,
		FeePayer:     tx.FeePayer,
		Instructions: tx.Instructions,
		Status:       tx.Status,
		ErrorCode:    tx.ErrorCode,
		Error:        tx.Error,
		CreatedAt:    timestamppb.New(tx.CreatedAt),
	}, nil
}

func (s *GRPCServer) Snapshot(ctx context.Context, _ *pb.SnapshotRequest) (*pb.SnapshotResponse, error) {

	operator, ok := operatorFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, common.ErrInvalidToken.Error())
	}

	key, url, err := s.snapshots.Snapshot(ctx, operator)
	if err != nil {
		s.logger.Error(ctx, "snapshot failed", "operator", operator, "error", err.Error())
		return nil, toStatus(err)
	}

	s.logger.Info(ctx, "snapshot written", "operator", operator, "key", key)
	return &pb.SnapshotResponse{Key: key, Url: url}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, _ *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil

}

func tokenToProto(t *services.TokenView) *pb.Token {
	return &pb.Token{
		Address:   t.Address.String(),
		Mint:      t.Mint.String(),
		Authority: t.Authority.String(),
		Name:      t.Name,
		Symbol:    t.Symbol,
		ImageUri:  t.ImageURI,
		UpdatedAt: timestamppb.New(t.UpdatedAt),
	}
}
