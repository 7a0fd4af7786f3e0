package client

import (
	"context"

	pb "github.com/dmitrijs2005/tokenregister/internal/proto"
	"github.com/dmitrijs2005/tokenregister/internal/registry/instruction"
)

type Client interface {
	Close() error
	Ping(ctx context.Context) error
	Submit(ctx context.Context, tx *instruction.Transaction) (string, error)
	GetManager(ctx context.Context) (*pb.Manager, error)
	GetToken(ctx context.Context, mint string) (*pb.Token, error)
	ListTokens(ctx context.Context) ([]*pb.Token, error)
	GetTransaction(ctx context.Context, id string) (*pb.Transaction, error)
	Snapshot(ctx context.Context) (*pb.SnapshotResponse, error)
}
