// Package accounts stores ledger accounts. Create is the atomic commit
// point of record creation: a second create at the same address reports
// common.ErrorAlreadyExists instead of overwriting.
package accounts

import (
	"context"
	"time"

	"github.com/dmitrijs2005/tokenregister/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, acc *models.Account) error
	Get(ctx context.Context, address string) (*models.Account, error)
	// GetForUpdate is Get plus a row lock held until the surrounding
	// transaction ends.
	GetForUpdate(ctx context.Context, address string) (*models.Account, error)
	UpdateData(ctx context.Context, address string, data []byte, updatedAt time.Time) error
	ListByOwner(ctx context.Context, owner string) ([]*models.Account, error)
}
