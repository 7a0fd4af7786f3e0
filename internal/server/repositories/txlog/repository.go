// Package txlog records every submitted transaction with its outcome. The
// primary key on the transaction id doubles as replay protection.
package txlog

import (
	"context"

	"github.com/dmitrijs2005/tokenregister/internal/server/models"
)

type Repository interface {
	// Create returns common.ErrorAlreadyExists if the id was seen before.
	Create(ctx context.Context, tx *models.Transaction) error
	Get(ctx context.Context, id string) (*models.Transaction, error)
}
