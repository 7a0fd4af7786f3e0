package txlog

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/tokenregister/internal/common"
	"github.com/dmitrijs2005/tokenregister/internal/dbx"
	"github.com/dmitrijs2005/tokenregister/internal/server/models"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, tx *models.Transaction) error {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO transactions (id, fee_payer, instructions, status, error_code, error, raw, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`, tx.ID, tx.FeePayer, tx.Instructions, tx.Status, tx.ErrorCode, tx.Error, tx.Raw, tx.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	inserted, err := dbx.RowsAffectedOne(res)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if !inserted {
		return common.ErrorAlreadyExists
	}
	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context, id string) (*models.Transaction, error) {
	return scanOne(r.db.QueryRowContext(ctx, `
		SELECT id, fee_payer, instructions, status, error_code, error, raw, created_at
		FROM transactions WHERE id = ?
	`, id))
}
