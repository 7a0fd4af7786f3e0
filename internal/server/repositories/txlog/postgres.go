package txlog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tokenregister/internal/common"
	"github.com/dmitrijs2005/tokenregister/internal/dbx"
	"github.com/dmitrijs2005/tokenregister/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, tx *models.Transaction) error {
	query :=
		`INSERT INTO transactions (id, fee_payer, instructions, status, error_code, error, raw, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (id) DO NOTHING
		 `

	res, err := r.db.ExecContext(ctx, query,
		tx.ID, tx.FeePayer, tx.Instructions, tx.Status, tx.ErrorCode, tx.Error, tx.Raw, tx.CreatedAt)
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

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Transaction, error) {
	query :=
		`SELECT id, fee_payer, instructions, status, error_code, error, raw, created_at FROM transactions
		 WHERE id = $1
		 `
	return scanOne(r.db.QueryRowContext(ctx, query, id))
}

func scanOne(row *sql.Row) (*models.Transaction, error) {
	tx := &models.Transaction{}
	err := row.Scan(&tx.ID, &tx.FeePayer, &tx.Instructions, &tx.Status, &tx.ErrorCode, &tx.Error, &tx.Raw, &tx.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return tx, nil
}
