package accounts

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/tokenregister/internal/common"
	"github.com/dmitrijs2005/tokenregister/internal/dbx"
	"github.com/dmitrijs2005/tokenregister/internal/server/models"
)

// SQLiteRepository is the SQLite flavour of the account store. SQLite has no
// row locks; the node opens it with a single connection so writers are
// serialized and GetForUpdate is a plain read.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, acc *models.Account) error {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO accounts (address, owner, lamports, space, data, payer, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(address) DO NOTHING
	`, acc.Address, acc.Owner, acc.Lamports, acc.Space, acc.Data, acc.Payer, acc.CreatedAt.UTC(), acc.UpdatedAt.UTC())
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

func (r *SQLiteRepository) Get(ctx context.Context, address string) (*models.Account, error) {
	return scanOne(r.db.QueryRowContext(ctx, `
		SELECT address, owner, lamports, space, data, payer, created_at, updated_at
		FROM accounts WHERE address = ?
	`, address))
}

func (r *SQLiteRepository) GetForUpdate(ctx context.Context, address string) (*models.Account, error) {
	return r.Get(ctx, address)
}

func (r *SQLiteRepository) UpdateData(ctx context.Context, address string, data []byte, updatedAt time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE accounts SET data = ?, updated_at = ? WHERE address = ?
	`, data, updatedAt.UTC(), address)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	updated, err := dbx.RowsAffectedOne(res)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if !updated {
		return common.ErrorNotFound
	}
	return nil
}

func (r *SQLiteRepository) ListByOwner(ctx context.Context, owner string) ([]*models.Account, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT address, owner, lamports, space, data, payer, created_at, updated_at
		FROM accounts WHERE owner = ? ORDER BY address
	`, owner)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return scanAll(rows)
}
