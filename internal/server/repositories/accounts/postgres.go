package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

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

func (r *PostgresRepository) Create(ctx context.Context, acc *models.Account) error {
	query :=
		`INSERT INTO accounts (address, owner, lamports, space, data, payer, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (address) DO NOTHING
		 `

	res, err := r.db.ExecContext(ctx, query,
		acc.Address, acc.Owner, acc.Lamports, acc.Space, acc.Data, acc.Payer, acc.CreatedAt, acc.UpdatedAt)
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

func (r *PostgresRepository) Get(ctx context.Context, address string) (*models.Account, error) {
	query :=
		`SELECT address, owner, lamports, space, data, payer, created_at, updated_at FROM accounts
		 WHERE address = $1
		 `
	return scanOne(r.db.QueryRowContext(ctx, query, address))
}

func (r *PostgresRepository) GetForUpdate(ctx context.Context, address string) (*models.Account, error) {
	query :=
		`SELECT address, owner, lamports, space, data, payer, created_at, updated_at FROM accounts
		 WHERE address = $1
		 FOR UPDATE
		 `
	return scanOne(r.db.QueryRowContext(ctx, query, address))
}

func (r *PostgresRepository) UpdateData(ctx context.Context, address string, data []byte, updatedAt time.Time) error {
	query :=
		`UPDATE accounts SET data = $2, updated_at = $3
		 WHERE address = $1
		 `

	res, err := r.db.ExecContext(ctx, query, address, data, updatedAt)
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

func (r *PostgresRepository) ListByOwner(ctx context.Context, owner string) ([]*models.Account, error) {
	query :=
		`SELECT address, owner, lamports, space, data, payer, created_at, updated_at FROM accounts
		 WHERE owner = $1
		 ORDER BY address
		 `

	rows, err := r.db.QueryContext(ctx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return scanAll(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scan(row rowScanner) (*models.Account, error) {
	acc := &models.Account{}
	err := row.Scan(&acc.Address, &acc.Owner, &acc.Lamports, &acc.Space, &acc.Data, &acc.Payer, &acc.CreatedAt, &acc.UpdatedAt)
	return acc, err
}

func scanOne(row *sql.Row) (*models.Account, error) {
	acc, err := scan(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return acc, nil
}

func scanAll(rows *sql.Rows) ([]*models.Account, error) {
	defer rows.Close()

	var result []*models.Account
	for rows.Next() {
		acc, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
