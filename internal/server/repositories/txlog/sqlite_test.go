package txlog

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dmitrijs2005/tokenregister/internal/common"
	"github.com/dmitrijs2005/tokenregister/internal/server/migrations"
	"github.com/dmitrijs2005/tokenregister/internal/server/models"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	goose.SetBaseFS(migrations.SQLite)
	require.NoError(t, goose.SetDialect("sqlite3"))
	require.NoError(t, goose.Up(db, "sqlite"))
	return db
}

func TestSQLite_CreateGet(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, sampleTx()))
	require.ErrorIs(t, r.Create(ctx, sampleTx()), common.ErrorAlreadyExists)

	got, err := r.Get(ctx, "sig1")
	require.NoError(t, err)
	assert.Equal(t, int64(6004), got.ErrorCode)
	assert.Equal(t, models.TxStatusFailed, got.Status)

	_, err = r.Get(ctx, "ghost")
	require.ErrorIs(t, err, common.ErrorNotFound)
}
