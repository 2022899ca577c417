package postgres_test

import (
	"context"
	"database/sql"
	"linkify/internal/pages"
	"linkify/pkg/storage/postgres"
	"testing"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertest"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_AddJob_CommitsWithTransaction(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	args := pages.PruneAssetArgs{Key: "alice/old.png", Owner: "alice"}

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = txStorage.Rollback() }()

	added, err := txStorage.(*postgres.PgSQL).AddJob(ctx, args, nil)
	require.NoError(t, err)
	require.True(t, added)
	rivertest.RequireInsertedTx[*riverdatabasesql.Driver](
		ctx,
		t,
		txStorage.(*postgres.PgSQL).DB.(*sql.Tx),
		&pages.PruneAssetArgs{},
		nil,
	)

	require.NoError(t, txStorage.Rollback())
	rivertest.RequireNotInserted[*riverdatabasesql.Driver](
		ctx,
		t,
		riverdatabasesql.New(pg.DB.(*sql.DB)),
		&pages.PruneAssetArgs{},
		nil,
	)
}

func TestPgSQL_AddJob_SkipsDuplicatePrune(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	args := pages.PruneAssetArgs{Key: "alice/old.png", Owner: "alice"}

	added, err := pg.AddJob(ctx, args, &river.InsertOpts{})
	require.NoError(t, err)
	require.True(t, added)
	rivertest.RequireInserted[*riverdatabasesql.Driver](
		ctx,
		t,
		riverdatabasesql.New(pg.DB.(*sql.DB)),
		&pages.PruneAssetArgs{},
		nil,
	)

	added, err = pg.AddJob(ctx, args, nil)
	require.NoError(t, err)
	require.False(t, added)

	added, err = pg.AddJob(ctx, pages.PruneAssetArgs{Key: "alice/old.png", Owner: "bob"}, nil)
	require.NoError(t, err)
	require.True(t, added)
}

func TestPgSQL_Migrate_IsRepeatable(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, pg.Migrate(ctx))

	tx, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.Error(t, tx.(*postgres.PgSQL).Migrate(ctx))
	require.NoError(t, tx.Rollback())
}
