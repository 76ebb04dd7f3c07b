package dbx

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func countRows(ctx context.Context, t *testing.T, q DBTX) int {
	t.Helper()
	var n int
	require.NoError(t, q.QueryRowContext(ctx, `SELECT COUNT(*) FROM t`).Scan(&n))
	return n
}

func TestDBTX_SameCodeOverDBAndTx(t *testing.T) {
	ctx := context.Background()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.ExecContext(ctx, `CREATE TABLE t (id INTEGER PRIMARY KEY, v TEXT)`)
	require.NoError(t, err)

	insert := func(q DBTX, v string) {
		_, err := q.ExecContext(ctx, `INSERT INTO t (v) VALUES (?)`, v)
		require.NoError(t, err)
	}

	insert(db, "a")

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	insert(tx, "b")
	assert.Equal(t, 2, countRows(ctx, t, tx))
	require.NoError(t, tx.Rollback())

	assert.Equal(t, 1, countRows(ctx, t, db))
}
