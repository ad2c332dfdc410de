package kv

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/client/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := storage.InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSetAndGet_InsertThenGet(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "ipt_demo_v1", `{"accounts":[]}`))

	v, ok, err := r.Get(ctx, "ipt_demo_v1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"accounts":[]}`, v)
}

func TestGet_NotExists(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	v, ok, err := r.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestGet_EmptyValueIsPresent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", ""))

	v, ok, err := r.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, v)
}

func TestSet_UpsertOverwritesValue(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", "old"))
	require.NoError(t, r.Set(ctx, "k", "new"))

	v, _, err := r.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "new", v)
}

func TestDelete_ManyKeysAndIdempotent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "x", "1"))
	require.NoError(t, r.Set(ctx, "y", "2"))
	require.NoError(t, r.Set(ctx, "z", "3"))

	require.NoError(t, r.Delete(ctx, "x", "y", "missing"))

	for _, key := range []string{"x", "y"} {
		_, ok, err := r.Get(ctx, key)
		require.NoError(t, err)
		assert.False(t, ok, key)
	}
	v, ok, err := r.Get(ctx, "z")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "3", v)

	require.NoError(t, r.Delete(ctx, "x"))
	require.NoError(t, r.Delete(ctx))
}

func TestDBErrorsWrapped(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Close())

	_, _, err := r.Get(ctx, "k")
	require.ErrorContains(t, err, "failed to get kv[k]")

	err = r.Set(ctx, "k", "v")
	require.ErrorContains(t, err, "failed to set kv[k]")

	err = r.Delete(ctx, "k")
	require.ErrorContains(t, err, "begin tx")
}

func TestDelete_RollsBackOnFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM kv WHERE key = \?`).
		WithArgs("ipt_demo_v1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM kv WHERE key = \?`).
		WithArgs("auth_token").
		WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	r := NewSQLiteRepository(db)
	err = r.Delete(context.Background(), "ipt_demo_v1", "auth_token")
	require.ErrorContains(t, err, "failed to delete kv[auth_token]")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_CommitsAllKeys(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM kv WHERE key = \?`).WithArgs("a").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM kv WHERE key = \?`).WithArgs("b").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	require.NoError(t, NewSQLiteRepository(db).Delete(context.Background(), "a", "b"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_QueryErrorWrapped(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT value FROM kv WHERE key = \?`).
		WithArgs("ipt_demo_v1").
		WillReturnError(errors.New("database is locked"))

	_, ok, err := NewSQLiteRepository(db).Get(context.Background(), "ipt_demo_v1")
	require.ErrorContains(t, err, "failed to get kv[ipt_demo_v1]")
	assert.False(t, ok)
	require.NoError(t, mock.ExpectationsWereMet())
}
