package sessions

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gophblog/internal/client/repositories"
	"github.com/dmitrijs2005/gophblog/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophblog/internal/common"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, repositories.RunMigrations(context.Background(), db))
	return db
}

func TestSaveLoadClear(t *testing.T) {
	ctx := context.Background()
	s := NewSQLiteStorage(setupDB(t))

	token, user, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Nil(t, user)

	require.NoError(t, s.Save(ctx, "tok123", []byte(`{"id":1}`)))

	token, user, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok123", token)
	assert.JSONEq(t, `{"id":1}`, string(user))

	bearer, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok123", bearer)

	require.NoError(t, s.Clear(ctx))
	require.NoError(t, s.Clear(ctx))

	token, user, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Nil(t, user)
}

func TestClear_LeavesOtherKeys(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	s := NewSQLiteStorage(db)

	require.NoError(t, metadata.NewSQLiteRepository(db).Set(ctx, "theme", []byte("dark")))
	require.NoError(t, s.Save(ctx, "t", []byte(`{}`)))
	require.NoError(t, s.Clear(ctx))

	m, err := metadata.NewSQLiteRepository(db).List(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{"theme": []byte("dark")}, m)
}

func TestSaveUser_RequiresToken(t *testing.T) {
	ctx := context.Background()
	s := NewSQLiteStorage(setupDB(t))

	err := s.SaveUser(ctx, []byte(`{"id":1}`))
	require.ErrorIs(t, err, common.ErrNoSession)

	_, user, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)

	require.NoError(t, s.Save(ctx, "t", []byte(`{"id":1}`)))
	require.NoError(t, s.SaveUser(ctx, []byte(`{"id":1,"bio":"x"}`)))

	token, user, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "t", token)
	assert.JSONEq(t, `{"id":1,"bio":"x"}`, string(user))
}

func TestSave_SecondWriteFails_RollsBackToken(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO metadata`).WithArgs(common.StorageKeyToken, []byte("tok")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO metadata`).WithArgs(common.StorageKeyUser, []byte(`{}`)).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err = NewSQLiteStorage(db).Save(context.Background(), "tok", []byte(`{}`))
	require.ErrorContains(t, err, "disk full")
	require.NoError(t, mock.ExpectationsWereMet())
}
