package sessions

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/gophblog/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophblog/internal/common"
	"github.com/dmitrijs2005/gophblog/internal/dbx"
)

// SQLiteStorage is the durable mirror of the session store. It also serves
// as the HTTP client's token source.
type SQLiteStorage struct {
	db *sql.DB
}

func NewSQLiteStorage(db *sql.DB) *SQLiteStorage {
	return &SQLiteStorage{db: db}
}

// Load returns the raw persisted values; absent keys come back empty.
func (s *SQLiteStorage) Load(ctx context.Context) (string, []byte, error) {
	repo := metadata.NewSQLiteRepository(s.db)

	token, err := repo.Get(ctx, common.StorageKeyToken)
	if err != nil {
		return "", nil, err
	}
	user, err := repo.Get(ctx, common.StorageKeyUser)
	if err != nil {
		return "", nil, err
	}
	return string(token), user, nil
}

// Save writes both keys atomically.
func (s *SQLiteStorage) Save(ctx context.Context, token string, user []byte) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.StorageKeyToken, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, common.StorageKeyUser, user)
	})
}

// SaveUser rewrites the user key only. It refuses to create a user record
// without a persisted token.
func (s *SQLiteStorage) SaveUser(ctx context.Context, user []byte) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		token, err := repo.Get(ctx, common.StorageKeyToken)
		if err != nil {
			return err
		}
		if len(token) == 0 {
			return fmt.Errorf("save user: %w", common.ErrNoSession)
		}
		return repo.Set(ctx, common.StorageKeyUser, user)
	})
}

// Clear removes both keys. Clearing an empty storage is a no-op.
func (s *SQLiteStorage) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return metadata.NewSQLiteRepository(tx).Delete(ctx, common.StorageKeyToken, common.StorageKeyUser)
	})
}

// Token reads the persisted bearer token for outbound requests.
func (s *SQLiteStorage) Token(ctx context.Context) (string, error) {
	token, err := metadata.NewSQLiteRepository(s.db).Get(ctx, common.StorageKeyToken)
	if err != nil {
		return "", err
	}
	return string(token), nil
}
