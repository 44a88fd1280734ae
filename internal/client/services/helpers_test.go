package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/carmarket/internal/client/repositories/kv"
	"github.com/dmitrijs2005/carmarket/internal/client/storage"
)

func setupStore(t *testing.T) (kv.Repository, *sql.DB) {
	t.Helper()
	db, err := storage.InitSQLite(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return kv.NewSQLiteRepository(db), db
}

// countingStore records how many reads and writes reach the wrapped store.
type countingStore struct {
	kv.Repository
	gets    int
	setMany []map[string][]byte
}

func (c *countingStore) Get(ctx context.Context, key string) ([]byte, error) {
	c.gets++
	return c.Repository.Get(ctx, key)
}

func (c *countingStore) SetMany(ctx context.Context, values map[string][]byte) error {
	c.setMany = append(c.setMany, values)
	return c.Repository.SetMany(ctx, values)
}
