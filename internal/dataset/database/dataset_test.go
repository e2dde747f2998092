package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/robotomize/plinko/internal/database"
	"github.com/robotomize/plinko/internal/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	ctx := context.Background()
	db, err := database.NewFromEnv(ctx, &database.Config{FileName: filepath.Join(t.TempDir(), "plinko.db")})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close(ctx)
	})
	return New(db)
}

func TestDB_StoreFind(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := newTestDB(t)

	stored, err := db.Store(ctx, "reference", dataset.Reference())
	require.NoError(t, err)
	assert.Equal(t, "reference", stored.Name)

	found, err := db.Find(ctx, "reference")
	require.NoError(t, err)
	assert.Equal(t, stored.ID, found.ID)
	assert.Equal(t, dataset.Reference(), found.Records)

	replaced, err := db.Store(ctx, "reference", dataset.Reference()[:2])
	require.NoError(t, err)
	found, err = db.Find(ctx, "reference")
	require.NoError(t, err)
	assert.Equal(t, replaced.ID, found.ID)
	assert.Len(t, found.Records, 2)

	_, err = db.Store(ctx, "second", dataset.Reference())
	require.NoError(t, err)
	keys, err := db.Keys()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"reference", "second"}, keys)
}

func TestDB_NotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := newTestDB(t)

	_, err := db.Find(ctx, "missing")
	assert.True(t, errors.Is(err, ErrNotFound), "got %v", err)
	assert.True(t, errors.Is(db.Delete(ctx, "missing"), ErrNotFound))

	_, err = db.Store(ctx, "", dataset.Reference())
	assert.Error(t, err)
}

func TestDB_Delete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := newTestDB(t)

	_, err := db.Store(ctx, "reference", dataset.Reference())
	require.NoError(t, err)
	require.NoError(t, db.Delete(ctx, "reference"))

	_, err = db.Find(ctx, "reference")
	assert.True(t, errors.Is(err, ErrNotFound))
	keys, err := db.Keys()
	require.NoError(t, err)
	assert.Empty(t, keys)
}
