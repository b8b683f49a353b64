package storage

import (
	"context"
	"path/filepath"
	"testing"

	"alcyxob/fitness-tracker/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	ctx := context.Background()

	kv, err := Open(ctx, config.StorageConfig{Driver: DriverMemory})
	require.NoError(t, err)
	assert.IsType(t, &MemoryKV{}, kv)
	require.NoError(t, kv.Close())

	kv, err = Open(ctx, config.StorageConfig{
		Driver: DriverSQLite,
		SQLite: config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "fitness.db")},
	})
	require.NoError(t, err)
	assert.IsType(t, &SQLiteKV{}, kv)
	require.NoError(t, kv.Close())

	_, err = Open(ctx, config.StorageConfig{Driver: "etcd"})
	assert.ErrorIs(t, err, ErrUnknownDriver)

	_, err = Open(ctx, config.StorageConfig{Driver: DriverS3})
	assert.Error(t, err)
}
