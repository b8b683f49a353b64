package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteKV(t *testing.T) {
	kv, err := NewSQLiteKV(context.Background(), filepath.Join(t.TempDir(), "nested", "fitness.db"))
	require.NoError(t, err)
	defer kv.Close()

	checkKVContract(t, kv)
}

func TestSQLiteKV_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "fitness.db")

	kv, err := NewSQLiteKV(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, "workouts", `[{"id":"w1"}]`))
	require.NoError(t, kv.Close())

	kv, err = NewSQLiteKV(ctx, dbPath)
	require.NoError(t, err)
	defer kv.Close()

	val, found, err := kv.Get(ctx, "workouts")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":"w1"}]`, val)
}

func TestSQLiteKV_InMemory(t *testing.T) {
	kv, err := NewSQLiteKV(context.Background(), ":memory:")
	require.NoError(t, err)
	defer kv.Close()

	checkKVContract(t, kv)
}
