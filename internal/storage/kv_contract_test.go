package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkKVContract runs the behaviour every backend must share.
func checkKVContract(t *testing.T, kv KV) {
	t.Helper()
	ctx := context.Background()

	_, found, err := kv.Get(ctx, "workouts")
	require.NoError(t, err)
	assert.False(t, found, "absent key must not be found")

	require.NoError(t, kv.Set(ctx, "workouts", `[{"id":"1"}]`))
	val, found, err := kv.Get(ctx, "workouts")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":"1"}]`, val)

	require.NoError(t, kv.Set(ctx, "workouts", `[]`))
	val, _, err = kv.Get(ctx, "workouts")
	require.NoError(t, err)
	assert.Equal(t, `[]`, val, "set must overwrite")

	require.NoError(t, kv.Set(ctx, "exercises_1", `[{"id":"e1"}]`))
	require.NoError(t, kv.Remove(ctx, "exercises_1"))
	_, found, err = kv.Get(ctx, "exercises_1")
	require.NoError(t, err)
	assert.False(t, found)

	// removing twice is fine
	require.NoError(t, kv.Remove(ctx, "exercises_1"))

	val, found, err = kv.Get(ctx, "workouts")
	require.NoError(t, err)
	assert.True(t, found, "other keys are untouched")
	assert.Equal(t, `[]`, val)
}
