package repository

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"alcyxob/fitness-tracker/internal/storage"
)

// seqIDs returns an IDGenerator yielding prefix-1, prefix-2, ...
func seqIDs(prefix string) IDGenerator {
	var n atomic.Int64
	return func() string {
		return fmt.Sprintf("%s-%d", prefix, n.Add(1))
	}
}

var errDisk = errors.New("disk full")

// flakyKV wraps a MemoryKV and fails the selected operations.
type flakyKV struct {
	*storage.MemoryKV
	failGet    bool
	failSet    bool
	failRemove bool
	sets       int
}

func newFlakyKV() *flakyKV {
	return &flakyKV{MemoryKV: storage.NewMemoryKV()}
}

func (f *flakyKV) Get(ctx context.Context, key string) (string, bool, error) {
	if f.failGet {
		return "", false, errDisk
	}
	return f.MemoryKV.Get(ctx, key)
}

func (f *flakyKV) Set(ctx context.Context, key, value string) error {
	f.sets++
	if f.failSet {
		return errDisk
	}
	return f.MemoryKV.Set(ctx, key, value)
}

func (f *flakyKV) Remove(ctx context.Context, key string) error {
	if f.failRemove {
		return errDisk
	}
	return f.MemoryKV.Remove(ctx, key)
}

func newStores(kv storage.KV) (WorkoutStore, ExerciseStore) {
	exercises := NewExerciseStore(kv, WithIDGenerator(seqIDs("e")))
	workouts := NewWorkoutStore(kv, exercises, WithIDGenerator(seqIDs("w")))
	return workouts, exercises
}
