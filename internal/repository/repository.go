package repository

import (
	"alcyxob/fitness-tracker/internal/domain"
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Error constants for repository layer
var (
	ErrNotFound       = RepositoryError("not found")
	ErrStorageFailure = RepositoryError("storage failure")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// StorageError wraps a failed read, write or remove on the key-value store.
// It matches ErrStorageFailure with errors.Is and unwraps to the backend error.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func (e *StorageError) Is(target error) bool { return target == ErrStorageFailure }

// WorkoutStore persists the full list of workouts under one key, most recent first.
type WorkoutStore interface {
	// List returns every workout. Missing or unreadable data yields an empty list.
	List(ctx context.Context) ([]domain.Workout, error)
	// Get returns the workout with id, or ErrNotFound.
	Get(ctx context.Context, id string) (*domain.Workout, error)
	// Create validates name/date, prepends a new workout and persists the list.
	Create(ctx context.Context, name, date string) (*domain.Workout, error)
	// Update replaces name and date in place. found is false when no workout has id.
	Update(ctx context.Context, id, name, date string) (found bool, err error)
	// Delete removes the workout and its exercise collection. found is false when no workout had id.
	Delete(ctx context.Context, id string) (found bool, err error)
}

// ExerciseStore persists one exercise list per workout, in insertion order.
type ExerciseStore interface {
	List(ctx context.Context, workoutID string) ([]domain.Exercise, error)
	Add(ctx context.Context, workoutID string, fields domain.ExerciseFields) (*domain.Exercise, error)
	Update(ctx context.Context, workoutID, exerciseID string, fields domain.ExerciseFields) (found bool, err error)
	Remove(ctx context.Context, workoutID, exerciseID string) (found bool, err error)
	// DeleteCollection drops the whole exercise list of a workout.
	DeleteCollection(ctx context.Context, workoutID string) error
}

// IDGenerator produces a fresh record ID.
type IDGenerator func() string

// NewID returns a time-ordered UUID (v7), so IDs sort by creation time.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Option configures a store.
type Option func(*options)

type options struct {
	newID IDGenerator
}

// WithIDGenerator replaces the default ID generator.
func WithIDGenerator(gen IDGenerator) Option {
	return func(o *options) { o.newID = gen }
}

func buildOptions(opts []Option) options {
	o := options{newID: NewID}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
