package repository

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/storage"
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

var _ WorkoutStore = (*kvWorkoutStore)(nil)

// kvWorkoutStore keeps all workouts as one JSON array under WorkoutsKey.
// Every mutation is a full read-modify-write of that array.
type kvWorkoutStore struct {
	kv        storage.KV
	exercises ExerciseStore
	newID     IDGenerator

	// serializes read-modify-write cycles within this process
	mu sync.Mutex
}

// NewWorkoutStore creates a WorkoutStore. exercises receives the cascading
// DeleteCollection call when a workout is deleted.
func NewWorkoutStore(kv storage.KV, exercises ExerciseStore, opts ...Option) WorkoutStore {
	o := buildOptions(opts)
	return &kvWorkoutStore{
		kv:        kv,
		exercises: exercises,
		newID:     o.newID,
	}
}

func (s *kvWorkoutStore) List(ctx context.Context) ([]domain.Workout, error) {
	return loadList[domain.Workout](ctx, s.kv, WorkoutsKey)
}

func (s *kvWorkoutStore) Get(ctx context.Context, id string) (*domain.Workout, error) {
	workouts, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range workouts {
		if workouts[i].ID == id {
			return &workouts[i], nil
		}
	}
	return nil, ErrNotFound
}

func (s *kvWorkoutStore) Create(ctx context.Context, name, date string) (*domain.Workout, error) {
	name, date, err := domain.NewWorkoutInput(name, date)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	workouts, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	workout := domain.Workout{
		ID:   s.newID(),
		Name: name,
		Date: date,
	}
	// Most recent first.
	updated := make([]domain.Workout, 0, len(workouts)+1)
	updated = append(updated, workout)
	updated = append(updated, workouts...)

	if err := saveList(ctx, s.kv, WorkoutsKey, updated); err != nil {
		return nil, err
	}

	logrus.WithField("workout_id", workout.ID).Debug("workout created")
	return &workout, nil
}

func (s *kvWorkoutStore) Update(ctx context.Context, id, name, date string) (bool, error) {
	name, date, err := domain.NewWorkoutInput(name, date)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	workouts, err := s.List(ctx)
	if err != nil {
		return false, err
	}

	idx := indexOfWorkout(workouts, id)
	if idx < 0 {
		return false, nil
	}
	workouts[idx].Name = name
	workouts[idx].Date = date

	if err := saveList(ctx, s.kv, WorkoutsKey, workouts); err != nil {
		return false, err
	}

	logrus.WithField("workout_id", id).Debug("workout updated")
	return true, nil
}

// Delete removes the workout, then its exercise collection. The two writes are not
// atomic: a failure in between leaves an orphaned collection, which a repeated
// Delete of the same id cleans up.
func (s *kvWorkoutStore) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	workouts, err := s.List(ctx)
	if err != nil {
		return false, err
	}

	idx := indexOfWorkout(workouts, id)
	found := idx >= 0
	if found {
		workouts = append(workouts[:idx], workouts[idx+1:]...)
		if err := saveList(ctx, s.kv, WorkoutsKey, workouts); err != nil {
			return false, err
		}
	}

	if err := s.exercises.DeleteCollection(ctx, id); err != nil {
		return found, err
	}

	logrus.WithFields(logrus.Fields{
		"workout_id": id,
		"found":      found,
	}).Debug("workout deleted")
	return found, nil
}

func indexOfWorkout(workouts []domain.Workout, id string) int {
	for i := range workouts {
		if workouts[i].ID == id {
			return i
		}
	}
	return -1
}
