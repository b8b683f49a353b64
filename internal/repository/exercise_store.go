package repository

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/storage"
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

var _ ExerciseStore = (*kvExerciseStore)(nil)

// kvExerciseStore keeps one JSON array per workout under ExercisesKey(workoutID).
// It does not check that the workout exists.
type kvExerciseStore struct {
	kv    storage.KV
	newID IDGenerator
	mu    sync.Mutex
}

func NewExerciseStore(kv storage.KV, opts ...Option) ExerciseStore {
	o := buildOptions(opts)
	return &kvExerciseStore{
		kv:    kv,
		newID: o.newID,
	}
}

func (s *kvExerciseStore) List(ctx context.Context, workoutID string) ([]domain.Exercise, error) {
	return loadList[domain.Exercise](ctx, s.kv, ExercisesKey(workoutID))
}

func (s *kvExerciseStore) Add(ctx context.Context, workoutID string, fields domain.ExerciseFields) (*domain.Exercise, error) {
	fields, err := fields.Normalize()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	exercises, err := s.List(ctx, workoutID)
	if err != nil {
		return nil, err
	}

	exercise := domain.Exercise{
		ID:   s.newID(),
		Name: fields.Name,
		Sets: fields.Sets,
		Reps: fields.Reps,
	}
	exercises = append(exercises, exercise)

	if err := saveList(ctx, s.kv, ExercisesKey(workoutID), exercises); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"workout_id":  workoutID,
		"exercise_id": exercise.ID,
	}).Debug("exercise added")
	return &exercise, nil
}

func (s *kvExerciseStore) Update(ctx context.Context, workoutID, exerciseID string, fields domain.ExerciseFields) (bool, error) {
	fields, err := fields.Normalize()
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	exercises, err := s.List(ctx, workoutID)
	if err != nil {
		return false, err
	}

	idx := indexOfExercise(exercises, exerciseID)
	if idx < 0 {
		return false, nil
	}
	exercises[idx].Name = fields.Name
	exercises[idx].Sets = fields.Sets
	exercises[idx].Reps = fields.Reps

	if err := saveList(ctx, s.kv, ExercisesKey(workoutID), exercises); err != nil {
		return false, err
	}
	return true, nil
}

// Remove drops one exercise. Asking the user for confirmation is the caller's job.
func (s *kvExerciseStore) Remove(ctx context.Context, workoutID, exerciseID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	exercises, err := s.List(ctx, workoutID)
	if err != nil {
		return false, err
	}

	idx := indexOfExercise(exercises, exerciseID)
	if idx < 0 {
		return false, nil
	}
	exercises = append(exercises[:idx], exercises[idx+1:]...)

	if err := saveList(ctx, s.kv, ExercisesKey(workoutID), exercises); err != nil {
		return false, err
	}
	return true, nil
}

func (s *kvExerciseStore) DeleteCollection(ctx context.Context, workoutID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := ExercisesKey(workoutID)
	if err := s.kv.Remove(ctx, key); err != nil {
		return &StorageError{Op: "remove", Key: key, Err: err}
	}
	return nil
}

func indexOfExercise(exercises []domain.Exercise, id string) int {
	for i := range exercises {
		if exercises[i].ID == id {
			return i
		}
	}
	return -1
}
