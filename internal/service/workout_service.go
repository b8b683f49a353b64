package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"errors"
)

// --- Error Definitions ---
var (
	ErrWorkoutNotFound = errors.New("workout not found")
)

type WorkoutService interface {
	ListWorkouts(ctx context.Context) ([]domain.Workout, error)
	GetWorkout(ctx context.Context, workoutID string) (*domain.Workout, error)
	// SaveWorkout creates a workout when workoutID is empty and updates it otherwise.
	SaveWorkout(ctx context.Context, workoutID, name, date string) (*domain.Workout, error)
	DeleteWorkout(ctx context.Context, workoutID string) error
}

// workoutService implements the WorkoutService interface.
type workoutService struct {
	workoutStore repository.WorkoutStore
}

func NewWorkoutService(workoutStore repository.WorkoutStore) WorkoutService {
	return &workoutService{workoutStore: workoutStore}
}

func (s *workoutService) ListWorkouts(ctx context.Context) ([]domain.Workout, error) {
	return s.workoutStore.List(ctx)
}

func (s *workoutService) GetWorkout(ctx context.Context, workoutID string) (*domain.Workout, error) {
	workout, err := s.workoutStore.Get(ctx, workoutID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return workout, nil
}

// SaveWorkout is the add/edit form: one entry point for both, keyed on whether an ID is present.
func (s *workoutService) SaveWorkout(ctx context.Context, workoutID, name, date string) (*domain.Workout, error) {
	if workoutID == "" {
		return s.workoutStore.Create(ctx, name, date)
	}

	found, err := s.workoutStore.Update(ctx, workoutID, name, date)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrWorkoutNotFound
	}
	return s.GetWorkout(ctx, workoutID)
}

// DeleteWorkout removes the workout and its exercises.
func (s *workoutService) DeleteWorkout(ctx context.Context, workoutID string) error {
	found, err := s.workoutStore.Delete(ctx, workoutID)
	if err != nil {
		return err
	}
	if !found {
		return ErrWorkoutNotFound
	}
	return nil
}
