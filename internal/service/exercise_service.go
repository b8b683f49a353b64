package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"errors"
)

// --- Error Definitions ---
var (
	ErrExerciseNotFound = errors.New("exercise not found")
)

type ExerciseService interface {
	ListExercises(ctx context.Context, workoutID string) ([]domain.Exercise, error)
	AddExercise(ctx context.Context, workoutID string, fields domain.ExerciseFields) (*domain.Exercise, error)
	UpdateExercise(ctx context.Context, workoutID, exerciseID string, fields domain.ExerciseFields) (*domain.Exercise, error)
	RemoveExercise(ctx context.Context, workoutID, exerciseID string) error
}

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	workoutStore  repository.WorkoutStore
	exerciseStore repository.ExerciseStore
}

func NewExerciseService(workoutStore repository.WorkoutStore, exerciseStore repository.ExerciseStore) ExerciseService {
	return &exerciseService{
		workoutStore:  workoutStore,
		exerciseStore: exerciseStore,
	}
}

// requireWorkout keeps callers from creating exercise lists for workouts that do not exist.
func (s *exerciseService) requireWorkout(ctx context.Context, workoutID string) error {
	_, err := s.workoutStore.Get(ctx, workoutID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrWorkoutNotFound
	}
	return err
}

func (s *exerciseService) ListExercises(ctx context.Context, workoutID string) ([]domain.Exercise, error) {
	if err := s.requireWorkout(ctx, workoutID); err != nil {
		return nil, err
	}
	return s.exerciseStore.List(ctx, workoutID)
}

func (s *exerciseService) AddExercise(ctx context.Context, workoutID string, fields domain.ExerciseFields) (*domain.Exercise, error) {
	// Validate first so a bad form never costs a storage round trip.
	if _, err := fields.Normalize(); err != nil {
		return nil, err
	}
	if err := s.requireWorkout(ctx, workoutID); err != nil {
		return nil, err
	}
	return s.exerciseStore.Add(ctx, workoutID, fields)
}

func (s *exerciseService) UpdateExercise(ctx context.Context, workoutID, exerciseID string, fields domain.ExerciseFields) (*domain.Exercise, error) {
	found, err := s.exerciseStore.Update(ctx, workoutID, exerciseID, fields)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrExerciseNotFound
	}

	exercises, err := s.exerciseStore.List(ctx, workoutID)
	if err != nil {
		return nil, err
	}
	for i := range exercises {
		if exercises[i].ID == exerciseID {
			return &exercises[i], nil
		}
	}
	// Removed between the update and the read.
	return nil, ErrExerciseNotFound
}

func (s *exerciseService) RemoveExercise(ctx context.Context, workoutID, exerciseID string) error {
	found, err := s.exerciseStore.Remove(ctx, workoutID, exerciseID)
	if err != nil {
		return err
	}
	if !found {
		return ErrExerciseNotFound
	}
	return nil
}
