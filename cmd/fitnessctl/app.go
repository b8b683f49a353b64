package main

import (
	"alcyxob/fitness-tracker/internal/config"
	"alcyxob/fitness-tracker/internal/logging"
	"alcyxob/fitness-tracker/internal/repository"
	"alcyxob/fitness-tracker/internal/service"
	"alcyxob/fitness-tracker/internal/storage"
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/juju/clock"
	"github.com/sirupsen/logrus"
)

// app is the wiring for one CLI invocation.
type app struct {
	cfg      config.Config
	kv       storage.KV
	workouts service.WorkoutService
	exercise service.ExerciseService
	stats    service.StatsService
	tokens   service.TokenService
}

func loadApp(ctx context.Context, configDir string) (*app, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, err
	}
	// Results go to stdout, so logs must not.
	cfg.Log.Stdout = false
	logging.Setup(cfg.Log)
	if cfg.Log.File == "" {
		logrus.SetOutput(os.Stderr)
	}

	kv, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		return nil, err
	}

	exerciseStore := repository.NewExerciseStore(kv)
	workoutStore := repository.NewWorkoutStore(kv, exerciseStore)
	return &app{
		cfg:      cfg,
		kv:       kv,
		workouts: service.NewWorkoutService(workoutStore),
		exercise: service.NewExerciseService(workoutStore, exerciseStore),
		stats:    service.NewStatsService(workoutStore, exerciseStore, clock.WallClock, cfg.Stats.MonthlyTarget),
		tokens:   service.NewTokenService(cfg.Auth.Secret, cfg.Auth.Expiration, clock.WallClock),
	}, nil
}

func (a *app) Close() error {
	return a.kv.Close()
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
