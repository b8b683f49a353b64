package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"alcyxob/fitness-tracker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("STORAGE_DRIVER", "sqlite")
	t.Setenv("STORAGE_SQLITE_PATH", filepath.Join(dir, "fitness.db"))
	t.Setenv("AUTH_SECRET", "cli-secret")
	return dir
}

func run(t *testing.T, configDir string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", configDir}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestWorkoutAndExerciseCommands(t *testing.T) {
	dir := setupEnv(t)

	out, err := run(t, dir, "workouts", "add", "--name", "Push", "--date", "2024-04-14")
	require.NoError(t, err)
	var w domain.Workout
	require.NoError(t, json.Unmarshal([]byte(out), &w))
	assert.Equal(t, "Push", w.Name)
	assert.NotEmpty(t, w.ID)

	out, err = run(t, dir, "exercises", "add", w.ID, "--name", "Bench", "--sets", "3", "--reps", "10")
	require.NoError(t, err)
	var e domain.Exercise
	require.NoError(t, json.Unmarshal([]byte(out), &e))

	out, err = run(t, dir, "exercises", "list", w.ID)
	require.NoError(t, err)
	var list []domain.Exercise
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	assert.Equal(t, []domain.Exercise{e}, list)

	out, err = run(t, dir, "workouts", "update", w.ID, "--name", "Push day", "--date", "2024-04-15")
	require.NoError(t, err)
	assert.Contains(t, out, "Push day")

	_, err = run(t, dir, "exercises", "remove", w.ID, e.ID)
	require.NoError(t, err)
	_, err = run(t, dir, "exercises", "remove", w.ID, e.ID)
	assert.Error(t, err)

	_, err = run(t, dir, "workouts", "delete", w.ID)
	require.NoError(t, err)

	out, err = run(t, dir, "workouts", "list")
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(out))
}

func TestAddWorkoutValidation(t *testing.T) {
	dir := setupEnv(t)

	_, err := run(t, dir, "workouts", "add", "--date", "2024-04-14")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidationFailed)
}

func TestCalendarRejectsBadMonth(t *testing.T) {
	dir := setupEnv(t)

	_, err := run(t, dir, "calendar", "--month", "April")
	assert.Error(t, err)
}

func TestTokenCommand(t *testing.T) {
	dir := setupEnv(t)

	out, err := run(t, dir, "token")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "."), 3)
}
