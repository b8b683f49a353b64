package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"alcyxob/fitness-tracker/internal/service"
	"alcyxob/fitness-tracker/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/juju/clock/testclock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(t *testing.T, kv storage.KV, secret string) *gin.Engine {
	t.Helper()
	exerciseStore := repository.NewExerciseStore(kv)
	workoutStore := repository.NewWorkoutStore(kv, exerciseStore)
	clk := testclock.NewClock(time.Date(2024, time.April, 20, 0, 0, 0, 0, time.UTC))

	router := gin.New()
	SetupRoutes(router, secret,
		service.NewWorkoutService(workoutStore),
		service.NewExerciseService(workoutStore, exerciseStore),
		service.NewStatsService(workoutStore, exerciseStore, clk, 12),
	)
	return router
}

func do(t *testing.T, router http.Handler, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestWorkoutEndpoints(t *testing.T) {
	router := newRouter(t, storage.NewMemoryKV(), "")

	rec := do(t, router, http.MethodGet, "/api/v1/workouts", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = do(t, router, http.MethodPost, "/api/v1/workouts", WorkoutRequest{Name: "A", Date: "2024-04-14"})
	require.Equal(t, http.StatusCreated, rec.Code)
	a := decode[domain.Workout](t, rec)

	rec = do(t, router, http.MethodPost, "/api/v1/workouts", WorkoutRequest{Name: "B", Date: "2024-04-15"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/v1/workouts", nil)
	list := decode[[]domain.Workout](t, rec)
	require.Len(t, list, 2)
	assert.Equal(t, "B", list[0].Name)
	assert.Equal(t, "A", list[1].Name)

	rec = do(t, router, http.MethodPost, "/api/v1/workouts", WorkoutRequest{Name: "  ", Date: "2024-04-15"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodPut, "/api/v1/workouts/"+a.ID, WorkoutRequest{Name: "A2", Date: "2024-04-16"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.Workout{ID: a.ID, Name: "A2", Date: "2024-04-16"}, decode[domain.Workout](t, rec))

	rec = do(t, router, http.MethodGet, "/api/v1/workouts/"+a.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, http.MethodPut, "/api/v1/workouts/missing", WorkoutRequest{Name: "X", Date: "2024-04-16"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"workout not found","found":false}`, rec.Body.String())

	rec = do(t, router, http.MethodDelete, "/api/v1/workouts/"+a.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(t, router, http.MethodDelete, "/api/v1/workouts/"+a.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/v1/workouts/"+a.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExerciseEndpoints(t *testing.T) {
	router := newRouter(t, storage.NewMemoryKV(), "")

	rec := do(t, router, http.MethodPost, "/api/v1/workouts", WorkoutRequest{Name: "Push", Date: "2024-04-14"})
	require.Equal(t, http.StatusCreated, rec.Code)
	w := decode[domain.Workout](t, rec)
	base := "/api/v1/workouts/" + w.ID + "/exercises"

	rec = do(t, router, http.MethodPost, base, ExerciseRequest{Name: "Bench", Sets: "3", Reps: "10"})
	require.Equal(t, http.StatusCreated, rec.Code)
	bench := decode[domain.Exercise](t, rec)

	rec = do(t, router, http.MethodPost, base, ExerciseRequest{Name: "Squat", Sets: "4", Reps: "8"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, router, http.MethodPost, base, ExerciseRequest{Name: "Row"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[[]domain.Exercise](t, rec)
	require.Len(t, list, 2)
	assert.Equal(t, "Bench", list[0].Name)
	assert.Equal(t, "Squat", list[1].Name)

	rec = do(t, router, http.MethodPut, base+"/"+bench.ID, ExerciseRequest{Name: "Bench", Sets: "5", Reps: "5"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "5", decode[domain.Exercise](t, rec).Sets)

	rec = do(t, router, http.MethodDelete, base+"/"+bench.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(t, router, http.MethodDelete, base+"/"+bench.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, router, http.MethodPost, "/api/v1/workouts/missing/exercises", ExerciseRequest{Name: "Bench", Sets: "3", Reps: "10"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStatsEndpoints(t *testing.T) {
	router := newRouter(t, storage.NewMemoryKV(), "")

	rec := do(t, router, http.MethodPost, "/api/v1/workouts", WorkoutRequest{Name: "Push", Date: "2024-04-14"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/v1/stats?target=4", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	summary := decode[domain.Summary](t, rec)
	assert.Equal(t, 1, summary.MonthWorkouts)
	assert.Equal(t, 25, summary.ProgressPercent)

	rec = do(t, router, http.MethodGet, "/api/v1/stats?target=abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/v1/calendar?month=2024-04", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"date":"2024-04-14","workouts":1}]`, rec.Body.String())

	rec = do(t, router, http.MethodGet, "/api/v1/calendar?month=04-2024", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

type brokenKV struct{ storage.MemoryKV }

func (b *brokenKV) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("io error")
}

func TestStorageFailureIs500(t *testing.T) {
	router := newRouter(t, &brokenKV{}, "")

	rec := do(t, router, http.MethodGet, "/api/v1/workouts", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to retrieve workouts."}`, rec.Body.String())
}

func TestAuthMiddleware(t *testing.T) {
	router := newRouter(t, storage.NewMemoryKV(), "s3cret")

	rec := do(t, router, http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusOK, rec.Code, "ping is public")

	rec = do(t, router, http.MethodGet, "/api/v1/workouts", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/v1/workouts", nil, "Authorization", "Token abc")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	wrong, err := service.NewTokenService("other", time.Hour, nil).IssueDeviceToken()
	require.NoError(t, err)
	rec = do(t, router, http.MethodGet, "/api/v1/workouts", nil, "Authorization", "Bearer "+wrong)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token, err := service.NewTokenService("s3cret", time.Hour, nil).IssueDeviceToken()
	require.NoError(t, err)
	rec = do(t, router, http.MethodGet, "/api/v1/workouts", nil, "Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
}
