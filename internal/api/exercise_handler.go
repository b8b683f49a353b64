package api

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ExerciseHandler holds the exercise service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// ExerciseRequest defines the expected JSON for adding or editing an exercise.
type ExerciseRequest struct {
	Name string `json:"name"`
	Sets string `json:"sets"`
	Reps string `json:"reps"`
}

func (r ExerciseRequest) fields() domain.ExerciseFields {
	return domain.ExerciseFields{Name: r.Name, Sets: r.Sets, Reps: r.Reps}
}

// ListExercises godoc
// @Summary List the exercises of a workout in the order they were added
// @Tags Exercises
// @Produce json
// @Param workoutId path string true "Workout ID"
// @Success 200 {array} domain.Exercise
// @Router /workouts/{workoutId}/exercises [get]
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	exercises, err := h.exerciseService.ListExercises(c.Request.Context(), c.Param("workoutId"))
	if err != nil {
		respondError(c, err, "Failed to retrieve exercises.")
		return
	}
	c.JSON(http.StatusOK, exercises)
}

// AddExercise godoc
// @Summary Add an exercise to a workout
// @Tags Exercises
// @Accept json
// @Produce json
// @Param workoutId path string true "Workout ID"
// @Param exercise body ExerciseRequest true "Exercise"
// @Success 201 {object} domain.Exercise
// @Failure 400 {object} gin.H
// @Failure 404 {object} gin.H
// @Router /workouts/{workoutId}/exercises [post]
func (h *ExerciseHandler) AddExercise(c *gin.Context) {
	var req ExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	exercise, err := h.exerciseService.AddExercise(c.Request.Context(), c.Param("workoutId"), req.fields())
	if err != nil {
		respondError(c, err, "Failed to add exercise.")
		return
	}
	c.JSON(http.StatusCreated, exercise)
}

// UpdateExercise godoc
// @Summary Edit an exercise in place
// @Tags Exercises
// @Accept json
// @Produce json
// @Param workoutId path string true "Workout ID"
// @Param exerciseId path string true "Exercise ID"
// @Param exercise body ExerciseRequest true "Exercise"
// @Success 200 {object} domain.Exercise
// @Failure 400 {object} gin.H
// @Failure 404 {object} gin.H
// @Router /workouts/{workoutId}/exercises/{exerciseId} [put]
func (h *ExerciseHandler) UpdateExercise(c *gin.Context) {
	var req ExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	exercise, err := h.exerciseService.UpdateExercise(c.Request.Context(), c.Param("workoutId"), c.Param("exerciseId"), req.fields())
	if err != nil {
		respondError(c, err, "Failed to update exercise.")
		return
	}
	c.JSON(http.StatusOK, exercise)
}

// RemoveExercise godoc
// @Summary Remove an exercise from a workout
// @Tags Exercises
// @Param workoutId path string true "Workout ID"
// @Param exerciseId path string true "Exercise ID"
// @Success 204
// @Failure 404 {object} gin.H
// @Router /workouts/{workoutId}/exercises/{exerciseId} [delete]
func (h *ExerciseHandler) RemoveExercise(c *gin.Context) {
	if err := h.exerciseService.RemoveExercise(c.Request.Context(), c.Param("workoutId"), c.Param("exerciseId")); err != nil {
		respondError(c, err, "Failed to remove exercise.")
		return
	}
	c.Status(http.StatusNoContent)
}
