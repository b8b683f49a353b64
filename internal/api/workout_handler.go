package api

import (
	"alcyxob/fitness-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// WorkoutHandler holds the workout service dependency.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// WorkoutRequest is the body of create and update calls.
// Emptiness is checked by the domain so the user gets the same message everywhere.
type WorkoutRequest struct {
	Name string `json:"name"`
	Date string `json:"date"` // YYYY-MM-DD
}

// ListWorkouts godoc
// @Summary List workouts, most recent first
// @Tags Workouts
// @Produce json
// @Success 200 {array} domain.Workout
// @Router /workouts [get]
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	workouts, err := h.workoutService.ListWorkouts(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to retrieve workouts.")
		return
	}
	c.JSON(http.StatusOK, workouts)
}

// GetWorkout godoc
// @Summary Get one workout
// @Tags Workouts
// @Produce json
// @Param workoutId path string true "Workout ID"
// @Success 200 {object} domain.Workout
// @Failure 404 {object} gin.H
// @Router /workouts/{workoutId} [get]
func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	workout, err := h.workoutService.GetWorkout(c.Request.Context(), c.Param("workoutId"))
	if err != nil {
		respondError(c, err, "Failed to retrieve workout.")
		return
	}
	c.JSON(http.StatusOK, workout)
}

// CreateWorkout godoc
// @Summary Create a workout
// @Tags Workouts
// @Accept json
// @Produce json
// @Param workout body WorkoutRequest true "Workout"
// @Success 201 {object} domain.Workout
// @Failure 400 {object} gin.H
// @Router /workouts [post]
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	var req WorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	workout, err := h.workoutService.SaveWorkout(c.Request.Context(), "", req.Name, req.Date)
	if err != nil {
		respondError(c, err, "Failed to save workout.")
		return
	}
	c.JSON(http.StatusCreated, workout)
}

// UpdateWorkout godoc
// @Summary Rename or re-date a workout
// @Tags Workouts
// @Accept json
// @Produce json
// @Param workoutId path string true "Workout ID"
// @Param workout body WorkoutRequest true "Workout"
// @Success 200 {object} domain.Workout
// @Failure 400 {object} gin.H
// @Failure 404 {object} gin.H
// @Router /workouts/{workoutId} [put]
func (h *WorkoutHandler) UpdateWorkout(c *gin.Context) {
	var req WorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	workout, err := h.workoutService.SaveWorkout(c.Request.Context(), c.Param("workoutId"), req.Name, req.Date)
	if err != nil {
		respondError(c, err, "Failed to save workout.")
		return
	}
	c.JSON(http.StatusOK, workout)
}

// DeleteWorkout godoc
// @Summary Delete a workout and all of its exercises
// @Tags Workouts
// @Param workoutId path string true "Workout ID"
// @Success 204
// @Failure 404 {object} gin.H
// @Router /workouts/{workoutId} [delete]
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	if err := h.workoutService.DeleteWorkout(c.Request.Context(), c.Param("workoutId")); err != nil {
		respondError(c, err, "Failed to delete workout.")
		return
	}
	c.Status(http.StatusNoContent)
}
