package api

import (
	"alcyxob/fitness-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers every endpoint. An empty jwtSecret leaves the API open,
// which is the normal setup for a server bound to localhost on the device.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	workoutService service.WorkoutService,
	exerciseService service.ExerciseService,
	statsService service.StatsService,
) {
	workoutHandler := NewWorkoutHandler(workoutService)
	exerciseHandler := NewExerciseHandler(exerciseService)
	statsHandler := NewStatsHandler(statsService)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	if jwtSecret != "" {
		apiV1.Use(AuthMiddleware(jwtSecret))
	}

	// --- Workout Routes ---
	workoutGroup := apiV1.Group("/workouts")
	{
		workoutGroup.GET("", workoutHandler.ListWorkouts)
		workoutGroup.POST("", workoutHandler.CreateWorkout)
		workoutGroup.GET("/:workoutId", workoutHandler.GetWorkout)
		workoutGroup.PUT("/:workoutId", workoutHandler.UpdateWorkout)
		workoutGroup.DELETE("/:workoutId", workoutHandler.DeleteWorkout)

		// --- Exercises of one workout ---
		workoutGroup.GET("/:workoutId/exercises", exerciseHandler.ListExercises)
		workoutGroup.POST("/:workoutId/exercises", exerciseHandler.AddExercise)
		workoutGroup.PUT("/:workoutId/exercises/:exerciseId", exerciseHandler.UpdateExercise)
		workoutGroup.DELETE("/:workoutId/exercises/:exerciseId", exerciseHandler.RemoveExercise)
	}

	apiV1.GET("/stats", statsHandler.GetSummary)
	apiV1.GET("/calendar", statsHandler.GetCalendar)
}
