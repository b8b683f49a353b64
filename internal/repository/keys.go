package repository

// WorkoutsKey holds the JSON array of all workouts.
const WorkoutsKey = "workouts"

const exercisesKeyPrefix = "exercises_"

// ExercisesKey is the key of a workout's exercise list.
func ExercisesKey(workoutID string) string {
	return exercisesKeyPrefix + workoutID
}
