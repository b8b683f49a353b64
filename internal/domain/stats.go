package domain

// Summary is the aggregate view shown on the stats screen.
type Summary struct {
	TotalWorkouts   int     `json:"totalWorkouts"`
	LastWorkoutDate string  `json:"lastWorkoutDate,omitempty"`
	MonthWorkouts   int     `json:"monthWorkouts"`
	MonthlyTarget   int     `json:"monthlyTarget"`
	Progress        float64 `json:"progress"` // 0..1
	ProgressPercent int     `json:"progressPercent"`

	TotalExercises   int    `json:"totalExercises"`
	MostUsedExercise string `json:"mostUsedExercise,omitempty"`
	TotalSets        int    `json:"totalSets"`
	TotalReps        int    `json:"totalReps"`
	MostSets         int    `json:"mostSets"`
	MostReps         int    `json:"mostReps"`
}

// CalendarDay marks a date that has at least one workout.
type CalendarDay struct {
	Date     string `json:"date"`
	Workouts int    `json:"workouts"`
}
