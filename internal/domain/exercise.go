package domain

import "strings"

// Exercise is a single named movement with a sets count and a reps count.
// It belongs to exactly one Workout; its ID is unique only within that workout.
// Sets and Reps are kept as free text, the way the user typed them.
type Exercise struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Sets string `json:"sets"`
	Reps string `json:"reps"`
}

// ExerciseFields holds the user-editable part of an Exercise.
type ExerciseFields struct {
	Name string
	Sets string
	Reps string
}

// Normalize trims every field and checks that none of them is empty.
func (f ExerciseFields) Normalize() (ExerciseFields, error) {
	out := ExerciseFields{
		Name: strings.TrimSpace(f.Name),
		Sets: strings.TrimSpace(f.Sets),
		Reps: strings.TrimSpace(f.Reps),
	}
	switch {
	case out.Name == "":
		return ExerciseFields{}, &ValidationError{Field: "name", Reason: "must not be empty"}
	case out.Sets == "":
		return ExerciseFields{}, &ValidationError{Field: "sets", Reason: "must not be empty"}
	case out.Reps == "":
		return ExerciseFields{}, &ValidationError{Field: "reps", Reason: "must not be empty"}
	}
	return out, nil
}
