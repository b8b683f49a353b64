package domain

import (
	"strings"
	"time"
)

// DateLayout is the calendar date format used for Workout.Date ("YYYY-MM-DD").
const DateLayout = "2006-01-02"

// Workout represents a single named, dated training session.
// Exercises are not stored inline; they live in a separate collection keyed by the workout ID.
type Workout struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Date string `json:"date"` // YYYY-MM-DD
}

// NewWorkoutInput normalizes and validates the user-editable workout fields.
// It returns the trimmed name on success.
func NewWorkoutInput(name, date string) (string, string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", "", &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	date = strings.TrimSpace(date)
	if _, err := ParseDate(date); err != nil {
		return "", "", &ValidationError{Field: "date", Reason: "must be a YYYY-MM-DD calendar date"}
	}
	return trimmed, date, nil
}

// ParseDate parses a YYYY-MM-DD date string in UTC.
func ParseDate(date string) (time.Time, error) {
	return time.Parse(DateLayout, date)
}
