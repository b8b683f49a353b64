package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"errors"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/juju/clock"
)

const monthLayout = "2006-01"

var ErrInvalidMonth = errors.New("month must be formatted as YYYY-MM")

type StatsService interface {
	// Summary aggregates all stored workouts and exercises. target <= 0 uses the configured default.
	Summary(ctx context.Context, target int) (*domain.Summary, error)
	// Calendar lists the dates in month ("YYYY-MM", empty for the current month) that have workouts.
	Calendar(ctx context.Context, month string) ([]domain.CalendarDay, error)
}

type statsService struct {
	workoutStore  repository.WorkoutStore
	exerciseStore repository.ExerciseStore
	clock         clock.Clock
	defaultTarget int
}

func NewStatsService(workoutStore repository.WorkoutStore, exerciseStore repository.ExerciseStore, clk clock.Clock, defaultTarget int) StatsService {
	if clk == nil {
		clk = clock.WallClock
	}
	return &statsService{
		workoutStore:  workoutStore,
		exerciseStore: exerciseStore,
		clock:         clk,
		defaultTarget: defaultTarget,
	}
}

func (s *statsService) Summary(ctx context.Context, target int) (*domain.Summary, error) {
	if target <= 0 {
		target = s.defaultTarget
	}

	workouts, err := s.workoutStore.List(ctx)
	if err != nil {
		return nil, err
	}

	summary := &domain.Summary{
		TotalWorkouts: len(workouts),
		MonthlyTarget: target,
	}

	thisMonth := s.clock.Now().Format(monthLayout)
	for _, w := range workouts {
		if w.Date > summary.LastWorkoutDate {
			summary.LastWorkoutDate = w.Date
		}
		if strings.HasPrefix(w.Date, thisMonth) {
			summary.MonthWorkouts++
		}
	}
	summary.Progress, summary.ProgressPercent = progress(summary.MonthWorkouts, target)

	// Stored newest first; walk oldest first so ties go to the first recorded name.
	usage := newUsageCounter()
	for i := len(workouts) - 1; i >= 0; i-- {
		w := workouts[i]
		exercises, err := s.exerciseStore.List(ctx, w.ID)
		if err != nil {
			return nil, err
		}
		for _, ex := range exercises {
			summary.TotalExercises++
			usage.add(ex.Name)

			if sets, ok := parseCount(ex.Sets); ok {
				summary.TotalSets += sets
				summary.MostSets = max(summary.MostSets, sets)
			}
			if reps, ok := parseCount(ex.Reps); ok {
				summary.TotalReps += reps
				summary.MostReps = max(summary.MostReps, reps)
			}
		}
	}
	summary.MostUsedExercise = usage.top()

	return summary, nil
}

func (s *statsService) Calendar(ctx context.Context, month string) ([]domain.CalendarDay, error) {
	if month == "" {
		month = s.clock.Now().Format(monthLayout)
	} else if _, err := time.Parse(monthLayout, month); err != nil {
		return nil, ErrInvalidMonth
	}

	workouts, err := s.workoutStore.List(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, w := range workouts {
		if strings.HasPrefix(w.Date, month+"-") {
			counts[w.Date]++
		}
	}

	days := make([]domain.CalendarDay, 0, len(counts))
	for date, n := range counts {
		days = append(days, domain.CalendarDay{Date: date, Workouts: n})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days, nil
}

// progress returns done/target capped at 1, and the same as a rounded percentage.
func progress(done, target int) (float64, int) {
	if target <= 0 {
		return 0, 0
	}
	p := math.Min(float64(done)/float64(target), 1)
	return p, int(math.Round(p * 100))
}

// parseCount reads a sets/reps field; free text like "max" or "8-12" is not counted.
func parseCount(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// usageCounter counts exercise names case-insensitively, remembering first-seen order.
type usageCounter struct {
	counts  map[string]int
	display map[string]string
	order   []string
}

func newUsageCounter() *usageCounter {
	return &usageCounter{
		counts:  make(map[string]int),
		display: make(map[string]string),
	}
}

func (u *usageCounter) add(name string) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return
	}
	if _, seen := u.counts[key]; !seen {
		u.display[key] = strings.TrimSpace(name)
		u.order = append(u.order, key)
	}
	u.counts[key]++
}

// top returns the most used name; ties go to the one seen first.
func (u *usageCounter) top() string {
	best := ""
	for _, key := range u.order {
		if best == "" || u.counts[key] > u.counts[best] {
			best = key
		}
	}
	return u.display[best]
}
