package main

import (
	"alcyxob/fitness-tracker/internal/domain"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configDir string

	root := &cobra.Command{
		Use:           "fitnessctl",
		Short:         "Manage the local workout log",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configDir, "config", ".", "directory containing config.yaml")

	root.AddCommand(newWorkoutsCmd(&configDir))
	root.AddCommand(newExercisesCmd(&configDir))
	root.AddCommand(newStatsCmd(&configDir))
	root.AddCommand(newCalendarCmd(&configDir))
	root.AddCommand(newTokenCmd(&configDir))
	return root
}

// withApp loads the app for one command and closes its storage afterwards.
func withApp(cmd *cobra.Command, configDir string, fn func(ctx context.Context, a *app) error) (err error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	a, err := loadApp(ctx, configDir)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := a.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fn(ctx, a)
}

func newWorkoutsCmd(configDir *string) *cobra.Command {
	workouts := &cobra.Command{Use: "workouts", Short: "Workout commands"}

	workouts.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List workouts, most recent first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, *configDir, func(ctx context.Context, a *app) error {
				list, err := a.workouts.ListWorkouts(ctx)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), list)
			})
		},
	})

	var name, date string
	add := &cobra.Command{
		Use:   "add --name <name> [--date YYYY-MM-DD]",
		Short: "Create a workout, dated today unless --date is given",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, *configDir, func(ctx context.Context, a *app) error {
				w, err := a.workouts.SaveWorkout(ctx, "", name, dateOrToday(date))
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), w)
			})
		},
	}
	add.Flags().StringVar(&name, "name", "", "workout name")
	add.Flags().StringVar(&date, "date", "", "workout date (YYYY-MM-DD)")

	var updName, updDate string
	update := &cobra.Command{
		Use:   "update <id> --name <name> --date YYYY-MM-DD",
		Short: "Replace the name and date of a workout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, *configDir, func(ctx context.Context, a *app) error {
				w, err := a.workouts.SaveWorkout(ctx, args[0], updName, updDate)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), w)
			})
		},
	}
	update.Flags().StringVar(&updName, "name", "", "workout name")
	update.Flags().StringVar(&updDate, "date", "", "workout date (YYYY-MM-DD)")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a workout and its exercises",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, *configDir, func(ctx context.Context, a *app) error {
				if err := a.workouts.DeleteWorkout(ctx, args[0]); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
				return nil
			})
		},
	}

	workouts.AddCommand(add, update, del)
	return workouts
}

func newExercisesCmd(configDir *string) *cobra.Command {
	exercises := &cobra.Command{Use: "exercises", Short: "Exercise commands for one workout"}

	exercises.AddCommand(&cobra.Command{
		Use:   "list <workout-id>",
		Short: "List the exercises of a workout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, *configDir, func(ctx context.Context, a *app) error {
				list, err := a.exercise.ListExercises(ctx, args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), list)
			})
		},
	})

	var addFields domain.ExerciseFields
	add := &cobra.Command{
		Use:   "add <workout-id> --name <name> --sets <sets> --reps <reps>",
		Short: "Append an exercise to a workout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, *configDir, func(ctx context.Context, a *app) error {
				e, err := a.exercise.AddExercise(ctx, args[0], addFields)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), e)
			})
		},
	}
	exerciseFlags(add, &addFields)

	var updFields domain.ExerciseFields
	update := &cobra.Command{
		Use:   "update <workout-id> <exercise-id> --name <name> --sets <sets> --reps <reps>",
		Short: "Replace the fields of an exercise",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, *configDir, func(ctx context.Context, a *app) error {
				e, err := a.exercise.UpdateExercise(ctx, args[0], args[1], updFields)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), e)
			})
		},
	}
	exerciseFlags(update, &updFields)

	remove := &cobra.Command{
		Use:   "remove <workout-id> <exercise-id>",
		Short: "Remove an exercise from a workout",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, *configDir, func(ctx context.Context, a *app) error {
				if err := a.exercise.RemoveExercise(ctx, args[0], args[1]); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[1])
				return nil
			})
		},
	}

	exercises.AddCommand(add, update, remove)
	return exercises
}

func exerciseFlags(cmd *cobra.Command, fields *domain.ExerciseFields) {
	cmd.Flags().StringVar(&fields.Name, "name", "", "exercise name")
	cmd.Flags().StringVar(&fields.Sets, "sets", "", "sets, e.g. 3")
	cmd.Flags().StringVar(&fields.Reps, "reps", "", "reps, e.g. 10")
}

func newStatsCmd(configDir *string) *cobra.Command {
	var target int
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show workout and exercise statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if target < 0 {
				return fmt.Errorf("--target must be positive")
			}
			return withApp(cmd, *configDir, func(ctx context.Context, a *app) error {
				summary, err := a.stats.Summary(ctx, target)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), summary)
			})
		},
	}
	cmd.Flags().IntVar(&target, "target", 0, "monthly workout target (defaults to stats.monthly_target)")
	return cmd
}

func newCalendarCmd(configDir *string) *cobra.Command {
	var month string
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show the dates with workouts in a month",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, *configDir, func(ctx context.Context, a *app) error {
				days, err := a.stats.Calendar(ctx, month)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), days)
			})
		},
	}
	cmd.Flags().StringVar(&month, "month", "", "month as YYYY-MM (defaults to the current month)")
	return cmd
}

func newTokenCmd(configDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, *configDir, func(_ context.Context, a *app) error {
				token, err := a.tokens.IssueDeviceToken()
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), token)
				return nil
			})
		},
	}
}

func dateOrToday(date string) string {
	if strings.TrimSpace(date) == "" {
		return time.Now().Format(domain.DateLayout)
	}
	return date
}
