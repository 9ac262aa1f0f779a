package root

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/R1S-dev/LifeQuest/internal/engine"
	"github.com/R1S-dev/LifeQuest/internal/ui"
)

func newAddCmd() *cobra.Command {
	var taskType string
	var category string
	var diff string
	var xp int
	var repeat string
	var due string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a quest",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			in := engine.CreateTaskInput{
				Title:      args[0],
				Category:   category,
				Type:       engine.ParseTaskType(taskType),
				Difficulty: engine.ParseDifficulty(diff),
				Repeat:     engine.ParseRepeat(repeat),
			}
			if cmd.Flags().Changed("xp") {
				in.XP = &xp
			}
			if due != "" {
				at, err := parseDueClock(due)
				if err != nil {
					return err
				}
				in.DueAt = &at
			}

			task := app.svc.CreateTask(in)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n",
				ui.Good.Render(ui.IconSparkle+" Added"),
				ui.TypeIcon(task.Type),
				task.Title,
				ui.Muted.Render(fmt.Sprintf("(#%s, %s, +%d XP)", ui.ShortID(task.ID), task.Difficulty, task.XP)))
			if task.Repeat != engine.RepeatNone {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("  repeats "+string(task.Repeat)))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&taskType, "type", "t", "main", "Quest track (main|side)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Category label")
	cmd.Flags().StringVarP(&diff, "diff", "d", "easy", "Difficulty (easy|medium|hard)")
	cmd.Flags().IntVarP(&xp, "xp", "x", 0, "Override the difficulty XP value")
	cmd.Flags().StringVarP(&repeat, "repeat", "r", "none", "Recurrence (none|daily|weekly)")
	cmd.Flags().StringVar(&due, "due", "", "Due time of day, HH:MM")

	return cmd
}

// parseDueClock accepts HH:MM and anchors it to today; the notifier
// only ever reads the clock part.
func parseDueClock(s string) (time.Time, error) {
	parsed, err := time.ParseInLocation("15:04", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("due time must be HH:MM, got %q", s)
	}
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, time.Local), nil
}
