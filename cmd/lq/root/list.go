package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/R1S-dev/LifeQuest/internal/engine"
	"github.com/R1S-dev/LifeQuest/internal/ui"
)

func newListCmd() *cobra.Command {
	var taskType string
	var showDone bool
	var showOpen bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List quests",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			var filter engine.TaskType
			if taskType != "" {
				filter = engine.ParseTaskType(taskType)
			}

			out := cmd.OutOrStdout()
			shown := 0
			for _, t := range app.svc.State().Tasks {
				if filter != "" && t.Type != filter {
					continue
				}
				if showDone && !t.IsCompleted {
					continue
				}
				if showOpen && t.IsCompleted {
					continue
				}
				shown++

				line := fmt.Sprintf("%s %s %s %s %s",
					ui.CompletionMark(t.IsCompleted),
					ui.Muted.Render("#"+ui.ShortID(t.ID)),
					ui.TypeIcon(t.Type),
					t.Title,
					ui.Muted.Render(fmt.Sprintf("· %s · %s · +%d XP", t.Category, t.Difficulty, t.XP)))
				if r := ui.RepeatLabel(t.Repeat); r != "" {
					line += " " + ui.Muted.Render(r)
				}
				if t.DueAt != nil {
					line += " " + ui.Warn.Render(fmt.Sprintf("%s %02d:%02d", ui.IconBell, t.DueAt.Hour(), t.DueAt.Minute()))
				}
				fmt.Fprintln(out, line)
			}

			if shown == 0 {
				fmt.Fprintln(out, ui.Muted.Render("no quests, try 'lq add'"))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&taskType, "type", "t", "", "Filter by track (main|side)")
	cmd.Flags().BoolVar(&showDone, "done", false, "Only completed quests")
	cmd.Flags().BoolVar(&showOpen, "open", false, "Only open quests")

	return cmd
}
