package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/R1S-dev/LifeQuest/internal/ui"
)

func newDoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <id>",
		Short: "Toggle a quest's completion",
		Long: `Toggle a quest between done and not done.

Completing a quest grants its XP and advances the daily streak.
Toggling it back refunds the XP but keeps streak and achievements:
progress only ratchets forward.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
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

			id, err := resolveTaskID(app.svc, args[0])
			if err != nil {
				return err
			}
			if id == "" {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("no quest matches "+args[0]))
				return nil
			}

			res := app.svc.ToggleTask(id)
			if res == nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("no quest matches "+args[0]))
				return nil
			}

			out := cmd.OutOrStdout()
			if res.Completed {
				line := fmt.Sprintf("%s %s %s", ui.Good.Render(ui.IconDone+" Completed"), res.Task.Title,
					ui.Muted.Render(fmt.Sprintf("(+%d XP)", res.XPDelta)))
				fmt.Fprintln(out, line)
				if res.BonusXP > 0 {
					fmt.Fprintf(out, "%s streak %d, bonus +%d XP\n", ui.Gold.Render(ui.IconStreak), res.StreakAfter, res.BonusXP)
				}
			} else {
				fmt.Fprintf(out, "%s %s %s\n", ui.Warn.Render("↩ Undone"), res.Task.Title,
					ui.Muted.Render(fmt.Sprintf("(%d XP)", res.XPDelta)))
			}

			fmt.Fprintln(out, ui.LabelValue("Total XP", res.TotalXP))
			if res.LevelUp {
				fmt.Fprintf(out, "%s %s level %d → %d\n", ui.BadgeLevelUp, ui.IconSparkle, res.LevelBefore, res.LevelAfter)
				app.svc.MarkLevelSeen(res.LevelAfter)
			}
			for _, a := range res.Unlocked {
				fmt.Fprintf(out, "%s %s %s · %s\n", ui.Gold.Render(ui.IconTrophy+" Unlocked"), a.Icon, a.Name, ui.Muted.Render(a.Description))
			}
			return nil
		},
	}

	return cmd
}
