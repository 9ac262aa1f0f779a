package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/R1S-dev/LifeQuest/internal/engine"
	"github.com/R1S-dev/LifeQuest/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show level, XP, streak and achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			st := app.svc.State()
			b := engine.BreakdownXP(st.TotalXP)
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, st.Profile.Name))
			fmt.Fprintln(out, ui.LabelValue("Level", b.Level))
			fmt.Fprintf(out, "%s %s %s\n",
				ui.Key.Render("XP:"),
				ui.XPBar(b.Progress, 24),
				ui.Muted.Render(fmt.Sprintf("%d/%d in band · %d total", b.XPIntoLevel, b.XPForThisLevel, st.TotalXP)))
			fmt.Fprintf(out, "%s %s %d day(s)\n", ui.Key.Render("Streak:"), ui.Gold.Render(ui.IconStreak), st.DailyStreak)
			if b.Level > st.LastLevelSeen {
				fmt.Fprintf(out, "%s reached level %d!\n", ui.BadgeLevelUp, b.Level)
				app.svc.MarkLevelSeen(b.Level)
			}
			fmt.Fprintln(out, "")

			open, done := 0, 0
			for _, t := range st.Tasks {
				if t.IsCompleted {
					done++
				} else {
					open++
				}
			}
			fmt.Fprintln(out, ui.H2.Render("🎯 Quests"))
			fmt.Fprintf(out, "- %s %d open, %d done\n", ui.Key.Render("Board:"), open, done)

			stats := app.svc.JournalStatsAt(time.Now())
			fmt.Fprintf(out, "- %s %d entries, %d-day streak\n", ui.Key.Render(ui.IconJournal+" Journal:"), stats.Total, stats.DayStreak)
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconTrophy+" Achievements"))
			for _, a := range engine.Catalog {
				if st.HasAchievement(a.ID) {
					fmt.Fprintf(out, "- %s %s %s\n", a.Icon, ui.Good.Render(a.Name), ui.Muted.Render(a.Description))
				} else {
					fmt.Fprintf(out, "- %s %s\n", ui.Muted.Render("🔒 "+a.Name), ui.Muted.Render(a.Description))
				}
			}
			return nil
		},
	}

	return cmd
}
