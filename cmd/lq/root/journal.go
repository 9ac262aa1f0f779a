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

func newJournalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Mood journal",
	}
	cmd.AddCommand(
		newJournalAddCmd(),
		newJournalListCmd(),
		newJournalRmCmd(),
		newJournalStatsCmd(),
	)
	return cmd
}

func newJournalAddCmd() *cobra.Command {
	var intensity int
	var note string

	cmd := &cobra.Command{
		Use:   "add <mood>",
		Short: "Log a mood (happy|calm|excited|stressed|sad)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("mood is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			mood, ok := engine.ParseMood(args[0])
			if !ok {
				return fmt.Errorf("unknown mood %q (happy|calm|excited|stressed|sad)", args[0])
			}

			ctx := context.Background()
			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			entry, err := app.svc.AddJournalEntry(engine.AddJournalInput{
				Mood:      mood,
				Intensity: intensity,
				Note:      note,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n",
				ui.Good.Render(ui.IconJournal+" Logged"),
				ui.MoodIcon(entry.Mood),
				entry.Mood,
				ui.Muted.Render(fmt.Sprintf("(intensity %d/5, #%s)", entry.Intensity, ui.ShortID(entry.ID))))
			return nil
		},
	}

	cmd.Flags().IntVarP(&intensity, "intensity", "i", engine.DefaultIntensity, "Intensity (1-5)")
	cmd.Flags().StringVarP(&note, "note", "n", "", "Optional note")

	return cmd
}

func newJournalListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List journal entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			entries := app.svc.State().Journal
			if len(entries) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("no entries yet, try 'lq journal add happy'"))
				return nil
			}
			for _, e := range entries {
				line := fmt.Sprintf("%s %s %s %s %s",
					ui.Muted.Render("#"+ui.ShortID(e.ID)),
					ui.MoodIcon(e.Mood),
					e.Mood,
					ui.Muted.Render(fmt.Sprintf("%d/5", e.Intensity)),
					ui.Muted.Render(e.CreatedAt.Format("Mon 02 Jan 15:04")))
				if e.Note != "" {
					line += " · " + e.Note
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
	return cmd
}

func newJournalRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a journal entry",
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

			id := resolveJournalID(app.svc, args[0])
			if id == "" || !app.svc.RemoveJournalEntry(id) {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("no entry matches "+args[0]))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconTrash+" Deleted ")+args[0])
			return nil
		},
	}
	return cmd
}

func newJournalStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Mood counts and journaling streak",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			stats := app.svc.JournalStatsAt(time.Now())
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconJournal, "Journal"))
			fmt.Fprintln(out, ui.LabelValue("Entries", stats.Total))
			fmt.Fprintln(out, ui.LabelValue("Day streak", fmt.Sprintf("%s %d", ui.IconStreak, stats.DayStreak)))
			for _, m := range engine.Moods {
				if stats.ByMood[m] == 0 {
					continue
				}
				fmt.Fprintf(out, "- %s %s: %d\n", ui.MoodIcon(m), m, stats.ByMood[m])
			}
			return nil
		},
	}
	return cmd
}
