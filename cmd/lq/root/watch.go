package root

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/R1S-dev/LifeQuest/internal/engine"
	"github.com/R1S-dev/LifeQuest/internal/scheduler"
	"github.com/R1S-dev/LifeQuest/internal/ui"
)

// One poll drives both the recurrence tick and the due check, so all
// state access stays on a single goroutine.
const watchPollInterval = 30 * time.Second

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Run the recurrence tick and due-quest alerts in the foreground",
		Long: `Keep LifeQuest running: the recurrence tick resets daily/weekly
quests at midnight, and quests with a due time are announced up to five
minutes (configurable) before they come due. Stop with Ctrl+C.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			window, err := app.cfg.NotifyWindowDuration()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			notifier := engine.NewDueNotifier(window)
			if !app.svc.State().NotificationsEnabled {
				app.svc.SetNotificationsEnabled(true)
			}

			poll := scheduler.New(watchPollInterval, func(now time.Time) {
				if app.svc.DailyTick(now) {
					fmt.Fprintln(out, ui.Muted.Render(now.Format("15:04")+" recurring quests reset"))
				}
				for _, t := range notifier.Due(app.svc.State().Tasks, now) {
					fmt.Fprintf(out, "%s Quest due: %s %s\n",
						ui.Warn.Render(ui.IconBell),
						t.Title,
						ui.Muted.Render(fmt.Sprintf("@ %02d:%02d · +%d XP", t.DueAt.Hour(), t.DueAt.Minute(), t.XP)))
				}
			})

			poll.Start()
			defer poll.Stop()

			fmt.Fprintln(out, ui.Heading(ui.IconBell, "Watching quests, Ctrl+C to stop"))
			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
			<-sig
			fmt.Fprintln(out, "")
			return nil
		},
	}

	return cmd
}
