package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/R1S-dev/LifeQuest/internal/ui"
)

func newRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a quest",
		Long:  "Delete a quest. XP already granted stays on the ledger; only un-completing retracts it.",
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
			if id == "" || !app.svc.RemoveTask(id) {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("no quest matches "+args[0]))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconTrash+" Deleted ")+args[0])
			return nil
		},
	}

	return cmd
}
