package root

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/R1S-dev/LifeQuest/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the TUI quest board",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunBoard(app.svc, cmd.OutOrStdout())
		},
	}

	return cmd
}
