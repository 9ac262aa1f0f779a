package root

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/R1S-dev/LifeQuest/internal/ui"
)

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all data with a JSON backup",
		Long: `Import a backup produced by 'lq export'.

The payload replaces the current state wholesale. Missing fields get
defaults; a payload that is not parseable or has no data section is
rejected and the current state stays untouched.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("backup file is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read backup: %w", err)
			}

			ctx := context.Background()
			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := app.svc.Import(payload); err != nil {
				return err
			}

			st := app.svc.State()
			fmt.Fprintf(cmd.OutOrStdout(), "%s imported %d quest(s), %d journal entries, %d XP\n",
				ui.Good.Render(ui.IconDone+" Restored"), len(st.Tasks), len(st.Journal), st.TotalXP)
			return nil
		},
	}

	return cmd
}
