package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/R1S-dev/LifeQuest/internal/engine"
	"github.com/R1S-dev/LifeQuest/internal/ui"
)

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile [name]",
		Short: "Show or rename the adventurer",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			app, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if len(args) == 1 {
				app.svc.SetProfileName(args[0])
			}

			st := app.svc.State()
			b := engine.BreakdownXP(st.TotalXP)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, st.Profile.Name))
			fmt.Fprintln(out, ui.LabelValue("Level", b.Level))
			fmt.Fprintln(out, ui.LabelValue("Total XP", st.TotalXP))
			fmt.Fprintln(out, ui.LabelValue("Achievements", fmt.Sprintf("%d/%d", len(st.Achievements), len(engine.Catalog))))
			return nil
		},
	}

	return cmd
}
