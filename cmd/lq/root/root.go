package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/R1S-dev/LifeQuest/internal/ui"
)

const Version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:           "lq",
	Short:         "LifeQuest, a gamified life tracker",
	Long:          "LifeQuest is a local-first CLI/TUI tracker: log quests, earn XP, level up and journal your moods.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newAddCmd(),
		newDoCmd(),
		newRmCmd(),
		newListCmd(),
		newStatusCmd(),
		newProfileCmd(),
		newJournalCmd(),
		newExportCmd(),
		newImportCmd(),
		newResetCmd(),
		newBoardCmd(),
		newWatchCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
