package cli

import (
	"github.com/Ahtty/diary-statistics/internal/intelligence"
	"github.com/Ahtty/diary-statistics/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Dataset service.DatasetService
	Stats   service.StatsService
	Reports service.ReportService

	// NewNarrative builds the narrative service for one invocation. The
	// credential arrives per session (flag or environment) and is never
	// stored, so construction has to happen at call time.
	NewNarrative func(apiKey, model string) (intelligence.NarrativeService, error)

	// IsInteractive reports whether stdin is attached to a terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "diarystat" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "diarystat",
		Short: "Diary sentiment statistics and monthly summaries",
	}

	root.PersistentFlags().String("data", "diary.csv", "Path to the diary CSV file")

	root.AddCommand(
		newOverviewCmd(app),
		newTrendCmd(app),
		newFormatsCmd(app),
		newFlowCmd(app),
		newHourlyCmd(app),
		newWordsCmd(app),
		newReportCmd(app),
		newSummarizeCmd(app),
	)

	return root
}

// dataPath reads the persistent --data flag from any command in the tree.
func dataPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("data")
	return path
}
