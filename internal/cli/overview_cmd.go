package cli

import (
	"fmt"

	"github.com/Ahtty/diary-statistics/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newOverviewCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Show dataset summary and selectable scopes",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := loadScoped(app, cmd, "", nil)
			if err != nil {
				return err
			}

			opts := app.Dataset.Options(records)
			totals := app.Stats.EmotionTotals(records)

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatOverview(dataPath(cmd), len(records), opts, totals))
			return nil
		},
	}
}
