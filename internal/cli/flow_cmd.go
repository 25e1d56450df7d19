package cli

import (
	"fmt"

	"github.com/Ahtty/diary-statistics/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newFlowCmd(app *App) *cobra.Command {
	var userID string
	var month monthValue

	cmd := &cobra.Command{
		Use:   "flow",
		Short: "Show the daily positive/negative/neutral flow",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := loadScoped(app, cmd, userID, &month)
			if err != nil {
				return err
			}

			table := app.Stats.DailyFlow(records)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatFlow(table))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "Scope to a single user ID")
	cmd.Flags().Var(&month, "month", "Scope to a calendar month (YYYY-MM)")

	return cmd
}
