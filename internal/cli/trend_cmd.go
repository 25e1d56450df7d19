package cli

import (
	"fmt"

	"github.com/Ahtty/diary-statistics/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTrendCmd(app *App) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "trend",
		Short: "Show month-by-month emotion counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := loadScoped(app, cmd, userID, nil)
			if err != nil {
				return err
			}

			table := app.Stats.MonthlyTrend(records)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTrend(table))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "Scope to a single user ID")

	return cmd
}
