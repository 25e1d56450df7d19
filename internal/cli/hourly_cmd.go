package cli

import (
	"fmt"

	"github.com/Ahtty/diary-statistics/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newHourlyCmd(app *App) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "hourly",
		Short: "Show the hour-of-day writing histogram",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := loadScoped(app, cmd, userID, nil)
			if err != nil {
				return err
			}

			table := app.Stats.HourlyActivity(records)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatHourly(table))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "Scope to a single user ID")

	return cmd
}
