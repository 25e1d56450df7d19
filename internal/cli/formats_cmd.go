package cli

import (
	"fmt"

	"github.com/Ahtty/diary-statistics/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newFormatsCmd(app *App) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "formats",
		Short: "Show emotion percentages per entry format",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := loadScoped(app, cmd, userID, nil)
			if err != nil {
				return err
			}

			table := app.Stats.FormatDistribution(records)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatShares(table))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "Scope to a single user ID")

	return cmd
}
