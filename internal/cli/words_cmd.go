package cli

import (
	"fmt"

	"github.com/Ahtty/diary-statistics/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newWordsCmd(app *App) *cobra.Command {
	var userID string
	var month monthValue
	var topN int

	cmd := &cobra.Command{
		Use:   "words",
		Short: "Show the most frequent words across entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := loadScoped(app, cmd, userID, &month)
			if err != nil {
				return err
			}

			words := app.Stats.TopWords(records, topN)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatWords(words))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "Scope to a single user ID")
	cmd.Flags().Var(&month, "month", "Scope to a calendar month (YYYY-MM)")
	cmd.Flags().IntVar(&topN, "top", 20, "Number of words to show")

	return cmd
}
