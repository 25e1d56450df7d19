package cli

import (
	"fmt"
	"os"

	"github.com/Ahtty/diary-statistics/internal/cli/formatter"
	"github.com/Ahtty/diary-statistics/internal/report"
	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	var userID string
	var outPath string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Export a user's emotion counts as a CSV report",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := loadScoped(app, cmd, userID, nil)
			if err != nil {
				return err
			}

			if outPath == "" {
				outPath = report.DefaultFilename(userID)
			}

			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("creating report file: %w", err)
			}
			defer f.Close()

			rep, err := app.Reports.Export(f, userID, records)
			if err != nil {
				return fmt.Errorf("writing report: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReport(rep, outPath))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User ID to report on")
	cmd.Flags().StringVar(&outPath, "out", "", "Output path (default <user>_emotion_report.csv)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
