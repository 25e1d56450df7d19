package cli

import (
	"fmt"

	"github.com/Ahtty/diary-statistics/internal/domain"
	"github.com/spf13/cobra"
)

// loadScoped loads the dataset named by --data and narrows it to the
// requested user and month. An empty result after filtering is handed back
// as-is; every aggregate renders sensibly on zero records.
func loadScoped(app *App, cmd *cobra.Command, userID string, month *monthValue) ([]domain.DiaryRecord, error) {
	records, err := app.Dataset.Load(cmd.Context(), dataPath(cmd))
	if err != nil {
		return nil, fmt.Errorf("loading diary data: %w", err)
	}
	if userID != "" {
		records = app.Dataset.FilterByUser(records, userID)
	}
	if month != nil && month.set {
		records = app.Dataset.FilterByMonth(records, month.year, month.month)
	}
	return records, nil
}
