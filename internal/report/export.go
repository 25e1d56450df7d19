// Package report builds the downloadable emotion report: the overall
// emotion distribution of the current scope, stamped with the generating
// user and date, exported as UTF-8 CSV with a byte-order mark so common
// spreadsheet tools open it correctly.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/Ahtty/diary-statistics/internal/analysis"
	"github.com/google/uuid"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Report is one generated emotion report.
type Report struct {
	ID          string
	UserID      string
	GeneratedAt time.Time
	Rows        []analysis.CategoryCount
}

// Build assembles a report from an emotion distribution. Each report gets
// a fresh id so repeated downloads are distinguishable.
func Build(userID string, rows []analysis.CategoryCount, now time.Time) Report {
	return Report{
		ID:          uuid.NewString(),
		UserID:      userID,
		GeneratedAt: now,
		Rows:        rows,
	}
}

// WriteCSV writes the report as delimited text. The byte-order mark goes
// out before the CSV payload.
func WriteCSV(w io.Writer, r Report) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("writing BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	date := r.GeneratedAt.Format("2006-01-02")

	if err := cw.Write([]string{"emotion_category", "count", "user_id", "generated_on", "report_id"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, row := range r.Rows {
		record := []string{row.Category, strconv.Itoa(row.Count), r.UserID, date, r.ID}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// DefaultFilename returns the conventional download name for a user's
// report.
func DefaultFilename(userID string) string {
	return fmt.Sprintf("%s_emotion_report.csv", userID)
}
