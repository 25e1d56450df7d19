package service

import (
	"context"
	"io"
	"time"

	"github.com/Ahtty/diary-statistics/internal/analysis"
	"github.com/Ahtty/diary-statistics/internal/domain"
	"github.com/Ahtty/diary-statistics/internal/report"
)

// DatasetService loads diary datasets and derives the selectable scopes.
type DatasetService interface {
	Load(ctx context.Context, path string) ([]domain.DiaryRecord, error)
	Options(records []domain.DiaryRecord) analysis.SelectionOptions
	MonthsInYear(records []domain.DiaryRecord, year int) []time.Month
	FilterByUser(records []domain.DiaryRecord, userID string) []domain.DiaryRecord
	FilterByMonth(records []domain.DiaryRecord, year int, month time.Month) []domain.DiaryRecord
}

// StatsService computes the aggregate tables for a filtered record subset.
// Every aggregate is a pure function of its input and tolerates an empty
// subset.
type StatsService interface {
	MonthlyTrend(records []domain.DiaryRecord) analysis.TimeCategoryTable
	FormatDistribution(records []domain.DiaryRecord) analysis.ShareTable
	DailyFlow(records []domain.DiaryRecord) analysis.FlowTable
	HourlyActivity(records []domain.DiaryRecord) analysis.HourlyTable
	EmotionTotals(records []domain.DiaryRecord) []analysis.CategoryCount
	TopWords(records []domain.DiaryRecord, n int) []analysis.WordCount
}

// ReportService builds and writes the downloadable emotion report.
type ReportService interface {
	Export(w io.Writer, userID string, records []domain.DiaryRecord) (report.Report, error)
}
