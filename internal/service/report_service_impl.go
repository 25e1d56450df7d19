package service

import (
	"io"
	"time"

	"github.com/Ahtty/diary-statistics/internal/analysis"
	"github.com/Ahtty/diary-statistics/internal/domain"
	"github.com/Ahtty/diary-statistics/internal/report"
)

type reportService struct {
	now func() time.Time
}

// NewReportService creates the ReportService. The clock defaults to
// time.Now and is injectable for tests.
func NewReportService() ReportService {
	return &reportService{now: time.Now}
}

func (s *reportService) Export(w io.Writer, userID string, records []domain.DiaryRecord) (report.Report, error) {
	totals := analysis.TotalEmotionCounts(records)
	rep := report.Build(userID, totals, s.now())
	if err := report.WriteCSV(w, rep); err != nil {
		return report.Report{}, err
	}
	return rep, nil
}
