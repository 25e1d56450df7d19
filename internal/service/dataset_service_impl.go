package service

import (
	"context"
	"time"

	"github.com/Ahtty/diary-statistics/internal/analysis"
	"github.com/Ahtty/diary-statistics/internal/domain"
	"github.com/Ahtty/diary-statistics/internal/loader"
)

type datasetService struct{}

// NewDatasetService creates the CSV-backed DatasetService.
func NewDatasetService() DatasetService {
	return &datasetService{}
}

func (s *datasetService) Load(ctx context.Context, path string) ([]domain.DiaryRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return loader.LoadFile(path)
}

func (s *datasetService) Options(records []domain.DiaryRecord) analysis.SelectionOptions {
	return analysis.Options(records)
}

func (s *datasetService) MonthsInYear(records []domain.DiaryRecord, year int) []time.Month {
	return analysis.MonthsInYear(records, year)
}

func (s *datasetService) FilterByUser(records []domain.DiaryRecord, userID string) []domain.DiaryRecord {
	return analysis.ByUser(records, userID)
}

func (s *datasetService) FilterByMonth(records []domain.DiaryRecord, year int, month time.Month) []domain.DiaryRecord {
	return analysis.ByMonth(records, year, month)
}
