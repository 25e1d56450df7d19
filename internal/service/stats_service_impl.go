package service

import (
	"github.com/Ahtty/diary-statistics/internal/analysis"
	"github.com/Ahtty/diary-statistics/internal/domain"
)

type statsService struct{}

// NewStatsService creates the StatsService.
func NewStatsService() StatsService {
	return &statsService{}
}

func (s *statsService) MonthlyTrend(records []domain.DiaryRecord) analysis.TimeCategoryTable {
	return analysis.MonthlyEmotionCounts(records)
}

func (s *statsService) FormatDistribution(records []domain.DiaryRecord) analysis.ShareTable {
	return analysis.FormatEmotionShares(records)
}

func (s *statsService) DailyFlow(records []domain.DiaryRecord) analysis.FlowTable {
	return analysis.DailySentimentFlow(records, nil)
}

func (s *statsService) HourlyActivity(records []domain.DiaryRecord) analysis.HourlyTable {
	return analysis.HourlyActivity(records)
}

func (s *statsService) EmotionTotals(records []domain.DiaryRecord) []analysis.CategoryCount {
	return analysis.TotalEmotionCounts(records)
}

func (s *statsService) TopWords(records []domain.DiaryRecord, n int) []analysis.WordCount {
	return analysis.WordFrequencies(records, n)
}
