package formatter

import (
	"testing"

	"github.com/Ahtty/diary-statistics/internal/analysis"
	"github.com/Ahtty/diary-statistics/internal/intelligence"
	"github.com/stretchr/testify/assert"
)

func TestFormatTrendEmpty(t *testing.T) {
	out := FormatTrend(analysis.TimeCategoryTable{})
	assert.Contains(t, out, "No dated entries")
}

func TestFormatTrend(t *testing.T) {
	table := analysis.TimeCategoryTable{
		Buckets:    []string{"2024-01"},
		Categories: []string{"negative", "positive"},
		Counts: map[string]map[string]int{
			"2024-01": {"negative": 1, "positive": 2},
		},
	}

	out := FormatTrend(table)
	assert.Contains(t, out, "2024-01")
	assert.Contains(t, out, "POSITIVE")
	assert.Contains(t, out, "3 entries across 1 months")
}

func TestFormatSharesEmpty(t *testing.T) {
	out := FormatShares(analysis.ShareTable{})
	assert.Contains(t, out, "No entries with a recorded format")
}

func TestFormatFlowEmpty(t *testing.T) {
	out := FormatFlow(analysis.FlowTable{})
	assert.Contains(t, out, "No dated entries")
}

func TestFormatHourlyRendersAllHours(t *testing.T) {
	var table analysis.HourlyTable
	table.Counts[9] = 4

	out := FormatHourly(table)
	assert.Contains(t, out, "00:00")
	assert.Contains(t, out, "09:00")
	assert.Contains(t, out, "23:00")
	assert.Contains(t, out, "4 entries with a known hour")
}

func TestFormatWordsEmpty(t *testing.T) {
	out := FormatWords(nil)
	assert.Contains(t, out, "No entry text")
}

func TestFormatDigestFallbackScope(t *testing.T) {
	digest := intelligence.MonthlyDigest{
		UserID:     "amy",
		Period:     "2024-04",
		EntryCount: 7,
		EmotionTotals: []intelligence.LabelCount{
			{Label: "positive", Count: 5},
			{Label: "negative", Count: 2},
		},
	}

	out := FormatDigestFallback(digest)
	assert.Contains(t, out, "amy / 2024-04")
	assert.Contains(t, out, "7")
	assert.Contains(t, out, "positive")
}
