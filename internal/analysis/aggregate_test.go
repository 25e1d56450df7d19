package analysis

import (
	"testing"
	"time"

	"github.com/Ahtty/diary-statistics/internal/domain"
	"github.com/Ahtty/diary-statistics/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func TestMonthlyEmotionCounts(t *testing.T) {
	records := []domain.DiaryRecord{
		testutil.MakeRecord(testutil.WithTimestamp(day(2024, time.January, 3, 9)), testutil.WithEmotion("긍정")),
		testutil.MakeRecord(testutil.WithTimestamp(day(2024, time.January, 14, 21)), testutil.WithEmotion("긍정")),
		testutil.MakeRecord(testutil.WithTimestamp(day(2024, time.January, 20, 8)), testutil.WithEmotion("부정")),
		testutil.MakeRecord(testutil.WithTimestamp(day(2024, time.March, 2, 10)), testutil.WithEmotion("중립")),
	}

	table := MonthlyEmotionCounts(records)

	assert.Equal(t, []string{"2024-01", "2024-03"}, table.Buckets)
	assert.Equal(t, []string{"긍정", "부정", "중립"}, table.Categories)

	assert.Equal(t, 2, table.Count("2024-01", "긍정"))
	assert.Equal(t, 1, table.Count("2024-01", "부정"))
	assert.Equal(t, 0, table.Count("2024-01", "중립"))
	assert.Equal(t, 1, table.Count("2024-03", "중립"))

	// Zero-filled cells are physically present, not just implied.
	_, ok := table.Counts["2024-01"]["중립"]
	assert.True(t, ok)

	assert.Equal(t, len(records), table.Total())
}

func TestMonthlyEmotionCountsSkipsUnusable(t *testing.T) {
	records := []domain.DiaryRecord{
		testutil.MakeRecord(testutil.WithoutTimestamp()),
		testutil.MakeRecord(testutil.WithEmotion("")),
		testutil.MakeRecord(testutil.WithEmotion("positive")),
	}

	table := MonthlyEmotionCounts(records)
	assert.Equal(t, 1, table.Total())
}

func TestMonthlyEmotionCountsEmpty(t *testing.T) {
	table := MonthlyEmotionCounts(nil)
	assert.True(t, table.Empty())
	assert.Equal(t, 0, table.Total())
}

func TestFormatEmotionShares(t *testing.T) {
	records := []domain.DiaryRecord{
		testutil.MakeRecord(testutil.WithFormat("text"), testutil.WithEmotion("positive")),
		testutil.MakeRecord(testutil.WithFormat("text"), testutil.WithEmotion("positive")),
		testutil.MakeRecord(testutil.WithFormat("text"), testutil.WithEmotion("negative")),
		testutil.MakeRecord(testutil.WithFormat("text"), testutil.WithEmotion("neutral")),
		testutil.MakeRecord(testutil.WithFormat("voice"), testutil.WithEmotion("negative")),
	}

	table := FormatEmotionShares(records)

	assert.Equal(t, []string{"text", "voice"}, table.Formats)
	assert.Equal(t, []string{"negative", "neutral", "positive"}, table.Categories)

	assert.InDelta(t, 50.0, table.Share("text", "positive"), 1e-9)
	assert.InDelta(t, 25.0, table.Share("text", "negative"), 1e-9)
	assert.InDelta(t, 100.0, table.Share("voice", "negative"), 1e-9)
	assert.Equal(t, 4, table.Totals["text"])

	// Each format row is a distribution: shares sum to 100.
	for _, format := range table.Formats {
		sum := 0.0
		for _, cat := range table.Categories {
			sum += table.Share(format, cat)
		}
		assert.InDelta(t, 100.0, sum, 1e-9, "format %s", format)
	}
}

func TestFormatEmotionSharesOmitsEmptyGroups(t *testing.T) {
	records := []domain.DiaryRecord{
		testutil.MakeRecord(testutil.WithFormat(""), testutil.WithEmotion("positive")),
		testutil.MakeRecord(testutil.WithFormat("text"), testutil.WithEmotion("")),
	}

	table := FormatEmotionShares(records)
	assert.Empty(t, table.Formats)
}

func TestDailySentimentFlow(t *testing.T) {
	records := []domain.DiaryRecord{
		testutil.MakeRecord(testutil.WithTimestamp(day(2024, time.May, 1, 9)), testutil.WithEmotion("positive")),
		testutil.MakeRecord(testutil.WithTimestamp(day(2024, time.May, 1, 20)), testutil.WithEmotion("very positive")),
		testutil.MakeRecord(testutil.WithTimestamp(day(2024, time.May, 2, 9)), testutil.WithEmotion("negative")),
		testutil.MakeRecord(testutil.WithTimestamp(day(2024, time.May, 2, 9)), testutil.WithEmotion("joyful")),
	}

	table := DailySentimentFlow(records, nil)

	assert.Equal(t, []string{"2024-05-01", "2024-05-02"}, table.Days)
	assert.Equal(t, []string{"positive", "negative", "neutral"}, table.Labels)

	// Substring containment: "very positive" counts as positive.
	assert.Equal(t, 2, table.Count("2024-05-01", "positive"))
	assert.Equal(t, 1, table.Count("2024-05-02", "negative"))

	// A label absent from every category on a day still reads as zero.
	assert.Equal(t, 0, table.Count("2024-05-01", "neutral"))
}

func TestDailySentimentFlowMultiLabelDoubleCounts(t *testing.T) {
	records := []domain.DiaryRecord{
		testutil.MakeRecord(
			testutil.WithTimestamp(day(2024, time.May, 3, 9)),
			testutil.WithEmotion("positive-negative mix"),
		),
	}

	table := DailySentimentFlow(records, nil)

	// One record, two label hits. The double count is intentional.
	assert.Equal(t, 1, table.Count("2024-05-03", "positive"))
	assert.Equal(t, 1, table.Count("2024-05-03", "negative"))
	assert.Equal(t, 0, table.Count("2024-05-03", "neutral"))
}

func TestDailySentimentFlowCaseSensitive(t *testing.T) {
	records := []domain.DiaryRecord{
		testutil.MakeRecord(testutil.WithTimestamp(day(2024, time.May, 4, 9)), testutil.WithEmotion("Positive")),
	}

	table := DailySentimentFlow(records, nil)
	assert.Equal(t, 0, table.Count("2024-05-04", "positive"))
}

func TestHourlyActivity(t *testing.T) {
	records := []domain.DiaryRecord{
		testutil.MakeRecord(testutil.WithHour(9)),
		testutil.MakeRecord(testutil.WithHour(9)),
		testutil.MakeRecord(testutil.WithHour(23)),
		testutil.MakeRecord(testutil.WithoutTimestamp()),
	}

	table := HourlyActivity(records)

	assert.Equal(t, 2, table.Counts[9])
	assert.Equal(t, 1, table.Counts[23])
	assert.Equal(t, 3, table.Total())
	assert.Equal(t, 2, table.Max())
}

func TestHourlyActivityEmpty(t *testing.T) {
	table := HourlyActivity(nil)
	assert.Equal(t, 0, table.Total())
	assert.Equal(t, 0, table.Max())
	assert.Len(t, table.Counts, 24)
}

func TestTotalEmotionCountsOrdering(t *testing.T) {
	records := []domain.DiaryRecord{
		testutil.MakeRecord(testutil.WithEmotion("neutral")),
		testutil.MakeRecord(testutil.WithEmotion("positive")),
		testutil.MakeRecord(testutil.WithEmotion("positive")),
		testutil.MakeRecord(testutil.WithEmotion("negative")),
		testutil.MakeRecord(testutil.WithEmotion("")),
	}

	totals := TotalEmotionCounts(records)

	require.Len(t, totals, 3)
	assert.Equal(t, CategoryCount{Category: "positive", Count: 2}, totals[0])
	// Ties break lexically.
	assert.Equal(t, CategoryCount{Category: "negative", Count: 1}, totals[1])
	assert.Equal(t, CategoryCount{Category: "neutral", Count: 1}, totals[2])
}

func TestAggregatesAreDeterministic(t *testing.T) {
	records := []domain.DiaryRecord{
		testutil.MakeRecord(testutil.WithTimestamp(day(2024, time.January, 3, 9)), testutil.WithEmotion("b")),
		testutil.MakeRecord(testutil.WithTimestamp(day(2024, time.February, 3, 9)), testutil.WithEmotion("a")),
		testutil.MakeRecord(testutil.WithTimestamp(day(2024, time.February, 4, 9)), testutil.WithEmotion("c")),
	}

	first := MonthlyEmotionCounts(records)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, MonthlyEmotionCounts(records))
	}
}
