package intelligence

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/Ahtty/diary-statistics/internal/domain"
	"github.com/Ahtty/diary-statistics/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(d, h int) time.Time {
	return time.Date(2024, time.April, d, h, 0, 0, 0, time.UTC)
}

func TestBuildMonthlyDigest(t *testing.T) {
	records := []domain.DiaryRecord{
		testutil.MakeRecord(testutil.WithTimestamp(at(1, 9)), testutil.WithEmotion("positive"), testutil.WithContent("sunny walk by the river")),
		testutil.MakeRecord(testutil.WithTimestamp(at(1, 21)), testutil.WithEmotion("negative"), testutil.WithContent("long day at work")),
		testutil.MakeRecord(testutil.WithTimestamp(at(2, 9)), testutil.WithEmotion("positive"), testutil.WithContent("river walk again")),
	}

	digest := BuildMonthlyDigest("amy", "2024-04", records)

	assert.Equal(t, "amy", digest.UserID)
	assert.Equal(t, "2024-04", digest.Period)
	assert.Equal(t, 3, digest.EntryCount)

	require.NotEmpty(t, digest.EmotionTotals)
	assert.Equal(t, LabelCount{Label: "positive", Count: 2}, digest.EmotionTotals[0])

	require.Len(t, digest.MonthlyTrend, 1)
	assert.Equal(t, "2024-04", digest.MonthlyTrend[0].Bucket)

	require.Len(t, digest.DailyFlow, 2)
	assert.Equal(t, "2024-04-01", digest.DailyFlow[0].Day)

	require.Len(t, digest.HourlyCounts, 24)
	assert.Equal(t, 2, digest.HourlyCounts[9])
	assert.Equal(t, 1, digest.HourlyCounts[21])

	assert.Len(t, digest.Excerpts, 3)
	assert.Contains(t, digest.TopWords, LabelCount{Label: "river", Count: 2})
}

func TestBuildMonthlyDigestEmpty(t *testing.T) {
	digest := BuildMonthlyDigest("", "", nil)

	assert.Equal(t, 0, digest.EntryCount)
	assert.Empty(t, digest.EmotionTotals)
	assert.Empty(t, digest.Excerpts)
	assert.Len(t, digest.HourlyCounts, 24)
}

func TestBuildMonthlyDigestDeterministicJSON(t *testing.T) {
	records := []domain.DiaryRecord{
		testutil.MakeRecord(testutil.WithTimestamp(at(1, 9)), testutil.WithEmotion("b")),
		testutil.MakeRecord(testutil.WithTimestamp(at(2, 9)), testutil.WithEmotion("a")),
		testutil.MakeRecord(testutil.WithTimestamp(at(3, 9)), testutil.WithEmotion("c")),
	}

	first, err := json.Marshal(BuildMonthlyDigest("amy", "2024-04", records))
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		next, err := json.Marshal(BuildMonthlyDigest("amy", "2024-04", records))
		require.NoError(t, err)
		assert.Equal(t, string(first), string(next))
	}
}

func TestCollectExcerptsTruncatesAndCaps(t *testing.T) {
	long := strings.Repeat("가", 400)
	records := []domain.DiaryRecord{
		testutil.MakeRecord(testutil.WithContent(long)),
		testutil.MakeRecord(testutil.WithContent("line one\r\nline two")),
		testutil.MakeRecord(testutil.WithContent("   ")),
	}
	for i := 0; i < 50; i++ {
		records = append(records, testutil.MakeRecord(testutil.WithContent("filler entry")))
	}

	excerpts := collectExcerpts(records)

	assert.Len(t, excerpts, digestMaxExcerpts)
	assert.Equal(t, digestExcerptMaxLen+1, len([]rune(excerpts[0])))
	assert.True(t, strings.HasSuffix(excerpts[0], "…"))
	assert.Equal(t, "line one line two", excerpts[1])
}
