package intelligence

import (
	"strings"

	"github.com/Ahtty/diary-statistics/internal/analysis"
	"github.com/Ahtty/diary-statistics/internal/domain"
)

const (
	digestTopWords      = 15
	digestMaxExcerpts   = 40
	digestExcerptMaxLen = 280
)

// BuildMonthlyDigest computes every aggregate for the given (already
// filtered) records and flattens them into the stable digest shape.
// userID and period describe the selection scope and may be empty when the
// scope does not constrain them.
func BuildMonthlyDigest(userID, period string, records []domain.DiaryRecord) MonthlyDigest {
	digest := MonthlyDigest{
		UserID:     userID,
		Period:     period,
		EntryCount: len(records),
	}

	for _, cc := range analysis.TotalEmotionCounts(records) {
		digest.EmotionTotals = append(digest.EmotionTotals, LabelCount{Label: cc.Category, Count: cc.Count})
	}

	trend := analysis.MonthlyEmotionCounts(records)
	for _, bucket := range trend.Buckets {
		bc := BucketCounts{Bucket: bucket}
		for _, cat := range trend.Categories {
			bc.Counts = append(bc.Counts, LabelCount{Label: cat, Count: trend.Count(bucket, cat)})
		}
		digest.MonthlyTrend = append(digest.MonthlyTrend, bc)
	}

	shares := analysis.FormatEmotionShares(records)
	for _, format := range shares.Formats {
		fs := FormatShare{Format: format, Entries: shares.Totals[format]}
		for _, cat := range shares.Categories {
			fs.Shares = append(fs.Shares, LabelShare{Label: cat, Percent: shares.Share(format, cat)})
		}
		digest.FormatShares = append(digest.FormatShares, fs)
	}

	flow := analysis.DailySentimentFlow(records, nil)
	for _, day := range flow.Days {
		df := DayFlow{Day: day}
		for _, label := range flow.Labels {
			df.Counts = append(df.Counts, LabelCount{Label: label, Count: flow.Count(day, label)})
		}
		digest.DailyFlow = append(digest.DailyFlow, df)
	}

	hourly := analysis.HourlyActivity(records)
	digest.HourlyCounts = append(digest.HourlyCounts, hourly.Counts[:]...)

	for _, wc := range analysis.WordFrequencies(records, digestTopWords) {
		digest.TopWords = append(digest.TopWords, LabelCount{Label: wc.Word, Count: wc.Count})
	}

	digest.Excerpts = collectExcerpts(records)
	return digest
}

// collectExcerpts gathers entry texts in dataset order, truncated so a
// verbose month cannot blow up the prompt.
func collectExcerpts(records []domain.DiaryRecord) []string {
	var out []string
	for _, r := range records {
		text := strings.TrimSpace(r.Content)
		if text == "" {
			continue
		}
		out = append(out, truncate(sanitizeNewlines(text), digestExcerptMaxLen))
		if len(out) == digestMaxExcerpts {
			break
		}
	}
	return out
}

func sanitizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.ReplaceAll(s, "\n", " ")
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}
