package analysis

import (
	"sort"
	"strings"

	"github.com/Ahtty/diary-statistics/internal/domain"
)

// MonthlyEmotionCounts cross-tabulates calendar months against emotion
// categories. Records without a resolvable timestamp or without an emotion
// label do not participate.
func MonthlyEmotionCounts(records []domain.DiaryRecord) TimeCategoryTable {
	table := TimeCategoryTable{Counts: make(map[string]map[string]int)}

	catSet := make(map[string]bool)
	for _, r := range records {
		bucket := r.MonthKey()
		if bucket == "" || r.Emotion == "" {
			continue
		}
		row, ok := table.Counts[bucket]
		if !ok {
			row = make(map[string]int)
			table.Counts[bucket] = row
			table.Buckets = append(table.Buckets, bucket)
		}
		row[r.Emotion]++
		catSet[r.Emotion] = true
	}

	sort.Strings(table.Buckets)
	for c := range catSet {
		table.Categories = append(table.Categories, c)
	}
	sort.Strings(table.Categories)

	// Zero-fill missing bucket/category combinations.
	for _, row := range table.Counts {
		for _, c := range table.Categories {
			if _, ok := row[c]; !ok {
				row[c] = 0
			}
		}
	}
	return table
}

// FormatEmotionShares groups records by entry format and converts each
// format's emotion counts into percentages of the format total. Formats
// and categories are ordered lexically. A format only appears when at
// least one record carries it, so no row ever divides by zero.
func FormatEmotionShares(records []domain.DiaryRecord) ShareTable {
	table := ShareTable{
		Shares: make(map[string]map[string]float64),
		Totals: make(map[string]int),
	}

	counts := make(map[string]map[string]int)
	catSet := make(map[string]bool)
	for _, r := range records {
		if r.Format == "" || r.Emotion == "" {
			continue
		}
		row, ok := counts[r.Format]
		if !ok {
			row = make(map[string]int)
			counts[r.Format] = row
			table.Formats = append(table.Formats, r.Format)
		}
		row[r.Emotion]++
		table.Totals[r.Format]++
		catSet[r.Emotion] = true
	}

	sort.Strings(table.Formats)
	for c := range catSet {
		table.Categories = append(table.Categories, c)
	}
	sort.Strings(table.Categories)

	for format, row := range counts {
		total := table.Totals[format]
		if total == 0 {
			continue
		}
		shares := make(map[string]float64, len(table.Categories))
		for _, c := range table.Categories {
			shares[c] = float64(row[c]) / float64(total) * 100
		}
		table.Shares[format] = shares
	}
	return table
}

// DailySentimentFlow tallies, per calendar day, how many records mention
// each fixed sentiment label. A record counts toward a label when the
// label text appears anywhere in its emotion category (case-sensitive
// substring containment). This is deliberately loose: a category
// containing both "positive" and "negative" increments both labels, and a
// category containing none increments nothing. The behavior mirrors the
// source dashboard and is kept as-is.
func DailySentimentFlow(records []domain.DiaryRecord, labels []domain.SentimentLabel) FlowTable {
	if labels == nil {
		labels = domain.FlowLabels
	}

	table := FlowTable{Counts: make(map[string]map[string]int)}
	for _, l := range labels {
		table.Labels = append(table.Labels, string(l))
	}

	for _, r := range records {
		day := r.DayKey()
		if day == "" {
			continue
		}
		row, ok := table.Counts[day]
		if !ok {
			row = make(map[string]int, len(labels))
			for _, l := range table.Labels {
				row[l] = 0
			}
			table.Counts[day] = row
			table.Days = append(table.Days, day)
		}
		for _, l := range table.Labels {
			if strings.Contains(r.Emotion, l) {
				row[l]++
			}
		}
	}

	sort.Strings(table.Days)
	return table
}

// HourlyActivity counts records per hour of day. Records without a
// resolved hour are excluded; hours with no records report zero.
func HourlyActivity(records []domain.DiaryRecord) HourlyTable {
	var table HourlyTable
	for _, r := range records {
		if r.Hour == nil {
			continue
		}
		if h := *r.Hour; h >= 0 && h < 24 {
			table.Counts[h]++
		}
	}
	return table
}

// TotalEmotionCounts tallies the overall emotion distribution, ordered by
// count descending then category ascending so identical inputs always
// yield identical output.
func TotalEmotionCounts(records []domain.DiaryRecord) []CategoryCount {
	counts := make(map[string]int)
	for _, r := range records {
		if r.Emotion == "" {
			continue
		}
		counts[r.Emotion]++
	}

	out := make([]CategoryCount, 0, len(counts))
	for c, n := range counts {
		out = append(out, CategoryCount{Category: c, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Category < out[j].Category
	})
	return out
}
