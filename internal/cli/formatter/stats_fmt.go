package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Ahtty/diary-statistics/internal/analysis"
	"github.com/Ahtty/diary-statistics/internal/intelligence"
	"github.com/Ahtty/diary-statistics/internal/report"
)

const hourlyBarWidth = 24

// FormatOverview formats the dataset summary shown after loading.
func FormatOverview(path string, recordCount int, opts analysis.SelectionOptions, totals []analysis.CategoryCount) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s\n", Bold("Dataset:"), path))
	b.WriteString(fmt.Sprintf("%s %d\n", Bold("Entries:"), recordCount))

	years := make([]string, len(opts.Years))
	for i, y := range opts.Years {
		years[i] = strconv.Itoa(y)
	}
	b.WriteString(fmt.Sprintf("%s %s\n", Bold("Years:"), strings.Join(years, ", ")))
	b.WriteString(fmt.Sprintf("%s %s\n", Bold("Users:"), strings.Join(opts.Users, ", ")))

	if len(totals) > 0 {
		b.WriteString("\n")
		b.WriteString(FormatTotals(totals))
	}

	return RenderBox("Overview", strings.TrimRight(b.String(), "\n"))
}

// FormatTotals formats the overall emotion distribution as a table.
func FormatTotals(totals []analysis.CategoryCount) string {
	headers := []string{"EMOTION", "COUNT"}
	rows := make([][]string, 0, len(totals))
	for _, cc := range totals {
		rows = append(rows, []string{
			SentimentStyle(cc.Category).Render(cc.Category),
			strconv.Itoa(cc.Count),
		})
	}
	return RenderTable(headers, rows)
}

// FormatTrend formats the month-by-month emotion crosstab.
func FormatTrend(table analysis.TimeCategoryTable) string {
	if table.Empty() {
		return Dim("No dated entries to chart.") + "\n"
	}

	headers := make([]string, 0, len(table.Categories)+1)
	headers = append(headers, "MONTH")
	for _, cat := range table.Categories {
		headers = append(headers, strings.ToUpper(cat))
	}

	rows := make([][]string, 0, len(table.Buckets))
	for _, bucket := range table.Buckets {
		row := make([]string, 0, len(headers))
		row = append(row, Bold(bucket))
		for _, cat := range table.Categories {
			n := table.Count(bucket, cat)
			cell := strconv.Itoa(n)
			if n == 0 {
				cell = Dim(cell)
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%d entries across %d months", table.Total(), len(table.Buckets))) + "\n")
	return RenderBox("Monthly Emotion Trend", strings.TrimRight(b.String(), "\n"))
}

// FormatShares formats the per-format emotion percentages. Each row sums
// to 100 so the table reads as a distribution, not a tally.
func FormatShares(table analysis.ShareTable) string {
	if len(table.Formats) == 0 {
		return Dim("No entries with a recorded format.") + "\n"
	}

	headers := make([]string, 0, len(table.Categories)+2)
	headers = append(headers, "FORMAT")
	for _, cat := range table.Categories {
		headers = append(headers, strings.ToUpper(cat))
	}
	headers = append(headers, "ENTRIES")

	rows := make([][]string, 0, len(table.Formats))
	for _, format := range table.Formats {
		row := make([]string, 0, len(headers))
		row = append(row, Bold(format))
		for _, cat := range table.Categories {
			row = append(row, fmt.Sprintf("%.1f%%", table.Share(format, cat)))
		}
		row = append(row, Dim(strconv.Itoa(table.Totals[format])))
		rows = append(rows, row)
	}

	return RenderBox("Emotions by Format", strings.TrimRight(RenderTable(headers, rows), "\n"))
}

// FormatFlow formats the daily positive/negative/neutral flow.
func FormatFlow(table analysis.FlowTable) string {
	if len(table.Days) == 0 {
		return Dim("No dated entries to chart.") + "\n"
	}

	headers := make([]string, 0, len(table.Labels)+1)
	headers = append(headers, "DAY")
	for _, label := range table.Labels {
		headers = append(headers, strings.ToUpper(label))
	}

	rows := make([][]string, 0, len(table.Days))
	for _, day := range table.Days {
		row := make([]string, 0, len(headers))
		row = append(row, Bold(day))
		for _, label := range table.Labels {
			n := table.Count(day, label)
			cell := strconv.Itoa(n)
			if n == 0 {
				cell = Dim(cell)
			} else {
				cell = SentimentStyle(label).Render(cell)
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}

	return RenderBox("Daily Sentiment Flow", strings.TrimRight(RenderTable(headers, rows), "\n"))
}

// FormatHourly formats the hour-of-day histogram as bars. All 24 hours
// render even when zero, so quiet hours stay visible.
func FormatHourly(table analysis.HourlyTable) string {
	var b strings.Builder
	max := table.Max()
	for hour, n := range table.Counts {
		label := fmt.Sprintf("%02d:00", hour)
		b.WriteString(fmt.Sprintf("%s  %s %s\n",
			Dim(label),
			RenderBar(n, max, hourlyBarWidth),
			strconv.Itoa(n),
		))
	}
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%d entries with a known hour", table.Total())) + "\n")
	return RenderBox("Writing Hours", strings.TrimRight(b.String(), "\n"))
}

// FormatWords formats the word-frequency list.
func FormatWords(words []analysis.WordCount) string {
	if len(words) == 0 {
		return Dim("No entry text to count.") + "\n"
	}

	max := words[0].Count
	var b strings.Builder
	for _, wc := range words {
		b.WriteString(fmt.Sprintf("%s  %s %s\n",
			RenderBar(wc.Count, max, 16),
			Bold(wc.Word),
			Dim(strconv.Itoa(wc.Count)),
		))
	}
	return RenderBox("Frequent Words", strings.TrimRight(b.String(), "\n"))
}

// FormatReport formats the confirmation line after a report export.
func FormatReport(rep report.Report, path string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n", Bold("Report:"), rep.ID))
	b.WriteString(fmt.Sprintf("%s %s\n", Bold("User:"), rep.UserID))
	b.WriteString(fmt.Sprintf("%s %d\n", Bold("Rows:"), len(rep.Rows)))
	b.WriteString(fmt.Sprintf("%s %s\n", Bold("Saved to:"), path))
	return b.String()
}

// FormatNarrative formats the generated monthly narrative.
func FormatNarrative(narrative *intelligence.Narrative) string {
	var b strings.Builder
	b.WriteString(narrative.Text)
	b.WriteString("\n\n")
	b.WriteString(Dim("model: " + narrative.Model))
	return RenderBox("Monthly Summary", b.String())
}

// FormatHighlights formats the structured highlights companion.
func FormatHighlights(h *intelligence.MonthlyHighlights) string {
	var b strings.Builder
	b.WriteString(Bold(h.Headline) + "\n\n")
	b.WriteString(fmt.Sprintf("%s %s\n\n", Dim("Dominant emotion:"), SentimentStyle(h.DominantEmotion).Render(h.DominantEmotion)))
	for _, obs := range h.Observations {
		b.WriteString("  • " + obs + "\n")
	}
	if h.Suggestion != "" {
		b.WriteString("\n" + StylePurple.Render(h.Suggestion) + "\n")
	}
	return RenderBox("Highlights", strings.TrimRight(b.String(), "\n"))
}

// FormatDigestFallback formats the deterministic digest stats shown when
// narrative generation is unavailable. The numbers stand on their own so
// the command still produces something useful offline.
func FormatDigestFallback(digest intelligence.MonthlyDigest) string {
	var b strings.Builder

	scope := digest.Period
	if digest.UserID != "" {
		if scope != "" {
			scope = digest.UserID + " / " + scope
		} else {
			scope = digest.UserID
		}
	}
	if scope != "" {
		b.WriteString(fmt.Sprintf("%s %s\n", Bold("Scope:"), scope))
	}
	b.WriteString(fmt.Sprintf("%s %d\n", Bold("Entries:"), digest.EntryCount))

	if len(digest.EmotionTotals) > 0 {
		b.WriteString("\n")
		for _, lc := range digest.EmotionTotals {
			b.WriteString(fmt.Sprintf("  %s %s\n",
				SentimentStyle(lc.Label).Render(lc.Label),
				Dim(strconv.Itoa(lc.Count)),
			))
		}
	}

	if len(digest.TopWords) > 0 {
		words := make([]string, 0, len(digest.TopWords))
		for _, lc := range digest.TopWords {
			words = append(words, lc.Label)
		}
		b.WriteString("\n")
		b.WriteString(Dim("Frequent words: "+strings.Join(words, ", ")) + "\n")
	}

	return RenderBox("Digest", strings.TrimRight(b.String(), "\n"))
}
