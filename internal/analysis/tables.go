package analysis

// TimeCategoryTable is a cross-tabulation of time buckets against emotion
// categories. Buckets are sorted chronologically (the bucket strings sort
// lexically into calendar order), categories lexically. Every bucket row is
// zero-filled across all categories so missing combinations read as 0.
type TimeCategoryTable struct {
	Buckets    []string
	Categories []string
	Counts     map[string]map[string]int
}

// Count returns the tally for one bucket/category cell.
func (t TimeCategoryTable) Count(bucket, category string) int {
	row, ok := t.Counts[bucket]
	if !ok {
		return 0
	}
	return row[category]
}

// Total returns the sum of all cells.
func (t TimeCategoryTable) Total() int {
	sum := 0
	for _, row := range t.Counts {
		for _, n := range row {
			sum += n
		}
	}
	return sum
}

// Empty reports whether the table has no rows.
func (t TimeCategoryTable) Empty() bool { return len(t.Buckets) == 0 }

// ShareTable holds per-format emotion percentages. Within each format row
// the shares sum to 100; formats with no records are simply absent rather
// than divided by zero.
type ShareTable struct {
	Formats    []string
	Categories []string
	Shares     map[string]map[string]float64
	Totals     map[string]int
}

// Share returns the percentage for one format/category cell.
func (t ShareTable) Share(format, category string) float64 {
	row, ok := t.Shares[format]
	if !ok {
		return 0
	}
	return row[category]
}

// FlowTable holds per-day tallies for a fixed label set. Days are sorted
// ascending; every day row carries a count for every label.
type FlowTable struct {
	Days   []string
	Labels []string
	Counts map[string]map[string]int
}

// Count returns the tally for one day/label cell.
func (t FlowTable) Count(day, label string) int {
	row, ok := t.Counts[day]
	if !ok {
		return 0
	}
	return row[label]
}

// HourlyTable counts records per hour of day. All 24 hours are always
// present; hours with no records report zero.
type HourlyTable struct {
	Counts [24]int
}

// Total returns the number of counted records.
func (t HourlyTable) Total() int {
	sum := 0
	for _, n := range t.Counts {
		sum += n
	}
	return sum
}

// Max returns the largest hourly count, for bar scaling.
func (t HourlyTable) Max() int {
	max := 0
	for _, n := range t.Counts {
		if n > max {
			max = n
		}
	}
	return max
}

// CategoryCount is one row of the total emotion distribution, ordered by
// count descending then label ascending.
type CategoryCount struct {
	Category string
	Count    int
}

// WordCount is one row of the word-frequency aggregate.
type WordCount struct {
	Word  string
	Count int
}
