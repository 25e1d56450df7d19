// Package intelligence turns computed aggregates into natural-language
// output by composing a deterministic digest of the selected records and
// handing it to the external completion service.
package intelligence

// LabelCount pairs a label with its tally inside a digest.
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// BucketCounts is one time bucket's per-category tallies, with categories
// in a fixed order so serialization is stable.
type BucketCounts struct {
	Bucket string       `json:"bucket"`
	Counts []LabelCount `json:"counts"`
}

// FormatShare is one entry format's emotion percentage breakdown.
type FormatShare struct {
	Format  string       `json:"format"`
	Entries int          `json:"entries"`
	Shares  []LabelShare `json:"shares"`
}

// LabelShare pairs a label with its percentage of a group.
type LabelShare struct {
	Label   string  `json:"label"`
	Percent float64 `json:"percent"`
}

// DayFlow is one calendar day's three-way sentiment tallies.
type DayFlow struct {
	Day    string       `json:"day"`
	Counts []LabelCount `json:"counts"`
}

// MonthlyDigest is the deterministic, serializable snapshot of a selection
// scope fed to the completion service. Field order and all slice orderings
// are stable given identical input, so an unchanged scope always produces
// a byte-identical prompt.
type MonthlyDigest struct {
	UserID        string         `json:"user_id,omitempty"`
	Period        string         `json:"period,omitempty"`
	EntryCount    int            `json:"entry_count"`
	EmotionTotals []LabelCount   `json:"emotion_totals"`
	MonthlyTrend  []BucketCounts `json:"monthly_trend"`
	FormatShares  []FormatShare  `json:"format_shares"`
	DailyFlow     []DayFlow      `json:"daily_flow"`
	HourlyCounts  []int          `json:"hourly_counts"`
	TopWords      []LabelCount   `json:"top_words"`
	Excerpts      []string       `json:"excerpts"`
}

// Narrative is the free-text monthly summary returned by the service,
// verbatim.
type Narrative struct {
	Text  string
	Model string
}

// MonthlyHighlights is the structured companion to the narrative: a few
// machine-readable takeaways constrained by json-schema.
type MonthlyHighlights struct {
	Headline        string   `json:"headline"`
	DominantEmotion string   `json:"dominant_emotion"`
	Observations    []string `json:"observations"`
	Suggestion      string   `json:"suggestion"`
}
