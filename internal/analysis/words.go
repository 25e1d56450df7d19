package analysis

import (
	"sort"
	"strings"
	"unicode"

	"github.com/Ahtty/diary-statistics/internal/domain"
)

// WordFrequencies counts the most frequent words across entry contents,
// returning at most topN rows ordered by count descending then word
// ascending. Tokens are lowercased and split on anything that is not a
// letter or digit; single-rune tokens are dropped as noise. This feeds the
// word-cloud rendering, which happens outside this package.
func WordFrequencies(records []domain.DiaryRecord, topN int) []WordCount {
	if topN <= 0 {
		return nil
	}

	counts := make(map[string]int)
	for _, r := range records {
		tokens := strings.FieldsFunc(strings.ToLower(r.Content), func(c rune) bool {
			return !unicode.IsLetter(c) && !unicode.IsDigit(c)
		})
		for _, tok := range tokens {
			if len([]rune(tok)) < 2 {
				continue
			}
			counts[tok]++
		}
	}

	out := make([]WordCount, 0, len(counts))
	for w, n := range counts {
		out = append(out, WordCount{Word: w, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Word < out[j].Word
	})
	if len(out) > topN {
		out = out[:topN]
	}
	return out
}
