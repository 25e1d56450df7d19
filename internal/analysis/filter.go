package analysis

import (
	"sort"
	"time"

	"github.com/Ahtty/diary-statistics/internal/domain"
)

// SelectionOptions lists the scopes a caller may filter by. All values are
// derived from the dataset itself, never hard-coded.
type SelectionOptions struct {
	Users []string
	Years []int
}

// Options derives the selectable users and years from a record set. Users
// are sorted lexically, years ascending.
func Options(records []domain.DiaryRecord) SelectionOptions {
	userSet := make(map[string]bool)
	yearSet := make(map[int]bool)
	for _, r := range records {
		if r.UserID != "" {
			userSet[r.UserID] = true
		}
		if r.WrittenAt != nil {
			yearSet[r.WrittenAt.Year()] = true
		}
	}

	opts := SelectionOptions{}
	for u := range userSet {
		opts.Users = append(opts.Users, u)
	}
	sort.Strings(opts.Users)
	for y := range yearSet {
		opts.Years = append(opts.Years, y)
	}
	sort.Ints(opts.Years)
	return opts
}

// MonthsInYear derives the distinct months observed within a year,
// ascending.
func MonthsInYear(records []domain.DiaryRecord, year int) []time.Month {
	monthSet := make(map[time.Month]bool)
	for _, r := range records {
		if r.WrittenAt != nil && r.WrittenAt.Year() == year {
			monthSet[r.WrittenAt.Month()] = true
		}
	}
	months := make([]int, 0, len(monthSet))
	for m := range monthSet {
		months = append(months, int(m))
	}
	sort.Ints(months)
	out := make([]time.Month, len(months))
	for i, m := range months {
		out[i] = time.Month(m)
	}
	return out
}

// ByUser returns the records authored by the given user. Records whose
// timestamp failed to parse are dropped from the user scope, matching the
// source dashboard's coercion of invalid dates before per-user analysis.
func ByUser(records []domain.DiaryRecord, userID string) []domain.DiaryRecord {
	var out []domain.DiaryRecord
	for _, r := range records {
		if r.UserID == userID && r.HasTimestamp() {
			out = append(out, r)
		}
	}
	return out
}

// ByMonth returns the records written in the given calendar month. An
// empty result is a valid outcome, not an error.
func ByMonth(records []domain.DiaryRecord, year int, month time.Month) []domain.DiaryRecord {
	var out []domain.DiaryRecord
	for _, r := range records {
		if r.InMonth(year, month) {
			out = append(out, r)
		}
	}
	return out
}
