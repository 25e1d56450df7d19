package domain

import "time"

// DiaryRecord is one diary entry from the uploaded dataset.
//
// WrittenAt is nil when the source timestamp could not be parsed; such
// records still carry their labels and content but are excluded from every
// time-bucketed aggregate. Hour is resolved from an explicit hour column
// when present, otherwise from the parsed timestamp.
type DiaryRecord struct {
	UserID    string
	WrittenAt *time.Time
	Hour      *int
	Format    string
	Emotion   string
	Content   string
}

// HasTimestamp reports whether the record's timestamp resolved to calendar
// components.
func (r DiaryRecord) HasTimestamp() bool {
	return r.WrittenAt != nil
}

// MonthKey returns the record's calendar month bucket ("2024-03"), or ""
// when the timestamp is unresolved.
func (r DiaryRecord) MonthKey() string {
	if r.WrittenAt == nil {
		return ""
	}
	return r.WrittenAt.Format("2006-01")
}

// DayKey returns the record's calendar day bucket ("2024-03-05"), or ""
// when the timestamp is unresolved.
func (r DiaryRecord) DayKey() string {
	if r.WrittenAt == nil {
		return ""
	}
	return r.WrittenAt.Format("2006-01-02")
}

// InMonth reports whether the record was written in the given year/month.
func (r DiaryRecord) InMonth(year int, month time.Month) bool {
	if r.WrittenAt == nil {
		return false
	}
	return r.WrittenAt.Year() == year && r.WrittenAt.Month() == month
}
