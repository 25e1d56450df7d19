package testutil

import (
	"strings"
	"time"

	"github.com/Ahtty/diary-statistics/internal/domain"
)

// Record options
type RecordOption func(*domain.DiaryRecord)

func WithUser(id string) RecordOption {
	return func(r *domain.DiaryRecord) {
		r.UserID = id
	}
}

func WithTimestamp(t time.Time) RecordOption {
	return func(r *domain.DiaryRecord) {
		r.WrittenAt = &t
		h := t.Hour()
		r.Hour = &h
	}
}

func WithoutTimestamp() RecordOption {
	return func(r *domain.DiaryRecord) {
		r.WrittenAt = nil
		r.Hour = nil
	}
}

func WithHour(h int) RecordOption {
	return func(r *domain.DiaryRecord) {
		r.Hour = &h
	}
}

func WithFormat(format string) RecordOption {
	return func(r *domain.DiaryRecord) {
		r.Format = format
	}
}

func WithEmotion(emotion string) RecordOption {
	return func(r *domain.DiaryRecord) {
		r.Emotion = emotion
	}
}

func WithContent(content string) RecordOption {
	return func(r *domain.DiaryRecord) {
		r.Content = content
	}
}

// MakeRecord builds a valid diary record with sensible defaults, customizable
// via options.
func MakeRecord(opts ...RecordOption) domain.DiaryRecord {
	ts := time.Date(2024, time.January, 15, 9, 30, 0, 0, time.UTC)
	hour := ts.Hour()
	r := domain.DiaryRecord{
		UserID:    "user-1",
		WrittenAt: &ts,
		Hour:      &hour,
		Format:    "text",
		Emotion:   "positive",
		Content:   "a quiet morning walk",
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// CSV joins header and rows into CSV file content for loader tests.
func CSV(header string, rows ...string) string {
	return header + "\n" + strings.Join(rows, "\n") + "\n"
}
