package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Ahtty/diary-statistics/internal/domain"
)

// Timestamp layouts accepted by the loader, tried in order. The source
// datasets mix date-only and datetime exports.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02",
	"2006.01.02",
}

// LoadFile reads a diary dataset from a CSV file.
func LoadFile(path string) ([]domain.DiaryRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load parses CSV diary data into typed records.
//
// The header row is resolved against known column aliases; absence of a
// required column is a fatal DataFormatError. Individual rows never fail
// the load: an unparseable timestamp leaves the record's calendar fields
// unset, and short rows are padded with empty values.
func Load(r io.Reader) ([]domain.DiaryRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &DataFormatError{Missing: []string{string(ColumnUserID), string(ColumnDate), string(ColumnEmotion)}}
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	cols, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	var records []domain.DiaryRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}
		records = append(records, parseRow(row, cols))
	}
	return records, nil
}

func parseRow(row []string, cols map[Column]int) domain.DiaryRecord {
	rec := domain.DiaryRecord{
		UserID:  cell(row, cols, ColumnUserID),
		Format:  cell(row, cols, ColumnFormat),
		Emotion: cell(row, cols, ColumnEmotion),
		Content: cell(row, cols, ColumnContent),
	}

	if ts, ok := parseTimestamp(cell(row, cols, ColumnDate)); ok {
		rec.WrittenAt = &ts
		h := ts.Hour()
		rec.Hour = &h
	}

	// An explicit hour column wins over the timestamp's time component;
	// date-only exports carry the authoring hour there.
	if raw := cell(row, cols, ColumnHour); raw != "" {
		if h, err := strconv.Atoi(raw); err == nil && h >= 0 && h <= 23 {
			rec.Hour = &h
		}
	}

	return rec
}

func cell(row []string, cols map[Column]int, col Column) string {
	i, ok := cols[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func parseTimestamp(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
