package loader

import (
	"fmt"
	"strings"
)

// DataFormatError reports required columns that are entirely absent from
// the input header. It is fatal to the pipeline: without these columns no
// aggregate can be computed.
type DataFormatError struct {
	Missing []string
}

func (e *DataFormatError) Error() string {
	return fmt.Sprintf("input data is missing required column(s): %s", strings.Join(e.Missing, ", "))
}

// Column identifies a logical field of a diary record. The physical header
// names vary across exports, so each column carries a set of accepted
// aliases.
type Column string

const (
	ColumnUserID  Column = "user_id"
	ColumnDate    Column = "diary_date"
	ColumnFormat  Column = "diary_type"
	ColumnEmotion Column = "emotion_category"
	ColumnContent Column = "content"
	ColumnHour    Column = "hour"
)

var requiredColumns = []Column{ColumnUserID, ColumnDate, ColumnEmotion}

// Header aliases observed in the exported datasets. Matching is
// case-insensitive after trimming.
var columnAliases = map[Column][]string{
	ColumnUserID:  {"id", "user id", "user_id", "userid"},
	ColumnDate:    {"diary date", "diary_date", "date", "timestamp", "written_at"},
	ColumnFormat:  {"diary type", "diary_type", "format", "entry_format", "type"},
	ColumnEmotion: {"emotion category", "emotion_category", "emotion", "sentiment"},
	ColumnContent: {"content", "text", "body", "entry"},
	ColumnHour:    {"hour", "hour_of_day"},
}

// resolveColumns maps each logical column to its index in the header row.
// Returns a DataFormatError listing every required column that could not be
// found; optional columns simply stay unmapped.
func resolveColumns(header []string) (map[Column]int, error) {
	normalized := make([]string, len(header))
	for i, h := range header {
		normalized[i] = strings.ToLower(strings.TrimSpace(stripBOM(h)))
	}

	indexes := make(map[Column]int)
	for col, aliases := range columnAliases {
		for _, alias := range aliases {
			for i, h := range normalized {
				if h == alias {
					indexes[col] = i
					break
				}
			}
			if _, ok := indexes[col]; ok {
				break
			}
		}
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := indexes[col]; !ok {
			missing = append(missing, string(col))
		}
	}
	if len(missing) > 0 {
		return nil, &DataFormatError{Missing: missing}
	}
	return indexes, nil
}

// stripBOM removes a UTF-8 byte-order mark. Spreadsheet tools commonly
// prepend one to the first header cell.
func stripBOM(s string) string {
	return strings.TrimPrefix(s, "\uFEFF")
}
