// record/record_model.go
package record

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// TableName is the season record tracker table.
const TableName = "record_tracker_season"

// Record is one row of the season record tracker. The table's columns are
// maintained by hand in the backend, so rows are read as column -> value.
type Record map[string]interface{}

// hiddenColumns are bookkeeping columns left out of the rendered table.
var hiddenColumns = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
}

// Columns returns the union of visible column names across records, sorted.
func Columns(records []Record) []string {
	seen := map[string]bool{}
	var cols []string
	for _, r := range records {
		for k := range r {
			if hiddenColumns[k] || seen[k] {
				continue
			}
			seen[k] = true
			cols = append(cols, k)
		}
	}
	sort.Strings(cols)
	return cols
}

// Format renders the record's value for column as display text.
func (r Record) Format(column string) string {
	return FormatValue(r[column])
}

// FormatValue renders a scanned column value for display.
func FormatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case time.Time:
		return val.Format("2006-01-02")
	case bool:
		if val {
			return "Yes"
		}
		return "No"
	default:
		return fmt.Sprint(val)
	}
}

// Heading turns a column name such as "most_points" into "Most Points".
func Heading(column string) string {
	words := strings.Fields(strings.ReplaceAll(column, "_", " "))
	for i, w := range words {
		first, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(first)) + strings.ToLower(w[size:])
	}
	return strings.Join(words, " ")
}
