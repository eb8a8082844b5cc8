package record

import (
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestColumnsUnionSortedWithoutBookkeeping(t *testing.T) {
	records := []Record{
		{"id": 1, "record": "Wins", "target": 56},
		{"id": 2, "record": "Road wins", "note": "franchise best", "created_at": time.Now()},
	}

	assert.Equal(t, []string{"note", "record", "target"}, Columns(records))
	assert.Empty(t, Columns(nil))
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "", FormatValue(nil))
	assert.Equal(t, "Wins", FormatValue("Wins"))
	assert.Equal(t, "raw", FormatValue([]byte("raw")))
	assert.Equal(t, "56", FormatValue(56.0))
	assert.Equal(t, "0.415", FormatValue(0.415))
	assert.Equal(t, "12", FormatValue(int64(12)))
	assert.Equal(t, "Yes", FormatValue(true))
	assert.Equal(t, "2025-04-13", FormatValue(time.Date(2025, 4, 13, 19, 0, 0, 0, time.UTC)))
}

func TestHeading(t *testing.T) {
	assert.Equal(t, "Most Points", Heading("most_points"))
	assert.Equal(t, "Record", Heading("record"))
	assert.Equal(t, "Plus Minus", Heading("PLUS_MINUS"))
	assert.Equal(t, "Éclair Über", Heading("éclair_über"))
	assert.Equal(t, "Ñandú", Heading("ÑANDÚ"))
	assert.True(t, utf8.ValidString(Heading("ölgaard_3pt")))
}
