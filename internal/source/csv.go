// Package source turns external data (CSV files, SQL result sets, a
// built-in sample set) into the column/record shape the grid pipeline
// consumes. Cell text is sniffed into the closed value variant so dates
// sort chronologically and render consistently no matter where the data
// came from.
package source

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/gridkit/gridview/internal/grid"
	"github.com/gridkit/gridview/internal/util"
)

// Date layouts recognized during CSV sniffing, most specific first.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01-02-2006",
}

// LoadCSV reads a CSV file whose first row is the header and returns
// columns plus typed records. Cell bytes are sanitized to UTF-8 with a
// Latin-1 fallback before sniffing.
func LoadCSV(path string) ([]grid.Column, []grid.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, util.FileNotFoundError(path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // tolerate ragged rows; short rows yield empty cells

	rows, err := r.ReadAll()
	if err != nil {
		return nil, nil, util.MalformedCSVError(path, err)
	}
	if len(rows) == 0 {
		return nil, nil, util.NewError("Empty CSV file").WithContext(path).Wrap(util.ErrNoColumns)
	}

	columns := headerColumns(rows[0])
	records := make([]grid.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(grid.Record, len(columns))
		for i, col := range columns {
			if i >= len(row) {
				break
			}
			rec[col.Field] = SniffValue(util.ToValidUTF8(row[i]))
		}
		records = append(records, rec)
	}

	return columns, records, nil
}

// headerColumns maps header titles to columns with slugged field keys,
// disambiguating duplicate headers.
func headerColumns(header []string) []grid.Column {
	columns := make([]grid.Column, len(header))
	seen := make(map[string]int, len(header))
	for i, title := range header {
		title = util.ToValidUTF8(strings.TrimSpace(title))
		if title == "" {
			title = fmt.Sprintf("column %d", i+1)
		}
		field := slugField(title)
		if n := seen[field]; n > 0 {
			field = fmt.Sprintf("%s_%d", field, n+1)
		}
		seen[slugField(title)]++
		columns[i] = grid.Column{Title: title, Field: field}
	}
	return columns
}

// slugField turns a header title into a stable field key: lowercase,
// spaces to underscores, everything else non-alphanumeric dropped.
func slugField(title string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			sb.WriteRune(r)
		case r == ' ' || r == '_' || r == '-':
			sb.WriteByte('_')
		}
	}
	if sb.Len() == 0 {
		return "field"
	}
	return sb.String()
}

// SniffValue converts raw cell text into the typed variant: numbers,
// booleans, and recognized date layouts get their own kinds, everything
// else stays text. Empty cells become the zero value.
func SniffValue(s string) grid.Value {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return grid.Value{}
	}

	switch strings.ToLower(trimmed) {
	case "true":
		return grid.Bool(true)
	case "false":
		return grid.Bool(false)
	}

	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return grid.Number(f)
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return grid.Instant(t)
		}
	}

	return grid.Text(s)
}
