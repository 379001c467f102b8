package grid

import "strings"

// Filter returns the subsequence of records whose formatted text in at
// least one column contains term as a case-insensitive substring. The
// relative order of records is preserved. An empty term returns the
// input slice unchanged.
func Filter(records []Record, columns []Column, term string) []Record {
	if term == "" {
		return records
	}

	query := strings.ToLower(term)
	var matched []Record
	for _, rec := range records {
		if recordMatches(rec, columns, query) {
			matched = append(matched, rec)
		}
	}
	if matched == nil {
		matched = []Record{}
	}
	return matched
}

// recordMatches reports whether any column's display text contains the
// already-lowercased query. Matching runs over the same formatted text
// the cells render with, so a date column only matches its MM-DD-YYYY
// form.
func recordMatches(rec Record, columns []Column, query string) bool {
	for _, col := range columns {
		if strings.Contains(strings.ToLower(rec.Cell(col.Field).Format()), query) {
			return true
		}
	}
	return false
}
