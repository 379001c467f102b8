package grid

import (
	"sort"
	"strings"
)

// Sort orders records by the values at field. With field == "" the input
// slice is returned unchanged, preserving filter order. Otherwise a new
// slice is produced; the input is never mutated.
//
// Two instants compare by time; every other pairing compares the values'
// display text with ordinal (byte-wise) ordering. The sort is stable:
// equal keys keep their relative input order. Descending inverts the
// comparison itself, so ties stay unreversed.
func Sort(records []Record, field string, dir SortDirection) []Record {
	if field == "" {
		return records
	}

	sorted := make([]Record, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		c := compareValues(sorted[i].Cell(field), sorted[j].Cell(field))
		if dir == Descending {
			c = -c
		}
		return c < 0
	})

	return sorted
}

// compareValues returns -1, 0, or 1 like strings.Compare. Instants get
// chronological ordering; anything else falls back to the shared display
// text so sorting agrees with what is on screen.
func compareValues(a, b Value) int {
	if a.Kind() == KindInstant && b.Kind() == KindInstant {
		at, bt := a.Time(), b.Time()
		switch {
		case at.Before(bt):
			return -1
		case at.After(bt):
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(a.Format(), b.Format())
}
