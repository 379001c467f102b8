// Package grid implements the derived-view pipeline behind the interactive
// table viewer: filter → sort → paginate. Given a raw record set, an ordered
// list of column descriptors, and the transient UI state (search term, sort
// column/direction, current page, page size), it deterministically computes
// the exact records to display plus the pagination metrics.
//
// The pipeline is pure: it never mutates the caller's records or columns,
// keeps no cache, and recomputes the full view on every call. All state
// transitions go through methods on State so the invariants (page always in
// range, search resets the page, sort toggling) live in one place.
package grid

// Column describes one table column: a header label and the record field
// it reads. Column order determines render order and the set of fields
// eligible for search matching.
type Column struct {
	Title string
	Field string
}

// Record maps field keys to cell values. Records are externally owned;
// the pipeline never mutates them. A missing field renders as an empty
// cell rather than failing the row.
type Record map[string]Value

// Cell returns the value for a column field. Missing fields yield the
// zero Value, which formats as "".
func (r Record) Cell(field string) Value {
	return r[field]
}
