package grid

// SortDirection orders a sorted column ascending or descending.
type SortDirection int

const (
	Ascending SortDirection = iota
	Descending
)

// PageSizes is the enumerated set offered by the page-size selector.
var PageSizes = []int{10, 25, 50, 100}

// DefaultPerPage is the initial page size.
const DefaultPerPage = 10

// State is the transient UI state of one table instance. It is scoped to
// the instance and only changed through the transition methods below;
// the derived view is always recomputed from it, never stored on it.
type State struct {
	Page      int    // current page, 1-based
	PerPage   int    // entries per page
	Search    string // free-text filter, empty = match all
	SortField string // active sort column field, "" = no sort
	SortDir   SortDirection
}

// NewState returns the initial state: page 1, default page size, no
// search, no sort.
func NewState() State {
	return State{Page: 1, PerPage: DefaultPerPage}
}

// SetSearch updates the filter term and resets to page 1. The reset is an
// explicit transition rule: a narrower result set must not strand the
// user on a page that no longer exists.
func (s *State) SetSearch(term string) {
	s.Search = term
	s.Page = 1
}

// SetPerPage updates the page size. Values below 1 are ignored. The
// current page is not reset here; Compute reclamps it against the new
// page count.
func (s *State) SetPerPage(n int) {
	if n < 1 {
		return
	}
	s.PerPage = n
}

// GoToPage requests navigation to page p. The request is applied only if
// p lies within [1, pageCount]; out-of-range requests are silently
// ignored rather than reported.
func (s *State) GoToPage(p, pageCount int) {
	if p < 1 || p > pageCount {
		return
	}
	s.Page = p
}

// ToggleSort activates sorting on the given field, implementing the
// header-activation state machine:
//
//	none, or other field active  → (field, ascending)
//	(field, ascending)           → (field, descending)
//	(field, descending)          → (field, ascending)
//
// Repeated activation toggles between directions; it never returns to
// the unsorted state.
func (s *State) ToggleSort(field string) {
	if s.SortField != field {
		s.SortField = field
		s.SortDir = Ascending
		return
	}
	if s.SortDir == Ascending {
		s.SortDir = Descending
	} else {
		s.SortDir = Ascending
	}
}
