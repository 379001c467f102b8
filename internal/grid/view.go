package grid

// View is the derived result of one pipeline run. It is recomputed from
// (records, columns, state) on every relevant change and never stored.
type View struct {
	Filtered []Record // records surviving the search filter, input order
	Sorted   []Record // filtered records in display order

	TotalEntries int // len(Sorted)
	PageCount    int // ceil(TotalEntries / PerPage); 0 when empty
	Page         int // requested page clamped into [1, max(1, PageCount)]

	FirstIndex int      // index of the first visible record in Sorted
	LastIndex  int      // one past the last visible record
	Visible    []Record // Sorted[FirstIndex:LastIndex]
}

// Compute runs the full pipeline. The page stored in st may be stale
// relative to the current data (the record set or filter may have shrunk
// since it was set); the returned View carries the reclamped page, which
// is authoritative. Callers that own the state should write View.Page
// back after computing.
func Compute(records []Record, columns []Column, st State) View {
	v := View{
		Filtered: Filter(records, columns, st.Search),
	}
	v.Sorted = Sort(v.Filtered, st.SortField, st.SortDir)
	v.TotalEntries = len(v.Sorted)
	v.PageCount = pageCount(v.TotalEntries, st.PerPage)

	v.Page = clampPage(st.Page, v.PageCount)
	v.FirstIndex = (v.Page - 1) * st.PerPage
	v.LastIndex = v.FirstIndex + st.PerPage
	if v.LastIndex > v.TotalEntries {
		v.LastIndex = v.TotalEntries
	}
	if v.FirstIndex >= v.TotalEntries {
		v.FirstIndex = v.TotalEntries
		v.LastIndex = v.TotalEntries
	}
	v.Visible = v.Sorted[v.FirstIndex:v.LastIndex]

	return v
}

func pageCount(total, perPage int) int {
	if perPage < 1 {
		perPage = 1
	}
	return (total + perPage - 1) / perPage
}

// clampPage keeps the page within [1, pageCount]. An empty result set
// has no page to show, but navigation math still treats it as page 1 of
// 1 so bounds never go negative.
func clampPage(page, pageCount int) int {
	if pageCount < 1 {
		return 1
	}
	if page < 1 {
		return 1
	}
	if page > pageCount {
		return pageCount
	}
	return page
}
